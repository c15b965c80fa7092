// Package swaggerversioning publishes one OpenAPI document per API version
// of a small weather forecast service and marks superseded versions as
// deprecated.
//
// # Packages
//
//   - apiversion: version values, descriptors, and the response headers that
//     advertise supported and deprecated versions.
//   - endpoint: the catalog of versioned routes; it is the version provider.
//   - binding: reflects request parameters from struct tags and binds them.
//   - swagger: per-version document metadata, the parameter enricher, and the
//     OpenAPI generator.
//   - weather: the v1 and v2 forecast controllers.
//   - info: status, probe, and documentation endpoints with Swagger UI or Redoc.
//   - responder, router, probe, jsonutil, config: HTTP plumbing shared by
//     the packages above.
//
// # Quick Start
//
//	catalog := endpoint.NewCatalog()
//	_ = weather.NewController(weather.NewForecaster(), resp).Register(catalog)
//
//	documents := swagger.NewDocuments()
//	swagger.NewVersionDocumentBuilder(catalog, documents).Configure()
//	generator := swagger.NewGenerator(catalog, documents)
//
//	mux := http.NewServeMux()
//	catalog.Mount(mux)
//	info.NewInfoHandler(generator).Mount(mux)
//
// The cmd/weatherapi binary wires the same pieces behind request validation.
package swaggerversioning
