package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/drblury/swaggerversioning/config"
	"github.com/drblury/swaggerversioning/endpoint"
	"github.com/drblury/swaggerversioning/info"
	"github.com/drblury/swaggerversioning/probe"
	"github.com/drblury/swaggerversioning/responder"
	"github.com/drblury/swaggerversioning/router"
	"github.com/drblury/swaggerversioning/swagger"
	"github.com/drblury/swaggerversioning/weather"
)

// app holds the wired service components.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	responder *responder.Responder
	catalog   *endpoint.Catalog
	generator *swagger.Generator
}

// newApp registers the controllers and builds one document per API version.
func newApp(cfg *config.Config, logger *slog.Logger, forecaster weather.ForecastSource) (*app, error) {
	resp := responder.NewResponder(
		responder.WithLogger(logger),
		responder.WithErrorClassifier(weather.ClassifyError),
	)

	catalog := endpoint.NewCatalog()
	if err := weather.NewController(forecaster, resp).Register(catalog); err != nil {
		return nil, err
	}

	documents := swagger.NewDocuments()
	builderOpts := []swagger.BuilderOption{swagger.WithBuilderLogger(logger)}
	if cfg.Docs.Title != "" {
		builderOpts = append(builderOpts, swagger.WithTitle(cfg.Docs.Title))
	}
	built := swagger.NewVersionDocumentBuilder(catalog, documents, builderOpts...).Configure()
	logger.Info("api version documents configured", "count", len(built), "groups", documents.Groups())

	generator := swagger.NewGenerator(catalog, documents,
		swagger.WithProblemSchema(responder.ProblemDetails{}),
	)

	return &app{
		cfg:       cfg,
		logger:    logger,
		responder: resp,
		catalog:   catalog,
		generator: generator,
	}, nil
}

// handler routes every catalog endpoint through the validating API router
// and everything else to the info endpoints.
func (a *app) handler(ctx context.Context, readiness ...info.ProbeFunc) (http.Handler, error) {
	merged, err := a.generator.Merged(ctx)
	if err != nil {
		return nil, fmt.Errorf("build request validation document: %w", err)
	}

	apiMux := http.NewServeMux()
	a.catalog.Mount(apiMux)
	api := router.New(apiMux,
		router.WithConfig(a.cfg.Router),
		router.WithLogger(a.logger),
		router.WithResponder(a.responder),
		router.WithSwagger(merged),
	)

	checks := append([]info.ProbeFunc{probe.NewPingProbe("openapi documents", a.generator.Check)}, readiness...)
	infoHandler := info.NewInfoHandler(a.generator,
		info.WithResponder(a.responder),
		info.WithBaseURL(a.cfg.Docs.BaseURL),
		info.WithTitle(a.cfg.Docs.Title),
		info.WithUIType(info.UIType(a.cfg.Docs.UI)),
		info.WithProbeTimeout(a.cfg.Readiness.Timeout),
		info.WithReadinessChecks(checks...),
		info.WithVersionProvider(a.versionInfo),
	)
	opsMux := http.NewServeMux()
	infoHandler.Mount(opsMux)
	ops := router.New(opsMux,
		router.WithConfig(a.cfg.Router),
		router.WithLogger(a.logger),
		router.WithResponder(a.responder),
		router.WithoutOpenAPIValidation(),
	)

	root := http.NewServeMux()
	for _, ep := range a.catalog.Endpoints() {
		root.Handle(ep.Method+" "+ep.Path, api)
	}
	root.Handle("/", ops)
	return root, nil
}

func (a *app) versionInfo() any {
	payload := map[string]any{
		"version":     version,
		"commit":      commit,
		"apiVersions": a.generator.Groups(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		payload["go"] = bi.GoVersion
	}
	return payload
}
