// Package router wraps http.ServeMux with OpenAPI request validation, CORS,
// timeouts, and request logging. Validation failures are rendered as problem
// documents by the configured responder.
package router
