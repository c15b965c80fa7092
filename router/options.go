package router

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/drblury/swaggerversioning/apiversion"
	"github.com/drblury/swaggerversioning/responder"
)

// DefaultExposeHeaders lets browsers read the version headers.
var DefaultExposeHeaders = []string{
	apiversion.HeaderSupportedVersions,
	apiversion.HeaderDeprecatedVersions,
	apiversion.HeaderDeprecation,
}

// Middleware wraps an http.Handler to produce a new http.Handler.
type Middleware func(http.Handler) http.Handler

// Option configures New.
type Option func(*options)

type options struct {
	config    Config
	logger    *slog.Logger
	swagger   *openapi3.T
	responder *responder.Responder
	outer     []Middleware
	validate  bool
}

func defaultOptions() *options {
	return &options{
		config:    Config{Timeout: 30 * time.Second},
		logger:    slog.Default(),
		responder: responder.NewResponder(),
		validate:  true,
	}
}

// chain orders the middlewares outermost first: caller middlewares, request
// logging, CORS, timeout, then OpenAPI validation next to the handler.
func (o *options) chain() []Middleware {
	chain := slices.Clone(o.outer)
	chain = append(chain, loggingMiddleware(o.logger, o.config.QuietdownRoutes, o.config.HideHeaders))
	if len(o.config.CORS.Origins) > 0 {
		chain = append(chain, corsMiddleware(o.config.CORS))
	}
	if o.config.Timeout > 0 {
		chain = append(chain, timeoutMiddleware(o.config.Timeout))
	}
	if o.validate && o.swagger != nil {
		chain = append(chain, oapiMiddleware(o.swagger, o.responder))
	}
	return chain
}

// WithConfig replaces the router configuration. A zero Timeout disables the
// timeout middleware and empty CORS origins disable CORS handling.
func WithConfig(cfg Config) Option {
	cfg.QuietdownRoutes = slices.Clone(cfg.QuietdownRoutes)
	cfg.HideHeaders = slices.Clone(cfg.HideHeaders)
	cfg.CORS.Origins = slices.Clone(cfg.CORS.Origins)
	cfg.CORS.Methods = slices.Clone(cfg.CORS.Methods)
	cfg.CORS.Headers = slices.Clone(cfg.CORS.Headers)
	cfg.CORS.ExposeHeaders = slices.Clone(cfg.CORS.ExposeHeaders)
	if len(cfg.CORS.ExposeHeaders) == 0 {
		cfg.CORS.ExposeHeaders = slices.Clone(DefaultExposeHeaders)
	}
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger sets the logger of the request logging middleware.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSwagger wires the OpenAPI document requests are validated against.
// Pass the merged document of every API version.
func WithSwagger(swagger *openapi3.T) Option {
	return func(o *options) {
		o.swagger = swagger
	}
}

// WithResponder sets the responder that renders validation failures.
func WithResponder(resp *responder.Responder) Option {
	return func(o *options) {
		if resp != nil {
			o.responder = resp
		}
	}
}

// WithMiddlewares runs middlewares ahead of the built-in chain, in order.
func WithMiddlewares(middlewares ...Middleware) Option {
	return func(o *options) {
		o.outer = append(o.outer, middlewares...)
	}
}

// WithoutOpenAPIValidation serves routes that are not part of any API
// document, such as probes and the documentation UI.
func WithoutOpenAPIValidation() Option {
	return func(o *options) {
		o.validate = false
	}
}
