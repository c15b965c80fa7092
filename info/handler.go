package info

import (
	"context"
	"time"

	"github.com/drblury/swaggerversioning/probe"
	"github.com/drblury/swaggerversioning/responder"
	"github.com/drblury/swaggerversioning/swagger"
)

// VersionProvider returns the payload exposed by the version endpoint.
type VersionProvider func() any

// DocumentSource lists the published API documents and renders them as JSON.
// *swagger.Generator satisfies it.
type DocumentSource interface {
	Groups() []string
	Lookup(group string) (swagger.DocumentMetadata, bool)
	JSON(ctx context.Context, group string) ([]byte, error)
}

// Option configures an InfoHandler.
type Option func(*InfoHandler)

const (
	defaultProbeTimeout = 2 * time.Second
	defaultTitle        = swagger.Title
)

// ProbeFunc is executed to determine the outcome of liveness or readiness
// probes. Returning a non-nil error marks the probe as failed.
type ProbeFunc = probe.Func

// InfoHandler serves the operational endpoints and the documentation of
// every API version.
type InfoHandler struct {
	*responder.Responder
	baseURL         string
	title           string
	versionProvider VersionProvider
	documents       DocumentSource
	probeTimeout    time.Duration
	livenessChecks  []ProbeFunc
	readinessChecks []ProbeFunc
	uiType          UIType
}

// NewInfoHandler constructs an InfoHandler serving the documents of source.
func NewInfoHandler(source DocumentSource, opts ...Option) *InfoHandler {
	ih := &InfoHandler{
		Responder: responder.NewResponder(),
		title:     defaultTitle,
		versionProvider: func() any {
			return map[string]string{}
		},
		documents:    source,
		probeTimeout: defaultProbeTimeout,
		uiType:       UISwaggerUI,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(ih)
		}
	}
	return ih
}

// WithResponder replaces the responder used for JSON and problem responses.
func WithResponder(resp *responder.Responder) Option {
	return func(ih *InfoHandler) {
		if resp != nil {
			ih.Responder = resp
		}
	}
}

// WithBaseURL sets the prefix used for document links in the UI.
func WithBaseURL(baseURL string) Option {
	return func(ih *InfoHandler) {
		ih.baseURL = baseURL
	}
}

// WithTitle overrides the page title of the documentation UI.
func WithTitle(title string) Option {
	return func(ih *InfoHandler) {
		if title != "" {
			ih.title = title
		}
	}
}

// WithVersionProvider swaps the payload source of the version endpoint.
func WithVersionProvider(provider VersionProvider) Option {
	return func(ih *InfoHandler) {
		if provider != nil {
			ih.versionProvider = provider
		}
	}
}

// WithProbeTimeout adjusts the maximum duration allowed for probe checks.
func WithProbeTimeout(timeout time.Duration) Option {
	return func(ih *InfoHandler) {
		if timeout > 0 {
			ih.probeTimeout = timeout
		}
	}
}

// WithLivenessChecks replaces the liveness checks.
func WithLivenessChecks(checks ...ProbeFunc) Option {
	return func(ih *InfoHandler) {
		ih.livenessChecks = filterProbes(checks)
	}
}

// WithReadinessChecks replaces the readiness checks.
func WithReadinessChecks(checks ...ProbeFunc) Option {
	return func(ih *InfoHandler) {
		ih.readinessChecks = filterProbes(checks)
	}
}

// WithUIType selects the documentation UI. Unknown values fall back to
// UISwaggerUI.
func WithUIType(uiType UIType) Option {
	return func(ih *InfoHandler) {
		switch uiType {
		case UIRedoc:
			ih.uiType = UIRedoc
		default:
			ih.uiType = UISwaggerUI
		}
	}
}
