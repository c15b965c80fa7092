package probe

import "net/http"

// HTTPProbeOption configures NewHTTPProbe.
type HTTPProbeOption func(*httpProbeConfig)

type httpProbeConfig struct {
	client HTTPDoer
	expect func(status int) bool
}

func buildHTTPProbeConfig(opts ...HTTPProbeOption) *httpProbeConfig {
	cfg := &httpProbeConfig{expect: func(status int) bool {
		return status >= 200 && status < 300
	}}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.client == nil {
		cfg.client = http.DefaultClient
	}
	return cfg
}

// WithHTTPClient overrides the client, http.DefaultClient by default.
func WithHTTPClient(client HTTPDoer) HTTPProbeOption {
	return func(cfg *httpProbeConfig) {
		cfg.client = client
	}
}

// WithHTTPAllowedStatuses accepts exactly the given statuses. No statuses
// keeps the 2xx default.
func WithHTTPAllowedStatuses(statuses ...int) HTTPProbeOption {
	if len(statuses) == 0 {
		return nil
	}
	allowed := make(map[int]struct{}, len(statuses))
	for _, status := range statuses {
		allowed[status] = struct{}{}
	}
	return func(cfg *httpProbeConfig) {
		cfg.expect = func(status int) bool {
			_, ok := allowed[status]
			return ok
		}
	}
}
