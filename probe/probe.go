package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Func is a health check; a non-nil error marks the dependency unavailable.
type Func func(ctx context.Context) error

// NewPingProbe names fn so that failures identify the checked component.
func NewPingProbe(name string, fn Func) Func {
	return func(ctx context.Context) error {
		if fn == nil {
			return fail(name, ErrNotConfigured)
		}
		if err := fn(ctx); err != nil {
			return fail(name, err)
		}
		return nil
	}
}

// MongoPinger is the subset of *mongo.Client used for readiness checks.
type MongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// NewMongoPingProbe pings MongoDB with readPref, or the primary when nil.
func NewMongoPingProbe(client MongoPinger, readPref *readpref.ReadPref) Func {
	return func(ctx context.Context) error {
		if client == nil {
			return fail("mongo", ErrNotConfigured)
		}

		rp := readPref
		if rp == nil {
			rp = readpref.Primary()
		}
		if err := client.Ping(ctx, rp); err != nil {
			return fail("mongo", err)
		}
		return nil
	}
}

// HTTPDoer is the subset of *http.Client used by NewHTTPProbe.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPProbe requests target and succeeds on a 2xx status unless
// WithHTTPAllowedStatuses says otherwise.
func NewHTTPProbe(name, method, target string, opts ...HTTPProbeOption) Func {
	cfg := buildHTTPProbeConfig(opts...)

	return func(ctx context.Context) error {
		trimmed := strings.TrimSpace(target)
		if trimmed == "" {
			return fail(name, fmt.Errorf("%w: target URL is empty", ErrNotConfigured))
		}

		verb := strings.ToUpper(strings.TrimSpace(method))
		if verb == "" {
			verb = http.MethodGet
		}

		req, err := http.NewRequestWithContext(ctx, verb, trimmed, nil)
		if err != nil {
			return fail(name, err)
		}

		resp, err := cfg.client.Do(req)
		if err != nil {
			return fail(name, err)
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if !cfg.expect(resp.StatusCode) {
			return fail(name, fmt.Errorf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
		}
		return nil
	}
}
