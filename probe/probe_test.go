package probe_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/drblury/swaggerversioning/probe"
)

type stubMongoPinger struct {
	err        error
	lastReadPF *readpref.ReadPref
}

func (s *stubMongoPinger) Ping(_ context.Context, rp *readpref.ReadPref) error {
	s.lastReadPF = rp
	return s.err
}

type stubHTTPClient struct {
	status int
	err    error
	method string
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	s.method = req.Method
	if s.err != nil {
		return nil, s.err
	}
	rec := httptest.NewRecorder()
	rec.WriteHeader(s.status)
	return rec.Result(), nil
}

func TestNewPingProbe(t *testing.T) {
	t.Run("nil function", func(t *testing.T) {
		err := probe.NewPingProbe("openapi", nil)(context.Background())
		if !errors.Is(err, probe.ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		called := false
		check := probe.NewPingProbe("openapi", func(ctx context.Context) error {
			called = ctx != nil
			return nil
		})
		if err := check(context.Background()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !called {
			t.Fatal("expected ping function to receive a context")
		}
	})

	t.Run("failure", func(t *testing.T) {
		sentinel := errors.New("document v1 is invalid")
		err := probe.NewPingProbe("openapi", func(context.Context) error { return sentinel })(context.Background())
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected error to wrap sentinel, got %v", err)
		}
		var probeErr *probe.Error
		if !errors.As(err, &probeErr) || probeErr.Component != "openapi" {
			t.Fatalf("expected component openapi, got %v", err)
		}
		if err.Error() != "openapi probe: document v1 is invalid" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})
}

func TestNewMongoPingProbe(t *testing.T) {
	t.Run("nil client", func(t *testing.T) {
		if err := probe.NewMongoPingProbe(nil, nil)(context.Background()); !errors.Is(err, probe.ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("defaults to primary", func(t *testing.T) {
		stub := &stubMongoPinger{}
		if err := probe.NewMongoPingProbe(stub, nil)(context.Background()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if stub.lastReadPF == nil || stub.lastReadPF.Mode() != readpref.PrimaryMode {
			t.Fatalf("expected primary read preference, got %v", stub.lastReadPF)
		}
	})

	t.Run("wraps failures", func(t *testing.T) {
		sentinel := errors.New("no reachable servers")
		err := probe.NewMongoPingProbe(&stubMongoPinger{err: sentinel}, readpref.Nearest())(context.Background())
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected error to wrap sentinel, got %v", err)
		}
	})
}

func TestNewHTTPProbe(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		client  *stubHTTPClient
		opts    []probe.HTTPProbeOption
		wantErr bool
	}{
		{name: "success", target: "http://upstream/healthz", client: &stubHTTPClient{status: http.StatusOK}},
		{name: "empty target", target: "  ", client: &stubHTTPClient{status: http.StatusOK}, wantErr: true},
		{name: "server error", target: "http://upstream/healthz", client: &stubHTTPClient{status: http.StatusBadGateway}, wantErr: true},
		{name: "transport error", target: "http://upstream/healthz", client: &stubHTTPClient{err: errors.New("dial tcp")}, wantErr: true},
		{
			name:   "allowed status",
			target: "http://upstream/healthz",
			client: &stubHTTPClient{status: http.StatusNoContent},
			opts:   []probe.HTTPProbeOption{probe.WithHTTPAllowedStatuses(http.StatusNoContent)},
		},
		{
			name:    "status outside allowed list",
			target:  "http://upstream/healthz",
			client:  &stubHTTPClient{status: http.StatusOK},
			opts:    []probe.HTTPProbeOption{probe.WithHTTPAllowedStatuses(http.StatusNoContent)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]probe.HTTPProbeOption{probe.WithHTTPClient(tt.client)}, tt.opts...)
			err := probe.NewHTTPProbe("upstream", "", tt.target, opts...)(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
		})
	}
}

func TestNewHTTPProbeUsesMethod(t *testing.T) {
	client := &stubHTTPClient{status: http.StatusOK}
	if err := probe.NewHTTPProbe("upstream", "head", "http://upstream/", probe.WithHTTPClient(client))(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if client.method != http.MethodHead {
		t.Fatalf("unexpected method: %s", client.method)
	}
}

func ExampleNewHTTPProbe() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	check := probe.NewHTTPProbe("upstream", http.MethodGet, server.URL, probe.WithHTTPAllowedStatuses(http.StatusNoContent))
	fmt.Println(check(context.Background()))

	// Output:
	// <nil>
}
