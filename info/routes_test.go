package info

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/drblury/swaggerversioning/responder"
)

func quietResponder() *responder.Responder {
	return responder.NewResponder(responder.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func newTestHandler(source DocumentSource, opts ...Option) *InfoHandler {
	return NewInfoHandler(source, append([]Option{WithResponder(quietResponder())}, opts...)...)
}

func serve(t *testing.T, ih *InfoHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	ih.Mount(mux)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestInfoHandler_GetStatus(t *testing.T) {
	rr := serve(t, newTestHandler(nil), "/status")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if payload := decodeProbePayload(t, rr.Body.Bytes()); payload.Status != "HEALTHY" {
		t.Fatalf("expected HEALTHY, got %s", payload.Status)
	}
}

func TestInfoHandler_Probes(t *testing.T) {
	failing := func(context.Context) error { return errors.New("generator unavailable") }
	passing := func(context.Context) error { return nil }

	tests := []struct {
		name   string
		opts   []Option
		target string
		status int
		state  string
	}{
		{name: "healthz without checks", target: "/healthz", status: http.StatusOK, state: "ok"},
		{name: "readyz passing", opts: []Option{WithReadinessChecks(passing)}, target: "/readyz", status: http.StatusOK, state: "ready"},
		{name: "readyz failing", opts: []Option{WithReadinessChecks(passing, failing)}, target: "/readyz", status: http.StatusServiceUnavailable},
		{name: "healthz failing", opts: []Option{WithLivenessChecks(failing)}, target: "/healthz", status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, newTestHandler(nil, tt.opts...), tt.target)
			if rr.Code != tt.status {
				t.Fatalf("expected status %d, got %d (body: %s)", tt.status, rr.Code, rr.Body.String())
			}
			if tt.state != "" {
				if payload := decodeProbePayload(t, rr.Body.Bytes()); payload.Status != tt.state {
					t.Fatalf("expected state %s, got %s", tt.state, payload.Status)
				}
				return
			}
			problem := decodeProblemDetails(t, rr.Body.Bytes())
			if !strings.Contains(problem.Detail, "generator unavailable") {
				t.Fatalf("expected probe error in detail, got %q", problem.Detail)
			}
		})
	}
}

func TestInfoHandler_ProbeTimeout(t *testing.T) {
	slow := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	ih := newTestHandler(nil, WithProbeTimeout(10*time.Millisecond), WithReadinessChecks(slow))
	rr := serve(t, ih, "/readyz")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rr.Code)
	}
	if problem := decodeProblemDetails(t, rr.Body.Bytes()); !strings.Contains(problem.Detail, "timed out") {
		t.Fatalf("expected timeout detail, got %q", problem.Detail)
	}
}

func TestInfoHandler_GetVersion(t *testing.T) {
	ih := newTestHandler(nil, WithVersionProvider(func() any {
		return map[string]string{"version": "1.2.3"}
	}))
	rr := serve(t, ih, "/version")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"version":"1.2.3"`) {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestInfoHandler_GetOpenAPIJSON(t *testing.T) {
	t.Run("serves the requested group", func(t *testing.T) {
		rr := serve(t, newTestHandler(newStubDocuments()), "/swagger/v1/swagger.json")
		if rr.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
		}
		if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected application/json, got %q", ct)
		}
		if !strings.Contains(rr.Body.String(), `"version":"1.0"`) {
			t.Fatalf("expected v1 document, got %s", rr.Body.String())
		}
	})

	t.Run("unknown group is not found", func(t *testing.T) {
		rr := serve(t, newTestHandler(newStubDocuments()), "/swagger/v9/swagger.json")
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
		}
		if problem := decodeProblemDetails(t, rr.Body.Bytes()); problem.Status != http.StatusNotFound {
			t.Fatalf("expected problem status 404, got %d", problem.Status)
		}
	})

	t.Run("generation failure is an internal error", func(t *testing.T) {
		docs := newStubDocuments()
		docs.err = errors.New("invalid document")
		rr := serve(t, newTestHandler(docs), "/swagger/v2/swagger.json")
		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		rr := serve(t, newTestHandler(nil), "/swagger/v2/swagger.json")
		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
		}
	})
}

func TestInfoHandler_GetOpenAPIHTML(t *testing.T) {
	t.Run("swagger ui lists every version newest first", func(t *testing.T) {
		rr := serve(t, newTestHandler(newStubDocuments()), "/swagger")
		if rr.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
		}
		body := rr.Body.String()
		v2 := strings.Index(body, `name: "v2"`)
		v1 := strings.Index(body, `name: "v1 (deprecated)"`)
		if v1 < 0 || v2 < 0 {
			t.Fatalf("expected both documents in body: %s", body)
		}
		if v2 > v1 {
			t.Fatalf("expected v2 to be listed before v1")
		}
		if !strings.Contains(body, "swagger-ui") {
			t.Fatalf("expected swagger ui markup")
		}
	})

	t.Run("redoc honours the version query", func(t *testing.T) {
		rr := serve(t, newTestHandler(newStubDocuments(), WithUIType(UIRedoc), WithBaseURL("/api")), "/swagger?version=v1")
		if rr.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
		}
		body := rr.Body.String()
		if !strings.Contains(body, `spec-url="/api/swagger/v1/swagger.json"`) {
			t.Fatalf("expected redoc to load v1, got %s", body)
		}
		if !strings.Contains(body, "<redoc") {
			t.Fatalf("expected redoc markup")
		}
	})

	t.Run("no documents", func(t *testing.T) {
		rr := serve(t, newTestHandler(&stubDocuments{}), "/swagger")
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
		}
	})
}

func TestTemplateData_DefaultsToNewest(t *testing.T) {
	ih := newTestHandler(newStubDocuments(), WithTitle("Weather"))
	data := ih.templateData("")
	if data.Title != "Weather" {
		t.Fatalf("expected title Weather, got %q", data.Title)
	}
	if data.Selected.Name != "v2" {
		t.Fatalf("expected v2 selected, got %q", data.Selected.Name)
	}
	if len(data.Documents) != 2 || !data.Documents[1].Deprecated {
		t.Fatalf("unexpected documents %+v", data.Documents)
	}
	if unknown := ih.templateData("v7"); unknown.Selected.Name != "v2" {
		t.Fatalf("expected unknown selection to fall back to v2, got %q", unknown.Selected.Name)
	}
}

func TestNewer(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"v2", "v1", true},
		{"v1", "v2", false},
		{"v1.5", "v1", true},
		{"v1", "legacy", true},
		{"legacy", "v1", false},
	}
	for _, tt := range tests {
		if got := newer(tt.a, tt.b); got != tt.want {
			t.Errorf("newer(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
