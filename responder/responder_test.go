package responder

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drblury/swaggerversioning/apiversion"
)

func TestHandleAPIErrorReusesRequestID(t *testing.T) {
	var logs bytes.Buffer
	r := NewResponder(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	req := httptest.NewRequest(http.MethodGet, "/v1/WeatherForecast", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.HandleAPIError(rec, req, http.StatusNotAcceptable, errors.New("version 9.0 is not supported"))

	if rec.Code != http.StatusNotAcceptable {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusNotAcceptable)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	if problem.TraceID != "req-123" {
		t.Fatalf("unexpected trace id: %q", problem.TraceID)
	}
	if problem.Title != "Unsupported API Version" {
		t.Fatalf("unexpected title: %q", problem.Title)
	}
	if problem.Type != "https://httpstatuses.io/406" {
		t.Fatalf("unexpected type: %q", problem.Type)
	}
	if !strings.Contains(logs.String(), "traceId=req-123") {
		t.Fatalf("expected trace id in logs, got %q", logs.String())
	}
}

func TestHandleAPIErrorGeneratesTraceID(t *testing.T) {
	r := NewResponder()

	rec := httptest.NewRecorder()
	r.HandleInternalServerError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"))

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	if len(problem.TraceID) != 26 {
		t.Fatalf("expected ULID trace id, got %q", problem.TraceID)
	}
	if problem.Timestamp == "" {
		t.Fatal("expected timestamp")
	}
}

func TestHandleAPIErrorIgnoresNilError(t *testing.T) {
	rec := httptest.NewRecorder()
	NewResponder().HandleAPIError(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusBadRequest, nil)
	NewResponder().HandleErrors(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)

	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestHandleErrorsFallsBackToInternalError(t *testing.T) {
	r := NewResponder(WithErrorClassifier(func(error) (int, bool) { return 0, false }))

	rec := httptest.NewRecorder()
	r.HandleErrors(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("unexpected"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got %d", rec.Code)
	}
}

func TestRespondWithJSONAppendsNewline(t *testing.T) {
	rec := httptest.NewRecorder()
	NewResponder().RespondWithJSON(rec, nil, http.StatusOK, []int{1, 2})

	if got := rec.Body.String(); got != "[1,2]\n" {
		t.Fatalf("unexpected body: %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != jsonContentType {
		t.Fatalf("unexpected content type: %q", got)
	}
}

func TestProblemCarriesServedAPIVersion(t *testing.T) {
	var logs bytes.Buffer
	r := NewResponder(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	req := httptest.NewRequest(http.MethodGet, "/v2/WeatherForecastV2?days=40", nil)
	req = req.WithContext(apiversion.ContextWithVersion(req.Context(), apiversion.New(2, 0)))
	rec := httptest.NewRecorder()
	r.HandleBadRequestError(rec, req, errors.New("days out of range"))

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	if problem.APIVersion != "2.0" {
		t.Fatalf("unexpected api version: %q", problem.APIVersion)
	}
	if !strings.Contains(logs.String(), "apiVersion=2.0") {
		t.Fatalf("expected api version in logs, got %q", logs.String())
	}
}
