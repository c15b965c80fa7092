package info

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/drblury/swaggerversioning/responder"
	"github.com/drblury/swaggerversioning/swagger"
)

func decodeProbePayload(t *testing.T, body []byte) probePayload {
	t.Helper()

	var payload probePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to decode probe payload: %v (body: %s)", err, string(body))
	}
	return payload
}

func decodeProblemDetails(t *testing.T, body []byte) responder.ProblemDetails {
	t.Helper()

	var problem responder.ProblemDetails
	if err := json.Unmarshal(body, &problem); err != nil {
		t.Fatalf("failed to decode problem details: %v (body: %s)", err, string(body))
	}
	return problem
}

type stubDocuments struct {
	order []string
	meta  map[string]swagger.DocumentMetadata
	err   error
}

func newStubDocuments() *stubDocuments {
	return &stubDocuments{
		order: []string{"v1", "v2"},
		meta: map[string]swagger.DocumentMetadata{
			"v1": {Title: swagger.Title, Version: "1.0", Description: swagger.DeprecationNotice, Deprecated: true},
			"v2": {Title: swagger.Title, Version: "2.0"},
		},
	}
}

func (s *stubDocuments) Groups() []string { return s.order }

func (s *stubDocuments) Lookup(group string) (swagger.DocumentMetadata, bool) {
	meta, ok := s.meta[group]
	return meta, ok
}

func (s *stubDocuments) JSON(_ context.Context, group string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	meta, ok := s.meta[group]
	if !ok {
		return nil, fmt.Errorf("%w: %s", swagger.ErrUnknownGroup, group)
	}
	return []byte(`{"openapi":"3.0.3","info":{"title":"` + meta.Title + `","version":"` + meta.Version + `"}}`), nil
}
