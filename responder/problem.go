package responder

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/drblury/swaggerversioning/apiversion"
)

// ProblemDetails is an RFC 9457 problem document.
type ProblemDetails struct {
	Type      string `json:"type,omitempty"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail,omitempty"`
	Instance  string `json:"instance,omitempty"`
	TraceID   string `json:"traceId,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	// APIVersion is the version of the API that served the request, when
	// the route is versioned.
	APIVersion string `json:"apiVersion,omitempty"`
}

func (r *Responder) statusMetaFor(status int) statusMeta {
	return normalizeStatusMeta(status, r.statusMetadata[status])
}

func (r *Responder) buildProblemDetails(req *http.Request, status int, err error, meta statusMeta) ProblemDetails {
	problem := ProblemDetails{
		Type:      meta.typeURI,
		Title:     meta.title,
		Status:    status,
		Detail:    err.Error(),
		Instance:  requestInstance(req),
		TraceID:   traceID(req),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if v, ok := apiversion.FromContext(requestContext(req)); ok {
		problem.APIVersion = v.String()
	}
	return problem
}

func (r *Responder) logProblem(req *http.Request, meta statusMeta, err error, problem ProblemDetails, msgs []string) {
	logger := r.logger().With("error", err.Error(), "traceId", problem.TraceID, "status", problem.Status)
	if problem.Instance != "" {
		logger = logger.With("instance", problem.Instance)
	}
	if problem.APIVersion != "" {
		logger = logger.With("apiVersion", problem.APIVersion)
	}
	if len(msgs) > 0 {
		logger = logger.With("logMessages", msgs)
	}
	logger.Log(requestContext(req), meta.logLevel, meta.logMsg)
}

func normalizeStatusMeta(status int, meta statusMeta) statusMeta {
	if meta.logLevel == 0 && status >= http.StatusInternalServerError {
		meta.logLevel = slog.LevelError
	}
	if meta.title == "" {
		meta.title = http.StatusText(status)
	}
	if meta.logMsg == "" {
		meta.logMsg = meta.title
	}
	if meta.typeURI == "" {
		meta.typeURI = fmt.Sprintf("%s/%d", statusDocBaseURL, status)
	}
	return meta
}

func requestInstance(req *http.Request) string {
	if req == nil || req.URL == nil {
		return ""
	}
	return req.URL.RequestURI()
}

func requestContext(req *http.Request) context.Context {
	if req == nil {
		return context.Background()
	}
	return req.Context()
}
