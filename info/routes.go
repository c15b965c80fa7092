package info

import (
	"errors"
	"net/http"

	"github.com/drblury/swaggerversioning/swagger"
)

// GetStatus reports the service as healthy together with the published
// API versions.
func (ih *InfoHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	payload := probePayload{Status: "HEALTHY"}
	for _, link := range ih.documentLinks() {
		payload.Versions = append(payload.Versions, link.Name)
	}
	ih.respondProbe(w, r, payload)
}

// GetHealthz implements the liveness probe recommended for Kubernetes.
func (ih *InfoHandler) GetHealthz(w http.ResponseWriter, r *http.Request) {
	if err := ih.runChecks(r.Context(), ih.livenessChecks); err != nil {
		ih.HandleAPIError(w, r, http.StatusServiceUnavailable, err, "liveness probe failed")
		return
	}
	ih.respondProbe(w, r, probePayload{Status: "ok", Checks: len(ih.livenessChecks)})
}

// GetReadyz implements the readiness probe recommended for Kubernetes.
func (ih *InfoHandler) GetReadyz(w http.ResponseWriter, r *http.Request) {
	if err := ih.runChecks(r.Context(), ih.readinessChecks); err != nil {
		ih.HandleAPIError(w, r, http.StatusServiceUnavailable, err, "readiness probe failed")
		return
	}
	ih.respondProbe(w, r, probePayload{Status: "ready", Checks: len(ih.readinessChecks)})
}

// GetVersion returns the structure provided by the configured VersionProvider.
func (ih *InfoHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	payload := ih.versionProvider()
	if payload == nil {
		payload = map[string]string{}
	}
	ih.RespondWithJSON(w, r, http.StatusOK, payload)
}

// GetOpenAPIJSON writes the generated document of the {group} path value.
func (ih *InfoHandler) GetOpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	if ih.documents == nil {
		ih.HandleInternalServerError(w, r, errors.New("document source not configured"), "failed to load swagger document")
		return
	}

	group := r.PathValue("group")
	body, err := ih.documents.JSON(r.Context(), group)
	switch {
	case errors.Is(err, swagger.ErrUnknownGroup):
		ih.HandleNotFoundError(w, r, err, "unknown swagger document")
		return
	case err != nil:
		ih.HandleInternalServerError(w, r, err, "failed to load swagger document")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(body); err != nil {
		ih.Logger().ErrorContext(r.Context(), "failed to write swagger response", "group", group, "error", err)
	}
}

// GetOpenAPIHTML renders the documentation UI. The version query parameter
// preselects a group; the newest version is shown otherwise.
func (ih *InfoHandler) GetOpenAPIHTML(w http.ResponseWriter, r *http.Request) {
	data := ih.templateData(r.URL.Query().Get("version"))
	if len(data.Documents) == 0 {
		ih.HandleNotFoundError(w, r, errors.New("no api documents registered"), "failed to render openapi ui")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templateFor(ih.uiType).Execute(w, data); err != nil {
		ih.Logger().ErrorContext(r.Context(), "failed to render openapi template", "error", err)
	}
}

// Mount registers the info endpoints on mux.
func (ih *InfoHandler) Mount(mux *http.ServeMux) {
	mux.HandleFunc("GET /status", ih.GetStatus)
	mux.HandleFunc("GET /healthz", ih.GetHealthz)
	mux.HandleFunc("GET /readyz", ih.GetReadyz)
	mux.HandleFunc("GET /version", ih.GetVersion)
	mux.HandleFunc("GET /swagger", ih.GetOpenAPIHTML)
	mux.HandleFunc("GET /swagger/{group}/swagger.json", ih.GetOpenAPIJSON)
}
