package http

import (
	"net/http"
)

// getServerVersion answers GET /api/version/ with the configured version as
// plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
