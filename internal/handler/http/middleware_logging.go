package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/utils"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		event := logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)
		if lw.ownerID != "" {
			event = event.Str("owner_id", lw.ownerID)
		}
		event.Send()
	})
}

// recordOwner lets the logging middleware report the owner resolved further
// down the chain.
func recordOwner(w http.ResponseWriter, r *http.Request) {
	if lw, ok := w.(*responseWriter); ok {
		lw.ownerID, _ = utils.GetOwnerIDFromContext(r.Context())
	}
}
