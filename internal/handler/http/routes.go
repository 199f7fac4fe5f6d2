package http

import (
	"github.com/MKhiriev/go-library-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Get("/api/version/", h.getServerVersion)

	// datastore commands carry the session key in the body
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/"+models.MethodDatastoreMeta, h.datastoreMeta)
		r.Post("/api/"+models.MethodDatastoreGet, h.datastoreGet)
		r.Post("/api/"+models.MethodDatastorePut, h.datastorePut)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
