package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// sync API, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/sync/push", h.push)
		r.Get("/api/sync/pull", h.pull)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
