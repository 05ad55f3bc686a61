package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// JSON endpoints; the spreadsheet is already zip-compressed
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/", h.getServiceInfo)
		r.Get("/health", h.getHealth)
		r.Delete("/api/cleanup", h.cleanup)
	})

	router.Post("/api/convert", h.convert)
	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
