package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(newCORS(), endPreflight)

	router.Route("/api", func(r chi.Router) {
		r.Post("/upload-image", h.uploadImage)
		r.Post("/upload-metadata", h.uploadMetadata)
	})
	router.Get("/health", h.health)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
