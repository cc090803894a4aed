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
	router.Use(h.withSecurityHeaders)
	router.Use(h.withCORS)

	router.Get("/", h.home)
	router.Get("/api/health", h.health)

	router.Group(func(r chi.Router) {
		r.Get("/api/referencias", h.listReferences)
		r.Get("/api/referencias/{id}", h.getReference)
		r.Post("/api/referencias", h.createReference)
	})

	router.Group(func(r chi.Router) {
		r.Get("/api/comments", h.listComments)
		r.Get("/api/comments/stats", h.commentStats)
		r.Get("/api/comments/{id}", h.getComment)
		r.Post("/api/comments", h.createComment)
		r.Delete("/api/comments/{id}", h.deleteComment)
	})

	router.NotFound(h.notFound)

	return router
}
