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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/auth/token", h.token)
	})

	// routes protected by bearer-token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/v1/pcc/{simplID}/summary", h.summary)
	})

	return router
}
