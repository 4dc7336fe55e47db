package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if len(h.cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{traceIDHeader},
			MaxAge:         300,
		}))
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
		r.Post("/v1/user", h.createUser)
		r.Get("/books", h.listBooks)
		r.Get("/books/{book_id}", h.getBook)
	})

	// routes with HTTP Basic authorization
	router.Group(func(r chi.Router) {
		r.Get("/v1/user/self", h.authenticated(h.getSelf))
		r.Put("/v1/user/self", h.authenticated(h.updateSelf))
		r.Get("/v1/user/token", h.authenticated(h.issueToken))

		r.Post("/books", h.authenticated(h.createBook))
		r.Delete("/books/{book_id}", h.authenticated(h.deleteBook))

		r.Post("/books/{book_id}/image", h.authenticated(h.uploadImage))
		r.Delete("/books/{book_id}/image/{file_id}", h.authenticated(h.deleteImage))
	})

	return router
}
