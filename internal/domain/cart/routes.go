package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns cart router. All routes require authentication.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Post("/", h.Add)
	r.Get("/", h.List)
	r.Delete("/{id}", h.Remove)

	return r
}
