package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns dashboard router. All routes require authentication.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Get("/", h.Get)
	r.Delete("/cart/{id}", h.RemoveCartItem)

	return r
}
