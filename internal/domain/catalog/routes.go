package catalog

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns catalog router. All routes are public.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	return r
}
