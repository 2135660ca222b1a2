package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns profile router. All routes require authentication.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Get("/", h.Get)
	r.Put("/", h.Update)
	r.Put("/password", h.ChangePassword)
	r.Post("/image", h.UploadImage)

	return r
}
