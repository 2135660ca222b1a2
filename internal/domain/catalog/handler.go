package catalog

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/owm/studio-api/internal/pkg/response"
)

// Handler handles catalog HTTP requests
type Handler struct {
	service *CatalogService
}

// NewHandler creates catalog handler
func NewHandler(service *CatalogService) *Handler {
	return &Handler{service: service}
}

// List handles GET /services
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	services, err := h.service.List(r.Context(), category)
	if err != nil {
		if errors.Is(err, ErrInvalidCategory) {
			response.BadRequest(w, "Category must be one of: video, audio, photo")
			return
		}
		log.Error().Err(err).Msg("failed to list services")
		response.InternalError(w)
		return
	}

	response.OK(w, services)
}

// Get handles GET /services/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid service id")
		return
	}

	service, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			response.NotFound(w, "Service not found")
			return
		}
		log.Error().Err(err).Str("service_id", id.String()).Msg("failed to get service")
		response.InternalError(w)
		return
	}

	response.OK(w, service)
}
