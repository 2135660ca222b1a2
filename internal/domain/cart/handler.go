package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/owm/studio-api/internal/middleware"
	"github.com/owm/studio-api/internal/pkg/response"
	"github.com/owm/studio-api/internal/pkg/validator"
)

// Handler handles cart HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates cart handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Add handles POST /cart
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	item, err := h.service.Add(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceNotFound):
			response.NotFound(w, "Service not found")
		case errors.Is(err, ErrInvalidInput):
			response.BadRequest(w, err.Error())
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to add to cart")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, item)
}

// List handles GET /cart
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	cart, err := h.service.List(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list cart")
		response.InternalError(w)
		return
	}

	response.OK(w, cart)
}

// Remove handles DELETE /cart/{id}
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid cart item id")
		return
	}

	if err := h.service.Remove(r.Context(), userID, entryID); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.NotFound(w, "Cart item not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to remove cart item")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
