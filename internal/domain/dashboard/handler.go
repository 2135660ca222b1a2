package dashboard

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/owm/studio-api/internal/domain/cart"
	"github.com/owm/studio-api/internal/domain/profile"
	"github.com/owm/studio-api/internal/middleware"
	"github.com/owm/studio-api/internal/pkg/response"
)

// Handler handles dashboard HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates dashboard handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /dashboard
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.NotFound(w, "Profile not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to build dashboard")
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}

// RemoveCartItem handles DELETE /dashboard/cart/{id}
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.service.RemoveCartItem(r.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			response.NotFound(w, "Cart item not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to remove cart item")
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}
