package booking

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

// Handler handles booking HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates booking handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	result, err := h.service.CreateDirect(r.Context(), userID, &req)
	if err != nil {
		h.writeError(w, err, userID, "failed to create booking")
		return
	}

	response.Created(w, result)
}

// CreateFromCart handles POST /bookings/from-cart
func (h *Handler) CreateFromCart(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req FromCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	result, err := h.service.CreateFromCart(r.Context(), userID, req.CartItemID)
	if err != nil {
		h.writeError(w, err, userID, "failed to promote cart entry")
		return
	}

	response.Created(w, result)
}

// List handles GET /bookings?status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	result, err := h.service.List(r.Context(), userID, r.URL.Query().Get("status"))
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			response.BadRequest(w, "Status must be one of: pending, completed, cancelled")
			return
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list bookings")
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}

// Get handles GET /bookings/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking id")
		return
	}

	result, err := h.service.Get(r.Context(), userID, bookingID)
	if err != nil {
		h.writeError(w, err, userID, "failed to get booking")
		return
	}

	response.OK(w, result)
}

// Update handles PUT /bookings/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking id")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	result, err := h.service.Update(r.Context(), userID, bookingID, &req)
	if err != nil {
		h.writeError(w, err, userID, "failed to update booking")
		return
	}

	response.OK(w, result)
}

// UpdateStatus handles PATCH /bookings/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking id")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), userID, middleware.IsStaff(r.Context()), bookingID, Status(req.Status))
	if err != nil {
		h.writeError(w, err, userID, "failed to update booking status")
		return
	}

	response.OK(w, result)
}

// Delete handles DELETE /bookings/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, middleware.IsStaff(r.Context()), bookingID); err != nil {
		h.writeError(w, err, userID, "failed to delete booking")
		return
	}

	response.NoContent(w)
}

// writeError maps domain errors to HTTP responses
func (h *Handler) writeError(w http.ResponseWriter, err error, userID uuid.UUID, logMsg string) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, ErrCartItemNotFound):
		response.NotFound(w, "Cart item not found")
	case errors.Is(err, ErrServiceNotFound):
		response.NotFound(w, "Service not found")
	case errors.Is(err, ErrSlotUnavailable):
		response.Conflict(w, "Service is already booked for this date and time")
	case errors.Is(err, ErrBookingCompleted):
		response.InvalidState(w, "Completed bookings cannot be edited")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.InvalidState(w, "Status transition not allowed")
	case errors.Is(err, ErrForbidden):
		response.Forbidden(w, "Not allowed")
	case errors.Is(err, ErrInvalidInput):
		response.BadRequest(w, err.Error())
	default:
		log.Error().Err(err).Str("user_id", userID.String()).Msg(logMsg)
		response.InternalError(w)
	}
}
