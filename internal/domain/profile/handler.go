package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/owm/studio-api/internal/middleware"
	"github.com/owm/studio-api/internal/pkg/imaging"
	"github.com/owm/studio-api/internal/pkg/response"
	"github.com/owm/studio-api/internal/pkg/validator"
)

// Handler handles profile HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates profile handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /profile
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	profile, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, "Profile not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get profile")
		response.InternalError(w)
		return
	}

	response.OK(w, profile)
}

// Update handles PUT /profile
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
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

	profile, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		case ErrEmailAlreadyExists:
			response.Conflict(w, "Email already in use")
		case ErrUsernameAlreadyExists:
			response.Conflict(w, "Username already taken")
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to update profile")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, profile)
}

// ChangePassword handles PUT /profile/password
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, &req); err != nil {
		switch err {
		case ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		case ErrWrongPassword:
			response.BadRequest(w, "Current password is incorrect")
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to change password")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"message": "Password updated"})
}

// UploadImage handles POST /profile/image (multipart form, field "image")
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	if err := r.ParseMultipartForm(imaging.MaxFileSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Missing image file")
		return
	}
	defer file.Close()

	result, err := h.service.UploadImage(r.Context(), userID, file, header.Filename, header.Size)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidImage):
			response.BadRequest(w, "Invalid image file")
		case errors.Is(err, ErrImageTooLarge):
			response.BadRequest(w, "Image file too large (max 10MB)")
		case errors.Is(err, ErrProfileNotFound):
			response.NotFound(w, "Profile not found")
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to upload profile image")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}
