package review

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/owm/studio-api/internal/middleware"
	"github.com/owm/studio-api/internal/pkg/response"
	"github.com/owm/studio-api/internal/pkg/validator"
)

// Handler handles review HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates review handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /reviews?service_id=&page=&limit=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	serviceID := uuid.Nil
	if raw := r.URL.Query().Get("service_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid service id")
			return
		}
		serviceID = id
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	reviews, err := h.repo.List(r.Context(), serviceID, limit, (page-1)*limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reviews")
		response.InternalError(w)
		return
	}

	result := make([]*ReviewResponse, len(reviews))
	for i := range reviews {
		result[i] = reviews[i].ToResponse()
	}

	response.OK(w, result)
}

// Create handles POST /reviews
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

	exists, err := h.repo.ServiceExists(r.Context(), req.ServiceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check service")
		response.InternalError(w)
		return
	}
	if !exists {
		response.NotFound(w, "Service not found")
		return
	}

	review := &Review{
		ID:        uuid.New(),
		UserID:    userID,
		ServiceID: req.ServiceID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := h.repo.Create(r.Context(), review); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to create review")
		response.InternalError(w)
		return
	}

	response.Created(w, review.ToResponse())
}
