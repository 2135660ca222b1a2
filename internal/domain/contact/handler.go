package contact

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/owm/studio-api/internal/pkg/response"
	"github.com/owm/studio-api/internal/pkg/validator"
)

// Handler handles contact HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates contact handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /contact
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	result, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		log.Error().Err(err).Msg("failed to save contact message")
		response.InternalError(w)
		return
	}

	response.Created(w, result)
}

// Routes returns contact router. Submission is public.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Submit)
	return r
}
