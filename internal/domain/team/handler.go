package team

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/owm/studio-api/internal/pkg/response"
)

// Handler handles team HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates team handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /team
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.repo.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list team members")
		response.InternalError(w)
		return
	}

	result := make([]*MemberResponse, len(members))
	for i := range members {
		result[i] = members[i].ToResponse()
	}

	response.OK(w, result)
}

// Routes returns team router. All routes are public.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}
