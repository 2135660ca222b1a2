package catalog

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Category represents a service category (matches service_category enum)
type Category string

const (
	CategoryVideo Category = "video"
	CategoryAudio Category = "audio"
	CategoryPhoto Category = "photo"
)

// IsValidCategory checks if category is one of the known values
func IsValidCategory(c string) bool {
	switch Category(c) {
	case CategoryVideo, CategoryAudio, CategoryPhoto:
		return true
	default:
		return false
	}
}

// Service represents a bookable catalog item
type Service struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Category    Category       `db:"category"`
	Description string         `db:"description"`
	Price       float64        `db:"price"`
	ImageKey    sql.NullString `db:"image_key"`
	CreatedAt   time.Time      `db:"created_at"`
}

// ServiceResponse for API responses
type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

// ToResponse converts entity to response
func (s *Service) ToResponse() *ServiceResponse {
	resp := &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    string(s.Category),
		Description: s.Description,
		Price:       s.Price,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
	if s.ImageKey.Valid {
		resp.Image = s.ImageKey.String
	}
	return resp
}
