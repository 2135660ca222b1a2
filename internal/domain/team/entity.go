package team

import (
	"database/sql"

	"github.com/google/uuid"
)

// Member represents a studio team member shown on the public site
type Member struct {
	ID       uuid.UUID      `db:"id"`
	Name     string         `db:"name"`
	Role     string         `db:"role"`
	PhotoKey sql.NullString `db:"photo_key"`
	Bio      string         `db:"bio"`
}

// MemberResponse for API responses
type MemberResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
	Photo string    `json:"photo,omitempty"`
	Bio   string    `json:"bio,omitempty"`
}

// ToResponse converts entity to response
func (m *Member) ToResponse() *MemberResponse {
	resp := &MemberResponse{
		ID:   m.ID,
		Name: m.Name,
		Role: m.Role,
		Bio:  m.Bio,
	}
	if m.PhotoKey.Valid {
		resp.Photo = m.PhotoKey.String
	}
	return resp
}
