package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/owm/studio-api/internal/domain/user"
)

// UpdateRequest for PUT /profile
type UpdateRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Email     string `json:"email" validate:"required,email,max=255"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Address   string `json:"address" validate:"omitempty,max=255"`
}

// ChangePasswordRequest for PUT /profile/password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
}

// Response represents a profile in API responses
type Response struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    string    `json:"created_at"`
}

// ImageResponse returned after image upload
type ImageResponse struct {
	ProfileImage string `json:"profile_image"`
	Thumbnail    string `json:"thumbnail"`
}

// NewResponse converts a user entity to a profile response
func NewResponse(u *user.User) *Response {
	resp := &Response{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.Phone.Valid {
		resp.Phone = u.Phone.String
	}
	if u.Address.Valid {
		resp.Address = u.Address.String
	}
	if u.ProfileImageKey.Valid {
		resp.ProfileImage = u.ProfileImageKey.String
	}
	return resp
}
