package user

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Role represents user role in the system (matches user_role enum)
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

// User represents a user account (matches users table)
type User struct {
	ID              uuid.UUID      `db:"id"`
	Username        string         `db:"username"`
	Email           string         `db:"email"`
	PasswordHash    string         `db:"password_hash"`
	FirstName       string         `db:"first_name"`
	LastName        string         `db:"last_name"`
	Phone           sql.NullString `db:"phone"`
	Address         sql.NullString `db:"address"`
	ProfileImageKey sql.NullString `db:"profile_image_key"`
	Role            Role           `db:"role"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

// IsStaff returns true if user has staff privileges
func (u *User) IsStaff() bool {
	return u.Role == RoleStaff
}

// FullName returns the display name
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsValidRole checks if role is valid for registration
func IsValidRole(role string) bool {
	return role == string(RoleCustomer) || role == string(RoleStaff)
}
