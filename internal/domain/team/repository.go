package team

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository handles team member database operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new team repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// List returns all team members
func (r *Repository) List(ctx context.Context) ([]Member, error) {
	query := `SELECT * FROM team_members ORDER BY name`
	var members []Member
	err := r.db.SelectContext(ctx, &members, query)
	return members, err
}
