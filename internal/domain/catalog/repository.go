package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines service catalog data access interface
type Repository interface {
	List(ctx context.Context, category string) ([]Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Service, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new catalog repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// List returns services, optionally filtered by category
func (r *repository) List(ctx context.Context, category string) ([]Service, error) {
	var services []Service
	if category != "" {
		query := `SELECT * FROM services WHERE category = $1 ORDER BY name`
		err := r.db.SelectContext(ctx, &services, query, category)
		return services, err
	}

	query := `SELECT * FROM services ORDER BY name`
	err := r.db.SelectContext(ctx, &services, query)
	return services, err
}

// GetByID returns a service by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Service, error) {
	query := `SELECT * FROM services WHERE id = $1`
	var service Service
	err := r.db.GetContext(ctx, &service, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

// Exists checks whether a service exists
func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM services WHERE id = $1)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}
