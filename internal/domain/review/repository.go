package review

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles review database operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new review repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new review
func (r *Repository) Create(ctx context.Context, review *Review) error {
	query := `
		INSERT INTO reviews (id, user_id, service_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.UserID,
		review.ServiceID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)
	return err
}

// List returns recent reviews, optionally scoped to one service
func (r *Repository) List(ctx context.Context, serviceID uuid.UUID, limit, offset int) ([]Review, error) {
	var reviews []Review
	if serviceID != uuid.Nil {
		query := `
			SELECT r.*, u.username
			FROM reviews r
			JOIN users u ON u.id = r.user_id
			WHERE r.service_id = $1
			ORDER BY r.created_at DESC
			LIMIT $2 OFFSET $3
		`
		err := r.db.SelectContext(ctx, &reviews, query, serviceID, limit, offset)
		return reviews, err
	}

	query := `
		SELECT r.*, u.username
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		ORDER BY r.created_at DESC
		LIMIT $1 OFFSET $2
	`
	err := r.db.SelectContext(ctx, &reviews, query, limit, offset)
	return reviews, err
}

// GetAverageRating returns average rating for a service
func (r *Repository) GetAverageRating(ctx context.Context, serviceID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE service_id = $1`
	var avg float64
	err := r.db.GetContext(ctx, &avg, query, serviceID)
	return avg, err
}

// ServiceExists checks the referenced service
func (r *Repository) ServiceExists(ctx context.Context, serviceID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM services WHERE id = $1)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, serviceID)
	return exists, err
}
