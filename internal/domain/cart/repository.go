package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines cart data access interface
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Item, error)
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*Entry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new cart repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create inserts a cart entry
func (r *repository) Create(ctx context.Context, entry *Entry) error {
	query := `
		INSERT INTO cart_items (id, user_id, service_id, event_date, event_time, event_location, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.ServiceID,
		entry.EventDate,
		entry.EventTime,
		entry.EventLocation,
		entry.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("cart repository create: %w", err)
	}
	return nil
}

// ListByUser returns the user's cart entries enriched with service details
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Item, error) {
	query := `
		SELECT c.id, c.service_id, s.name AS service_name, s.price AS service_price,
		       s.image_key AS service_image,
		       c.event_date, c.event_time, c.event_location, c.added_at
		FROM cart_items c
		JOIN services s ON s.id = c.service_id
		WHERE c.user_id = $1
		ORDER BY c.added_at DESC
	`
	var items []Item
	err := r.db.SelectContext(ctx, &items, query, userID)
	return items, err
}

// GetByID returns a cart entry owned by the user
func (r *repository) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*Entry, error) {
	query := `SELECT * FROM cart_items WHERE id = $1 AND user_id = $2`
	var entry Entry
	err := r.db.GetContext(ctx, &entry, query, entryID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Delete removes a cart entry owned by the user. Returns false if no row matched.
func (r *repository) Delete(ctx context.Context, userID, entryID uuid.UUID) (bool, error) {
	query := `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, entryID, userID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
