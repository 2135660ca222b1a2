package contact

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository defines contact message data access interface
type Repository interface {
	Create(ctx context.Context, msg *Message) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new contact repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create inserts a contact message
func (r *repository) Create(ctx context.Context, msg *Message) error {
	query := `
		INSERT INTO contact_messages (id, name, email, phone, message, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Message,
		msg.SentAt,
	)
	if err != nil {
		return fmt.Errorf("contact repository create: %w", err)
	}
	return nil
}
