package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines booking data access interface
type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	CreateFromCart(ctx context.Context, booking *Booking, cartEntryID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, status Status) ([]Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	Update(ctx context.Context, booking *Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountConflicts(ctx context.Context, serviceID uuid.UUID, eventDate time.Time, eventTime string, excludeID uuid.UUID) (int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const insertQuery = `
	INSERT INTO bookings (id, user_id, service_id, event_date, event_time, event_location, status, booked_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// Create inserts a booking. A unique violation on the active-slot index
// means a concurrent request won the slot.
func (r *repository) Create(ctx context.Context, b *Booking) error {
	_, err := r.db.ExecContext(ctx, insertQuery,
		b.ID, b.UserID, b.ServiceID, b.EventDate, b.EventTime,
		b.EventLocation, b.Status, b.BookedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("booking repository create: %w", mapSlotViolation(err))
	}
	return nil
}

// CreateFromCart inserts a booking and deletes the source cart entry in one
// transaction. Either both happen or neither.
func (r *repository) CreateFromCart(ctx context.Context, b *Booking, cartEntryID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin promotion tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, insertQuery,
		b.ID, b.UserID, b.ServiceID, b.EventDate, b.EventTime,
		b.EventLocation, b.Status, b.BookedAt, b.UpdatedAt,
	); err != nil {
		return fmt.Errorf("promotion insert: %w", mapSlotViolation(err))
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM cart_items WHERE id = $1 AND user_id = $2`,
		cartEntryID, b.UserID,
	)
	if err != nil {
		return fmt.Errorf("promotion cart delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Entry vanished under us, abort the whole promotion
		return ErrCartItemNotFound
	}

	return tx.Commit()
}

// ListByUser returns the user's bookings ordered by event date descending,
// optionally filtered to one status.
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, status Status) ([]Booking, error) {
	var bookings []Booking
	if status != "" {
		query := `
			SELECT * FROM bookings
			WHERE user_id = $1 AND status = $2
			ORDER BY event_date DESC, booked_at DESC
		`
		err := r.db.SelectContext(ctx, &bookings, query, userID, status)
		return bookings, err
	}

	query := `
		SELECT * FROM bookings
		WHERE user_id = $1
		ORDER BY event_date DESC, booked_at DESC
	`
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	return bookings, err
}

// GetByID returns a booking by ID regardless of owner
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`
	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Update overwrites event fields, leaving status untouched
func (r *repository) Update(ctx context.Context, b *Booking) error {
	query := `
		UPDATE bookings
		SET service_id = $2, event_date = $3, event_time = $4, event_location = $5, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.ServiceID, b.EventDate, b.EventTime, b.EventLocation,
	)
	if err != nil {
		return fmt.Errorf("booking repository update: %w", mapSlotViolation(err))
	}
	return nil
}

// UpdateStatus changes booking status. Re-activating a cancelled booking
// re-enters the active-slot index and can conflict.
func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("booking repository update status: %w", mapSlotViolation(err))
	}
	return nil
}

// Delete removes a booking permanently
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// CountConflicts counts non-cancelled bookings occupying the slot,
// excluding excludeID (uuid.Nil to exclude nothing).
func (r *repository) CountConflicts(ctx context.Context, serviceID uuid.UUID, eventDate time.Time, eventTime string, excludeID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE service_id = $1 AND event_date = $2 AND event_time = $3
		  AND status <> 'cancelled'
		  AND id <> $4
	`
	var count int
	err := r.db.GetContext(ctx, &count, query, serviceID, eventDate, eventTime, excludeID)
	return count, err
}

// mapSlotViolation maps a pq unique violation on the active-slot index
// to ErrSlotUnavailable.
func mapSlotViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrSlotUnavailable
	}
	return err
}
