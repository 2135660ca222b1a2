package booking

import (
	"time"

	"github.com/google/uuid"
)

// Status represents booking status (matches booking_status enum)
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValidStatus checks if status is one of the known values
func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status change is allowed.
// pending -> cancelled, cancelled -> pending and pending -> completed
// are the only transitions; completed is terminal.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusCancelled || target == StatusCompleted
	case StatusCancelled:
		return target == StatusPending
	default:
		return false
	}
}

// Booking represents a committed reservation of a service slot
type Booking struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	ServiceID     uuid.UUID `db:"service_id"`
	EventDate     time.Time `db:"event_date"`
	EventTime     string    `db:"event_time"`
	EventLocation string    `db:"event_location"`
	Status        Status    `db:"status"`
	BookedAt      time.Time `db:"booked_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// IsEditable reports whether event details may still change
func (b *Booking) IsEditable() bool {
	return b.Status != StatusCompleted
}

// CanBeDeletedBy reports whether the requester may delete this booking.
// Staff may delete any booking, the owner only while it is pending.
func (b *Booking) CanBeDeletedBy(requesterID uuid.UUID, isStaff bool) bool {
	if isStaff {
		return true
	}
	return b.UserID == requesterID && b.Status == StatusPending
}
