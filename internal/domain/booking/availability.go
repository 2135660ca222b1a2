package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ConflictCounter is the availability checker's view of the booking store
type ConflictCounter interface {
	CountConflicts(ctx context.Context, serviceID uuid.UUID, eventDate time.Time, eventTime string, excludeID uuid.UUID) (int, error)
}

// Checker decides whether a booking slot is free. The decision is advisory:
// the partial unique index on (service_id, event_date, event_time) for
// non-cancelled bookings is what actually serializes concurrent writers.
type Checker struct {
	store ConflictCounter
}

// NewChecker creates an availability checker
func NewChecker(store ConflictCounter) *Checker {
	return &Checker{store: store}
}

// IsAvailable reports whether the slot is free of non-cancelled bookings.
// excludeID lets an edited booking keep its own slot; pass uuid.Nil on create.
func (c *Checker) IsAvailable(ctx context.Context, serviceID uuid.UUID, eventDate time.Time, eventTime string, excludeID uuid.UUID) (bool, error) {
	count, err := c.store.CountConflicts(ctx, serviceID, eventDate, eventTime, excludeID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
