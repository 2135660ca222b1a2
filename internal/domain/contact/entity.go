package contact

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a persisted contact-form submission
type Message struct {
	ID      uuid.UUID `db:"id"`
	Name    string    `db:"name"`
	Email   string    `db:"email"`
	Phone   string    `db:"phone"`
	Message string    `db:"message"`
	SentAt  time.Time `db:"sent_at"`
}
