package booking

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest for POST /bookings
type CreateRequest struct {
	ServiceID     uuid.UUID `json:"service_id" validate:"required"`
	EventDate     string    `json:"event_date" validate:"required,event_date"`
	EventTime     string    `json:"event_time" validate:"required,event_time"`
	EventLocation string    `json:"event_location" validate:"required,max=255"`
}

// FromCartRequest for POST /bookings/from-cart
type FromCartRequest struct {
	CartItemID uuid.UUID `json:"cart_item_id" validate:"required"`
}

// UpdateRequest for PUT /bookings/{id}
type UpdateRequest struct {
	ServiceID     uuid.UUID `json:"service_id" validate:"required"`
	EventDate     string    `json:"event_date" validate:"required,event_date"`
	EventTime     string    `json:"event_time" validate:"required,event_time"`
	EventLocation string    `json:"event_location" validate:"required,max=255"`
}

// UpdateStatusRequest for PATCH /bookings/{id}/status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed cancelled"`
}

// Response represents a booking in API responses
type Response struct {
	ID            uuid.UUID `json:"id"`
	ServiceID     uuid.UUID `json:"service_id"`
	ServiceName   string    `json:"service_name,omitempty"`
	EventDate     string    `json:"event_date"`
	EventTime     string    `json:"event_time"`
	EventLocation string    `json:"event_location"`
	Status        string    `json:"status"`
	BookedAt      string    `json:"booked_at"`
}

// ToResponse converts entity to response
func (b *Booking) ToResponse() *Response {
	return &Response{
		ID:            b.ID,
		ServiceID:     b.ServiceID,
		EventDate:     b.EventDate.Format("2006-01-02"),
		EventTime:     formatEventTime(b.EventTime),
		EventLocation: b.EventLocation,
		Status:        string(b.Status),
		BookedAt:      b.BookedAt.Format(time.RFC3339),
	}
}

// formatEventTime trims a Postgres TIME value ("15:04:00") to HH:MM
func formatEventTime(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}
