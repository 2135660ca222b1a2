package cart

import (
	"time"

	"github.com/google/uuid"
)

// Entry represents a cart row, an intent to book that is not yet committed
type Entry struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	ServiceID     uuid.UUID `db:"service_id"`
	EventDate     time.Time `db:"event_date"`
	EventTime     string    `db:"event_time"`
	EventLocation string    `db:"event_location"`
	AddedAt       time.Time `db:"added_at"`
}

// Item is an entry enriched with the referenced service for display
type Item struct {
	ID            uuid.UUID `db:"id"`
	ServiceID     uuid.UUID `db:"service_id"`
	ServiceName   string    `db:"service_name"`
	ServicePrice  float64   `db:"service_price"`
	ServiceImage  *string   `db:"service_image"`
	EventDate     time.Time `db:"event_date"`
	EventTime     string    `db:"event_time"`
	EventLocation string    `db:"event_location"`
	AddedAt       time.Time `db:"added_at"`
}

// ItemResponse for API responses
type ItemResponse struct {
	ID            uuid.UUID `json:"id"`
	ServiceID     uuid.UUID `json:"service_id"`
	ServiceName   string    `json:"service_name"`
	ServicePrice  float64   `json:"service_price"`
	ServiceImage  string    `json:"service_image,omitempty"`
	EventDate     string    `json:"event_date"`
	EventTime     string    `json:"event_time"`
	EventLocation string    `json:"event_location"`
	AddedAt       string    `json:"added_at"`
}

// ToResponse converts an enriched item to a response
func (i *Item) ToResponse() *ItemResponse {
	resp := &ItemResponse{
		ID:            i.ID,
		ServiceID:     i.ServiceID,
		ServiceName:   i.ServiceName,
		ServicePrice:  i.ServicePrice,
		EventDate:     i.EventDate.Format("2006-01-02"),
		EventTime:     formatEventTime(i.EventTime),
		EventLocation: i.EventLocation,
		AddedAt:       i.AddedAt.Format(time.RFC3339),
	}
	if i.ServiceImage != nil {
		resp.ServiceImage = *i.ServiceImage
	}
	return resp
}

// formatEventTime trims a Postgres TIME value ("15:04:00") to HH:MM
func formatEventTime(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}
