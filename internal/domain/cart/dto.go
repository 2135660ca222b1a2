package cart

import (
	"github.com/google/uuid"
)

// AddRequest for POST /cart
type AddRequest struct {
	ServiceID     uuid.UUID `json:"service_id" validate:"required"`
	EventDate     string    `json:"event_date" validate:"required,event_date"`
	EventTime     string    `json:"event_time" validate:"required,event_time"`
	EventLocation string    `json:"event_location" validate:"required,max=255"`
}

// ListResponse for GET /cart
type ListResponse struct {
	Items []*ItemResponse `json:"items"`
	Total float64         `json:"total"`
}

// NewListResponse builds the cart listing with a price total
func NewListResponse(items []Item) *ListResponse {
	resp := &ListResponse{Items: make([]*ItemResponse, len(items))}
	for i := range items {
		resp.Items[i] = items[i].ToResponse()
		resp.Total += items[i].ServicePrice
	}
	return resp
}
