package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/owm/studio-api/internal/domain/booking"
	"github.com/owm/studio-api/internal/domain/cart"
	"github.com/owm/studio-api/internal/domain/profile"
)

// Response is the composed dashboard view
type Response struct {
	Profile  *profile.Response  `json:"profile"`
	Bookings GroupedBookings    `json:"bookings"`
	Cart     *cart.ListResponse `json:"cart"`
}

// GroupedBookings holds the user's bookings split by status
type GroupedBookings struct {
	Pending   []*booking.Response `json:"pending"`
	Completed []*booking.Response `json:"completed"`
	Cancelled []*booking.Response `json:"cancelled"`
}

// Service composes profile, bookings and cart into one read view.
// No caching, recomputed per call.
type Service struct {
	profileService *profile.Service
	bookingService *booking.Service
	cartService    *cart.Service
}

// NewService creates dashboard service
func NewService(profileService *profile.Service, bookingService *booking.Service, cartService *cart.Service) *Service {
	return &Service{
		profileService: profileService,
		bookingService: bookingService,
		cartService:    cartService,
	}
}

// Get builds the dashboard for a user
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Response, error) {
	prof, err := s.profileService.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingService.List(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	grouped := GroupedBookings{
		Pending:   []*booking.Response{},
		Completed: []*booking.Response{},
		Cancelled: []*booking.Response{},
	}
	for _, b := range bookings {
		switch booking.Status(b.Status) {
		case booking.StatusPending:
			grouped.Pending = append(grouped.Pending, b)
		case booking.StatusCompleted:
			grouped.Completed = append(grouped.Completed, b)
		case booking.StatusCancelled:
			grouped.Cancelled = append(grouped.Cancelled, b)
		}
	}

	cartList, err := s.cartService.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Response{
		Profile:  prof,
		Bookings: grouped,
		Cart:     cartList,
	}, nil
}

// RemoveCartItem removes a cart entry and returns the refreshed cart
func (s *Service) RemoveCartItem(ctx context.Context, userID, entryID uuid.UUID) (*cart.ListResponse, error) {
	if err := s.cartService.Remove(ctx, userID, entryID); err != nil {
		return nil, err
	}
	return s.cartService.List(ctx, userID)
}
