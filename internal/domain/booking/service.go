package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/owm/studio-api/internal/domain/cart"
	"github.com/owm/studio-api/internal/domain/catalog"
	"github.com/owm/studio-api/internal/domain/user"
)

// Mailer sends booking lifecycle notifications
type Mailer interface {
	SendBookingConfirmed(to, toName, serviceName, eventDate, eventTime string)
	SendBookingCancelled(to, toName, serviceName, eventDate string)
}

// Service handles booking business logic
type Service struct {
	repo        Repository
	checker     *Checker
	catalogRepo catalog.Repository
	cartRepo    cart.Repository
	userRepo    user.Repository
	mailer      Mailer // nil if email disabled
}

// NewService creates booking service
func NewService(repo Repository, checker *Checker, catalogRepo catalog.Repository, cartRepo cart.Repository, userRepo user.Repository, mailer Mailer) *Service {
	return &Service{
		repo:        repo,
		checker:     checker,
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		mailer:      mailer,
	}
}

// CreateDirect creates a pending booking from explicit event details.
// The availability check gives a clean error for the common case; the
// slot index catches the race when two requests pass the check together.
func (s *Service) CreateDirect(ctx context.Context, userID uuid.UUID, req *CreateRequest) (*Response, error) {
	svc, err := s.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("%w: event_date must be YYYY-MM-DD", ErrInvalidInput)
	}

	free, err := s.checker.IsAvailable(ctx, req.ServiceID, eventDate, req.EventTime, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotUnavailable
	}

	now := time.Now()
	b := &Booking{
		ID:            uuid.New(),
		UserID:        userID,
		ServiceID:     req.ServiceID,
		EventDate:     eventDate,
		EventTime:     req.EventTime,
		EventLocation: req.EventLocation,
		Status:        StatusPending,
		BookedAt:      now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.notifyConfirmed(ctx, b, svc.Name)

	resp := b.ToResponse()
	resp.ServiceName = svc.Name
	return resp, nil
}

// CreateFromCart promotes a cart entry into a booking. The insert and the
// cart delete run in one transaction, so a conflict rolls both back and
// the entry survives for the user to retry.
func (s *Service) CreateFromCart(ctx context.Context, userID, cartEntryID uuid.UUID) (*Response, error) {
	entry, err := s.cartRepo.GetByID(ctx, userID, cartEntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrCartItemNotFound
	}

	if entry.EventDate.IsZero() || entry.EventTime == "" || entry.EventLocation == "" {
		return nil, fmt.Errorf("%w: cart entry is missing event details", ErrInvalidInput)
	}

	eventTime := formatEventTime(entry.EventTime)

	free, err := s.checker.IsAvailable(ctx, entry.ServiceID, entry.EventDate, eventTime, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotUnavailable
	}

	now := time.Now()
	b := &Booking{
		ID:            uuid.New(),
		UserID:        userID,
		ServiceID:     entry.ServiceID,
		EventDate:     entry.EventDate,
		EventTime:     eventTime,
		EventLocation: entry.EventLocation,
		Status:        StatusPending,
		BookedAt:      now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateFromCart(ctx, b, cartEntryID); err != nil {
		return nil, err
	}

	serviceName := ""
	if svc, _ := s.catalogRepo.GetByID(ctx, entry.ServiceID); svc != nil {
		serviceName = svc.Name
	}
	s.notifyConfirmed(ctx, b, serviceName)

	resp := b.ToResponse()
	resp.ServiceName = serviceName
	return resp, nil
}

// List returns the user's bookings, optionally filtered to one status
func (s *Service) List(ctx context.Context, userID uuid.UUID, statusFilter string) ([]*Response, error) {
	if statusFilter != "" && !IsValidStatus(statusFilter) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, statusFilter)
	}

	bookings, err := s.repo.ListByUser(ctx, userID, Status(statusFilter))
	if err != nil {
		return nil, err
	}

	result := make([]*Response, len(bookings))
	for i := range bookings {
		result[i] = bookings[i].ToResponse()
	}
	return result, nil
}

// Get returns one booking owned by the user
func (s *Service) Get(ctx context.Context, userID, bookingID uuid.UUID) (*Response, error) {
	b, err := s.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	return b.ToResponse(), nil
}

// Update overwrites event details of an owned, non-completed booking.
// Status is left unchanged; the booking's own slot is excluded from the
// availability check so it can keep its date.
func (s *Service) Update(ctx context.Context, userID, bookingID uuid.UUID, req *UpdateRequest) (*Response, error) {
	b, err := s.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if !b.IsEditable() {
		return nil, ErrBookingCompleted
	}

	exists, err := s.catalogRepo.Exists(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrServiceNotFound
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("%w: event_date must be YYYY-MM-DD", ErrInvalidInput)
	}

	free, err := s.checker.IsAvailable(ctx, req.ServiceID, eventDate, req.EventTime, b.ID)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotUnavailable
	}

	b.ServiceID = req.ServiceID
	b.EventDate = eventDate
	b.EventTime = req.EventTime
	b.EventLocation = req.EventLocation

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b.ToResponse(), nil
}

// UpdateStatus applies a status transition. Owners may cancel and
// re-activate; only staff may mark a booking completed. Re-activation
// re-checks availability since the slot may have been taken meanwhile.
func (s *Service) UpdateStatus(ctx context.Context, userID uuid.UUID, isStaff bool, bookingID uuid.UUID, newStatus Status) (*Response, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil || (b.UserID != userID && !isStaff) {
		return nil, ErrBookingNotFound
	}

	if b.Status == newStatus {
		return b.ToResponse(), nil
	}

	if !b.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidStatusTransition
	}
	if newStatus == StatusCompleted && !isStaff {
		return nil, ErrForbidden
	}

	if newStatus == StatusPending {
		// cancelled -> pending re-enters the active slot
		free, err := s.checker.IsAvailable(ctx, b.ServiceID, b.EventDate, formatEventTime(b.EventTime), b.ID)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, ErrSlotUnavailable
		}
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}
	b.Status = newStatus

	if newStatus == StatusCancelled {
		serviceName := ""
		if svc, _ := s.catalogRepo.GetByID(ctx, b.ServiceID); svc != nil {
			serviceName = svc.Name
		}
		s.notifyCancelled(ctx, b, serviceName)
	}

	return b.ToResponse(), nil
}

// Delete removes a booking permanently. Staff may delete any booking,
// the owner only while it is pending.
func (s *Service) Delete(ctx context.Context, userID uuid.UUID, isStaff bool, bookingID uuid.UUID) error {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBookingNotFound
	}

	if !b.CanBeDeletedBy(userID, isStaff) {
		return ErrForbidden
	}

	return s.repo.Delete(ctx, bookingID)
}

// ownedBooking loads a booking and hides other users' bookings as not found
func (s *Service) ownedBooking(ctx context.Context, userID, bookingID uuid.UUID) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil || b.UserID != userID {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *Service) notifyConfirmed(ctx context.Context, b *Booking, serviceName string) {
	if s.mailer == nil || s.userRepo == nil {
		return
	}
	u, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil || u == nil {
		return
	}
	s.mailer.SendBookingConfirmed(u.Email, u.FullName(), serviceName,
		b.EventDate.Format("2006-01-02"), formatEventTime(b.EventTime))
}

func (s *Service) notifyCancelled(ctx context.Context, b *Booking, serviceName string) {
	if s.mailer == nil || s.userRepo == nil {
		return
	}
	u, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil || u == nil {
		return
	}
	s.mailer.SendBookingCancelled(u.Email, u.FullName(), serviceName,
		b.EventDate.Format("2006-01-02"))
}
