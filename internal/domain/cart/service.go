package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/owm/studio-api/internal/domain/catalog"
)

// Service handles cart business logic
type Service struct {
	repo        Repository
	catalogRepo catalog.Repository
}

// NewService creates cart service
func NewService(repo Repository, catalogRepo catalog.Repository) *Service {
	return &Service{repo: repo, catalogRepo: catalogRepo}
}

// Add creates a cart entry. Availability is not checked here: multiple users
// may cart the same slot, the conflict is resolved only at booking time.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, req *AddRequest) (*ItemResponse, error) {
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

	entry := &Entry{
		ID:            uuid.New(),
		UserID:        userID,
		ServiceID:     req.ServiceID,
		EventDate:     eventDate,
		EventTime:     req.EventTime,
		EventLocation: req.EventLocation,
		AddedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	service, err := s.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil || service == nil {
		return nil, ErrServiceNotFound
	}

	item := Item{
		ID:            entry.ID,
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		ServicePrice:  service.Price,
		EventDate:     entry.EventDate,
		EventTime:     entry.EventTime,
		EventLocation: entry.EventLocation,
		AddedAt:       entry.AddedAt,
	}
	if service.ImageKey.Valid {
		img := service.ImageKey.String
		item.ServiceImage = &img
	}
	return item.ToResponse(), nil
}

// List returns the user's cart
func (s *Service) List(ctx context.Context, userID uuid.UUID) (*ListResponse, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NewListResponse(items), nil
}

// Remove deletes a cart entry. Removing an absent or foreign entry fails
// with ErrItemNotFound, repeated deletes are not silently successful.
func (s *Service) Remove(ctx context.Context, userID, entryID uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}
