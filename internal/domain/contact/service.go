package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Notifier delivers the contact notification to the studio inbox
type Notifier interface {
	SendContactNotification(ctx context.Context, studioEmail, name, fromEmail, phone, message string) error
}

// Service handles the contact flow: persist first, notify second.
// A failed notification never undoes the saved message.
type Service struct {
	repo        Repository
	notifier    Notifier // nil if email disabled
	studioEmail string
}

// NewService creates contact service
func NewService(repo Repository, notifier Notifier, studioEmail string) *Service {
	return &Service{
		repo:        repo,
		notifier:    notifier,
		studioEmail: studioEmail,
	}
}

// Submit saves the message, then attempts the notification email.
// The returned EmailSent flag reports partial success.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error) {
	msg := &Message{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		SentAt:  time.Now(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	emailSent := false
	if s.notifier != nil && s.studioEmail != "" {
		if err := s.notifier.SendContactNotification(ctx, s.studioEmail, msg.Name, msg.Email, msg.Phone, msg.Message); err != nil {
			log.Error().Err(err).Str("message_id", msg.ID.String()).Msg("contact notification failed after save")
		} else {
			emailSent = true
		}
	}

	return &SubmitResponse{
		ID:        msg.ID,
		EmailSent: emailSent,
	}, nil
}
