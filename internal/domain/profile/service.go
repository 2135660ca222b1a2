package profile

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/owm/studio-api/internal/domain/user"
	"github.com/owm/studio-api/internal/pkg/imaging"
	"github.com/owm/studio-api/internal/pkg/password"
	"github.com/owm/studio-api/internal/pkg/storage"
)

// Service handles profile business logic
type Service struct {
	userRepo  user.Repository
	storage   storage.Storage
	processor *imaging.Processor
}

// NewService creates profile service
func NewService(userRepo user.Repository, store storage.Storage, processor *imaging.Processor) *Service {
	return &Service{
		userRepo:  userRepo,
		storage:   store,
		processor: processor,
	}
}

// Get returns the profile for a user
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Response, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrProfileNotFound
	}
	return NewResponse(u), nil
}

// Update updates profile fields. Email and username must remain unique
// across other accounts.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, req *UpdateRequest) (*Response, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrProfileNotFound
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Uniqueness checks exclude the user's own record
	if existing, _ := s.userRepo.GetByEmail(ctx, email); existing != nil && existing.ID != userID {
		return nil, ErrEmailAlreadyExists
	}
	if existing, _ := s.userRepo.GetByUsername(ctx, req.Username); existing != nil && existing.ID != userID {
		return nil, ErrUsernameAlreadyExists
	}

	u.Username = req.Username
	u.Email = email
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.Phone = sql.NullString{String: req.Phone, Valid: req.Phone != ""}
	u.Address = sql.NullString{String: req.Address, Valid: req.Address != ""}

	if err := s.userRepo.Update(ctx, u); err != nil {
		switch err {
		case user.ErrEmailAlreadyExists:
			return nil, ErrEmailAlreadyExists
		case user.ErrUsernameAlreadyExists:
			return nil, ErrUsernameAlreadyExists
		}
		return nil, err
	}

	return NewResponse(u), nil
}

// ChangePassword verifies the current password and sets a new one
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, req *ChangePasswordRequest) error {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrProfileNotFound
	}

	if !password.Verify(req.CurrentPassword, u.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, hash)
}

// UploadImage processes and stores a profile image with a thumbnail
func (s *Service) UploadImage(ctx context.Context, userID uuid.UUID, reader io.Reader, filename string, size int64) (*ImageResponse, error) {
	if !imaging.ValidateType(filename) {
		return nil, ErrInvalidImage
	}
	if size > imaging.MaxFileSize {
		return nil, ErrImageTooLarge
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrProfileNotFound
	}

	processed, err := s.processor.Process(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	originalKey, thumbKey := imaging.GeneratePaths(userID.String(), filename)

	if err := s.storage.Put(ctx, originalKey, bytes.NewReader(processed.Original), processed.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	if err := s.storage.Put(ctx, thumbKey, bytes.NewReader(processed.Thumbnail), processed.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store thumbnail: %w", err)
	}

	if err := s.userRepo.UpdateProfileImage(ctx, userID, originalKey); err != nil {
		return nil, err
	}

	return &ImageResponse{
		ProfileImage: originalKey,
		Thumbnail:    thumbKey,
	}, nil
}
