package catalog

import (
	"context"

	"github.com/google/uuid"
)

// CatalogService handles catalog reads with a cache in front of the repository
type CatalogService struct {
	repo  Repository
	cache *Cache
}

// NewService creates catalog service
func NewService(repo Repository, cache *Cache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

// List returns services, optionally filtered by category
func (s *CatalogService) List(ctx context.Context, category string) ([]*ServiceResponse, error) {
	if category != "" && !IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	if cached := s.cache.Get(ctx, category); cached != nil {
		return cached, nil
	}

	services, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}

	result := make([]*ServiceResponse, len(services))
	for i := range services {
		result[i] = services[i].ToResponse()
	}

	s.cache.Set(ctx, category, result)
	return result, nil
}

// Get returns one service by ID
func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*ServiceResponse, error) {
	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}
	return service.ToResponse(), nil
}
