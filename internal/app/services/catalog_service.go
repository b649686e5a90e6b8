package services

import (
	"context"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/repositories"
)

// CatalogService exposes the read-only listings
type CatalogService interface {
	ListJobs(ctx context.Context) ([]*models.Job, error)
	ListStories(ctx context.Context) ([]*models.SuccessStory, error)
	ListBadges(ctx context.Context, userID string) ([]*models.Badge, error)
	ListProgress(ctx context.Context, userID string) ([]models.Progress, error)
}

type catalogServiceImpl struct {
	catalogRepo *repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo *repositories.CatalogRepository) CatalogService {
	return &catalogServiceImpl{catalogRepo: catalogRepo}
}

func (s *catalogServiceImpl) ListJobs(ctx context.Context) ([]*models.Job, error) {
	return s.catalogRepo.ListJobs(ctx)
}

func (s *catalogServiceImpl) ListStories(ctx context.Context) ([]*models.SuccessStory, error) {
	return s.catalogRepo.ListStories(ctx)
}

func (s *catalogServiceImpl) ListBadges(ctx context.Context, userID string) ([]*models.Badge, error) {
	return s.catalogRepo.ListBadges(ctx, userID)
}

func (s *catalogServiceImpl) ListProgress(ctx context.Context, userID string) ([]models.Progress, error) {
	return s.catalogRepo.ListProgress(ctx, userID)
}
