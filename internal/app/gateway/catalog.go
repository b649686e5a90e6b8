package gateway

import (
	"context"

	"github.com/yigit/alumniconnect/internal/app/filters"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
)

// BadgeBoard is a user's badge collection with progress toward the next ones.
type BadgeBoard struct {
	Badges   []*models.Badge    `json:"badges"`
	Progress []models.Progress  `json:"progress"`
	Stats    filters.BadgeStats `json:"stats"`
}

// ListJobs returns every job listing.
func (g *Gateway) ListJobs(ctx context.Context) (dto.Result[[]*models.Job], error) {
	return call(ctx, g, OpListJobs, func(ctx context.Context) ([]*models.Job, string, error) {
		jobs, err := g.services.Catalog.ListJobs(ctx)
		return jobs, "", err
	})
}

// ListStories returns every success story.
func (g *Gateway) ListStories(ctx context.Context) (dto.Result[[]*models.SuccessStory], error) {
	return call(ctx, g, OpListStories, func(ctx context.Context) ([]*models.SuccessStory, string, error) {
		stories, err := g.services.Catalog.ListStories(ctx)
		return stories, "", err
	})
}

// ListBadges returns the badge board of userID.
func (g *Gateway) ListBadges(ctx context.Context, userID string) (dto.Result[*BadgeBoard], error) {
	return call(ctx, g, OpListBadges, func(ctx context.Context) (*BadgeBoard, string, error) {
		badges, err := g.services.Catalog.ListBadges(ctx, userID)
		if err != nil {
			return nil, "", err
		}
		progress, err := g.services.Catalog.ListProgress(ctx, userID)
		if err != nil {
			return nil, "", err
		}
		return &BadgeBoard{Badges: badges, Progress: progress, Stats: filters.ComputeBadgeStats(badges)}, "", nil
	})
}
