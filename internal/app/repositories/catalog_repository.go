package repositories

import (
	"context"
	"sync"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// CatalogRepository holds the read-mostly listings: jobs, success stories and badges.
type CatalogRepository struct {
	jobs    *store[models.Job]
	stories *store[models.SuccessStory]
	badges  *store[models.Badge]

	mu       sync.RWMutex
	earned   map[string]map[string]string // userID -> badgeID -> earned date
	progress map[string][]models.Progress
}

// NewCatalogRepository creates an empty CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		jobs: newStore(func(j *models.Job) string { return j.ID }, (*models.Job).Clone,
			apperrors.NewResourceNotFoundError("job not found")),
		stories: newStore(func(s *models.SuccessStory) string { return s.ID }, (*models.SuccessStory).Clone,
			apperrors.NewResourceNotFoundError("story not found")),
		badges: newStore(func(b *models.Badge) string { return b.ID }, (*models.Badge).Clone,
			apperrors.NewResourceNotFoundError("badge not found")),
		earned:   make(map[string]map[string]string),
		progress: make(map[string][]models.Progress),
	}
}

// AddJob stores a job listing
func (r *CatalogRepository) AddJob(ctx context.Context, j *models.Job) error {
	return r.jobs.insert(j)
}

// ListJobs returns every job listing
func (r *CatalogRepository) ListJobs(ctx context.Context) ([]*models.Job, error) {
	return r.jobs.all(), nil
}

// AddStory stores a success story
func (r *CatalogRepository) AddStory(ctx context.Context, s *models.SuccessStory) error {
	return r.stories.insert(s)
}

// ListStories returns every success story
func (r *CatalogRepository) ListStories(ctx context.Context) ([]*models.SuccessStory, error) {
	return r.stories.all(), nil
}

// AddBadge stores a badge definition. EarnedDate on the definition is ignored.
func (r *CatalogRepository) AddBadge(ctx context.Context, b *models.Badge) error {
	def := b.Clone()
	def.EarnedDate = nil
	return r.badges.insert(def)
}

// Award marks badgeID as earned by userID on date.
func (r *CatalogRepository) Award(ctx context.Context, userID, badgeID, date string) error {
	if _, err := r.badges.get(badgeID); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.earned[userID] == nil {
		r.earned[userID] = make(map[string]string)
	}
	r.earned[userID][badgeID] = date
	return nil
}

// ListBadges returns every badge with EarnedDate set for the ones userID earned.
func (r *CatalogRepository) ListBadges(ctx context.Context, userID string) ([]*models.Badge, error) {
	badges := r.badges.all()

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range badges {
		if date, ok := r.earned[userID][b.ID]; ok {
			b.EarnedDate = &date
		}
	}
	return badges, nil
}

// SetProgress replaces the progress items of userID
func (r *CatalogRepository) SetProgress(ctx context.Context, userID string, items []models.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress[userID] = append([]models.Progress(nil), items...)
}

// ListProgress returns the progress items of userID
func (r *CatalogRepository) ListProgress(ctx context.Context, userID string) ([]models.Progress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Progress{}, r.progress[userID]...), nil
}
