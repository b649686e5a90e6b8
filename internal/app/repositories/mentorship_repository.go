package repositories

import (
	"context"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// MentorshipRepository keeps mentorship requests
type MentorshipRepository struct {
	requests *store[models.MentorshipRequest]
}

// NewMentorshipRepository creates an empty MentorshipRepository
func NewMentorshipRepository() *MentorshipRepository {
	return &MentorshipRepository{
		requests: newStore(func(m *models.MentorshipRequest) string { return m.ID },
			(*models.MentorshipRequest).Clone, apperrors.ErrMentorshipNotFound),
	}
}

// Create stores a new request
func (r *MentorshipRepository) Create(ctx context.Context, req *models.MentorshipRequest) error {
	return r.requests.insert(req)
}

// GetByID returns the request with id
func (r *MentorshipRepository) GetByID(ctx context.Context, id string) (*models.MentorshipRequest, error) {
	return r.requests.get(id)
}

// List returns every request
func (r *MentorshipRepository) List(ctx context.Context) ([]*models.MentorshipRequest, error) {
	return r.requests.all(), nil
}

// ListForPrincipal returns the requests where userID is the student or the mentor
func (r *MentorshipRepository) ListForPrincipal(ctx context.Context, userID string) ([]*models.MentorshipRequest, error) {
	return r.requests.filter(func(m *models.MentorshipRequest) bool {
		return m.StudentID == userID || m.MentorID == userID
	}), nil
}

// Update mutates a request atomically
func (r *MentorshipRepository) Update(ctx context.Context, id string, fn func(*models.MentorshipRequest) error) (*models.MentorshipRequest, error) {
	return r.requests.update(id, fn)
}
