package repositories

import (
	"context"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// EventRepository keeps events in creation order
type EventRepository struct {
	events *store[models.Event]
}

// NewEventRepository creates an empty EventRepository
func NewEventRepository() *EventRepository {
	return &EventRepository{
		events: newStore(func(e *models.Event) string { return e.ID }, (*models.Event).Clone, apperrors.ErrEventNotFound),
	}
}

// Create stores a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.events.insert(event)
}

// GetByID returns the event with id
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return r.events.get(id)
}

// List returns every event
func (r *EventRepository) List(ctx context.Context) ([]*models.Event, error) {
	return r.events.all(), nil
}

// Update mutates an event atomically
func (r *EventRepository) Update(ctx context.Context, id string, fn func(*models.Event) error) (*models.Event, error) {
	return r.events.update(id, fn)
}
