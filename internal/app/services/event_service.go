package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/repositories"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// EventService defines event operations
type EventService interface {
	ListEvents(ctx context.Context) ([]*models.Event, error)
	RegisterForEvent(ctx context.Context, eventID, userID string) (*models.Event, error)
}

type eventServiceImpl struct {
	eventRepo *repositories.EventRepository
	logger    zerolog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo *repositories.EventRepository, logger zerolog.Logger) EventService {
	return &eventServiceImpl{eventRepo: eventRepo, logger: logger}
}

// ListEvents returns every event
func (s *eventServiceImpl) ListEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}
	return events, nil
}

// RegisterForEvent takes a seat for userID.
// A second registration by the same user and a full event are both refused
// without touching the attendee count.
func (s *eventServiceImpl) RegisterForEvent(ctx context.Context, eventID, userID string) (*models.Event, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidationFailed)
	}

	event, err := s.eventRepo.Update(ctx, eventID, func(e *models.Event) error {
		if e.IsRegistered(userID) {
			return apperrors.ErrAlreadyRegistered
		}
		if e.IsFull() {
			return apperrors.ErrEventFull
		}
		e.RegisteredUsers = append(e.RegisteredUsers, userID)
		e.CurrentAttendees++
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("eventID", eventID).Str("userID", userID).Int("attendees", event.CurrentAttendees).Msg("Registered for event")
	return event, nil
}
