package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/repositories"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
	"github.com/yigit/alumniconnect/internal/pkg/validation"
)

// MentorshipService defines the mentorship request workflow
type MentorshipService interface {
	ListRequests(ctx context.Context, principalID string) ([]*models.MentorshipRequest, error)
	CreateRequest(ctx context.Context, draft models.MentorshipDraft) (*models.MentorshipRequest, error)
	UpdateRequest(ctx context.Context, id string, patch models.MentorshipPatch) (*models.MentorshipRequest, error)
}

type mentorshipServiceImpl struct {
	mentorshipRepo *repositories.MentorshipRepository
	userRepo       *repositories.UserRepository
	settings       Settings
	logger         zerolog.Logger
}

// NewMentorshipService creates a new mentorship service instance
func NewMentorshipService(
	mentorshipRepo *repositories.MentorshipRepository,
	userRepo *repositories.UserRepository,
	settings Settings,
	logger zerolog.Logger,
) MentorshipService {
	return &mentorshipServiceImpl{
		mentorshipRepo: mentorshipRepo,
		userRepo:       userRepo,
		settings:       settings.withDefaults(),
		logger:         logger,
	}
}

// ListRequests returns the requests principalID takes part in, as student or mentor.
// An empty principalID lists everything.
func (s *mentorshipServiceImpl) ListRequests(ctx context.Context, principalID string) ([]*models.MentorshipRequest, error) {
	if principalID == "" {
		return s.mentorshipRepo.List(ctx)
	}
	return s.mentorshipRepo.ListForPrincipal(ctx, principalID)
}

// CreateRequest stores a new request. The status defaults to pending.
func (s *mentorshipServiceImpl) CreateRequest(ctx context.Context, draft models.MentorshipDraft) (*models.MentorshipRequest, error) {
	if errs := validation.ValidateMentorshipDraft(draft); !errs.Valid() {
		return nil, errs.Err()
	}
	if draft.StudentID == "" {
		return nil, fmt.Errorf("%w: student id is required", apperrors.ErrValidationFailed)
	}

	status := draft.Status
	if status == "" {
		status = models.MentorshipPending
	}
	if !status.Valid() {
		return nil, apperrors.ErrUnknownStatus
	}

	if draft.MentorID != "" {
		mentor, err := s.userRepo.GetByID(ctx, draft.MentorID)
		if err != nil {
			return nil, err
		}
		if mentor.Role != models.RoleAlumni {
			return nil, apperrors.NewBadRequestError("mentors must be alumni")
		}
	}

	now := s.settings.Now()
	req := &models.MentorshipRequest{
		ID:        s.settings.NewID(),
		StudentID: draft.StudentID,
		MentorID:  draft.MentorID,
		Status:    status,
		Subject:   strings.TrimSpace(draft.Subject),
		Message:   strings.TrimSpace(draft.Message),
		Goals:     draft.Goals,
		Duration:  draft.Duration,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.mentorshipRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("error creating mentorship request: %w", err)
	}

	s.logger.Info().Str("requestID", req.ID).Str("studentID", req.StudentID).Msg("Mentorship request created")
	return req, nil
}

// UpdateRequest moves a request to patch.Status. Only status and updatedAt change.
func (s *mentorshipServiceImpl) UpdateRequest(ctx context.Context, id string, patch models.MentorshipPatch) (*models.MentorshipRequest, error) {
	if !patch.Status.Valid() {
		return nil, apperrors.ErrUnknownStatus
	}

	req, err := s.mentorshipRepo.Update(ctx, id, func(m *models.MentorshipRequest) error {
		if s.settings.StrictTransitions && !m.Status.CanTransitionTo(patch.Status) {
			return fmt.Errorf("%w: %s to %s", apperrors.ErrIllegalTransition, m.Status, patch.Status)
		}
		m.Status = patch.Status
		m.UpdatedAt = s.settings.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("requestID", id).Str("status", string(req.Status)).Msg("Mentorship request updated")
	return req, nil
}
