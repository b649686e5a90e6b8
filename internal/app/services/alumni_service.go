package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/repositories"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
	"github.com/yigit/alumniconnect/internal/pkg/validation"
)

// AlumniService defines the directory operations
type AlumniService interface {
	ListAlumni(ctx context.Context) ([]*models.User, error)
	GetAlumni(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, patch models.UserPatch) (*models.User, error)
}

type alumniServiceImpl struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewAlumniService creates a new alumni service instance
func NewAlumniService(userRepo *repositories.UserRepository, logger zerolog.Logger) AlumniService {
	return &alumniServiceImpl{userRepo: userRepo, logger: logger}
}

// ListAlumni returns every alumni principal in directory order
func (s *alumniServiceImpl) ListAlumni(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.ListByRole(ctx, models.RoleAlumni)
	if err != nil {
		return nil, fmt.Errorf("error retrieving alumni: %w", err)
	}
	return users, nil
}

// GetAlumni returns one principal by id. Any role may be looked up.
func (s *alumniServiceImpl) GetAlumni(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", apperrors.ErrValidationFailed)
	}
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile merges patch into the profile of userID.
func (s *alumniServiceImpl) UpdateProfile(ctx context.Context, userID string, patch models.UserPatch) (*models.User, error) {
	if errs := validation.ValidateProfile(patch); !errs.Valid() {
		return nil, errs.Err()
	}

	user, err := s.userRepo.Update(ctx, userID, func(u *models.User) error {
		patch.Apply(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("userID", userID).Msg("Profile updated")
	return user, nil
}
