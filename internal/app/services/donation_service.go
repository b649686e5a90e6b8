package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/repositories"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
	"github.com/yigit/alumniconnect/internal/pkg/validation"
)

// DonationService defines donation operations
type DonationService interface {
	ListDonations(ctx context.Context) ([]*models.Donation, error)
	ListByDonor(ctx context.Context, donorID string) ([]*models.Donation, error)
	CreateDonation(ctx context.Context, draft models.DonationDraft) (*models.Donation, error)
}

type donationServiceImpl struct {
	donationRepo *repositories.DonationRepository
	userRepo     *repositories.UserRepository
	settings     Settings
	logger       zerolog.Logger
}

// NewDonationService creates a new donation service instance
func NewDonationService(
	donationRepo *repositories.DonationRepository,
	userRepo *repositories.UserRepository,
	settings Settings,
	logger zerolog.Logger,
) DonationService {
	return &donationServiceImpl{
		donationRepo: donationRepo,
		userRepo:     userRepo,
		settings:     settings.withDefaults(),
		logger:       logger,
	}
}

// ListDonations returns every donation
func (s *donationServiceImpl) ListDonations(ctx context.Context) ([]*models.Donation, error) {
	return s.donationRepo.List(ctx)
}

// ListByDonor returns the donations made by donorID
func (s *donationServiceImpl) ListByDonor(ctx context.Context, donorID string) ([]*models.Donation, error) {
	return s.donationRepo.ListByDonor(ctx, donorID)
}

// CreateDonation records a completed donation.
// Recurring gifts need a frequency, one-off gifts never keep one.
func (s *donationServiceImpl) CreateDonation(ctx context.Context, draft models.DonationDraft) (*models.Donation, error) {
	switch {
	case draft.Amount <= 0:
		return nil, apperrors.ErrInvalidAmount
	case draft.IsRecurring && !draft.Frequency.Valid():
		return nil, apperrors.ErrInvalidFrequency
	}
	if errs := validation.ValidateDonationDraft(draft); !errs.Valid() {
		return nil, errs.Err()
	}
	if draft.DonorID == "" {
		return nil, fmt.Errorf("%w: donor id is required", apperrors.ErrValidationFailed)
	}

	donorName := strings.TrimSpace(draft.DonorName)
	if donorName == "" && !draft.IsAnonymous {
		donor, err := s.userRepo.GetByID(ctx, draft.DonorID)
		switch {
		case err == nil:
			donorName = donor.FullName()
		case !errors.Is(err, apperrors.ErrUserNotFound):
			return nil, err
		}
	}
	if draft.IsAnonymous {
		donorName = ""
	}

	frequency := draft.Frequency
	if !draft.IsRecurring {
		frequency = ""
	}

	donation := &models.Donation{
		ID:          s.settings.NewID(),
		DonorID:     draft.DonorID,
		Amount:      draft.Amount,
		Purpose:     strings.TrimSpace(draft.Purpose),
		IsRecurring: draft.IsRecurring,
		Frequency:   frequency,
		IsAnonymous: draft.IsAnonymous,
		DonorName:   donorName,
		Message:     draft.Message,
		Status:      models.DonationCompleted,
		CreatedAt:   s.settings.Now(),
	}
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("error creating donation: %w", err)
	}

	s.logger.Info().Str("donationID", donation.ID).Str("amount", donation.Amount.String()).Msg("Donation processed")
	return donation, nil
}
