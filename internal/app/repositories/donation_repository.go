package repositories

import (
	"context"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// DonationRepository keeps donations
type DonationRepository struct {
	donations *store[models.Donation]
}

// NewDonationRepository creates an empty DonationRepository
func NewDonationRepository() *DonationRepository {
	return &DonationRepository{
		donations: newStore(func(d *models.Donation) string { return d.ID },
			(*models.Donation).Clone, apperrors.NewResourceNotFoundError("donation not found")),
	}
}

// Create stores a new donation
func (r *DonationRepository) Create(ctx context.Context, d *models.Donation) error {
	return r.donations.insert(d)
}

// List returns every donation
func (r *DonationRepository) List(ctx context.Context) ([]*models.Donation, error) {
	return r.donations.all(), nil
}

// ListByDonor returns the donations made by donorID
func (r *DonationRepository) ListByDonor(ctx context.Context, donorID string) ([]*models.Donation, error) {
	return r.donations.filter(func(d *models.Donation) bool { return d.DonorID == donorID }), nil
}
