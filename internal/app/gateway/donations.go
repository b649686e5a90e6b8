package gateway

import (
	"context"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
)

// ListDonations returns every donation.
func (g *Gateway) ListDonations(ctx context.Context) (dto.Result[[]*models.Donation], error) {
	return call(ctx, g, OpListDonations, func(ctx context.Context) ([]*models.Donation, string, error) {
		donations, err := g.services.Donation.ListDonations(ctx)
		return donations, "", err
	})
}

// CreateDonation records a donation.
func (g *Gateway) CreateDonation(ctx context.Context, draft models.DonationDraft) (dto.Result[*models.Donation], error) {
	return call(ctx, g, OpCreateDonation, func(ctx context.Context) (*models.Donation, string, error) {
		donation, err := g.services.Donation.CreateDonation(ctx, draft)
		if err != nil {
			return nil, "", err
		}
		g.publish(ctx, activity.DonationCreated, donation.DonorID, donation.ID, map[string]string{
			"amount":  donation.Amount.String(),
			"purpose": donation.Purpose,
		})
		return donation, "Donation processed successfully", nil
	})
}
