package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/dashboard"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/app/services"
	"github.com/yigit/alumniconnect/internal/middleware"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
)

// DonationController handles gifts and the fundraising summary
type DonationController struct {
	donationService services.DonationService
	alumniService   services.AlumniService
	composer        *dashboard.Composer
	now             func() time.Time
	notifier
	logger zerolog.Logger
}

// NewDonationController creates a new DonationController
func NewDonationController(
	donationService services.DonationService,
	alumniService services.AlumniService,
	composer *dashboard.Composer,
	events activity.Publisher,
	logger zerolog.Logger,
) *DonationController {
	return &DonationController{
		donationService: donationService,
		alumniService:   alumniService,
		composer:        composer,
		now:             time.Now,
		notifier:        newNotifier(events, logger),
		logger:          logger,
	}
}

// List handles GET /donations. Admins see every donation, alumni their own.
func (c *DonationController) List(ctx *gin.Context) {
	var (
		donations []*models.Donation
		err       error
	)
	if role, _ := middleware.CurrentRole(ctx); role == models.RoleAdmin {
		donations, err = c.donationService.ListDonations(ctx.Request.Context())
	} else {
		donations, err = c.donationService.ListByDonor(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, donations, "")
}

// Create handles POST /donations
func (c *DonationController) Create(ctx *gin.Context) {
	var req dto.CreateDonationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	donorID := middleware.CurrentUserID(ctx)
	donation, err := c.donationService.CreateDonation(ctx.Request.Context(), models.DonationDraft{
		DonorID:     donorID,
		Amount:      req.Amount,
		Purpose:     req.Purpose,
		IsRecurring: req.IsRecurring,
		Frequency:   req.Frequency,
		IsAnonymous: req.IsAnonymous,
		Message:     req.Message,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.publish(ctx.Request.Context(), activity.DonationCreated, donorID, donation.ID, map[string]string{
		"amount":  donation.Amount.String(),
		"purpose": donation.Purpose,
	})
	respond(ctx, http.StatusCreated, donation, "Thank you for your donation!")
}

// Summary handles GET /donations/summary
func (c *DonationController) Summary(ctx *gin.Context) {
	me, err := c.alumniService.GetAlumni(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summary, err := c.composer.Donations(ctx.Request.Context(), me, c.now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, summary, "")
}
