package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/dashboard"
	"github.com/yigit/alumniconnect/internal/app/services"
	"github.com/yigit/alumniconnect/internal/middleware"
)

// DashboardController serves the role specific landing page
type DashboardController struct {
	alumniService services.AlumniService
	composer      *dashboard.Composer
	logger        zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(alumniService services.AlumniService, composer *dashboard.Composer, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		alumniService: alumniService,
		composer:      composer,
		logger:        logger,
	}
}

// Get handles GET /dashboard
func (c *DashboardController) Get(ctx *gin.Context) {
	me, err := c.alumniService.GetAlumni(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	d, err := c.composer.Compose(ctx.Request.Context(), me)
	if err != nil {
		c.logger.Error().Err(err).Str("userID", me.ID).Msg("Failed to compose dashboard")
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, d, "")
}
