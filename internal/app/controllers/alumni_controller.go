package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/filters"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/app/services"
	"github.com/yigit/alumniconnect/internal/middleware"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
	"github.com/yigit/alumniconnect/internal/pkg/helpers"
)

// AlumniController serves the directory and the caller's own profile
type AlumniController struct {
	alumniService services.AlumniService
	notifier
	logger zerolog.Logger
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService services.AlumniService, events activity.Publisher, logger zerolog.Logger) *AlumniController {
	return &AlumniController{
		alumniService: alumniService,
		notifier:      newNotifier(events, logger),
		logger:        logger,
	}
}

// List handles GET /alumni. The result is filtered then paginated.
func (c *AlumniController) List(ctx *gin.Context) {
	var q dto.AlumniQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	users, err := c.alumniService.ListAlumni(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	matched := filters.Alumni(users, filters.AlumniCriteria{
		Search:   q.Search,
		Year:     q.Year,
		Course:   q.Course,
		Company:  q.Company,
		Location: q.Location,
		Skills:   q.Skills,
	})
	respond(ctx, http.StatusOK, helpers.Paginate(matched, q.Page, q.PageSize), "")
}

// Facets handles GET /alumni/facets
func (c *AlumniController) Facets(ctx *gin.Context) {
	users, err := c.alumniService.ListAlumni(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, filters.ComputeAlumniFacets(users), "")
}

// Get handles GET /alumni/:id
func (c *AlumniController) Get(ctx *gin.Context) {
	user, err := c.alumniService.GetAlumni(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, user, "")
}

// Profile handles GET /profile
func (c *AlumniController) Profile(ctx *gin.Context) {
	user, err := c.alumniService.GetAlumni(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, user, "")
}

// UpdateProfile handles PATCH /profile. Absent fields are left unchanged.
func (c *AlumniController) UpdateProfile(ctx *gin.Context) {
	var patch models.UserPatch
	if !middleware.BindJSON(ctx, &patch) {
		return
	}

	userID := middleware.CurrentUserID(ctx)
	user, err := c.alumniService.UpdateProfile(ctx.Request.Context(), userID, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.publish(ctx.Request.Context(), activity.ProfileUpdated, userID, userID, nil)
	respond(ctx, http.StatusOK, user, "Profile updated successfully")
}
