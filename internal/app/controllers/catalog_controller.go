package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumniconnect/internal/app/filters"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/app/services"
	"github.com/yigit/alumniconnect/internal/middleware"
)

// CatalogController serves the job board, success stories and badges
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// Jobs handles GET /jobs
func (c *CatalogController) Jobs(ctx *gin.Context) {
	var q dto.JobQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	jobs, err := c.catalogService.ListJobs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, filters.Jobs(jobs, filters.JobCriteria{
		Search:     q.Search,
		Tab:        q.Tab,
		JobTypes:   q.JobType,
		Locations:  q.Location,
		Categories: q.Category,
	}), "")
}

// Stories handles GET /stories
func (c *CatalogController) Stories(ctx *gin.Context) {
	var q dto.StoryQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	stories, err := c.catalogService.ListStories(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, gin.H{
		"stories": filters.Stories(stories, filters.StoryCriteria{Search: q.Search, Tag: q.Tag}),
		"tags":    filters.StoryTags(stories),
	}, "")
}

// Badges handles GET /badges. Stats always cover the full collection.
func (c *CatalogController) Badges(ctx *gin.Context) {
	var q dto.BadgeQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	userID := middleware.CurrentUserID(ctx)
	badges, err := c.catalogService.ListBadges(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	progress, err := c.catalogService.ListProgress(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, gin.H{
		"badges":   filters.Badges(badges, q.Filter),
		"progress": progress,
		"stats":    filters.ComputeBadgeStats(badges),
	}, "")
}
