package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/alumniconnect/internal/app/auth"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/app/services"
	"github.com/yigit/alumniconnect/internal/middleware"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// MentorshipController handles the mentorship request workflow
type MentorshipController struct {
	mentorshipService services.MentorshipService
	authz             *appauth.AuthorizationService
	notifier
	logger zerolog.Logger
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(
	mentorshipService services.MentorshipService,
	authz *appauth.AuthorizationService,
	events activity.Publisher,
	logger zerolog.Logger,
) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
		authz:             authz,
		notifier:          newNotifier(events, logger),
		logger:            logger,
	}
}

// List handles GET /mentorship. Callers see the requests they take part in.
func (c *MentorshipController) List(ctx *gin.Context) {
	reqs, err := c.mentorshipService.ListRequests(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, reqs, "")
}

// Create handles POST /mentorship. Only students ask for a mentor.
func (c *MentorshipController) Create(ctx *gin.Context) {
	if role, _ := middleware.CurrentRole(ctx); role != models.RoleStudent {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("only students can request a mentor"))
		return
	}

	var req dto.CreateMentorshipRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	studentID := middleware.CurrentUserID(ctx)
	created, err := c.mentorshipService.CreateRequest(ctx.Request.Context(), models.MentorshipDraft{
		StudentID: studentID,
		MentorID:  req.MentorID,
		Subject:   req.Subject,
		Message:   req.Message,
		Goals:     req.Goals,
		Duration:  req.Duration,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.publish(ctx.Request.Context(), activity.MentorshipRequested, studentID, created.ID, map[string]string{
		"mentorId": created.MentorID,
		"subject":  created.Subject,
	})
	respond(ctx, http.StatusCreated, created, "Mentorship request submitted successfully")
}

// Update handles PATCH /mentorship/:id
func (c *MentorshipController) Update(ctx *gin.Context) {
	var req dto.UpdateMentorshipRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")
	userID := middleware.CurrentUserID(ctx)
	role, _ := middleware.CurrentRole(ctx)
	if err := c.authz.ValidateMentorshipTransition(ctx.Request.Context(), userID, role, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.mentorshipService.UpdateRequest(ctx.Request.Context(), id, models.MentorshipPatch{Status: req.Status})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.publish(ctx.Request.Context(), activity.MentorshipUpdated, userID, id, map[string]string{
		"status":    string(updated.Status),
		"studentId": updated.StudentID,
	})
	respond(ctx, http.StatusOK, updated, "Mentorship request updated")
}
