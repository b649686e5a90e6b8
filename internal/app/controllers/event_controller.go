package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/filters"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/app/services"
	"github.com/yigit/alumniconnect/internal/middleware"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
)

// EventController handles event listing and registration
type EventController struct {
	eventService services.EventService
	notifier
	logger zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, events activity.Publisher, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		notifier:     newNotifier(events, logger),
		logger:       logger,
	}
}

// List handles GET /events
func (c *EventController) List(ctx *gin.Context) {
	var q dto.EventQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	events, err := c.eventService.ListEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, filters.Events(events, filters.EventCriteria{Search: q.Search, Type: q.Type}), "")
}

// Register handles POST /events/:id/register
func (c *EventController) Register(ctx *gin.Context) {
	eventID := ctx.Param("id")
	userID := middleware.CurrentUserID(ctx)

	event, err := c.eventService.RegisterForEvent(ctx.Request.Context(), eventID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.publish(ctx.Request.Context(), activity.EventRegistered, userID, eventID, nil)
	respond(ctx, http.StatusOK, event, "Successfully registered for event")
}
