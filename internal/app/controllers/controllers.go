// Package controllers handles HTTP request handling
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
)

// respond writes a successful dto.Result.
func respond[T any](ctx *gin.Context, status int, data T, message string) {
	ctx.JSON(status, dto.OK(data, message))
}

// notifier publishes activity events on behalf of the controllers.
type notifier struct {
	events activity.Publisher
	logger zerolog.Logger
}

func newNotifier(events activity.Publisher, logger zerolog.Logger) notifier {
	if events == nil {
		events = activity.Noop{}
	}
	return notifier{events: events, logger: logger}
}

// publish emits an activity event. Failures are logged only.
func (n notifier) publish(ctx context.Context, eventType, actorID, subjectID string, data map[string]string) {
	e := activity.Event{Type: eventType, ActorID: actorID, SubjectID: subjectID, At: time.Now().UTC(), Data: data}
	if err := n.events.Publish(context.WithoutCancel(ctx), e); err != nil {
		n.logger.Warn().Err(err).Str("type", eventType).Msg("Failed to publish activity event")
	}
}

// HealthController reports liveness
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health handles GET /health
func (c *HealthController) Health(ctx *gin.Context) {
	respond(ctx, http.StatusOK, gin.H{"status": "ok"}, "")
}
