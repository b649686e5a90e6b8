// Package gateway is the single entry point to the fixture backend. Every
// operation waits for a simulated round trip, runs the matching service and
// reports the outcome as a dto.Result.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/app/services"
	"github.com/yigit/alumniconnect/internal/config"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
	"github.com/yigit/alumniconnect/internal/pkg/helpers"
	"github.com/yigit/alumniconnect/internal/pkg/latency"
)

// Operation names, also used as latency config keys.
const (
	OpLogin             = "login"
	OpRegister          = "register"
	OpLogout            = "logout"
	OpListAlumni        = "list_alumni"
	OpGetAlumni         = "get_alumni"
	OpUpdateProfile     = "update_profile"
	OpListEvents        = "list_events"
	OpRegisterForEvent  = "register_for_event"
	OpListMentorship    = "list_mentorship"
	OpCreateMentorship  = "create_mentorship"
	OpUpdateMentorship  = "update_mentorship"
	OpListDonations     = "list_donations"
	OpCreateDonation    = "create_donation"
	OpListJobs          = "list_jobs"
	OpListStories       = "list_stories"
	OpListBadges        = "list_badges"
	OpListConversations = "list_conversations"
	OpListMessages      = "list_messages"
	OpSendMessage       = "send_message"
)

// DefaultLatencies is the simulated round trip of every operation.
var DefaultLatencies = map[string]time.Duration{
	OpLogin:             1000 * time.Millisecond,
	OpRegister:          1000 * time.Millisecond,
	OpLogout:            500 * time.Millisecond,
	OpListAlumni:        800 * time.Millisecond,
	OpGetAlumni:         500 * time.Millisecond,
	OpUpdateProfile:     1000 * time.Millisecond,
	OpListEvents:        600 * time.Millisecond,
	OpRegisterForEvent:  800 * time.Millisecond,
	OpListMentorship:    700 * time.Millisecond,
	OpCreateMentorship:  1000 * time.Millisecond,
	OpUpdateMentorship:  800 * time.Millisecond,
	OpListDonations:     600 * time.Millisecond,
	OpCreateDonation:    1200 * time.Millisecond,
	OpListJobs:          600 * time.Millisecond,
	OpListStories:       600 * time.Millisecond,
	OpListBadges:        600 * time.Millisecond,
	OpListConversations: 600 * time.Millisecond,
	OpListMessages:      600 * time.Millisecond,
	OpSendMessage:       600 * time.Millisecond,
}

// Gateway runs domain operations behind a simulated network.
type Gateway struct {
	services  *services.Services
	sleeper   latency.Sleeper
	delays    map[string]time.Duration
	publisher activity.Publisher
	now       func() time.Time
	logger    zerolog.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithSleeper replaces the latency strategy.
func WithSleeper(s latency.Sleeper) Option {
	return func(g *Gateway) { g.sleeper = s }
}

// WithLatencyConfig applies per-operation overrides. Disabled switches to latency.None.
func WithLatencyConfig(cfg config.LatencyConfig) Option {
	return func(g *Gateway) {
		if cfg.Disabled {
			g.sleeper = latency.None{}
		}
		for op, raw := range cfg.Durations() {
			g.delays[op] = helpers.ParseDuration(raw, g.delays[op])
		}
	}
}

// WithPublisher sets where activity events go.
func WithPublisher(p activity.Publisher) Option {
	return func(g *Gateway) { g.publisher = p }
}

// WithClock sets the clock used for activity timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

// New creates a Gateway over svcs with real latency and no activity publishing.
func New(svcs *services.Services, logger zerolog.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		services:  svcs,
		sleeper:   latency.Real{},
		delays:    make(map[string]time.Duration, len(DefaultLatencies)),
		publisher: activity.Noop{},
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger.With().Str("component", "gateway").Logger(),
	}
	for op, d := range DefaultLatencies {
		g.delays[op] = d
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Delay returns the simulated latency of op.
func (g *Gateway) Delay(op string) time.Duration {
	return g.delays[op]
}

// call waits for the simulated round trip of op and runs fn.
// Domain failures become a failed Result. Unexpected faults and cancellation
// are returned as errors.
func call[T any](ctx context.Context, g *Gateway, op string, fn func(context.Context) (T, string, error)) (dto.Result[T], error) {
	if err := g.sleeper.Sleep(ctx, g.delays[op]); err != nil {
		return dto.Result[T]{}, err
	}

	data, message, err := fn(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return dto.Result[T]{}, ctxErr
		}
		if apperrors.IsDomain(err) {
			g.logger.Debug().Err(err).Str("op", op).Msg("Operation failed")
			return dto.Fail[T](apperrors.UserMessage(err)), nil
		}
		g.logger.Error().Err(err).Str("op", op).Msg("Unexpected gateway error")
		return dto.Result[T]{}, fmt.Errorf("%s: %w", op, err)
	}
	return dto.OK(data, message), nil
}

// publish emits an activity event. Failures are logged and never surface to the caller.
func (g *Gateway) publish(ctx context.Context, eventType, actorID, subjectID string, data map[string]string) {
	e := activity.Event{Type: eventType, ActorID: actorID, SubjectID: subjectID, At: g.now(), Data: data}
	if err := g.publisher.Publish(context.WithoutCancel(ctx), e); err != nil {
		g.logger.Warn().Err(err).Str("type", eventType).Msg("Failed to publish activity event")
	}
}
