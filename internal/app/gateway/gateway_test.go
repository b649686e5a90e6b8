package gateway

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumniconnect/internal/app/filters"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/repositories"
	"github.com/yigit/alumniconnect/internal/app/services"
	"github.com/yigit/alumniconnect/internal/config"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
	"github.com/yigit/alumniconnect/internal/pkg/auth"
	"github.com/yigit/alumniconnect/internal/pkg/email"
	"github.com/yigit/alumniconnect/internal/pkg/latency"
	"github.com/yigit/alumniconnect/internal/seed"
	"golang.org/x/crypto/bcrypt"
)

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, activity.Event) error { return errors.New("broker down") }
func (failingPublisher) Close() error                                  { return nil }

func newTestGateway(t *testing.T, opts ...Option) *Gateway {
	t.Helper()
	svcs, _ := seededServices(t)
	return New(svcs, zerolog.Nop(), append([]Option{WithSleeper(latency.None{})}, opts...)...)
}

func seededServices(t *testing.T) (*services.Services, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewRepositories()
	require.NoError(t, seed.CreateDefaultData(context.Background(), repos, zerolog.Nop(), seed.Options{BcryptCost: bcrypt.MinCost}))
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	return services.NewServices(repos, jwtService, services.Settings{StrictTransitions: true, BcryptCost: bcrypt.MinCost}, zerolog.Nop()), repos
}

func TestCall_UsesPerOperationLatency(t *testing.T) {
	rec := &latency.Recorder{}
	g := newTestGateway(t, WithSleeper(rec), WithLatencyConfig(config.LatencyConfig{ListEvents: "5ms", Login: "nonsense"}))
	ctx := context.Background()

	_, err := g.ListEvents(ctx)
	require.NoError(t, err)
	_, err = g.Login(ctx, "alice@example.com", seed.DefaultPassword)
	require.NoError(t, err)
	_, err = g.CreateDonation(ctx, models.DonationDraft{DonorID: seed.AliceID, Amount: 100, Purpose: "General Fund"})
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{5 * time.Millisecond, time.Second, 1200 * time.Millisecond}, rec.Calls())
}

func TestCall_DisabledLatency(t *testing.T) {
	g := newTestGateway(t, WithSleeper(latency.Real{}), WithLatencyConfig(config.LatencyConfig{Disabled: true}))
	start := time.Now()
	_, err := g.ListDonations(context.Background())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestCall_CancellationDuringDelay(t *testing.T) {
	g := newTestGateway(t, WithSleeper(latency.Real{}))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res, err := g.ListAlumni(ctx, filters.AlumniCriteria{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, res.Success)
}

func TestLogin_Results(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	res, err := g.Login(ctx, "alice@example.com", "WrongPass1")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid email or password", res.Message)
	assert.Nil(t, res.Data)

	res, err = g.Login(ctx, "alice@example.com", seed.DefaultPassword)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, seed.AliceID, res.Data.User.ID)
}

func TestListAlumni_Search(t *testing.T) {
	g := newTestGateway(t)
	res, err := g.ListAlumni(context.Background(), filters.AlumniCriteria{Search: "Microsoft"})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Alice", res.Data[0].FirstName)
}

func TestRegisterForEvent_DuplicateDoesNotDoubleCount(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	res, err := g.RegisterForEvent(ctx, "event-2", seed.StudentID)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "Successfully registered for event", res.Message)

	res, err = g.RegisterForEvent(ctx, "event-2", seed.StudentID)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "You are already registered for this event", res.Message)

	events, err := g.ListEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 46, events.Data[1].CurrentAttendees)
	assert.Equal(t, []string{seed.StudentID}, events.Data[1].RegisteredUsers)
}

func TestMentorship_CreateAndApprove(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	created, err := g.CreateMentorshipRequest(ctx, models.MentorshipDraft{
		StudentID: seed.StudentID, MentorID: seed.AliceID, Subject: "ML", Message: "Help me learn ML",
	})
	require.NoError(t, err)
	require.True(t, created.Success)
	assert.Equal(t, models.MentorshipPending, created.Data.Status)

	updated, err := g.UpdateMentorshipRequest(ctx, seed.AliceID, created.Data.ID, models.MentorshipPatch{Status: models.MentorshipApproved})
	require.NoError(t, err)
	require.True(t, updated.Success)
	assert.Equal(t, "Mentorship request updated successfully", updated.Message)
	assert.Equal(t, created.Data.Subject, updated.Data.Subject)
	assert.Equal(t, created.Data.CreatedAt, updated.Data.CreatedAt)

	bad, err := g.UpdateMentorshipRequest(ctx, seed.AliceID, created.Data.ID, models.MentorshipPatch{Status: models.MentorshipCompleted})
	require.NoError(t, err)
	assert.False(t, bad.Success)
}

func TestActivityPublishing(t *testing.T) {
	mem := &activity.Memory{}
	g := newTestGateway(t, WithPublisher(mem))
	ctx := context.Background()

	login, err := g.Login(ctx, "bob@example.com", seed.DefaultPassword)
	require.NoError(t, err)
	_, err = g.RegisterForEvent(ctx, "event-1", seed.BobID)
	require.NoError(t, err)
	_, err = g.ListEvents(ctx)
	require.NoError(t, err)
	_, err = g.Logout(ctx, login.Data.Token)
	require.NoError(t, err)

	assert.Equal(t, []string{activity.UserLoggedIn, activity.EventRegistered, activity.UserLoggedOut}, mem.Types())
}

type recordingSender struct {
	mu   sync.Mutex
	sent []email.Message
}

func (r *recordingSender) Send(_ context.Context, msg email.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return nil
}

func TestMentorshipEventsReachNotifier(t *testing.T) {
	sender := &recordingSender{}
	svcs, repos := seededServices(t)
	notifier := email.NewNotifier(sender, repos.UserRepository, zerolog.Nop())
	g := New(svcs, zerolog.Nop(), WithSleeper(latency.None{}), WithPublisher(notifier))
	ctx := context.Background()

	res, err := g.UpdateMentorshipRequest(ctx, seed.AliceID, "mentorship-1", models.MentorshipPatch{Status: models.MentorshipApproved})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NoError(t, notifier.Close())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "jane@example.com", sender.sent[0].To)
	assert.Equal(t, "Your mentorship request is approved", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTML, "Alice Johnson")

	created, err := g.CreateMentorshipRequest(ctx, models.MentorshipDraft{
		StudentID: seed.StudentID, MentorID: seed.BobID, Subject: "Product roles", Message: "Could we talk about PM work?",
	})
	require.NoError(t, err)
	require.True(t, created.Success)
	require.NoError(t, notifier.Close())

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "New mentorship request from Jane Smith", sender.sent[1].Subject)
	assert.Contains(t, sender.sent[1].HTML, "Product roles")
}

func TestMentorshipUpdateUsesCallerAsActor(t *testing.T) {
	mem := &activity.Memory{}
	g := newTestGateway(t, WithPublisher(mem))

	_, err := g.UpdateMentorshipRequest(context.Background(), seed.AdminID, "mentorship-1", models.MentorshipPatch{Status: models.MentorshipRejected})
	require.NoError(t, err)

	events := mem.Events()
	require.Len(t, events, 1)
	assert.Equal(t, seed.AdminID, events[0].ActorID)
	assert.Equal(t, seed.StudentID, events[0].Data["studentId"])
	assert.Equal(t, "rejected", events[0].Data["status"])
}

func TestActivityPublishFailureDoesNotFailOperation(t *testing.T) {
	g := newTestGateway(t, WithPublisher(failingPublisher{}))
	res, err := g.CreateDonation(context.Background(), models.DonationDraft{DonorID: seed.AliceID, Amount: 2500, Purpose: "Scholarship Fund"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Donation processed successfully", res.Message)
}

func TestListBadges(t *testing.T) {
	g := newTestGateway(t)
	res, err := g.ListBadges(context.Background(), seed.AliceID)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 5, res.Data.Stats.Earned)
	assert.Len(t, res.Data.Progress, 4)
}

func TestMessaging(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	res, err := g.SendMessage(ctx, "conversation-2", seed.StudentID, "hi")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "You are not a participant in this conversation", res.Message)

	sent, err := g.SendMessage(ctx, "conversation-2", seed.BobID, "See you there")
	require.NoError(t, err)
	require.True(t, sent.Success)

	msgs, err := g.ListMessages(ctx, "conversation-2", seed.AliceID)
	require.NoError(t, err)
	assert.Equal(t, "See you there", msgs.Data[len(msgs.Data)-1].Text)
}
