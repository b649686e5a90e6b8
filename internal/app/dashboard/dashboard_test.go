package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumniconnect/internal/app/filters"
	"github.com/yigit/alumniconnect/internal/app/gateway"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/app/repositories"
	"github.com/yigit/alumniconnect/internal/app/services"
	"github.com/yigit/alumniconnect/internal/pkg/auth"
	"github.com/yigit/alumniconnect/internal/pkg/latency"
	"github.com/yigit/alumniconnect/internal/seed"
	"golang.org/x/crypto/bcrypt"
)

func fixtureGateway(t *testing.T) (*gateway.Gateway, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewRepositories()
	require.NoError(t, seed.CreateDefaultData(context.Background(), repos, zerolog.Nop(), seed.Options{BcryptCost: bcrypt.MinCost}))
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour})
	svcs := services.NewServices(repos, jwtService, services.Settings{StrictTransitions: true, BcryptCost: bcrypt.MinCost}, zerolog.Nop())
	return gateway.New(svcs, zerolog.Nop(), gateway.WithSleeper(latency.None{})), repos
}

func user(t *testing.T, repos *repositories.Repositories, id string) *models.User {
	t.Helper()
	u, err := repos.UserRepository.GetByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func TestResolve(t *testing.T) {
	tests := []struct {
		role models.Role
		want ViewKind
	}{
		{models.RoleStudent, StudentView},
		{models.RoleAlumni, AlumniView},
		{models.RoleAdmin, AdminView},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.role)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	_, err := Resolve("guest")
	assert.Error(t, err)
	assert.Equal(t, "alumni", AlumniView.String())
}

func TestCompose_Alumni(t *testing.T) {
	g, repos := fixtureGateway(t)
	c := NewComposer(g, 50000, zerolog.Nop())

	d, err := c.Compose(context.Background(), user(t, repos, seed.AliceID))
	require.NoError(t, err)
	require.Equal(t, AlumniView, d.Kind)
	require.NotNil(t, d.Alumni)
	assert.Nil(t, d.Student)
	assert.Nil(t, d.Admin)

	assert.Len(t, d.Alumni.UpcomingEvents, 2)
	require.Len(t, d.Alumni.MentorshipRequests, 1)
	assert.Equal(t, 1, d.Alumni.PendingRequests)
	assert.Equal(t, models.AmountFromUnits(500), d.Alumni.DonationsTotal)
	assert.Equal(t, 1, d.Alumni.DonationsCount)
	assert.True(t, d.Alumni.MentorshipAvailable)
}

func TestCompose_Student(t *testing.T) {
	g, repos := fixtureGateway(t)
	c := NewComposer(g, 50000, zerolog.Nop())

	d, err := c.Compose(context.Background(), user(t, repos, seed.StudentID))
	require.NoError(t, err)
	require.Equal(t, StudentView, d.Kind)
	require.Len(t, d.Student.MyRequests, 1)
	assert.Equal(t, 1, d.Student.PendingRequests)
}

func TestCompose_Admin(t *testing.T) {
	g, repos := fixtureGateway(t)
	c := NewComposer(g, 50000, zerolog.Nop())

	d, err := c.Compose(context.Background(), user(t, repos, seed.AdminID))
	require.NoError(t, err)
	require.Equal(t, AdminView, d.Kind)
	assert.Equal(t, 2, d.Admin.AlumniCount)
	assert.Equal(t, 2, d.Admin.EventsCount)
	assert.Equal(t, 132, d.Admin.TotalAttendees)
	assert.Equal(t, models.AmountFromUnits(600), d.Admin.DonationsTotal)
	assert.Equal(t, 2, d.Admin.DonationsCount)
	assert.Equal(t, 1.2, d.Admin.TargetPercent)

	zero := NewComposer(g, 0, zerolog.Nop())
	d, err = zero.Compose(context.Background(), user(t, repos, seed.AdminID))
	require.NoError(t, err)
	assert.Zero(t, d.Admin.TargetPercent)
}

type fakeSource struct {
	events      dto.Result[[]*models.Event]
	donationErr error
}

func (f *fakeSource) ListEvents(context.Context) (dto.Result[[]*models.Event], error) {
	return f.events, nil
}

func (f *fakeSource) ListMentorshipRequests(context.Context, string) (dto.Result[[]*models.MentorshipRequest], error) {
	return dto.OK([]*models.MentorshipRequest{}, ""), nil
}

func (f *fakeSource) ListDonations(context.Context) (dto.Result[[]*models.Donation], error) {
	if f.donationErr != nil {
		return dto.Result[[]*models.Donation]{}, f.donationErr
	}
	return dto.OK([]*models.Donation{}, ""), nil
}

func (f *fakeSource) ListAlumni(context.Context, filters.AlumniCriteria) (dto.Result[[]*models.User], error) {
	return dto.OK([]*models.User{}, ""), nil
}

func TestCompose_FailedSectionStaysEmpty(t *testing.T) {
	src := &fakeSource{events: dto.Fail[[]*models.Event]("Events are unavailable")}
	c := NewComposer(src, 100, zerolog.Nop())

	d, err := c.Compose(context.Background(), &models.User{ID: "s", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Empty(t, d.Student.UpcomingEvents)
}

func TestCompose_UnexpectedErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	c := NewComposer(&fakeSource{donationErr: boom}, 100, zerolog.Nop())

	_, err := c.Compose(context.Background(), &models.User{ID: "a", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, boom)
}

func TestSummarizeDonations(t *testing.T) {
	now := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	donations := []*models.Donation{
		{DonorID: "a", Amount: models.AmountFromUnits(500), CreatedAt: time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)},
		{DonorID: "b", Amount: models.AmountFromUnits(100), CreatedAt: time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)},
		{DonorID: "a", Amount: 1050, CreatedAt: time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC)},
	}

	s := SummarizeDonations(donations, "a", now)
	assert.Equal(t, "510.50", s.MyContributions.String())
	assert.Equal(t, "610.50", s.TotalRaised.String())
	assert.Equal(t, 2, s.UniqueDonors)
	assert.Equal(t, "600.00", s.ThisMonth.String())
}

func TestTargetPercent(t *testing.T) {
	assert.Equal(t, 1.2, TargetPercent(models.AmountFromUnits(600), 50000))
	assert.Equal(t, 33.3, TargetPercent(models.AmountFromUnits(1), 3))
	assert.Zero(t, TargetPercent(models.AmountFromUnits(600), 0))
}
