package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/filters"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"golang.org/x/sync/errgroup"
)

// Source is the data a dashboard is built from.
type Source interface {
	ListEvents(ctx context.Context) (dto.Result[[]*models.Event], error)
	ListMentorshipRequests(ctx context.Context, principalID string) (dto.Result[[]*models.MentorshipRequest], error)
	ListDonations(ctx context.Context) (dto.Result[[]*models.Donation], error)
	ListAlumni(ctx context.Context, criteria filters.AlumniCriteria) (dto.Result[[]*models.User], error)
}

// Composer fetches dashboard data concurrently and aggregates it.
type Composer struct {
	source            Source
	fundraisingTarget float64
	logger            zerolog.Logger
}

// NewComposer creates a Composer. fundraisingTarget is in currency units.
func NewComposer(source Source, fundraisingTarget float64, logger zerolog.Logger) *Composer {
	return &Composer{
		source:            source,
		fundraisingTarget: fundraisingTarget,
		logger:            logger.With().Str("component", "dashboard").Logger(),
	}
}

// Compose builds the dashboard of principal.
// A section whose fetch reports a failed Result is left empty. Unexpected
// errors and cancellation abort the whole dashboard.
func (c *Composer) Compose(ctx context.Context, principal *models.User) (*Dashboard, error) {
	kind, err := Resolve(principal.Role)
	if err != nil {
		return nil, err
	}

	switch kind {
	case StudentView:
		v, err := c.student(ctx, principal)
		return &Dashboard{Kind: kind, Student: v}, err
	case AlumniView:
		v, err := c.alumni(ctx, principal)
		return &Dashboard{Kind: kind, Alumni: v}, err
	case AdminView:
		v, err := c.admin(ctx)
		return &Dashboard{Kind: kind, Admin: v}, err
	}
	return nil, fmt.Errorf("unhandled dashboard kind %v", kind)
}

// Donations fetches every donation and summarizes it for principal.
func (c *Composer) Donations(ctx context.Context, principal *models.User, now time.Time) (*DonationsSummary, error) {
	var donations []*models.Donation
	if err := fetch(ctx, c, "donations", &donations, c.source.ListDonations); err != nil {
		return nil, err
	}
	s := SummarizeDonations(donations, principal.ID, now)
	return &s, nil
}

// fetch runs one gateway call and keeps its data only on success.
func fetch[T any](ctx context.Context, c *Composer, name string, dst *T, fn func(context.Context) (dto.Result[T], error)) error {
	res, err := fn(ctx)
	if err != nil {
		return err
	}
	if !res.Success {
		c.logger.Warn().Str("section", name).Str("message", res.Message).Msg("Dashboard section unavailable")
		return nil
	}
	*dst = res.Data
	return nil
}

func (c *Composer) student(ctx context.Context, me *models.User) (*StudentDashboard, error) {
	var events []*models.Event
	var reqs []*models.MentorshipRequest

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return fetch(gctx, c, "events", &events, c.source.ListEvents) })
	g.Go(func() error {
		return fetch(gctx, c, "mentorship", &reqs, func(ctx context.Context) (dto.Result[[]*models.MentorshipRequest], error) {
			return c.source.ListMentorshipRequests(ctx, me.ID)
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mine := make([]*models.MentorshipRequest, 0, len(reqs))
	for _, r := range reqs {
		if r.StudentID == me.ID {
			mine = append(mine, r)
		}
	}
	return &StudentDashboard{
		UpcomingEvents:  firstN(events, UpcomingLimit),
		MyRequests:      mine,
		PendingRequests: countPending(mine),
	}, nil
}

func (c *Composer) alumni(ctx context.Context, me *models.User) (*AlumniDashboard, error) {
	var events []*models.Event
	var reqs []*models.MentorshipRequest
	var donations []*models.Donation

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return fetch(gctx, c, "events", &events, c.source.ListEvents) })
	g.Go(func() error {
		return fetch(gctx, c, "mentorship", &reqs, func(ctx context.Context) (dto.Result[[]*models.MentorshipRequest], error) {
			return c.source.ListMentorshipRequests(ctx, "")
		})
	})
	g.Go(func() error { return fetch(gctx, c, "donations", &donations, c.source.ListDonations) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	v := &AlumniDashboard{
		UpcomingEvents:      firstN(events, UpcomingLimit),
		MentorshipRequests:  make([]*models.MentorshipRequest, 0),
		MentorshipAvailable: me.IsMentor(),
	}
	for _, r := range reqs {
		if r.MentorID == me.ID {
			v.MentorshipRequests = append(v.MentorshipRequests, r)
		}
	}
	v.PendingRequests = countPending(v.MentorshipRequests)
	for _, d := range donations {
		if d.DonorID == me.ID {
			v.DonationsTotal += d.Amount
			v.DonationsCount++
		}
	}
	return v, nil
}

func (c *Composer) admin(ctx context.Context) (*AdminDashboard, error) {
	var alumni []*models.User
	var events []*models.Event
	var donations []*models.Donation

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fetch(gctx, c, "alumni", &alumni, func(ctx context.Context) (dto.Result[[]*models.User], error) {
			return c.source.ListAlumni(ctx, filters.AlumniCriteria{})
		})
	})
	g.Go(func() error { return fetch(gctx, c, "events", &events, c.source.ListEvents) })
	g.Go(func() error { return fetch(gctx, c, "donations", &donations, c.source.ListDonations) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	v := &AdminDashboard{
		AlumniCount:    len(alumni),
		RecentAlumni:   firstN(alumni, UpcomingLimit),
		EventsCount:    len(events),
		DonationsCount: len(donations),
	}
	for _, e := range events {
		v.TotalAttendees += e.CurrentAttendees
	}
	for _, d := range donations {
		v.DonationsTotal += d.Amount
	}
	v.TargetPercent = TargetPercent(v.DonationsTotal, c.fundraisingTarget)
	return v, nil
}
