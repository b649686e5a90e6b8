// Package dashboard builds the role specific landing views.
package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/yigit/alumniconnect/internal/app/models"
)

// ViewKind tags which dashboard a principal sees.
type ViewKind int

const (
	StudentView ViewKind = iota + 1
	AlumniView
	AdminView
)

func (k ViewKind) String() string {
	switch k {
	case StudentView:
		return "student"
	case AlumniView:
		return "alumni"
	case AdminView:
		return "admin"
	}
	return fmt.Sprintf("ViewKind(%d)", int(k))
}

// MarshalText renders the kind by name.
func (k ViewKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Resolve maps a role to its dashboard.
func Resolve(role models.Role) (ViewKind, error) {
	switch role {
	case models.RoleStudent:
		return StudentView, nil
	case models.RoleAlumni:
		return AlumniView, nil
	case models.RoleAdmin:
		return AdminView, nil
	}
	return 0, fmt.Errorf("no dashboard for role %q", role)
}

// UpcomingLimit is how many events a dashboard previews.
const UpcomingLimit = 3

// StudentDashboard is the landing view of a student.
type StudentDashboard struct {
	UpcomingEvents  []*models.Event             `json:"upcomingEvents"`
	MyRequests      []*models.MentorshipRequest `json:"myRequests"`
	PendingRequests int                         `json:"pendingRequests"`
}

// AlumniDashboard is the landing view of an alumnus.
type AlumniDashboard struct {
	UpcomingEvents      []*models.Event             `json:"upcomingEvents"`
	MentorshipRequests  []*models.MentorshipRequest `json:"mentorshipRequests"`
	PendingRequests     int                         `json:"pendingRequests"`
	DonationsTotal      models.Amount               `json:"donationsTotal"`
	DonationsCount      int                         `json:"donationsCount"`
	MentorshipAvailable bool                        `json:"mentorshipAvailable"`
}

// AdminDashboard is the platform overview.
type AdminDashboard struct {
	AlumniCount    int            `json:"alumniCount"`
	RecentAlumni   []*models.User `json:"recentAlumni"`
	EventsCount    int            `json:"eventsCount"`
	TotalAttendees int            `json:"totalAttendees"`
	DonationsTotal models.Amount  `json:"donationsTotal"`
	DonationsCount int            `json:"donationsCount"`
	// TargetPercent is DonationsTotal as a share of the fundraising target, one decimal.
	TargetPercent float64 `json:"targetPercent"`
}

// Dashboard holds exactly one populated view, selected by Kind.
type Dashboard struct {
	Kind    ViewKind          `json:"kind"`
	Student *StudentDashboard `json:"student,omitempty"`
	Alumni  *AlumniDashboard  `json:"alumni,omitempty"`
	Admin   *AdminDashboard   `json:"admin,omitempty"`
}

// DonationsSummary is the header of the donations page.
type DonationsSummary struct {
	MyContributions models.Amount `json:"myContributions"`
	TotalRaised     models.Amount `json:"totalRaised"`
	UniqueDonors    int           `json:"uniqueDonors"`
	ThisMonth       models.Amount `json:"thisMonth"`
}

// SummarizeDonations totals donations for the page of donorID.
// ThisMonth covers the calendar month of now.
func SummarizeDonations(donations []*models.Donation, donorID string, now time.Time) DonationsSummary {
	var s DonationsSummary
	donors := make(map[string]struct{})
	for _, d := range donations {
		s.TotalRaised += d.Amount
		donors[d.DonorID] = struct{}{}
		if d.DonorID == donorID {
			s.MyContributions += d.Amount
		}
		at := d.CreatedAt.In(now.Location())
		if at.Year() == now.Year() && at.Month() == now.Month() {
			s.ThisMonth += d.Amount
		}
	}
	s.UniqueDonors = len(donors)
	return s
}

// TargetPercent returns total as a percentage of target rounded to one decimal.
// A non-positive target yields 0.
func TargetPercent(total models.Amount, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Round(total.Float64()/target*1000) / 10
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	return append([]T{}, items...)
}

func countPending(reqs []*models.MentorshipRequest) int {
	n := 0
	for _, r := range reqs {
		if r.Status == models.MentorshipPending {
			n++
		}
	}
	return n
}
