package filters

import (
	"strings"

	"github.com/yigit/alumniconnect/internal/app/models"
)

// All disables a single-choice filter.
const All = "all"

// AlumniCriteria are the directory filters. Zero values mean no constraint.
type AlumniCriteria struct {
	Search   string `json:"search,omitempty"`
	Year     int    `json:"year,omitempty"`
	Course   string `json:"course,omitempty"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	// Skills is a comma separated list. A user matches when any skill contains any entry.
	Skills string `json:"skills,omitempty"`
}

// IsZero reports whether no filter is set.
func (c AlumniCriteria) IsZero() bool {
	return c == AlumniCriteria{}
}

// AlumniQuery builds the directory query.
func AlumniQuery(c AlumniCriteria) Query[*models.User] {
	q := Query[*models.User]{
		Search: c.Search,
		Fields: []Field[*models.User]{
			Text((*models.User).FullName),
			Text(func(u *models.User) string { return u.Company }),
			Text(func(u *models.User) string { return u.Course }),
			Text(func(u *models.User) string { return u.Location }),
		},
	}
	var year Criterion[*models.User]
	if c.Year != 0 {
		year = func(u *models.User) bool { return u.GraduationYear != nil && *u.GraduationYear == c.Year }
	}
	q.Criteria = criteria(
		year,
		Equals(func(u *models.User) string { return u.Course }, c.Course),
		ContainsFold(func(u *models.User) string { return u.Company }, c.Company),
		ContainsFold(func(u *models.User) string { return u.Location }, c.Location),
		AnyContains(func(u *models.User) []string { return u.Skills }, strings.Split(c.Skills, ",")),
	)
	return q
}

// Alumni filters the directory.
func Alumni(users []*models.User, c AlumniCriteria) []*models.User {
	return Apply(users, AlumniQuery(c))
}

// EventCriteria filters the event list.
type EventCriteria struct {
	Search string `json:"search,omitempty"`
	// Type is an event type, or empty or "all" for every type.
	Type string `json:"type,omitempty"`
}

// EventQuery builds the event query.
func EventQuery(c EventCriteria) Query[*models.Event] {
	eventType := c.Type
	if eventType == All {
		eventType = ""
	}
	return Query[*models.Event]{
		Search: c.Search,
		Fields: []Field[*models.Event]{
			Text(func(e *models.Event) string { return e.Title }),
			Text(func(e *models.Event) string { return e.Description }),
			Text(func(e *models.Event) string { return e.Location }),
		},
		Criteria: criteria(Equals(func(e *models.Event) string { return string(e.Type) }, eventType)),
	}
}

// Events filters the event list.
func Events(events []*models.Event, c EventCriteria) []*models.Event {
	return Apply(events, EventQuery(c))
}

// Job board tabs
const (
	TabJobs        = "jobs"
	TabInternships = "internships"
)

// JobCriteria filters the job board. Multi-select lists match any entry.
type JobCriteria struct {
	Search string `json:"search,omitempty"`
	// Tab splits internships from every other listing. Empty shows both.
	Tab        string   `json:"tab,omitempty"`
	JobTypes   []string `json:"jobTypes,omitempty"`
	Locations  []string `json:"locations,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// JobQuery builds the job board query.
func JobQuery(c JobCriteria) Query[*models.Job] {
	var tab Criterion[*models.Job]
	switch c.Tab {
	case TabJobs:
		tab = func(j *models.Job) bool { return j.Type != models.JobInternship }
	case TabInternships:
		tab = func(j *models.Job) bool { return j.Type == models.JobInternship }
	}
	return Query[*models.Job]{
		Search: c.Search,
		Fields: []Field[*models.Job]{
			Text(func(j *models.Job) string { return j.Title }),
			Text(func(j *models.Job) string { return j.Company }),
			Text(func(j *models.Job) string { return j.Location }),
		},
		Criteria: criteria(
			tab,
			OneOf(func(j *models.Job) string { return string(j.Type) }, c.JobTypes),
			OneOf(func(j *models.Job) string { return j.Location }, c.Locations),
			AnyContains(func(j *models.Job) []string { return []string{j.Title, j.Description} }, c.Categories),
		),
	}
}

// Jobs filters the job board.
func Jobs(jobs []*models.Job, c JobCriteria) []*models.Job {
	return Apply(jobs, JobQuery(c))
}

// StoryCriteria filters success stories.
type StoryCriteria struct {
	Search string `json:"search,omitempty"`
	// Tag is a story tag, or empty or "all" for every story.
	Tag string `json:"tag,omitempty"`
}

// StoryQuery builds the success story query.
func StoryQuery(c StoryCriteria) Query[*models.SuccessStory] {
	var tag Criterion[*models.SuccessStory]
	if c.Tag != "" && c.Tag != All {
		tag = func(s *models.SuccessStory) bool {
			for _, t := range s.Tags {
				if t == c.Tag {
					return true
				}
			}
			return false
		}
	}
	return Query[*models.SuccessStory]{
		Search: c.Search,
		Fields: []Field[*models.SuccessStory]{
			Text(func(s *models.SuccessStory) string { return s.Name }),
			Text(func(s *models.SuccessStory) string { return s.Degree }),
			Text(func(s *models.SuccessStory) string { return s.Company }),
			List(func(s *models.SuccessStory) []string { return s.Tags }),
		},
		Criteria: criteria(tag),
	}
}

// Stories filters success stories.
func Stories(stories []*models.SuccessStory, c StoryCriteria) []*models.SuccessStory {
	return Apply(stories, StoryQuery(c))
}

// Badge filters besides a category name
const (
	BadgesEarned    = "earned"
	BadgesNotEarned = "not-earned"
)

// Badges keeps the badges selected by filter: all, earned, not-earned or a category.
func Badges(badges []*models.Badge, filter string) []*models.Badge {
	var keep Criterion[*models.Badge]
	switch filter {
	case "", All:
	case BadgesEarned:
		keep = (*models.Badge).Earned
	case BadgesNotEarned:
		keep = func(b *models.Badge) bool { return !b.Earned() }
	default:
		keep = Equals(func(b *models.Badge) string { return string(b.Category) }, filter)
	}
	return Apply(badges, Query[*models.Badge]{Criteria: criteria(keep)})
}

// Conversations keeps the conversations whose name contains search.
func Conversations(convs []*models.Conversation, search string) []*models.Conversation {
	return Apply(convs, Query[*models.Conversation]{
		Search: search,
		Fields: []Field[*models.Conversation]{Text(func(c *models.Conversation) string { return c.Name })},
	})
}
