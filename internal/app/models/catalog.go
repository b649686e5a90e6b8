package models

import "slices"

// JobType is the employment type of a listing
type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobContract   JobType = "contract"
	JobInternship JobType = "internship"
)

// Job is a job or internship posted for the alumni community.
type Job struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Company             string   `json:"company"`
	Location            string   `json:"location"`
	Type                JobType  `json:"type"`
	Salary              string   `json:"salary,omitempty"`
	Posted              string   `json:"posted,omitempty"`
	Description         string   `json:"description"`
	Requirements        []string `json:"requirements,omitempty"`
	Benefits            []string `json:"benefits,omitempty"`
	Logo                string   `json:"logo,omitempty"`
	Featured            bool     `json:"featured"`
	ApplicationDeadline string   `json:"applicationDeadline,omitempty"`
}

// Clone returns a deep copy.
func (j *Job) Clone() *Job {
	c := *j
	c.Requirements = slices.Clone(j.Requirements)
	c.Benefits = slices.Clone(j.Benefits)
	return &c
}

// SuccessStory profiles an alumnus' career.
type SuccessStory struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	GraduationYear  int      `json:"graduationYear"`
	Degree          string   `json:"degree"`
	CurrentPosition string   `json:"currentPosition"`
	Company         string   `json:"company"`
	Location        string   `json:"location,omitempty"`
	Image           string   `json:"image,omitempty"`
	Story           string   `json:"story"`
	Achievements    []string `json:"achievements,omitempty"`
	Tags            []string `json:"tags"`
	PublishedDate   string   `json:"publishedDate"`
}

// Clone returns a deep copy.
func (s *SuccessStory) Clone() *SuccessStory {
	c := *s
	c.Achievements = slices.Clone(s.Achievements)
	c.Tags = slices.Clone(s.Tags)
	return &c
}

// BadgeCategory groups badges
type BadgeCategory string

const (
	BadgeEngagement   BadgeCategory = "engagement"
	BadgeContribution BadgeCategory = "contribution"
	BadgeAchievement  BadgeCategory = "achievement"
	BadgeMilestone    BadgeCategory = "milestone"
)

// Badge is a gamification reward. A nil EarnedDate means not earned yet.
type Badge struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon,omitempty"`
	EarnedDate  *string       `json:"earnedDate"`
	Category    BadgeCategory `json:"category"`
}

// Earned reports whether the badge was awarded.
func (b *Badge) Earned() bool {
	return b.EarnedDate != nil
}

// Clone returns a deep copy.
func (b *Badge) Clone() *Badge {
	c := *b
	c.EarnedDate = clonePtr(b.EarnedDate)
	return &c
}

// Progress tracks how close a user is to the next badge.
type Progress struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Progress    int    `json:"progress"`
	Target      int    `json:"target"`
	Unit        string `json:"unit"`
	BadgeReward string `json:"badgeReward"`
}

// Percent returns the progress as a whole percentage capped at 100.
func (p Progress) Percent() int {
	if p.Target <= 0 {
		return 0
	}
	return min(p.Progress*100/p.Target, 100)
}
