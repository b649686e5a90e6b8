package filters

import (
	"math"
	"slices"

	"github.com/yigit/alumniconnect/internal/app/models"
)

// Unique returns the distinct non-empty keys of items in first-seen order.
func Unique[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, item := range items {
		k := key(item)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// UniqueCourses lists the courses of users in first-seen order.
func UniqueCourses(users []*models.User) []string {
	return Unique(users, func(u *models.User) string { return u.Course })
}

// GraduationYears lists the distinct graduation years, newest first.
func GraduationYears(users []*models.User) []int {
	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, u := range users {
		if u.GraduationYear == nil {
			continue
		}
		if _, ok := seen[*u.GraduationYear]; ok {
			continue
		}
		seen[*u.GraduationYear] = struct{}{}
		out = append(out, *u.GraduationYear)
	}
	slices.SortFunc(out, func(a, b int) int { return b - a })
	return out
}

// StoryTags lists the tags of stories in first-seen order.
func StoryTags(stories []*models.SuccessStory) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, s := range stories {
		for _, t := range s.Tags {
			if _, ok := seen[t]; ok || t == "" {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// BadgeStats summarizes badge completion.
type BadgeStats struct {
	Total                int `json:"totalBadges"`
	Earned               int `json:"earnedBadges"`
	CompletionPercentage int `json:"completionPercentage"`
}

// ComputeBadgeStats counts earned badges. The percentage is rounded and 0 for no badges.
func ComputeBadgeStats(badges []*models.Badge) BadgeStats {
	stats := BadgeStats{Total: len(badges)}
	for _, b := range badges {
		if b.Earned() {
			stats.Earned++
		}
	}
	if stats.Total > 0 {
		stats.CompletionPercentage = int(math.Round(float64(stats.Earned) / float64(stats.Total) * 100))
	}
	return stats
}

// AlumniFacets are the choices offered by the directory filters.
type AlumniFacets struct {
	Courses []string `json:"courses"`
	Years   []int    `json:"years"`
}

// ComputeAlumniFacets derives the directory filter choices from users.
func ComputeAlumniFacets(users []*models.User) AlumniFacets {
	return AlumniFacets{Courses: UniqueCourses(users), Years: GraduationYears(users)}
}
