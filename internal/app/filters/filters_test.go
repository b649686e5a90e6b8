package filters

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/repositories"
	"github.com/yigit/alumniconnect/internal/seed"
	"golang.org/x/crypto/bcrypt"
)

func fixtures(t *testing.T) *repositories.Repositories {
	t.Helper()
	repos := repositories.NewRepositories()
	require.NoError(t, seed.CreateDefaultData(context.Background(), repos, zerolog.Nop(), seed.Options{BcryptCost: bcrypt.MinCost}))
	return repos
}

func alumni(t *testing.T) []*models.User {
	t.Helper()
	users, err := fixtures(t).UserRepository.ListByRole(context.Background(), models.RoleAlumni)
	require.NoError(t, err)
	return users
}

func ids(users []*models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestAlumni_SearchMicrosoft(t *testing.T) {
	got := Alumni(alumni(t), AlumniCriteria{Search: "  microSOFT "})
	require.Len(t, got, 1)
	assert.Equal(t, seed.AliceID, got[0].ID)
}

func TestAlumni_EmptySearchRestoresOrder(t *testing.T) {
	all := alumni(t)
	narrowed := Alumni(all, AlumniCriteria{Search: "bob"})
	require.Len(t, narrowed, 1)

	restored := Alumni(all, AlumniCriteria{})
	if diff := cmp.Diff(all, restored); diff != "" {
		t.Errorf("empty search changed the collection (-want +got):\n%s", diff)
	}
}

func TestAlumni_Idempotent(t *testing.T) {
	all := alumni(t)
	c := AlumniCriteria{Course: "Computer Science", Skills: "python"}
	once := Alumni(all, c)
	twice := Alumni(once, c)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("filter is not idempotent (-once +twice):\n%s", diff)
	}
	assert.Equal(t, []string{seed.AliceID}, ids(once))
}

func TestAlumni_Criteria(t *testing.T) {
	all := alumni(t)
	tests := []struct {
		name string
		c    AlumniCriteria
		want []string
	}{
		{"year", AlumniCriteria{Year: 2019}, []string{seed.BobID}},
		{"unknown year", AlumniCriteria{Year: 1990}, []string{}},
		{"course exact", AlumniCriteria{Course: "Business"}, []string{}},
		{"company substring", AlumniCriteria{Company: "goldman"}, []string{seed.BobID}},
		{"location", AlumniCriteria{Location: "seattle"}, []string{seed.AliceID}},
		{"skills any", AlumniCriteria{Skills: "finance, machine"}, []string{seed.AliceID, seed.BobID}},
		{"anded", AlumniCriteria{Year: 2018, Company: "goldman"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Alumni(all, tt.c)))
		})
	}
}

func TestApply_DoesNotMutateSource(t *testing.T) {
	all := alumni(t)
	before := append([]*models.User(nil), all...)
	_ = Alumni(all, AlumniCriteria{Search: "alice"})
	assert.Equal(t, before, all)
}

func TestApply_EmptyOptionalFieldsNeverMatch(t *testing.T) {
	users := []*models.User{{ID: "x", FirstName: "Solo"}}
	assert.Empty(t, Alumni(users, AlumniCriteria{Company: "a"}))
	assert.Empty(t, Alumni(users, AlumniCriteria{Year: 2020}))
}

func TestEvents(t *testing.T) {
	events, err := fixtures(t).EventRepository.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, Events(events, EventCriteria{Type: All}), 2)
	got := Events(events, EventCriteria{Type: string(models.EventWorkshop)})
	require.Len(t, got, 1)
	assert.Equal(t, "event-2", got[0].ID)

	got = Events(events, EventCriteria{Search: "zoom"})
	require.Len(t, got, 1)
	assert.Equal(t, "event-2", got[0].ID)
}

func TestJobs(t *testing.T) {
	jobs, err := fixtures(t).CatalogRepository.ListJobs(context.Background())
	require.NoError(t, err)

	assert.Len(t, Jobs(jobs, JobCriteria{Tab: TabInternships}), 2)
	assert.Len(t, Jobs(jobs, JobCriteria{Tab: TabJobs}), 4)
	assert.Len(t, Jobs(jobs, JobCriteria{Locations: []string{"Remote", "Seattle, WA"}}), 2)

	got := Jobs(jobs, JobCriteria{Categories: []string{"data science"}})
	require.Len(t, got, 1)
	assert.Equal(t, "job-4", got[0].ID)
}

func TestStoriesAndTags(t *testing.T) {
	stories, err := fixtures(t).CatalogRepository.ListStories(context.Background())
	require.NoError(t, err)

	assert.Len(t, Stories(stories, StoryCriteria{Tag: "Sustainability"}), 2)
	assert.Len(t, Stories(stories, StoryCriteria{Search: "women"}), 1)
	tags := StoryTags(stories)
	assert.Equal(t, []string{"Technology", "Leadership", "Women in Tech"}, tags[:3])
}

func TestBadgesAndStats(t *testing.T) {
	badges, err := fixtures(t).CatalogRepository.ListBadges(context.Background(), seed.AliceID)
	require.NoError(t, err)

	assert.Len(t, Badges(badges, All), 8)
	assert.Len(t, Badges(badges, BadgesEarned), 5)
	assert.Len(t, Badges(badges, BadgesNotEarned), 3)
	assert.Len(t, Badges(badges, string(models.BadgeContribution)), 2)
	assert.Empty(t, Badges(badges, "unknown"))

	assert.Equal(t, BadgeStats{Total: 8, Earned: 5, CompletionPercentage: 63}, ComputeBadgeStats(badges))
	assert.Equal(t, BadgeStats{}, ComputeBadgeStats(nil))
}

func TestFacets(t *testing.T) {
	users := []*models.User{
		{Course: "CS", GraduationYear: models.Ptr(2018)},
		{Course: "Math", GraduationYear: models.Ptr(2021)},
		{Course: "CS", GraduationYear: models.Ptr(2015)},
		{Course: "Art"},
	}
	facets := ComputeAlumniFacets(users)
	assert.Equal(t, []string{"CS", "Math", "Art"}, facets.Courses)
	assert.Equal(t, []int{2021, 2018, 2015}, facets.Years)
}

func TestView_RecomputesAndDropsStaleLoads(t *testing.T) {
	v := NewView(AlumniQuery(AlumniCriteria{}))
	var mu sync.Mutex
	var applied [][]*models.User
	v.OnApply(func(items []*models.User) {
		mu.Lock()
		applied = append(applied, items)
		mu.Unlock()
	})

	stale := v.Begin()
	current := v.Begin()
	all := alumni(t)

	assert.False(t, v.Accept(stale, all[:1]))
	assert.True(t, v.Accept(current, all))
	assert.Len(t, v.Items(), 2)

	gen := v.Generation()
	v.SetQuery(AlumniQuery(AlumniCriteria{Search: "Microsoft"}))
	assert.Equal(t, gen+1, v.Generation())
	assert.Len(t, v.Items(), 1)
	assert.Len(t, v.Source(), 2)

	late := v.Begin()
	v.Close()
	assert.False(t, v.Accept(late, nil))
	assert.Len(t, v.Items(), 1)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, applied, 2)
}

func TestConversations(t *testing.T) {
	convs := []*models.Conversation{{ID: "1", Name: "Jane Smith"}, {ID: "2", Name: "Alumni Committee"}}
	got := Conversations(convs, "committee")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}
