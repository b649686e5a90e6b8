package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMentorshipTransitions(t *testing.T) {
	tests := []struct {
		from, to MentorshipStatus
		allowed  bool
	}{
		{MentorshipPending, MentorshipApproved, true},
		{MentorshipPending, MentorshipRejected, true},
		{MentorshipApproved, MentorshipActive, true},
		{MentorshipActive, MentorshipCompleted, true},
		{MentorshipPending, MentorshipCompleted, false},
		{MentorshipPending, MentorshipActive, false},
		{MentorshipRejected, MentorshipApproved, false},
		{MentorshipCompleted, MentorshipActive, false},
		{MentorshipApproved, MentorshipPending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.True(t, MentorshipRejected.IsTerminal())
	assert.True(t, MentorshipCompleted.IsTerminal())
	assert.False(t, MentorshipPending.IsTerminal())
	assert.False(t, MentorshipStatus("archived").Valid())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want Amount
	}{
		{"500", 50000},
		{"12.5", 1250},
		{"12.05", 1205},
		{"0.99", 99},
		{".5", 50},
		{"-3.10", -310},
		{"92233720368547757.99", 9223372036854775799},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "-", "1.234", "abc", "1.x", "184467440737095517", "92233720368547758", "-92233720368547758.00"} {
		_, err := ParseAmount(bad)
		assert.Error(t, err, bad)
	}
}

func TestAmountJSON(t *testing.T) {
	var d DonationDraft
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 100.1, "purpose": "General Fund"}`), &d))
	assert.Equal(t, Amount(10010), d.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "25.00"}`), &d))
	assert.Equal(t, Amount(2500), d.Amount)

	out, err := json.Marshal(Donation{Amount: 10010})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"amount":100.10`)
}

func TestAmountSumIsExact(t *testing.T) {
	var amounts []Amount
	for i := 0; i < 10; i++ {
		a, err := ParseAmount("0.10")
		require.NoError(t, err)
		amounts = append(amounts, a)
	}
	assert.Equal(t, "1.00", Sum(amounts...).String())
}

func TestUserPatchApply(t *testing.T) {
	u := &User{ID: "alumni-1", Role: RoleAlumni, FirstName: "Alice", Company: "Microsoft", Skills: []string{"Go"}}
	skills := []string{"Go", "Rust"}

	UserPatch{Company: Ptr("GitHub"), Skills: &skills, MentorshipAvailable: Ptr(true)}.Apply(u)

	assert.Equal(t, "Alice", u.FirstName)
	assert.Equal(t, "GitHub", u.Company)
	assert.Equal(t, []string{"Go", "Rust"}, u.Skills)
	assert.True(t, u.IsMentor())

	skills[0] = "mutated"
	assert.Equal(t, "Go", u.Skills[0])
}

func TestUserPatchIgnoresAlumniFieldsForStudents(t *testing.T) {
	u := &User{ID: "student-1", Role: RoleStudent}
	UserPatch{MentorshipAvailable: Ptr(true)}.Apply(u)
	assert.Nil(t, u.MentorshipAvailable)
}

func TestUserCloneIsDeep(t *testing.T) {
	u := &User{ID: "1", Role: RoleAlumni, GraduationYear: Ptr(2018), Skills: []string{"a"}}
	c := u.Clone()
	*c.GraduationYear = 2000
	c.Skills[0] = "b"
	assert.Equal(t, 2018, *u.GraduationYear)
	assert.Equal(t, "a", u.Skills[0])
}

func TestEventCapacity(t *testing.T) {
	e := &Event{MaxAttendees: Ptr(2), CurrentAttendees: 1, RegisteredUsers: []string{"u1"}}
	assert.False(t, e.IsFull())
	assert.Equal(t, 1, e.SpotsLeft())
	assert.True(t, e.IsRegistered("u1"))

	e.CurrentAttendees = 2
	assert.True(t, e.IsFull())

	unlimited := &Event{CurrentAttendees: 500}
	assert.False(t, unlimited.IsFull())
	assert.Equal(t, -1, unlimited.SpotsLeft())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" Alumni ")
	require.NoError(t, err)
	assert.Equal(t, RoleAlumni, r)

	_, err = ParseRole("teacher")
	assert.Error(t, err)
}
