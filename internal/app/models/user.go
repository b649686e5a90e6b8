package models

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Role defines the user role
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleAdmin   Role = "admin"
)

// Roles lists every known role
var Roles = []Role{RoleStudent, RoleAlumni, RoleAdmin}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return slices.Contains(Roles, r)
}

// ParseRole converts s to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// User is the principal record. Role specific attributes are optional and omitted when absent.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Role           Role      `json:"role"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	GraduationYear *int      `json:"graduationYear,omitempty"`
	CurrentYear    *int      `json:"currentYear,omitempty"`
	Course         string    `json:"course,omitempty"`
	Company        string    `json:"company,omitempty"`
	Position       string    `json:"position,omitempty"`
	Location       string    `json:"location,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Skills         []string  `json:"skills,omitempty"`
	LinkedIn       string    `json:"linkedIn,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`

	// Alumni only
	MentorshipAvailable *bool    `json:"mentorshipAvailable,omitempty"`
	Achievements        []string `json:"achievements,omitempty"`

	// Student only
	MentorshipRequested *bool `json:"mentorshipRequested,omitempty"`
}

// FullName returns "First Last".
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsMentor reports whether the user is an alumnus open to mentoring.
func (u *User) IsMentor() bool {
	return u.Role == RoleAlumni && u.MentorshipAvailable != nil && *u.MentorshipAvailable
}

// Clone returns a deep copy.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.GraduationYear = clonePtr(u.GraduationYear)
	c.CurrentYear = clonePtr(u.CurrentYear)
	c.MentorshipAvailable = clonePtr(u.MentorshipAvailable)
	c.MentorshipRequested = clonePtr(u.MentorshipRequested)
	c.Skills = slices.Clone(u.Skills)
	c.Achievements = slices.Clone(u.Achievements)
	return &c
}

// Validate checks the structural invariants of a stored principal.
func (u *User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is empty")
	}
	if !u.Role.Valid() {
		return fmt.Errorf("user %s has unknown role %q", u.ID, u.Role)
	}
	return nil
}

// UserPatch carries a partial profile update. Nil fields are left untouched.
// Identity fields (id, email, role, createdAt) cannot be patched.
type UserPatch struct {
	FirstName           *string   `json:"firstName,omitempty"`
	LastName            *string   `json:"lastName,omitempty"`
	ProfilePicture      *string   `json:"profilePicture,omitempty"`
	GraduationYear      *int      `json:"graduationYear,omitempty"`
	CurrentYear         *int      `json:"currentYear,omitempty"`
	Course              *string   `json:"course,omitempty"`
	Company             *string   `json:"company,omitempty"`
	Position            *string   `json:"position,omitempty"`
	Location            *string   `json:"location,omitempty"`
	Bio                 *string   `json:"bio,omitempty"`
	Skills              *[]string `json:"skills,omitempty"`
	LinkedIn            *string   `json:"linkedIn,omitempty"`
	MentorshipAvailable *bool     `json:"mentorshipAvailable,omitempty"`
	Achievements        *[]string `json:"achievements,omitempty"`
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	setIf(&u.FirstName, p.FirstName)
	setIf(&u.LastName, p.LastName)
	setIf(&u.ProfilePicture, p.ProfilePicture)
	setIf(&u.Course, p.Course)
	setIf(&u.Company, p.Company)
	setIf(&u.Position, p.Position)
	setIf(&u.Location, p.Location)
	setIf(&u.Bio, p.Bio)
	setIf(&u.LinkedIn, p.LinkedIn)
	if p.GraduationYear != nil {
		u.GraduationYear = clonePtr(p.GraduationYear)
	}
	if p.CurrentYear != nil {
		u.CurrentYear = clonePtr(p.CurrentYear)
	}
	if p.Skills != nil {
		u.Skills = slices.Clone(*p.Skills)
	}
	if p.MentorshipAvailable != nil && u.Role == RoleAlumni {
		u.MentorshipAvailable = clonePtr(p.MentorshipAvailable)
	}
	if p.Achievements != nil && u.Role == RoleAlumni {
		u.Achievements = slices.Clone(*p.Achievements)
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p == (UserPatch{})
}

// ProfileDraft is the registration input for a new principal.
type ProfileDraft struct {
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Role           Role   `json:"role"`
	GraduationYear *int   `json:"graduationYear,omitempty"`
	CurrentYear    *int   `json:"currentYear,omitempty"`
	Course         string `json:"course,omitempty"`
	Company        string `json:"company,omitempty"`
	Position       string `json:"position,omitempty"`
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
