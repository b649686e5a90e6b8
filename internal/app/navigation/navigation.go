// Package navigation decides which screens a principal may open.
package navigation

import (
	"slices"

	"github.com/yigit/alumniconnect/internal/app/models"
)

// Paths
const (
	Root       = "/"
	Login      = "/login"
	Register   = "/register"
	Dashboard  = "/dashboard"
	Alumni     = "/alumni"
	Profile    = "/profile"
	Events     = "/events"
	Mentorship = "/mentorship"
	Donations  = "/donations"
	Jobs       = "/jobs"
	Stories    = "/stories"
	Badges     = "/badges"
	Messages   = "/messages"
)

// Decision is the outcome of a guard check.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectDashboard
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect:" + Login
	case RedirectDashboard:
		return "redirect:" + Dashboard
	}
	return "unknown"
}

// Target returns the path to continue at. requested is returned for Allow.
func (d Decision) Target(requested string) string {
	switch d {
	case RedirectLogin:
		return Login
	case RedirectDashboard:
		return Dashboard
	}
	return requested
}

// Access describes who may open a path.
type Access struct {
	GuestOnly bool
	// Roles limits an authenticated path to these roles. Empty allows every role.
	Roles []models.Role
}

// Routes is the guard table. Paths not listed redirect.
var Routes = map[string]Access{
	Login:      {GuestOnly: true},
	Register:   {GuestOnly: true},
	Dashboard:  {},
	Alumni:     {},
	Profile:    {},
	Events:     {},
	Jobs:       {},
	Stories:    {},
	Badges:     {},
	Messages:   {},
	Mentorship: {Roles: []models.Role{models.RoleStudent, models.RoleAlumni}},
	Donations:  {Roles: []models.Role{models.RoleAlumni, models.RoleAdmin}},
}

// Guard decides whether principal may open path. A nil principal is a guest.
func Guard(path string, principal *models.User) Decision {
	access, known := Routes[path]
	if !known {
		if principal == nil {
			return RedirectLogin
		}
		return RedirectDashboard
	}

	if access.GuestOnly {
		if principal != nil {
			return RedirectDashboard
		}
		return Allow
	}
	if principal == nil {
		return RedirectLogin
	}
	if len(access.Roles) > 0 && !slices.Contains(access.Roles, principal.Role) {
		return RedirectDashboard
	}
	return Allow
}

// Accessible lists the authenticated paths principal may open, sorted.
func Accessible(principal *models.User) []string {
	out := make([]string, 0, len(Routes))
	for path := range Routes {
		if Guard(path, principal) == Allow {
			out = append(out, path)
		}
	}
	slices.Sort(out)
	return out
}
