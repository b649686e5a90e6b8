package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/pkg/validation"
)

// table writes aligned rows.
func (c *CLI) table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	_ = w.Flush()
}

func (c *CLI) empty(what string) {
	c.printf("No %s found.\n", what)
}

// notify prints a gateway outcome.
func (c *CLI) notify(ok bool, message string) {
	if ok {
		c.printf("OK: %s\n", message)
		return
	}
	c.printf("Failed: %s\n", message)
}

func (c *CLI) fieldErrors(errs validation.FieldErrors) {
	for _, f := range errs.Fields() {
		c.printf("  %s: %s\n", f, errs[f])
	}
}

func (c *CLI) renderUser(u *models.User) {
	c.printf("%s <%s>\n", u.FullName(), u.Email)
	c.printf("  id:       %s\n", u.ID)
	c.printf("  role:     %s\n", u.Role)
	if u.Course != "" {
		c.printf("  course:   %s\n", u.Course)
	}
	if u.GraduationYear != nil {
		c.printf("  class of: %d\n", *u.GraduationYear)
	}
	if u.CurrentYear != nil {
		c.printf("  year:     %d\n", *u.CurrentYear)
	}
	if u.Company != "" || u.Position != "" {
		c.printf("  work:     %s\n", strings.TrimSpace(u.Position+" @ "+u.Company))
	}
	if u.Location != "" {
		c.printf("  location: %s\n", u.Location)
	}
	if len(u.Skills) > 0 {
		c.printf("  skills:   %s\n", strings.Join(u.Skills, ", "))
	}
	if u.Bio != "" {
		c.printf("  bio:      %s\n", u.Bio)
	}
}

func (c *CLI) renderEvents(events []*models.Event) {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		seats := fmt.Sprint(e.CurrentAttendees)
		if e.MaxAttendees != nil {
			seats = fmt.Sprintf("%d/%d", e.CurrentAttendees, *e.MaxAttendees)
		}
		rows = append(rows, []string{e.ID, e.Date, string(e.Type), e.Title, e.Location, seats})
	}
	c.table([]string{"ID", "DATE", "TYPE", "TITLE", "LOCATION", "ATTENDEES"}, rows)
}

func (c *CLI) renderRequests(reqs []*models.MentorshipRequest) {
	rows := make([][]string, 0, len(reqs))
	for _, r := range reqs {
		rows = append(rows, []string{r.ID, string(r.Status), r.Subject, r.StudentID, r.MentorID})
	}
	c.table([]string{"ID", "STATUS", "SUBJECT", "STUDENT", "MENTOR"}, rows)
}
