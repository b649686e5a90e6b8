package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/alumniconnect/internal/app/chatbot"
	"github.com/yigit/alumniconnect/internal/app/dashboard"
	"github.com/yigit/alumniconnect/internal/app/filters"
	"github.com/yigit/alumniconnect/internal/app/gateway"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/app/navigation"
	"github.com/yigit/alumniconnect/internal/client/forms"
)

// load runs a gateway read. A fault is logged and shown as an empty state with a retry hint,
// a failed result as a notification. ok is false in both cases.
func load[T any](ctx context.Context, c *CLI, what string, fn func(context.Context) (dto.Result[T], error)) (data T, ok bool, err error) {
	res, err := fn(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return data, false, ctx.Err()
		}
		c.Logger.Error().Err(err).Str("resource", what).Msg("Failed to load")
		c.printf("No %s to show. Could not load them, try the command again.\n", what)
		return data, false, nil
	}
	if !res.Success {
		c.notify(false, res.Message)
		return data, false, nil
	}
	return res.Data, true, nil
}

func (c *CLI) outcome(out forms.Outcome) {
	if out.Errors != nil {
		c.printf("Failed: %s\n", out.Message)
		if len(out.Errors) > 1 {
			c.fieldErrors(out.Errors)
		}
		return
	}
	c.notify(out.OK, out.Message)
}

func (c *CLI) login(ctx context.Context, args []string) error {
	var email string
	var err error
	if len(args) > 0 {
		email = args[0]
	} else if email, err = c.ask("Email: "); err != nil {
		return err
	}
	password, err := c.askPassword("Password: ")
	if err != nil {
		return err
	}

	out, err := c.Forms.Login(ctx, email, password)
	if err != nil {
		return err
	}
	c.outcome(out)
	if out.OK {
		return c.showDashboard(ctx, nil)
	}
	return nil
}

func (c *CLI) register(ctx context.Context, _ []string) error {
	var form forms.RegistrationForm
	d := &form.Draft

	steps := []struct {
		prompt string
		dst    *string
	}{
		{"First name: ", &d.FirstName},
		{"Last name: ", &d.LastName},
		{"Email: ", &d.Email},
	}
	for _, s := range steps {
		v, err := c.ask(s.prompt)
		if err != nil {
			return err
		}
		*s.dst = v
	}

	role, err := c.ask("Role (student/alumni/admin): ")
	if err != nil {
		return err
	}
	d.Role = models.Role(strings.ToLower(role))

	switch d.Role {
	case models.RoleAlumni:
		if d.GraduationYear, err = c.askInt("Graduation year: "); err != nil {
			return err
		}
		if d.Course, err = c.ask("Course: "); err != nil {
			return err
		}
		if d.Company, err = c.ask("Company (optional): "); err != nil {
			return err
		}
		if d.Position, err = c.ask("Position (optional): "); err != nil {
			return err
		}
	case models.RoleStudent:
		if d.CurrentYear, err = c.askInt("Current year: "); err != nil {
			return err
		}
		if d.Course, err = c.ask("Course: "); err != nil {
			return err
		}
	}

	if form.Password, err = c.askPassword("Password: "); err != nil {
		return err
	}
	if form.ConfirmPassword, err = c.askPassword("Confirm password: "); err != nil {
		return err
	}

	out, err := c.Forms.Register(ctx, form)
	if err != nil {
		return err
	}
	c.outcome(out)
	return nil
}

func (c *CLI) logout(ctx context.Context, _ []string) error {
	out, err := c.Forms.Logout(ctx)
	if err != nil {
		return err
	}
	c.outcome(out)
	return nil
}

func (c *CLI) whoami(_ context.Context, _ []string) error {
	me := c.Session.User()
	c.renderUser(me)
	c.printf("  screens:  %s\n", strings.Join(navigation.Accessible(me), " "))
	return nil
}

func (c *CLI) profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.println("Usage: profile field=value... (firstName, lastName, company, position, location, bio, linkedIn, course, skills, mentorship)")
		return nil
	}
	kv, err := keyValues(args)
	if err != nil {
		return err
	}

	var patch models.UserPatch
	for k, v := range kv {
		switch k {
		case "firstname":
			patch.FirstName = &v
		case "lastname":
			patch.LastName = &v
		case "company":
			patch.Company = &v
		case "position":
			patch.Position = &v
		case "location":
			patch.Location = &v
		case "bio":
			patch.Bio = &v
		case "linkedin":
			patch.LinkedIn = &v
		case "course":
			patch.Course = &v
		case "skills":
			skills := splitList(v)
			patch.Skills = &skills
		case "mentorship":
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("mentorship must be true or false")
			}
			patch.MentorshipAvailable = &b
		default:
			return fmt.Errorf("unknown profile field %q", k)
		}
	}

	out, err := c.Forms.UpdateProfile(ctx, patch)
	if err != nil {
		return err
	}
	c.outcome(out)
	return nil
}

func (c *CLI) showDashboard(ctx context.Context, _ []string) error {
	me := c.Session.User()
	d, err := c.Composer.Compose(ctx, me)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.Logger.Error().Err(err).Msg("Failed to compose dashboard")
		c.println("The dashboard could not be loaded. Try 'dashboard' again.")
		return nil
	}

	c.printf("== %s dashboard: %s ==\n", d.Kind, me.FullName())
	switch d.Kind {
	case dashboard.StudentView:
		c.printf("Pending mentorship requests: %d\n", d.Student.PendingRequests)
		c.println("Upcoming events:")
		c.renderEvents(d.Student.UpcomingEvents)
		c.println("My mentorship requests:")
		c.renderRequests(d.Student.MyRequests)
	case dashboard.AlumniView:
		c.printf("Donations: %s across %d gifts\n", d.Alumni.DonationsTotal, d.Alumni.DonationsCount)
		c.printf("Available as mentor: %t, pending requests: %d\n", d.Alumni.MentorshipAvailable, d.Alumni.PendingRequests)
		c.println("Upcoming events:")
		c.renderEvents(d.Alumni.UpcomingEvents)
		c.println("Mentorship requests:")
		c.renderRequests(d.Alumni.MentorshipRequests)
	case dashboard.AdminView:
		a := d.Admin
		c.printf("Alumni: %d, events: %d, attendees: %d\n", a.AlumniCount, a.EventsCount, a.TotalAttendees)
		c.printf("Donations: %s across %d gifts (%.1f%% of target)\n", a.DonationsTotal, a.DonationsCount, a.TargetPercent)
	}
	return nil
}

func (c *CLI) refreshAlumni(ctx context.Context) error {
	token := c.alumni.Begin()
	users, ok, err := load(ctx, c, "alumni", func(ctx context.Context) (dto.Result[[]*models.User], error) {
		return c.Gateway.ListAlumni(ctx, filters.AlumniCriteria{})
	})
	if err != nil || !ok {
		return err
	}
	c.alumni.Accept(token, users)
	return nil
}

func (c *CLI) showAlumni(ctx context.Context, criteria filters.AlumniCriteria) error {
	if err := c.refreshAlumni(ctx); err != nil {
		return err
	}
	c.alumni.SetQuery(filters.AlumniQuery(criteria))

	users := c.alumni.Items()
	if len(users) == 0 {
		c.empty("alumni")
		return nil
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		year := ""
		if u.GraduationYear != nil {
			year = strconv.Itoa(*u.GraduationYear)
		}
		rows = append(rows, []string{u.ID, u.FullName(), year, u.Course, u.Company, u.Location})
	}
	c.table([]string{"ID", "NAME", "YEAR", "COURSE", "COMPANY", "LOCATION"}, rows)
	c.printf("%d of %d alumni\n", len(users), len(c.alumni.Source()))
	return nil
}

func (c *CLI) alumniSearch(ctx context.Context, args []string) error {
	return c.showAlumni(ctx, filters.AlumniCriteria{Search: strings.Join(args, " ")})
}

func (c *CLI) alumniFilter(ctx context.Context, args []string) error {
	kv, err := keyValues(args)
	if err != nil {
		return err
	}
	var criteria filters.AlumniCriteria
	for k, v := range kv {
		switch k {
		case "search":
			criteria.Search = v
		case "year":
			if criteria.Year, err = strconv.Atoi(v); err != nil {
				return fmt.Errorf("year must be a number")
			}
		case "course":
			criteria.Course = v
		case "company":
			criteria.Company = v
		case "location":
			criteria.Location = v
		case "skills":
			criteria.Skills = v
		default:
			return fmt.Errorf("unknown filter %q", k)
		}
	}
	return c.showAlumni(ctx, criteria)
}

func (c *CLI) events(ctx context.Context, args []string) error {
	events, ok, err := load(ctx, c, "events", c.Gateway.ListEvents)
	if err != nil || !ok {
		return err
	}
	criteria := filters.EventCriteria{}
	if len(args) > 0 {
		criteria.Type = args[0]
	}
	events = filters.Events(events, criteria)
	if len(events) == 0 {
		c.empty("events")
		return nil
	}
	c.renderEvents(events)
	return nil
}

func (c *CLI) registerEvent(ctx context.Context, args []string) error {
	if len(args) != 1 {
		c.println("Usage: register-event <id>")
		return nil
	}
	res, err := c.Gateway.RegisterForEvent(ctx, args[0], c.Session.User().ID)
	if err != nil {
		return err
	}
	c.notify(res.Success, res.Message)
	return nil
}

func (c *CLI) mentorship(ctx context.Context, _ []string) error {
	me := c.Session.User()
	reqs, ok, err := load(ctx, c, "mentorship requests", func(ctx context.Context) (dto.Result[[]*models.MentorshipRequest], error) {
		return c.Gateway.ListMentorshipRequests(ctx, me.ID)
	})
	if err != nil || !ok {
		return err
	}
	if len(reqs) == 0 {
		c.empty("mentorship requests")
		return nil
	}
	c.renderRequests(reqs)
	return nil
}

func (c *CLI) requestMentor(ctx context.Context, args []string) error {
	var draft models.MentorshipDraft
	if len(args) > 0 {
		draft.MentorID = args[0]
	}
	var err error
	if draft.Subject, err = c.ask("Subject: "); err != nil {
		return err
	}
	if draft.Message, err = c.ask("Message: "); err != nil {
		return err
	}
	if draft.Goals, err = c.ask("Goals (optional): "); err != nil {
		return err
	}
	if draft.Duration, err = c.ask("Duration (optional): "); err != nil {
		return err
	}

	out, err := c.Forms.RequestMentor(ctx, draft)
	if err != nil {
		return err
	}
	c.outcome(out)
	return nil
}

func (c *CLI) mentorshipStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		c.println("Usage: mentorship-status <id> <pending|approved|rejected|active|completed>")
		return nil
	}
	patch := models.MentorshipPatch{Status: models.MentorshipStatus(strings.ToLower(args[1]))}
	res, err := c.Gateway.UpdateMentorshipRequest(ctx, c.Session.User().ID, args[0], patch)
	if err != nil {
		return err
	}
	c.notify(res.Success, res.Message)
	return nil
}

func (c *CLI) donations(ctx context.Context, _ []string) error {
	me := c.Session.User()
	summary, err := c.Composer.Donations(ctx, me, c.Now())
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.Logger.Error().Err(err).Msg("Failed to load donations")
		c.println("No donations to show. Could not load them, try the command again.")
		return nil
	}
	c.printf("My contributions: %s\n", summary.MyContributions)
	c.printf("Total raised:     %s\n", summary.TotalRaised)
	c.printf("Unique donors:    %d\n", summary.UniqueDonors)
	c.printf("This month:       %s\n", summary.ThisMonth)

	all, ok, err := load(ctx, c, "donations", c.Gateway.ListDonations)
	if err != nil || !ok {
		return err
	}
	rows := [][]string{}
	for _, d := range all {
		if d.DonorID != me.ID {
			continue
		}
		kind := "one-time"
		if d.IsRecurring {
			kind = string(d.Frequency)
		}
		rows = append(rows, []string{d.CreatedAt.Format("2006-01-02"), d.Amount.String(), d.Purpose, kind})
	}
	if len(rows) == 0 {
		c.println("You have not donated yet.")
		return nil
	}
	c.table([]string{"DATE", "AMOUNT", "PURPOSE", "FREQUENCY"}, rows)
	return nil
}

func (c *CLI) donate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		c.println("Usage: donate <amount> <purpose> [--anonymous] [--monthly|--quarterly|--yearly]")
		return nil
	}
	amount, err := models.ParseAmount(args[0])
	if err != nil {
		return err
	}

	draft := models.DonationDraft{Amount: amount}
	var purpose []string
	for _, a := range args[1:] {
		switch a {
		case "--anonymous":
			draft.IsAnonymous = true
		case "--monthly", "--quarterly", "--yearly":
			draft.IsRecurring = true
			draft.Frequency = models.Frequency(strings.TrimPrefix(a, "--"))
		default:
			purpose = append(purpose, a)
		}
	}
	draft.Purpose = strings.Join(purpose, " ")

	out, err := c.Forms.Donate(ctx, draft)
	if err != nil {
		return err
	}
	c.outcome(out)
	return nil
}

func (c *CLI) jobs(ctx context.Context, args []string) error {
	jobs, ok, err := load(ctx, c, "jobs", c.Gateway.ListJobs)
	if err != nil || !ok {
		return err
	}
	jobs = filters.Jobs(jobs, filters.JobCriteria{Search: strings.Join(args, " ")})
	if len(jobs) == 0 {
		c.empty("jobs")
		return nil
	}
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{j.ID, j.Title, j.Company, j.Location, string(j.Type)})
	}
	c.table([]string{"ID", "TITLE", "COMPANY", "LOCATION", "TYPE"}, rows)
	return nil
}

func (c *CLI) stories(ctx context.Context, args []string) error {
	stories, ok, err := load(ctx, c, "stories", c.Gateway.ListStories)
	if err != nil || !ok {
		return err
	}
	criteria := filters.StoryCriteria{}
	if len(args) > 0 {
		criteria.Tag = strings.Join(args, " ")
	}
	filtered := filters.Stories(stories, criteria)
	if len(filtered) == 0 {
		c.empty("stories")
		c.printf("Tags: %s\n", strings.Join(filters.StoryTags(stories), ", "))
		return nil
	}
	for _, s := range filtered {
		c.printf("%s (class of %d) - %s @ %s\n", s.Name, s.GraduationYear, s.CurrentPosition, s.Company)
		c.printf("  %s\n", s.Story)
		c.printf("  tags: %s\n", strings.Join(s.Tags, ", "))
	}
	return nil
}

func (c *CLI) badges(ctx context.Context, args []string) error {
	me := c.Session.User()
	board, ok, err := load(ctx, c, "badges", func(ctx context.Context) (dto.Result[*gateway.BadgeBoard], error) {
		return c.Gateway.ListBadges(ctx, me.ID)
	})
	if err != nil || !ok {
		return err
	}

	filter := filters.All
	if len(args) > 0 {
		filter = args[0]
	}
	c.printf("Earned %d of %d badges (%d%%)\n", board.Stats.Earned, board.Stats.Total, board.Stats.CompletionPercentage)

	rows := [][]string{}
	for _, b := range filters.Badges(board.Badges, filter) {
		earned := "-"
		if b.EarnedDate != nil {
			earned = *b.EarnedDate
		}
		rows = append(rows, []string{b.Name, string(b.Category), earned})
	}
	if len(rows) == 0 {
		c.empty("badges")
	} else {
		c.table([]string{"BADGE", "CATEGORY", "EARNED"}, rows)
	}

	if len(board.Progress) > 0 {
		c.println("In progress:")
		for _, p := range board.Progress {
			c.printf("  %-28s %d/%d %s (%d%%) -> %s\n", p.Title, p.Progress, p.Target, p.Unit, p.Percent(), p.BadgeReward)
		}
	}
	return nil
}

func (c *CLI) messages(ctx context.Context, args []string) error {
	me := c.Session.User()
	if len(args) == 0 {
		convs, ok, err := load(ctx, c, "conversations", func(ctx context.Context) (dto.Result[[]*models.Conversation], error) {
			return c.Gateway.ListConversations(ctx, me.ID)
		})
		if err != nil || !ok {
			return err
		}
		if len(convs) == 0 {
			c.empty("conversations")
			return nil
		}
		rows := make([][]string, 0, len(convs))
		for _, conv := range convs {
			last := ""
			if conv.LastMessage != nil {
				last = conv.LastMessage.Text
			}
			rows = append(rows, []string{conv.ID, conv.Name, string(conv.Type), strconv.Itoa(conv.UnreadCount), last})
		}
		c.table([]string{"ID", "NAME", "TYPE", "UNREAD", "LAST MESSAGE"}, rows)
		return nil
	}

	msgs, ok, err := load(ctx, c, "messages", func(ctx context.Context) (dto.Result[[]models.Message], error) {
		return c.Gateway.ListMessages(ctx, args[0], me.ID)
	})
	if err != nil || !ok {
		return err
	}
	if len(msgs) == 0 {
		c.empty("messages")
		return nil
	}
	for _, m := range msgs {
		who := m.SenderID
		if who == me.ID {
			who = "you"
		}
		c.printf("[%s] %s: %s\n", m.Timestamp.Format("2006-01-02 15:04"), who, m.Text)
	}
	return nil
}

func (c *CLI) send(ctx context.Context, args []string) error {
	if len(args) < 2 {
		c.println("Usage: send <conversationId> <text>")
		return nil
	}
	res, err := c.Gateway.SendMessage(ctx, args[0], c.Session.User().ID, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	if res.Success {
		c.println("Sent.")
		return nil
	}
	c.notify(false, res.Message)
	return nil
}

func (c *CLI) chat(_ context.Context, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		c.printf("Assistant: %s\n", chatbot.Welcome)
		for _, q := range chatbot.QuickReplies {
			c.printf("  chat %s\n", q.Payload)
		}
		return nil
	}
	c.printf("Assistant: %s\n", chatbot.Reply(text))
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
