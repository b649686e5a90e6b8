// Package cli is the interactive terminal client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/dashboard"
	"github.com/yigit/alumniconnect/internal/app/filters"
	"github.com/yigit/alumniconnect/internal/app/gateway"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/navigation"
	"github.com/yigit/alumniconnect/internal/client/forms"
	"github.com/yigit/alumniconnect/internal/client/session"
)

// errExit ends the loop.
var errExit = errors.New("exit requested")

// LineReader is the part of *readline.Instance the loop needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Deps are the services the commands run against.
type Deps struct {
	Gateway  *gateway.Gateway
	Forms    *forms.Forms
	Session  *session.Store
	Composer *dashboard.Composer
	Logger   zerolog.Logger
	Now      func() time.Time
}

type command struct {
	// path is checked with navigation.Guard before running. Empty means unguarded.
	path  string
	usage string
	help  string
	run   func(ctx context.Context, args []string) error
}

type CLI struct {
	Deps
	rl       LineReader
	out      io.Writer
	commands map[string]command
	alumni   *filters.View[*models.User]
}

func New(deps Deps, rl LineReader, out io.Writer) *CLI {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	c := &CLI{
		Deps:   deps,
		rl:     rl,
		out:    out,
		alumni: filters.NewView(filters.AlumniQuery(filters.AlumniCriteria{})),
	}
	c.commands = c.commandTable()
	return c
}

// Run restores the session and reads commands until exit or EOF.
func (c *CLI) Run(ctx context.Context) error {
	defer c.alumni.Close()

	c.Session.Restore(ctx)
	if u := c.Session.User(); u != nil {
		c.printf("Welcome back, %s.\n", u.FirstName)
	} else {
		c.println("Welcome to AlumniConnect. Type 'login' to sign in or 'help' for commands.")
	}

	for {
		c.rl.SetPrompt(c.prompt())
		line, err := c.rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			c.println("Use 'exit' to leave.")
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		if err := c.Execute(ctx, line); err != nil {
			if errors.Is(err, errExit) {
				c.println("Bye!")
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.Logger.Error().Err(err).Str("line", line).Msg("Command failed")
			c.printf("Error: %v\n", err)
		}
	}
}

func (c *CLI) prompt() string {
	if u := c.Session.User(); u != nil {
		return fmt.Sprintf("%s (%s)> ", u.FirstName, u.Role)
	}
	return "alumni> "
}

// Execute runs one command line.
func (c *CLI) Execute(ctx context.Context, line string) error {
	args := ParseArgs(line)
	if len(args) == 0 {
		return nil
	}
	name := strings.ToLower(args[0])
	cmd, ok := c.commands[name]
	if !ok {
		c.printf("Unknown command: %s. Type 'help' for the list.\n", name)
		return nil
	}

	if cmd.path != "" {
		switch decision := navigation.Guard(cmd.path, c.Session.User()); decision {
		case navigation.Allow:
		case navigation.RedirectLogin:
			c.println("Please log in first.")
			return nil
		case navigation.RedirectDashboard:
			if cmd.path == navigation.Login || cmd.path == navigation.Register {
				c.println("You are already signed in.")
			} else {
				c.printf("%s is not available for your role.\n", cmd.path)
			}
			return c.showDashboard(ctx, nil)
		}
	}
	return cmd.run(ctx, args[1:])
}

// ParseArgs splits a line on spaces, keeping double-quoted text together.
func ParseArgs(input string) []string {
	var (
		args     []string
		current  strings.Builder
		inQuotes bool
		quoted   bool
	)
	flush := func() {
		if current.Len() > 0 || quoted {
			args = append(args, current.String())
			current.Reset()
		}
		quoted = false
	}
	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			quoted = true
		case (r == ' ' || r == '\t') && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return args
}

func (c *CLI) commandTable() map[string]command {
	return map[string]command{
		"login":             {navigation.Login, "login [email]", "Sign in", c.login},
		"register":          {navigation.Register, "register", "Create an account", c.register},
		"logout":            {navigation.Dashboard, "logout", "Sign out", c.logout},
		"whoami":            {navigation.Profile, "whoami", "Show your profile", c.whoami},
		"profile":           {navigation.Profile, "profile field=value...", "Update your profile", c.profile},
		"dashboard":         {navigation.Dashboard, "dashboard", "Show your dashboard", c.showDashboard},
		"alumni":            {navigation.Alumni, "alumni [search]", "Search the alumni directory", c.alumniSearch},
		"alumni-filter":     {navigation.Alumni, "alumni-filter key=value...", "Filter alumni by year, course, company, location, skills", c.alumniFilter},
		"events":            {navigation.Events, "events [type]", "List events", c.events},
		"register-event":    {navigation.Events, "register-event <id>", "Register for an event", c.registerEvent},
		"mentorship":        {navigation.Mentorship, "mentorship", "List your mentorship requests", c.mentorship},
		"request-mentor":    {navigation.Mentorship, "request-mentor [mentorId]", "Ask for a mentor", c.requestMentor},
		"mentorship-status": {navigation.Mentorship, "mentorship-status <id> <status>", "Change a request status", c.mentorshipStatus},
		"donations":         {navigation.Donations, "donations", "Show donations", c.donations},
		"donate":            {navigation.Donations, "donate <amount> <purpose>", "Make a donation", c.donate},
		"jobs":              {navigation.Jobs, "jobs [search]", "Browse the job board", c.jobs},
		"stories":           {navigation.Stories, "stories [tag]", "Read success stories", c.stories},
		"badges":            {navigation.Badges, "badges [all|earned|not-earned|category]", "Show badges and progress", c.badges},
		"messages":          {navigation.Messages, "messages [conversationId]", "List conversations or read one", c.messages},
		"send":              {navigation.Messages, "send <conversationId> <text>", "Send a message", c.send},
		"chat":              {"", "chat <text>", "Ask the assistant", c.chat},
		"help":              {"", "help", "Show this list", c.help},
		"exit":              {"", "exit", "Leave", func(context.Context, []string) error { return errExit }},
		"quit":              {"", "quit", "Leave", func(context.Context, []string) error { return errExit }},
	}
}

func (c *CLI) help(_ context.Context, _ []string) error {
	principal := c.Session.User()
	names := make([]string, 0, len(c.commands))
	for name, cmd := range c.commands {
		if name == "quit" {
			continue
		}
		if cmd.path != "" && navigation.Guard(cmd.path, principal) != navigation.Allow {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	c.println("Available commands:")
	for _, name := range names {
		cmd := c.commands[name]
		c.printf("  %-34s %s\n", cmd.usage, cmd.help)
	}
	return nil
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}
