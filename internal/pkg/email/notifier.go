package email

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
)

const (
	sendTimeout = 30 * time.Second
	maxInFlight = 4
)

// Directory resolves the recipients of a notification.
type Directory interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Notifier turns activity events into emails. It satisfies activity.Publisher.
// Registrations get a welcome mail, new mentorship requests go to the mentor
// and status changes go to the student.
type Notifier struct {
	sender Sender
	users  Directory
	logger zerolog.Logger
	group  errgroup.Group
}

// NewNotifier creates a Notifier that delivers through sender.
func NewNotifier(sender Sender, users Directory, logger zerolog.Logger) *Notifier {
	n := &Notifier{
		sender: sender,
		users:  users,
		logger: logger.With().Str("component", "notifier").Logger(),
	}
	n.group.SetLimit(maxInFlight)
	return n
}

// Publish renders the mail for e and sends it in the background.
// Events without a mail are ignored.
func (n *Notifier) Publish(ctx context.Context, e activity.Event) error {
	msg, ok, err := n.message(ctx, e)
	if err != nil || !ok {
		return err
	}

	sendCtx := context.WithoutCancel(ctx)
	n.group.Go(func() error {
		ctx, cancel := context.WithTimeout(sendCtx, sendTimeout)
		defer cancel()
		if err := n.sender.Send(ctx, msg); err != nil {
			n.logger.Error().Err(err).Str("type", e.Type).Str("toEmail", msg.To).Msg("Failed to send notification")
		}
		return nil
	})
	return nil
}

// Close waits for pending sends.
func (n *Notifier) Close() error {
	return n.group.Wait()
}

func (n *Notifier) message(ctx context.Context, e activity.Event) (Message, bool, error) {
	switch e.Type {
	case activity.UserRegistered:
		user, err := n.users.GetByID(ctx, e.ActorID)
		if err != nil {
			return Message{}, false, fmt.Errorf("welcome mail recipient: %w", err)
		}
		return n.render(user, "Welcome to AlumniConnect", TemplateWelcome, TemplateData{Role: string(user.Role)})

	case activity.MentorshipRequested:
		mentorID := e.Data["mentorId"]
		if mentorID == "" {
			return Message{}, false, nil
		}
		mentor, student, err := n.pair(ctx, mentorID, e.ActorID)
		if err != nil {
			return Message{}, false, err
		}
		return n.render(mentor, "New mentorship request from "+student.FullName(), TemplateMentorshipRequested, TemplateData{
			Counterpart: student.FullName(),
			Subject:     e.Data["subject"],
		})

	case activity.MentorshipUpdated:
		studentID := e.Data["studentId"]
		if studentID == "" || studentID == e.ActorID {
			return Message{}, false, nil
		}
		student, actor, err := n.pair(ctx, studentID, e.ActorID)
		if err != nil {
			return Message{}, false, err
		}
		status := e.Data["status"]
		return n.render(student, "Your mentorship request is "+status, TemplateMentorshipUpdated, TemplateData{
			Counterpart: actor.FullName(),
			Status:      status,
		})
	}
	return Message{}, false, nil
}

// pair looks up the recipient and the other party of a mentorship mail.
func (n *Notifier) pair(ctx context.Context, recipientID, otherID string) (*models.User, *models.User, error) {
	recipient, err := n.users.GetByID(ctx, recipientID)
	if err != nil {
		return nil, nil, fmt.Errorf("mentorship mail recipient: %w", err)
	}
	other, err := n.users.GetByID(ctx, otherID)
	if err != nil {
		return nil, nil, fmt.Errorf("mentorship mail counterpart: %w", err)
	}
	return recipient, other, nil
}

func (n *Notifier) render(to *models.User, subject, tmpl string, data TemplateData) (Message, bool, error) {
	data.Name = to.FirstName
	html, err := Render(tmpl, data)
	if err != nil {
		return Message{}, false, fmt.Errorf("render %s: %w", tmpl, err)
	}
	return Message{To: to.Email, ToName: to.FullName(), Subject: subject, HTML: html}, true, nil
}
