// Package activity publishes domain events such as registrations and donations.
package activity

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Event types
const (
	UserLoggedIn        = "user.logged_in"
	UserRegistered      = "user.registered"
	UserLoggedOut       = "user.logged_out"
	ProfileUpdated      = "profile.updated"
	EventRegistered     = "event.registered"
	MentorshipRequested = "mentorship.requested"
	MentorshipUpdated   = "mentorship.updated"
	DonationCreated     = "donation.created"
	MessageSent         = "message.sent"
)

// Event is one thing that happened in the platform.
type Event struct {
	Type      string            `json:"type"`
	ActorID   string            `json:"actorId,omitempty"`
	SubjectID string            `json:"subjectId,omitempty"`
	At        time.Time         `json:"at"`
	Data      map[string]string `json:"data,omitempty"`
}

// Publisher delivers events to interested parties.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }

// Memory keeps published events in memory.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

func (m *Memory) Publish(_ context.Context, e Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return nil
}

func (m *Memory) Close() error { return nil }

// Events returns a copy of what was published, oldest first.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}

// Types returns the type of every published event, oldest first.
func (m *Memory) Types() []string {
	events := m.Events()
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

// Fanout delivers every event to each publisher in order.
// Publish reports every failure but never stops early.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Close() error {
	var errs []error
	for _, p := range f {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
