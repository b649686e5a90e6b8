package models

import (
	"slices"
	"time"
)

// EventType categorizes events
type EventType string

const (
	EventNetworking EventType = "networking"
	EventWorkshop   EventType = "workshop"
	EventReunion    EventType = "reunion"
	EventWebinar    EventType = "webinar"
)

// EventTypes lists every event type in display order
var EventTypes = []EventType{EventNetworking, EventWorkshop, EventReunion, EventWebinar}

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	return slices.Contains(EventTypes, t)
}

// Event is a scheduled alumni event.
type Event struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Location         string    `json:"location"`
	Type             EventType `json:"type"`
	MaxAttendees     *int      `json:"maxAttendees,omitempty"`
	CurrentAttendees int       `json:"currentAttendees"`
	RegisteredUsers  []string  `json:"registeredUsers"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	Organizer        string    `json:"organizer"`
	CreatedAt        time.Time `json:"createdAt"`
}

// IsRegistered reports whether userID already holds a seat.
func (e *Event) IsRegistered(userID string) bool {
	return slices.Contains(e.RegisteredUsers, userID)
}

// IsFull reports whether the event reached its capacity. Events without a limit are never full.
func (e *Event) IsFull() bool {
	return e.MaxAttendees != nil && e.CurrentAttendees >= *e.MaxAttendees
}

// SpotsLeft returns the remaining seats, or -1 when the event is unlimited.
func (e *Event) SpotsLeft() int {
	if e.MaxAttendees == nil {
		return -1
	}
	return max(*e.MaxAttendees-e.CurrentAttendees, 0)
}

// Clone returns a deep copy.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	c.MaxAttendees = clonePtr(e.MaxAttendees)
	c.RegisteredUsers = slices.Clone(e.RegisteredUsers)
	if c.RegisteredUsers == nil {
		c.RegisteredUsers = []string{}
	}
	return &c
}
