package models

import (
	"slices"
	"time"
)

// MentorshipStatus is the state of a mentorship request
type MentorshipStatus string

const (
	MentorshipPending   MentorshipStatus = "pending"
	MentorshipApproved  MentorshipStatus = "approved"
	MentorshipRejected  MentorshipStatus = "rejected"
	MentorshipActive    MentorshipStatus = "active"
	MentorshipCompleted MentorshipStatus = "completed"
)

// mentorshipTransitions maps a status to the statuses it may move to.
// Rejected and completed are terminal.
var mentorshipTransitions = map[MentorshipStatus][]MentorshipStatus{
	MentorshipPending:   {MentorshipApproved, MentorshipRejected},
	MentorshipApproved:  {MentorshipActive},
	MentorshipActive:    {MentorshipCompleted},
	MentorshipRejected:  nil,
	MentorshipCompleted: nil,
}

// Valid reports whether s is a known status.
func (s MentorshipStatus) Valid() bool {
	_, ok := mentorshipTransitions[s]
	return ok
}

// CanTransitionTo reports whether the table allows moving from s to next.
func (s MentorshipStatus) CanTransitionTo(next MentorshipStatus) bool {
	return slices.Contains(mentorshipTransitions[s], next)
}

// IsTerminal reports whether no further transition is possible.
func (s MentorshipStatus) IsTerminal() bool {
	return s.Valid() && len(mentorshipTransitions[s]) == 0
}

// NextStatuses returns the statuses reachable from s.
func (s MentorshipStatus) NextStatuses() []MentorshipStatus {
	return slices.Clone(mentorshipTransitions[s])
}

// MentorshipRequest is a student's request for guidance from an alumnus.
type MentorshipRequest struct {
	ID        string           `json:"id"`
	StudentID string           `json:"studentId"`
	MentorID  string           `json:"mentorId,omitempty"`
	Status    MentorshipStatus `json:"status"`
	Subject   string           `json:"subject"`
	Message   string           `json:"message"`
	Goals     string           `json:"goals,omitempty"`
	Duration  string           `json:"duration,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Clone returns a copy.
func (m *MentorshipRequest) Clone() *MentorshipRequest {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// MentorshipDraft is the input for a new request. An empty Status means pending.
type MentorshipDraft struct {
	StudentID string           `json:"studentId"`
	MentorID  string           `json:"mentorId,omitempty"`
	Status    MentorshipStatus `json:"status,omitempty"`
	Subject   string           `json:"subject"`
	Message   string           `json:"message"`
	Goals     string           `json:"goals,omitempty"`
	Duration  string           `json:"duration,omitempty"`
}

// MentorshipPatch updates a request. Only the status is mutable.
type MentorshipPatch struct {
	Status MentorshipStatus `json:"status"`
}
