package dto

import "github.com/yigit/alumniconnect/internal/app/models"

// AlumniQuery binds the directory filters from the query string.
type AlumniQuery struct {
	Search   string `form:"search"`
	Year     int    `form:"year" binding:"omitempty,min=1900,max=2100"`
	Course   string `form:"course"`
	Company  string `form:"company"`
	Location string `form:"location"`
	Skills   string `form:"skills"`
	Page     int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

// EventQuery binds the event filters.
type EventQuery struct {
	Search string `form:"search"`
	Type   string `form:"type" binding:"omitempty,oneof=all networking workshop reunion webinar"`
}

// JobQuery binds the job board filters. Multi-valued keys may repeat.
type JobQuery struct {
	Search   string   `form:"search"`
	Tab      string   `form:"tab" binding:"omitempty,oneof=jobs internships"`
	JobType  []string `form:"jobType"`
	Location []string `form:"location"`
	Category []string `form:"category"`
}

// StoryQuery binds the success story filters.
type StoryQuery struct {
	Search string `form:"search"`
	Tag    string `form:"tag"`
}

// BadgeQuery binds the badge filter.
type BadgeQuery struct {
	Filter string `form:"filter"`
}

// ConversationQuery binds the conversation search.
type ConversationQuery struct {
	Search string `form:"search"`
}

// CreateMentorshipRequest is the body of a new mentorship request.
type CreateMentorshipRequest struct {
	MentorID string `json:"mentorId"`
	Subject  string `json:"subject" binding:"required,max=200"`
	Message  string `json:"message" binding:"required,max=2000"`
	Goals    string `json:"goals"`
	Duration string `json:"duration"`
}

// UpdateMentorshipRequest changes the status of a request.
type UpdateMentorshipRequest struct {
	Status models.MentorshipStatus `json:"status" binding:"required,oneof=pending approved rejected active completed"`
}

// CreateDonationRequest is the body of a new donation.
type CreateDonationRequest struct {
	Amount      models.Amount    `json:"amount" binding:"required"`
	Purpose     string           `json:"purpose" binding:"required"`
	IsRecurring bool             `json:"isRecurring"`
	Frequency   models.Frequency `json:"frequency" binding:"omitempty,oneof=monthly quarterly yearly"`
	IsAnonymous bool             `json:"isAnonymous"`
	Message     string           `json:"message" binding:"max=500"`
}

// SendMessageRequest posts a chat message.
type SendMessageRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}

// ChatbotRequest asks the assistant a question.
type ChatbotRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatbotResponse is the assistant's canned reply.
type ChatbotResponse struct {
	Topic        string   `json:"topic"`
	Reply        string   `json:"reply"`
	QuickReplies []string `json:"quickReplies,omitempty"`
}

// Page wraps a paginated slice.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}
