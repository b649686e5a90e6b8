package models

import (
	"slices"
	"time"
)

// ConversationType distinguishes one-to-one and group chats
type ConversationType string

const (
	ConversationDirect ConversationType = "direct"
	ConversationGroup  ConversationType = "group"
)

// MessageType is the payload kind of a chat message
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageFile  MessageType = "file"
)

// Message is a single chat message.
type Message struct {
	ID             string      `json:"id"`
	ConversationID string      `json:"conversationId"`
	SenderID       string      `json:"senderId"`
	Text           string      `json:"text"`
	Type           MessageType `json:"type"`
	Read           bool        `json:"read"`
	Timestamp      time.Time   `json:"timestamp"`
}

// Conversation is a chat thread between participants.
type Conversation struct {
	ID           string           `json:"id"`
	Type         ConversationType `json:"type"`
	Name         string           `json:"name"`
	Participants []string         `json:"participants"`
	LastMessage  *Message         `json:"lastMessage,omitempty"`
	UnreadCount  int              `json:"unreadCount"`
}

// HasParticipant reports whether userID belongs to the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	return slices.Contains(c.Participants, userID)
}

// Clone returns a deep copy.
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	out := *c
	out.Participants = slices.Clone(c.Participants)
	if c.LastMessage != nil {
		m := *c.LastMessage
		out.LastMessage = &m
	}
	return &out
}
