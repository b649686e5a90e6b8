package websocket

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models"
)

// MessageStore persists conversation messages and checks membership.
type MessageStore interface {
	SendMessage(ctx context.Context, conversationID, userID, text string) (*models.Message, error)
	IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)
}

// MessageHandler stores messages and fans them out to connected participants
type MessageHandler struct {
	store  MessageStore
	hub    *Hub
	logger zerolog.Logger
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(store MessageStore, hub *Hub, logger zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		store:  store,
		hub:    hub,
		logger: logger,
	}
}

// Send stores text as a message from userID and broadcasts it.
// A stored message is returned even when the broadcast fails.
func (h *MessageHandler) Send(ctx context.Context, conversationID, userID, text string) (*models.Message, error) {
	msg, err := h.store.SendMessage(ctx, conversationID, userID, text)
	if err != nil {
		return nil, err
	}

	if err := h.hub.Broadcast(ctx, *msg); err != nil {
		h.logger.Warn().Err(err).Str("messageID", msg.ID).Msg("Failed to broadcast message")
	}
	return msg, nil
}
