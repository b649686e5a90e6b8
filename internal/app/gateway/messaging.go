package gateway

import (
	"context"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
)

// ListConversations returns the conversations of userID with unread counts.
func (g *Gateway) ListConversations(ctx context.Context, userID string) (dto.Result[[]*models.Conversation], error) {
	return call(ctx, g, OpListConversations, func(ctx context.Context) ([]*models.Conversation, string, error) {
		convs, err := g.services.Message.ListConversations(ctx, userID)
		return convs, "", err
	})
}

// ListMessages returns the history of a conversation userID belongs to.
func (g *Gateway) ListMessages(ctx context.Context, conversationID, userID string) (dto.Result[[]models.Message], error) {
	return call(ctx, g, OpListMessages, func(ctx context.Context) ([]models.Message, string, error) {
		msgs, err := g.services.Message.ListMessages(ctx, conversationID, userID)
		return msgs, "", err
	})
}

// SendMessage posts text to a conversation as userID.
func (g *Gateway) SendMessage(ctx context.Context, conversationID, userID, text string) (dto.Result[*models.Message], error) {
	return call(ctx, g, OpSendMessage, func(ctx context.Context) (*models.Message, string, error) {
		msg, err := g.services.Message.SendMessage(ctx, conversationID, userID, text)
		if err != nil {
			return nil, "", err
		}
		g.publish(ctx, activity.MessageSent, userID, conversationID, nil)
		return msg, "", nil
	})
}
