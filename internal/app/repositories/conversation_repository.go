package repositories

import (
	"context"
	"sync"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// ConversationRepository keeps conversations and their message history
type ConversationRepository struct {
	conversations *store[models.Conversation]

	mu       sync.RWMutex
	messages map[string][]models.Message
}

// NewConversationRepository creates an empty ConversationRepository
func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{
		conversations: newStore(func(c *models.Conversation) string { return c.ID },
			(*models.Conversation).Clone, apperrors.ErrConversationNotFound),
		messages: make(map[string][]models.Message),
	}
}

// Create stores a conversation
func (r *ConversationRepository) Create(ctx context.Context, c *models.Conversation) error {
	return r.conversations.insert(c)
}

// GetByID returns the conversation with id
func (r *ConversationRepository) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	return r.conversations.get(id)
}

// ListForUser returns the conversations userID participates in.
// UnreadCount is computed from userID's point of view.
func (r *ConversationRepository) ListForUser(ctx context.Context, userID string) ([]*models.Conversation, error) {
	convs := r.conversations.filter(func(c *models.Conversation) bool { return c.HasParticipant(userID) })

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range convs {
		c.UnreadCount = 0
		for _, m := range r.messages[c.ID] {
			if !m.Read && m.SenderID != userID {
				c.UnreadCount++
			}
		}
	}
	return convs, nil
}

// Messages returns the history of conversationID in send order
func (r *ConversationRepository) Messages(ctx context.Context, conversationID string) ([]models.Message, error) {
	if _, err := r.conversations.get(conversationID); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Message{}, r.messages[conversationID]...), nil
}

// Append adds msg to its conversation and makes it the last message.
func (r *ConversationRepository) Append(ctx context.Context, msg models.Message) error {
	_, err := r.conversations.update(msg.ConversationID, func(c *models.Conversation) error {
		m := msg
		c.LastMessage = &m
		return nil
	})
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[msg.ConversationID] = append(r.messages[msg.ConversationID], msg)
	return nil
}

// MarkRead flags every message not sent by userID as read and returns how many changed.
func (r *ConversationRepository) MarkRead(ctx context.Context, conversationID, userID string) (int, error) {
	if _, err := r.conversations.get(conversationID); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := 0
	msgs := r.messages[conversationID]
	for i := range msgs {
		if !msgs[i].Read && msgs[i].SenderID != userID {
			msgs[i].Read = true
			changed++
		}
	}
	return changed, nil
}
