package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/repositories"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// MessageService defines chat operations
type MessageService interface {
	ListConversations(ctx context.Context, userID string) ([]*models.Conversation, error)
	ListMessages(ctx context.Context, conversationID, userID string) ([]models.Message, error)
	SendMessage(ctx context.Context, conversationID, userID, text string) (*models.Message, error)
	// IsParticipant reports whether userID may read and write conversationID.
	IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)
}

type messageServiceImpl struct {
	conversationRepo *repositories.ConversationRepository
	settings         Settings
	logger           zerolog.Logger
}

// NewMessageService creates a new message service instance
func NewMessageService(conversationRepo *repositories.ConversationRepository, settings Settings, logger zerolog.Logger) MessageService {
	return &messageServiceImpl{
		conversationRepo: conversationRepo,
		settings:         settings.withDefaults(),
		logger:           logger,
	}
}

func (s *messageServiceImpl) ListConversations(ctx context.Context, userID string) ([]*models.Conversation, error) {
	return s.conversationRepo.ListForUser(ctx, userID)
}

// ListMessages returns the history and marks the other participants' messages as read.
func (s *messageServiceImpl) ListMessages(ctx context.Context, conversationID, userID string) ([]models.Message, error) {
	if err := s.requireParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	msgs, err := s.conversationRepo.Messages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if _, err := s.conversationRepo.MarkRead(ctx, conversationID, userID); err != nil {
		s.logger.Warn().Err(err).Str("conversationID", conversationID).Msg("Failed to mark messages as read")
	}
	return msgs, nil
}

func (s *messageServiceImpl) SendMessage(ctx context.Context, conversationID, userID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.ErrEmptyMessage
	}
	if err := s.requireParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	msg := models.Message{
		ID:             s.settings.NewID(),
		ConversationID: conversationID,
		SenderID:       userID,
		Text:           text,
		Type:           models.MessageText,
		Timestamp:      s.settings.Now(),
	}
	if err := s.conversationRepo.Append(ctx, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *messageServiceImpl) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	conv, err := s.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return false, err
	}
	return conv.HasParticipant(userID), nil
}

func (s *messageServiceImpl) requireParticipant(ctx context.Context, conversationID, userID string) error {
	ok, err := s.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotParticipant
	}
	return nil
}
