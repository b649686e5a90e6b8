// Package auth decides whether a principal may act on a specific record.
package auth

import (
	"context"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/repositories"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// AuthorizationService handles record level authorization
type AuthorizationService struct {
	mentorshipRepo   *repositories.MentorshipRepository
	conversationRepo *repositories.ConversationRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(mentorshipRepo *repositories.MentorshipRepository, conversationRepo *repositories.ConversationRepository) *AuthorizationService {
	return &AuthorizationService{
		mentorshipRepo:   mentorshipRepo,
		conversationRepo: conversationRepo,
	}
}

// ValidateMentorshipParty fails unless userID is the student or the mentor of the request.
// Admins may act on any request.
func (s *AuthorizationService) ValidateMentorshipParty(ctx context.Context, userID string, role models.Role, requestID string) error {
	req, err := s.mentorshipRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if role == models.RoleAdmin || req.StudentID == userID || req.MentorID == userID {
		return nil
	}
	return apperrors.NewForbiddenError("only the student or the mentor can update this request")
}

// ValidateMentorshipTransition checks ValidateMentorshipParty and that a
// student never approves or rejects.
func (s *AuthorizationService) ValidateMentorshipTransition(ctx context.Context, userID string, role models.Role, requestID string, next models.MentorshipStatus) error {
	if err := s.ValidateMentorshipParty(ctx, userID, role, requestID); err != nil {
		return err
	}
	if role != models.RoleStudent {
		return nil
	}
	switch next {
	case models.MentorshipApproved, models.MentorshipRejected:
		return apperrors.NewForbiddenError("students cannot approve or reject mentorship requests")
	}
	return nil
}

// ValidateParticipant fails unless userID takes part in the conversation.
func (s *AuthorizationService) ValidateParticipant(ctx context.Context, userID, conversationID string) error {
	conv, err := s.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conv.HasParticipant(userID) {
		return apperrors.ErrNotParticipant
	}
	return nil
}
