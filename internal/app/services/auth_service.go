package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/app/repositories"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
	"github.com/yigit/alumniconnect/internal/pkg/auth"
	"github.com/yigit/alumniconnect/internal/pkg/validation"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
	settings   Settings
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	settings Settings,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		settings:   settings.withDefaults(),
		logger:     logger,
	}
}

// Login checks the credentials and issues an access token.
// Unknown emails and wrong passwords fail with the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.AuthPayload, error) {
	if errs := validation.ValidateLogin(email, password); !errs.Valid() {
		return nil, errs.Err()
	}

	user, hash, err := s.userRepo.GetCredentials(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Debug().Str("email", email).Msg("Login attempt for unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving credentials: %w", err)
	}
	if !auth.CheckPassword(hash, password) {
		s.logger.Debug().Str("userID", user.ID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}
	if auth.NeedsRehash(hash, s.settings.BcryptCost) {
		s.rehash(ctx, user.ID, password)
	}

	return s.issue(user)
}

// rehash stores password under the configured cost. Failures are logged.
func (s *AuthService) rehash(ctx context.Context, userID, password string) {
	hash, err := auth.HashPasswordWithCost(password, s.settings.BcryptCost)
	if err == nil {
		err = s.userRepo.SetPasswordHash(ctx, userID, hash)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("userID", userID).Msg("Failed to upgrade password hash")
		return
	}
	s.logger.Debug().Str("userID", userID).Int("cost", s.settings.BcryptCost).Msg("Password hash upgraded")
}

// Register creates a principal from draft and signs it in.
func (s *AuthService) Register(ctx context.Context, draft models.ProfileDraft, password string) (*dto.AuthPayload, error) {
	if errs := validation.ValidateRegistration(draft, password, password); !errs.Valid() {
		return nil, errs.Err()
	}

	hash, err := auth.HashPasswordWithCost(password, s.settings.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:        s.settings.NewID(),
		Email:     strings.TrimSpace(draft.Email),
		FirstName: strings.TrimSpace(draft.FirstName),
		LastName:  strings.TrimSpace(draft.LastName),
		Role:      draft.Role,
		Course:    strings.TrimSpace(draft.Course),
		Company:   strings.TrimSpace(draft.Company),
		Position:  strings.TrimSpace(draft.Position),
		CreatedAt: s.settings.Now(),
	}
	switch draft.Role {
	case models.RoleAlumni:
		user.GraduationYear = draft.GraduationYear
		user.MentorshipAvailable = models.Ptr(false)
	case models.RoleStudent:
		user.CurrentYear = draft.CurrentYear
		user.MentorshipRequested = models.Ptr(false)
	}

	if err := s.userRepo.Create(ctx, user, hash); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	s.logger.Info().Str("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return s.issue(user)
}

// Logout revokes token. Tokens that are already invalid are accepted silently.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Logout with an invalid token")
		return nil
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	s.tokenRepo.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
	s.tokenRepo.PurgeExpired(ctx, s.settings.Now())
	return nil
}

// Authenticate validates token and returns its claims unless it was revoked.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	if claims.ID != "" && s.tokenRepo.IsRevoked(ctx, claims.ID) {
		return nil, apperrors.ErrTokenInvalid
	}
	return claims, nil
}

// Me returns the principal behind userID
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *AuthService) issue(user *models.User) (*dto.AuthPayload, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthPayload{
		User:      user,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
	}, nil
}
