package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// Token errors
var (
	ErrInvalidToken  = apperrors.ErrTokenInvalid
	ErrExpiredToken  = apperrors.ErrTokenExpired
	ErrInvalidFormat = errors.New("invalid token format")
)

// clockSkew tolerated between the issuing and the validating host.
const clockSkew = 5 * time.Second

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey      string
	AccessTokenExp time.Duration
	TokenIssuer    string
}

// Claims is the payload of a session token.
type Claims struct {
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Validate rejects tokens that do not name a principal. It runs after the
// registered claims have been checked.
func (c *Claims) Validate() error {
	switch {
	case c.UserID == "":
		return errors.New("missing user id")
	case c.Email == "":
		return errors.New("missing email")
	case !c.Role.Valid():
		return fmt.Errorf("unknown role %q", c.Role)
	case c.Subject != "" && c.Subject != c.UserID:
		return errors.New("subject does not match user id")
	}
	return nil
}

// JWTService signs and verifies HS256 session tokens.
type JWTService struct {
	config JWTConfig
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
		secret: []byte(config.SecretKey),
		now:    time.Now,
	}
}

// GenerateToken signs a token for user and reports its lifetime in seconds.
func (s *JWTService) GenerateToken(user *models.User) (string, int64, error) {
	issuedAt := s.now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    s.config.TokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.AccessTokenExp)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("sign access token: %w", err)
	}
	return signed, int64(s.config.AccessTokenExp / time.Second), nil
}

// ValidateToken verifies the signature, lifetime and issuer of raw and
// returns its claims. Expired tokens yield ErrExpiredToken, every other
// failure wraps ErrInvalidToken.
func (s *JWTService) ValidateToken(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithLeeway(clockSkew),
		jwt.WithExpirationRequired(),
	}
	if s.config.TokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.TokenIssuer))
	}

	claims := &Claims{}
	_, err := jwt.NewParser(opts...).ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// ExtractBearerToken returns the JWT carried by an Authorization header value.
// The Bearer scheme is optional and matched case-insensitively.
func ExtractBearerToken(header string) (string, error) {
	token := strings.TrimSpace(header)
	if scheme, rest, ok := strings.Cut(token, " "); ok && strings.EqualFold(scheme, "Bearer") {
		token = strings.TrimSpace(rest)
	}
	if token == "" || strings.Count(token, ".") != 2 {
		return "", ErrInvalidFormat
	}
	return token, nil
}
