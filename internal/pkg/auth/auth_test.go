package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumniconnect/internal/app/models"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(now time.Time) *JWTService {
	s := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	s.now = func() time.Time { return now }
	return s
}

func TestJWTService_RoundTrip(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	s := newTestService(now)
	user := &models.User{ID: "alumni-1", Email: "alice@example.com", Role: models.RoleAlumni}

	token, expiresIn, err := s.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alumni-1", claims.UserID)
	assert.Equal(t, models.RoleAlumni, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_Expired(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	s := newTestService(now)
	token, _, err := s.GenerateToken(&models.User{ID: "1", Email: "a@b.co", Role: models.RoleStudent})
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	now := time.Now()
	token, _, err := newTestService(now).GenerateToken(&models.User{ID: "1", Email: "a@b.co", Role: models.RoleAdmin})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsForeignIssuer(t *testing.T) {
	now := time.Now()
	token, _, err := newTestService(now).GenerateToken(&models.User{ID: "1", Email: "a@b.co", Role: models.RoleAlumni})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "elsewhere"})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsTokenWithoutPrincipal(t *testing.T) {
	s := newTestService(time.Now())
	token, _, err := s.GenerateToken(&models.User{ID: "1", Email: "a@b.co", Role: models.Role("janitor")})
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorContains(t, err, "unknown role")
}

func TestExtractBearerToken(t *testing.T) {
	tok, err := ExtractBearerToken("Bearer a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", tok)

	tok, err = ExtractBearerToken("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", tok)

	tok, err = ExtractBearerToken("bearer  a.b.c ")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", tok)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = ExtractBearerToken("Bearer ")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = ExtractBearerToken("Bearer opaque")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPasswordWithCost("Password123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "Password123"))
	assert.False(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword("not-a-hash", "Password123"))
}

func TestNeedsRehash(t *testing.T) {
	hash, err := HashPasswordWithCost("Password123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, NeedsRehash(hash, bcrypt.MinCost))
	assert.True(t, NeedsRehash(hash, bcrypt.MinCost+1))
	assert.True(t, NeedsRehash("not-a-hash", bcrypt.MinCost))
}
