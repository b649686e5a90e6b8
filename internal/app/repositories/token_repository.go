package repositories

import (
	"context"
	"sync"
	"time"
)

// TokenRepository remembers revoked access tokens until they would have expired anyway.
type TokenRepository struct {
	mu      sync.RWMutex
	revoked map[string]time.Time // jti -> expiry
}

// NewTokenRepository creates an empty TokenRepository
func NewTokenRepository() *TokenRepository {
	return &TokenRepository{revoked: make(map[string]time.Time)}
}

// Revoke marks the token id as unusable until expiresAt.
func (r *TokenRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[tokenID] = expiresAt
}

// IsRevoked reports whether the token id was revoked
func (r *TokenRepository) IsRevoked(ctx context.Context, tokenID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.revoked[tokenID]
	return ok
}

// PurgeExpired drops revocations whose token expired before now and returns how many were removed.
func (r *TokenRepository) PurgeExpired(ctx context.Context, now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, exp := range r.revoked {
		if exp.Before(now) {
			delete(r.revoked, id)
			n++
		}
	}
	return n
}
