package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models"
)

// State of a Store
type State int

const (
	Loading State = iota
	Unauthenticated
	Authenticated
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Store holds the signed-in principal and mirrors it into Storage.
// It starts in Loading and leaves it exactly once, through Restore or Login.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	logger  zerolog.Logger

	state State
	user  *models.User
	token string

	restored bool
}

func NewStore(storage Storage, logger zerolog.Logger) *Store {
	return &Store{storage: storage, logger: logger, state: Loading}
}

// Restore loads a previous session from storage. Only the first call has an effect.
// Corrupt entries are cleared and the store ends up unauthenticated.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.restored {
		return
	}
	s.restored = true

	user, token, err := s.load(ctx)
	switch {
	case err == nil:
		s.user, s.token, s.state = user, token, Authenticated
		s.logger.Debug().Str("userID", user.ID).Msg("Session restored")
	case errors.Is(err, ErrNotFound):
		s.state = Unauthenticated
	default:
		s.logger.Warn().Err(err).Msg("Discarding stored session")
		s.clear(ctx)
		s.state = Unauthenticated
	}
}

// load returns ErrNotFound only when neither entry exists.
func (s *Store) load(ctx context.Context) (*models.User, string, error) {
	token, tokenErr := s.storage.Get(ctx, KeyToken)
	raw, userErr := s.storage.Get(ctx, KeyUser)

	if errors.Is(tokenErr, ErrNotFound) && errors.Is(userErr, ErrNotFound) {
		return nil, "", ErrNotFound
	}
	if err := errors.Join(tokenErr, userErr); err != nil {
		return nil, "", fmt.Errorf("incomplete session: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return nil, "", errors.New("stored token is empty")
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, "", fmt.Errorf("stored user is not valid json: %w", err)
	}
	if err := user.Validate(); err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login persists user and token, then marks the store authenticated.
// A storage failure leaves the state unchanged and puts back the entries
// of the previous session.
func (s *Store) Login(ctx context.Context, user *models.User, token string) error {
	if user == nil {
		return errors.New("session: user is required")
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("session: token is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	if err := s.persistUser(ctx, user); err != nil {
		s.rollback(ctx, prev)
		return err
	}
	if err := s.storage.Set(ctx, KeyToken, token); err != nil {
		s.rollback(ctx, prev)
		return fmt.Errorf("failed to persist token: %w", err)
	}

	s.user = user.Clone()
	s.token = token
	s.state = Authenticated
	// a login settles the initial load as well
	s.restored = true
	return nil
}

// Logout forgets the principal. Storage failures are only logged.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear(ctx)
	s.user = nil
	s.token = ""
	s.state = Unauthenticated
	s.restored = true
}

// UpdateUser merges patch into the current user and persists the result.
// It does nothing while unauthenticated.
func (s *Store) UpdateUser(ctx context.Context, patch models.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Authenticated || s.user == nil {
		return nil
	}

	updated := s.user.Clone()
	patch.Apply(updated)
	if err := s.persistUser(ctx, updated); err != nil {
		return err
	}
	s.user = updated
	return nil
}

// Replace swaps in a fresh copy of the signed-in user, such as one returned by a profile update.
// The id must match the current principal.
func (s *Store) Replace(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Authenticated || s.user == nil {
		return nil
	}
	if user == nil || user.ID != s.user.ID {
		return errors.New("session: user does not match the signed-in principal")
	}
	if err := s.persistUser(ctx, user); err != nil {
		return err
	}
	s.user = user.Clone()
	return nil
}

func (s *Store) persistUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.storage.Set(ctx, KeyUser, string(raw)); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	return nil
}

// snapshot reads the stored session entries. Missing keys are left out.
func (s *Store) snapshot(ctx context.Context) (map[string]string, error) {
	entries := make(map[string]string, 2)
	for _, key := range []string{KeyUser, KeyToken} {
		value, err := s.storage.Get(ctx, key)
		switch {
		case errors.Is(err, ErrNotFound):
		case err != nil:
			return nil, fmt.Errorf("failed to read session entry %s: %w", key, err)
		default:
			entries[key] = value
		}
	}
	return entries, nil
}

// rollback writes prev back so that user and token keep belonging together.
func (s *Store) rollback(ctx context.Context, prev map[string]string) {
	for _, key := range []string{KeyUser, KeyToken} {
		var err error
		if value, ok := prev[key]; ok {
			err = s.storage.Set(ctx, key, value)
		} else {
			err = s.storage.Delete(ctx, key)
		}
		if err != nil {
			s.logger.Error().Err(err).Str("key", key).Msg("Failed to roll back session entry")
		}
	}
}

func (s *Store) clear(ctx context.Context) {
	for _, key := range []string{KeyToken, KeyUser} {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Error().Err(err).Str("key", key).Msg("Failed to delete session entry")
		}
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns a copy of the principal, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == Authenticated
}
