package repositories

import (
	"context"
	"strings"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// UserRepository keeps principals and their password hashes.
type UserRepository struct {
	users *store[models.User]
	// hashes and emails are guarded by users.mu
	hashes map[string]string
	emails map[string]string
}

// NewUserRepository creates an empty UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  newStore(func(u *models.User) string { return u.ID }, (*models.User).Clone, apperrors.ErrUserNotFound),
		hashes: make(map[string]string),
		emails: make(map[string]string),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create stores a new user with its password hash. Emails are unique, case-insensitively.
func (r *UserRepository) Create(ctx context.Context, user *models.User, passwordHash string) error {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	key := emailKey(user.Email)
	if _, taken := r.emails[key]; taken {
		return apperrors.ErrEmailAlreadyExists
	}
	if err := r.users.insertLocked(user); err != nil {
		return err
	}
	r.emails[key] = user.ID
	r.hashes[user.ID] = passwordHash
	return nil
}

// GetByID returns the user with id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.users.get(id)
}

// GetCredentials returns the user registered with email and its password hash.
func (r *UserRepository) GetCredentials(ctx context.Context, email string) (*models.User, string, error) {
	r.users.mu.RLock()
	id, ok := r.emails[emailKey(email)]
	hash := r.hashes[id]
	r.users.mu.RUnlock()
	if !ok {
		return nil, "", apperrors.ErrUserNotFound
	}

	user, err := r.users.get(id)
	if err != nil {
		return nil, "", err
	}
	return user, hash, nil
}

// SetPasswordHash replaces the stored hash of the user with id.
func (r *UserRepository) SetPasswordHash(ctx context.Context, id, hash string) error {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	if _, ok := r.hashes[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	r.hashes[id] = hash
	return nil
}

// ListByRole returns the users with role in insertion order
func (r *UserRepository) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	return r.users.filter(func(u *models.User) bool { return u.Role == role }), nil
}

// List returns every user in insertion order
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	return r.users.all(), nil
}

// Update mutates a user atomically.
func (r *UserRepository) Update(ctx context.Context, id string, fn func(*models.User) error) (*models.User, error) {
	return r.users.update(id, fn)
}

// Count returns the number of users
func (r *UserRepository) Count() int {
	return r.users.len()
}
