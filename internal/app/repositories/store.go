package repositories

import (
	"fmt"
	"sync"

	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// store is an ordered, mutex guarded fixture collection.
// Items are cloned on the way in and out so callers never share memory with the store.
type store[T any] struct {
	mu       sync.RWMutex
	items    []*T
	index    map[string]int
	id       func(*T) string
	clone    func(*T) *T
	notFound error
}

func newStore[T any](id func(*T) string, clone func(*T) *T, notFound error) *store[T] {
	return &store[T]{
		index:    make(map[string]int),
		id:       id,
		clone:    clone,
		notFound: notFound,
	}
}

func (s *store[T]) all() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*T, len(s.items))
	for i, it := range s.items {
		out[i] = s.clone(it)
	}
	return out
}

func (s *store[T]) filter(keep func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*T, 0)
	for _, it := range s.items {
		if keep(it) {
			out = append(out, s.clone(it))
		}
	}
	return out
}

func (s *store[T]) get(id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, s.notFound
	}
	return s.clone(s.items[i]), nil
}

func (s *store[T]) insert(item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(item)
}

func (s *store[T]) insertLocked(item *T) error {
	id := s.id(item)
	if _, exists := s.index[id]; exists {
		return apperrors.NewConflictError(fmt.Sprintf("duplicate id %q", id))
	}
	s.index[id] = len(s.items)
	s.items = append(s.items, s.clone(item))
	return nil
}

// update applies fn to a copy of the item and stores the copy only if fn succeeds,
// so a failed mutation leaves no partial write behind.
func (s *store[T]) update(id string, fn func(*T) error) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, s.notFound
	}
	next := s.clone(s.items[i])
	if err := fn(next); err != nil {
		return nil, err
	}
	s.items[i] = next
	return s.clone(next), nil
}

func (s *store[T]) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
