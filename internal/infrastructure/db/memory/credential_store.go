// Package memory provides the in-process credential directory. The service
// treats the directory as an injected lookup capability; this implementation
// keeps it in a mutex-guarded map seeded at startup.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/transitpulse/transit-api/internal/core/domain"
)

// CredentialStore is a concurrency-safe username -> credential map.
type CredentialStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{users: make(map[string]domain.User)}
}

func (s *CredentialStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// Create inserts a new record. An existing username is never overwritten.
func (s *CredentialStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}

	stored := *user
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	s.users[stored.Username] = stored

	out := stored
	return &out, nil
}

// List returns all records ordered by username.
func (s *CredentialStore) List(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}
