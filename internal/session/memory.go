package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. It is used in tests and in
// single-instance development setups; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]string)}
}

func (s *MemoryStore) Create(_ context.Context, userID string) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = userID
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	userID, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return "", ErrNotFound
	}
	return userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
