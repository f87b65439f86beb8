package memory

import (
	"context"
	"sync"
	"time"
)

// SessionStore tracks live admin sessions in a map with lazy expiry.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time // session id → expiry
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]time.Time)}
}

func (s *SessionStore) Save(_ context.Context, sessionID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = time.Now().Add(ttl)
	return nil
}

func (s *SessionStore) Exists(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[sessionID]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.sessions, sessionID)
		return false, nil
	}
	return true, nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
