package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps admin sessions in Redis so logins survive restarts
// and are shared across instances. Key format: session:<id>, expiry is
// delegated to Redis TTLs.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save opens a session that expires after ttl.
func (s *SessionStore) Save(ctx context.Context, sessionID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(sessionID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Exists reports whether the session is still live.
func (s *SessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

// Delete closes the session. Closing an unknown session is a no-op.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}
