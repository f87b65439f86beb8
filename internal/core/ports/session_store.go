package ports

import (
	"context"
	"time"
)

// SessionStore tracks live admin sessions. A session exists between a
// successful login and either logout or TTL expiry.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}
