package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client), mr
}

func TestSessionStore_SaveExistsDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "abc123", time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	ok, err := store.Exists(ctx, "abc123")
	if err != nil || !ok {
		t.Fatalf("expected live session, got ok=%v err=%v", ok, err)
	}

	if ok, _ := store.Exists(ctx, "other"); ok {
		t.Error("unknown session must not exist")
	}

	if err := store.Delete(ctx, "abc123"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok, _ := store.Exists(ctx, "abc123"); ok {
		t.Error("session must be gone after delete")
	}

	// Deleting an already-closed session is a no-op.
	if err := store.Delete(ctx, "abc123"); err != nil {
		t.Errorf("repeated delete: %v", err)
	}
}

func TestSessionStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "short", time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if ok, _ := store.Exists(ctx, "short"); ok {
		t.Error("session must expire with its TTL")
	}
}

func TestSessionStore_ConnectionFailure(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	if _, err := store.Exists(context.Background(), "abc123"); err == nil {
		t.Error("expected an error when redis is unreachable")
	}
}
