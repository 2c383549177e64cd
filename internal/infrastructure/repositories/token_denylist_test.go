package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestTokenDenylistImpl(t *testing.T) {
	mr, client := setupTestRedis(t)
	denylist := NewTokenDenylist(client)
	ctx := context.Background()

	if err := denylist.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("unexpected revoke error: %v", err)
	}

	revoked, err := denylist.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !revoked {
		t.Error("expected token to be revoked")
	}

	if revoked, _ := denylist.IsRevoked(ctx, "jti-2"); revoked {
		t.Error("expected unrelated token to be allowed")
	}

	ttl := mr.TTL(denylistKeyPrefix + "jti-1")
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("expected ttl within an hour, got %v", ttl)
	}

	mr.FastForward(time.Hour + time.Second)
	if revoked, _ := denylist.IsRevoked(ctx, "jti-1"); revoked {
		t.Error("expected entry to expire with the token")
	}
}

func TestTokenDenylistImpl_AlreadyExpired(t *testing.T) {
	mr, client := setupTestRedis(t)
	denylist := NewTokenDenylist(client)

	if err := denylist.Revoke(context.Background(), "old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mr.Exists(denylistKeyPrefix + "old") {
		t.Error("expected no key for an already expired token")
	}
}
