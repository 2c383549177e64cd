package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/streamsvc/domain"
)

const denylistKeyPrefix = "auth:revoked:"

// TokenDenylistImpl implements domain.TokenDenylist using Redis keys that expire with the token
type TokenDenylistImpl struct {
	client *redis.Client
	now    func() time.Time
}

// NewTokenDenylist creates a new Redis-backed token denylist
func NewTokenDenylist(client *redis.Client) domain.TokenDenylist {
	return &TokenDenylistImpl{client: client, now: time.Now}
}

// Revoke implements domain.TokenDenylist
func (d *TokenDenylistImpl) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, denylistKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked implements domain.TokenDenylist
func (d *TokenDenylistImpl) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
