package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "denylist:token:"

// TokenDenylist records revoked token ids in Redis until they expire on their
// own. A nil client degrades to stateless JWT auth: Revoke is a no-op and
// IsRevoked always reports false, so the API keeps working without Redis.
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a denylist backed by the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke marks a token id as revoked for the remaining token lifetime.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if d == nil || d.client == nil || tokenID == "" {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denylistKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether a token id has been revoked. Redis errors behave
// like a miss so an unavailable denylist never locks users out.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) bool {
	if d == nil || d.client == nil || tokenID == "" {
		return false
	}
	res, err := d.client.Exists(ctx, denylistKeyPrefix+tokenID).Result()
	if err != nil {
		return false
	}
	return res > 0
}
