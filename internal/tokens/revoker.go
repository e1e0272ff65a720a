package tokens

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revoker is a redis-backed denylist of JWT IDs. Logout revokes the
// presented token's jti until the token would have expired anyway, so
// the store stays bounded without any sweeping.
type Revoker struct {
	client *redis.Client
}

func NewRevoker(redisURL string) (*Revoker, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Revoker{client: client}, nil
}

func (r *Revoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to deny.
		return nil
	}
	return r.client.Set(ctx, key(jti), "1", ttl).Err()
}

func (r *Revoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Revoker) Close() error {
	return r.client.Close()
}

func key(jti string) string {
	return "revoked:" + jti
}
