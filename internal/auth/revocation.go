package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/hungrypaws/hungry-paws-api/internal/config"
)

// Revocations tracks token ids invalidated by logout before their natural
// expiry.
type Revocations interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) bool
}

type RevocationList struct {
	rdb *redis.Client
}

func NewRevocationList(cfg *config.Config) *RevocationList {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	return &RevocationList{rdb: rdb}
}

func (r *RevocationList) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, key(tokenID), "1", ttl).Err()
}

// IsRevoked treats redis errors as "not revoked": a dead redis must not lock
// every authenticated user out.
func (r *RevocationList) IsRevoked(ctx context.Context, tokenID string) bool {
	n, err := r.rdb.Exists(ctx, key(tokenID)).Result()
	return err == nil && n > 0
}

func key(tokenID string) string {
	return "revoked:" + tokenID
}

var _ Revocations = (*RevocationList)(nil)
