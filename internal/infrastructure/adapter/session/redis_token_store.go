package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	sessionport "papertrader/internal/domain/port/session"
)

// RedisTokenStore keeps revoked session tokens in redis until they expire.
// The TTL matches the token's remaining lifetime, so entries clean themselves up.
type RedisTokenStore struct {
	rdb *redis.Client
}

// NewRedisTokenStore creates a token store backed by the given redis client
func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func revokedKey(token string) string {
	return fmt.Sprintf("revoked:%s", token)
}

// Revoke marks the token invalid for the remainder of its lifetime
func (s *RedisTokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, revokedKey(token), "1", ttl).Err()
}

// IsRevoked reports whether the token has been revoked
func (s *RedisTokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, err := s.rdb.Get(ctx, revokedKey(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var _ sessionport.TokenStore = (*RedisTokenStore)(nil)
