package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"royale-campaigns/internal/core/port"
)

// RedisReferenceStore binds consumed payment references to campaign ids so
// a replayed reference cannot complete a second campaign. Entries expire
// after the configured TTL.
type RedisReferenceStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisReferenceStore creates a store backed by the given client.
func NewRedisReferenceStore(rdb *redis.Client, ttl time.Duration) *RedisReferenceStore {
	return &RedisReferenceStore{rdb: rdb, ttl: ttl}
}

func (s *RedisReferenceStore) Remember(ctx context.Context, reference, campaignID string) error {
	return s.rdb.Set(ctx, "payref:"+reference, campaignID, s.ttl).Err()
}

func (s *RedisReferenceStore) Recall(ctx context.Context, reference string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, "payref:"+reference).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

var _ port.ReferenceStore = (*RedisReferenceStore)(nil)
