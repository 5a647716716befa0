package catalog

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "storefront:"

// RedisStore is a Store backed by Redis. Expiry is delegated to Redis via
// per-key TTLs, so Get never has to check timestamps itself. Redis errors
// degrade to cache misses rather than failing the request.
type RedisStore struct {
	rdb *redis.Client
	ctx context.Context
	ttl time.Duration
}

// NewRedisStore creates a RedisStore with the given TTL.
func NewRedisStore(rdb *redis.Client, ctx context.Context, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ctx: ctx, ttl: ttl}
}

func (s *RedisStore) Get(key string) ([]byte, bool) {
	payload, err := s.rdb.Get(s.ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("redis cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return payload, true
}

func (s *RedisStore) Set(key string, payload []byte) {
	if err := s.rdb.Set(s.ctx, redisKeyPrefix+key, payload, s.ttl).Err(); err != nil {
		zap.L().Warn("redis cache write failed", zap.String("key", key), zap.Error(err))
	}
}
