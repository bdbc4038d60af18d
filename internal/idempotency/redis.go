package idempotency

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}

func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *redisStore {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func (s *redisStore) TryLock(ctx context.Context, scope, key string) (bool, error) {
	return s.rdb.SetNX(ctx, lockKey(scope, key), "1", s.ttl).Result()
}

func (s *redisStore) Unlock(ctx context.Context, scope, key string) error {
	return s.rdb.Del(ctx, lockKey(scope, key)).Err()
}

func (s *redisStore) Remember(ctx context.Context, scope, key string, orderID int64) error {
	return s.rdb.Set(ctx, mapKey(scope, key), strconv.FormatInt(orderID, 10), s.ttl).Err()
}

func (s *redisStore) Recall(ctx context.Context, scope, key string) (int64, bool, error) {
	val, err := s.rdb.Get(ctx, mapKey(scope, key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupted idempotency record %q: %w", val, err)
	}
	return id, true, nil
}
