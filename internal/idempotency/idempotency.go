// Package idempotency remembers which order a client request key produced, so a
// retried checkout returns the original order instead of placing a second one.
package idempotency

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/pkg/cache"
)

func lockKey(scope, key string) string {
	return "idemp:" + scope + ":" + key
}

func mapKey(scope, key string) string {
	return "idemp:map:" + scope + ":" + key
}

type memoryStore struct {
	locks   *cache.LRUCache[struct{}]
	results *cache.LRUCache[int64]
}

// NewMemoryStore keeps keys in process. Entries expire after ttl and the least
// recently used ones are evicted beyond capacity.
func NewMemoryStore(capacity int, ttl time.Duration) *memoryStore {
	return &memoryStore{
		locks:   cache.NewLRUCache[struct{}](capacity, ttl),
		results: cache.NewLRUCache[int64](capacity, ttl),
	}
}

func (s *memoryStore) TryLock(_ context.Context, scope, key string) (bool, error) {
	return s.locks.SetNX(lockKey(scope, key), struct{}{}), nil
}

func (s *memoryStore) Unlock(_ context.Context, scope, key string) error {
	s.locks.Delete(lockKey(scope, key))
	return nil
}

func (s *memoryStore) Remember(_ context.Context, scope, key string, orderID int64) error {
	s.results.Set(mapKey(scope, key), orderID)
	return nil
}

func (s *memoryStore) Recall(_ context.Context, scope, key string) (int64, bool, error) {
	id, ok := s.results.Get(mapKey(scope, key))
	return id, ok, nil
}

// Start launches the expiry janitors of both caches; they stop with ctx.
func (s *memoryStore) Start(ctx context.Context) error {
	if err := s.locks.Start(ctx); err != nil {
		return err
	}
	return s.results.Start(ctx)
}
