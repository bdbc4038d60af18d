package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_LockIsExclusive(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10, time.Minute)

	ok, err := s.TryLock(ctx, "1", "key")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.TryLock(ctx, "1", "key")
	require.NoError(t, err)
	assert.False(t, ok, "second lock on the same key must fail")

	ok, err = s.TryLock(ctx, "2", "key")
	require.NoError(t, err)
	assert.True(t, ok, "keys are scoped per user")

	require.NoError(t, s.Unlock(ctx, "1", "key"))
	ok, err = s.TryLock(ctx, "1", "key")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStore_RememberRecall(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10, time.Minute)

	_, found, err := s.Recall(ctx, "1", "key")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Remember(ctx, "1", "key", 42))

	id, found, err := s.Recall(ctx, "1", "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(42), id)

	_, found, err = s.Recall(ctx, "2", "key")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "idemp:7:abc", lockKey("7", "abc"))
	assert.Equal(t, "idemp:map:7:abc", mapKey("7", "abc"))
}
