package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(cfg Config) *Pool {
	return NewPool(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
}

func TestPool_RunsSubmittedJobs(t *testing.T) {
	p := newTestPool(Config{Workers: 2, QueueSize: 16, JobTimeout: time.Second})
	require.NoError(t, p.Start(context.Background()))

	var ran atomic.Int32
	for range 10 {
		ok := p.Submit("count", func(context.Context) error {
			ran.Add(1)
			return nil
		})
		require.True(t, ok)
	}

	require.NoError(t, p.Close())
	assert.Equal(t, int32(10), ran.Load())
}

func TestPool_FailuresAndPanicsAreContained(t *testing.T) {
	p := newTestPool(Config{Workers: 1, QueueSize: 4, JobTimeout: time.Second})
	require.NoError(t, p.Start(context.Background()))

	var after atomic.Bool
	p.Submit("fails", func(context.Context) error { return errors.New("broker down") })
	p.Submit("panics", func(context.Context) error { panic("boom") })
	p.Submit("after", func(context.Context) error {
		after.Store(true)
		return nil
	})

	require.NoError(t, p.Close())
	assert.True(t, after.Load(), "worker should survive failing jobs")
}

func TestPool_DropsWhenFull(t *testing.T) {
	p := newTestPool(Config{Workers: 1, QueueSize: 1, JobTimeout: time.Second})

	// без запущенных воркеров очередь не разбирается
	assert.True(t, p.Submit("first", func(context.Context) error { return nil }))
	assert.False(t, p.Submit("second", func(context.Context) error { return nil }))

	require.NoError(t, p.Close())
}

func TestPool_RejectsAfterClose(t *testing.T) {
	p := newTestPool(Config{Workers: 1, QueueSize: 1})
	require.NoError(t, p.Start(context.Background()))
	require.NoError(t, p.Close())

	assert.False(t, p.Submit("late", func(context.Context) error { return nil }))
}

func TestPool_JobTimeout(t *testing.T) {
	p := newTestPool(Config{Workers: 1, QueueSize: 1, JobTimeout: 20 * time.Millisecond})
	require.NoError(t, p.Start(context.Background()))

	var sawDeadline atomic.Bool
	p.Submit("slow", func(ctx context.Context) error {
		<-ctx.Done()
		sawDeadline.Store(errors.Is(ctx.Err(), context.DeadlineExceeded))
		return ctx.Err()
	})

	require.NoError(t, p.Close())
	assert.True(t, sawDeadline.Load())
}
