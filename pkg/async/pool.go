package async

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Subsystem: "async",
		Name:      "jobs_total",
		Help:      "Total number of background jobs by outcome.",
	}, []string{"job", "outcome"})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "checkout",
		Subsystem: "async",
		Name:      "queue_depth",
		Help:      "Number of background jobs waiting for a worker.",
	})
)

type Config struct {
	Workers    int
	QueueSize  int
	JobTimeout time.Duration
}

type job struct {
	name string
	run  func(ctx context.Context) error
}

// Pool runs fire-and-forget jobs on a fixed set of workers.
// Submit never blocks: when the queue is full the job is dropped.
type Pool struct {
	logger  *slog.Logger
	cfg     Config
	jobs    chan job
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	started sync.Once
}

func NewPool(logger *slog.Logger, cfg Config) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 30 * time.Second
	}
	return &Pool{
		logger: logger.With(slog.String("component", "async")),
		cfg:    cfg,
		jobs:   make(chan job, cfg.QueueSize),
	}
}

func (p *Pool) Submit(name string, fn func(ctx context.Context) error) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		jobsTotal.WithLabelValues(name, "dropped").Inc()
		p.logger.Warn("job dropped, pool closed", slog.String("job", name))
		return false
	}

	select {
	case p.jobs <- job{name: name, run: fn}:
		queueDepth.Inc()
		return true
	default:
		jobsTotal.WithLabelValues(name, "dropped").Inc()
		p.logger.Warn("job dropped, queue full", slog.String("job", name))
		return false
	}
}

// Start launches the workers. Jobs are detached from ctx so that queued work
// still drains during shutdown.
func (p *Pool) Start(ctx context.Context) error {
	p.started.Do(func() {
		for range p.cfg.Workers {
			p.wg.Add(1)
			go p.worker(context.WithoutCancel(ctx))
		}
		p.logger.Info("async pool started", slog.Int("workers", p.cfg.Workers))
	})
	return nil
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for j := range p.jobs {
		queueDepth.Dec()
		p.run(ctx, j)
	}
}

func (p *Pool) run(ctx context.Context, j job) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.JobTimeout)
	defer cancel()

	outcome := "success"
	defer func() {
		if r := recover(); r != nil {
			outcome = "panic"
			p.logger.Error("job panicked",
				slog.String("job", j.name),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
		jobsTotal.WithLabelValues(j.name, outcome).Inc()
	}()

	if err := j.run(ctx); err != nil {
		outcome = "error"
		p.logger.Error("job failed", slog.String("job", j.name), slog.Any("error", err))
	}
}

// Shutdown stops accepting jobs and waits for queued ones until ctx is done.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()

	// воркеры могли так и не стартовать
	p.Start(ctx)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("async pool shutdown: %w", ctx.Err())
	}
}

const closeTimeout = 10 * time.Second

func (p *Pool) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	return p.Shutdown(ctx)
}
