package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/scorehub/scorehub/internal/platform/logging"
)

const defaultSchedulerWorkers = 8

// Scheduler owns every recurring refresh loop, keyed by name. Starting a key
// that is already running replaces the old loop; stopping a key is
// synchronous and guarantees its goroutine has exited. Tick bodies run on a
// shared worker pool, and a tick that fires while the previous run is still
// executing is skipped rather than stacked.
type Scheduler struct {
	logger *logging.Logger
	pool   *ants.Pool

	mu    sync.Mutex
	loops map[string]*pollLoop
}

type pollLoop struct {
	cancel   context.CancelFunc
	done     chan struct{}
	inFlight atomic.Bool
}

type SchedulerConfig struct {
	Logger  *logging.Logger
	Workers int
}

func NewScheduler(cfg SchedulerConfig) (*Scheduler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultSchedulerWorkers
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create refresh worker pool: %w", err)
	}

	return &Scheduler{
		logger: logger,
		pool:   pool,
		loops:  map[string]*pollLoop{},
	}, nil
}

// StartPolling runs fn every interval under the given key until StopPolling
// or StopAll. fn errors are logged and swallowed; refresh failures never
// surface to the user.
func (s *Scheduler) StartPolling(key string, interval time.Duration, fn func(context.Context) error) {
	if interval <= 0 || fn == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	loop := &pollLoop{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	s.mu.Lock()
	previous := s.loops[key]
	s.loops[key] = loop
	s.mu.Unlock()

	if previous != nil {
		previous.stop()
	}

	go s.run(ctx, key, interval, fn, loop)
}

func (s *Scheduler) run(ctx context.Context, key string, interval time.Duration, fn func(context.Context) error, loop *pollLoop) {
	defer close(loop.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if !loop.inFlight.CompareAndSwap(false, true) {
			// Previous tick still running.
			continue
		}

		err := s.pool.Submit(func() {
			defer loop.inFlight.Store(false)
			if err := fn(ctx); err != nil && ctx.Err() == nil {
				s.logger.Warn("scheduled refresh failed", "key", key, "error", err)
			}
		})
		if err != nil {
			loop.inFlight.Store(false)
			s.logger.Warn("scheduled refresh not submitted", "key", key, "error", err)
		}
	}
}

// StopPolling tears down one loop. Safe to call for keys that never started.
func (s *Scheduler) StopPolling(key string) {
	s.mu.Lock()
	loop := s.loops[key]
	delete(s.loops, key)
	s.mu.Unlock()

	if loop != nil {
		loop.stop()
	}
}

// StopAll tears down every loop and releases the worker pool.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	loops := s.loops
	s.loops = map[string]*pollLoop{}
	s.mu.Unlock()

	for _, loop := range loops {
		loop.stop()
	}
	s.pool.Release()
}

func (l *pollLoop) stop() {
	l.cancel()
	<-l.done
}
