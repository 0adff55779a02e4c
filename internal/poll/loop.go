// Package poll runs a function periodically until stopped.
package poll

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Loop calls fn every interval in its own goroutine.
// Errors are logged and do not stop the loop.
type Loop struct {
	fn       func(ctx context.Context) error
	logger   *slog.Logger
	cancel   context.CancelFunc
	done     chan struct{}
	trigger  chan struct{}
	name     string
	interval time.Duration
	mu       sync.Mutex
}

// New creates a stopped loop.
func New(name string, interval time.Duration, fn func(ctx context.Context) error, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		name:     name,
		interval: interval,
		fn:       fn,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
	}
}

// Start launches the loop. Calling Start on a running loop does nothing.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})

	go l.run(ctx, l.done)
}

// Stop cancels the loop and waits for the current iteration to finish.
// Safe to call on a stopped loop.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the loop is started.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.cancel != nil
}

// Trigger requests an immediate iteration without waiting for the ticker.
// Multiple triggers before the iteration runs are coalesced.
func (l *Loop) Trigger() {
	select {
	case l.trigger <- struct{}{}:
	default:
	}
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-l.trigger:
		}

		if err := l.fn(ctx); err != nil && ctx.Err() == nil {
			l.logger.Warn("Poll iteration failed", "loop", l.name, "error", err)
		}
	}
}
