// Package timer provides tick sources for the overlay: a wall-clock
// ticker for real use and a manually driven clock for deterministic tests.
package timer

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/logger"
)

// DefaultInterval is the stock tick cadence.
const DefaultInterval = 50 * time.Millisecond

// Compile-time interface checks.
var (
	_ domain.TickSource = (*Ticker)(nil)
	_ domain.TickSource = (*Manual)(nil)
)

// Option configures the ticker.
type Option func(*Ticker)

// WithInterval sets how often the ticker fires.
func WithInterval(d time.Duration) Option {
	return func(t *Ticker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// Ticker calls its callback at a fixed interval from a background
// goroutine. Callbacks never overlap: if one runs long, the ticks it
// covered are dropped, as with time.Ticker.
type Ticker struct {
	log      *logger.Logger
	interval time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a stopped ticker.
func New(log *logger.Logger, opts ...Option) *Ticker {
	t := &Ticker{
		log:      log,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Interval returns the tick cadence.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Start begins calling tick. Non-blocking.
func (t *Ticker) Start(tick func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		t.log.Warn("ticker already running")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.done = make(chan struct{})
	t.running = true

	go t.loop(ctx, tick, t.done)

	t.log.Info("ticker started (interval=%s)", t.interval)
}

// Stop halts the ticker and waits for an in-flight callback to return.
// No callback starts after Stop returns.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.cancel()
	t.running = false
	done := t.done
	t.mu.Unlock()

	<-done
	t.log.Info("ticker stopped")
}

func (t *Ticker) loop(ctx context.Context, tick func(), done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Stop may have raced the ticker; prefer cancellation.
			if ctx.Err() != nil {
				return
			}
			tick()
		}
	}
}
