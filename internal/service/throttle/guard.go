package throttle

import (
	"sync"
	"time"
)

// Result is the outcome of a throttle check. RetryAfter is only meaningful
// when Throttled is true.
type Result struct {
	Throttled  bool
	RetryAfter time.Duration
}

// Guard is a key-scoped rate limiter allowing at most one accepted call per
// window per key. Keys are never pruned; the map grows with the number of
// distinct callers seen over the process lifetime.
type Guard struct {
	mu   sync.Mutex
	last map[string]time.Time
	now  func() time.Time
}

// Option configures a Guard.
type Option func(*Guard)

// WithClock injects the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) { g.now = now }
}

// NewGuard creates an empty guard.
func NewGuard(opts ...Option) *Guard {
	g := &Guard{
		last: make(map[string]time.Time),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check records a call for key if the window has elapsed since the previous
// accepted call. A throttled call does not refresh the recorded timestamp.
func (g *Guard) Check(key string, window time.Duration) Result {
	now := g.now()

	g.mu.Lock()
	defer g.mu.Unlock()

	last, ok := g.last[key]
	if ok {
		elapsed := now.Sub(last)
		if elapsed < window {
			return Result{Throttled: true, RetryAfter: window - elapsed}
		}
	}

	g.last[key] = now
	return Result{}
}

// Reset clears all recorded call times. Used by tests.
func (g *Guard) Reset() {
	g.mu.Lock()
	g.last = make(map[string]time.Time)
	g.mu.Unlock()
}
