package frameclock

import (
	"sync"
	"time"
)

// Option configures a Clock during construction.
type Option func(*Clock)

// WithNowFunc replaces the wall-clock time source. Nil functions are ignored.
// Intended for tests that need deterministic interval behavior.
func WithNowFunc(fn func() time.Time) Option {
	return func(c *Clock) {
		if fn != nil {
			c.nowFn = fn
		}
	}
}

// Clock is a process-wide monotonic frame timer. The host driver advances it
// with Tick once per redraw cycle; consumers read the frame timestamp and the
// tick counter recorded by the most recent Tick.
//
// All methods are safe for concurrent use, though the intended pattern is a
// single driver goroutine calling Tick and owner-side reads on that same
// goroutine.
type Clock struct {
	mu    sync.RWMutex
	nowFn func() time.Time
	frame time.Time
	ticks uint64
}

// New creates a Clock. The frame timestamp is initialized from the time
// source so Now is meaningful even before the first Tick.
func New(opts ...Option) *Clock {
	c := &Clock{nowFn: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	c.frame = c.nowFn()
	return c
}

// Tick records the current frame timestamp and increments the tick counter.
// Must be called exactly once per application cycle by the host driver.
func (c *Clock) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frame = c.nowFn()
	c.ticks++
}

// Now returns the timestamp recorded by the most recent Tick. The value is
// stable for the duration of a cycle.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frame
}

// Ticks returns the number of times Tick has been called.
func (c *Clock) Ticks() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ticks
}

// Since reports how much frame time has passed since t.
func (c *Clock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}
