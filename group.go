package bindkit

import (
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/dmitrymomot/bindkit/pkg/frameclock"
)

// Group manages one Bind per key, for immediate-mode lists where every row
// loads its own data. Binds are created lazily on first Get and expire after
// going unfetched for the configured TTL, so a scrolled-away list does not
// pin results forever.
type Group[K comparable, T any] struct {
	clock *frameclock.Clock
	opts  []Option[T]
	binds *ttlcache.Cache[K, *Bind[T]]
}

// NewGroup creates a Group whose binds share clk and opts. Entries not
// fetched for ttl are expired in the background until Stop is called.
func NewGroup[K comparable, T any](clk *frameclock.Clock, ttl time.Duration, opts ...Option[T]) *Group[K, T] {
	if clk == nil {
		panic("bindkit: NewGroup requires a non-nil clock")
	}
	cache := ttlcache.New[K, *Bind[T]](
		ttlcache.WithTTL[K, *Bind[T]](ttl),
	)
	go cache.Start()
	return &Group[K, T]{
		clock: clk,
		opts:  opts,
		binds: cache,
	}
}

// Get returns the Bind for key, creating it if absent. Fetching extends the
// entry's lifetime, so binds touched every frame never expire.
func (g *Group[K, T]) Get(key K) *Bind[T] {
	if item := g.binds.Get(key); item != nil {
		return item.Value()
	}
	b := New[T](g.clock, g.opts...)
	g.binds.Set(key, b, ttlcache.DefaultTTL)
	return b
}

// Delete drops the Bind for key, abandoning any in-flight attempt.
func (g *Group[K, T]) Delete(key K) {
	g.binds.Delete(key)
}

// Len returns the number of live binds.
func (g *Group[K, T]) Len() int {
	return g.binds.Len()
}

// Stop halts background expiry. Held binds remain usable.
func (g *Group[K, T]) Stop() {
	g.binds.Stop()
}
