package bindkit

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/bindkit/pkg/frameclock"
)

// Bind bridges one background computation into an immediate-mode polling
// loop. It tracks the lifecycle of the computation (idle, pending, finished)
// and hands the result to the owner without ever blocking a read.
//
// A Bind is single-writer: all methods must be called from the one goroutine
// that owns it (typically the host's redraw loop). Only the one-shot result
// channel crosses goroutines, written once by the spawned side and drained
// non-blockingly by the owner, so no internal locking is needed.
type Bind[T any] struct {
	clock   *frameclock.Clock
	spawner Spawner
	log     *slog.Logger
	retain  bool

	status Status
	// result is non-nil if and only if status is StatusFinished.
	result *Result[T]
	// recv is non-nil if and only if status is StatusPending.
	recv chan taggedResult[T]
	// gen identifies the live attempt. It only ever increments; a result
	// tagged with an older generation is never surfaced.
	gen uint64

	// touchedTick is the clock tick of the most recent read or request.
	// Finished binds without retain are reset to idle once a full tick
	// passes with no touch.
	touchedTick   uint64
	completedTick uint64

	lastSuccess  time.Time
	lastComplete time.Time
	executions   uint64
}

// New creates an idle Bind reading time through clk. Panics on a nil clock
// to fail fast on wiring mistakes.
func New[T any](clk *frameclock.Clock, opts ...Option[T]) *Bind[T] {
	if clk == nil {
		panic("bindkit: New requires a non-nil clock")
	}
	b := &Bind[T]{
		clock:   clk,
		spawner: GoSpawner{},
		log:     slog.Default(),
		status:  StatusIdle,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.touchedTick = clk.Ticks()
	return b
}

// Request starts a background attempt unless one is already in flight.
// Calling it while pending is a no-op, so redraw loops can call it every
// frame without duplicating work. The factory runs on the spawner's
// execution context with ctx; Request itself never blocks.
func (b *Bind[T]) Request(ctx context.Context, factory Factory[T]) {
	b.poll()
	if b.status == StatusPending {
		return
	}
	b.start(ctx, factory)
}

// Read returns the finished result, or nil while idle or pending. The
// pointer aliases the bind's storage and stays valid until the next
// mutating call.
func (b *Bind[T]) Read() *Result[T] {
	b.poll()
	return b.result
}

// ReadOrRequest returns the finished result if one is available, starting a
// background attempt first when the bind is idle. It returns nil until the
// attempt completes.
func (b *Bind[T]) ReadOrRequest(ctx context.Context, factory Factory[T]) *Result[T] {
	b.poll()
	if b.status == StatusIdle {
		b.start(ctx, factory)
		return nil
	}
	return b.result
}

// StateOrRequest is ReadOrRequest with the completed case split into
// success and failure, for exhaustive branching in render code:
//
//	switch v := bind.StateOrRequest(ctx, fetch); v.Kind {
//	case bindkit.KindPending:
//		drawSpinner()
//	case bindkit.KindFinished:
//		drawValue(*v.Value)
//	case bindkit.KindFailed:
//		drawError(v.Err)
//	}
//
// KindIdle is only observable in the rare frame where a request could not
// be issued, since the request is started within the same call.
func (b *Bind[T]) StateOrRequest(ctx context.Context, factory Factory[T]) View[T] {
	b.poll()
	if b.status == StatusIdle {
		b.start(ctx, factory)
	}
	return b.view()
}

// RequestEvery keeps the bind's value periodically refreshed. It requests
// when idle, and re-requests a finished bind once interval has elapsed since
// the last successful completion. While an attempt is in flight it only
// polls.
//
// Returns the time remaining until the next scheduled refresh; a negative
// value means a refresh is overdue (e.g. still pending past its slot).
func (b *Bind[T]) RequestEvery(ctx context.Context, factory Factory[T], interval time.Duration) time.Duration {
	b.poll()

	if b.status == StatusIdle {
		b.start(ctx, factory)
		return interval
	}

	anchor := b.lastSuccess
	if anchor.IsZero() {
		// No success recorded yet: schedule off the last completion so a
		// bind whose first attempt failed still gets retried.
		anchor = b.lastComplete
	}
	if anchor.IsZero() {
		return interval
	}

	remaining := interval - b.clock.Since(anchor)
	if b.status == StatusFinished && remaining <= 0 {
		b.start(ctx, factory)
		return interval
	}
	return remaining
}

// Refresh discards any held or in-flight result and starts a fresh attempt
// immediately, bypassing the pending dedup. The superseded attempt is not
// stopped; its eventual result is simply never surfaced.
func (b *Bind[T]) Refresh(ctx context.Context, factory Factory[T]) {
	b.poll()
	b.drop()
	b.start(ctx, factory)
}

// Take consumes the finished result and resets the bind to idle. The second
// return is false while idle or pending.
func (b *Bind[T]) Take() (Result[T], bool) {
	b.poll()
	if b.status != StatusFinished {
		var zero Result[T]
		return zero, false
	}
	res := *b.result
	b.drop()
	return res, true
}

// Fill injects a result without running a background attempt, e.g. data
// already at hand from another source. Returns ErrNotIdle unless the bind
// is idle.
func (b *Bind[T]) Fill(res Result[T]) error {
	b.poll()
	if b.status != StatusIdle {
		return ErrNotIdle
	}
	b.finish(res)
	return nil
}

// Clear drops any held result and abandons any in-flight attempt, returning
// the bind to idle. The background computation is not stopped.
func (b *Bind[T]) Clear() {
	b.poll()
	b.drop()
}

// View returns a snapshot for rendering without triggering a request.
func (b *Bind[T]) View() View[T] {
	b.poll()
	return b.view()
}

// Status returns the coarse state after polling for a completion.
func (b *Bind[T]) Status() Status {
	b.poll()
	return b.status
}

// IsIdle reports whether no request is outstanding and no data is held.
func (b *Bind[T]) IsIdle() bool { return b.Status() == StatusIdle }

// IsPending reports whether a request is in flight.
func (b *Bind[T]) IsPending() bool { return b.Status() == StatusPending }

// IsFinished reports whether a completed result is held.
func (b *Bind[T]) IsFinished() bool { return b.Status() == StatusFinished }

// JustCompleted reports whether the held result landed on the current tick.
// Useful for one-shot reactions to a completion (play a sound, focus a
// field) inside a redraw loop.
func (b *Bind[T]) JustCompleted() bool {
	b.poll()
	return b.status == StatusFinished && b.completedTick == b.clock.Ticks()
}

// Executions returns how many background attempts have been spawned over
// the bind's lifetime.
func (b *Bind[T]) Executions() uint64 {
	return b.executions
}

// poll drives the state machine. Every read and request path runs it first:
// it applies the eviction policy when the tick advanced since the last
// touch, then drains a completed attempt without blocking.
func (b *Bind[T]) poll() {
	tick := b.clock.Ticks()
	if tick != b.touchedTick {
		// A finished result that went unread for one full tick is evicted
		// unless retention is on. Pending attempts are never evicted.
		if !b.retain && b.status == StatusFinished && tick > b.touchedTick+1 {
			b.status = StatusIdle
			b.result = nil
		}
		b.touchedTick = tick
	}

	if b.status != StatusPending {
		return
	}

	select {
	case res := <-b.recv:
		if res.gen != b.gen {
			// A receiver from a superseded attempt delivered late. The live
			// generation never matches it, so it is dropped on the floor.
			b.log.Warn("bindkit: discarding result from superseded request",
				slog.Uint64("result_generation", res.gen),
				slog.Uint64("live_generation", b.gen))
			return
		}
		b.recv = nil
		b.finish(Result[T]{Value: res.value, Err: res.err})
	default:
		// Still running.
	}
}

// start spawns a new attempt. Callers have already established that no live
// attempt should survive this call.
func (b *Bind[T]) start(ctx context.Context, factory Factory[T]) {
	b.gen++
	gen := b.gen
	ch := make(chan taggedResult[T], 1)

	b.recv = ch
	b.result = nil
	b.status = StatusPending
	b.executions++

	b.spawner.Go(func() {
		value, err := factory(ctx)
		// Capacity-one channel with exactly one send: never blocks. If the
		// owner dropped the receiver the value is abandoned with it.
		ch <- taggedResult[T]{gen: gen, value: value, err: err}
	})
}

// finish records a completed result.
func (b *Bind[T]) finish(res Result[T]) {
	b.result = &res
	b.status = StatusFinished
	now := b.clock.Now()
	b.lastComplete = now
	b.completedTick = b.clock.Ticks()
	if res.Err == nil {
		b.lastSuccess = now
	}
}

// drop resets to idle, severing interest in any in-flight attempt.
func (b *Bind[T]) drop() {
	b.status = StatusIdle
	b.result = nil
	b.recv = nil
}

// view builds a snapshot from already-polled state.
func (b *Bind[T]) view() View[T] {
	switch b.status {
	case StatusPending:
		return View[T]{Kind: KindPending}
	case StatusFinished:
		if b.result.Err != nil {
			return View[T]{Kind: KindFailed, Err: b.result.Err}
		}
		return View[T]{Kind: KindFinished, Value: &b.result.Value}
	default:
		return View[T]{Kind: KindIdle}
	}
}
