// Package bindkit bridges background computations into callers that can only
// poll synchronously once per discrete tick: immediate-mode redraw loops,
// game update cycles, terminal dashboards. A Bind owns the lifecycle of one
// asynchronous operation (network call, disk read, anything long-running)
// and hands its result to the owner without ever blocking a read and without
// surfacing a stale result when requests supersede each other.
//
// # Model
//
// A Bind is always in exactly one of three states: idle (nothing requested,
// nothing held), pending (an attempt is in flight) or finished (the latest
// attempt completed, successfully or not). Every read-path method first
// polls a one-shot channel non-blockingly, so completions are observed the
// moment the owner next looks. Requests made while pending are deduplicated,
// which makes it safe to call request methods every frame.
//
// Each spawned attempt carries a generation number. Only a result tagged
// with the live generation is ever surfaced; a late delivery from a
// superseded attempt is discarded. Superseding an attempt does not stop the
// underlying computation, which runs to completion with its result simply
// abandoned. Hosts that need timeouts encode them in the factory itself.
//
// # Driving the loop
//
// Time is read through an explicit frameclock.Clock that the host driver
// advances once per cycle:
//
//	clk := frameclock.New()
//	users := bindkit.New[[]User](clk)
//
//	for range ticker.C {
//		clk.Tick()
//
//		switch v := users.StateOrRequest(ctx, fetchUsers); v.Kind {
//		case bindkit.KindPending:
//			drawSpinner()
//		case bindkit.KindFinished:
//			drawUsers(*v.Value)
//		case bindkit.KindFailed:
//			drawError(v.Err)
//		}
//	}
//
// # Retention
//
// By default a finished bind that goes unread for one full tick is reset to
// idle, so data for widgets that scrolled out of view is released and
// reloaded fresh when they return. Construct with WithRetain to keep results
// alive regardless of visibility. Pending binds are never evicted.
//
// # Periodic refresh
//
// RequestEvery re-requests a finished bind once an interval has elapsed
// since its last successful completion. Re-requesting clears the held value
// for the duration of the new attempt; callers that want to keep displaying
// the previous value while revalidating must cache it themselves. This
// keeps the one-state-at-a-time model simple instead of introducing a
// fourth "stale" state.
//
// # Concurrency
//
// Bind methods must run on the single goroutine that owns the bind. The only
// thing that crosses goroutines is a capacity-one result channel, written
// exactly once by the spawned side, so the bind itself needs no locking.
// The execution backend is pluggable through the Spawner interface: the
// default runs one goroutine per attempt, and PoolSpawner bounds concurrency
// with a worker pool.
//
// # Failure handling
//
// A factory error is data and flows through Result.Err like any value. A
// factory that panics never delivers a result, leaving the bind pending
// forever; bindkit does not detect this. Factories should recover internal
// faults and map them to errors before they escape.
package bindkit
