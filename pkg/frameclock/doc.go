// Package frameclock provides the shared time source that drives bindkit's
// per-tick housekeeping.
//
// An immediate-mode host redraws in discrete cycles. The host's driver calls
// Tick exactly once per cycle; Tick records a frame timestamp and increments
// a monotonically increasing tick counter. Everything created from the same
// Clock observes the same notion of "now" and "current tick" for the whole
// cycle, which keeps interval math and visibility tracking stable no matter
// how many times a bind is read within a frame.
//
// Basic usage:
//
//	clk := frameclock.New()
//
//	for range ticker.C { // the host's redraw loop
//		clk.Tick()
//		// ... read and request binds ...
//	}
//
// For deterministic tests, inject the time source:
//
//	now := time.Unix(0, 0)
//	clk := frameclock.New(frameclock.WithNowFunc(func() time.Time { return now }))
//	clk.Tick()
//	now = now.Add(6 * time.Second)
//	clk.Tick() // the clock now reports t0+6s
//
// Calling Tick more than once within a cycle is tolerated but discouraged:
// it advances the frame timestamp mid-cycle, which can shift interval-based
// refreshes by a negligible amount. If Tick is never called, time-dependent
// features (periodic refresh, eviction) simply stall at their last observed
// value.
package frameclock
