package bindkit

import "context"

// Factory produces the value for a single background attempt. It is invoked
// at most once, on the spawner's execution context, with the context that was
// passed to the triggering request call. A Factory that needs a timeout must
// build it into the returned error itself; the bind never interrupts a
// running factory.
type Factory[T any] func(ctx context.Context) (T, error)

// Result is the outcome of a completed attempt. A failed attempt is data,
// not a fault: it flows through the bind exactly like a success, with Err
// carrying the application error.
type Result[T any] struct {
	Value T
	Err   error
}

// Failed reports whether the attempt completed with an error.
func (r *Result[T]) Failed() bool {
	return r.Err != nil
}

// Status is the coarse execution state of a bind. Exactly one is active at
// any time.
type Status uint8

const (
	// StatusIdle means no request is outstanding and no data is held.
	StatusIdle Status = iota
	// StatusPending means a request is in flight.
	StatusPending
	// StatusFinished means the most recent request completed; the result is
	// available until it is consumed, cleared, superseded or evicted.
	StatusFinished
)

// String implements fmt.Stringer for log output.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Kind discriminates a View. Unlike Status it splits a completed attempt
// into its success and failure cases for ergonomic branching.
type Kind uint8

const (
	KindIdle Kind = iota
	KindPending
	KindFinished
	KindFailed
)

// View is a snapshot of a bind for rendering. Value is non-nil only for
// KindFinished; Err is non-nil only for KindFailed. The pointer aliases the
// bind's stored result and is valid until the next mutating call.
type View[T any] struct {
	Kind  Kind
	Value *T
	Err   error
}

// taggedResult crosses the one-shot channel from the spawned side to the
// owner. The generation identifies which request produced it, so a result
// from a superseded attempt can be told apart from the live one.
type taggedResult[T any] struct {
	gen   uint64
	value T
	err   error
}
