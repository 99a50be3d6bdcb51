package bindkit

import "log/slog"

// Option configures a Bind during construction.
type Option[T any] func(*Bind[T])

// WithRetain keeps a finished result alive even when the bind goes unread
// for whole ticks. Without it, a finished bind that is not read for one full
// tick is reset to idle so the next read starts a fresh load.
func WithRetain[T any]() Option[T] {
	return func(b *Bind[T]) {
		b.retain = true
	}
}

// WithSpawner sets the execution backend for spawned attempts. Nil spawners
// are ignored.
func WithSpawner[T any](s Spawner) Option[T] {
	return func(b *Bind[T]) {
		if s != nil {
			b.spawner = s
		}
	}
}

// WithLogger sets the logger used for diagnostics. Nil loggers are ignored.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(b *Bind[T]) {
		if l != nil {
			b.log = l
		}
	}
}
