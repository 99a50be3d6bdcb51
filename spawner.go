package bindkit

import (
	"github.com/alitto/pond/v2"
)

// Spawner begins running a task concurrently with the caller and returns
// immediately. Binds never assume a particular execution backend; hosts pick
// one at construction time via WithSpawner.
type Spawner interface {
	Go(task func())
}

// GoSpawner runs each task on its own goroutine. This is the default.
type GoSpawner struct{}

func (GoSpawner) Go(task func()) {
	go task()
}

// PoolSpawner runs tasks on a bounded worker pool, for hosts that need to
// cap background concurrency (e.g. one bind per row in a long list, all
// hitting the same backend).
type PoolSpawner struct {
	pool pond.Pool
}

// NewPoolSpawner creates a spawner backed by a pool of at most
// maxConcurrency workers.
func NewPoolSpawner(maxConcurrency int) *PoolSpawner {
	return &PoolSpawner{pool: pond.NewPool(maxConcurrency)}
}

func (s *PoolSpawner) Go(task func()) {
	s.pool.Submit(task)
}

// Close stops accepting tasks and waits for queued ones to finish.
func (s *PoolSpawner) Close() {
	s.pool.StopAndWait()
}
