package bindkit_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bindkit"
)

func TestGoSpawner(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	var ran atomic.Int32

	sp := bindkit.GoSpawner{}
	for n := 0; n < 10; n++ {
		wg.Add(1)
		sp.Go(func() {
			defer wg.Done()
			ran.Add(1)
		})
	}
	wg.Wait()
	assert.Equal(t, int32(10), ran.Load())
}

func TestPoolSpawner(t *testing.T) {
	t.Parallel()

	t.Run("runs all tasks", func(t *testing.T) {
		t.Parallel()

		sp := bindkit.NewPoolSpawner(4)
		var ran atomic.Int32
		for n := 0; n < 32; n++ {
			sp.Go(func() {
				ran.Add(1)
			})
		}
		sp.Close()
		assert.Equal(t, int32(32), ran.Load())
	})

	t.Run("caps concurrency", func(t *testing.T) {
		t.Parallel()

		const maxConcurrency = 3
		sp := bindkit.NewPoolSpawner(maxConcurrency)

		var current, peak atomic.Int32
		for n := 0; n < 24; n++ {
			sp.Go(func() {
				n := current.Add(1)
				// Track the high-water mark of simultaneously running tasks.
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				current.Add(-1)
			})
		}
		sp.Close()
		assert.LessOrEqual(t, peak.Load(), int32(maxConcurrency))
	})
}
