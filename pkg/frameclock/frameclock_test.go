package frameclock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bindkit/pkg/frameclock"
)

func TestClock_Tick(t *testing.T) {
	t.Parallel()

	clk := frameclock.New()
	assert.Equal(t, uint64(0), clk.Ticks())

	clk.Tick()
	clk.Tick()
	clk.Tick()
	assert.Equal(t, uint64(3), clk.Ticks())
}

func TestClock_NowIsStableWithinTick(t *testing.T) {
	t.Parallel()

	now := time.Unix(500, 0)
	clk := frameclock.New(frameclock.WithNowFunc(func() time.Time { return now }))

	clk.Tick()
	frame := clk.Now()

	// The time source advances, but the frame timestamp holds until the
	// next Tick.
	now = now.Add(time.Minute)
	assert.Equal(t, frame, clk.Now())

	clk.Tick()
	assert.Equal(t, now, clk.Now())
}

func TestClock_Since(t *testing.T) {
	t.Parallel()

	now := time.Unix(500, 0)
	clk := frameclock.New(frameclock.WithNowFunc(func() time.Time { return now }))
	clk.Tick()
	start := clk.Now()

	now = now.Add(7 * time.Second)
	clk.Tick()
	assert.Equal(t, 7*time.Second, clk.Since(start))
}

func TestClock_NilNowFuncIgnored(t *testing.T) {
	t.Parallel()

	clk := frameclock.New(frameclock.WithNowFunc(nil))
	clk.Tick()
	assert.False(t, clk.Now().IsZero())
}

func TestClock_NowMeaningfulBeforeFirstTick(t *testing.T) {
	t.Parallel()

	now := time.Unix(500, 0)
	clk := frameclock.New(frameclock.WithNowFunc(func() time.Time { return now }))
	assert.Equal(t, now, clk.Now())
}
