package bindkit_test

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/bindkit"
	"github.com/dmitrymomot/bindkit/pkg/frameclock"
)

// Example_tickLoop drives a bind from a redraw-style loop: the clock ticks
// once per cycle, the bind is requested and read every frame, and the loop
// renders whatever state it observes.
func Example_tickLoop() {
	ctx := context.Background()
	clk := frameclock.New()
	weather := bindkit.New[string](clk)

	fetch := func(ctx context.Context) (string, error) {
		time.Sleep(10 * time.Millisecond) // a slow backend call
		return "sunny, 21C", nil
	}

	for done := false; !done; {
		clk.Tick()

		switch v := weather.StateOrRequest(ctx, fetch); v.Kind {
		case bindkit.KindPending:
			// draw a spinner
		case bindkit.KindFinished:
			fmt.Println(*v.Value)
			done = true
		case bindkit.KindFailed:
			fmt.Println("error:", v.Err)
			done = true
		}

		time.Sleep(time.Millisecond) // frame budget
	}

	// Output: sunny, 21C
}

// ExampleBind_Fill injects already-known data without a background attempt.
func ExampleBind_Fill() {
	clk := frameclock.New()
	b := bindkit.New[string](clk)

	if err := b.Fill(bindkit.Result[string]{Value: "from cache"}); err != nil {
		panic(err)
	}
	fmt.Println(b.Read().Value)

	// Output: from cache
}

// ExampleGroup shows one bind per list row with shared construction options.
func ExampleGroup() {
	clk := frameclock.New()
	g := bindkit.NewGroup[int, string](clk, time.Minute, bindkit.WithRetain[string]())
	defer g.Stop()

	_ = g.Get(1)
	_ = g.Get(2)
	_ = g.Get(1) // same bind as the first call
	fmt.Println(g.Len())

	// Output: 2
}
