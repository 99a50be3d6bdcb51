// Command demo drives a bind from a terminal tick loop, the same shape an
// immediate-mode UI would use: the frame clock ticks at a fixed rate, the
// bind refreshes a remote value periodically, and every frame renders
// whatever state it observes.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/bindkit"
	"github.com/dmitrymomot/bindkit/pkg/frameclock"
)

type config struct {
	URL             string        `env:"DEMO_URL" envDefault:"https://api.github.com/zen"`
	RefreshInterval time.Duration `env:"DEMO_REFRESH_INTERVAL" envDefault:"10s"`
	FrameRate       int           `env:"DEMO_FRAME_RATE" envDefault:"10"`
	MaxConcurrency  int           `env:"DEMO_MAX_CONCURRENCY" envDefault:"4"`
}

func main() {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "demo: invalid configuration:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool := bindkit.NewPoolSpawner(cfg.MaxConcurrency)
	defer pool.Close()

	clk := frameclock.New()
	quote := bindkit.New[string](clk,
		bindkit.WithSpawner[string](pool),
		bindkit.WithLogger[string](logger),
	)

	fetch := func(ctx context.Context) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
		if err != nil {
			return "", err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("unexpected status %s", resp.Status)
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(body)), nil
	}

	logger.Info("starting demo loop",
		slog.String("url", cfg.URL),
		slog.Duration("refresh_interval", cfg.RefreshInterval),
		slog.Int("frame_rate", cfg.FrameRate))

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FrameRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return
		case <-ticker.C:
		}

		clk.Tick()
		next := quote.RequestEvery(ctx, fetch, cfg.RefreshInterval)

		switch v := quote.View(); v.Kind {
		case bindkit.KindPending:
			fmt.Print("\r\033[Kfetching...")
		case bindkit.KindFinished:
			fmt.Printf("\r\033[K%q (refresh in %ds)", *v.Value, int(next.Seconds()))
		case bindkit.KindFailed:
			fmt.Printf("\r\033[Kfetch failed: %v (retry in %ds)", v.Err, int(next.Seconds()))
		}
	}
}
