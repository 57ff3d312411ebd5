package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	Ticks  uint64 // 0 runs until ctx is done or the app quits
	Log    io.Writer
	Logger Logger
}

// RunHeadless drives the app from a ticker without opening a window.
//
// The HAL clock is virtual: each tick advances it by exactly 1/Hz, so frame
// timing seen by the app does not depend on host load.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(HostConfig{Width: cfg.Width, Height: cfg.Height, Log: cfg.Log, Logger: cfg.Logger}, newVirtualTime(time.Unix(0, 0)))
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(d)
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
