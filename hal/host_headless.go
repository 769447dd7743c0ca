//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Frames uint64

	// Spin is the encoder delta fed on each of the first SpinFrames frames.
	Spin       int
	SpinFrames uint64

	// Virtual runs frames back to back on a virtual clock instead of a ticker.
	Virtual bool
}

// RunHeadless runs the dial without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 50
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	enc := &ScriptedEncoder{Spin: cfg.Spin, Frames: cfg.SpinFrames}
	h := newHostHAL(os.Stdout, enc, cfg.Virtual)
	step := newApp(h)
	if step == nil {
		return nil
	}

	var frame uint64
	done := func() bool {
		frame++
		return cfg.Frames > 0 && frame >= cfg.Frames
	}

	if cfg.Virtual {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			h.clk.advance(d)
			if err := step(); err != nil {
				return err
			}
			if done() {
				return nil
			}
		}
	}

	t := time.NewTicker(d)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := step(); err != nil {
				return err
			}
			if done() {
				return nil
			}
		}
	}
}
