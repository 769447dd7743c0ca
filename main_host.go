//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"glassdial/app"
	"glassdial/config"
	"glassdial/hal"
	"glassdial/internal/snapshot"
)

func main() {
	var (
		headless    hal.HeadlessConfig
		useHeadless bool
		useTerm     bool
		configPath  string
		snapshotDir string
		seed        uint
	)
	flag.BoolVar(&useHeadless, "headless", false, "Run without a window.")
	flag.BoolVar(&useTerm, "term", false, "Preview in the terminal.")
	flag.IntVar(&headless.Hz, "hz", 0, "Frame rate (0 = from config).")
	flag.Uint64Var(&headless.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.IntVar(&headless.Spin, "spin", 0, "Encoder detents per frame fed in headless mode.")
	flag.Uint64Var(&headless.SpinFrames, "spin-frames", 0, "Number of frames that receive -spin.")
	flag.BoolVar(&headless.Virtual, "virtual", false, "Headless frames run back to back on a virtual clock.")
	flag.StringVar(&configPath, "config", "", "Config file (yaml, toml or json).")
	flag.StringVar(&snapshotDir, "snapshot-dir", "", "Write a PNG per state transition into this directory.")
	flag.UintVar(&seed, "seed", 0, "Override the scene seed.")
	flag.Parse()

	if err := run(useHeadless, useTerm, headless, configPath, snapshotDir, seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(useHeadless, useTerm bool, headless hal.HeadlessConfig, configPath, snapshotDir string, seed uint) error {
	fileCfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		fileCfg.Scene.Seed = uint32(seed)
	}
	if snapshotDir == "" {
		snapshotDir = fileCfg.SnapshotDir
	}
	if headless.Hz <= 0 {
		headless.Hz = fileCfg.FrameRate
	}

	cfg := app.Config{
		Scene:     fileCfg.Scene,
		FrameRate: headless.Hz,
		Volume:    fileCfg.Volume,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	newApp := func(h hal.HAL) func() error {
		c := cfg
		if snapshotDir != "" {
			w, err := snapshot.NewWriter(snapshotDir)
			if err != nil {
				return func() error { return err }
			}
			h.Logger().WriteLineString("snapshot: run " + w.RunID())
			c.OnTransition = w.Hook(h.Logger())
		}
		return app.New(ctx, h, c)
	}

	switch {
	case useHeadless:
		err = hal.RunHeadless(ctx, newApp, headless)
	case useTerm:
		err = hal.RunTerminal(ctx, newApp, hal.TermConfig{Hz: headless.Hz})
	default:
		err = hal.RunWindow(newApp, headless.Hz)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
