// Command shatterbench runs the dial on a virtual clock with scripted input
// and reports how frame work compares with the frame budget.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"glassdial/app"
	"glassdial/hal"
	"glassdial/shatter"
)

func main() {
	var (
		frames     = flag.Int("frames", 3000, "Frames to simulate.")
		spin       = flag.Int("spin", 2, "Encoder detents per frame while spinning.")
		spinFrames = flag.Uint64("spin-frames", 100, "Frames that receive -spin.")
		hz         = flag.Int("hz", 50, "Virtual frame rate.")
		seed       = flag.Uint("seed", 0, "Scene seed (0 = default).")
		verbose    = flag.Bool("v", false, "Print dial logs to stderr.")
	)
	flag.Parse()

	if *frames <= 0 || *hz <= 0 {
		fatalf("frames and hz must be positive")
	}

	cfg := app.DefaultConfig()
	cfg.FrameRate = *hz
	if *seed != 0 {
		cfg.Scene.Seed = uint32(*seed)
	}

	var logOut io.Writer = io.Discard
	if *verbose {
		logOut = os.Stderr
	}
	res, err := bench(cfg, *frames, &hal.ScriptedEncoder{Spin: *spin, Frames: *spinFrames}, logOut)
	if err != nil {
		fatalf("%v", err)
	}
	res.print(os.Stdout)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

type result struct {
	budget      time.Duration
	frames      int
	work        []time.Duration
	perState    map[shatter.State]int
	transitions []shatter.Transition
	overruns    uint64
	final       shatter.State
	cracks      int
	particles   int
}

func bench(cfg app.Config, frames int, enc hal.Encoder, logOut io.Writer) (*result, error) {
	h := newBenchHAL(enc, logOut)

	res := &result{perState: make(map[shatter.State]int)}
	cfg.OnTransition = func(t shatter.Transition, _ hal.Framebuffer) {
		res.transitions = append(res.transitions, t)
	}

	d, err := app.NewDial(context.Background(), h, cfg)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	period := time.Second / time.Duration(cfg.FrameRate)
	res.budget = d.Stats().Budget()
	res.work = make([]time.Duration, 0, frames)
	for i := 0; i < frames; i++ {
		h.clk.Advance(period)
		if err := d.Step(); err != nil {
			return nil, err
		}
		res.work = append(res.work, d.Stats().Last())
		res.perState[d.Scene().State()]++
	}

	res.frames = frames
	res.overruns = d.Stats().Overruns()
	res.final = d.Scene().State()
	res.cracks = d.Scene().Cracks().Len()
	res.particles = d.Scene().Particles().Len()
	return res, nil
}

// percentile returns the p-th percentile (0..100) of sorted durations.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p / 100 * float64(len(sorted)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func (r *result) print(w io.Writer) {
	sorted := append([]time.Duration(nil), r.work...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Fprintf(w, "frames:      %d (budget %v)\n", r.frames, r.budget)
	fmt.Fprintf(w, "frame work:  p50 %v  p95 %v  p99 %v  max %v\n",
		percentile(sorted, 50), percentile(sorted, 95), percentile(sorted, 99), percentile(sorted, 100))
	fmt.Fprintf(w, "overruns:    %d\n", r.overruns)
	fmt.Fprintf(w, "final:       %v (%d cracks, %d particles)\n", r.final, r.cracks, r.particles)
	fmt.Fprintln(w, "frames per state:")
	for s := shatter.StateRest; s <= shatter.StateRecovering; s++ {
		fmt.Fprintf(w, "  %-10v %d\n", s, r.perState[s])
	}
	fmt.Fprintln(w, "transitions:")
	for _, t := range r.transitions {
		fmt.Fprintf(w, "  %6d %8v  %v -> %v (level %.2f)\n", t.Frame, t.At, t.From, t.To, t.Level)
	}
}
