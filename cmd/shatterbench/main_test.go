package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"glassdial/app"
	"glassdial/hal"
	"glassdial/shatter"
)

func TestBenchFullCycle(t *testing.T) {
	cfg := app.DefaultConfig()
	// 100 frames of spin saturates the level; 10 s idle plus 200 recovery
	// frames brings it back to REST well inside 1500 frames.
	res, err := bench(cfg, 1500, &hal.ScriptedEncoder{Spin: 1, Frames: 100}, io.Discard)
	if err != nil {
		t.Fatalf("bench: %v", err)
	}

	if res.final != shatter.StateRest {
		t.Fatalf("final = %v, want REST", res.final)
	}
	if res.cracks != 0 || res.particles != 0 {
		t.Fatalf("collections = %d cracks, %d particles; want empty", res.cracks, res.particles)
	}
	want := []shatter.State{
		shatter.StateCracking,
		shatter.StateShattering,
		shatter.StateSilent,
		shatter.StateRebuilding,
		shatter.StateRecovering,
		shatter.StateRest,
	}
	if len(res.transitions) != len(want) {
		t.Fatalf("transitions = %v, want %d", res.transitions, len(want))
	}
	for i, s := range want {
		if res.transitions[i].To != s {
			t.Fatalf("transition %d to %v, want %v", i, res.transitions[i].To, s)
		}
	}
	total := 0
	for _, n := range res.perState {
		total += n
	}
	if total != 1500 {
		t.Fatalf("per-state frames sum to %d, want 1500", total)
	}

	var out bytes.Buffer
	res.print(&out)
	if !strings.Contains(out.String(), "frames:      1500") {
		t.Fatalf("report missing frame count:\n%s", out.String())
	}
}

func TestPercentile(t *testing.T) {
	sorted := []time.Duration{1, 2, 3, 4, 5}
	tests := []struct {
		p    float64
		want time.Duration
	}{
		{0, 1},
		{50, 3},
		{100, 5},
	}
	for _, tt := range tests {
		if got := percentile(sorted, tt.p); got != tt.want {
			t.Fatalf("percentile(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if percentile(nil, 50) != 0 {
		t.Fatalf("percentile(nil) != 0")
	}
}
