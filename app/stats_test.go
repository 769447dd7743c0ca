package app

import (
	"testing"
	"time"
)

func TestFrameStatsOverrunReporting(t *testing.T) {
	s := NewFrameStats(20 * time.Millisecond)

	steps := []struct {
		work, now time.Duration
		report    bool
	}{
		{5 * time.Millisecond, 0, false},
		{25 * time.Millisecond, 20 * time.Millisecond, true},
		{30 * time.Millisecond, 40 * time.Millisecond, false},
		{20 * time.Millisecond, 60 * time.Millisecond, false},
		{21 * time.Millisecond, 1100 * time.Millisecond, true},
	}
	for i, st := range steps {
		if got := s.Observe(st.work, st.now); got != st.report {
			t.Fatalf("step %d: Observe() = %v, want %v", i, got, st.report)
		}
	}

	if s.Frames() != 5 {
		t.Fatalf("Frames() = %d, want 5", s.Frames())
	}
	if s.Overruns() != 3 {
		t.Fatalf("Overruns() = %d, want 3", s.Overruns())
	}
	if s.Max() != 30*time.Millisecond {
		t.Fatalf("Max() = %v, want 30ms", s.Max())
	}
	if s.Last() != 21*time.Millisecond {
		t.Fatalf("Last() = %v, want 21ms", s.Last())
	}
	if s.Mean() != 101*time.Millisecond/5 {
		t.Fatalf("Mean() = %v, want %v", s.Mean(), 101*time.Millisecond/5)
	}
}
