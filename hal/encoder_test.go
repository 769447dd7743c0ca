package hal

import "testing"

func TestCountingEncoderPollDelta(t *testing.T) {
	var e CountingEncoder
	if d := e.PollDelta(); d != 0 {
		t.Fatalf("PollDelta() = %d, want 0", d)
	}

	e.Add(3)
	e.Add(-1)
	if d := e.PollDelta(); d != 2 {
		t.Fatalf("PollDelta() = %d, want 2", d)
	}
	if d := e.PollDelta(); d != 0 {
		t.Fatalf("PollDelta() after drain = %d, want 0", d)
	}

	e.Set(-5)
	if d := e.PollDelta(); d != -7 {
		t.Fatalf("PollDelta() = %d, want -7", d)
	}
	if p := e.Position(); p != -5 {
		t.Fatalf("Position() = %d, want -5", p)
	}
}

func TestScriptedEncoder(t *testing.T) {
	e := &ScriptedEncoder{Spin: 4, Frames: 2}
	want := []int{4, 4, 0, 0}
	for i, w := range want {
		if got := e.PollDelta(); got != w {
			t.Fatalf("poll %d = %d, want %d", i, got, w)
		}
	}
}
