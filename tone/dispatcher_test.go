package tone

import (
	"context"
	"testing"
	"time"

	"glassdial/hal"
	"glassdial/kernel"
)

type played struct {
	freq uint32
	d    time.Duration
}

type fakeBuzzer struct {
	tones chan played
	stops int
}

func (b *fakeBuzzer) Tone(freqHz uint32, d time.Duration) { b.tones <- played{freqHz, d} }
func (b *fakeBuzzer) Stop()                               { b.stops++ }

type fakeAudio struct {
	pwm    hal.PWMAudio
	buzzer hal.Buzzer
}

func (a fakeAudio) PWM() hal.PWMAudio  { return a.pwm }
func (a fakeAudio) Buzzer() hal.Buzzer { return a.buzzer }

func TestDispatcherPlaysOnBuzzer(t *testing.T) {
	bz := &fakeBuzzer{tones: make(chan played, 4)}
	d := NewDispatcher(fakeAudio{buzzer: bz}, nil, 1)
	if !d.Enabled() {
		t.Fatalf("Enabled() = false, want true")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	d.Play(1200, 40)
	select {
	case got := <-bz.tones:
		if got.freq != 1200 || got.d != 40*time.Millisecond {
			t.Fatalf("buzzer got %+v, want 1200 Hz for 40ms", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("buzzer never played")
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.Played() != 1 {
		t.Fatalf("Played() = %d, want 1", d.Played())
	}
}

func TestDispatcherHonoursSilenceAfterCancel(t *testing.T) {
	bz := &fakeBuzzer{tones: make(chan played, 4)}
	d := NewDispatcher(fakeAudio{buzzer: bz}, nil, 1)
	d.Play(400, 150)
	d.Silence()
	d.Play(800, 150)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(bz.tones) != 0 || d.Played() != 0 {
		t.Fatalf("played %d tones after cancel, want 0", d.Played())
	}
	// One stop for the queued Silence, one on exit.
	if bz.stops != 2 {
		t.Fatalf("stops = %d, want 2", bz.stops)
	}
	if d.mb.Len() != 0 {
		t.Fatalf("mailbox Len() = %d, want drained", d.mb.Len())
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	bz := &fakeBuzzer{tones: make(chan played, 16)}
	d := NewDispatcher(fakeAudio{buzzer: bz}, nil, 1)

	for i := 0; i < 10; i++ {
		d.Play(400, 150)
	}
	if got := d.Dropped(); got != 2 {
		t.Fatalf("Dropped() = %d, want 2", got)
	}
}

func TestDispatcherWithoutOutputDiscards(t *testing.T) {
	d := NewDispatcher(fakeAudio{}, nil, 1)
	if d.Enabled() {
		t.Fatalf("Enabled() = true, want false")
	}
	d.Play(400, 150)
	if d.Dropped() != 0 || d.mb.Len() != 0 {
		t.Fatalf("disabled dispatcher queued a request")
	}
}

func TestDispatcherPrefersBuzzer(t *testing.T) {
	bz := &fakeBuzzer{tones: make(chan played, 1)}
	d := NewDispatcher(fakeAudio{pwm: &fakePWM{}, buzzer: bz}, nil, 1)
	if d.synth != nil || d.buzzer == nil {
		t.Fatalf("dispatcher did not pick the buzzer")
	}
}

func TestDispatcherRejectsBadMessages(t *testing.T) {
	d := NewDispatcher(fakeAudio{buzzer: &fakeBuzzer{tones: make(chan played, 1)}}, nil, 1)
	if err := d.handle(kernelMessage(99, nil)); err == nil {
		t.Fatalf("handle(kind 99) err = nil, want error")
	}
	if _, _, err := decodeTone([]byte{1, 2}); err == nil {
		t.Fatalf("decodeTone(short) err = nil, want error")
	}
	f, ms, err := decodeTone(encodeTone(880, 60))
	if err != nil || f != 880 || ms != 60 {
		t.Fatalf("decodeTone = %d, %d, %v; want 880, 60, nil", f, ms, err)
	}
}

func kernelMessage(kind uint8, payload []byte) kernel.Message {
	return kernel.NewMessage(kernel.EPFrame, kernel.EPTone, kind, payload)
}
