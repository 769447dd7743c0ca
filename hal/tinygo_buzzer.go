//go:build tinygo && m5dial

package hal

import (
	"machine"
	"sync"
	"time"

	"tinygo.org/x/drivers/tone"
)

// pwmBuzzer drives the piezo with a square wave. Tone returns immediately;
// a timer silences the speaker unless a newer tone replaced it.
type pwmBuzzer struct {
	mu      sync.Mutex
	speaker tone.Speaker
	seq     uint32
}

func newPWMBuzzer(pin machine.Pin) (*pwmBuzzer, error) {
	speaker, err := tone.New(machine.PWM0, pin)
	if err != nil {
		return nil, err
	}
	speaker.Stop()
	return &pwmBuzzer{speaker: speaker}, nil
}

func (b *pwmBuzzer) Tone(freqHz uint32, d time.Duration) {
	if freqHz == 0 || d <= 0 {
		b.Stop()
		return
	}
	b.mu.Lock()
	b.seq++
	seq := b.seq
	// Notes are periods in nanoseconds.
	b.speaker.SetNote(tone.Note(1_000_000_000 / uint64(freqHz)))
	b.mu.Unlock()

	time.AfterFunc(d, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.seq == seq {
			b.speaker.Stop()
		}
	})
}

func (b *pwmBuzzer) Stop() {
	b.mu.Lock()
	b.seq++
	b.speaker.Stop()
	b.mu.Unlock()
}
