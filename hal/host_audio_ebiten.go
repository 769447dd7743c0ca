//go:build !tinygo && cgo

package hal

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hostAudio plays tone cues on desktop through Ebiten's audio package.
type hostAudio struct {
	pwm *hostPWMAudio
}

func newHostAudio() hostAudio {
	return hostAudio{pwm: &hostPWMAudio{}}
}

func (a hostAudio) PWM() PWMAudio { return a.pwm }

// Buzzer is nil on desktop; tones are synthesised through PWM.
func (a hostAudio) Buzzer() Buzzer { return nil }

type hostPWMAudio struct {
	mu   sync.Mutex
	cond *sync.Cond

	ctx        *audio.Context
	player     *audio.Player
	sampleRate uint32

	buf []int16
	r   int
	w   int
	n   int

	closed bool
	vol    uint8
}

func (a *hostPWMAudio) Start(sampleRate uint32) error {
	if sampleRate == 0 {
		return errors.New("host audio: invalid sample rate")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cond == nil {
		a.cond = sync.NewCond(&a.mu)
	}

	if a.ctx == nil {
		a.ctx = audio.NewContext(int(sampleRate))
	} else if a.ctx.SampleRate() != int(sampleRate) {
		return errors.New("host audio: ebiten audio context sample rate is fixed")
	}
	a.sampleRate = sampleRate

	if a.player != nil {
		_ = a.player.Close()
		a.player = nil
	}

	// ~40ms so a newer cue is heard quickly after Flush.
	ring := int(sampleRate / 25)
	if ring < 512 {
		ring = 512
	}
	a.buf = make([]int16, ring)
	a.r, a.w, a.n = 0, 0, 0
	a.closed = false

	p, err := a.ctx.NewPlayer(&hostAudioReader{a: a})
	if err != nil {
		return err
	}
	p.SetBufferSize(40 * time.Millisecond)
	p.SetVolume(float64(a.vol) / 255.0)
	p.Play()
	a.player = p
	return nil
}

func (a *hostPWMAudio) Stop() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	a.n = 0
	a.r = 0
	a.w = 0
	if a.cond != nil {
		a.cond.Broadcast()
	}
	p := a.player
	a.player = nil
	a.mu.Unlock()

	if p != nil {
		return p.Close()
	}
	return nil
}

func (a *hostPWMAudio) SetVolume(vol uint8) {
	a.mu.Lock()
	a.vol = vol
	p := a.player
	a.mu.Unlock()

	if p != nil {
		p.SetVolume(float64(vol) / 255.0)
	}
}

func (a *hostPWMAudio) WriteSample(sample int16) {
	a.mu.Lock()
	for !a.closed && a.n == len(a.buf) {
		a.cond.Wait()
	}
	if a.closed || len(a.buf) == 0 {
		a.mu.Unlock()
		return
	}
	a.buf[a.w] = sample
	a.w++
	if a.w >= len(a.buf) {
		a.w = 0
	}
	a.n++
	a.cond.Signal()
	a.mu.Unlock()
}

// Flush drops samples that have been queued but not yet played.
func (a *hostPWMAudio) Flush() {
	a.mu.Lock()
	a.n = 0
	a.r = 0
	a.w = 0
	if a.cond != nil {
		a.cond.Broadcast()
	}
	a.mu.Unlock()
}

type hostAudioReader struct {
	a *hostPWMAudio
}

func (r *hostAudioReader) Read(p []byte) (int, error) {
	a := r.a
	// Ebiten audio expects 16-bit little-endian stereo.
	for i := 0; i+3 < len(p); i += 4 {
		var s int16

		a.mu.Lock()
		for !a.closed && a.n == 0 {
			a.cond.Wait()
		}
		if a.closed {
			a.mu.Unlock()
			return i, io.EOF
		}
		if a.n > 0 {
			s = a.buf[a.r]
			a.r++
			if a.r >= len(a.buf) {
				a.r = 0
			}
			a.n--
			a.cond.Signal()
		}
		a.mu.Unlock()

		p[i+0] = byte(s)
		p[i+1] = byte(s >> 8)
		p[i+2] = byte(s)
		p[i+3] = byte(s >> 8)
	}
	return len(p), nil
}
