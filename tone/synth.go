// Package tone turns lifecycle cues into sound on whatever output the
// platform offers: synthesised samples on PWM audio, or a plain buzzer.
package tone

import (
	"errors"
	"fmt"
	"math"
	"time"

	"glassdial/hal"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// DefaultSampleRate suits both the host audio context and a PWM pin.
const DefaultSampleRate = beep.SampleRate(22050)

const (
	rampDuration = 3 * time.Millisecond
	chunkSamples = 256
)

// Cue builds a streamer for one tone: a sine at freqHz, shaped with short
// attack/release ramps, scaled by gain (0..1), ending after the duration.
func Cue(sr beep.SampleRate, freqHz, durationMs int, gain float64) (beep.Streamer, error) {
	if freqHz <= 0 || durationMs <= 0 {
		return nil, fmt.Errorf("tone: invalid cue %d Hz / %d ms", freqHz, durationMs)
	}
	sine, err := generators.SineTone(sr, float64(freqHz))
	if err != nil {
		return nil, fmt.Errorf("tone: %d Hz: %w", freqHz, err)
	}
	d := time.Duration(durationMs) * time.Millisecond
	total := sr.N(d)
	shaped := ramp(beep.Take(total, sine), total, sr.N(rampDuration))
	return volume(shaped, gain), nil
}

func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

func ramp(s beep.Streamer, total, width int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			g := 1.0
			if width > 0 {
				if pos < width {
					g = float64(pos) / float64(width)
				}
				if rem := total - pos; rem < width {
					g = math.Min(g, float64(rem)/float64(width))
				}
			}
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// Synth plays cues on a PWM sample sink.
type Synth struct {
	out  hal.PWMAudio
	sr   beep.SampleRate
	gain float64
	buf  [][2]float64
}

func NewSynth(out hal.PWMAudio, sr beep.SampleRate, gain float64) *Synth {
	if sr <= 0 {
		sr = DefaultSampleRate
	}
	return &Synth{out: out, sr: sr, gain: gain, buf: make([][2]float64, chunkSamples)}
}

func (s *Synth) Start() error {
	if s.out == nil {
		return errors.New("tone: no pwm output")
	}
	if err := s.out.Start(uint32(s.sr)); err != nil {
		return fmt.Errorf("tone: start pwm: %w", err)
	}
	s.out.SetVolume(255)
	return nil
}

func (s *Synth) Stop() error {
	if s.out == nil {
		return nil
	}
	return s.out.Stop()
}

// Play writes one cue to the sink, dropping whatever was still queued first.
// interrupted is polled between chunks; when it reports true the cue stops early.
func (s *Synth) Play(freqHz, durationMs int, interrupted func() bool) error {
	st, err := Cue(s.sr, freqHz, durationMs, s.gain)
	if err != nil {
		return err
	}
	s.out.Flush()
	for {
		if interrupted != nil && interrupted() {
			return nil
		}
		n, ok := st.Stream(s.buf)
		for i := 0; i < n; i++ {
			s.out.WriteSample(toPCM16(s.buf[i]))
		}
		if !ok || n < len(s.buf) {
			return st.Err()
		}
	}
}

// toPCM16 downmixes a stereo frame to a clipped 16-bit mono sample.
func toPCM16(frame [2]float64) int16 {
	v := (frame[0] + frame[1]) / 2
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(math.Round(v * math.MaxInt16))
}
