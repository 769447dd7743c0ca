// Package hal is the hardware boundary of the dial. Host builds get a window,
// terminal or headless runner; TinyGo builds select a board with a build tag
// (-tags m5dial), and fall back to a board-less backend without one.
package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Encoder is a rotary encoder.
type Encoder interface {
	// PollDelta returns the signed rotation since the previous call. It never blocks.
	PollDelta() int
}

// Input provides access to input devices (if available).
type Input interface {
	Encoder() Encoder
}

// PWMAudio is a mono sample sink.
type PWMAudio interface {
	Start(sampleRate uint32) error
	Stop() error
	SetVolume(vol uint8)
	WriteSample(sample int16)
	// Flush drops queued samples so the next write starts a new sound at once.
	Flush()
}

// Buzzer is a square-wave tone generator (piezo on a PWM pin).
type Buzzer interface {
	Tone(freqHz uint32, d time.Duration)
	Stop()
}

// Audio exposes whichever audio outputs the platform has. Either may be nil.
type Audio interface {
	PWM() PWMAudio
	Buzzer() Buzzer
}

// Clock is the monotonic timebase frames are stamped with.
type Clock interface {
	// Now returns the time elapsed since boot.
	Now() time.Duration
}

// HAL provides the only contact point between the dial and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Audio() Audio
	Clock() Clock
}
