//go:build tinygo

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	enc Encoder
}

func (in tinyGoInput) Encoder() Encoder { return in.enc }

type tinyGoAudio struct {
	buzzer Buzzer
}

func (a tinyGoAudio) PWM() PWMAudio  { return nil }
func (a tinyGoAudio) Buzzer() Buzzer { return a.buzzer }

type tinyGoClock struct {
	start time.Time
}

func newTinyGoClock() *tinyGoClock { return &tinyGoClock{start: time.Now()} }

func (c *tinyGoClock) Now() time.Duration { return time.Since(c.start) }

type serialLogger struct {
	out machine.Serialer
}

func (l *serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.out.WriteByte(s[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.out.WriteByte(b[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}
