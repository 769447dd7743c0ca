//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	hostWidth  = 240
	hostHeight = 240
)

type hostHAL struct {
	logger *hostLogger
	fb     *MemoryFramebuffer
	enc    Encoder
	clk    *hostClock
	aud    Audio
}

// New returns a host HAL implementation with a wall clock and no input.
func New() HAL {
	return newHostHAL(os.Stdout, nullEncoder{}, false)
}

func newHostHAL(logOut io.Writer, enc Encoder, virtual bool) *hostHAL {
	if enc == nil {
		enc = nullEncoder{}
	}
	return &hostHAL{
		logger: &hostLogger{w: logOut},
		fb:     NewMemoryFramebuffer(hostWidth, hostHeight),
		enc:    enc,
		clk:    newHostClock(virtual),
		aud:    newHostAudio(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{enc: h.enc} }
func (h *hostHAL) Audio() Audio     { return h.aud }
func (h *hostHAL) Clock() Clock     { return h.clk }

type hostDisplay struct {
	fb *MemoryFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	enc Encoder
}

func (in hostInput) Encoder() Encoder { return in.enc }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
