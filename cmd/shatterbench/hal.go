package main

import (
	"fmt"
	"io"

	"glassdial/hal"
)

// benchHAL is a display-only HAL on a virtual clock. It has no audio.
type benchHAL struct {
	log benchLogger
	fb  *hal.MemoryFramebuffer
	enc hal.Encoder
	clk *hal.VirtualClock
}

func newBenchHAL(enc hal.Encoder, logOut io.Writer) *benchHAL {
	return &benchHAL{
		log: benchLogger{w: logOut},
		fb:  hal.NewMemoryFramebuffer(240, 240),
		enc: enc,
		clk: hal.NewVirtualClock(),
	}
}

func (h *benchHAL) Logger() hal.Logger   { return h.log }
func (h *benchHAL) Display() hal.Display { return h }
func (h *benchHAL) Input() hal.Input     { return h }
func (h *benchHAL) Audio() hal.Audio     { return nil }
func (h *benchHAL) Clock() hal.Clock     { return h.clk }

func (h *benchHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *benchHAL) Encoder() hal.Encoder         { return h.enc }

type benchLogger struct {
	w io.Writer
}

func (l benchLogger) WriteLineString(s string) { fmt.Fprintln(l.w, s) }
func (l benchLogger) WriteLineBytes(b []byte)  { fmt.Fprintln(l.w, string(b)) }
