//go:build tinygo && !m5dial

package hal

import "machine"

type genericHAL struct {
	logger *serialLogger
	fb     *MemoryFramebuffer
	clk    *tinyGoClock
}

// New returns a board-less HAL: serial logging, an offscreen framebuffer,
// no input and no audio. Build with -tags m5dial for the real dial.
func New() HAL {
	h := &genericHAL{
		logger: &serialLogger{out: machine.Serial},
		fb:     NewMemoryFramebuffer(240, 240),
		clk:    newTinyGoClock(),
	}
	h.logger.WriteLineString("hal: no board selected; build with -tags m5dial")
	return h
}

func (h *genericHAL) Logger() Logger   { return h.logger }
func (h *genericHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *genericHAL) Input() Input     { return tinyGoInput{enc: nullEncoder{}} }
func (h *genericHAL) Audio() Audio     { return tinyGoAudio{} }
func (h *genericHAL) Clock() Clock     { return h.clk }
