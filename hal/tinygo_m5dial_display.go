//go:build tinygo && m5dial

package hal

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/gc9a01"
)

const (
	m5DialWidth  = 240
	m5DialHeight = 240
)

type m5DialFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd   *gc9a01.Device
	txBuf []byte
}

func (f *m5DialFramebuffer) Width() int          { return f.w }
func (f *m5DialFramebuffer) Height() int         { return f.h }
func (f *m5DialFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *m5DialFramebuffer) StrideBytes() int    { return f.stride }
func (f *m5DialFramebuffer) Buffer() []byte      { return f.buf }

func (f *m5DialFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *m5DialFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	w, h := f.w, f.h
	if len(f.buf) < w*h*2 {
		return errors.New("invalid framebuffer")
	}

	f.lcd.SetWindow(0, 0, int16(w), int16(h))
	chunk := f.txBuf
	for off := 0; off < w*h*2; {
		n := len(chunk)
		if remain := w*h*2 - off; n > remain {
			n = remain &^ 1
		}
		src := f.buf[off : off+n]
		for i := 0; i < n; i += 2 {
			// RGB565 is stored little-endian; the panel wants big-endian.
			chunk[i] = src[i+1]
			chunk[i+1] = src[i]
		}
		f.lcd.Tx(chunk[:n], false)
		off += n
	}
	return nil
}

func newM5DialDisplay() (*m5DialFramebuffer, error) {
	spi := machine.SPI2
	if err := spi.Configure(machine.SPIConfig{
		SCK:       machine.GPIO6,
		SDO:       machine.GPIO5,
		Frequency: 40_000_000,
	}); err != nil {
		return nil, err
	}

	lcd := gc9a01.New(spi, machine.GPIO8, machine.GPIO4, machine.GPIO7, machine.GPIO9)
	lcd.Configure(gc9a01.Config{
		Width:       m5DialWidth,
		Height:      m5DialHeight,
		Orientation: gc9a01.HORIZONTAL,
	})

	fb := newM5DialDisplayStub()
	fb.lcd = &lcd
	fb.txBuf = make([]byte, 4096)
	return fb, nil
}

func newM5DialDisplayStub() *m5DialFramebuffer {
	return &m5DialFramebuffer{
		w:      m5DialWidth,
		h:      m5DialHeight,
		stride: m5DialWidth * 2,
		buf:    make([]byte, m5DialWidth*m5DialHeight*2),
	}
}
