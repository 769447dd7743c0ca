package hal

import "sync"

// MemoryFramebuffer is an RGB565 framebuffer with no panel behind it. Host
// runners present it themselves; tests and tools draw into it directly.
type MemoryFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	onPresent func() error
}

func NewMemoryFramebuffer(width, height int) *MemoryFramebuffer {
	stride := width * 2
	return &MemoryFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *MemoryFramebuffer) Width() int          { return f.width }
func (f *MemoryFramebuffer) Height() int         { return f.height }
func (f *MemoryFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemoryFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemoryFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemoryFramebuffer) Present() error {
	if f.onPresent == nil {
		return nil
	}
	return f.onPresent()
}

func (f *MemoryFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// PixelRGB returns the colour at (x, y), expanded to 8 bits per channel.
func (f *MemoryFramebuffer) PixelRGB(x, y int) (r, g, b uint8) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0, 0, 0
	}
	off := y*f.stride + x*2
	return rgb888From565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
}

func (f *MemoryFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
