package gfx

import (
	"image/color"

	"glassdial/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Canvas is a Surface over an RGB565 framebuffer.
type Canvas struct {
	fb   hal.Framebuffer
	d    *fbDisplayer
	font tinyfont.Fonter
}

func NewCanvas(fb hal.Framebuffer) *Canvas {
	return &Canvas{
		fb:   fb,
		d:    &fbDisplayer{fb: fb},
		font: &proggy.TinySZ8pt7b,
	}
}

func (c *Canvas) Framebuffer() hal.Framebuffer { return c.fb }

// Present pushes the framebuffer to the panel.
func (c *Canvas) Present() error { return c.d.Display() }

func (c *Canvas) Size() (w, h int) {
	if c.fb == nil {
		return 0, 0
	}
	return c.fb.Width(), c.fb.Height()
}

func (c *Canvas) Clear(col color.RGBA) {
	if c.fb == nil {
		return
	}
	c.fb.ClearRGB(col.R, col.G, col.B)
}

func (c *Canvas) Pixel(x, y int, col color.RGBA) {
	c.d.setPixel(x, y, rgb565From888(col.R, col.G, col.B))
}

// Line draws a Bresenham line; pixels outside the surface are dropped.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	p := rgb565From888(col.R, col.G, col.B)
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.d.setPixel(x0, y0, p)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle fills a disc of radius r centred on (cx, cy) with horizontal spans.
func (c *Canvas) FillCircle(cx, cy, r int, col color.RGBA) {
	if r < 0 || c.fb == nil {
		return
	}
	p := rgb565From888(col.R, col.G, col.B)
	w, h := c.Size()
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= h {
			continue
		}
		half := isqrt(rr - dy*dy)
		if cx+half < 0 || cx-half >= w {
			continue
		}
		c.d.span(y, clampInt(cx-half, 0, w-1), clampInt(cx+half, 0, w-1), p)
	}
}

// Text draws one line of text anchored at (x, y).
func (c *Canvas) Text(x, y int, a Anchor, s string, col color.RGBA) {
	if s == "" || c.font == nil {
		return
	}
	_, outbox := tinyfont.LineWidth(c.font, s)
	tw := int(outbox)
	th := int(c.font.GetYAdvance())
	ascent := th * 3 / 4

	left, top := x, y
	switch a {
	case AnchorTopCenter:
		left = x - tw/2
	case AnchorCenter:
		left = x - tw/2
		top = y - th/2
	case AnchorBottomCenter:
		left = x - tw/2
		top = y - th
	}
	tinyfont.WriteLine(c.d, c.font, int16(left), int16(top+ascent), s, col)
}

// fbDisplayer adapts a framebuffer to the tinygo drivers.Displayer contract
// so tinyfont can draw into it.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.setPixel(int(x), int(y), rgb565From888(c.R, c.G, c.B))
}

func (d *fbDisplayer) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplayer) setPixel(x, y int, pixel uint16) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	if x < 0 || y < 0 || x >= d.fb.Width() || y >= d.fb.Height() {
		return
	}
	off := y*d.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) span(y, x0, x1 int, pixel uint16) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	row := y * d.fb.StrideBytes()
	for x := x0; x <= x1; x++ {
		off := row + x*2
		if off < 0 || off+1 >= len(buf) {
			continue
		}
		buf[off] = lo
		buf[off+1] = hi
	}
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// isqrt returns floor(sqrt(v)) for v >= 0.
func isqrt(v int) int {
	if v <= 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}
