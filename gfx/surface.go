// Package gfx draws simple 2D primitives into a hal.Framebuffer.
package gfx

import "image/color"

// Anchor selects which point of a text line (x, y) refers to.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorCenter
	AnchorBottomCenter
)

// Surface is the drawing contract the scene renderer needs.
//
// Implementations clip out-of-bounds coordinates.
type Surface interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	FillCircle(cx, cy, r int, c color.RGBA)
	Line(x0, y0, x1, y1 int, c color.RGBA)
	Pixel(x, y int, c color.RGBA)
	Text(x, y int, a Anchor, s string, c color.RGBA)
}

// RGB is shorthand for an opaque color.
func RGB(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

// Scale multiplies the color channels by s in [0,1].
func Scale(c color.RGBA, s float64) color.RGBA {
	if s <= 0 {
		return color.RGBA{A: c.A}
	}
	if s >= 1 {
		return c
	}
	mul := func(ch uint8) uint8 { return uint8(float64(ch)*s + 0.5) }
	return color.RGBA{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}
