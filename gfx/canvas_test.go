package gfx

import (
	"testing"

	"glassdial/hal"
)

func lit(fb *hal.MemoryFramebuffer) int {
	n := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if r, g, b := fb.PixelRGB(x, y); r|g|b != 0 {
				n++
			}
		}
	}
	return n
}

func TestCanvasPixelAndClip(t *testing.T) {
	fb := hal.NewMemoryFramebuffer(10, 10)
	c := NewCanvas(fb)

	c.Pixel(3, 4, RGB(0xFF, 0xFF, 0xFF))
	c.Pixel(-1, 4, RGB(0xFF, 0xFF, 0xFF))
	c.Pixel(10, 10, RGB(0xFF, 0xFF, 0xFF))

	if got := lit(fb); got != 1 {
		t.Fatalf("lit pixels = %d, want 1", got)
	}
	if r, _, _ := fb.PixelRGB(3, 4); r != 0xFF {
		t.Fatalf("pixel (3,4) r = %d, want 255", r)
	}
}

func TestCanvasLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"horizontal", 0, 2, 9, 2, 10},
		{"diagonal", 0, 0, 9, 9, 10},
		{"single", 5, 5, 5, 5, 1},
		{"clipped", -5, 3, 4, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := hal.NewMemoryFramebuffer(10, 10)
			NewCanvas(fb).Line(tt.x0, tt.y0, tt.x1, tt.y1, RGB(0xFF, 0, 0))
			if got := lit(fb); got != tt.want {
				t.Fatalf("lit pixels = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCanvasFillCircle(t *testing.T) {
	fb := hal.NewMemoryFramebuffer(21, 21)
	c := NewCanvas(fb)
	c.FillCircle(10, 10, 10, RGB(0, 0xFF, 0))

	if _, g, _ := fb.PixelRGB(10, 10); g != 0xFF {
		t.Fatalf("centre g = %d, want 255", g)
	}
	if _, g, _ := fb.PixelRGB(0, 0); g != 0 {
		t.Fatalf("corner g = %d, want 0", g)
	}
	// pi*r^2 ~ 314; the integer disc is a little larger.
	if got := lit(fb); got < 300 || got > 340 {
		t.Fatalf("lit pixels = %d, want ~314", got)
	}

	// Off-surface discs are dropped without panicking.
	c.FillCircle(-50, -50, 5, RGB(0xFF, 0, 0))
	c.FillCircle(5, 5, -1, RGB(0xFF, 0, 0))
}

func TestCanvasTextAnchors(t *testing.T) {
	for _, a := range []Anchor{AnchorTopLeft, AnchorTopCenter, AnchorCenter, AnchorBottomCenter} {
		fb := hal.NewMemoryFramebuffer(80, 40)
		NewCanvas(fb).Text(40, 20, a, "0.50", RGB(0xFF, 0xFF, 0xFF))
		if lit(fb) == 0 {
			t.Fatalf("anchor %d drew nothing", a)
		}
	}
}

func TestCanvasClearAndSize(t *testing.T) {
	fb := hal.NewMemoryFramebuffer(4, 3)
	c := NewCanvas(fb)
	if w, h := c.Size(); w != 4 || h != 3 {
		t.Fatalf("Size() = %dx%d, want 4x3", w, h)
	}
	c.Clear(RGB(0xFF, 0xFF, 0xFF))
	if got := lit(fb); got != 12 {
		t.Fatalf("lit after Clear = %d, want 12", got)
	}
	if err := c.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
}

func TestScale(t *testing.T) {
	c := RGB(200, 100, 50)
	if got := Scale(c, 0.5); got != RGB(100, 50, 25) {
		t.Fatalf("Scale(0.5) = %v", got)
	}
	if got := Scale(c, 2); got != c {
		t.Fatalf("Scale(2) = %v, want unchanged", got)
	}
	if got := Scale(c, -1); got.R|got.G|got.B != 0 {
		t.Fatalf("Scale(-1) = %v, want black", got)
	}
}

func TestISqrt(t *testing.T) {
	for v, want := range map[int]int{-4: 0, 0: 0, 1: 1, 15: 3, 16: 4, 17: 4, 14400: 120} {
		if got := isqrt(v); got != want {
			t.Fatalf("isqrt(%d) = %d, want %d", v, got, want)
		}
	}
}
