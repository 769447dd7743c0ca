package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"glassdial/gfx"
)

var (
	panicBackground = gfx.RGB(0xFF, 0xFF, 0xFF)
	panicForeground = gfx.RGB(0x00, 0x00, 0x00)
	bootForeground  = gfx.RGB(0xEE, 0xEE, 0xEE)
)

const (
	panicLineHeight = 10
	panicCharWidth  = 6
	// The panel is round; keep text inside the inscribed square.
	panicInset = 36
)

func (d *Dial) panicScreen(v any) {
	stack := debug.Stack()
	d.logf("glassdial panic: %v", v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		d.logf("%s", line)
	}

	if d.canvas == nil {
		return
	}
	lines := []string{
		"glassdial panic",
		fmt.Sprintf("frame %d", d.scene.FrameCount()),
		fmt.Sprintf("%v", v),
	}
	drawPanic(d.canvas, lines)
	_ = d.canvas.Present()
}

func drawPanic(c *gfx.Canvas, lines []string) {
	c.Clear(panicBackground)
	w, h := c.Size()
	cols := (w - 2*panicInset) / panicCharWidth
	if cols <= 0 {
		cols = 1
	}

	y := panicInset
	for _, line := range lines {
		for len(line) > 0 {
			if y+panicLineHeight > h-panicInset {
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.Text(panicInset, y, gfx.AnchorTopLeft, chunk, panicForeground)
			y += panicLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

// bootScreen shows msg centred until the first frame replaces it.
func bootScreen(c *gfx.Canvas, msg string) {
	if c == nil {
		return
	}
	w, h := c.Size()
	c.Clear(gfx.RGB(0, 0, 0))
	c.Text(w/2, h/2, gfx.AnchorCenter, msg, bootForeground)
	_ = c.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
