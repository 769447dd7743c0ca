package shatter

import (
	"fmt"
	"image/color"
	"math"

	"glassdial/gfx"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	colorBackground = gfx.RGB(0x00, 0x00, 0x00)
	colorCrack      = gfx.RGB(0xE8, 0xF4, 0xFF)
	colorCrackMuted = gfx.RGB(0x50, 0x58, 0x60)
	colorParticle   = gfx.RGB(0xD8, 0xEC, 0xFF)
	colorGlint      = gfx.RGB(0x34, 0x3C, 0x48)
	colorLevel      = gfx.RGB(0xEE, 0xEE, 0xEE)
	colorLabel      = gfx.RGB(0xFF, 0xD1, 0x4A)
)

const (
	levelTextY = 28
	labelTextY = 216
)

// tintFor returns the disc tint of s. REST has none.
func tintFor(s State) (color.RGBA, bool) {
	switch s {
	case StateCracking:
		return gfx.RGB(0x12, 0x24, 0x40), true
	case StateShattering:
		return gfx.RGB(0x48, 0x10, 0x10), true
	case StateSilent:
		return gfx.RGB(0x1C, 0x1C, 0x1C), true
	case StateRebuilding:
		return gfx.RGB(0x10, 0x34, 0x1C), true
	case StateRecovering:
		return gfx.RGB(0x10, 0x2C, 0x34), true
	default:
		return color.RGBA{}, false
	}
}

// blendTint fades the state tint in from black as the level rises.
func blendTint(tint color.RGBA, level float64) color.RGBA {
	base, _ := colorful.MakeColor(colorBackground)
	target, _ := colorful.MakeColor(tint)
	r, g, b := base.BlendRgb(target, 0.6+0.4*level).Clamped().RGB255()
	return gfx.RGB(r, g, b)
}

// Render redraws the whole scene. It only reads simulation state.
func (s *Scene) Render(dst gfx.Surface) {
	w, h := dst.Size()
	if w <= 0 || h <= 0 {
		return
	}
	state := s.model.State()
	level := s.model.Level()
	cx, cy := int(s.center.X), int(s.center.Y)

	dst.Clear(colorBackground)
	if tint, ok := tintFor(state); ok {
		dst.FillCircle(cx, cy, s.cfg.DiscRadius, blendTint(tint, level))
	}

	if state == StateRest || state == StateCracking {
		for _, g := range s.glints {
			dst.Pixel(int(g.X), int(g.Y), colorGlint)
		}
	}

	crackColor := colorCrack
	if state == StateSilent {
		crackColor = colorCrackMuted
	}
	for _, c := range s.cracks.Cracks() {
		dst.Line(roundInt(c.Start.X), roundInt(c.Start.Y), roundInt(c.End.X), roundInt(c.End.Y), crackColor)
	}

	for _, p := range s.particles.Particles() {
		x, y := roundInt(p.Pos.X), roundInt(p.Pos.Y)
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		dst.Pixel(x, y, gfx.Scale(colorParticle, p.Opacity))
	}

	dst.Text(cx, levelTextY, gfx.AnchorTopCenter, fmt.Sprintf("%.2f", level), colorLevel)
	dst.Text(cx, labelTextY, gfx.AnchorBottomCenter, state.String(), colorLabel)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
