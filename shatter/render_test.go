package shatter

import (
	"image/color"
	"testing"

	"glassdial/gfx"
)

type textOp struct {
	x, y   int
	anchor gfx.Anchor
	s      string
}

type recordingSurface struct {
	w, h    int
	clears  int
	circles []color.RGBA
	lines   []color.RGBA
	pixels  int
	texts   []textOp
}

func (r *recordingSurface) Size() (int, int)           { return r.w, r.h }
func (r *recordingSurface) Clear(color.RGBA)           { r.clears++ }
func (r *recordingSurface) Pixel(int, int, color.RGBA) { r.pixels++ }

func (r *recordingSurface) FillCircle(_, _, _ int, c color.RGBA) {
	r.circles = append(r.circles, c)
}

func (r *recordingSurface) Line(_, _, _, _ int, c color.RGBA) {
	r.lines = append(r.lines, c)
}

func (r *recordingSurface) Text(x, y int, a gfx.Anchor, s string, _ color.RGBA) {
	r.texts = append(r.texts, textOp{x: x, y: y, anchor: a, s: s})
}

func render(s *Scene) *recordingSurface {
	dst := &recordingSurface{w: 240, h: 240}
	s.Render(dst)
	return dst
}

func TestRenderRest(t *testing.T) {
	h := newHarness(t, nil)
	dst := render(h.s)

	if dst.clears != 1 {
		t.Fatalf("clears = %d, want 1", dst.clears)
	}
	if len(dst.circles) != 0 {
		t.Fatalf("REST drew %d tint discs, want 0", len(dst.circles))
	}
	if len(dst.texts) != 2 {
		t.Fatalf("texts = %+v, want level and label", dst.texts)
	}
	if got := dst.texts[0]; got.s != "0.00" || got.anchor != gfx.AnchorTopCenter {
		t.Fatalf("level text = %+v, want top-centred 0.00", got)
	}
	if got := dst.texts[1]; got.s != "REST" || got.anchor != gfx.AnchorBottomCenter {
		t.Fatalf("label text = %+v, want bottom-centred REST", got)
	}
}

func TestRenderCrackColors(t *testing.T) {
	h := newHarness(t, nil)
	h.step(15)
	dst := render(h.s)
	if len(dst.circles) != 1 {
		t.Fatalf("CRACKING drew %d tint discs, want 1", len(dst.circles))
	}
	if len(dst.lines) != h.s.Cracks().Len() {
		t.Fatalf("lines = %d, want one per crack (%d)", len(dst.lines), h.s.Cracks().Len())
	}
	for _, c := range dst.lines {
		if c != colorCrack {
			t.Fatalf("crack color = %v, want bright %v", c, colorCrack)
		}
	}
	if dst.texts[0].s != "0.15" || dst.texts[1].s != "CRACKING" {
		t.Fatalf("texts = %+v", dst.texts)
	}

	h.step(70)
	dst = render(h.s)
	if h.s.State() != StateSilent {
		t.Fatalf("State() = %s, want SILENT", h.s.State())
	}
	for _, c := range dst.lines {
		if c != colorCrackMuted {
			t.Fatalf("SILENT crack color = %v, want muted %v", c, colorCrackMuted)
		}
	}
}

func TestRenderClipsParticles(t *testing.T) {
	h := newHarness(t, nil)
	h.step(70) // SHATTERING without seeding, no glints
	h.s.particles.parts = append(h.s.particles.parts,
		Particle{Pos: Point{X: 10, Y: 10}, Opacity: 1},
		Particle{Pos: Point{X: -3, Y: 10}, Opacity: 1},
		Particle{Pos: Point{X: 10, Y: 240.2}, Opacity: 1},
		Particle{Pos: Point{X: 239.4, Y: 239.4}, Opacity: 0.5},
	)
	dst := render(h.s)
	if dst.pixels != 2 {
		t.Fatalf("pixels = %d, want 2 in-bounds particles", dst.pixels)
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	h := newHarness(t, nil)
	h.step(15)
	h.step(50)

	level, state := h.s.Level(), h.s.State()
	nc, np := h.s.Cracks().Len(), h.s.Particles().Len()
	first := h.s.Particles().Particles()[0]

	render(h.s)
	render(h.s)

	if h.s.Level() != level || h.s.State() != state {
		t.Fatalf("render changed level/state to %v/%s", h.s.Level(), h.s.State())
	}
	if h.s.Cracks().Len() != nc || h.s.Particles().Len() != np {
		t.Fatal("render changed collection sizes")
	}
	if h.s.Particles().Particles()[0] != first {
		t.Fatal("render moved a particle")
	}
}

func TestBlendTintGrowsWithLevel(t *testing.T) {
	tint, _ := tintFor(StateShattering)
	lo := blendTint(tint, 0)
	hi := blendTint(tint, 1)
	if hi != tint {
		t.Fatalf("blendTint at level 1 = %v, want %v", hi, tint)
	}
	if lo.R >= hi.R {
		t.Fatalf("blendTint at level 0 = %v, want dimmer than %v", lo, hi)
	}
}

func TestGlintFieldStaysOnDisc(t *testing.T) {
	cfg := DefaultConfig()
	center := Point{X: 120, Y: 120}
	pts := glintField(cfg, center)
	if len(pts) > cfg.Glints {
		t.Fatalf("len = %d, want <= %d", len(pts), cfg.Glints)
	}
	for _, p := range pts {
		dx, dy := p.X-center.X, p.Y-center.Y
		if dx*dx+dy*dy > float64(cfg.DiscRadius*cfg.DiscRadius) {
			t.Fatalf("glint %+v outside the disc", p)
		}
	}
	again := glintField(cfg, center)
	if len(again) != len(pts) {
		t.Fatal("glint field is not deterministic")
	}
}
