package shatter

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

const (
	glintStep      = 6
	glintScale     = 0.045
	glintThreshold = 0.72
)

// glintField picks static highlight points on the intact glass. Points come
// from the peaks of a simplex noise field, so a seed always yields the same
// sheen.
func glintField(cfg Config, center Point) []Point {
	if cfg.Glints <= 0 || cfg.DiscRadius <= 0 {
		return nil
	}
	noise := opensimplex.NewNormalized(int64(cfg.Seed))
	r := float64(cfg.DiscRadius - 4)
	out := make([]Point, 0, cfg.Glints)
	for y := 0; y < cfg.Height; y += glintStep {
		for x := 0; x < cfg.Width; x += glintStep {
			px, py := float64(x), float64(y)
			if math.Hypot(px-center.X, py-center.Y) > r {
				continue
			}
			if noise.Eval2(px*glintScale, py*glintScale) < glintThreshold {
				continue
			}
			out = append(out, Point{X: px, Y: py})
			if len(out) == cfg.Glints {
				return out
			}
		}
	}
	return out
}
