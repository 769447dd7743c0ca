package shatter

import "math"

// Particle is a fragment of glass in flight.
type Particle struct {
	Pos     Point
	Vel     Point
	Opacity float64
}

// ParticleField is a bounded particle pool integrated once per frame.
type ParticleField struct {
	parts []Particle

	capacity   int
	center     Point
	speedMin   float64
	speedMax   float64
	gravity    float64
	damping    float64
	decay      float64
	visibility float64

	r *rng
}

func newParticleField(cfg Config, center Point, r *rng) *ParticleField {
	return &ParticleField{
		parts:      make([]Particle, 0, cfg.ParticleCapacity),
		capacity:   cfg.ParticleCapacity,
		center:     center,
		speedMin:   cfg.ParticleSpeedMin,
		speedMax:   cfg.ParticleSpeedMax,
		gravity:    cfg.Gravity,
		damping:    cfg.Damping,
		decay:      cfg.OpacityDecay,
		visibility: cfg.VisibilityThreshold,
		r:          r,
	}
}

func (f *ParticleField) Len() int              { return len(f.parts) }
func (f *ParticleField) Cap() int              { return f.capacity }
func (f *ParticleField) Particles() []Particle { return f.parts }

func (f *ParticleField) Clear() { f.parts = f.parts[:0] }

// SpawnBatch adds up to count particles around the centre, limited by the
// remaining capacity. It returns how many were created.
func (f *ParticleField) SpawnBatch(count int, originRadius float64) int {
	room := f.capacity - len(f.parts)
	if count > room {
		count = room
	}
	if count <= 0 {
		return 0
	}
	if originRadius < 0 {
		originRadius = 0
	}
	for i := 0; i < count; i++ {
		heading := f.r.angle()
		speed := f.r.rangeF(f.speedMin, f.speedMax)
		offAngle := f.r.angle()
		// sqrt keeps the offsets uniform over the disc area.
		offR := originRadius * math.Sqrt(f.r.float())
		f.parts = append(f.parts, Particle{
			Pos: Point{
				X: f.center.X + math.Cos(offAngle)*offR,
				Y: f.center.Y + math.Sin(offAngle)*offR,
			},
			Vel: Point{
				X: math.Cos(heading) * speed,
				Y: math.Sin(heading) * speed,
			},
			Opacity: 1,
		})
	}
	return count
}

// Tick integrates every particle once and drops the ones that faded out.
// Survivors are compacted in place, so each one is visited exactly once.
func (f *ParticleField) Tick() {
	kept := f.parts[:0]
	for _, p := range f.parts {
		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		p.Vel.Y += f.gravity
		p.Vel.X *= f.damping
		p.Vel.Y *= f.damping
		p.Opacity *= f.decay
		if p.Opacity < f.visibility {
			continue
		}
		kept = append(kept, p)
	}
	// Zero the tail left behind by removals.
	for i := len(kept); i < len(f.parts); i++ {
		f.parts[i] = Particle{}
	}
	f.parts = kept
}
