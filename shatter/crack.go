package shatter

import "math"

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Crack is one immutable segment of a fracture tree.
type Crack struct {
	Start Point
	End   Point
	Gen   int
}

func (c Crack) midpoint() Point {
	return Point{X: (c.Start.X + c.End.X) / 2, Y: (c.Start.Y + c.End.Y) / 2}
}

func (c Crack) direction() float64 {
	return math.Atan2(c.End.Y-c.Start.Y, c.End.X-c.Start.X)
}

const (
	branchMinAngle = math.Pi / 6 // 30°
	branchMaxAngle = math.Pi / 2 // 90°
	growJitter     = 1.57
)

// CrackField is an append-only, bounded set of cracks. Once full it stops
// accepting segments until Clear.
type CrackField struct {
	cracks []Crack

	capacity   int
	maxGen     int
	baseLength float64
	branchProb float64

	r *rng
}

func newCrackField(cfg Config, r *rng) *CrackField {
	return &CrackField{
		cracks:     make([]Crack, 0, cfg.CrackCapacity),
		capacity:   cfg.CrackCapacity,
		maxGen:     cfg.MaxGeneration,
		baseLength: cfg.CrackBaseLength,
		branchProb: cfg.BranchProbability,
		r:          r,
	}
}

func (f *CrackField) Len() int        { return len(f.cracks) }
func (f *CrackField) Cap() int        { return f.capacity }
func (f *CrackField) Full() bool      { return len(f.cracks) >= f.capacity }
func (f *CrackField) Cracks() []Crack { return f.cracks }

func (f *CrackField) Clear() { f.cracks = f.cracks[:0] }

// Seed grows a crack from origin and, with the branch probability, two child
// cracks from its end. Capacity and depth are checked on every call.
func (f *CrackField) Seed(origin Point, angle float64, gen int) {
	if f.Full() || gen < 0 || gen > f.maxGen {
		return
	}
	length := f.baseLength / float64(gen+1)
	end := Point{
		X: origin.X + math.Cos(angle)*length,
		Y: origin.Y + math.Sin(angle)*length,
	}
	f.cracks = append(f.cracks, Crack{Start: origin, End: end, Gen: gen})

	if f.r.float() >= f.branchProb {
		return
	}
	left := angle - f.r.rangeF(branchMinAngle, branchMaxAngle)
	right := angle + f.r.rangeF(branchMinAngle, branchMaxAngle)
	f.Seed(end, left, gen+1)
	f.Seed(end, right, gen+1)
}

// GrowExisting splits a random crack: a child sprouts from its midpoint,
// roughly following the parent's direction.
func (f *CrackField) GrowExisting() {
	if f.Full() || len(f.cracks) == 0 {
		return
	}
	parent := f.cracks[f.r.intn(len(f.cracks))]
	if parent.Gen >= f.maxGen {
		return
	}
	angle := parent.direction() + f.r.rangeF(-growJitter, growJitter)
	f.Seed(parent.midpoint(), angle, parent.Gen+1)
}
