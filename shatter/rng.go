package shatter

import "math"

// rng is a xorshift32 generator. Scenes seed it explicitly so runs replay.
type rng struct {
	s uint32
}

func newRNG(seed uint32) *rng {
	if seed == 0 {
		seed = 0x6d2b79f5
	}
	return &rng{s: seed}
}

func (r *rng) next() uint32 {
	x := r.s
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.s = x
	return x
}

// float returns a value in [0, 1).
func (r *rng) float() float64 {
	return float64(r.next()>>8) / float64(1<<24)
}

func (r *rng) rangeF(lo, hi float64) float64 {
	return lo + (hi-lo)*r.float()
}

func (r *rng) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint32(n))
}

func (r *rng) angle() float64 {
	return r.rangeF(0, 2*math.Pi)
}
