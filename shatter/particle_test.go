package shatter

import "testing"

func testParticleField() *ParticleField {
	cfg := DefaultConfig()
	return newParticleField(cfg, Point{X: 120, Y: 120}, newRNG(3))
}

func TestSpawnBatchRespectsCapacity(t *testing.T) {
	f := testParticleField()
	for i, want := range []int{50, 50, 50, 0} {
		if got := f.SpawnBatch(50, 20); got != want {
			t.Fatalf("SpawnBatch #%d = %d, want %d", i, got, want)
		}
	}
	if f.Len() != 150 {
		t.Fatalf("Len() = %d, want 150", f.Len())
	}
}

func TestSpawnBatchPlacement(t *testing.T) {
	f := testParticleField()
	f.SpawnBatch(50, 20)
	for i, p := range f.Particles() {
		dx, dy := p.Pos.X-120, p.Pos.Y-120
		if dx*dx+dy*dy > 20*20+1e-9 {
			t.Fatalf("particle %d spawned at %+v, outside origin radius", i, p.Pos)
		}
		speed2 := p.Vel.X*p.Vel.X + p.Vel.Y*p.Vel.Y
		if speed2 < 1-1e-9 || speed2 > 16+1e-9 {
			t.Fatalf("particle %d speed^2 = %v, want within [1,16]", i, speed2)
		}
		if p.Opacity != 1 {
			t.Fatalf("particle %d opacity = %v, want 1", i, p.Opacity)
		}
	}
}

func TestParticleFadesAndIsRemovedOnce(t *testing.T) {
	f := testParticleField()
	f.SpawnBatch(1, 0)

	prev := f.Particles()[0].Opacity
	ticks := 0
	for f.Len() > 0 {
		f.Tick()
		ticks++
		if f.Len() > 0 {
			op := f.Particles()[0].Opacity
			if op > prev {
				t.Fatalf("opacity rose from %v to %v at tick %d", prev, op, ticks)
			}
			if op < 0.05 {
				t.Fatalf("particle with opacity %v survived tick %d", op, ticks)
			}
			prev = op
		}
		if ticks > 1000 {
			t.Fatal("particle never faded")
		}
	}
	// 0.95^58 > 0.05 > 0.95^59.
	if ticks != 59 {
		t.Fatalf("particle removed after %d ticks, want 59", ticks)
	}
	f.Tick()
	if f.Len() != 0 {
		t.Fatalf("Len() = %d after removal, want 0", f.Len())
	}
}

func TestParticleTickVisitsSurvivorsOnce(t *testing.T) {
	f := testParticleField()
	for i := 0; i < 10; i++ {
		op := 1.0
		if i%2 == 0 {
			op = 0.051 // drops below the threshold on this tick
		}
		f.parts = append(f.parts, Particle{
			Pos:     Point{X: float64(i), Y: 0},
			Vel:     Point{X: 1, Y: 0},
			Opacity: op,
		})
	}

	f.Tick()

	if f.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", f.Len())
	}
	for i, p := range f.Particles() {
		wantX := float64(2*i+1) + 1
		if p.Pos.X != wantX {
			t.Fatalf("survivor %d at x=%v, want %v", i, p.Pos.X, wantX)
		}
		if p.Opacity != 0.95 {
			t.Fatalf("survivor %d opacity = %v, want 0.95", i, p.Opacity)
		}
		if p.Vel.Y != 0.15*0.98 {
			t.Fatalf("survivor %d vy = %v, want %v", i, p.Vel.Y, 0.15*0.98)
		}
	}
}
