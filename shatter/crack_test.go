package shatter

import (
	"math"
	"testing"
)

func testCrackField(branch float64) *CrackField {
	cfg := DefaultConfig()
	cfg.BranchProbability = branch
	return newCrackField(cfg, newRNG(7))
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCrackSeedLengthShrinksWithGeneration(t *testing.T) {
	f := testCrackField(0)
	origin := Point{X: 100, Y: 100}
	for gen := 0; gen <= 3; gen++ {
		f.Seed(origin, 0, gen)
	}
	if f.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", f.Len())
	}
	for i, c := range f.Cracks() {
		want := 60 / float64(i+1)
		if c.Gen != i {
			t.Fatalf("crack %d Gen = %d, want %d", i, c.Gen, i)
		}
		if !near(c.End.X-c.Start.X, want) || !near(c.End.Y, c.Start.Y) {
			t.Fatalf("crack %d spans %+v -> %+v, want length %v along +x", i, c.Start, c.End, want)
		}
	}
}

func TestCrackSeedRespectsDepth(t *testing.T) {
	f := testCrackField(1)
	f.Seed(Point{X: 120, Y: 120}, 0, 0)

	// Always branching yields a full binary tree down to generation 3.
	if f.Len() != 15 {
		t.Fatalf("Len() = %d, want 15", f.Len())
	}
	perGen := map[int]int{}
	for _, c := range f.Cracks() {
		perGen[c.Gen]++
	}
	for gen, want := range map[int]int{0: 1, 1: 2, 2: 4, 3: 8} {
		if perGen[gen] != want {
			t.Fatalf("generation %d count = %d, want %d", gen, perGen[gen], want)
		}
	}

	f.Seed(Point{}, 0, 4)
	if f.Len() != 15 {
		t.Fatalf("Seed past max generation appended a crack")
	}
}

func TestCrackFieldCapacity(t *testing.T) {
	f := testCrackField(1)
	for i := 0; i < 100; i++ {
		f.Seed(Point{X: 120, Y: 120}, float64(i), 0)
		f.GrowExisting()
		if f.Len() > f.Cap() {
			t.Fatalf("Len() = %d exceeds capacity %d", f.Len(), f.Cap())
		}
	}
	if !f.Full() {
		t.Fatalf("expected field to be full, Len() = %d", f.Len())
	}
	for _, c := range f.Cracks() {
		if c.Gen < 0 || c.Gen > 3 {
			t.Fatalf("crack generation %d out of [0,3]", c.Gen)
		}
	}

	f.Clear()
	if f.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", f.Len())
	}
}

func TestCrackGrowExistingFromMidpoint(t *testing.T) {
	f := testCrackField(0)
	f.GrowExisting()
	if f.Len() != 0 {
		t.Fatal("GrowExisting on empty field appended a crack")
	}

	f.Seed(Point{X: 120, Y: 120}, 0, 0)
	f.GrowExisting()
	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	child := f.Cracks()[1]
	if child.Gen != 1 {
		t.Fatalf("child Gen = %d, want 1", child.Gen)
	}
	if !near(child.Start.X, 150) || !near(child.Start.Y, 120) {
		t.Fatalf("child starts at %+v, want midpoint {150 120}", child.Start)
	}
	if d := child.direction(); math.Abs(d) > growJitter+1e-9 {
		t.Fatalf("child direction %v deviates more than %v from parent", d, growJitter)
	}
}

func TestCrackGrowExistingSkipsDeepestGeneration(t *testing.T) {
	f := testCrackField(0)
	f.Seed(Point{X: 120, Y: 120}, 0, 3)
	for i := 0; i < 10; i++ {
		f.GrowExisting()
	}
	if f.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", f.Len())
	}
}
