package engine

import (
	"math"
	"math/rand"
	"testing"
)

// fixedSource always yields the same Int63, pinning Float64 to v/2^63.
type fixedSource struct{ v int64 }

func (s fixedSource) Int63() int64 { return s.v }
func (fixedSource) Seed(int64)     {}

func TestPickValueFrequency(t *testing.T) {
	gen := NewTileGenerator(rand.New(rand.NewSource(2048)), DefaultDistribution())

	const draws = 100000
	fours := 0
	for range draws {
		switch v := gen.PickValue(); v {
		case 4:
			fours++
		case 2:
		default:
			t.Fatalf("PickValue() = %d, want 2 or 4", v)
		}
	}

	freq := float64(fours) / draws
	if math.Abs(freq-0.1) > 0.01 {
		t.Errorf("frequency of 4 = %.4f, want 0.10 +/- 0.01", freq)
	}
}

func TestPickValueBoundaryUsesEnumerationOrder(t *testing.T) {
	// Float64 = 0.5 lands exactly on the boundary between the two entries.
	rng := rand.New(fixedSource{v: 1 << 62})
	gen := NewTileGenerator(rng, Distribution{
		{Value: 8, Weight: 1},
		{Value: 16, Weight: 1},
	})

	if got := gen.PickValue(); got != 8 {
		t.Errorf("PickValue() at boundary = %d, want first entry 8", got)
	}
}

func TestPickValueFallsBackToFirstValue(t *testing.T) {
	// Float64 = 1-2^-53. Subtracting 0.1, 0.2 and 0.08 one by one from
	// 0.38*Float64 leaves about 1.4e-17, so no entry brings r to zero.
	rng := rand.New(fixedSource{v: 1<<63 - 1024})
	gen := NewTileGenerator(rng, Distribution{
		{Value: 8, Weight: 0.1},
		{Value: 16, Weight: 0.2},
		{Value: 32, Weight: 0.08},
	})

	if got := gen.PickValue(); got != 8 {
		t.Errorf("PickValue() past the last entry = %d, want first entry 8", got)
	}
}

func TestPickValueSingleEntry(t *testing.T) {
	gen := NewTileGenerator(rand.New(rand.NewSource(1)), Distribution{{Value: 32, Weight: 3}})
	for range 100 {
		if got := gen.PickValue(); got != 32 {
			t.Fatalf("PickValue() = %d, want 32", got)
		}
	}
}

func TestPickEmptyCellUniform(t *testing.T) {
	gen := NewTileGenerator(rand.New(rand.NewSource(4)), DefaultDistribution())
	g := Grid{
		{2, 0, 4},
		{8, 16, 0},
		{0, 32, 64},
	}

	const draws = 30000
	counts := make(map[Coord]int)
	for range draws {
		c, ok := gen.PickEmptyCell(g)
		if !ok {
			t.Fatal("PickEmptyCell() reported a full grid")
		}
		if g.At(c) != 0 {
			t.Fatalf("PickEmptyCell() = %v, which is occupied", c)
		}
		counts[c]++
	}

	if len(counts) != 3 {
		t.Fatalf("picked %d distinct cells, want 3", len(counts))
	}
	for c, n := range counts {
		if freq := float64(n) / draws; math.Abs(freq-1.0/3) > 0.02 {
			t.Errorf("cell %v picked with frequency %.3f, want ~0.333", c, freq)
		}
	}
}

func TestPickEmptyCellFullGrid(t *testing.T) {
	gen := NewTileGenerator(rand.New(rand.NewSource(4)), DefaultDistribution())
	g := Grid{{2, 4}, {8, 16}}

	if _, ok := gen.PickEmptyCell(g); ok {
		t.Error("PickEmptyCell() on full grid should report false")
	}
	if _, ok := gen.Place(g); ok {
		t.Error("Place() on full grid should report false")
	}
}

func TestEmptyCellsRowMajor(t *testing.T) {
	g := Grid{
		{0, 2},
		{0, 0},
	}
	want := []Coord{{0, 0}, {1, 0}, {1, 1}}

	got := g.EmptyCells()
	if len(got) != len(want) {
		t.Fatalf("EmptyCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EmptyCells()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
