package engine

import (
	"fmt"
	"math"
	"math/rand"
)

// Weight is one entry of a spawn distribution.
type Weight struct {
	Value  int
	Weight float64
}

// Distribution maps tile values to relative spawn weights. Entry order is
// significant: it breaks ties and supplies the fallback value.
type Distribution []Weight

// DefaultDistribution spawns a 2 nine times out of ten and a 4 otherwise.
func DefaultDistribution() Distribution {
	return Distribution{
		{Value: 2, Weight: 0.9},
		{Value: 4, Weight: 0.1},
	}
}

// Total returns the sum of all weights.
func (d Distribution) Total() float64 {
	total := 0.0
	for _, w := range d {
		total += w.Weight
	}
	return total
}

// Validate checks the distribution is non-empty with positive finite
// weights on power-of-two values.
func (d Distribution) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: empty spawn distribution", ErrInvalidConfig)
	}
	for _, w := range d {
		if !IsPowerOfTwo(w.Value) {
			return fmt.Errorf("%w: spawn value %d is not a power of two", ErrInvalidConfig, w.Value)
		}
		if w.Weight <= 0 || math.IsNaN(w.Weight) || math.IsInf(w.Weight, 0) {
			return fmt.Errorf("%w: spawn weight %v for value %d", ErrInvalidConfig, w.Weight, w.Value)
		}
	}
	return nil
}

// TileGenerator picks spawn cells and values from a shared PRNG.
type TileGenerator struct {
	rng  *rand.Rand
	dist Distribution
}

// NewTileGenerator returns a generator drawing from rng.
func NewTileGenerator(rng *rand.Rand, dist Distribution) *TileGenerator {
	return &TileGenerator{rng: rng, dist: dist}
}

// Distribution returns the generator's spawn distribution.
func (tg *TileGenerator) Distribution() Distribution {
	return tg.dist
}

// PickValue samples the distribution by cumulative-weight inversion.
func (tg *TileGenerator) PickValue() int {
	r := tg.rng.Float64() * tg.dist.Total()
	for _, w := range tg.dist {
		r -= w.Weight
		if r <= 0 {
			return w.Value
		}
	}
	// float rounding left r marginally above zero
	return tg.dist[0].Value
}

// PickEmptyCell chooses an empty cell uniformly. It reports false when the
// grid is full.
func (tg *TileGenerator) PickEmptyCell(g Grid) (Coord, bool) {
	cells := g.EmptyCells()
	if len(cells) == 0 {
		return Coord{}, false
	}
	return cells[tg.rng.Intn(len(cells))], true
}

// Place spawns one tile into g.
func (tg *TileGenerator) Place(g Grid) (Spawn, bool) {
	at, ok := tg.PickEmptyCell(g)
	if !ok {
		return Spawn{}, false
	}
	s := Spawn{At: at, Value: tg.PickValue()}
	g.Set(at, s.Value)
	return s, true
}
