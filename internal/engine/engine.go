package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Engine owns a grid and score and applies moves to them.
type Engine struct {
	size  int
	grid  Grid
	score int
	moves int
	gen   *TileGenerator
}

type options struct {
	rng  *rand.Rand
	dist Distribution
}

// Option configures a new Engine.
type Option func(*options)

// WithSeed seeds a private PRNG for reproducible games.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an existing PRNG with the engine.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithDistribution overrides the spawn distribution.
func WithDistribution(d Distribution) Option {
	return func(o *options) {
		o.dist = d
	}
}

// New creates an engine with an empty size×size grid and zero score.
// Call Reset to start a game.
func New(size int, opts ...Option) (*Engine, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: board size %d", ErrInvalidConfig, size)
	}

	o := options{dist: DefaultDistribution()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.dist.Validate(); err != nil {
		return nil, err
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{
		size: size,
		grid: NewGrid(size),
		gen:  NewTileGenerator(o.rng, o.dist),
	}, nil
}

// Reset clears the board and score, then spawns the two opening tiles.
func (e *Engine) Reset() []Spawn {
	e.grid = NewGrid(e.size)
	e.score = 0
	e.moves = 0

	var spawned []Spawn
	for range 2 {
		s, ok := e.gen.Place(e.grid)
		if !ok {
			break
		}
		spawned = append(spawned, s)
	}
	return spawned
}

// Restore replaces the board and score with a saved position.
func (e *Engine) Restore(g Grid, score int) error {
	if err := g.validate(e.size); err != nil {
		return err
	}
	if score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidConfig, score)
	}
	e.grid = g.Clone()
	e.score = score
	e.moves = 0
	return nil
}

// ApplyMove slides every line toward dir, merging equal tiles once, and
// spawns a tile if anything moved.
func (e *Engine) ApplyMove(dir Direction) (MoveResult, error) {
	if !dir.Valid() {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	result := MoveResult{Direction: dir}
	for i := range e.size {
		ts, gained := compactLine(e.grid, dir.line(i, e.size))
		result.Transitions = append(result.Transitions, ts...)
		result.ScoreDelta += gained
	}

	result.Changed = len(result.Transitions) > 0
	if !result.Changed {
		return result, nil
	}

	e.score += result.ScoreDelta
	e.moves++
	if s, ok := e.gen.Place(e.grid); ok {
		result.Spawned = &s
	}
	return result, nil
}

// compactLine runs the cursor pass over one line, mutating g in place.
// cells is ordered from the leading edge to the trailing edge.
func compactLine(g Grid, cells []Coord) ([]Transition, int) {
	var (
		transitions []Transition
		gained      int
	)

	cursor := 0
	for i := 1; i < len(cells); i++ {
		v := g.At(cells[i])
		if v == 0 {
			continue
		}

		for cursor < i {
			target := g.At(cells[cursor])
			if target == 0 {
				g.Set(cells[cursor], v)
				g.Set(cells[i], 0)
				transitions = append(transitions, Transition{
					Kind:  Slide,
					From:  cells[i],
					To:    cells[cursor],
					Value: v,
				})
				// cursor stays: a later tile may still merge into it
				break
			}
			if target == v {
				merged := v * 2
				g.Set(cells[cursor], merged)
				g.Set(cells[i], 0)
				transitions = append(transitions, Transition{
					Kind:    Merge,
					From:    cells[cursor],
					Partner: cells[i],
					To:      cells[cursor],
					Value:   merged,
				})
				gained += merged
				cursor++
				break
			}
			cursor++
		}
	}
	return transitions, gained
}

// HasAnyValidMove reports whether some direction would change the grid.
func (e *Engine) HasAnyValidMove() bool {
	for _, dir := range Directions {
		probe := e.grid.Clone()
		for i := range e.size {
			if ts, _ := compactLine(probe, dir.line(i, e.size)); len(ts) > 0 {
				return true
			}
		}
	}
	return false
}

// Grid returns a copy of the current board.
func (e *Engine) Grid() Grid {
	return e.grid.Clone()
}

// Score returns the cumulative score.
func (e *Engine) Score() int {
	return e.score
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.size
}

// Moves returns how many changing moves were applied since Reset.
func (e *Engine) Moves() int {
	return e.moves
}

// MaxTile returns the highest tile on the board.
func (e *Engine) MaxTile() int {
	return e.grid.MaxTile()
}

// EmptyCount returns the number of empty cells.
func (e *Engine) EmptyCount() int {
	return e.size*e.size - e.grid.TileCount()
}

// Generator exposes the engine's tile generator.
func (e *Engine) Generator() *TileGenerator {
	return e.gen
}
