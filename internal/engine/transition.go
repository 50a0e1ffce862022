package engine

import "fmt"

// TransitionKind distinguishes slides from merges.
type TransitionKind int

const (
	Slide TransitionKind = iota
	Merge
)

func (k TransitionKind) String() string {
	if k == Merge {
		return "merge"
	}
	return "slide"
}

// Transition records one step of a move, in the order it was applied.
//
// For a Slide, the tile at From moved to the empty cell To keeping Value.
// For a Merge, the tile at Partner joined the equal tile at From and the
// doubled Value now sits at To (which equals From).
type Transition struct {
	Kind    TransitionKind
	From    Coord
	Partner Coord
	To      Coord
	Value   int
}

func (t Transition) String() string {
	if t.Kind == Merge {
		return fmt.Sprintf("merge %v+%v->%v =%d", t.From, t.Partner, t.To, t.Value)
	}
	return fmt.Sprintf("slide %v->%v =%d", t.From, t.To, t.Value)
}

// Spawn describes a tile placed by the generator.
type Spawn struct {
	At    Coord
	Value int
}

// MoveResult is returned by ApplyMove.
type MoveResult struct {
	Direction   Direction
	Transitions []Transition
	ScoreDelta  int
	Changed     bool
	Spawned     *Spawn // nil when the move changed nothing or the grid was full
}

// Merges returns how many merges the move performed.
func (r MoveResult) Merges() int {
	n := 0
	for _, t := range r.Transitions {
		if t.Kind == Merge {
			n++
		}
	}
	return n
}

// TilePath is the net movement of one pre-move tile.
type TilePath struct {
	From   Coord // position before the move
	To     Coord // position after the move
	Value  int   // value before the move
	Merged bool  // the tile ended the move as part of a merge
}

// TilePaths folds a transition list into one path per tile that moved or
// merged. A tile that slid into a cell and then absorbed a merge keeps its
// original starting position.
func TilePaths(transitions []Transition) []TilePath {
	var paths []TilePath
	index := make(map[Coord]int) // current position -> index into paths

	track := func(at Coord, value int) int {
		if i, ok := index[at]; ok {
			return i
		}
		paths = append(paths, TilePath{From: at, To: at, Value: value})
		index[at] = len(paths) - 1
		return len(paths) - 1
	}

	for _, t := range transitions {
		switch t.Kind {
		case Slide:
			i := track(t.From, t.Value)
			delete(index, t.From)
			paths[i].To = t.To
			index[t.To] = i
		case Merge:
			half := t.Value / 2
			i := track(t.From, half)
			paths[i].To = t.To
			paths[i].Merged = true
			j := track(t.Partner, half)
			delete(index, t.Partner)
			paths[j].To = t.To
			paths[j].Merged = true
			// the merged cell never takes part in another transition
			delete(index, t.From)
		}
	}
	return paths
}
