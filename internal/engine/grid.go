package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSize is the classic board dimension.
const DefaultSize = 4

// Coord addresses a single cell.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a square matrix of tile values. Zero marks an empty cell.
type Grid [][]int

// NewGrid returns an empty size×size grid.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]int, size)
	}
	return g
}

// Size returns the grid dimension.
func (g Grid) Size() int {
	return len(g)
}

// At returns the value at c.
func (g Grid) At(c Coord) int {
	return g[c.Row][c.Col]
}

// Set stores v at c.
func (g Grid) Set(c Coord, v int) {
	g[c.Row][c.Col] = v
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = append([]int(nil), g[r]...)
	}
	return out
}

// Equal reports whether both grids hold the same values.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns every empty cell in row-major order.
func (g Grid) EmptyCells() []Coord {
	var cells []Coord
	for r := range g {
		for c := range g[r] {
			if g[r][c] == 0 {
				cells = append(cells, Coord{Row: r, Col: c})
			}
		}
	}
	return cells
}

// TileCount returns the number of occupied cells.
func (g Grid) TileCount() int {
	n := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the highest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// String renders the grid with "." for empty cells, one row per line.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g[r] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if g[r][c] == 0 {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strconv.Itoa(g[r][c]))
		}
	}
	return sb.String()
}

// validate checks that g is size×size and every tile is a power of two.
func (g Grid) validate(size int) error {
	if len(g) != size {
		return fmt.Errorf("%w: grid has %d rows, want %d", ErrInvalidConfig, len(g), size)
	}
	for r := range g {
		if len(g[r]) != size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfig, r, len(g[r]), size)
		}
		for c, v := range g[r] {
			if v != 0 && !IsPowerOfTwo(v) {
				return fmt.Errorf("%w: tile %d at %v is not a power of two", ErrInvalidConfig, v, Coord{r, c})
			}
		}
	}
	return nil
}

// IsPowerOfTwo reports whether v is a tile value (2, 4, 8, ...).
func IsPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
