package engine

import (
	"fmt"
	"strings"
)

// Direction is a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every valid direction in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "left" or "L" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// line returns the coordinates of line i ordered from the leading edge
// (where tiles end up) to the trailing edge.
func (d Direction) line(i, size int) []Coord {
	cells := make([]Coord, size)
	for k := range size {
		switch d {
		case Left:
			cells[k] = Coord{Row: i, Col: k}
		case Right:
			cells[k] = Coord{Row: i, Col: size - 1 - k}
		case Up:
			cells[k] = Coord{Row: k, Col: i}
		case Down:
			cells[k] = Coord{Row: size - 1 - k, Col: i}
		}
	}
	return cells
}
