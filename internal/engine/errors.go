package engine

import "errors"

var (
	// ErrInvalidDirection is returned when a move names no known direction.
	ErrInvalidDirection = errors.New("engine: invalid direction")

	// ErrInvalidConfig is returned when an engine cannot be built or restored
	// from the given parameters (board size, distribution, saved grid).
	ErrInvalidConfig = errors.New("engine: invalid configuration")
)
