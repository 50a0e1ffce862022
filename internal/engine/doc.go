// Package engine implements the sliding-tile merge mechanic of 2048.
//
// An Engine owns an N×N grid and a score. ApplyMove compacts every line
// toward the leading edge of the chosen direction, merges equal neighbours
// at most once per destination cell, and spawns one weighted-random tile
// after any move that changed the grid. Each move reports the slides and
// merges it performed as Transitions so a presentation layer can animate
// them without inspecting the grid itself.
//
// The package performs no I/O and is not safe for concurrent use: callers
// serialize moves against a single Engine.
package engine
