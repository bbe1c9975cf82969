// Package core provides the grid value types the snake moves on, plus the
// screen and input primitives shared with the terminal platform. It has no
// external dependencies so game logic stays pure and testable.
package core

import (
	"fmt"
	"math"
)

// Coord addresses a single grid cell. X is the column index, Y the row index.
// Coordinates are unsigned; leaving the field on the low side is reported by
// Step rather than represented as a negative value.
type Coord struct {
	X, Y uint64
}

// NewCoord creates a coordinate at column x, row y.
func NewCoord(x, y uint64) Coord {
	return Coord{X: x, Y: y}
}

// Step returns the coordinate one cell away in direction d.
// ok is false when the step would decrement an axis below zero; the returned
// coordinate is then the unchanged receiver.
func (c Coord) Step(d Direction) (next Coord, ok bool) {
	dx, dy := d.Delta()

	x, ok := offset(c.X, dx)
	if !ok {
		return c, false
	}
	y, ok := offset(c.Y, dy)
	if !ok {
		return c, false
	}
	return Coord{X: x, Y: y}, true
}

// offset applies a unit delta to v without wrapping.
func offset(v uint64, delta int) (uint64, bool) {
	switch {
	case delta < 0:
		if v == 0 {
			return v, false
		}
		return v - 1, true
	case delta > 0:
		if v == math.MaxUint64 {
			return v, false
		}
		return v + 1, true
	default:
		return v, true
	}
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
