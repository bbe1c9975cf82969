package core

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a field or game setting cannot
// describe a playable snake (for example a zero-extent field).
var ErrInvalidConfiguration = errors.New("invalid configuration")

// FieldSize describes the playable grid: Rows cells tall, Cols cells wide.
type FieldSize struct {
	Rows, Cols uint64
}

// NewFieldSize creates a field descriptor.
// Both extents must be at least 1.
func NewFieldSize(rows, cols uint64) (FieldSize, error) {
	fs := FieldSize{Rows: rows, Cols: cols}
	if err := fs.Validate(); err != nil {
		return FieldSize{}, err
	}
	return fs, nil
}

// Validate reports ErrInvalidConfiguration for zero-extent fields.
func (fs FieldSize) Validate() error {
	if fs.Rows == 0 || fs.Cols == 0 {
		return fmt.Errorf("%w: field %s has a zero extent", ErrInvalidConfiguration, fs)
	}
	return nil
}

// Contains reports whether c lies inside [0, Cols) x [0, Rows).
func (fs FieldSize) Contains(c Coord) bool {
	return c.X < fs.Cols && c.Y < fs.Rows
}

// String renders the field as "rowsxcols".
func (fs FieldSize) String() string {
	return fmt.Sprintf("%dx%d", fs.Rows, fs.Cols)
}

// Centered returns the spawn cell of a field: half of each extent, rounded up.
func Centered(fs FieldSize) Coord {
	return Coord{
		X: fs.Cols/2 + fs.Cols%2,
		Y: fs.Rows/2 + fs.Rows%2,
	}
}
