// Package maze defines the cell, position and grid types together with the
// sentinel errors shared by every maze operation.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze operations.
var (
	// ErrInvalidDimension indicates rows or cols is not positive.
	ErrInvalidDimension = errors.New("maze: rows and cols must be positive")
	// ErrDimensionTooLarge indicates a dimension does not fit the one-byte header.
	ErrDimensionTooLarge = errors.New("maze: dimension exceeds one byte")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrCorruptBuffer indicates a byte buffer that does not follow the layout.
	ErrCorruptBuffer = errors.New("maze: corrupt byte buffer")
)

// MaxDimension is the largest row or column count representable in the
// one-byte header of the byte layout.
const MaxDimension = 255

// HeaderSize is the number of header bytes preceding the cells.
const HeaderSize = 6

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Free cells can be walked through.
	Free Cell = 0
	// Wall cells block movement.
	Wall Cell = 1
)

// String returns "free" or "wall".
func (c Cell) String() string {
	switch c {
	case Free:
		return "free"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Position is an immutable (Row, Col) pair. Two positions are equal when both
// coordinates match, so Position can be used directly as a map key.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String formats the position as {row,col}.
func (p Position) String() string {
	return fmt.Sprintf("{%d,%d}", p.Row, p.Col)
}

// Add returns p shifted by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Grid is a Rows×Cols matrix of cells with a start and a goal position.
// Generators mutate a Grid while building it; once returned it is treated as
// read-only by every consumer.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major: index = row*cols + col
	start      Position
	goal       Position
}
