package maze

import (
	"fmt"
	"strings"
)

// NewGrid returns a rows×cols grid with every cell FREE, Start=(0,0) and
// Goal=(rows-1, cols-1).
// Returns ErrInvalidDimension if rows or cols is not positive; nothing is
// allocated in that case.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewGrid: rows=%d, cols=%d: %w", rows, cols, ErrInvalidDimension)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols), // zero value is Free
		start: Position{0, 0},
		goal:  Position{rows - 1, cols - 1},
	}, nil
}

// FromCells builds a grid from a non-empty rectangular matrix of cells.
// The input is deep-copied. Start and Goal take their defaults
// (top-left and bottom-right corners).
// Returns ErrInvalidDimension for an empty matrix, ErrNonRectangular if any
// row length differs.
func FromCells(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("FromCells: %w", ErrInvalidDimension)
	}
	rows, cols := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("FromCells: row %d has %d cells, want %d: %w", r, len(row), cols, ErrNonRectangular)
		}
	}

	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for r, row := range cells {
		copy(g.cells[r*cols:(r+1)*cols], row)
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start position.
func (g *Grid) Start() Position { return g.start }

// Goal returns the goal position.
func (g *Grid) Goal() Position { return g.goal }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether p lies within the grid.
func (g *Grid) Contains(p Position) bool {
	return g.InBounds(p.Row, p.Col)
}

// Cell returns the cell at p. Out-of-bounds positions read as Wall.
func (g *Grid) Cell(p Position) Cell {
	if !g.Contains(p) {
		return Wall
	}
	return g.cells[g.index(p.Row, p.Col)]
}

// IsFree reports whether (row, col) is in bounds and FREE.
// Complexity: O(1).
func (g *Grid) IsFree(row, col int) bool {
	return g.InBounds(row, col) && g.cells[g.index(row, col)] == Free
}

// SetCell stores c at p.
// Returns ErrOutOfBounds if p lies outside the grid.
func (g *Grid) SetCell(p Position, c Cell) error {
	if !g.Contains(p) {
		return fmt.Errorf("SetCell %v: %w", p, ErrOutOfBounds)
	}
	g.cells[g.index(p.Row, p.Col)] = c
	return nil
}

// SetStart moves the start position. The cell itself is not modified.
// Returns ErrOutOfBounds if p lies outside the grid.
func (g *Grid) SetStart(p Position) error {
	if !g.Contains(p) {
		return fmt.Errorf("SetStart %v: %w", p, ErrOutOfBounds)
	}
	g.start = p
	return nil
}

// SetGoal moves the goal position. The cell itself is not modified.
// Returns ErrOutOfBounds if p lies outside the grid.
func (g *Grid) SetGoal(p Position) error {
	if !g.Contains(p) {
		return fmt.Errorf("SetGoal %v: %w", p, ErrOutOfBounds)
	}
	g.goal = p
	return nil
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Cells returns a deep copy of the grid as a [row][col] matrix.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells, start: g.start, goal: g.goal}
}

// Crop returns a new grid holding the top-left rows×cols corner of g.
// Start and Goal take their defaults on the cropped grid.
// Returns ErrInvalidDimension for non-positive sizes and ErrOutOfBounds when
// the requested corner is larger than g.
func (g *Grid) Crop(rows, cols int) (*Grid, error) {
	if rows > g.rows || cols > g.cols {
		return nil, fmt.Errorf("Crop: %dx%d from %dx%d: %w", rows, cols, g.rows, g.cols, ErrOutOfBounds)
	}
	out, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		copy(out.cells[r*cols:(r+1)*cols], g.cells[r*g.cols:r*g.cols+cols])
	}
	return out, nil
}

// FreeCount returns the number of FREE cells.
func (g *Grid) FreeCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Free {
			n++
		}
	}
	return n
}

// String renders the grid one row per line: 'S' marks the start, 'E' the
// goal, '1' a wall and '0' a free cell.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{r, c}
			switch {
			case p == g.start:
				sb.WriteByte('S')
			case p == g.goal:
				sb.WriteByte('E')
			case g.cells[g.index(r, c)] == Wall:
				sb.WriteByte('1')
			default:
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps (row, col) to the row-major cell index.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
