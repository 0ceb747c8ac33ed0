package maze

import "fmt"

// MarshalBinary encodes g in the flat layout: a 6-byte header
// (rows, cols, start row, start col, goal row, goal col) followed by one
// byte per cell in row-major order (0 = FREE, 1 = WALL).
// Returns ErrDimensionTooLarge if a dimension does not fit in one byte.
// Complexity: O(R×C).
func (g *Grid) MarshalBinary() ([]byte, error) {
	if g.rows > MaxDimension || g.cols > MaxDimension {
		return nil, fmt.Errorf("MarshalBinary: %dx%d: %w", g.rows, g.cols, ErrDimensionTooLarge)
	}

	data := make([]byte, HeaderSize+len(g.cells))
	data[0] = byte(g.rows)
	data[1] = byte(g.cols)
	data[2] = byte(g.start.Row)
	data[3] = byte(g.start.Col)
	data[4] = byte(g.goal.Row)
	data[5] = byte(g.goal.Col)
	for i, c := range g.cells {
		data[HeaderSize+i] = byte(c)
	}

	return data, nil
}

// UnmarshalBinary replaces g with the grid encoded in data.
// Returns ErrCorruptBuffer if the buffer is shorter or longer than the
// header announces, a dimension is zero, start or goal lie outside the grid,
// or a cell byte is neither 0 nor 1.
// Complexity: O(R×C).
func (g *Grid) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("UnmarshalBinary: %d bytes, header needs %d: %w", len(data), HeaderSize, ErrCorruptBuffer)
	}
	rows, cols := int(data[0]), int(data[1])
	if rows == 0 || cols == 0 {
		return fmt.Errorf("UnmarshalBinary: %dx%d: %w", rows, cols, ErrCorruptBuffer)
	}
	if want := HeaderSize + rows*cols; len(data) != want {
		return fmt.Errorf("UnmarshalBinary: %d bytes, want %d: %w", len(data), want, ErrCorruptBuffer)
	}
	start := Position{int(data[2]), int(data[3])}
	goal := Position{int(data[4]), int(data[5])}

	out := Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols), start: start, goal: goal}
	if !out.Contains(start) || !out.Contains(goal) {
		return fmt.Errorf("UnmarshalBinary: start %v / goal %v outside %dx%d: %w", start, goal, rows, cols, ErrCorruptBuffer)
	}
	for i, b := range data[HeaderSize:] {
		if b > byte(Wall) {
			return fmt.Errorf("UnmarshalBinary: cell %d has value %d: %w", i, b, ErrCorruptBuffer)
		}
		out.cells[i] = Cell(b)
	}

	*g = out
	return nil
}

// Decode is a convenience wrapper around UnmarshalBinary.
func Decode(data []byte) (*Grid, error) {
	g := new(Grid)
	if err := g.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return g, nil
}

// CellCount returns rows×cols as announced by an encoded header, or an error
// wrapping ErrCorruptBuffer if the header is too short.
func CellCount(header []byte) (int, error) {
	if len(header) < HeaderSize {
		return 0, fmt.Errorf("CellCount: %d header bytes: %w", len(header), ErrCorruptBuffer)
	}
	return int(header[0]) * int(header[1]), nil
}
