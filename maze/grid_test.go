package maze_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
)

// TestNewGrid_Errors verifies that NewGrid rejects non-positive dimensions.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"NegativeRows", -1, 3},
		{"NegativeBoth", -2, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.NewGrid(tc.rows, tc.cols)
			if !errors.Is(err, maze.ErrInvalidDimension) {
				t.Errorf("NewGrid(%d,%d) error = %v; want ErrInvalidDimension", tc.rows, tc.cols, err)
			}
			assert.Nil(t, g)
		})
	}
}

// TestNewGrid_Defaults checks the all-FREE layout and default start/goal.
func TestNewGrid_Defaults(t *testing.T) {
	g, err := maze.NewGrid(3, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, maze.Pos(0, 0), g.Start())
	assert.Equal(t, maze.Pos(2, 3), g.Goal())
	assert.Equal(t, 12, g.FreeCount())
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			assert.True(t, g.IsFree(r, c), "cell (%d,%d) should be free", r, c)
		}
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := maze.NewGrid(2, 3)
	require.NoError(t, err)

	for _, p := range []maze.Position{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(p.Row, p.Col), "InBounds%v", p)
	}
	for _, p := range []maze.Position{{-1, 0}, {2, 0}, {0, 3}, {1, -1}} {
		assert.False(t, g.InBounds(p.Row, p.Col), "InBounds%v", p)
		assert.Equal(t, maze.Wall, g.Cell(p), "out-of-bounds reads as wall")
	}
}

// TestSetters_OutOfBounds verifies the mutators reject positions outside the grid.
func TestSetters_OutOfBounds(t *testing.T) {
	g, err := maze.NewGrid(2, 2)
	require.NoError(t, err)

	bad := maze.Pos(2, 0)
	assert.ErrorIs(t, g.SetCell(bad, maze.Wall), maze.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetStart(bad), maze.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetGoal(bad), maze.ErrOutOfBounds)

	require.NoError(t, g.SetCell(maze.Pos(0, 1), maze.Wall))
	assert.Equal(t, maze.Wall, g.Cell(maze.Pos(0, 1)))
	assert.False(t, g.IsFree(0, 1))
}

// TestFromCells covers deep copy, defaults and ragged input.
func TestFromCells(t *testing.T) {
	src := [][]maze.Cell{
		{maze.Free, maze.Wall},
		{maze.Free, maze.Free},
	}
	g, err := maze.FromCells(src)
	require.NoError(t, err)
	src[0][0] = maze.Wall // must not leak into g

	assert.Equal(t, maze.Free, g.Cell(maze.Pos(0, 0)))
	assert.Equal(t, maze.Wall, g.Cell(maze.Pos(0, 1)))
	assert.Equal(t, maze.Pos(1, 1), g.Goal())

	_, err = maze.FromCells([][]maze.Cell{{maze.Free}, {}})
	assert.ErrorIs(t, err, maze.ErrNonRectangular)
	_, err = maze.FromCells(nil)
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
}

// TestClone ensures the copy is independent.
func TestClone(t *testing.T) {
	g, err := maze.NewGrid(2, 2)
	require.NoError(t, err)
	c := g.Clone()
	require.NoError(t, c.SetCell(maze.Pos(1, 0), maze.Wall))

	assert.Equal(t, maze.Free, g.Cell(maze.Pos(1, 0)))
	assert.Equal(t, maze.Wall, c.Cell(maze.Pos(1, 0)))
}

// TestCrop keeps the top-left corner and resets start/goal.
func TestCrop(t *testing.T) {
	g, err := maze.NewGrid(3, 3)
	require.NoError(t, err)
	g.Fill(maze.Wall)
	require.NoError(t, g.SetCell(maze.Pos(1, 1), maze.Free))

	c, err := g.Crop(2, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]maze.Cell{
		{maze.Wall, maze.Wall},
		{maze.Wall, maze.Free},
	}, c.Cells())
	assert.Equal(t, maze.Pos(1, 1), c.Goal())

	_, err = g.Crop(4, 1)
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)
}

// TestString renders S/E/1/0.
func TestString(t *testing.T) {
	g, err := maze.FromCells([][]maze.Cell{
		{maze.Free, maze.Wall, maze.Free},
		{maze.Free, maze.Free, maze.Free},
	})
	require.NoError(t, err)

	assert.Equal(t, "S10\n00E\n", g.String())
}
