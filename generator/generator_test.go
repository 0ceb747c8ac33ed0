package generator_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/maze"
)

// all returns one seeded instance of every built-in generator.
func all(seed int64) []generator.Generator {
	return []generator.Generator{
		generator.NewEmpty(),
		generator.NewRandomFill(generator.WithSeed(seed)),
		generator.NewSpanningTree(generator.WithSeed(seed)),
	}
}

// TestGenerate_InvalidDimension verifies every generator rejects non-positive sizes.
func TestGenerate_InvalidDimension(t *testing.T) {
	sizes := [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}}
	for _, g := range all(1) {
		for _, s := range sizes {
			grid, err := g.Generate(s[0], s[1])
			if !errors.Is(err, generator.ErrInvalidDimension) {
				t.Errorf("%s.Generate(%d,%d) error = %v; want ErrInvalidDimension", g.Name(), s[0], s[1], err)
			}
			assert.Nil(t, grid)
		}
	}
}

// TestGenerate_Shape checks dimensions and default start/goal for every generator.
func TestGenerate_Shape(t *testing.T) {
	for _, g := range all(3) {
		for _, s := range [][2]int{{1, 1}, {1, 7}, {6, 1}, {4, 5}, {9, 9}, {10, 12}} {
			grid, err := g.Generate(s[0], s[1])
			require.NoError(t, err, g.Name())
			assert.Equal(t, s[0], grid.Rows())
			assert.Equal(t, s[1], grid.Cols())
			assert.Equal(t, maze.Pos(0, 0), grid.Start())
			assert.Equal(t, maze.Pos(s[0]-1, s[1]-1), grid.Goal())
			assert.True(t, grid.IsFree(0, 0), "%s start free", g.Name())
			assert.True(t, grid.IsFree(s[0]-1, s[1]-1), "%s goal free", g.Name())
		}
	}
}

// TestEmpty checks there are no walls.
func TestEmpty(t *testing.T) {
	grid, err := generator.NewEmpty().Generate(5, 7)
	require.NoError(t, err)
	assert.Equal(t, 35, grid.FreeCount())
}

// TestRandomFill_Extremes pins the wall probability endpoints.
func TestRandomFill_Extremes(t *testing.T) {
	open, err := generator.NewRandomFill(generator.WithSeed(1), generator.WithWallProbability(0)).Generate(6, 6)
	require.NoError(t, err)
	assert.Equal(t, 36, open.FreeCount())

	closed, err := generator.NewRandomFill(generator.WithSeed(1), generator.WithWallProbability(1)).Generate(6, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, closed.FreeCount(), "only start and goal stay free")
}

// TestRandomFill_Ratio checks the default ratio lands near 30% walls.
func TestRandomFill_Ratio(t *testing.T) {
	grid, err := generator.NewRandomFill(generator.WithSeed(42)).Generate(100, 100)
	require.NoError(t, err)
	walls := 100*100 - grid.FreeCount()
	assert.InDelta(t, 3000, walls, 300)
}

// TestDeterminism verifies the same seed yields the same grid.
func TestDeterminism(t *testing.T) {
	for _, name := range generator.Names() {
		a, err := generator.New(name, generator.WithSeed(99))
		require.NoError(t, err)
		b, err := generator.New(name, generator.WithSeed(99))
		require.NoError(t, err)

		ga, err := a.Generate(15, 20)
		require.NoError(t, err)
		gb, err := b.Generate(15, 20)
		require.NoError(t, err)
		assert.Equal(t, ga.String(), gb.String(), name)
	}
}

// TestWithRand uses an explicit source.
func TestWithRand(t *testing.T) {
	a, err := generator.NewSpanningTree(generator.WithRand(rand.New(rand.NewSource(5)))).Generate(11, 11)
	require.NoError(t, err)
	b, err := generator.NewSpanningTree(generator.WithSeed(5)).Generate(11, 11)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

// TestOptions_Panics verifies option constructors fail fast.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { generator.WithRand(nil) })
	assert.Panics(t, func() { generator.WithWallProbability(-0.1) })
	assert.Panics(t, func() { generator.WithWallProbability(1.5) })
	assert.NotPanics(t, func() { generator.WithWallProbability(0.5) })
}

// TestRegistry covers lookups and listing.
func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"empty", "random-fill", "spanning-tree"}, generator.Names())

	for _, name := range generator.Names() {
		g, err := generator.New(name)
		require.NoError(t, err)
		assert.Equal(t, name, g.Name())
	}

	_, err := generator.New("prim")
	assert.ErrorIs(t, err, generator.ErrUnknownGenerator)
}

// TestMeasureGeneration returns a duration or the generator's error.
func TestMeasureGeneration(t *testing.T) {
	d, err := generator.MeasureGeneration(generator.NewSpanningTree(generator.WithSeed(1)), 50, 50)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int64(d), int64(0))

	_, err = generator.MeasureGeneration(generator.NewEmpty(), 0, 1)
	assert.ErrorIs(t, err, generator.ErrInvalidDimension)
}
