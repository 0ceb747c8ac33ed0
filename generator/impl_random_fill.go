// SPDX-License-Identifier: MIT
// Package: lvmaze/generator
//
// impl_random_fill.go: independent per-cell random walls.
//
// Contract:
//   • Each cell is WALL with probability cfg.wallProbability, else FREE.
//   • Cells are drawn in row-major order (one Float64 per cell).
//   • Start (0,0) and goal (rows-1, cols-1) are forced FREE afterwards.
//   • No connectivity guarantee.

package generator

import (
	"sync"

	"github.com/katalvlaran/lvmaze/maze"
)

// RandomFill scatters walls independently over the grid.
type RandomFill struct {
	mu  sync.Mutex // guards cfg.rng
	cfg generatorConfig
}

// NewRandomFill returns a RandomFill generator configured by opts.
func NewRandomFill(opts ...Option) *RandomFill {
	return &RandomFill{cfg: newGeneratorConfig(opts...)}
}

// Name returns NameRandomFill.
func (*RandomFill) Name() string { return NameRandomFill }

// Generate returns a rows×cols grid with randomly placed walls.
// Complexity: O(R·C).
func (g *RandomFill) Generate(rows, cols int) (*maze.Grid, error) {
	// 1) Validate before allocating.
	if err := validateSize(methodRandomFill, rows, cols); err != nil {
		return nil, err
	}
	grid, err := maze.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	// 2) Draw every cell in row-major order.
	g.mu.Lock()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if g.cfg.rng.Float64() < g.cfg.wallProbability {
				_ = grid.SetCell(maze.Pos(r, c), maze.Wall) // in bounds by construction
			}
		}
	}
	g.mu.Unlock()

	// 3) Entry and exit are always open.
	_ = grid.SetCell(grid.Start(), maze.Free)
	_ = grid.SetCell(grid.Goal(), maze.Free)

	return grid, nil
}
