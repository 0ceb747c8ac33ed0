// SPDX-License-Identifier: MIT
// Package: lvmaze/generator
//
// api.go: the Generator contract and timing helper.

package generator

import (
	"time"

	"github.com/katalvlaran/lvmaze/maze"
)

// Generator produces a rows×cols grid with start (0,0) and goal
// (rows-1, cols-1).
//
// Implementations MUST:
//   - Reject rows ≤ 0 or cols ≤ 0 with ErrInvalidDimension before allocating.
//   - Return a grid whose start and goal cells are FREE.
//   - Be deterministic for a fixed random source.
type Generator interface {
	// Generate builds a new grid. The caller owns the result.
	Generate(rows, cols int) (*maze.Grid, error)
	// Name is the registry name of the strategy.
	Name() string
}

// MeasureGeneration times one Generate call.
// The grid itself is discarded; only the elapsed time and any error are kept.
func MeasureGeneration(g Generator, rows, cols int) (time.Duration, error) {
	began := time.Now()
	if _, err := g.Generate(rows, cols); err != nil {
		return 0, err
	}

	return time.Since(began), nil
}
