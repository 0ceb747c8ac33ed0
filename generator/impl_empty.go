// SPDX-License-Identifier: MIT
// Package: lvmaze/generator
//
// impl_empty.go: the all-FREE generator.

package generator

import (
	"github.com/katalvlaran/lvmaze/maze"
)

// Empty produces grids with no walls at all.
type Empty struct{}

// NewEmpty returns an Empty generator. Options are accepted for registry
// symmetry and ignored.
func NewEmpty(_ ...Option) *Empty {
	return &Empty{}
}

// Name returns NameEmpty.
func (*Empty) Name() string { return NameEmpty }

// Generate returns a rows×cols all-FREE grid.
// Complexity: O(R·C).
func (*Empty) Generate(rows, cols int) (*maze.Grid, error) {
	if err := validateSize(methodEmpty, rows, cols); err != nil {
		return nil, err
	}

	return maze.NewGrid(rows, cols)
}
