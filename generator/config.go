// SPDX-License-Identifier: MIT
// Package: lvmaze/generator
//
// config.go: internal configuration and defaults.
//
// Defaults:
//   • rng             = time-seeded source (use WithSeed for reproducibility)
//   • wallProbability = 0.3

package generator

import (
	"math/rand"
	"time"
)

// Named constants shared by the generators.
const (
	// DefaultWallProbability is the RandomFill chance that a cell is a wall.
	DefaultWallProbability = 0.3
	// MinProbability and MaxProbability bound WithWallProbability.
	MinProbability = 0.0
	MaxProbability = 1.0

	minDimension = 1

	methodEmpty        = "Empty"
	methodRandomFill   = "RandomFill"
	methodSpanningTree = "SpanningTree"
)

// generatorConfig aggregates every knob a generator reads.
type generatorConfig struct {
	rng             *rand.Rand // never nil after newGeneratorConfig
	wallProbability float64    // [0,1]
}

// newGeneratorConfig applies opts in order (last wins) over the defaults.
// Complexity: O(len(opts)).
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		wallProbability: DefaultWallProbability,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
