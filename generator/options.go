// SPDX-License-Identifier: MIT
// Package: lvmaze/generator
//
// options.go: functional options for generator constructors.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Determinism is explicit: seed with WithSeed or WithRand.

package generator

import (
	"fmt"
	"math/rand"
)

// Option customizes a generator before it is built.
type Option func(*generatorConfig)

// WithRand provides an explicit random source. Panics on nil.
// The generator takes ownership; do not share r with other goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand from seed, making generation reproducible.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWallProbability sets the RandomFill wall ratio.
// Panics if p is outside [MinProbability, MaxProbability].
// Other generators ignore it.
func WithWallProbability(p float64) Option {
	if p < MinProbability || p > MaxProbability {
		panic(fmt.Sprintf("generator: WithWallProbability(%v) outside [0,1]", p))
	}
	return func(c *generatorConfig) {
		c.wallProbability = p
	}
}
