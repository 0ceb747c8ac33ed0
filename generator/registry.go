// SPDX-License-Identifier: MIT
// Package: lvmaze/generator
//
// registry.go: name → factory lookup, resolved once at construction time.

package generator

import (
	"fmt"
	"sort"
)

// Registry names of the built-in generators.
const (
	NameEmpty        = "empty"
	NameRandomFill   = "random-fill"
	NameSpanningTree = "spanning-tree"
)

// Factory builds a generator from options.
type Factory func(opts ...Option) Generator

var registry = map[string]Factory{
	NameEmpty:        func(opts ...Option) Generator { return NewEmpty(opts...) },
	NameRandomFill:   func(opts ...Option) Generator { return NewRandomFill(opts...) },
	NameSpanningTree: func(opts ...Option) Generator { return NewSpanningTree(opts...) },
}

// New returns the generator registered under name.
// Returns ErrUnknownGenerator if nothing is registered under it.
func New(name string, opts ...Option) (Generator, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("New(%q): %w", name, ErrUnknownGenerator)
	}

	return f(opts...), nil
}

// Names lists the registered generator names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
