package search

import (
	"fmt"
	"sort"
)

// Human-readable solver names, as returned by Solver.Name.
const (
	NameBreadthFirst = "Breadth First Search"
	NameDepthFirst   = "Depth First Search"
	NameBestFirst    = "Best First Search"
)

// Registry keys.
const (
	KeyBreadthFirst = "breadth-first"
	KeyDepthFirst   = "depth-first"
	KeyBestFirst    = "best-first"
)

// Factory builds a solver from options.
type Factory func(opts ...Option) Solver

var registry = map[string]Factory{
	KeyBreadthFirst: func(opts ...Option) Solver { return NewBreadthFirst(opts...) },
	KeyDepthFirst:   func(opts ...Option) Solver { return NewDepthFirst(opts...) },
	KeyBestFirst:    func(opts ...Option) Solver { return NewBestFirst(opts...) },
}

// New returns the solver registered under key.
// Returns ErrUnknownSolver for an unregistered key.
func New(key string, opts ...Option) (Solver, error) {
	f, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("New(%q): %w", key, ErrUnknownSolver)
	}
	return f(opts...), nil
}

// Keys lists the registered solver keys in sorted order.
func Keys() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
