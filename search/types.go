package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrMissingState is returned when the start or goal has no state,
	// e.g. the grid stores a WALL there.
	ErrMissingState = errors.New("search: missing start or goal state")

	// ErrUnknownSolver is returned by New for an unregistered name.
	ErrUnknownSolver = errors.New("search: unknown solver")
)

// State is one node of a search domain.
// Dynamic types MUST be comparable: states are map keys and the goal test
// is ==, so two states for the same cell compare equal.
type State interface {
	fmt.Stringer
}

// Searchable is the domain a Solver explores.
type Searchable interface {
	// StartState returns the state the search begins from.
	StartState() (State, error)
	// GoalState returns the state the search looks for.
	GoalState() (State, error)
	// Neighbors returns a fresh slice of states one move away from s,
	// in a fixed order. Unknown states have no neighbours.
	Neighbors(s State) []State
}

// Solver is one search strategy.
type Solver interface {
	// Solve searches domain. A nil domain yields (nil, nil).
	Solve(domain Searchable) (*Solution, error)
	// Name is the human-readable strategy name.
	Name() string
	// NodesEvaluated counts the states popped by the most recent Solve.
	NodesEvaluated() int
}

// Option configures a solver.
type Option func(*Options)

// Options holds the hooks a solver calls while searching.
type Options struct {
	// OnVisit is called once per evaluated state, before the goal test.
	OnVisit func(s State)
}

// DefaultOptions returns Options with a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(State) {},
	}
}

// WithOnVisit registers a callback run on every evaluated state.
// A nil fn is ignored.
func WithOnVisit(fn func(s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
