package search

import "sync/atomic"

// BreadthFirst expands states in discovery order. With uniform move cost it
// returns a path with the fewest moves.
type BreadthFirst struct {
	opts      Options
	evaluated atomic.Int64
}

// NewBreadthFirst returns a breadth-first solver.
func NewBreadthFirst(opts ...Option) *BreadthFirst {
	return &BreadthFirst{opts: buildOptions(opts)}
}

// Name returns "Breadth First Search".
func (*BreadthFirst) Name() string { return NameBreadthFirst }

// NodesEvaluated counts the states popped by the last Solve.
func (s *BreadthFirst) NodesEvaluated() int { return int(s.evaluated.Load()) }

// Solve runs breadth-first search over domain.
// Returns (nil, nil) for a nil domain and ErrMissingState when the start or
// goal cannot be resolved.
func (s *BreadthFirst) Solve(domain Searchable) (*Solution, error) {
	if domain == nil {
		return nil, nil
	}
	w := newWalker(domain, s.opts, &fifo{})
	sol, err := w.run()
	s.evaluated.Store(int64(w.evaluated))
	return sol, err
}
