package search

import "sync/atomic"

// DepthFirst expands the most recently discovered state first.
// Its path is generally not the shortest.
type DepthFirst struct {
	opts      Options
	evaluated atomic.Int64
}

// NewDepthFirst returns a depth-first solver.
func NewDepthFirst(opts ...Option) *DepthFirst {
	return &DepthFirst{opts: buildOptions(opts)}
}

// Name returns "Depth First Search".
func (*DepthFirst) Name() string { return NameDepthFirst }

// NodesEvaluated counts the states popped by the last Solve.
func (s *DepthFirst) NodesEvaluated() int { return int(s.evaluated.Load()) }

// Solve runs depth-first search over domain. A neighbour already on the
// stack is not pushed again.
func (s *DepthFirst) Solve(domain Searchable) (*Solution, error) {
	if domain == nil {
		return nil, nil
	}
	w := newWalker(domain, s.opts, &lifo{})
	sol, err := w.run()
	s.evaluated.Store(int64(w.evaluated))
	return sol, err
}
