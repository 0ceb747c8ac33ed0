package search

import (
	"container/heap"
	"sync/atomic"
)

// BestFirst is greedy best-first search: the frontier is ranked purely by
// Manhattan distance from a candidate to the goal, never by cost so far.
// A popped state is final and open states are never re-ranked, so the path
// may be longer than necessary.
type BestFirst struct {
	opts      Options
	evaluated atomic.Int64
}

// NewBestFirst returns a greedy best-first solver.
func NewBestFirst(opts ...Option) *BestFirst {
	return &BestFirst{opts: buildOptions(opts)}
}

// Name returns "Best First Search".
func (*BestFirst) Name() string { return NameBestFirst }

// NodesEvaluated counts the states popped by the last Solve.
func (s *BestFirst) NodesEvaluated() int { return int(s.evaluated.Load()) }

// Solve runs greedy best-first search over domain.
func (s *BestFirst) Solve(domain Searchable) (*Solution, error) {
	if domain == nil {
		return nil, nil
	}
	goal, err := domain.GoalState()
	if err != nil {
		return nil, err
	}
	w := newWalker(domain, s.opts, &heuristicFrontier{goal: goal})
	sol, err := w.run()
	s.evaluated.Store(int64(w.evaluated))
	return sol, err
}

// heuristicFrontier orders states by Manhattan distance to goal.
type heuristicFrontier struct {
	goal State
	pq   nodePQ
	seq  uint64
}

func (f *heuristicFrontier) push(s State) {
	heap.Push(&f.pq, &nodeItem{state: s, priority: Manhattan(s, f.goal), seq: f.seq})
	f.seq++
}

func (f *heuristicFrontier) pop() State {
	return heap.Pop(&f.pq).(*nodeItem).state
}

func (f *heuristicFrontier) len() int { return f.pq.Len() }

// nodeItem is one heap entry; seq breaks priority ties in insertion order.
type nodeItem struct {
	state    State
	priority float64
	seq      uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (priority, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority, then by insertion.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
