// Package search finds a path between two states of a Searchable domain.
//
// What:
//
//   - Searchable: the domain contract, a start state, a goal state and a
//     neighbour function.
//   - SearchableMaze: adapts a *maze.Grid. One MazeState per FREE cell;
//     neighbours are listed up, down, left, right, then up-left, up-right,
//     down-left, down-right. A diagonal is admitted only when both flanking
//     orthogonal cells are in bounds and FREE (no corner cutting).
//   - Solvers: BreadthFirst (FIFO), DepthFirst (LIFO) and BestFirst (greedy,
//     ranked purely by Manhattan distance to the goal, ties FIFO).
//   - Solution: the start→goal path rebuilt from predecessor links, or an
//     empty path when the goal is unreachable.
//
// Every edge costs 1, diagonals included. BreadthFirst therefore returns a
// path with the fewest moves; DepthFirst and BestFirst make no such promise.
//
// Bookkeeping:
//
//	Predecessors, costs and the open/closed sets live in a frame allocated
//	per Solve call. States are immutable values, so any number of Solve
//	calls may run concurrently over the same adapter.
//
// Contract:
//
//   - Solve(nil) returns (nil, nil).
//   - Any other domain yields a non-nil *Solution, empty when there is no path.
//   - The start state is always evaluated, so start == goal gives a
//     one-element path and NodesEvaluated() == 1.
//   - NodesEvaluated reports the most recent Solve call.
//
// Complexity (V states, E neighbour links):
//
//   - BreadthFirst, DepthFirst: O(V + E) time, O(V) memory.
//   - BestFirst:                O((V + E) log V) time, O(V) memory.
//
// Options:
//
//   - WithOnVisit(fn) runs fn on every evaluated state, in evaluation order.
//
// Errors:
//
//   - ErrMissingState  start or goal cell is a WALL (or outside the grid).
//   - ErrUnknownSolver registry lookup of an unregistered name.
package search
