package search

import "github.com/katalvlaran/lvmaze/maze"

// Solution is an immutable start→goal path. An empty path means no route.
type Solution struct {
	path []State
	cost int
}

// Path returns a copy of the states from start to goal inclusive.
func (s *Solution) Path() []State {
	out := make([]State, len(s.path))
	copy(out, s.path)
	return out
}

// Len returns the number of states on the path.
func (s *Solution) Len() int { return len(s.path) }

// IsEmpty reports whether no path was found.
func (s *Solution) IsEmpty() bool { return len(s.path) == 0 }

// Cost returns the accumulated move count of the goal, or -1 when empty.
func (s *Solution) Cost() int {
	if s.IsEmpty() {
		return -1
	}
	return s.cost
}

// Positions returns the grid positions of the path's MazeState elements.
func (s *Solution) Positions() []maze.Position {
	out := make([]maze.Position, 0, len(s.path))
	for _, st := range s.path {
		if ms, ok := st.(MazeState); ok {
			out = append(out, ms.Position)
		}
	}
	return out
}

// reconstruct walks parent links from terminal back to the root, then
// reverses the result. A nil terminal yields an empty, non-nil Solution.
// Complexity: O(path length).
func reconstruct(terminal State, parent map[State]State, cost int) *Solution {
	if terminal == nil {
		return &Solution{}
	}
	path := []State{terminal}
	for cur := terminal; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Solution{path: path, cost: cost}
}
