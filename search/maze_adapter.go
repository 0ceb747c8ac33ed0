package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmaze/maze"
)

// MazeState is the search state of one FREE grid cell.
type MazeState struct {
	maze.Position
}

// String formats the state as its position.
func (s MazeState) String() string { return s.Position.String() }

// Manhattan returns |Δrow| + |Δcol| between two maze states, or +Inf when
// either is not a MazeState.
func Manhattan(a, b State) float64 {
	ma, ok1 := a.(MazeState)
	mb, ok2 := b.(MazeState)
	if !ok1 || !ok2 {
		return math.Inf(1)
	}
	return float64(abs(ma.Row-mb.Row) + abs(ma.Col-mb.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// neighborOffsets is the fixed expansion order: cardinals, then diagonals.
var neighborOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// SearchableMaze exposes a *maze.Grid as a Searchable.
// The state table is built once; the adapter is read-only afterwards and
// safe for concurrent Solve calls.
type SearchableMaze struct {
	grid   *maze.Grid
	states map[maze.Position]MazeState // one per FREE cell
}

// NewSearchableMaze materializes one state per FREE cell of g.
// g must not be modified while the adapter is in use.
// Complexity: O(R·C).
func NewSearchableMaze(g *maze.Grid) *SearchableMaze {
	sm := &SearchableMaze{
		grid:   g,
		states: make(map[maze.Position]MazeState, g.FreeCount()),
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.IsFree(r, c) {
				p := maze.Pos(r, c)
				sm.states[p] = MazeState{Position: p}
			}
		}
	}
	return sm
}

// Grid returns the adapted grid.
func (sm *SearchableMaze) Grid() *maze.Grid { return sm.grid }

// StartState looks up the state at the grid's start.
// Returns ErrMissingState if that cell is a WALL.
func (sm *SearchableMaze) StartState() (State, error) {
	return sm.lookup("StartState", sm.grid.Start())
}

// GoalState looks up the state at the grid's goal.
// Returns ErrMissingState if that cell is a WALL.
func (sm *SearchableMaze) GoalState() (State, error) {
	return sm.lookup("GoalState", sm.grid.Goal())
}

func (sm *SearchableMaze) lookup(method string, p maze.Position) (State, error) {
	s, ok := sm.states[p]
	if !ok {
		return nil, fmt.Errorf("%s: %v: %w", method, p, ErrMissingState)
	}
	return s, nil
}

// Neighbors returns the states one move from s: in-bounds FREE cardinal
// cells first, then diagonal cells whose two flanking cardinal cells are
// also FREE.
// Complexity: O(1).
func (sm *SearchableMaze) Neighbors(s State) []State {
	ms, ok := s.(MazeState)
	if !ok {
		return nil
	}
	if _, ok = sm.states[ms.Position]; !ok {
		return nil
	}

	out := make([]State, 0, len(neighborOffsets))
	for i, d := range neighborOffsets {
		next, ok := sm.states[ms.Add(d[0], d[1])]
		if !ok {
			continue
		}
		if i >= 4 { // diagonal: both flanks must be open
			_, rowFlank := sm.states[ms.Add(d[0], 0)]
			_, colFlank := sm.states[ms.Add(0, d[1])]
			if !rowFlank || !colFlank {
				continue
			}
		}
		out = append(out, next)
	}
	return out
}
