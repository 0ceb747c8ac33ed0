// SPDX-License-Identifier: MIT
// Package: lvmaze/generator
//
// impl_spanning_tree.go: randomized depth-first carving on an odd lattice.
//
// Lattice model:
//   • genRows = rows (+1 if even), genCols = cols (+1 if even).
//   • Rooms: (r,c) with 0 < r < genRows-1 and 0 < c < genCols-1 reached from
//     (1,1) in steps of two; the cell halfway between two rooms is a corridor.
//   • Everything starts as WALL.
//
// Carving (iterative DFS):
//   pop room; collect unvisited rooms two steps away in the order
//   right, down, left, up; if any, push the room back, pick one uniformly,
//   open the corridor and the target, mark it visited and push it.
//
// Finish:
//   • open (1,0), (0,0), (genRows-2, genCols-1), (genRows-1, genCols-1);
//   • crop to rows×cols, start=(0,0), goal=(rows-1, cols-1);
//   • open the goal, which the crop removes the exit from when exactly one
//     dimension is even.
//
// Determinism: one Intn call per carving step; fixed seed ⇒ identical grid.

package generator

import (
	"sync"

	"github.com/katalvlaran/lvmaze/maze"
)

// roomSteps lists the (dRow, dCol) jumps between neighbouring rooms.
var roomSteps = [4][2]int{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}

// SpanningTree carves a perfect maze: every FREE cell is reachable from the
// start along exactly one corridor tree.
type SpanningTree struct {
	mu  sync.Mutex // guards cfg.rng
	cfg generatorConfig
}

// NewSpanningTree returns a SpanningTree generator configured by opts.
func NewSpanningTree(opts ...Option) *SpanningTree {
	return &SpanningTree{cfg: newGeneratorConfig(opts...)}
}

// Name returns NameSpanningTree.
func (*SpanningTree) Name() string { return NameSpanningTree }

// Generate carves and crops a rows×cols maze.
// Complexity: O(R·C) time and memory.
func (g *SpanningTree) Generate(rows, cols int) (*maze.Grid, error) {
	// 1) Validate before allocating.
	if err := validateSize(methodSpanningTree, rows, cols); err != nil {
		return nil, err
	}

	// 2) A single row or column has no room lattice: plain corridor.
	if rows == 1 || cols == 1 {
		return maze.NewGrid(rows, cols)
	}

	// 3) Pad to odd dimensions and wall everything.
	genRows, genCols := padOdd(rows), padOdd(cols)
	lattice, err := maze.NewGrid(genRows, genCols)
	if err != nil {
		return nil, err
	}
	lattice.Fill(maze.Wall)

	// 4) Carve.
	g.mu.Lock()
	g.carve(lattice)
	g.mu.Unlock()

	// 5) Splice entry and exit into the lattice border.
	for _, p := range []maze.Position{
		maze.Pos(1, 0),
		maze.Pos(0, 0),
		maze.Pos(genRows-2, genCols-1),
		maze.Pos(genRows-1, genCols-1),
	} {
		_ = lattice.SetCell(p, maze.Free)
	}

	// 6) Crop back to the requested size and reopen the goal.
	grid, err := lattice.Crop(rows, cols)
	if err != nil {
		return nil, err
	}
	_ = grid.SetCell(grid.Goal(), maze.Free)

	return grid, nil
}

// carve runs the stack-based depth-first walk from room (1,1).
// Caller holds g.mu.
func (g *SpanningTree) carve(lattice *maze.Grid) {
	genRows, genCols := lattice.Rows(), lattice.Cols()
	isRoom := func(p maze.Position) bool {
		return p.Row > 0 && p.Row < genRows-1 && p.Col > 0 && p.Col < genCols-1
	}
	visited := make([]bool, genRows*genCols)
	mark := func(p maze.Position) { visited[p.Row*genCols+p.Col] = true }
	seen := func(p maze.Position) bool { return visited[p.Row*genCols+p.Col] }

	origin := maze.Pos(1, 1)
	_ = lattice.SetCell(origin, maze.Free)
	mark(origin)
	stack := []maze.Position{origin}
	candidates := make([]maze.Position, 0, len(roomSteps))

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		candidates = candidates[:0]
		for _, d := range roomSteps {
			next := cur.Add(d[0], d[1])
			if isRoom(next) && !seen(next) {
				candidates = append(candidates, next)
			}
		}
		if len(candidates) == 0 {
			continue // finalized
		}

		stack = append(stack, cur)
		next := candidates[g.cfg.rng.Intn(len(candidates))]
		between := maze.Pos((cur.Row+next.Row)/2, (cur.Col+next.Col)/2)
		_ = lattice.SetCell(between, maze.Free)
		_ = lattice.SetCell(next, maze.Free)
		mark(next)
		stack = append(stack, next)
	}
}

// padOdd returns d+1 for even d, d otherwise.
func padOdd(d int) int {
	if d%2 == 0 {
		return d + 1
	}
	return d
}
