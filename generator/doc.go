// Package generator builds maze.Grid layouts from a requested size.
//
// What:
//
//   - Empty:        every cell FREE.
//   - RandomFill:   every cell independently WALL with probability p
//     (default 0.3); start and goal are forced FREE afterwards. No
//     connectivity guarantee, the result may be unsolvable.
//   - SpanningTree: iterative randomized depth-first carving over an
//     odd-sized lattice of rooms, cropped back to the requested size.
//     Every FREE cell of the result is 4-connected to every other one, so
//     start and goal are always joined.
//
// All three satisfy the Generator interface and are reachable by name through
// the registry (New, Names).
//
// Why:
//
//   - Deterministic fixtures: WithSeed freezes every random choice, so the
//     same seed, size and generator always produce the same grid.
//   - Interchangeable strategies selected once from configuration, not by
//     string switches at call sites.
//
// Spanning-tree lattice:
//
//	An even requested dimension d is padded to d+1. Rooms sit at odd
//	lattice coordinates strictly inside the border; the cell between two
//	rooms is a corridor candidate. Carving starts from room (1,1). After
//	carving, (0,0)/(1,0) and the bottom-right corner pair of the lattice are
//	opened, the lattice is cropped to rows×cols, and the requested goal
//	(rows-1, cols-1) is opened so that odd/even size mixes keep an exit.
//	A 1×N or N×1 request has no room lattice and yields an all-FREE corridor.
//
// Complexity:
//
//   - Empty, RandomFill: O(R·C) time and memory.
//   - SpanningTree:      O(R·C) time (each room is pushed at most twice per
//     visited neighbour), O(R·C) memory for the lattice and visited flags.
//
// Options:
//
//   - WithSeed(seed)          reproducible *rand.Rand.
//   - WithRand(r)             explicit random source (panics on nil).
//   - WithWallProbability(p)  RandomFill wall ratio in [0,1] (panics otherwise).
//
// Generators guard their random source with a mutex, so one instance may be
// shared by concurrent callers.
//
// Errors:
//
//   - ErrInvalidDimension  rows or cols ≤ 0; no grid is allocated.
//   - ErrUnknownGenerator  registry lookup of an unregistered name.
package generator
