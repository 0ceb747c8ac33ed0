// Package lvmaze is a grid maze engine: build mazes, search them, ship
// them over the wire and draw them.
//
// What is in the box?
//
//	• maze:      Grid, Cell (FREE/WALL), Position and the 6-byte-header layout
//	• generator: Empty, RandomFill and SpanningTree generators behind one interface
//	• search:    BFS, DFS and greedy best-first over any Searchable domain,
//	             plus the SearchableMaze adapter for grids
//	• compress:  run-length codecs for the byte layout
//	• render:    PNG output with the solution and explored cells overlaid
//	• server / client: TCP services that generate and solve mazes
//
// Under the hood the library packages are pure Go and never log; the
// server, the client and the lvmaze CLI (cmd/lvmaze) carry logging,
// configuration and the SQLite solution cache.
//
// Quick start:
//
//	g, _ := generator.NewSpanningTree(generator.WithSeed(1)).Generate(15, 21)
//	sol, _ := search.NewBestFirst().Solve(search.NewSearchableMaze(g))
//	fmt.Println(g, sol.Positions())
//
// See each subpackage's doc.go for complexity and error contracts.
package lvmaze
