// Package maze is the data model of lvmaze: a rectangular grid of FREE and
// WALL cells with a start and a goal position.
//
// What:
//
//   - Position is an immutable (row, column) value usable as a map key.
//   - Grid holds Rows×Cols cells in row-major order plus Start and Goal.
//   - NewGrid returns an all-FREE grid with Start=(0,0), Goal=(Rows-1,Cols-1).
//   - MarshalBinary/UnmarshalBinary implement the flat byte layout shared with
//     the compress, server and client packages.
//   - ConnectedComponents groups FREE cells into 4-connected regions.
//
// Why:
//
//   - Generators write a Grid once; searchers and transports only read it.
//   - A fixed byte layout keeps the wire format independent of Go types.
//
// Byte layout (6 + Rows·Cols bytes):
//
//	[0] rows  [1] cols  [2] start row  [3] start col  [4] goal row  [5] goal col
//	[6 ...]   one byte per cell, row-major, 0 = FREE, 1 = WALL
//
// Every header value is a single unsigned byte, so dimensions are capped at
// MaxDimension.
//
// Complexity:
//
//   - NewGrid, Clone, MarshalBinary, UnmarshalBinary: O(R×C) time and memory.
//   - ConnectedComponents: O(R×C×4) time, O(R×C) memory.
//
// Errors:
//
//   - ErrInvalidDimension: rows or cols is not positive.
//   - ErrDimensionTooLarge: rows or cols exceeds MaxDimension.
//   - ErrOutOfBounds: a position lies outside the grid.
//   - ErrNonRectangular: FromCells received ragged rows.
//   - ErrCorruptBuffer: a byte buffer does not match the layout.
package maze
