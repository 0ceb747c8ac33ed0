// Package compress run-length encodes the maze byte layout
// (6-byte header followed by rows·cols cell bytes of 0 or 1).
//
// Two codecs share the same framing: the header is copied verbatim and the
// cell bytes are replaced by runs.
//
//   - Alternating: one byte holding the first cell value, then run lengths
//     only, alternating between 0 and 1. A run longer than 255 is split by a
//     zero-length run of the other value.
//   - Pair: (value, length) byte pairs, length in 1..255.
//
// Writer buffers a layout and encodes it on Close; Reader decodes one
// layout, using the header's rows·cols to know when the cells are complete.
// Compress and Decompress wrap both for in-memory buffers.
//
// Complexity: O(R·C) time for both directions, O(R·C) memory.
//
// Errors:
//
//   - ErrShortHeader    fewer than 6 header bytes.
//   - ErrLengthMismatch encoder input length disagrees with its header.
//   - ErrTruncated      stream ended before every cell was decoded.
//   - ErrCorruptStream  cell value above 1, or a run overflowing the grid.
//   - ErrClosed         Write after Close.
package compress
