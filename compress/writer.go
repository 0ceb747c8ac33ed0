package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/katalvlaran/lvmaze/maze"
)

// Writer collects one maze layout and writes its encoding to the
// underlying writer on Close.
type Writer struct {
	w      io.Writer
	codec  Codec
	buf    bytes.Buffer
	closed bool
}

// NewWriter returns a Writer encoding with codec into w.
func NewWriter(w io.Writer, codec Codec) *Writer {
	return &Writer{w: w, codec: codec}
}

// Write buffers p. Nothing reaches the underlying writer before Close.
func (cw *Writer) Write(p []byte) (int, error) {
	if cw.closed {
		return 0, ErrClosed
	}
	return cw.buf.Write(p)
}

// Close encodes the buffered layout and writes it out.
// Closing twice is a no-op.
func (cw *Writer) Close() error {
	if cw.closed {
		return nil
	}
	cw.closed = true

	enc, err := encode(cw.buf.Bytes(), cw.codec)
	if err != nil {
		return err
	}
	_, err = cw.w.Write(enc)
	return err
}

// Compress encodes a complete layout in memory.
func Compress(layout []byte, codec Codec) ([]byte, error) {
	return encode(layout, codec)
}

// encode validates the layout and appends the runs after the header.
func encode(layout []byte, codec Codec) ([]byte, error) {
	// 1) Validate framing.
	n, err := maze.CellCount(layout)
	if err != nil {
		return nil, fmt.Errorf("encode: %w: %w", ErrShortHeader, err)
	}
	if n == 0 || len(layout) != maze.HeaderSize+n {
		return nil, fmt.Errorf("encode: header announces %d cells, got %d: %w",
			n, len(layout)-maze.HeaderSize, ErrLengthMismatch)
	}
	cells := layout[maze.HeaderSize:]
	for i, b := range cells {
		if b > 1 {
			return nil, fmt.Errorf("encode: cell %d has value %d: %w", i, b, ErrCorruptStream)
		}
	}

	// 2) Copy the header, then emit runs.
	out := make([]byte, maze.HeaderSize, maze.HeaderSize+len(cells)/4+2)
	copy(out, layout[:maze.HeaderSize])
	switch codec {
	case Alternating:
		return appendAlternating(out, cells), nil
	case Pair:
		return appendPairs(out, cells), nil
	}
	return nil, fmt.Errorf("encode: %v: %w", codec, ErrCorruptStream)
}

// appendAlternating writes the first value, then run lengths that flip
// between values. A full 255 run followed by more of the same value gets
// a zero-length run of the other value in between.
func appendAlternating(out, cells []byte) []byte {
	cur := cells[0]
	out = append(out, cur)
	run := 0
	for _, b := range cells {
		switch {
		case b == cur && run < maxRun:
			run++
		case b == cur: // run is full
			out = append(out, maxRun, 0)
			run = 1
		default:
			out = append(out, byte(run))
			cur = b
			run = 1
		}
	}
	return append(out, byte(run))
}

// appendPairs writes (value, length) pairs with length ≤ 255.
func appendPairs(out, cells []byte) []byte {
	cur, run := cells[0], 0
	for _, b := range cells {
		if b == cur && run < maxRun {
			run++
			continue
		}
		out = append(out, cur, byte(run))
		cur, run = b, 1
	}
	return append(out, cur, byte(run))
}
