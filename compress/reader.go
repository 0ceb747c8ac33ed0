package compress

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvmaze/maze"
)

// Reader decodes one compressed layout from an underlying reader and
// serves the plain layout bytes through Read.
type Reader struct {
	src     *bufio.Reader
	codec   Codec
	decoded *bytes.Reader // nil until the first Read
	err     error
}

// NewReader returns a Reader decoding codec from r.
// Bytes following the encoded layout are left unread in the buffer.
func NewReader(r io.Reader, codec Codec) *Reader {
	return &Reader{src: bufio.NewReader(r), codec: codec}
}

// Read decodes the whole layout on first use, then copies it into p.
func (cr *Reader) Read(p []byte) (int, error) {
	if cr.decoded == nil && cr.err == nil {
		var layout []byte
		layout, cr.err = decode(cr.src, cr.codec)
		cr.decoded = bytes.NewReader(layout)
	}
	if cr.err != nil {
		return 0, cr.err
	}
	return cr.decoded.Read(p)
}

// Decompress decodes a complete encoded layout held in memory.
func Decompress(data []byte, codec Codec) ([]byte, error) {
	return decode(bufio.NewReader(bytes.NewReader(data)), codec)
}

func decode(src *bufio.Reader, codec Codec) ([]byte, error) {
	// 1) Header.
	header := make([]byte, maze.HeaderSize)
	if _, err := io.ReadFull(src, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("decode: %w", ErrShortHeader)
		}
		return nil, err
	}
	n, err := maze.CellCount(header)
	if err != nil {
		return nil, fmt.Errorf("decode: %w: %w", ErrShortHeader, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("decode: zero-sized grid: %w", ErrCorruptStream)
	}
	layout := make([]byte, maze.HeaderSize, maze.HeaderSize+n)
	copy(layout, header)

	// 2) Runs until the announced cell count is reached.
	switch codec {
	case Alternating:
		return decodeAlternating(src, layout, n)
	case Pair:
		return decodePairs(src, layout, n)
	}
	return nil, fmt.Errorf("decode: %v: %w", codec, ErrCorruptStream)
}

func decodeAlternating(src *bufio.Reader, layout []byte, n int) ([]byte, error) {
	cur, err := readByte(src)
	if err != nil {
		return nil, err
	}
	if cur > 1 {
		return nil, fmt.Errorf("decode: first value %d: %w", cur, ErrCorruptStream)
	}
	for remaining := n; remaining > 0; {
		run, err := readByte(src)
		if err != nil {
			return nil, err
		}
		if layout, remaining, err = appendRun(layout, cur, int(run), remaining); err != nil {
			return nil, err
		}
		cur = 1 - cur
	}
	return layout, nil
}

func decodePairs(src *bufio.Reader, layout []byte, n int) ([]byte, error) {
	for remaining := n; remaining > 0; {
		val, err := readByte(src)
		if err != nil {
			return nil, err
		}
		run, err := readByte(src)
		if err != nil {
			return nil, err
		}
		if val > 1 {
			return nil, fmt.Errorf("decode: value %d: %w", val, ErrCorruptStream)
		}
		if layout, remaining, err = appendRun(layout, val, int(run), remaining); err != nil {
			return nil, err
		}
	}
	return layout, nil
}

// appendRun appends run copies of v, refusing to overflow the grid.
func appendRun(layout []byte, v byte, run, remaining int) ([]byte, int, error) {
	if run > remaining {
		return nil, 0, fmt.Errorf("decode: run of %d exceeds %d remaining cells: %w", run, remaining, ErrCorruptStream)
	}
	for i := 0; i < run; i++ {
		layout = append(layout, v)
	}
	return layout, remaining - run, nil
}

// readByte maps a premature end of stream to ErrTruncated.
func readByte(src *bufio.Reader) (byte, error) {
	b, err := src.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("decode: %w", ErrTruncated)
	}
	return b, err
}
