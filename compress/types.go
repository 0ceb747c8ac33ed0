package compress

import (
	"errors"
	"fmt"
)

// Sentinel errors for encoding and decoding.
var (
	ErrShortHeader    = errors.New("compress: header shorter than 6 bytes")
	ErrLengthMismatch = errors.New("compress: layout length does not match header")
	ErrTruncated      = errors.New("compress: stream ended before all cells were read")
	ErrCorruptStream  = errors.New("compress: corrupt run-length stream")
	ErrClosed         = errors.New("compress: writer is closed")
)

// Codec selects a run-length scheme.
type Codec uint8

const (
	// Alternating stores the first value then bare run lengths.
	Alternating Codec = iota
	// Pair stores (value, length) pairs.
	Pair
)

// String returns "alternating", "pair" or "codec(n)".
func (c Codec) String() string {
	switch c {
	case Alternating:
		return "alternating"
	case Pair:
		return "pair"
	}
	return fmt.Sprintf("codec(%d)", uint8(c))
}

const maxRun = 255
