package bits

import (
	"fmt"
	"strings"
)

// Swap selects the chunk reordering applied to a whole register value.
type Swap uint8

const (
	// SwapNone leaves the value as is.
	SwapNone Swap = iota
	// SwapByte reverses the order of 8-bit chunks.
	SwapByte
	// SwapWord reverses the order of 16-bit chunks.
	SwapWord
)

// String returns the swap mode name used in configuration.
func (s Swap) String() string {
	switch s {
	case SwapNone:
		return "none"
	case SwapByte:
		return "byte"
	case SwapWord:
		return "word"
	default:
		return "unknown"
	}
}

// ChunkSize returns the chunk width in bits, or 0 for SwapNone.
func (s Swap) ChunkSize() int {
	switch s {
	case SwapByte:
		return 8
	case SwapWord:
		return 16
	default:
		return 0
	}
}

// Apply returns v with the swap applied. The result never aliases v.
// Every swap is its own inverse.
func (s Swap) Apply(v Vector) (Vector, error) {
	if s == SwapNone {
		return v.Clone(), nil
	}
	return SwapChunks(v, s.ChunkSize())
}

// ParseSwap parses a swap mode name.
func ParseSwap(name string) (Swap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return SwapNone, nil
	case "byte":
		return SwapByte, nil
	case "word":
		return SwapWord, nil
	default:
		return SwapNone, fmt.Errorf("%w: %q", ErrInvalidSwap, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Swap) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Swap) UnmarshalText(text []byte) error {
	parsed, err := ParseSwap(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SwapChunks splits v from the LSB end into chunkSize-bit chunks and reverses
// their order, keeping bit order inside each chunk. The length of v must be a
// multiple of chunkSize.
func SwapChunks(v Vector, chunkSize int) (Vector, error) {
	if chunkSize <= 0 || len(v)%chunkSize != 0 {
		return nil, fmt.Errorf("%w: cannot swap %d bits in chunks of %d", ErrWidthMismatch, len(v), chunkSize)
	}

	out := make(Vector, 0, len(v))
	for i := len(v) - chunkSize; i >= 0; i -= chunkSize {
		out = append(out, v[i:i+chunkSize]...)
	}
	return out, nil
}
