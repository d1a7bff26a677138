package bits

import (
	"fmt"
	"strings"
)

// Base is a numeric display base.
type Base uint8

const (
	// Hexadecimal renders with a 0x prefix, one digit per nibble.
	Hexadecimal Base = iota
	// Binary renders with a 0b prefix, one digit per bit.
	Binary
	// Decimal renders without a prefix.
	Decimal
)

// String returns the base name used in configuration.
func (b Base) String() string {
	switch b {
	case Hexadecimal:
		return "hexadecimal"
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// Radix returns 16, 2 or 10.
func (b Base) Radix() int {
	switch b {
	case Hexadecimal:
		return 16
	case Binary:
		return 2
	default:
		return 10
	}
}

// ParseBaseName parses a display base name. Short forms (hex, bin, dec) and
// radix numbers are accepted.
func ParseBaseName(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hexadecimal", "hex", "16", "x":
		return Hexadecimal, nil
	case "binary", "bin", "2", "b":
		return Binary, nil
	case "decimal", "dec", "10", "d":
		return Decimal, nil
	default:
		return Hexadecimal, fmt.Errorf("%w: %q", ErrInvalidBase, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Base) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base) UnmarshalText(text []byte) error {
	parsed, err := ParseBaseName(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
