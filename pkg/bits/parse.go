package bits

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ParseBase splits a literal into its digits and base. A case-insensitive 0x
// prefix selects base 16 and lower-cases the digits, 0b selects base 2, and
// anything else is base 10. Non-hex digits keep their case.
func ParseBase(text string) (digits string, base int) {
	lc := strings.ToLower(text)
	switch {
	case strings.HasPrefix(lc, "0x"):
		return lc[2:], 16
	case strings.HasPrefix(lc, "0b"):
		return text[2:], 2
	default:
		return text, 10
	}
}

// cleanLiteral trims whitespace and drops '_' separators.
func cleanLiteral(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), "_", "")
}

// ParseInteger parses a literal in any supported base into an integer.
func ParseInteger(text string) (uint64, error) {
	digits, base := ParseBase(cleanLiteral(text))
	if digits == "" {
		return 0, fmt.Errorf("%w: %q has no digits", ErrMalformedLiteral, text)
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedLiteral, text, err)
	}
	return v, nil
}

// ParseVector parses a literal into a vector of exactly length bits. The
// value is zero-padded at the most-significant end; bits beyond length are
// dropped without error.
func ParseVector(text string, length int) (Vector, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: length %d", ErrWidthMismatch, length)
	}

	digits, base := ParseBase(cleanLiteral(text))
	if digits == "" {
		return nil, fmt.Errorf("%w: %q has no digits", ErrMalformedLiteral, text)
	}

	var msbFirst []Bit
	switch base {
	case 16:
		msbFirst = make([]Bit, 0, 4*len(digits))
		for _, r := range digits {
			if isUnknownMarker(r) {
				msbFirst = append(msbFirst, Unknown, Unknown, Unknown, Unknown)
				continue
			}
			n, ok := hexDigitValue(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q is not a hex digit in %q", ErrMalformedLiteral, r, text)
			}
			for i := 3; i >= 0; i-- {
				msbFirst = append(msbFirst, Bit(n>>uint(i)&1))
			}
		}

	case 2:
		msbFirst = make([]Bit, 0, len(digits))
		for _, r := range digits {
			switch {
			case r == '0':
				msbFirst = append(msbFirst, Zero)
			case r == '1':
				msbFirst = append(msbFirst, One)
			case isUnknownMarker(r):
				msbFirst = append(msbFirst, Unknown)
			default:
				return nil, fmt.Errorf("%w: %q is not a binary digit in %q", ErrMalformedLiteral, r, text)
			}
		}

	default:
		unknown := false
		for _, r := range digits {
			switch {
			case isUnknownMarker(r):
				unknown = true
			case r >= '0' && r <= '9':
			default:
				return nil, fmt.Errorf("%w: %q is not a decimal digit in %q", ErrMalformedLiteral, r, text)
			}
		}
		// Decimal cannot express a partially known value.
		if unknown {
			return NewUnknown(length), nil
		}
		x, ok := new(big.Int).SetString(digits, 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLiteral, text)
		}
		return FromBig(x, length), nil
	}

	v := NewZero(length)
	for i := 0; i < length && i < len(msbFirst); i++ {
		v[i] = msbFirst[len(msbFirst)-1-i]
	}
	return v, nil
}

func hexDigitValue(r rune) (uint8, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint8(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint8(r-'a') + 10, true
	default:
		return 0, false
	}
}
