package bits

import (
	"strconv"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// FormatVector renders v in the given base.
//
// A single bit renders bare. Hex groups bits from the LSB in fours and shows
// any group holding an unknown bit as one '?'. Binary shows every bit.
// Decimal shows '?' if any bit is unknown.
func FormatVector(v Vector, base Base) string {
	if len(v) == 1 {
		return v[0].String()
	}

	switch base {
	case Hexadecimal:
		n := (len(v) + 3) / 4
		out := make([]byte, n)
		for i := 0; i < n; i++ {
			lo := i * 4
			hi := min(lo+4, len(v))
			chunk := v[lo:hi]
			digit := UnknownMarker[0]
			if !chunk.HasUnknown() {
				val := 0
				for j := len(chunk) - 1; j >= 0; j-- {
					val = val<<1 | int(chunk[j])
				}
				digit = hexDigits[val]
			}
			out[n-1-i] = digit
		}
		return "0x" + string(out)

	case Binary:
		out := make([]byte, len(v))
		for i, b := range v {
			out[len(v)-1-i] = b.char()
		}
		return "0b" + string(out)

	case Decimal:
		x, ok := v.Big()
		if !ok {
			return UnknownMarker
		}
		return x.String()

	default:
		return ""
	}
}

// FormatInteger renders value in the given base, zero-padded to bitWidth/4
// hex digits or bitWidth binary digits. A bitWidth of 1 renders the bare value.
func FormatInteger(value uint64, base Base, bitWidth int) string {
	if bitWidth == 1 {
		return strconv.FormatUint(value, 10)
	}

	switch base {
	case Hexadecimal:
		s := strings.ToUpper(strconv.FormatUint(value, 16))
		return "0x" + strings.Repeat("0", max(bitWidth/4-len(s), 0)) + s
	case Binary:
		s := strconv.FormatUint(value, 2)
		return "0b" + strings.Repeat("0", max(bitWidth-len(s), 0)) + s
	default:
		return strconv.FormatUint(value, 10)
	}
}

// Hex renders value as unpadded lower-case hex with a 0x prefix.
func Hex(value uint64) string {
	return "0x" + strconv.FormatUint(value, 16)
}
