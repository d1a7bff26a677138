package bits

// Bit is a single ternary digit of a register value.
type Bit uint8

const (
	// Zero is a known 0 bit.
	Zero Bit = iota
	// One is a known 1 bit.
	One
	// Unknown is a bit whose value is not determined.
	Unknown
)

// UnknownMarker is the digit rendered for an unknown bit, nibble or decimal value.
const UnknownMarker = "?"

// String returns "0", "1" or the unknown marker.
func (b Bit) String() string {
	switch b {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return UnknownMarker
	}
}

// char returns the single display character for the bit.
func (b Bit) char() byte {
	switch b {
	case Zero:
		return '0'
	case One:
		return '1'
	default:
		return UnknownMarker[0]
	}
}

// isUnknownMarker reports whether r marks an unknown digit in a literal.
func isUnknownMarker(r rune) bool {
	return r == '?' || r == 'u' || r == 'U'
}
