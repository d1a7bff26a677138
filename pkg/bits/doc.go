// Package bits provides the ternary bit vectors that carry register values,
// together with the literal parser, display formatter and chunk swap used to
// move between text and bits.
//
// A Vector is ordered least-significant bit first. Each Bit is Zero, One or
// Unknown; unknown bits mean the value is not determined under the current
// reset state and flow through every conversion without raising errors.
//
// # Basic Usage
//
//	v, err := bits.ParseVector("0xA?", 12)
//	if err != nil {
//	    return err
//	}
//	bits.FormatVector(v, bits.Hexadecimal) // "0x0A?"
//	bits.FormatVector(v, bits.Decimal)     // "?"
//
//	swapped, err := bits.SwapByte.Apply(v32)
//
// # Literals
//
// Literals use a case-insensitive 0x (hex) or 0b (binary) prefix, decimal
// otherwise, and may contain '_' separators. '?' and 'u' mark unknown digits.
// In hex an unknown digit covers four bits; in decimal any unknown digit makes
// the whole value unknown.
//
// # Display
//
// Hex output collapses any nibble holding an unknown bit into a single '?'.
// This is lossy on purpose: the binary form is the one that shows exactly
// which bits are unknown.
package bits
