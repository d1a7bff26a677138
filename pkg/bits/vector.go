package bits

import "math/big"

// Vector is a fixed-length sequence of bits. Index 0 is the least-significant bit.
type Vector []Bit

// NewZero returns a vector of n known zero bits.
func NewZero(n int) Vector {
	return make(Vector, n)
}

// NewUnknown returns a vector of n unknown bits.
func NewUnknown(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = Unknown
	}
	return v
}

// FromUint64 returns the low n bits of value.
func FromUint64(value uint64, n int) Vector {
	v := make(Vector, n)
	for i := 0; i < n && i < 64; i++ {
		if value>>uint(i)&1 == 1 {
			v[i] = One
		}
	}
	return v
}

// FromBig returns the low n bits of x. x must not be negative.
func FromBig(x *big.Int, n int) Vector {
	v := make(Vector, n)
	for i := range v {
		if x.Bit(i) == 1 {
			v[i] = One
		}
	}
	return v
}

// Len returns the number of bits.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Equal reports whether v and o have the same length and bits.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// HasUnknown reports whether any bit is unknown.
func (v Vector) HasUnknown() bool {
	for _, b := range v {
		if b == Unknown {
			return true
		}
	}
	return false
}

// Slice returns a copy of bits [lo, hi).
func (v Vector) Slice(lo, hi int) Vector {
	out := make(Vector, hi-lo)
	copy(out, v[lo:hi])
	return out
}

// Big returns the value as an integer. ok is false if any bit is unknown.
func (v Vector) Big() (x *big.Int, ok bool) {
	x = new(big.Int)
	for i, b := range v {
		switch b {
		case Unknown:
			return nil, false
		case One:
			x.SetBit(x, i, 1)
		}
	}
	return x, true
}

// Uint64 returns the value as a uint64. ok is false if any bit is unknown or
// a set bit lies beyond bit 63.
func (v Vector) Uint64() (value uint64, ok bool) {
	for i, b := range v {
		switch b {
		case Unknown:
			return 0, false
		case One:
			if i >= 64 {
				return 0, false
			}
			value |= 1 << uint(i)
		}
	}
	return value, true
}

// String returns the binary rendering of v.
func (v Vector) String() string {
	return FormatVector(v, Binary)
}
