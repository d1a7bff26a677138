package bits

import "testing"

func TestVectorUint64(t *testing.T) {
	v := FromUint64(0xA5, 8)
	got, ok := v.Uint64()
	if !ok || got != 0xA5 {
		t.Errorf("Uint64() = (%#x, %v), want (0xa5, true)", got, ok)
	}

	v[3] = Unknown
	if _, ok := v.Uint64(); ok {
		t.Error("Uint64() ok = true for vector with unknown bit")
	}
}

func TestVectorSliceCopies(t *testing.T) {
	v := FromUint64(0xF0, 8)
	s := v.Slice(4, 8)
	if !s.Equal(Vector{1, 1, 1, 1}) {
		t.Fatalf("Slice(4, 8) = %v", s)
	}
	s[0] = Zero
	if v[4] != One {
		t.Error("Slice returned a view instead of a copy")
	}
}

func TestVectorEqual(t *testing.T) {
	if NewZero(4).Equal(NewZero(5)) {
		t.Error("vectors of different length compared equal")
	}
	if !NewUnknown(3).Equal(Vector{Unknown, Unknown, Unknown}) {
		t.Error("NewUnknown(3) not all unknown")
	}
}
