package design

import (
	"fmt"

	"github.com/regview/regview-go/pkg/bits"
)

// ValueToFields splits a whole-register value into its fields. The swap is
// applied first and field ranges index the swapped value.
func ValueToFields(swap bits.Swap, value bits.Vector, fields []*Field) error {
	swapped, err := swap.Apply(value)
	if err != nil {
		return err
	}

	for _, f := range fields {
		if f.LSB < 0 || f.NBits < 0 || f.LSB > len(swapped) || f.NBits > len(swapped)-f.LSB {
			return fmt.Errorf("%w: field %s [%d:%d] in %d-bit value",
				bits.ErrWidthMismatch, f.Name, f.MSB(), f.LSB, len(swapped))
		}
	}
	for _, f := range fields {
		f.value = swapped.Slice(f.LSB, f.LSB+f.NBits)
	}
	return nil
}

// FieldsToValue assembles the register value from its fields and undoes the
// swap. The fields must partition the register, which Resolve guarantees.
func FieldsToValue(swap bits.Swap, fields []*Field) (bits.Vector, error) {
	width := 0
	for _, f := range fields {
		width += f.NBits
	}

	v := bits.NewZero(width)
	for _, f := range fields {
		if len(f.value) != f.NBits || f.LSB < 0 || f.LSB+f.NBits > width {
			return nil, fmt.Errorf("%w: field %s holds %d bits at [%d:%d] of %d",
				bits.ErrWidthMismatch, f.Name, len(f.value), f.MSB(), f.LSB, width)
		}
		copy(v[f.LSB:], f.value)
	}
	return swap.Apply(v)
}

// SetFieldValue replaces a single field value. The value must have exactly
// NBits bits; on error the field is unchanged.
func SetFieldValue(f *Field, v bits.Vector) error {
	if len(v) != f.NBits {
		return fmt.Errorf("%w: field %s is %d bits, value is %d",
			bits.ErrWidthMismatch, f.Name, f.NBits, len(v))
	}
	f.value = v.Clone()
	return nil
}
