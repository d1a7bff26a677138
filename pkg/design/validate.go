package design

import (
	"fmt"

	"github.com/regview/regview-go/pkg/bits"
)

// ValidateFields checks that a register's fields exactly partition its
// resolved width and that every reset literal parses.
func ValidateFields(reg *Element) error {
	owner := make([]string, reg.Width)
	names := make(map[string]bool, len(reg.Fields))
	total := 0

	for _, f := range reg.Fields {
		if names[f.Name] {
			return fmt.Errorf("%s: %w: %q", reg.ID, ErrDuplicateField, f.Name)
		}
		names[f.Name] = true

		if f.NBits < 1 || f.LSB < 0 || f.LSB > reg.Width || f.NBits > reg.Width-f.LSB {
			return fmt.Errorf("%s.%s: %w: bits [%d:%d] in %d-bit register",
				reg.ID, f.Name, ErrFieldRange, f.MSB(), f.LSB, reg.Width)
		}
		for b := f.LSB; b < f.LSB+f.NBits; b++ {
			if owner[b] != "" {
				return fmt.Errorf("%s: %w: %q and %q share bit %d",
					reg.ID, ErrFieldOverlap, owner[b], f.Name, b)
			}
			owner[b] = f.Name
		}
		total += f.NBits

		if _, err := bits.ParseVector(f.Reset.Value, f.NBits); err != nil {
			return fmt.Errorf("%s.%s reset: %w", reg.ID, f.Name, err)
		}
	}

	if total != reg.Width {
		return fmt.Errorf("%s: %w: fields cover %d of %d bits", reg.ID, ErrPartition, total, reg.Width)
	}
	return nil
}
