package design

import (
	"fmt"
	"slices"

	"github.com/regview/regview-go/pkg/bits"
)

// ResolveResets computes the reset states of a register and seeds every
// field value under its default state. Resets[0] is the default; the other
// names follow in the order fields first declare them. Fields end up sorted
// by LSB, highest first.
//
// Values are always recomputed from the reset specs, so calling it again is
// safe.
func (d *Design) ResolveResets(reg *Element) error {
	if !reg.IsRegister() {
		return fmt.Errorf("%w: %q", ErrNotRegister, reg.ID)
	}

	def, err := d.ResolveDefaultReset(reg.ID)
	if err != nil {
		return fmt.Errorf("default reset of %q: %w", reg.ID, err)
	}

	resets := []string{def}
	for _, f := range reg.Fields {
		if f.Reset.Kind != ResetNamed {
			continue
		}
		for _, name := range f.Reset.Names {
			if !slices.Contains(resets, name) {
				resets = append(resets, name)
			}
		}
	}
	reg.Resets = resets

	if err := evaluateResets(reg, def); err != nil {
		return err
	}

	slices.SortStableFunc(reg.Fields, func(a, b *Field) int {
		return b.LSB - a.LSB
	})
	return nil
}

// ApplyResetState sets every field of reg to its reset value under name.
// Fields with no value for that state become unknown.
func ApplyResetState(reg *Element, name string) error {
	if !slices.Contains(reg.Resets, name) {
		return fmt.Errorf("%w: %q for %s (have %v)", ErrUnknownResetState, name, reg.ID, reg.Resets)
	}
	return evaluateResets(reg, name)
}

// evaluateResets assigns all field values or none.
func evaluateResets(reg *Element, name string) error {
	def := DefaultResetName
	if len(reg.Resets) > 0 {
		def = reg.Resets[0]
	}

	values := make([]bits.Vector, len(reg.Fields))
	for i, f := range reg.Fields {
		v, err := f.Reset.Evaluate(name, def, f.NBits)
		if err != nil {
			return fmt.Errorf("%s.%s reset: %w", reg.ID, f.Name, err)
		}
		values[i] = v
	}
	for i, f := range reg.Fields {
		f.value = values[i]
	}
	return nil
}
