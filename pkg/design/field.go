package design

import (
	"slices"

	"github.com/regview/regview-go/pkg/bits"
)

// ResetKind tags the two shapes a field reset can take.
type ResetKind uint8

const (
	// ResetUnnamed applies under the owning register's default reset state.
	ResetUnnamed ResetKind = iota
	// ResetNamed applies under each state listed in Names.
	ResetNamed
)

// ResetSpec is the reset value of a field and the states it applies under.
type ResetSpec struct {
	Kind  ResetKind
	Value string
	Names []string
}

// UnnamedReset returns a reset spec tied to the register's default state.
func UnnamedReset(value string) ResetSpec {
	return ResetSpec{Kind: ResetUnnamed, Value: value}
}

// NamedReset returns a reset spec tied to the given reset states.
func NamedReset(value string, names ...string) ResetSpec {
	return ResetSpec{Kind: ResetNamed, Value: value, Names: names}
}

// AppliesTo reports whether the spec defines a value under reset state name,
// given the register's default state.
func (r ResetSpec) AppliesTo(name, defaultName string) bool {
	if r.Kind == ResetUnnamed {
		return name == defaultName
	}
	return slices.Contains(r.Names, name)
}

// Evaluate returns the nbits-wide reset value under state name. States the
// spec does not cover yield all unknown bits.
func (r ResetSpec) Evaluate(name, defaultName string, nbits int) (bits.Vector, error) {
	if !r.AppliesTo(name, defaultName) {
		return bits.NewUnknown(nbits), nil
	}
	return bits.ParseVector(r.Value, nbits)
}

// Enum labels one value of a field.
type Enum struct {
	Name  string
	Value string
	Doc   string
}

// Field is a named bit range within a register.
type Field struct {
	Name   string
	LSB    int
	NBits  int
	Access string
	Doc    string
	Enums  []Enum
	Reset  ResetSpec

	value bits.Vector
}

// NewField creates a field whose value is unknown until resets are resolved.
func NewField(name string, lsb, nbits int, access string, reset ResetSpec) *Field {
	return &Field{
		Name:   name,
		LSB:    lsb,
		NBits:  nbits,
		Access: access,
		Reset:  reset,
		value:  bits.NewUnknown(nbits),
	}
}

// Value returns a copy of the field's current value.
func (f *Field) Value() bits.Vector {
	return f.value.Clone()
}

// MSB returns the highest bit position covered by the field.
func (f *Field) MSB() int {
	return f.LSB + f.NBits - 1
}

// EnumFor returns the enum entry whose value equals v.
func (f *Field) EnumFor(v bits.Vector) (Enum, bool) {
	for _, e := range f.Enums {
		ev, err := bits.ParseVector(e.Value, f.NBits)
		if err != nil {
			continue
		}
		if ev.Equal(v) {
			return e, true
		}
	}
	return Enum{}, false
}

// EnumByName returns the enum entry with the given name.
func (f *Field) EnumByName(name string) (Enum, bool) {
	for _, e := range f.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return Enum{}, false
}
