package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regview/regview-go/pkg/bits"
)

func TestResetSpecEvaluate(t *testing.T) {
	spec := NamedReset("0xA", "RS1")

	v, err := spec.Evaluate("RS2", "RS1", 4)
	require.NoError(t, err)
	assert.Equal(t, bits.NewUnknown(4), v)

	v, err = spec.Evaluate("RS1", "RS1", 4)
	require.NoError(t, err)
	assert.Equal(t, "0xA", bits.FormatVector(v, bits.Hexadecimal))

	unnamed := UnnamedReset("0x3")
	v, err = unnamed.Evaluate("Default", "Default", 4)
	require.NoError(t, err)
	assert.Equal(t, "0x3", bits.FormatVector(v, bits.Hexadecimal))

	v, err = unnamed.Evaluate("Other", "Default", 4)
	require.NoError(t, err)
	assert.True(t, v.Equal(bits.NewUnknown(4)))
}

func TestResolveResetsCollectsNames(t *testing.T) {
	d := buildDesign(t)
	require.NoError(t, d.Resolve())

	regB, err := d.Register("blkA.regB")
	require.NoError(t, err)
	assert.Equal(t, []string{"RS1", "RS2", "RS3"}, regB.Resets)

	// status is only defined under RS3, rsvd is unnamed and tied to RS1.
	v, err := FieldsToValue(bits.SwapNone, regB.Fields)
	require.NoError(t, err)
	assert.Equal(t, "0x0000??3A", bits.FormatVector(v, bits.Hexadecimal))
}

func TestApplyResetState(t *testing.T) {
	d := buildDesign(t)
	require.NoError(t, d.Resolve())
	regB, err := d.Register("blkA.regB")
	require.NoError(t, err)

	value := func() string {
		v, err := FieldsToValue(bits.SwapNone, regB.Fields)
		require.NoError(t, err)
		return bits.FormatVector(v, bits.Hexadecimal)
	}
	original := value()

	require.NoError(t, ApplyResetState(regB, "RS2"))
	assert.Equal(t, "0x??????3?", value())

	require.NoError(t, ApplyResetState(regB, "RS3"))
	assert.Equal(t, "0x????FF??", value())

	require.NoError(t, ApplyResetState(regB, "RS1"))
	assert.Equal(t, original, value())

	// Repeating the same state is idempotent.
	require.NoError(t, ApplyResetState(regB, "RS1"))
	assert.Equal(t, original, value())
}

func TestApplyResetStateRecomputesFromSpec(t *testing.T) {
	d := buildDesign(t)
	require.NoError(t, d.Resolve())
	reg0, err := d.Register("blkA.sub.reg0")
	require.NoError(t, err)

	require.NoError(t, ValueToFields(bits.SwapNone, mustVector(t, "0xFFFF", 16), reg0.Fields))
	require.NoError(t, ApplyResetState(reg0, DefaultResetName))

	v, err := FieldsToValue(bits.SwapNone, reg0.Fields)
	require.NoError(t, err)
	assert.Equal(t, "0xA512", bits.FormatVector(v, bits.Hexadecimal))
}

func TestApplyResetStateUnknownName(t *testing.T) {
	d := buildDesign(t)
	require.NoError(t, d.Resolve())
	regB, err := d.Register("blkA.regB")
	require.NoError(t, err)

	before := regB.Fields[0].Value()
	assert.ErrorIs(t, ApplyResetState(regB, "RS9"), ErrUnknownResetState)
	assert.Equal(t, before, regB.Fields[0].Value())
}

func TestResolveResetsRejectsNonRegister(t *testing.T) {
	d := buildDesign(t)
	blk, _ := d.Element("blkA")
	assert.ErrorIs(t, d.ResolveResets(blk), ErrNotRegister)
}

func TestResetSwitchRoundTrip(t *testing.T) {
	d := New(Root{Children: []string{"r"}})
	require.NoError(t, d.Add(&Element{ID: "r", Type: TypeRegister, DataWidth: 8, DefaultReset: "RS1",
		Fields: []*Field{
			NewField("f", 0, 4, "RW", NamedReset("0xA", "RS1")),
			NewField("g", 4, 4, "RW", NamedReset("0x5", "RS2")),
		}}))
	require.NoError(t, d.Resolve())
	r, _ := d.Element("r")

	f := r.Field("f")
	require.NotNil(t, f)
	assert.Equal(t, "0xA", bits.FormatVector(f.Value(), bits.Hexadecimal))

	require.NoError(t, ApplyResetState(r, "RS2"))
	assert.True(t, f.Value().Equal(bits.NewUnknown(4)))
	assert.Equal(t, "0x5", bits.FormatVector(r.Field("g").Value(), bits.Hexadecimal))

	require.NoError(t, ApplyResetState(r, "RS1"))
	assert.Equal(t, "0xA", bits.FormatVector(f.Value(), bits.Hexadecimal))
}
