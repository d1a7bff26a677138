package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regview/regview-go/pkg/bits"
)

func u64(v uint64) *uint64 { return &v }

func mustVector(t *testing.T, s string, n int) bits.Vector {
	t.Helper()
	v, err := bits.ParseVector(s, n)
	require.NoError(t, err)
	return v
}

// buildDesign returns an unresolved design:
//
//	blkA            offset 0x1000
//	blkA.sub        offset 0x100, 16-bit
//	blkA.sub.reg0   offset 0x4
//	blkA.regB       offset 0x8, default reset RS1
//	blkA.bare       no offset
//	blkA.bare.reg2  offset 0x10
func buildDesign(t *testing.T) *Design {
	t.Helper()
	d := New(Root{DisplayName: "Test", Version: "1.0", Children: []string{"blkA"}})

	add := func(e *Element) {
		require.NoError(t, d.Add(e))
	}

	add(&Element{ID: "blkA", Name: "blkA", Type: TypeBlock, Offset: u64(0x1000),
		Children: []string{"blkA.sub", "blkA.regB", "blkA.bare"}})
	add(&Element{ID: "blkA.sub", Name: "sub", Type: TypeBlock, Offset: u64(0x100), DataWidth: 16,
		Children: []string{"blkA.sub.reg0"}})
	add(&Element{ID: "blkA.sub.reg0", Name: "reg0", Type: TypeRegister, Offset: u64(0x4),
		Fields: []*Field{
			NewField("lo", 0, 8, "RW", UnnamedReset("0x12")),
			NewField("hi", 8, 8, "RO", UnnamedReset("0b1010_0101")),
		}})
	add(&Element{ID: "blkA.regB", Name: "regB", Type: TypeRegister, Offset: u64(0x8), DefaultReset: "RS1",
		Fields: []*Field{
			NewField("ctl", 0, 4, "RW", NamedReset("0xA", "RS1")),
			NewField("mode", 4, 4, "RW", NamedReset("0x3", "RS2", "RS1")),
			NewField("status", 8, 8, "RO", NamedReset("0xFF", "RS3")),
			NewField("rsvd", 16, 16, "RO", UnnamedReset("0")),
		}})
	add(&Element{ID: "blkA.bare", Name: "bare", Type: TypeBlock, Children: []string{"blkA.bare.reg2"}})
	add(&Element{ID: "blkA.bare.reg2", Name: "reg2", Type: TypeRegister, Offset: u64(0x10),
		Fields: []*Field{NewField("all", 0, 32, "RW", UnnamedReset("0xDEAD_BEEF"))}})
	return d
}

func TestResolveAddress(t *testing.T) {
	d := buildDesign(t)

	tests := []struct {
		id   string
		want *uint64
	}{
		{"blkA", u64(0x1000)},
		{"blkA.sub", u64(0x1100)},
		{"blkA.sub.reg0", u64(0x1104)},
		{"blkA.regB", u64(0x1008)},
		{"blkA.bare", nil},
		{"blkA.bare.reg2", u64(0x10)},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := d.ResolveAddress(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDataWidth(t *testing.T) {
	d := buildDesign(t)

	w, err := d.ResolveDataWidth("blkA.sub.reg0")
	require.NoError(t, err)
	assert.Equal(t, 16, w)

	w, err = d.ResolveDataWidth("blkA.regB")
	require.NoError(t, err)
	assert.Equal(t, DefaultDataWidth, w)

	d.Root.DataWidth = 64
	w, err = d.ResolveDataWidth("blkA.regB")
	require.NoError(t, err)
	assert.Equal(t, 64, w)
}

func TestResolveDefaultReset(t *testing.T) {
	d := buildDesign(t)

	name, err := d.ResolveDefaultReset("blkA.sub.reg0")
	require.NoError(t, err)
	assert.Equal(t, DefaultResetName, name)

	d.Root.DefaultReset = "POR"
	name, err = d.ResolveDefaultReset("blkA.sub.reg0")
	require.NoError(t, err)
	assert.Equal(t, "POR", name)

	name, err = d.ResolveDefaultReset("blkA.regB")
	require.NoError(t, err)
	assert.Equal(t, "RS1", name)
}

func TestResolveMissingAncestor(t *testing.T) {
	d := New(Root{Children: []string{"orphan.reg"}})
	require.NoError(t, d.Add(&Element{ID: "orphan.reg", Type: TypeRegister,
		Fields: []*Field{NewField("f", 0, 32, "RW", UnnamedReset("0"))}}))

	_, err := d.ResolveDataWidth("orphan.reg")
	assert.ErrorIs(t, err, ErrMissingElement)

	_, err = d.ResolveDefaultReset("orphan.reg")
	assert.ErrorIs(t, err, ErrMissingElement)

	assert.ErrorIs(t, d.Resolve(), ErrMissingElement)
}

func TestResolve(t *testing.T) {
	d := buildDesign(t)
	require.NoError(t, d.Resolve())

	reg0, err := d.Register("blkA.sub.reg0")
	require.NoError(t, err)
	assert.Equal(t, 16, reg0.Width)
	assert.Equal(t, []string{DefaultResetName}, reg0.Resets)
	require.NotNil(t, reg0.Addr)
	assert.Equal(t, uint64(0x1104), *reg0.Addr)

	// Highest LSB first.
	assert.Equal(t, "hi", reg0.Fields[0].Name)
	assert.Equal(t, "lo", reg0.Fields[1].Name)

	v, err := FieldsToValue(bits.SwapNone, reg0.Fields)
	require.NoError(t, err)
	assert.Equal(t, "0xA512", bits.FormatVector(v, bits.Hexadecimal))
}

func TestResolveRejectsIncludes(t *testing.T) {
	d := New(Root{Children: []string{"inc"}})
	require.NoError(t, d.Add(&Element{ID: "inc", Type: TypeInclude}))
	assert.ErrorIs(t, d.Resolve(), ErrUnresolvedInclude)
}

func TestResolveMissingChild(t *testing.T) {
	d := New(Root{Children: []string{"blk"}})
	require.NoError(t, d.Add(&Element{ID: "blk", Type: TypeBlock, Children: []string{"blk.gone"}}))
	assert.ErrorIs(t, d.Resolve(), ErrMissingElement)
}

func TestDesignAddDuplicate(t *testing.T) {
	d := New(Root{})
	require.NoError(t, d.Add(&Element{ID: "a", Type: TypeBlock}))
	assert.ErrorIs(t, d.Add(&Element{ID: "a", Type: TypeBlock}), ErrDuplicateElement)
}

func TestDesignRegister(t *testing.T) {
	d := buildDesign(t)

	_, err := d.Register("blkA")
	assert.ErrorIs(t, err, ErrNotRegister)

	_, err = d.Register("nope")
	assert.ErrorIs(t, err, ErrMissingElement)

	first := d.FirstRegister()
	require.NotNil(t, first)
	assert.Equal(t, "blkA.sub.reg0", first.ID)
	assert.Equal(t, 6, d.Len())
}

func TestParentID(t *testing.T) {
	assert.Equal(t, "", ParentID("top"))
	assert.Equal(t, "a", ParentID("a.b"))
	assert.Equal(t, "a.b", ParentID("a.b.c"))
}

func TestFieldEnums(t *testing.T) {
	f := NewField("cmd", 0, 4, "RW", UnnamedReset("0"))
	f.Enums = []Enum{{Name: "START", Value: "0x5"}, {Name: "STOP", Value: "0b1010"}, {Name: "BROKEN", Value: "0xZ"}}

	e, ok := f.EnumFor(mustVector(t, "5", 4))
	require.True(t, ok)
	assert.Equal(t, "START", e.Name)

	e, ok = f.EnumFor(mustVector(t, "0xA", 4))
	require.True(t, ok)
	assert.Equal(t, "STOP", e.Name)

	_, ok = f.EnumFor(mustVector(t, "1", 4))
	assert.False(t, ok)

	e, ok = f.EnumByName("STOP")
	require.True(t, ok)
	assert.Equal(t, "0b1010", e.Value)
}
