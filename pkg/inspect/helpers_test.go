package inspect

import (
	"testing"

	"github.com/regview/regview-go/pkg/design"
)

func u64(v uint64) *uint64 { return &v }

// testDesign returns a resolved design:
//
//	blkA              0x100
//	blkA.regA0        0x104  cmd[31:28] mode[27:1] en[0]
//	blkA.sub          no offset
//	blkA.sub.regS     0x20   data[15:0], 16 bits
func testDesign(t *testing.T) *design.Design {
	t.Helper()
	d := design.New(design.Root{DisplayName: "Example", Version: "1.0", Children: []string{"blkA"}})

	cmd := design.NewField("cmd", 28, 4, "rw", design.UnnamedReset("0x5"))
	cmd.Doc = "Command to run.\nSecond line."
	cmd.Enums = []design.Enum{{Name: "START", Value: "0x5"}, {Name: "STOP", Value: "0xa"}}

	elems := []*design.Element{
		{ID: "blkA", Name: "blkA", DisplayName: "Block A", Type: design.TypeBlock, Offset: u64(0x100),
			Doc: "First block.", Children: []string{"blkA.regA0", "blkA.sub"}},
		{ID: "blkA.regA0", Name: "regA0", Type: design.TypeRegister, Offset: u64(0x4), Doc: "Control register.",
			Fields: []*design.Field{
				design.NewField("en", 0, 1, "rw", design.UnnamedReset("1")),
				cmd,
				design.NewField("mode", 1, 27, "ro", design.NamedReset("0", "RS1")),
			}},
		{ID: "blkA.sub", Name: "sub", Type: design.TypeBlock, Children: []string{"blkA.sub.regS"}},
		{ID: "blkA.sub.regS", Name: "regS", Type: design.TypeRegister, Offset: u64(0x20), DataWidth: 16,
			Fields: []*design.Field{design.NewField("data", 0, 16, "rw", design.UnnamedReset("0xbeef"))}},
	}
	for _, e := range elems {
		if err := d.Add(e); err != nil {
			t.Fatalf("Add(%s) failed: %v", e.ID, err)
		}
	}
	if err := d.Resolve(); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	return d
}
