package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/regview/regview-go/pkg/bits"
	"github.com/regview/regview-go/pkg/design"
)

// Formatter formats registers and element trees for display.
type Formatter struct {
	// ShowDoc appends element and field documentation.
	ShowDoc bool

	// IndentWidth is the number of spaces per indent level.
	IndentWidth int

	// Swap is the swap mode the register value is shown through.
	Swap bits.Swap
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowDoc:     true,
		IndentWidth: 2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatAddress renders an element address as 32-bit hex, or "-" when the
// element has none.
func FormatAddress(addr *uint64) string {
	if addr == nil {
		return "-"
	}
	return bits.FormatInteger(*addr, bits.Hexadecimal, 32)
}

// FormatBitRange renders a field's bit range as [msb:lsb], or [lsb] for a
// single bit.
func FormatBitRange(fd *design.Field) string {
	if fd.NBits == 1 {
		return fmt.Sprintf("[%d]", fd.LSB)
	}
	return fmt.Sprintf("[%d:%d]", fd.MSB(), fd.LSB)
}

// FormatFieldValue renders a field value in base, labelled with its enum
// name when one matches.
func FormatFieldValue(fd *design.Field, base bits.Base) string {
	v := fd.Value()
	text := bits.FormatVector(v, base)
	if e, ok := fd.EnumFor(v); ok {
		return fmt.Sprintf("%s (%s)", e.Name, text)
	}
	return text
}

// FieldRow represents a formatted field for display.
type FieldRow struct {
	Range  string
	Name   string
	Access string
	Value  string
	Doc    string
}

// FieldRows returns one row per field, highest bits first.
func FieldRows(reg *design.Element, base bits.Base) []FieldRow {
	rows := make([]FieldRow, 0, len(reg.Fields))
	for _, fd := range reg.Fields {
		rows = append(rows, FieldRow{
			Range:  FormatBitRange(fd),
			Name:   fd.Name,
			Access: fd.Access,
			Value:  FormatFieldValue(fd, base),
			Doc:    firstLine(fd.Doc),
		})
	}
	return rows
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// FormatRegister writes a register header followed by its field table.
func (f *Formatter) FormatRegister(w io.Writer, reg *design.Element, base bits.Base) error {
	if !reg.IsRegister() {
		return fmt.Errorf("%w: %q", design.ErrNotRegister, reg.ID)
	}

	value := "?"
	if v, err := design.FieldsToValue(f.Swap, reg.Fields); err == nil {
		value = bits.FormatVector(v, base)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s @ %s (%d bits)\n", reg.ID, FormatAddress(reg.Addr), reg.Width)
	if f.ShowDoc && reg.Doc != "" {
		sb.WriteString(f.Indent(1, firstLine(reg.Doc)) + "\n")
	}
	sb.WriteString(f.Indent(1, "value:  "+value) + "\n")
	if f.Swap != bits.SwapNone {
		sb.WriteString(f.Indent(1, "swap:   "+f.Swap.String()) + "\n")
	}
	sb.WriteString(f.Indent(1, "resets: "+strings.Join(reg.Resets, ", ")) + "\n")

	rows := FieldRows(reg, base)
	if len(rows) == 0 {
		sb.WriteString(f.Indent(1, "(no fields)") + "\n")
	}
	var wr, wn, wa, wv int
	for _, r := range rows {
		wr = max(wr, len(r.Range))
		wn = max(wn, len(r.Name))
		wa = max(wa, len(r.Access))
		wv = max(wv, len(r.Value))
	}
	for _, r := range rows {
		line := fmt.Sprintf("%-*s  %-*s  %-*s  %-*s", wr, r.Range, wn, r.Name, wa, r.Access, wv, r.Value)
		if f.ShowDoc && r.Doc != "" {
			line += "  " + r.Doc
		}
		sb.WriteString(f.Indent(1, strings.TrimRight(line, " ")) + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatTree writes the element tree of d, one element per line.
func (f *Formatter) FormatTree(w io.Writer, d *design.Design) error {
	var sb strings.Builder
	name := d.Root.DisplayName
	if d.Root.Version != "" {
		name += " v" + d.Root.Version
	}
	sb.WriteString(name + "\n")
	for _, id := range d.Root.Children {
		f.formatElement(&sb, d, id, 1)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (f *Formatter) formatElement(sb *strings.Builder, d *design.Design, id string, depth int) {
	e, ok := d.Element(id)
	if !ok {
		sb.WriteString(f.Indent(depth, id+" (missing)") + "\n")
		return
	}

	label := e.Name
	if e.DisplayName != "" {
		label = e.DisplayName
	}
	line := fmt.Sprintf("%s %s [%s]", FormatAddress(e.Addr), label, e.Type)
	if f.ShowDoc && e.Doc != "" {
		line += " - " + firstLine(e.Doc)
	}
	sb.WriteString(f.Indent(depth, line) + "\n")

	for _, child := range e.Children {
		f.formatElement(sb, d, child, depth+1)
	}
}
