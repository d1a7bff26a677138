package inspect

import (
	"strings"

	"github.com/regview/regview-go/pkg/design"
)

// Children returns the child ids of id, or the root children for "".
func Children(d *design.Design, id string) []string {
	if id == "" {
		return d.Root.Children
	}
	if e, ok := d.Element(id); ok {
		return e.Children
	}
	return nil
}

// lastSegment returns the part of id after its final dot.
func lastSegment(id string) string {
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		return id[i+1:]
	}
	return id
}

// ResolveChild resolves a child name of parentID to its id
// (case-insensitive). Both the id segment and the element name match.
func ResolveChild(d *design.Design, parentID, name string) (string, bool) {
	for _, id := range Children(d, parentID) {
		if strings.EqualFold(lastSegment(id), name) {
			return id, true
		}
	}
	for _, id := range Children(d, parentID) {
		if e, ok := d.Element(id); ok && strings.EqualFold(e.Name, name) {
			return id, true
		}
	}
	return "", false
}

// ChildNames returns the id segments of the children of id.
func ChildNames(d *design.Design, id string) []string {
	children := Children(d, id)
	names := make([]string, 0, len(children))
	for _, c := range children {
		names = append(names, lastSegment(c))
	}
	return names
}

// FieldNames returns the field names of a register, highest bits first.
func FieldNames(d *design.Design, id string) []string {
	reg, err := d.Register(id)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(reg.Fields))
	for _, f := range reg.Fields {
		names = append(names, f.Name)
	}
	return names
}
