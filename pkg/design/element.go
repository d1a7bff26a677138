package design

import (
	"fmt"
	"strings"
)

const (
	// DefaultDataWidth applies when neither an element, its ancestors nor
	// the root set a data width.
	DefaultDataWidth = 32

	// DefaultResetName applies when no element or the root names a default
	// reset state.
	DefaultResetName = "Default"
)

// ElementType is the kind of a design element.
type ElementType string

const (
	TypeRegister ElementType = "reg"
	TypeBlock    ElementType = "blk"
	TypeMemory   ElementType = "mem"
	TypeInclude  ElementType = "include"
)

// Element is a node in the design tree.
type Element struct {
	ID           string
	Name         string
	DisplayName  string
	Type         ElementType
	Doc          string
	Version      string
	Offset       *uint64
	DataWidth    int
	DefaultReset string
	Children     []string
	Fields       []*Field
	Links        map[string]string

	// Set by Resolve.
	Addr   *uint64
	Width  int
	Resets []string
}

// IsRegister reports whether the element is a register.
func (e *Element) IsRegister() bool {
	return e.Type == TypeRegister
}

// Field returns the field with the given name, or nil.
func (e *Element) Field(name string) *Field {
	for _, f := range e.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Root holds the design-wide defaults and the top-level element ids.
type Root struct {
	DisplayName  string
	Version      string
	DataWidth    int
	DefaultReset string
	Children     []string
	Links        map[string]string
}

// Design owns every element of one loaded description.
type Design struct {
	Root Root

	elements map[string]*Element
	order    []string
}

// New creates an empty design.
func New(root Root) *Design {
	return &Design{
		Root:     root,
		elements: make(map[string]*Element),
	}
}

// Add inserts an element. Ids must be unique.
func (d *Design) Add(e *Element) error {
	if _, exists := d.elements[e.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateElement, e.ID)
	}
	d.elements[e.ID] = e
	d.order = append(d.order, e.ID)
	return nil
}

// Element returns the element with the given id.
func (d *Design) Element(id string) (*Element, bool) {
	e, ok := d.elements[id]
	return e, ok
}

// Elements returns all elements in insertion order.
func (d *Design) Elements() []*Element {
	out := make([]*Element, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.elements[id])
	}
	return out
}

// Len returns the number of elements.
func (d *Design) Len() int {
	return len(d.order)
}

// Register returns the register with the given id.
func (d *Design) Register(id string) (*Element, error) {
	e, ok := d.elements[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingElement, id)
	}
	if !e.IsRegister() {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotRegister, id, e.Type)
	}
	return e, nil
}

// FirstRegister returns the first register in insertion order, or nil.
func (d *Design) FirstRegister() *Element {
	for _, id := range d.order {
		if e := d.elements[id]; e.IsRegister() {
			return e
		}
	}
	return nil
}

// ParentID returns the id of the parent element, or "" for a top-level id.
func ParentID(id string) string {
	i := strings.LastIndexByte(id, '.')
	if i < 0 {
		return ""
	}
	return id[:i]
}
