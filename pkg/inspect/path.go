// Package inspect provides navigation, search and text formatting over a
// loaded design.
//
// The inspect package offers:
//   - Parsing path expressions (e.g., "/blkA/regA0:mode", "../regA1")
//   - Resolving element names to ids
//   - Searching elements and fields by name, id, address and doc
//   - Formatting registers and the element tree for display
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/regview/regview-go/pkg/design"
)

// Path errors.
var (
	ErrEmptyPath   = errors.New("empty path")
	ErrInvalidPath = errors.New("invalid path format")
)

// Path represents a resolved inspection path.
// Format: [/]segment[/segment...][:field]
type Path struct {
	// ElementID is the element the path names; "" is the root.
	ElementID string

	// Field is the field name when the path ends in ":field".
	Field string

	// Raw stores the original input string.
	Raw string
}

// ResolvePath resolves input against d, relative to the element cwd.
//
// Supported forms:
//   - "/" - the root
//   - "/blkA/regA0" - absolute, one segment per level
//   - "regA0", "../regA1" - relative to cwd
//   - "blkA.regA0" - a full element id
//   - any of the above followed by ":field"
//
// Segments match child ids and element names case-insensitively.
func ResolvePath(d *design.Design, cwd, input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}
	p := &Path{Raw: input}

	target := input
	if i := strings.LastIndexByte(input, ':'); i >= 0 {
		target, p.Field = input[:i], input[i+1:]
		if p.Field == "" {
			return nil, fmt.Errorf("%w: empty field name in %q", ErrInvalidPath, input)
		}
		if target == "" {
			target = "."
		}
	}
	if strings.Contains(target, "//") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, input)
	}

	// A full id wins over segment walking.
	if _, ok := d.Element(target); ok && !strings.Contains(target, "/") {
		p.ElementID = target
		return p, p.checkField(d)
	}

	cur := cwd
	if strings.HasPrefix(target, "/") {
		cur = ""
	}
	for _, seg := range strings.Split(strings.Trim(target, "/"), "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			if cur == "" {
				return nil, fmt.Errorf("%w: %q goes above the root", ErrInvalidPath, input)
			}
			cur = design.ParentID(cur)
			continue
		}

		next, ok := ResolveChild(d, cur, seg)
		if !ok {
			// Allow dotted sub-paths such as "sub.reg" below cur.
			candidate := seg
			if cur != "" {
				candidate = cur + "." + seg
			}
			if _, exists := d.Element(candidate); !exists {
				return nil, fmt.Errorf("%w: %q", design.ErrMissingElement, seg)
			}
			next = candidate
		}
		cur = next
	}

	p.ElementID = cur
	return p, p.checkField(d)
}

func (p *Path) checkField(d *design.Design) error {
	if p.Field == "" {
		return nil
	}
	reg, err := d.Register(p.ElementID)
	if err != nil {
		return err
	}
	if reg.Field(p.Field) == nil {
		return fmt.Errorf("%w: %q in %s", design.ErrUnknownField, p.Field, p.ElementID)
	}
	return nil
}

// String returns the path in its absolute form.
func (p *Path) String() string {
	s := "/" + strings.ReplaceAll(p.ElementID, ".", "/")
	if p.Field != "" {
		s += ":" + p.Field
	}
	return s
}

// IsRoot reports whether the path names the root.
func (p *Path) IsRoot() bool {
	return p.ElementID == "" && p.Field == ""
}
