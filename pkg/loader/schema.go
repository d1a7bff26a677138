package loader

import (
	"fmt"

	"github.com/regview/regview-go/pkg/design"
)

func schemaErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSchema, fmt.Sprintf(format, args...))
}

// validateSchema checks required keys and value shapes. Semantic checks on
// the field layout happen later in design.Resolve.
func validateSchema(f *rawFile) error {
	if f.Schema == nil {
		return schemaErr("missing required field `schema`")
	}
	if !f.Schema.Version.set {
		return schemaErr("missing required field `schema.version`")
	}
	if f.Schema.Name == "" {
		return schemaErr("missing required field `schema.name`")
	}

	if f.Root == nil {
		return schemaErr("missing required field `root`")
	}
	if f.Root.DisplayName == "" {
		return schemaErr("missing required field `root.display_name`")
	}
	if !f.Root.Version.set {
		return schemaErr("missing required field `root.version`")
	}
	if len(f.Root.Children) == 0 {
		return schemaErr("field `root.children` must have at least 1 root element")
	}

	if !f.Elements.set {
		return schemaErr("missing required field `elements`")
	}
	for _, e := range f.Elements.list {
		if err := validateElement(&e); err != nil {
			return err
		}
	}
	return nil
}

func validateElement(e *rawElement) error {
	if e.ID == "" {
		return schemaErr("element with key %q is missing required field `id`", e.key)
	}
	if e.Name == "" {
		return schemaErr("element with key %q is missing required field `name`", e.key)
	}

	switch design.ElementType(e.Type) {
	case design.TypeRegister, design.TypeBlock, design.TypeMemory:
	case design.TypeInclude:
		if e.URL == "" {
			return schemaErr("include element %q is missing required field `url`", e.ID)
		}
	case "":
		return schemaErr("element with key %q is missing required field `type`", e.key)
	default:
		return schemaErr("element %q has unknown type %q", e.ID, e.Type)
	}

	for _, f := range e.Fields {
		if f.Name == "" {
			return schemaErr("a field of element %q is missing required field `name`", e.ID)
		}
		if f.Access == "" {
			return schemaErr("field %q of %q is missing required field `access`", f.Name, e.ID)
		}
		if f.LSB == nil {
			return schemaErr("field %q of %q is missing required field `lsb`", f.Name, e.ID)
		}
		if *f.LSB < 0 || *f.LSB >= maxWidth {
			return schemaErr("field %q of %q has `lsb` %d outside [0, %d)", f.Name, e.ID, *f.LSB, maxWidth)
		}
		if f.NBits == nil {
			return schemaErr("field %q of %q is missing required field `nbits`", f.Name, e.ID)
		}
		if *f.NBits < 1 || *f.NBits > maxWidth {
			return schemaErr("field %q of %q has `nbits` %d outside [1, %d]", f.Name, e.ID, *f.NBits, maxWidth)
		}
	}
	return nil
}
