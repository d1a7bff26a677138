package design

import "fmt"

// inherit resolves a property of id by walking toward the root. step sees
// the element and may defer to up, which resolves the same property on the
// parent, or returns top() when the element is top-level.
func inherit[T any](d *Design, id string, step func(e *Element, up func() (T, error)) (T, error), top func() T) (T, error) {
	e, ok := d.elements[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrMissingElement, id)
	}

	up := func() (T, error) {
		parent := ParentID(id)
		if parent == "" {
			return top(), nil
		}
		return inherit(d, parent, step, top)
	}
	return step(e, up)
}

// ResolveAddress returns the absolute address of id: its offset plus the
// parent's address. It is nil when the element has no offset; a parent
// without an address contributes nothing.
func (d *Design) ResolveAddress(id string) (*uint64, error) {
	return inherit(d, id,
		func(e *Element, up func() (*uint64, error)) (*uint64, error) {
			if e.Offset == nil {
				return nil, nil
			}
			addr := *e.Offset
			parent, err := up()
			if err != nil {
				return nil, err
			}
			if parent != nil {
				addr += *parent
			}
			return &addr, nil
		},
		func() *uint64 { return nil },
	)
}

// ResolveDataWidth returns the data width of id, inherited from the nearest
// ancestor that sets one, then the root, then DefaultDataWidth.
func (d *Design) ResolveDataWidth(id string) (int, error) {
	return inherit(d, id,
		func(e *Element, up func() (int, error)) (int, error) {
			if e.DataWidth > 0 {
				return e.DataWidth, nil
			}
			return up()
		},
		func() int {
			if d.Root.DataWidth > 0 {
				return d.Root.DataWidth
			}
			return DefaultDataWidth
		},
	)
}

// ResolveDefaultReset returns the default reset-state name of id, inherited
// the same way as the data width and ending at DefaultResetName.
func (d *Design) ResolveDefaultReset(id string) (string, error) {
	return inherit(d, id,
		func(e *Element, up func() (string, error)) (string, error) {
			if e.DefaultReset != "" {
				return e.DefaultReset, nil
			}
			return up()
		},
		func() string {
			if d.Root.DefaultReset != "" {
				return d.Root.DefaultReset
			}
			return DefaultResetName
		},
	)
}

// Resolve runs the load-time pass over the whole design. Any error means the
// design must not be used.
func (d *Design) Resolve() error {
	for _, id := range d.Root.Children {
		if _, ok := d.elements[id]; !ok {
			return fmt.Errorf("root child: %w: %q", ErrMissingElement, id)
		}
	}

	for _, id := range d.order {
		e := d.elements[id]
		if e.Type == TypeInclude {
			return fmt.Errorf("%w: %q", ErrUnresolvedInclude, id)
		}
		for _, child := range e.Children {
			if _, ok := d.elements[child]; !ok {
				return fmt.Errorf("child of %q: %w: %q", id, ErrMissingElement, child)
			}
		}

		addr, err := d.ResolveAddress(id)
		if err != nil {
			return fmt.Errorf("address of %q: %w", id, err)
		}
		width, err := d.ResolveDataWidth(id)
		if err != nil {
			return fmt.Errorf("data width of %q: %w", id, err)
		}
		e.Addr = addr
		e.Width = width
	}

	for _, id := range d.order {
		e := d.elements[id]
		if !e.IsRegister() {
			continue
		}
		if err := ValidateFields(e); err != nil {
			return err
		}
		if err := d.ResolveResets(e); err != nil {
			return err
		}
	}
	return nil
}
