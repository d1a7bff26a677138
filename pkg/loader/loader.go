package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/regview/regview-go/pkg/bits"
	"github.com/regview/regview-go/pkg/design"
)

// Options configures Load.
type Options struct {
	// Fetcher resolves include urls. If nil, descriptions containing
	// include elements fail with ErrInclude. LoadFile defaults it to a
	// DirFetcher rooted at the file's directory.
	Fetcher Fetcher

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

type loader struct {
	opts Options
}

// Load decodes a description, expands its includes and returns the
// resolved design.
func Load(ctx context.Context, data []byte, opts Options) (*design.Design, error) {
	l := &loader{opts: opts}

	f, err := parseFile(data)
	if err != nil {
		return nil, err
	}

	elems, err := l.expandIncludes(ctx, f.Elements.list, 0)
	if err != nil {
		return nil, err
	}

	d, err := build(f.Root, elems)
	if err != nil {
		return nil, err
	}
	if err := d.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving design: %w", err)
	}

	if opts.Logger != nil {
		opts.Logger.Debug("design loaded",
			"displayName", d.Root.DisplayName,
			"elements", d.Len())
	}
	return d, nil
}

// LoadFile loads the description at path.
func LoadFile(ctx context.Context, path string, opts Options) (*design.Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if opts.Fetcher == nil {
		opts.Fetcher = DirFetcher{Dir: filepath.Dir(path)}
	}
	return Load(ctx, data, opts)
}

// maxWidth bounds data widths and field bit positions.
const maxWidth = 1 << 16

func parseWidth(l literal, what string) (int, error) {
	if !l.set {
		return 0, nil
	}
	v, err := bits.ParseInteger(l.text)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrSchema, what, err)
	}
	if v == 0 || v > maxWidth {
		return 0, schemaErr("%s: data width %d out of range", what, v)
	}
	return int(v), nil
}

func build(r *rawRoot, elems []rawElement) (*design.Design, error) {
	width, err := parseWidth(r.DataWidth, "root")
	if err != nil {
		return nil, err
	}

	d := design.New(design.Root{
		DisplayName:  r.DisplayName,
		Version:      r.Version.text,
		DataWidth:    width,
		DefaultReset: r.DefaultReset,
		Children:     r.Children,
		Links:        r.Links,
	})

	for i := range elems {
		e, err := buildElement(&elems[i])
		if err != nil {
			return nil, err
		}
		if err := d.Add(e); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func buildElement(r *rawElement) (*design.Element, error) {
	e := &design.Element{
		ID:           r.ID,
		Name:         r.Name,
		DisplayName:  r.DisplayName,
		Type:         design.ElementType(r.Type),
		Doc:          r.Doc,
		Version:      r.Version.text,
		DefaultReset: r.DefaultReset,
		Children:     r.Children,
		Links:        r.Links,
	}

	if r.Offset.set {
		off, err := bits.ParseInteger(r.Offset.text)
		if err != nil {
			return nil, fmt.Errorf("%w: offset of %q: %w", ErrSchema, r.ID, err)
		}
		e.Offset = &off
	}

	width, err := parseWidth(r.DataWidth, r.ID)
	if err != nil {
		return nil, err
	}
	e.DataWidth = width

	for _, rf := range r.Fields {
		e.Fields = append(e.Fields, buildField(rf))
	}
	return e, nil
}

func buildField(rf rawField) *design.Field {
	reset := design.UnnamedReset(bits.UnknownMarker)
	if rf.Reset != nil {
		if len(rf.Reset.Names) > 0 {
			reset = design.NamedReset(rf.Reset.Value, rf.Reset.Names...)
		} else {
			reset = design.UnnamedReset(rf.Reset.Value)
		}
	}

	f := design.NewField(rf.Name, *rf.LSB, *rf.NBits, rf.Access, reset)
	f.Doc = rf.Doc
	for _, en := range rf.Enum {
		f.Enums = append(f.Enums, design.Enum{Name: en.Name, Value: en.Value.text, Doc: en.Doc})
	}
	return f
}
