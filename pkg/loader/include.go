package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/regview/regview-go/pkg/design"
)

// maxIncludeDepth bounds nested includes so a file that includes itself
// fails instead of recursing forever.
const maxIncludeDepth = 16

// Fetcher retrieves the description an include element points at.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// DirFetcher reads include urls as file paths. Relative paths are taken
// from Dir.
type DirFetcher struct {
	Dir string
}

// Fetch reads the file named by url.
func (f DirFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := strings.TrimPrefix(url, "file://")
	if !filepath.IsAbs(path) {
		path = filepath.Join(f.Dir, path)
	}
	return os.ReadFile(path)
}

func prefixID(prefix, id string) string {
	return prefix + "." + id
}

// expandIncludes replaces every include element with a block holding the
// fetched description's elements, recursively.
func (l *loader) expandIncludes(ctx context.Context, elems []rawElement, depth int) ([]rawElement, error) {
	out := make([]rawElement, 0, len(elems))
	for _, e := range elems {
		if design.ElementType(e.Type) != design.TypeInclude {
			out = append(out, e)
			continue
		}

		if depth >= maxIncludeDepth {
			return nil, fmt.Errorf("%w: %q: includes nested deeper than %d", ErrInclude, e.ID, maxIncludeDepth)
		}
		if l.opts.Fetcher == nil {
			return nil, fmt.Errorf("%w: %q: no fetcher configured", ErrInclude, e.ID)
		}

		if l.opts.Logger != nil {
			l.opts.Logger.Debug("fetching include", "id", e.ID, "url", e.URL, "depth", depth)
		}
		data, err := l.opts.Fetcher.Fetch(ctx, e.URL)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: fetching %s: %w", ErrInclude, e.ID, e.URL, err)
		}
		inc, err := parseFile(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %s: %w", ErrInclude, e.ID, e.URL, err)
		}

		block := rawElement{
			ID:           e.ID,
			Name:         e.Name,
			DisplayName:  e.DisplayName,
			Type:         string(design.TypeBlock),
			Offset:       e.Offset,
			DataWidth:    e.DataWidth,
			DefaultReset: e.DefaultReset,
			Doc:          e.Doc,
			Version:      e.Version,
			Links:        e.Links,
			key:          e.key,
		}
		if inc.Root.DataWidth.set {
			block.DataWidth = inc.Root.DataWidth
		}
		if inc.Root.DefaultReset != "" {
			block.DefaultReset = inc.Root.DefaultReset
		}
		for _, child := range inc.Root.Children {
			block.Children = append(block.Children, prefixID(e.ID, child))
		}

		children := make([]rawElement, 0, len(inc.Elements.list))
		for _, c := range inc.Elements.list {
			c.ID = prefixID(e.ID, c.ID)
			c.key = c.ID
			if len(c.Children) > 0 {
				prefixed := make([]string, len(c.Children))
				for i, id := range c.Children {
					prefixed[i] = prefixID(e.ID, id)
				}
				c.Children = prefixed
			}
			children = append(children, c)
		}

		nested, err := l.expandIncludes(ctx, children, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, block)
		out = append(out, nested...)
	}
	return out, nil
}
