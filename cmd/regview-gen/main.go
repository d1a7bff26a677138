// Command regview-gen generates Go constants from a register description:
// register addresses and widths, field shifts and masks, enum values and
// default reset values.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/regview/regview-go/pkg/loader"
)

func main() {
	in := flag.String("in", "", "Register description file (YAML)")
	out := flag.String("out", "", "Output Go file")
	pkg := flag.String("pkg", "regs", "Package name of the generated file")
	prefix := flag.String("prefix", "", "Prefix for every generated identifier")
	flag.Parse()

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "Usage: regview-gen -in <file.yaml> -out <file.go> [-pkg <name>] [-prefix <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*in, *out, *pkg, *prefix); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out, pkg, prefix string) error {
	d, err := loader.LoadFile(context.Background(), in, loader.Options{})
	if err != nil {
		return fmt.Errorf("loading %s: %w", in, err)
	}

	code, err := Generate(d, Options{
		Package: pkg,
		Prefix:  prefix,
		Source:  filepath.Base(in),
	})
	if err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := writeFormatted(out, code); err != nil {
		return err
	}
	fmt.Printf("  generated %s\n", out)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
