package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/regview/regview-go/pkg/bits"
	"github.com/regview/regview-go/pkg/design"
)

// Options controls code generation.
type Options struct {
	Package string
	Prefix  string
	// Source is the description file name recorded in the header.
	Source string
}

// Generate renders Go constants for every register of d. d must be
// resolved.
func Generate(d *design.Design, opts Options) (string, error) {
	if opts.Package == "" {
		return "", fmt.Errorf("package name required")
	}

	data := fileData{
		Package: opts.Package,
		Source:  opts.Source,
		Title:   d.Root.DisplayName,
		Version: d.Root.Version,
	}

	seen := make(map[string]string)
	for _, e := range d.Elements() {
		if !e.IsRegister() {
			continue
		}
		reg, err := registerFor(e, opts.Prefix)
		if err != nil {
			return "", err
		}
		if other, dup := seen[reg.GoName]; dup {
			return "", fmt.Errorf("registers %s and %s both map to %s", other, e.ID, reg.GoName)
		}
		seen[reg.GoName] = e.ID
		data.Registers = append(data.Registers, reg)
	}
	if err := checkIdents(data.Registers); err != nil {
		return "", err
	}

	var b strings.Builder
	if err := renderTemplate(&b, "file", data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func registerFor(e *design.Element, prefix string) (registerData, error) {
	reg := registerData{
		GoName: prefix + goName(e.ID),
		ID:     e.ID,
		Doc:    e.Doc,
		Width:  e.Width,
	}
	if e.Addr != nil {
		reg.HasAddr = true
		reg.Addr = *e.Addr
	}

	// Field values hold the default reset state until edited.
	if e.Width <= 64 {
		if v, err := design.FieldsToValue(bits.SwapNone, e.Fields); err == nil {
			reg.Reset, reg.HasReset = v.Uint64()
		}
	}

	names := make(map[string]string)
	for _, f := range e.Fields {
		fd := fieldData{
			GoName: goName(f.Name),
			Name:   f.Name,
			Doc:    f.Doc,
			Access: f.Access,
			Shift:  f.LSB,
			NBits:  f.NBits,
		}
		if other, dup := names[fd.GoName]; dup {
			return registerData{}, fmt.Errorf("%s: fields %s and %s both map to %s", e.ID, other, f.Name, fd.GoName)
		}
		names[fd.GoName] = f.Name

		if f.MSB() < 64 {
			fd.HasMask = true
			fd.Mask = fieldMask(f.LSB, f.NBits)
		}
		for _, en := range f.Enums {
			v, err := bits.ParseInteger(en.Value)
			if err != nil {
				// Enum values with unknown bits have no constant form.
				continue
			}
			fd.Enums = append(fd.Enums, enumData{
				GoName: goName(en.Name),
				Name:   en.Name,
				Doc:    en.Doc,
				Value:  v,
			})
		}
		reg.Fields = append(reg.Fields, fd)
	}
	return reg, nil
}

// checkIdents reports two constants that would share a name, such as an
// enum called "Mask" next to its field's own mask.
func checkIdents(regs []registerData) error {
	owner := make(map[string]string)
	claim := func(ident, what string) error {
		if other, dup := owner[ident]; dup {
			return fmt.Errorf("%s and %s both generate %s", other, what, ident)
		}
		owner[ident] = what
		return nil
	}

	for _, r := range regs {
		consts := map[string]bool{"Addr": r.HasAddr, "Width": true, "Reset": r.HasReset}
		for _, suffix := range []string{"Addr", "Width", "Reset"} {
			if !consts[suffix] {
				continue
			}
			if err := claim(r.GoName+suffix, r.ID); err != nil {
				return err
			}
		}
		for _, f := range r.Fields {
			field := r.GoName + f.GoName
			what := r.ID + ":" + f.Name
			for _, suffix := range []string{"Shift", "Bits"} {
				if err := claim(field+suffix, what); err != nil {
					return err
				}
			}
			if f.HasMask {
				if err := claim(field+"Mask", what); err != nil {
					return err
				}
			}
			for _, en := range f.Enums {
				if err := claim(field+en.GoName, what+" enum "+en.Name); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func fieldMask(lsb, nbits int) uint64 {
	if nbits >= 64 {
		return ^uint64(0) << lsb
	}
	return ((uint64(1) << nbits) - 1) << lsb
}

// goName converts "blkA.reg_a0" to "BlkARegA0". Identifiers that would
// start with a digit get an "R" prefix.
func goName(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	name := b.String()
	if name == "" {
		return "R"
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "R" + name
	}
	return name
}

// firstLower lowercases the first letter of a description.
func firstLower(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// comment renders s as // comment lines.
func comment(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("// "+strings.TrimSpace(l), " ")
	}
	return strings.Join(lines, "\n")
}
