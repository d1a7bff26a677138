package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"concat":     func(a, b string) string { return a + b },
	"firstLower": firstLower,
	"hex":        func(v uint64) string { return fmt.Sprintf("0x%X", v) },
	"comment":    comment,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	fileTmpl +
		registerTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) error {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		return fmt.Errorf("template %s: %w", name, err)
	}
	return nil
}

// --- Template data types ---

// fileData holds data for the file template.
type fileData struct {
	Package   string
	Source    string
	Title     string
	Version   string
	Registers []registerData
}

// registerData holds pre-computed data for one register.
type registerData struct {
	GoName  string
	ID      string
	Doc     string
	HasAddr bool
	Addr    uint64
	Width   int

	// HasReset is set when the default reset value is fully known and
	// fits in 64 bits.
	HasReset bool
	Reset    uint64

	Fields []fieldData
}

type fieldData struct {
	GoName string
	Name   string
	Doc    string
	Access string
	Shift  int
	NBits  int

	// HasMask is set when the field lies within the low 64 bits.
	HasMask bool
	Mask    uint64

	Enums []enumData
}

type enumData struct {
	GoName string
	Name   string
	Doc    string
	Value  uint64
}

// --- Template definitions ---

const fileTmpl = `{{define "file"}}// Code generated by regview-gen from {{.Source}}. DO NOT EDIT.

// Package {{.Package}} holds register constants for {{.Title}}{{if .Version}} v{{.Version}}{{end}}.
package {{.Package}}
{{range .Registers}}
{{template "register" .}}
{{- end}}
{{end}}`

const registerTmpl = `{{define "register"}}
// {{.GoName}} is register {{.ID}}.
{{- if .Doc}}
{{comment .Doc}}
{{- end}}
const (
{{- if .HasAddr}}
{{.GoName}}Addr uint64 = {{hex .Addr}}
{{- end}}
{{.GoName}}Width = {{.Width}}
{{- if .HasReset}}
{{.GoName}}Reset uint64 = {{hex .Reset}}
{{- end}}
)
{{- range .Fields}}
{{- $field := concat $.GoName .GoName}}

// {{$field}} is field {{.Name}} ({{.Access}}) of {{$.ID}}.
{{- if .Doc}}
{{comment .Doc}}
{{- end}}
const (
{{$field}}Shift = {{.Shift}}
{{$field}}Bits = {{.NBits}}
{{- if .HasMask}}
{{$field}}Mask uint64 = {{hex .Mask}}
{{- end}}
{{- range .Enums}}
{{- if .Doc}}
// {{concat $field .GoName}} {{firstLower .Doc}}
{{- end}}
{{concat $field .GoName}} uint64 = {{hex .Value}}
{{- end}}
)
{{- end}}
{{end}}`
