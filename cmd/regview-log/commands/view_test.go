package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/regview/regview-go/pkg/log"
)

func sampleEvents() []log.Event {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	return []log.Event{
		{
			Timestamp: ts,
			SessionID: "abc12345-6789",
			Category:  log.CategoryLoad,
			Load:      &log.LoadEvent{Source: "example.yaml", DisplayName: "Example", Version: "1.0", Elements: 5, Registers: 2},
		},
		{
			Timestamp: ts.Add(time.Second),
			SessionID: "abc12345-6789",
			Category:  log.CategoryEdit,
			ElementID: "blkA.regA0",
			Edit:      &log.EditEvent{Field: "cmd", Input: "STOP", Old: "0b0101", New: "0b1010", Base: "hexadecimal", Swap: "none"},
		},
		{
			Timestamp: ts.Add(2 * time.Second),
			SessionID: "abc12345-6789",
			Category:  log.CategoryReset,
			ElementID: "blkA.regA0",
			Reset:     &log.ResetEvent{Name: "RS1", Applied: true, Value: "0b????"},
		},
		{
			Timestamp: ts.Add(3 * time.Second),
			SessionID: "abc12345-6789",
			Category:  log.CategoryDisplay,
			Display:   &log.DisplayEvent{Base: "binary", Swap: "byte"},
		},
		{
			Timestamp: ts.Add(4 * time.Second),
			SessionID: "abc12345-6789",
			Category:  log.CategoryError,
			ElementID: "blkA.regA0",
			Error:     &log.ErrorEventData{Op: "set-field", Message: "malformed numeric literal", Input: "0xZ"},
		},
	}
}

func TestViewFormatsAllEventKinds(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	expected := []string{
		"2026-01-28T10:15:32.123456Z [session:abc12345] LOAD",
		"  Source: example.yaml",
		"  Design: Example v1.0",
		"  Elements: 5  Registers: 2",
		"[session:abc12345] EDIT blkA.regA0",
		"  Field: cmd",
		`  Input: "STOP" (hexadecimal, swap none)`,
		"  0b0101 -> 0b1010",
		"RESET blkA.regA0",
		"  State: RS1",
		"  Base: binary  Swap: byte",
		"  Op: set-field",
		"  Message: malformed numeric literal",
		`  Input: "0xZ"`,
	}
	for _, exp := range expected {
		if !strings.Contains(output, exp) {
			t.Errorf("expected output to contain %q\nGot:\n%s", exp, output)
		}
	}
}

func TestViewFilterByCategory(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	cat := log.CategoryError
	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Category: &cat}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "ERROR") {
		t.Error("expected ERROR event in output")
	}
	if strings.Contains(output, "EDIT") || strings.Contains(output, "LOAD") {
		t.Errorf("unexpected events in output:\n%s", output)
	}
}

func TestViewFilterByElement(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{ElementID: "blkA.regA0"}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if got := strings.Count(buf.String(), "[session:"); got != 3 {
		t.Errorf("got %d events, want 3", got)
	}
}

func TestViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView("/nonexistent/trace.rvlog", ViewFilter{}, &buf); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseCategoryFlag(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Category
		wantErr  bool
	}{
		{"load", log.CategoryLoad, false},
		{"EDIT", log.CategoryEdit, false},
		{"Reset", log.CategoryReset, false},
		{"display", log.CategoryDisplay, false},
		{"error", log.CategoryError, false},
		{"message", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCategoryFlag(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategoryFlag(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.expected {
			t.Errorf("ParseCategoryFlag(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
