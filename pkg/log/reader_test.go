package log

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"
)

func TestFilterMatches(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	edit := CategoryEdit
	later := base.Add(time.Minute)

	event := Event{Timestamp: base, SessionID: "s1", Category: CategoryEdit, ElementID: "reg"}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty", Filter{}, true},
		{"session match", Filter{SessionID: "s1"}, true},
		{"session mismatch", Filter{SessionID: "s2"}, false},
		{"category", Filter{Category: &edit}, true},
		{"element mismatch", Filter{ElementID: "other"}, false},
		{"start inclusive", Filter{TimeStart: &base}, true},
		{"start after", Filter{TimeStart: &later}, false},
		{"end exclusive", Filter{TimeEnd: &base}, false},
		{"end after", Filter{TimeEnd: &later}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(event); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.rvlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	now := time.Now()
	logger.Log(Event{Timestamp: now, SessionID: "s", Category: CategoryLoad, Load: &LoadEvent{Elements: 3}})
	logger.Log(Event{Timestamp: now, SessionID: "s", Category: CategoryError, Error: &ErrorEventData{Op: "set-register", Message: "bad"}})
	logger.Log(Event{Timestamp: now, SessionID: "s", Category: CategoryEdit, Edit: &EditEvent{Input: "1"}})
	logger.Close()

	errCat := CategoryError
	r, err := NewFilteredReader(path, Filter{Category: &errCat})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer r.Close()

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if ev.Error == nil || ev.Error.Op != "set-register" {
		t.Errorf("unexpected event %+v", ev)
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.rvlog")); err == nil {
		t.Error("expected error for missing file")
	}
}
