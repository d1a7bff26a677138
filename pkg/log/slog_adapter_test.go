package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logJSON(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output %q: %v", buf.String(), err)
	}
	return entry
}

func TestSlogAdapterLogsEditEvent(t *testing.T) {
	entry := logJSON(t, Event{
		Timestamp: time.Now(),
		SessionID: "s1",
		Category:  CategoryEdit,
		ElementID: "blk.reg",
		Edit:      &EditEvent{Field: "mode", Input: "0x3", Old: "0b0000", New: "0b0011"},
	})

	want := map[string]any{
		"session_id": "s1",
		"category":   "EDIT",
		"element":    "blk.reg",
		"field":      "mode",
		"input":      "0x3",
		"new":        "0b0011",
		"msg":        "trace",
		"level":      "DEBUG",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}
}

func TestSlogAdapterLogsErrorEvent(t *testing.T) {
	entry := logJSON(t, Event{
		Timestamp: time.Now(),
		SessionID: "s1",
		Category:  CategoryError,
		Error:     &ErrorEventData{Op: "set-field", Message: "malformed numeric literal", Input: "0xG"},
	})

	if entry["op"] != "set-field" || entry["input"] != "0xG" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	NewSlogAdapter(slog.New(handler)).Log(Event{Timestamp: time.Now(), Category: CategoryLoad, Load: &LoadEvent{}})

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}
