// Package commands implements the regview-log CLI commands.
package commands

import (
	"fmt"
	"io"

	"github.com/regview/regview-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category  *log.Category
	SessionID string
	ElementID string
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{
		SessionID: f.SessionID,
		Category:  f.Category,
		ElementID: f.ElementID,
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] CATEGORY element
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	header := fmt.Sprintf("%s [session:%s] %s", ts, shortenID(event.SessionID), event.Category)
	if event.ElementID != "" {
		header += " " + event.ElementID
	}
	fmt.Fprintln(w, header)

	switch {
	case event.Load != nil:
		formatLoadDetails(w, event.Load)
	case event.Edit != nil:
		formatEditDetails(w, event.Edit)
	case event.Reset != nil:
		formatResetDetails(w, event.Reset)
	case event.Display != nil:
		fmt.Fprintf(w, "  Base: %s  Swap: %s\n", event.Display.Base, event.Display.Swap)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatLoadDetails(w io.Writer, l *log.LoadEvent) {
	if l.Source != "" {
		fmt.Fprintf(w, "  Source: %s\n", l.Source)
	}
	if l.Version != "" {
		fmt.Fprintf(w, "  Design: %s v%s\n", l.DisplayName, l.Version)
	} else {
		fmt.Fprintf(w, "  Design: %s\n", l.DisplayName)
	}
	fmt.Fprintf(w, "  Elements: %d  Registers: %d\n", l.Elements, l.Registers)
}

func formatEditDetails(w io.Writer, e *log.EditEvent) {
	if e.Field != "" {
		fmt.Fprintf(w, "  Field: %s\n", e.Field)
	}
	fmt.Fprintf(w, "  Input: %q (%s, swap %s)\n", e.Input, e.Base, e.Swap)
	fmt.Fprintf(w, "  %s -> %s\n", e.Old, e.New)
}

func formatResetDetails(w io.Writer, r *log.ResetEvent) {
	fmt.Fprintf(w, "  State: %s\n", r.Name)
	if r.Value != "" {
		fmt.Fprintf(w, "  Value: %s\n", r.Value)
	}
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	fmt.Fprintf(w, "  Op: %s\n", e.Op)
	fmt.Fprintf(w, "  Message: %s\n", e.Message)
	if e.Input != "" {
		fmt.Fprintf(w, "  Input: %q\n", e.Input)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	c, ok := log.ParseCategory(s)
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (must be load, edit, reset, display, or error)", s)
	}
	return c, nil
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.logFilter())
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
