package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("category", event.Category.String()),
	}
	if event.ElementID != "" {
		attrs = append(attrs, slog.String("element", event.ElementID))
	}

	switch {
	case event.Load != nil:
		attrs = append(attrs,
			slog.String("source", event.Load.Source),
			slog.Int("elements", event.Load.Elements),
			slog.Int("registers", event.Load.Registers),
		)
	case event.Edit != nil:
		if event.Edit.Field != "" {
			attrs = append(attrs, slog.String("field", event.Edit.Field))
		}
		attrs = append(attrs,
			slog.String("input", event.Edit.Input),
			slog.String("old", event.Edit.Old),
			slog.String("new", event.Edit.New),
		)
	case event.Reset != nil:
		attrs = append(attrs,
			slog.String("reset", event.Reset.Name),
			slog.Bool("applied", event.Reset.Applied),
		)
		if event.Reset.Value != "" {
			attrs = append(attrs, slog.String("value", event.Reset.Value))
		}
	case event.Display != nil:
		attrs = append(attrs,
			slog.String("base", event.Display.Base),
			slog.String("swap", event.Display.Swap),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("op", event.Error.Op),
			slog.String("error", event.Error.Message),
		)
		if event.Error.Input != "" {
			attrs = append(attrs, slog.String("input", event.Error.Input))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "trace", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
