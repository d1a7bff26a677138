package log

import (
	"strings"
	"time"
)

// Event is a single session trace entry.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the viewer session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"3,keyasint"`

	// ElementID is the design element the event concerns, if any.
	ElementID string `cbor:"4,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Load    *LoadEvent      `cbor:"10,keyasint,omitempty"`
	Edit    *EditEvent      `cbor:"11,keyasint,omitempty"`
	Reset   *ResetEvent     `cbor:"12,keyasint,omitempty"`
	Display *DisplayEvent   `cbor:"13,keyasint,omitempty"`
	Error   *ErrorEventData `cbor:"14,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryLoad marks a design load.
	CategoryLoad Category = 0
	// CategoryEdit marks a register or field value change.
	CategoryEdit Category = 1
	// CategoryReset marks a reset-state selection or reset.
	CategoryReset Category = 2
	// CategoryDisplay marks a display base or swap mode change.
	CategoryDisplay Category = 3
	// CategoryError marks rejected input or a failed operation.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryLoad:
		return "LOAD"
	case CategoryEdit:
		return "EDIT"
	case CategoryReset:
		return "RESET"
	case CategoryDisplay:
		return "DISPLAY"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for c := CategoryLoad; c <= CategoryError; c++ {
		if strings.EqualFold(c.String(), s) {
			return c, true
		}
	}
	return 0, false
}

// LoadEvent describes a loaded design.
type LoadEvent struct {
	// Source is the file path or URL the design came from.
	Source string `cbor:"1,keyasint,omitempty"`

	DisplayName string `cbor:"2,keyasint,omitempty"`
	Version     string `cbor:"3,keyasint,omitempty"`

	// Elements and Registers count the resolved tree.
	Elements  int `cbor:"4,keyasint"`
	Registers int `cbor:"5,keyasint"`
}

// EditEvent describes a value change.
type EditEvent struct {
	// Field is the edited field, empty when the whole register was set.
	Field string `cbor:"1,keyasint,omitempty"`

	// Input is the text the user entered.
	Input string `cbor:"2,keyasint"`

	// Old and New are the register values before and after, in binary so
	// unknown bits survive.
	Old string `cbor:"3,keyasint"`
	New string `cbor:"4,keyasint"`

	Base string `cbor:"5,keyasint,omitempty"`
	Swap string `cbor:"6,keyasint,omitempty"`
}

// ResetEvent describes a reset-state selection or a reset.
type ResetEvent struct {
	// Name is the reset state.
	Name string `cbor:"1,keyasint"`

	// Applied is true when field values were reset, false for a selection only.
	Applied bool `cbor:"2,keyasint,omitempty"`

	// Value is the register value after the reset, in binary.
	Value string `cbor:"3,keyasint,omitempty"`
}

// DisplayEvent describes a display setting change.
type DisplayEvent struct {
	Base string `cbor:"1,keyasint"`
	Swap string `cbor:"2,keyasint"`
}

// ErrorEventData describes a failed operation.
type ErrorEventData struct {
	// Op names the operation, e.g. "set-register".
	Op string `cbor:"1,keyasint"`

	Message string `cbor:"2,keyasint"`

	// Input is the rejected text, if any.
	Input string `cbor:"3,keyasint,omitempty"`
}
