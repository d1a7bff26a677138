package session

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/regview/regview-go/pkg/bits"
	"github.com/regview/regview-go/pkg/design"
	"github.com/regview/regview-go/pkg/inspect"
	"github.com/regview/regview-go/pkg/log"
)

// Session is one viewer's working state over a resolved design.
type Session struct {
	id     string
	design *design.Design
	base   bits.Base
	swap   bits.Swap

	// selected maps register id to the reset state last chosen for it.
	selected map[string]string

	logger *slog.Logger
	trace  log.Logger
}

// New starts a session over d, which must already be resolved.
func New(d *design.Design, cfg Config) *Session {
	s := &Session{
		id:       uuid.NewString(),
		design:   d,
		base:     cfg.Base,
		swap:     cfg.Swap,
		selected: make(map[string]string),
		logger:   cfg.Logger,
		trace:    cfg.Trace,
	}
	if s.trace == nil {
		s.trace = log.NoopLogger{}
	}

	registers := 0
	for _, e := range d.Elements() {
		if e.IsRegister() {
			registers++
		}
	}
	s.emit("", func(ev *log.Event) {
		ev.Category = log.CategoryLoad
		ev.Load = &log.LoadEvent{
			Source:      cfg.Source,
			DisplayName: d.Root.DisplayName,
			Version:     d.Root.Version,
			Elements:    d.Len(),
			Registers:   registers,
		}
	})
	return s
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Design returns the design the session works on.
func (s *Session) Design() *design.Design { return s.design }

// Base returns the display base.
func (s *Session) Base() bits.Base { return s.base }

// SetBase changes the display base.
func (s *Session) SetBase(b bits.Base) error {
	switch b {
	case bits.Hexadecimal, bits.Binary, bits.Decimal:
	default:
		err := fmt.Errorf("%w: %d", bits.ErrInvalidBase, b)
		s.emitError("", "set-base", err, "")
		return err
	}
	s.base = b
	s.emitDisplay()
	return nil
}

// Swap returns the swap mode.
func (s *Session) Swap() bits.Swap { return s.swap }

// SetSwap changes the swap mode. Field values are unchanged; only the
// register value they are viewed through changes.
func (s *Session) SetSwap(sw bits.Swap) error {
	switch sw {
	case bits.SwapNone, bits.SwapByte, bits.SwapWord:
	default:
		err := fmt.Errorf("%w: %d", bits.ErrInvalidSwap, sw)
		s.emitError("", "set-swap", err, "")
		return err
	}
	s.swap = sw
	s.emitDisplay()
	return nil
}

// Register returns the register with the given id.
func (s *Session) Register(id string) (*design.Element, error) {
	return s.design.Register(id)
}

// FirstRegister returns the first register of the design, or nil.
func (s *Session) FirstRegister() *design.Element {
	return s.design.FirstRegister()
}

func (s *Session) registerValue(reg *design.Element) (bits.Vector, error) {
	return design.FieldsToValue(s.swap, reg.Fields)
}

// RegisterValue returns the register's value in the display base, as seen
// through the current swap mode.
func (s *Session) RegisterValue(id string) (string, error) {
	reg, err := s.design.Register(id)
	if err != nil {
		return "", err
	}
	v, err := s.registerValue(reg)
	if err != nil {
		return "", err
	}
	return bits.FormatVector(v, s.base), nil
}

// SetRegisterValue parses text as a register value and distributes it over
// the fields. Nothing changes if text does not parse.
func (s *Session) SetRegisterValue(id, text string) error {
	reg, err := s.design.Register(id)
	if err != nil {
		s.emitError(id, "set-register", err, text)
		return err
	}

	v, err := bits.ParseVector(text, reg.Width)
	if err != nil {
		s.emitError(id, "set-register", err, text)
		return err
	}

	old, err := s.registerValue(reg)
	if err != nil {
		s.emitError(id, "set-register", err, text)
		return err
	}
	if err := design.ValueToFields(s.swap, v, reg.Fields); err != nil {
		s.emitError(id, "set-register", err, text)
		return err
	}

	s.emitEdit(id, "", text, old, v)
	return nil
}

func (s *Session) field(id, name string) (*design.Field, error) {
	reg, err := s.design.Register(id)
	if err != nil {
		return nil, err
	}
	f := reg.Field(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %q in %s", design.ErrUnknownField, name, id)
	}
	return f, nil
}

// FieldValue returns a field's value in the display base. A value matching
// one of the field's enum entries renders as "NAME (value)".
func (s *Session) FieldValue(id, name string) (string, error) {
	f, err := s.field(id, name)
	if err != nil {
		return "", err
	}
	return inspect.FormatFieldValue(f, s.base), nil
}

// SetFieldValue sets a field from a numeric literal or one of its enum
// names. Nothing changes if text does not parse.
func (s *Session) SetFieldValue(id, name, text string) error {
	f, err := s.field(id, name)
	if err != nil {
		s.emitError(id, "set-field", err, text)
		return err
	}

	literal := text
	if e, ok := f.EnumByName(text); ok {
		literal = e.Value
	}
	v, err := bits.ParseVector(literal, f.NBits)
	if err != nil {
		s.emitError(id, "set-field", err, text)
		return err
	}

	old := f.Value()
	if err := design.SetFieldValue(f, v); err != nil {
		s.emitError(id, "set-field", err, text)
		return err
	}

	s.emitEdit(id, name, text, old, v)
	return nil
}

// ResetStates returns the reset states of a register, default first.
func (s *Session) ResetStates(id string) ([]string, error) {
	reg, err := s.design.Register(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(reg.Resets), nil
}

// SelectedReset returns the reset state chosen for a register, or its
// default state if none was chosen.
func (s *Session) SelectedReset(id string) (string, error) {
	reg, err := s.design.Register(id)
	if err != nil {
		return "", err
	}
	if name, ok := s.selected[id]; ok {
		return name, nil
	}
	if len(reg.Resets) == 0 {
		return design.DefaultResetName, nil
	}
	return reg.Resets[0], nil
}

// SelectReset chooses a reset state for a register and applies it.
func (s *Session) SelectReset(id, name string) error {
	reg, err := s.design.Register(id)
	if err != nil {
		s.emitError(id, "select-reset", err, name)
		return err
	}
	if err := s.applyReset(reg, name); err != nil {
		return err
	}
	s.selected[id] = name
	return nil
}

// Reset applies the selected reset state of a register again, discarding
// any edits.
func (s *Session) Reset(id string) error {
	name, err := s.SelectedReset(id)
	if err != nil {
		s.emitError(id, "reset", err, "")
		return err
	}
	reg, err := s.design.Register(id)
	if err != nil {
		return err
	}
	return s.applyReset(reg, name)
}

func (s *Session) applyReset(reg *design.Element, name string) error {
	if err := design.ApplyResetState(reg, name); err != nil {
		s.emitError(reg.ID, "reset", err, name)
		return err
	}

	value := ""
	if v, err := design.FieldsToValue(bits.SwapNone, reg.Fields); err == nil {
		value = bits.FormatVector(v, bits.Binary)
	}
	s.emit(reg.ID, func(ev *log.Event) {
		ev.Category = log.CategoryReset
		ev.Reset = &log.ResetEvent{Name: name, Applied: true, Value: value}
	})
	if s.logger != nil {
		s.logger.Debug("reset applied", "session", s.id, "register", reg.ID, "state", name)
	}
	return nil
}

func (s *Session) emit(elementID string, fill func(*log.Event)) {
	ev := log.Event{
		Timestamp: time.Now(),
		SessionID: s.id,
		ElementID: elementID,
	}
	fill(&ev)
	s.trace.Log(ev)
}

func (s *Session) emitDisplay() {
	s.emit("", func(ev *log.Event) {
		ev.Category = log.CategoryDisplay
		ev.Display = &log.DisplayEvent{Base: s.base.String(), Swap: s.swap.String()}
	})
}

func (s *Session) emitEdit(id, field, input string, old, updated bits.Vector) {
	s.emit(id, func(ev *log.Event) {
		ev.Category = log.CategoryEdit
		ev.Edit = &log.EditEvent{
			Field: field,
			Input: input,
			Old:   bits.FormatVector(old, bits.Binary),
			New:   bits.FormatVector(updated, bits.Binary),
			Base:  s.base.String(),
			Swap:  s.swap.String(),
		}
	})
}

func (s *Session) emitError(id, op string, err error, input string) {
	if s.logger != nil {
		s.logger.Debug("operation failed", "session", s.id, "op", op, "element", id, "error", err)
	}
	s.emit(id, func(ev *log.Event) {
		ev.Category = log.CategoryError
		ev.Error = &log.ErrorEventData{Op: op, Message: err.Error(), Input: input}
	})
}
