package session

import (
	"log/slog"

	"github.com/regview/regview-go/pkg/bits"
	"github.com/regview/regview-go/pkg/log"
)

// Config configures a Session.
type Config struct {
	// Base is the initial display base.
	Base bits.Base

	// Swap is the initial swap mode.
	Swap bits.Swap

	// Source names where the design was loaded from. It is only recorded
	// in the trace.
	Source string

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// Trace receives session events. If nil, events are dropped.
	Trace log.Logger
}

// DefaultConfig returns a config showing hexadecimal values without swapping.
func DefaultConfig() Config {
	return Config{
		Base: bits.Hexadecimal,
		Swap: bits.SwapNone,
	}
}
