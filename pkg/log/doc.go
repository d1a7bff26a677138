// Package log provides the structured session trace for regview.
//
// A trace records what happened to a loaded design: the load itself, every
// register or field edit, reset-state selections, display changes and
// rejected input. It is separate from operational logging (slog); the trace
// is a complete machine-readable record for replaying or auditing a session.
//
// # Basic Usage
//
//	// For development: trace to console via slog
//	cfg.Trace = log.NewSlogAdapter(slog.Default())
//
//	// For later analysis: write to a binary file
//	cfg.Trace, _ = log.NewFileLogger("session.rvlog")
//
//	// Both
//	cfg.Trace = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys, using
// the .rvlog extension. The regview-log tool views and summarizes them.
package log
