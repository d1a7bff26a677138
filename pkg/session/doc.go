// Package session holds the per-viewer state around a loaded design: the
// display base, the swap mode and the reset state selected for each
// register. Every edit goes through a Session, which parses input before
// touching any field and records what it did to a trace logger.
//
// A Session is not safe for concurrent use.
package session
