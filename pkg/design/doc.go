// Package design models a register description as a tree of elements and
// holds the load-time resolvers and the value/field codec that operate on it.
//
// Elements are addressed by dot-separated ids; the parent of "blk.sub.reg" is
// "blk.sub" and an id without a dot hangs off the Root. Addresses, data widths
// and default reset-state names are inherited down that path.
//
// # Lifecycle
//
// A loader builds a Design with New and Add, then calls Resolve once. Resolve
// computes every element's address and width, validates that each register's
// fields partition its width, and seeds each field value from its reset spec
// under the register's default reset state.
//
// After that, field values change only through the codec (ValueToFields,
// SetFieldValue) and the reset resolver (ApplyResetState). Reading a value
// with Field.Value returns a copy.
//
// # Reset states
//
// A field's reset spec is either unnamed, in which case it applies under the
// register's default reset state only, or tied to an explicit list of state
// names. Under any other state the field value is all unknown bits.
package design
