package loader

import "errors"

var (
	// ErrSchema is returned when a description is missing required keys or
	// holds values of the wrong shape.
	ErrSchema = errors.New("schema error")

	// ErrInclude is returned when an include element cannot be fetched or
	// decoded.
	ErrInclude = errors.New("include error")
)
