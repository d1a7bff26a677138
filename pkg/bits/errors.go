package bits

import "errors"

var (
	// ErrMalformedLiteral is returned when a literal holds a digit that is
	// invalid for its detected base.
	ErrMalformedLiteral = errors.New("malformed numeric literal")

	// ErrWidthMismatch is returned when a vector length does not fit the
	// requested operation.
	ErrWidthMismatch = errors.New("bit width mismatch")

	// ErrInvalidBase is returned for an unrecognized display base name.
	ErrInvalidBase = errors.New("invalid display base")

	// ErrInvalidSwap is returned for an unrecognized swap mode name.
	ErrInvalidSwap = errors.New("invalid swap mode")
)
