package design

import "errors"

var (
	ErrMissingElement    = errors.New("element not found")
	ErrDuplicateElement  = errors.New("duplicate element ID")
	ErrNotRegister       = errors.New("element is not a register")
	ErrUnresolvedInclude = errors.New("include element was not resolved")
	ErrUnknownField      = errors.New("field not found")
	ErrDuplicateField    = errors.New("duplicate field name")
	ErrFieldRange        = errors.New("field bit range outside register")
	ErrFieldOverlap      = errors.New("field bit ranges overlap")
	ErrPartition         = errors.New("fields do not cover register width")
	ErrUnknownResetState = errors.New("unknown reset state")
)
