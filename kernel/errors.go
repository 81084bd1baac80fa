package kernel

import "errors"

var (
	// ErrInvalidParameter indicates a Params field outside its documented domain.
	// Returned before any allocation; values are never clamped.
	ErrInvalidParameter = errors.New("kernel: invalid parameter")

	// ErrOutOfRange indicates an offset outside [-r,r]².
	ErrOutOfRange = errors.New("kernel: offset out of range")
)
