package canon

import "errors"

var (
	// ErrInvalidNumber reports a NaN or infinite float input. These
	// have no canonical text, so the encode fails instead of
	// producing output.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrTooDeep reports input nested beyond the configured maximum
	// depth. Guards the call stack against pathological or
	// machine-generated trees.
	ErrTooDeep = errors.New("structure too deep")
)
