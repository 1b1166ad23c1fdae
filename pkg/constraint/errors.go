package constraint

import "errors"

var (
	// ErrInvalidBounds indicates a builder was configured with inverted or
	// otherwise nonsensical bounds. Builders panic with this error wrapped;
	// misconfiguration is a programming mistake, not a runtime state.
	ErrInvalidBounds = errors.New("constraint: invalid bounds")
)
