package iso

import "errors"

// Errors reported by the kernel. All of them mark contract violations
// at the call site or declared gaps, not transient conditions; nothing
// is caught or retried internally.
var (
	// ErrInvalidDirection is returned for axis access with a label
	// outside B, S, D.
	ErrInvalidDirection = errors.New("iso: not a valid direction")

	// ErrArgumentCount is returned when a two-of-three coordinate
	// helper is not given exactly two arguments.
	ErrArgumentCount = errors.New("iso: exactly two of b, s, d must be given")

	// ErrInvalidOperand is returned for arithmetic that requires a
	// common frame, such as subtracting points on different grids.
	ErrInvalidOperand = errors.New("iso: operands are not on the same grid")

	// ErrUnsupportedOperation is returned when setting a structurally
	// fixed value, such as a vector's D component.
	ErrUnsupportedOperation = errors.New("iso: value is structurally fixed")

	// ErrNotAdjacent is returned when a projection target does not
	// share an edge with the point's grid.
	ErrNotAdjacent = errors.New("iso: grids do not share an edge")

	// ErrNotImplemented is returned for geodesic distance across
	// non-adjacent faces. Routing across the mesh belongs to a layer
	// above this kernel.
	ErrNotImplemented = errors.New("iso: geodesic distance is not implemented")

	// ErrZeroLength is returned when rescaling or normalising a
	// vector whose current length is zero.
	ErrZeroLength = errors.New("iso: vector has zero length")

	// ErrZeroDivisor is returned when scaling a vector down by zero.
	ErrZeroDivisor = errors.New("iso: division by zero")
)
