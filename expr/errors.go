package expr

import "errors"

var (
	// ErrParse is returned when an expression source cannot be tokenized or
	// parsed into the restricted grammar.
	ErrParse = errors.New("malformed expression")

	// ErrUnknownIdentifier is returned when an expression references a field
	// that is not present in the record under evaluation.
	ErrUnknownIdentifier = errors.New("unknown identifier")

	// ErrTypeMismatch is returned when an ordering comparison is applied to
	// operands that have no common ordering.
	ErrTypeMismatch = errors.New("type mismatch in comparison")
)
