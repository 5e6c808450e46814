package schema

import "errors"

var (
	// ErrMalformedSchema is returned when a schema document cannot be parsed.
	ErrMalformedSchema = errors.New("malformed schema document")
)
