package validator

import "errors"

var (
	// ErrNilSchema is returned when a validator is constructed without a schema.
	ErrNilSchema = errors.New("schema is nil")

	// ErrInvalidPattern is returned from New when a field declares a pattern
	// rule whose parameter is not a compilable regular expression. Malformed
	// patterns are configuration errors, not validation failures.
	ErrInvalidPattern = errors.New("invalid pattern rule")

	// ErrSchemaNotFound is returned by Registry.CreateValidator for keys that
	// were never registered.
	ErrSchemaNotFound = errors.New("schema not found")
)
