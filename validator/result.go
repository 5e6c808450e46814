package validator

import "sort"

// CrossError is the structured report of one failed cross-field rule. The
// same resolved message is also appended to Result.Errors under Target.
type CrossError struct {
	Fields  []string `json:"fields"`
	Target  string   `json:"target"`
	Message string   `json:"message"`
}

// Result aggregates everything one Validate call found. A fresh Result is
// allocated per call and never shared; Valid is true iff Errors is empty.
type Result struct {
	Valid       bool                `json:"valid"`
	Errors      map[string][]string `json:"errors"`
	CrossErrors []CrossError        `json:"crossErrors"`
}

func newResult() *Result {
	return &Result{
		Valid:       true,
		Errors:      make(map[string][]string),
		CrossErrors: []CrossError{},
	}
}

func (r *Result) addError(field, msg string) {
	r.Errors[field] = append(r.Errors[field], msg)
	r.Valid = false
}

// Has reports whether the field accumulated at least one error.
func (r *Result) Has(field string) bool {
	return len(r.Errors[field]) > 0
}

// Get returns the field's error messages in the order they were added.
func (r *Result) Get(field string) []string {
	return r.Errors[field]
}

// Fields returns the names of all fields with errors, sorted for
// deterministic output.
func (r *Result) Fields() []string {
	fields := make([]string, 0, len(r.Errors))
	for field := range r.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
