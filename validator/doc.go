// Package validator is the engine that checks flat records against
// declarative schemas. For every field it coerces the raw value to the
// declared type, runs the schema's rule parameters in declaration order
// against the rule registry, and resolves a localized message for each
// failure; cross-field rules then run over the whole record. Everything a
// call finds lands in one Result.
//
//	s, _ := schema.NewJSONParser().Parse(doc)
//	v, err := validator.New(s)
//	if err != nil {
//	    // configuration fault, e.g. a malformed pattern parameter
//	}
//	res := v.Validate(map[string]any{"username": "bo"}, "en")
//	if !res.Valid {
//	    for _, msg := range res.Get("username") {
//	        // "must be at least 3 characters"
//	    }
//	}
//
// The Registry collaborator stores named schemas and builds a fresh
// validator per CreateValidator call; it can bulk-load schema files from a
// directory and optionally reject misconfigured schemas at registration
// time (WithStrictSchemas).
package validator
