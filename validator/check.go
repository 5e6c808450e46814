package validator

import (
	"fmt"
	"slices"

	"github.com/formkit-go/formschema/expr"
	"github.com/formkit-go/formschema/rules"
	"github.com/formkit-go/formschema/schema"
)

// CheckSchema verifies a schema ahead of validation time: every rule key
// must be registered, pattern parameters must compile, format parameters
// must name a known format and cross-field expressions must parse. The
// validate-time contract tolerates all of these (unknown keys are skipped,
// unevaluable rules fail closed); strict registries use this check to reject
// misconfigured schemas at load time instead.
func CheckSchema(s *schema.Schema, reg *rules.Registry) error {
	if s == nil {
		return ErrNilSchema
	}

	for _, f := range s.Fields {
		for _, rp := range f.Config.Rules {
			if !reg.Has(rp.Name) {
				return fmt.Errorf("field %q: unregistered rule %q", f.Name, rp.Name)
			}
			switch rp.Name {
			case "pattern":
				src, ok := rp.Param.(string)
				if !ok {
					return fmt.Errorf("%w: field %q: parameter must be a string, got %T", ErrInvalidPattern, f.Name, rp.Param)
				}
				if _, err := rules.CompilePattern(src); err != nil {
					return fmt.Errorf("%w: field %q: %v", ErrInvalidPattern, f.Name, err)
				}
			case "format":
				name, ok := rp.Param.(string)
				if !ok || !slices.Contains(rules.FormatNames(), name) {
					return fmt.Errorf("field %q: unknown format name %v", f.Name, rp.Param)
				}
			}
		}
	}

	for _, cr := range s.CrossField {
		if _, err := expr.Parse(cr.Rule); err != nil {
			return fmt.Errorf("cross-field rule %q: %w", cr.Rule, err)
		}
		if cr.TargetField() == "" {
			return fmt.Errorf("cross-field rule %q: no target field", cr.Rule)
		}
	}
	return nil
}

func (r *Registry) check(s *schema.Schema) error {
	// Resolve the rule registry the engine options would select, so strict
	// checks see the same rule set validators will.
	scratch := &Validator{rules: rules.Default()}
	for _, opt := range r.engineOpts {
		opt(scratch)
	}
	return CheckSchema(s, scratch.rules)
}
