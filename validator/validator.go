package validator

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/formkit-go/formschema/convert"
	"github.com/formkit-go/formschema/expr"
	"github.com/formkit-go/formschema/message"
	"github.com/formkit-go/formschema/rules"
	"github.com/formkit-go/formschema/schema"
)

// DefaultLocale is used when Validate is called with an empty locale and no
// other default was configured.
const DefaultLocale = "en"

// Validator checks records against one schema. It holds no per-call state:
// every Validate call allocates its own Result, so a single Validator is safe
// for concurrent use as long as its rule registry has finished registration.
//
// The schema is referenced, not copied; mutations made after construction are
// picked up by subsequent Validate calls.
type Validator struct {
	schema *schema.Schema
	rules  *rules.Registry
	locale string
	logger *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithRules sets the rule registry the validator resolves rule names
// against, replacing the process-wide default. Nil registries are ignored.
func WithRules(r *rules.Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.rules = r
		}
	}
}

// WithDefaultLocale sets the locale used when Validate receives an empty one.
func WithDefaultLocale(locale string) Option {
	return func(v *Validator) {
		if locale != "" {
			v.locale = locale
		}
	}
}

// WithLogger sets a logger for debug diagnostics (unknown rule keys, message
// templates that fell through to the synthesized fallback, cross-field rules
// that failed to evaluate). Logging is off by default.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New builds a validator bound to the given schema.
//
// Pattern rule parameters are compiled eagerly: a malformed regular
// expression is a configuration fault and fails construction, unlike every
// validation-time condition which only ever produces field errors.
func New(s *schema.Schema, opts ...Option) (*Validator, error) {
	if s == nil {
		return nil, ErrNilSchema
	}

	v := &Validator{
		schema: s,
		rules:  rules.Default(),
		locale: DefaultLocale,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}

	for _, f := range s.Fields {
		param, ok := f.Config.Rule("pattern")
		if !ok {
			continue
		}
		src, ok := param.(string)
		if !ok {
			return nil, fmt.Errorf("%w: field %q: parameter must be a string, got %T", ErrInvalidPattern, f.Name, param)
		}
		if _, err := rules.CompilePattern(src); err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidPattern, f.Name, err)
		}
	}

	return v, nil
}

// Schema returns the schema the validator is bound to.
func (v *Validator) Schema() *schema.Schema {
	return v.schema
}

// Validate checks a record against the schema and returns a fresh Result.
// An empty locale selects the validator's default.
//
// Fields are processed in schema declaration order: the raw value is coerced
// to the declared type (a coercion failure records one "type" message and
// skips the field's rules), then every declared rule runs in declaration
// order, each failure appending its resolved message. Cross-field rules run
// afterwards; a failed or unevaluable rule appends a CrossError and the same
// message under the rule's target field.
func (v *Validator) Validate(record map[string]any, locale string) *Result {
	if locale == "" {
		locale = v.locale
	}

	res := newResult()
	for _, f := range v.schema.Fields {
		v.validateField(res, f, record, locale)
	}
	for _, cr := range v.schema.CrossField {
		v.validateCrossField(res, cr, record, locale)
	}
	return res
}

func (v *Validator) validateField(res *Result, f schema.Field, record map[string]any, locale string) {
	raw := record[f.Name]

	typ := f.Config.Type
	if typ == "" {
		typ = schema.TypeString
	}

	value, err := convert.Convert(raw, typ)
	if err != nil {
		res.addError(f.Name, v.resolve(f.Config.Messages, "type", locale, f.Config.Context(raw)))
		return
	}

	for _, rp := range f.Config.Rules {
		if !v.rules.Has(rp.Name) {
			// Config keys without a registered rule are parameters of
			// nothing; they stay available for message interpolation.
			v.logger.Debug("skipping unregistered rule key", "field", f.Name, "rule", rp.Name)
			continue
		}
		if v.rules.Apply(rp.Name, value, rp.Param) {
			continue
		}
		res.addError(f.Name, v.resolve(f.Config.Messages, rp.Name, locale, f.Config.Context(value)))
	}
}

func (v *Validator) validateCrossField(res *Result, cr schema.CrossFieldRule, record map[string]any, locale string) {
	pass := false
	compiled, err := expr.Parse(cr.Rule)
	if err == nil {
		pass, err = compiled.Eval(record)
	}
	if err != nil {
		// Malformed expressions, missing fields and mismatched comparisons
		// all count as rule failure; nothing ever passes by accident.
		v.logger.Debug("cross-field rule did not evaluate", "rule", cr.Rule, "error", err)
		pass = false
	}
	if pass {
		return
	}

	target := cr.TargetField()
	msg := v.resolve(cr.Message, target, locale, record)
	res.CrossErrors = append(res.CrossErrors, CrossError{
		Fields:  cr.Fields,
		Target:  target,
		Message: msg,
	})
	res.addError(target, msg)
}

func (v *Validator) resolve(msgs schema.Messages, rule, locale string, ctx map[string]any) string {
	if _, ok := message.Lookup(msgs, rule, locale); !ok {
		v.logger.Debug("no message template configured", "rule", rule, "locale", locale)
	}
	return message.Resolve(msgs, rule, locale, ctx)
}
