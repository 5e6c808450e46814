package schema

// FieldType enumerates the semantic types a field value can be coerced to
// before rule evaluation. An empty FieldType defaults to TypeString at
// validation time; any other unlisted value disables coercion entirely.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeDate    FieldType = "date"
)

// DefaultKey is the reserved key used by Messages for locale-independent
// and rule-independent fallback templates.
const DefaultKey = "default"

// Messages maps rule name -> locale -> message template. The reserved
// "default" entry may appear at either level: messages["required"]["default"]
// is the locale fallback for the required rule, messages["default"]["ja"] is
// the rule fallback for Japanese, and messages["default"]["default"] is the
// last resort before a message is synthesized.
//
// Templates may contain ${identifier} placeholders which are interpolated
// from the message context at resolution time.
type Messages map[string]map[string]string

// RuleParam is one rule-parameter entry of a field config, e.g.
// {Name: "minLength", Param: 3}. Entries keep the order in which they were
// declared in the schema source; rules are evaluated in exactly that order.
type RuleParam struct {
	Name  string
	Param any
}

// FieldConfig describes how a single field is converted and validated.
// Every config key other than "type" and "messages" is kept as a RuleParam,
// whether or not a rule with that name is currently registered; unknown
// names are skipped at validation time rather than rejected, so rules may
// be registered after a schema is parsed.
type FieldConfig struct {
	Type     FieldType
	Rules    []RuleParam
	Messages Messages
}

// Rule returns the parameter declared for the named rule.
func (c FieldConfig) Rule(name string) (any, bool) {
	for _, rp := range c.Rules {
		if rp.Name == name {
			return rp.Param, true
		}
	}
	return nil, false
}

// Context builds the interpolation environment for this field's messages:
// every declared rule parameter by name, the declared type, and the given
// field value under "value".
func (c FieldConfig) Context(value any) map[string]any {
	ctx := make(map[string]any, len(c.Rules)+2)
	for _, rp := range c.Rules {
		ctx[rp.Name] = rp.Param
	}
	if c.Type != "" {
		ctx["type"] = string(c.Type)
	}
	ctx["value"] = value
	return ctx
}

// Field is one named slot of a schema. Fields keep declaration order.
type Field struct {
	Name   string
	Config FieldConfig
}

// CrossFieldRule is a validation condition spanning multiple fields,
// expressed in the restricted comparison language evaluated by the expr
// package (e.g. "startDate <= endDate"). A failure attaches to Target,
// which defaults to the first referenced field.
type CrossFieldRule struct {
	Rule    string
	Fields  []string
	Target  string
	Message Messages
}

// TargetField returns the field the rule's errors attach to.
func (r CrossFieldRule) TargetField() string {
	if r.Target != "" {
		return r.Target
	}
	if len(r.Fields) > 0 {
		return r.Fields[0]
	}
	return ""
}

// Schema is the declarative description of one record shape: per-field
// configs in declaration order plus an ordered list of cross-field rules.
// A Schema is owned by the caller and referenced, never copied, by
// validators built from it.
type Schema struct {
	Fields     []Field
	CrossField []CrossFieldRule
}

// Field returns the config of the named field.
func (s *Schema) Field(name string) (FieldConfig, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Config, true
		}
	}
	return FieldConfig{}, false
}

// FieldNames returns all field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}
