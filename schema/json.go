package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// JSONParser implements the Parser interface for JSON schema documents.
//
// It decodes token by token instead of unmarshalling into a map so that the
// declaration order of fields and of rule-parameter keys survives parsing;
// rule evaluation order is defined by that declaration order.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses a JSON schema document.
func (p *JSONParser) Parse(data []byte) (*Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, errors.Join(ErrMalformedSchema, err)
	}

	s := &Schema{}
	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return nil, errors.Join(ErrMalformedSchema, err)
		}

		switch key {
		case "fields":
			fields, err := parseFields(dec)
			if err != nil {
				return nil, errors.Join(ErrMalformedSchema, err)
			}
			s.Fields = fields
		case "crossFieldValidations":
			var raw []crossFieldJSON
			if err := dec.Decode(&raw); err != nil {
				return nil, errors.Join(ErrMalformedSchema, err)
			}
			for _, r := range raw {
				s.CrossField = append(s.CrossField, r.toRule())
			}
		default:
			// Unknown top-level keys are ignored, same as unknown
			// field-config keys.
			var skip any
			if err := dec.Decode(&skip); err != nil {
				return nil, errors.Join(ErrMalformedSchema, err)
			}
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, errors.Join(ErrMalformedSchema, err)
	}
	return s, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return normalizeExtension(ext) == "json"
}

func parseFields(dec *json.Decoder) ([]Field, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var fields []Field
	for dec.More() {
		name, err := nextKey(dec)
		if err != nil {
			return nil, err
		}
		cfg, err := parseFieldConfig(dec)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		fields = append(fields, Field{Name: name, Config: cfg})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return fields, nil
}

func parseFieldConfig(dec *json.Decoder) (FieldConfig, error) {
	var cfg FieldConfig

	if err := expectDelim(dec, '{'); err != nil {
		return cfg, err
	}

	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return cfg, err
		}

		switch key {
		case "type":
			var t string
			if err := dec.Decode(&t); err != nil {
				return cfg, fmt.Errorf("type: %w", err)
			}
			cfg.Type = FieldType(t)
		case "messages":
			if err := dec.Decode(&cfg.Messages); err != nil {
				return cfg, fmt.Errorf("messages: %w", err)
			}
		default:
			var v any
			if err := dec.Decode(&v); err != nil {
				return cfg, fmt.Errorf("%s: %w", key, err)
			}
			cfg.Rules = append(cfg.Rules, RuleParam{Name: key, Param: v})
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return cfg, err
	}
	return cfg, nil
}

type crossFieldJSON struct {
	Rule    string   `json:"rule"`
	Fields  []string `json:"fields"`
	Target  string   `json:"target"`
	Message Messages `json:"message"`
}

func (r crossFieldJSON) toRule() CrossFieldRule {
	return CrossFieldRule{
		Rule:    r.Rule,
		Fields:  r.Fields,
		Target:  r.Target,
		Message: r.Message,
	}
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || rune(delim) != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func nextKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}
