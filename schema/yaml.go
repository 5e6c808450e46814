package schema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML schema documents.
// It walks the yaml.Node tree directly because mapping nodes preserve key
// order while map unmarshalling does not.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses a YAML schema document.
func (p *YAMLParser) Parse(data []byte) (*Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Join(ErrMalformedSchema, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedSchema)
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected mapping at document root, got %s", ErrMalformedSchema, nodeKind(doc))
	}

	s := &Schema{}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, val := doc.Content[i].Value, doc.Content[i+1]

		switch key {
		case "fields":
			fields, err := yamlFields(val)
			if err != nil {
				return nil, errors.Join(ErrMalformedSchema, err)
			}
			s.Fields = fields
		case "crossFieldValidations":
			var raw []crossFieldJSON
			if err := val.Decode(&raw); err != nil {
				return nil, errors.Join(ErrMalformedSchema, err)
			}
			for _, r := range raw {
				s.CrossField = append(s.CrossField, r.toRule())
			}
		}
	}
	return s, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = normalizeExtension(ext)
	return ext == "yaml" || ext == "yml"
}

func yamlFields(node *yaml.Node) ([]Field, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("fields: expected mapping, got %s", nodeKind(node))
	}

	var fields []Field
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, val := node.Content[i].Value, node.Content[i+1]
		cfg, err := yamlFieldConfig(val)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		fields = append(fields, Field{Name: name, Config: cfg})
	}
	return fields, nil
}

func yamlFieldConfig(node *yaml.Node) (FieldConfig, error) {
	var cfg FieldConfig
	if node.Kind != yaml.MappingNode {
		return cfg, fmt.Errorf("expected mapping, got %s", nodeKind(node))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]

		switch key {
		case "type":
			cfg.Type = FieldType(val.Value)
		case "messages":
			if err := val.Decode(&cfg.Messages); err != nil {
				return cfg, fmt.Errorf("messages: %w", err)
			}
		default:
			var v any
			if err := val.Decode(&v); err != nil {
				return cfg, fmt.Errorf("%s: %w", key, err)
			}
			cfg.Rules = append(cfg.Rules, RuleParam{Name: key, Param: v})
		}
	}
	return cfg, nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
