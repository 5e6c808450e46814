package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formkit-go/formschema/schema"
)

const sampleJSON = `{
  "fields": {
    "username": {
      "type": "string",
      "required": true,
      "minLength": 3,
      "maxLength": 20,
      "messages": {
        "required":  {"en": "username is required", "ja": "ユーザー名は必須です"},
        "minLength": {"default": "at least ${minLength} characters"}
      }
    },
    "age": {
      "type": "number",
      "min": 18
    }
  },
  "crossFieldValidations": [
    {
      "rule": "startDate <= endDate",
      "fields": ["startDate", "endDate"],
      "target": "endDate",
      "message": {"endDate": {"en": "end date must not precede start date"}}
    }
  ]
}`

func TestJSONParser_Parse(t *testing.T) {
	s, err := schema.NewJSONParser().Parse([]byte(sampleJSON))
	require.NoError(t, err)

	t.Run("fields keep declaration order", func(t *testing.T) {
		assert.Equal(t, []string{"username", "age"}, s.FieldNames())
	})

	t.Run("rule parameters keep declaration order", func(t *testing.T) {
		cfg, ok := s.Field("username")
		require.True(t, ok)
		names := make([]string, 0, len(cfg.Rules))
		for _, rp := range cfg.Rules {
			names = append(names, rp.Name)
		}
		assert.Equal(t, []string{"required", "minLength", "maxLength"}, names)
	})

	t.Run("type and messages are not rule parameters", func(t *testing.T) {
		cfg, _ := s.Field("username")
		assert.Equal(t, schema.TypeString, cfg.Type)
		_, hasType := cfg.Rule("type")
		assert.False(t, hasType)
		_, hasMessages := cfg.Rule("messages")
		assert.False(t, hasMessages)
	})

	t.Run("messages parse into locale maps", func(t *testing.T) {
		cfg, _ := s.Field("username")
		assert.Equal(t, "ユーザー名は必須です", cfg.Messages["required"]["ja"])
		assert.Equal(t, "at least ${minLength} characters", cfg.Messages["minLength"]["default"])
	})

	t.Run("numeric parameters decode as numbers", func(t *testing.T) {
		cfg, _ := s.Field("age")
		param, ok := cfg.Rule("min")
		require.True(t, ok)
		assert.Equal(t, 18.0, param)
	})

	t.Run("cross-field rules", func(t *testing.T) {
		require.Len(t, s.CrossField, 1)
		cr := s.CrossField[0]
		assert.Equal(t, "startDate <= endDate", cr.Rule)
		assert.Equal(t, []string{"startDate", "endDate"}, cr.Fields)
		assert.Equal(t, "endDate", cr.TargetField())
		assert.Equal(t, "end date must not precede start date", cr.Message["endDate"]["en"])
	})
}

func TestJSONParser_Malformed(t *testing.T) {
	for _, doc := range []string{
		``,
		`[]`,
		`{"fields": []}`,
		`{"fields": {"a": {`,
		`not json`,
	} {
		t.Run(doc, func(t *testing.T) {
			_, err := schema.NewJSONParser().Parse([]byte(doc))
			assert.ErrorIs(t, err, schema.ErrMalformedSchema)
		})
	}
}

func TestJSONParser_UnknownKeys(t *testing.T) {
	t.Run("unknown top-level keys are ignored", func(t *testing.T) {
		s, err := schema.NewJSONParser().Parse([]byte(`{"version": 2, "fields": {"a": {"required": true}}}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, s.FieldNames())
	})

	t.Run("unmatched config keys are kept as rule parameters", func(t *testing.T) {
		s, err := schema.NewJSONParser().Parse([]byte(`{"fields": {"a": {"hint": "free text"}}}`))
		require.NoError(t, err)
		cfg, _ := s.Field("a")
		param, ok := cfg.Rule("hint")
		assert.True(t, ok)
		assert.Equal(t, "free text", param)
	})
}

func TestJSONParser_SupportsFileExtension(t *testing.T) {
	p := schema.NewJSONParser()
	assert.True(t, p.SupportsFileExtension("json"))
	assert.True(t, p.SupportsFileExtension(".JSON"))
	assert.False(t, p.SupportsFileExtension("yaml"))
}
