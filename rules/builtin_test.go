package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/formkit-go/formschema/rules"
)

func TestRequired(t *testing.T) {
	r := rules.New()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "non-empty string", value: "x", want: true},
		{name: "empty string", value: "", want: false},
		{name: "nil", value: nil, want: false},
		{name: "zero number", value: 0.0, want: true},
		{name: "false boolean", value: false, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Apply("required", tt.value, true))
		})
	}
}

func TestLengthRules(t *testing.T) {
	r := rules.New()

	t.Run("minLength counts runes", func(t *testing.T) {
		assert.False(t, r.Apply("minLength", "あ", 3))
		assert.True(t, r.Apply("minLength", "あいう", 3))
		assert.True(t, r.Apply("minLength", "abcd", 3))
	})

	t.Run("maxLength counts runes", func(t *testing.T) {
		assert.True(t, r.Apply("maxLength", "あいう", 3))
		assert.False(t, r.Apply("maxLength", "あいうえ", 3))
	})

	t.Run("non-string value fails", func(t *testing.T) {
		assert.False(t, r.Apply("minLength", 12345, 3))
		assert.False(t, r.Apply("maxLength", 12345, 3))
	})

	t.Run("non-numeric parameter fails", func(t *testing.T) {
		assert.False(t, r.Apply("minLength", "abc", "three"))
	})
}

func TestMinMax(t *testing.T) {
	r := rules.New()

	t.Run("numeric bounds", func(t *testing.T) {
		assert.True(t, r.Apply("min", 18.0, 18))
		assert.False(t, r.Apply("min", 17.0, 18))
		assert.True(t, r.Apply("max", 18.0, 18))
		assert.False(t, r.Apply("max", 19.0, 18))
	})

	t.Run("numeric parameter as string", func(t *testing.T) {
		assert.True(t, r.Apply("min", 20.0, "18"))
	})

	t.Run("date bounds", func(t *testing.T) {
		d := time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC)
		assert.True(t, r.Apply("min", d, "2025-01-01"))
		assert.False(t, r.Apply("min", d, "2025-06-01"))
		assert.True(t, r.Apply("max", d, "2025-12-31"))
		assert.False(t, r.Apply("max", d, "2025-01-01"))
	})

	t.Run("other value types fail closed", func(t *testing.T) {
		assert.False(t, r.Apply("min", "18", 10))
		assert.False(t, r.Apply("min", true, 0))
		assert.False(t, r.Apply("max", nil, 10))
	})

	t.Run("unparseable date parameter fails", func(t *testing.T) {
		d := time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC)
		assert.False(t, r.Apply("min", d, "not a date"))
	})
}

func TestPattern(t *testing.T) {
	r := rules.New()

	t.Run("full match required", func(t *testing.T) {
		assert.True(t, r.Apply("pattern", "abc123", `[a-z]+\d+`))
		assert.False(t, r.Apply("pattern", "abc123!", `[a-z]+\d+`))
		assert.False(t, r.Apply("pattern", "xx abc123", `[a-z]+\d+`))
	})

	t.Run("non-string value fails", func(t *testing.T) {
		assert.False(t, r.Apply("pattern", 123, `\d+`))
	})

	t.Run("malformed pattern fails closed at apply time", func(t *testing.T) {
		assert.False(t, r.Apply("pattern", "abc", `[unclosed`))
	})
}

func TestCompilePattern(t *testing.T) {
	t.Run("anchors the expression", func(t *testing.T) {
		re, err := rules.CompilePattern(`\d+`)
		assert.NoError(t, err)
		assert.True(t, re.MatchString("123"))
		assert.False(t, re.MatchString("a123"))
	})

	t.Run("rejects malformed expressions", func(t *testing.T) {
		_, err := rules.CompilePattern(`[unclosed`)
		assert.Error(t, err)
	})
}

func TestEnum(t *testing.T) {
	r := rules.New()

	t.Run("member passes", func(t *testing.T) {
		assert.True(t, r.Apply("enum", "red", []any{"red", "green", "blue"}))
		assert.True(t, r.Apply("enum", "blue", []string{"red", "green", "blue"}))
	})

	t.Run("non-member fails", func(t *testing.T) {
		assert.False(t, r.Apply("enum", "yellow", []any{"red", "green", "blue"}))
	})

	t.Run("numeric membership across kinds", func(t *testing.T) {
		assert.True(t, r.Apply("enum", 5.0, []any{1.0, 5.0}))
		assert.True(t, r.Apply("enum", 5.0, []int{1, 5}))
	})

	t.Run("non-sequence parameter always fails", func(t *testing.T) {
		assert.False(t, r.Apply("enum", "red", "red"))
		assert.False(t, r.Apply("enum", "red", nil))
		assert.False(t, r.Apply("enum", "red", 42))
	})
}

func TestIdentifierRules(t *testing.T) {
	r := rules.New()

	t.Run("email", func(t *testing.T) {
		assert.True(t, r.Apply("email", "user@example.com", nil))
		assert.False(t, r.Apply("email", "user@", nil))
		assert.False(t, r.Apply("email", "not-an-email", nil))
		assert.False(t, r.Apply("email", "", nil))
		assert.False(t, r.Apply("email", 42, nil))
	})

	t.Run("uuid", func(t *testing.T) {
		assert.True(t, r.Apply("uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil))
		assert.False(t, r.Apply("uuid", "6ba7b810-9dad-11d1-80b4", nil))
		assert.False(t, r.Apply("uuid", "not-a-uuid-at-all-but-36-chars-long!", nil))
	})

	t.Run("url", func(t *testing.T) {
		assert.True(t, r.Apply("url", "https://example.com/path", nil))
		assert.False(t, r.Apply("url", "example.com", nil))
		assert.False(t, r.Apply("url", "", nil))
	})
}
