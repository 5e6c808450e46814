package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formkit-go/formschema/rules"
)

func TestRegistry_Register(t *testing.T) {
	t.Run("installs a custom rule", func(t *testing.T) {
		r := rules.New()
		r.Register("shouty", func(value, _ any) bool {
			s, ok := value.(string)
			return ok && s == strings.ToUpper(s)
		})

		assert.True(t, r.Has("shouty"))
		assert.True(t, r.Apply("shouty", "HELLO", nil))
		assert.False(t, r.Apply("shouty", "hello", nil))
	})

	t.Run("last registration wins", func(t *testing.T) {
		r := rules.New()
		r.Register("flaky", func(any, any) bool { return false })
		r.Register("flaky", func(any, any) bool { return true })
		assert.True(t, r.Apply("flaky", "anything", nil))
	})

	t.Run("can replace a built-in", func(t *testing.T) {
		r := rules.New()
		r.Register("required", func(any, any) bool { return true })
		assert.True(t, r.Apply("required", nil, nil))
	})

	t.Run("ignores empty name and nil func", func(t *testing.T) {
		r := rules.NewEmpty()
		r.Register("", func(any, any) bool { return true })
		r.Register("nothing", nil)
		assert.False(t, r.Has(""))
		assert.False(t, r.Has("nothing"))
	})
}

func TestRegistry_Apply(t *testing.T) {
	t.Run("unregistered rule fails closed", func(t *testing.T) {
		r := rules.NewEmpty()
		assert.False(t, r.Apply("missing", "value", nil))
	})
}

func TestRegistry_Isolation(t *testing.T) {
	t.Run("registries do not share rules", func(t *testing.T) {
		a := rules.New()
		b := rules.New()
		a.Register("only-in-a", func(any, any) bool { return true })

		assert.True(t, a.Has("only-in-a"))
		assert.False(t, b.Has("only-in-a"))
		assert.False(t, rules.Default().Has("only-in-a"))
	})
}

func TestRegistry_Builtins(t *testing.T) {
	r := rules.New()
	for _, name := range []string{
		"required", "minLength", "maxLength", "min", "max",
		"pattern", "format", "enum", "email", "uuid", "url",
	} {
		assert.True(t, r.Has(name), "built-in %q missing", name)
	}
}
