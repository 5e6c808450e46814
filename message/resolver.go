package message

import (
	"regexp"

	"golang.org/x/text/language"

	"github.com/formkit-go/formschema/convert"
	"github.com/formkit-go/formschema/schema"
)

// placeholderRegex finds interpolation tokens in the form ${name}.
var placeholderRegex = regexp.MustCompile(`\$\{([^}]*)\}`)

// Resolve picks the message template for a failed rule and interpolates it
// with the given context. The fallback chain is, first hit wins:
//
//  1. messages[rule][locale]
//  2. messages[rule]["default"]
//  3. messages["default"][locale]
//  4. messages["default"]["default"]
//
// When all four levels are absent the message "[rule] validation failed" is
// synthesized, so the result is never empty. Within the locale-keyed levels
// a regioned tag like "en-US" additionally consults its base language "en"
// before falling through.
func Resolve(msgs schema.Messages, rule, locale string, ctx map[string]any) string {
	tmpl, ok := Lookup(msgs, rule, locale)
	if !ok {
		return synthesize(rule)
	}
	if out := Interpolate(tmpl, ctx); out != "" {
		return out
	}
	return synthesize(rule)
}

// Lookup walks the fallback chain without interpolating. Empty templates are
// treated as absent so that a misconfigured level cannot swallow a more
// general one.
func Lookup(msgs schema.Messages, rule, locale string) (string, bool) {
	if msgs == nil {
		return "", false
	}
	for _, key := range []string{rule, schema.DefaultKey} {
		byLocale, ok := msgs[key]
		if !ok {
			continue
		}
		if tmpl, ok := localeLookup(byLocale, locale); ok {
			return tmpl, true
		}
		if tmpl := byLocale[schema.DefaultKey]; tmpl != "" {
			return tmpl, true
		}
	}
	return "", false
}

func localeLookup(byLocale map[string]string, locale string) (string, bool) {
	if locale == "" || locale == schema.DefaultKey {
		return "", false
	}
	if tmpl := byLocale[locale]; tmpl != "" {
		return tmpl, true
	}

	// Regioned or scripted tags fall back to their base language before the
	// chain moves on to the default levels.
	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No || base.String() == locale {
		return "", false
	}
	if tmpl := byLocale[base.String()]; tmpl != "" {
		return tmpl, true
	}
	return "", false
}

// Interpolate replaces every ${identifier} token with the stringified
// context value; identifiers absent from the context resolve to the empty
// string. It never errors and never leaves a literal placeholder behind.
func Interpolate(tmpl string, ctx map[string]any) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		v, ok := ctx[name]
		if !ok || v == nil {
			return ""
		}
		return convert.Stringify(v)
	})
}

func synthesize(rule string) string {
	return "[" + rule + "] validation failed"
}
