package rules

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/formkit-go/formschema/convert"
)

// builtins are installed into every registry created with New and into the
// process-wide Default registry at init time.
var builtins = map[string]Func{
	"required":  required,
	"minLength": minLength,
	"maxLength": maxLength,
	"min":       minRule,
	"max":       maxRule,
	"pattern":   pattern,
	"format":    format,
	"enum":      enum,
	"email":     email,
	"uuid":      uuidRule,
	"url":       urlRule,
}

func required(value, _ any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return s != ""
	}
	return true
}

// minLength and maxLength count runes, not bytes, so multibyte input like
// "あ" has length 1.
func minLength(value, param any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	n, ok := toInt(param)
	if !ok {
		return false
	}
	return utf8.RuneCountInString(s) >= n
}

func maxLength(value, param any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	n, ok := toInt(param)
	if !ok {
		return false
	}
	return utf8.RuneCountInString(s) <= n
}

func minRule(value, param any) bool {
	cmp, ok := orderAgainstParam(value, param)
	return ok && cmp >= 0
}

func maxRule(value, param any) bool {
	cmp, ok := orderAgainstParam(value, param)
	return ok && cmp <= 0
}

// orderAgainstParam compares a converted field value against a rule
// parameter: dates compare on the calendar, numbers numerically. Any other
// value type, and any unparseable parameter, fails closed.
func orderAgainstParam(value, param any) (int, bool) {
	switch v := value.(type) {
	case time.Time:
		p, err := convert.ParseDate(convert.Stringify(param))
		if err != nil {
			return 0, false
		}
		switch {
		case v.Before(p):
			return -1, true
		case v.After(p):
			return 1, true
		default:
			return 0, true
		}
	default:
		vf, ok := toFloat(value)
		if !ok {
			return 0, false
		}
		pf, ok := paramFloat(param)
		if !ok {
			return 0, false
		}
		switch {
		case vf < pf:
			return -1, true
		case vf > pf:
			return 1, true
		default:
			return 0, true
		}
	}
}

// pattern requires the whole string to match; partial matches fail. The
// expression is compiled per application, so validators pre-check it at
// construction time where a malformed pattern is a configuration error.
func pattern(value, param any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	src, ok := param.(string)
	if !ok {
		return false
	}
	re, err := CompilePattern(src)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// CompilePattern compiles a pattern rule parameter as an anchored regular
// expression matching the entire value.
func CompilePattern(src string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + src + ")$")
}

// enum passes iff the parameter is a sequence containing the value. A
// non-sequence parameter always fails.
func enum(value, param any) bool {
	rv := reflect.ValueOf(param)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if equal(value, rv.Index(i).Interface()) {
			return true
		}
	}
	return false
}

func email(value, _ any) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return false
	}
	domain := parts[1]
	return strings.Contains(domain, ".") &&
		!strings.HasPrefix(domain, ".") &&
		!strings.HasSuffix(domain, ".")
}

func uuidRule(value, _ any) bool {
	s, ok := value.(string)
	if !ok || len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func urlRule(value, _ any) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// paramFloat accepts numeric parameters as well as numeric strings, which is
// what schemas loaded from loosely-typed sources tend to carry.
func paramFloat(param any) (float64, bool) {
	if f, ok := toFloat(param); ok {
		return f, true
	}
	if s, ok := param.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	return 0, false
}

// equal compares enum members: numerics compare across kinds, everything
// else requires an exact match.
func equal(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		return ok && ab == bb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b) && fmt.Sprintf("%T", a) == fmt.Sprintf("%T", b)
}
