package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/formkit-go/formschema/schema"
)

// ErrConversion is the only error Convert ever returns. It marks that a raw
// value could not be coerced to the declared field type; callers distinguish
// it with errors.Is and must not inspect the returned value on failure.
var ErrConversion = errors.New("cannot convert value")

// dateLayouts are the calendar layouts accepted for date coercion and for
// date-valued rule parameters, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"20060102150405",
	"20060102",
}

// Convert coerces a raw record value to the declared field type.
//
// An empty or unrecognized type passes the raw value through unchanged;
// schema.TypeString never fails; the remaining types return ErrConversion
// (wrapped with detail) when the value cannot be represented. No other error
// and no panic ever escapes.
func Convert(raw any, t schema.FieldType) (any, error) {
	switch t {
	case schema.TypeString:
		return Stringify(raw), nil
	case schema.TypeNumber:
		return toNumber(raw)
	case schema.TypeBoolean:
		return toBoolean(raw)
	case schema.TypeDate:
		return toDate(raw)
	default:
		return raw, nil
	}
}

// Stringify renders a value the way string coercion does: nil becomes the
// empty string, strings pass through, everything else uses its default
// formatted representation.
func Stringify(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toNumber(raw any) (any, error) {
	switch v := raw.(type) {
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrConversion, v)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: %T is not a number", ErrConversion, raw)
	}
}

func toBoolean(raw any) (any, error) {
	if b, ok := raw.(bool); ok {
		return b, nil
	}
	switch Stringify(raw) {
	case "true", "on":
		return true, nil
	case "false", "off":
		return false, nil
	default:
		return nil, fmt.Errorf("%w: %v is not a boolean token", ErrConversion, raw)
	}
}

func toDate(raw any) (any, error) {
	if t, ok := raw.(time.Time); ok {
		return t, nil
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return nil, fmt.Errorf("%w: %v is not a date", ErrConversion, raw)
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ParseDate parses a calendar date or datetime string against the accepted
// layouts. Invalid calendar dates (e.g. February 30th) are rejected.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a date", ErrConversion, s)
}
