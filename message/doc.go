// Package message resolves human-readable validation messages from the
// localized template maps carried by a schema, walking a four-level fallback
// chain (rule+locale, rule+default, default+locale, default+default) and
// interpolating ${identifier} placeholders from a message context.
package message
