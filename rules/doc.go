// Package rules holds the named-predicate table driving per-field
// validation. A rule is a pure function of the converted field value and the
// parameter declared for it in the schema; schemas reference rules by name
// and a Registry resolves those names at validation time.
//
// Built-in rules cover presence (required), string length in runes
// (minLength, maxLength), ordered bounds over numbers and dates (min, max),
// anchored regular expressions (pattern), a fixed table of named date/time
// shapes (format), membership (enum), and common identifier shapes (email,
// uuid, url). Hosts extend the set with Register; the last registration for
// a name wins.
package rules
