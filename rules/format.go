package rules

import "regexp"

// namedFormats is the fixed table consulted by the format rule. The names
// mirror the date/time shapes they accept; TIMESTAMP_MS and UNIX_MS are
// aliases for 10-13 digit UNIX-millisecond timestamps.
var namedFormats = map[string]*regexp.Regexp{
	"YYYY/MM/DD":     regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`),
	"YYYY-MM-DD":     regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	"YYYYMMDD":       regexp.MustCompile(`^\d{8}$`),
	"HHMMSS":         regexp.MustCompile(`^\d{6}$`),
	"HH:MM:SS":       regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`),
	"YYYYMMDDHHMMSS": regexp.MustCompile(`^\d{14}$`),
	"ISO8601":        regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`),
	"TIMESTAMP_MS":   regexp.MustCompile(`^\d{10,13}$`),
}

func init() {
	namedFormats["UNIX_MS"] = namedFormats["TIMESTAMP_MS"]
}

// FormatNames returns the recognized format names, including aliases.
func FormatNames() []string {
	names := make([]string, 0, len(namedFormats))
	for name := range namedFormats {
		names = append(names, name)
	}
	return names
}

// format passes iff the value is a string matching the named format. An
// unrecognized format name fails regardless of the value.
func format(value, param any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	name, ok := param.(string)
	if !ok {
		return false
	}
	re, ok := namedFormats[name]
	if !ok {
		return false
	}
	return re.MatchString(s)
}
