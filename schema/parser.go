package schema

import "strings"

// Parser is an interface for parsing schema documents from various file formats.
type Parser interface {
	// Parse processes the given document and returns the schema it describes.
	// Field and rule-parameter declaration order must be preserved.
	Parse(data []byte) (*Schema, error)

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot (e.g. both "json" and
	// ".json" are valid).
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil when
// the format is not supported.
func NewParserForFile(filename string) Parser {
	switch normalizeExtension(getFileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
