// Package convert coerces raw record values to the semantic field types
// declared in a schema before any rule runs against them.
package convert
