// Package expr implements the restricted expression language used by
// cross-field validation rules: bare identifiers bound to record fields,
// literals, the six comparison operators and the boolean combinators
// &&, || and !. Expressions are parsed once into a small AST and evaluated
// against a record with no dynamic code execution involved.
package expr
