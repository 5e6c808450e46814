package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Eval evaluates the expression against a record, binding identifiers to the
// record's raw entries. The result is the truthiness of the final value, so
// a bare identifier works as a presence/non-empty check.
//
// Missing identifiers and type-mismatched orderings are errors; callers in
// the validation engine treat any error as rule failure.
func (e *Expr) Eval(record map[string]any) (bool, error) {
	v, err := e.root.eval(record)
	if err != nil {
		return false, err
	}
	return truthy(v), nil
}

type node interface {
	eval(record map[string]any) (any, error)
}

type identNode struct {
	name string
}

func (n *identNode) eval(record map[string]any) (any, error) {
	v, ok := record[n.name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIdentifier, n.name)
	}
	return v, nil
}

type literalNode struct {
	val any
}

func (n *literalNode) eval(map[string]any) (any, error) {
	return n.val, nil
}

type notNode struct {
	operand node
}

func (n *notNode) eval(record map[string]any) (any, error) {
	v, err := n.operand.eval(record)
	if err != nil {
		return nil, err
	}
	return !truthy(v), nil
}

type binaryNode struct {
	op  tokenKind
	lhs node
	rhs node
}

func (n *binaryNode) eval(record map[string]any) (any, error) {
	left, err := n.lhs.eval(record)
	if err != nil {
		return nil, err
	}

	// Boolean combinators short-circuit on the left operand.
	switch n.op {
	case tokenAnd:
		if !truthy(left) {
			return false, nil
		}
		right, err := n.rhs.eval(record)
		if err != nil {
			return nil, err
		}
		return truthy(right), nil
	case tokenOr:
		if truthy(left) {
			return true, nil
		}
		right, err := n.rhs.eval(record)
		if err != nil {
			return nil, err
		}
		return truthy(right), nil
	}

	right, err := n.rhs.eval(record)
	if err != nil {
		return nil, err
	}

	switch n.op {
	case tokenEq:
		return equalValues(left, right), nil
	case tokenNeq:
		return !equalValues(left, right), nil
	}

	cmp, err := compare(left, right)
	if err != nil {
		return nil, err
	}
	switch n.op {
	case tokenLt:
		return cmp < 0, nil
	case tokenLte:
		return cmp <= 0, nil
	case tokenGt:
		return cmp > 0, nil
	case tokenGte:
		return cmp >= 0, nil
	default:
		return nil, fmt.Errorf("%w: unsupported operator", ErrParse)
	}
}

// compare orders two operands: numbers numerically, strings lexically (which
// keeps slash- and hyphen-formatted dates in calendar order), and a string
// against a number by numeric coercion when the string parses. Everything
// else is a type mismatch.
func compare(a, b any) (int, error) {
	af, aNum := asFloat(a)
	bf, bNum := asFloat(b)
	if aNum && bNum {
		return cmpFloat(af, bf), nil
	}

	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		return strings.Compare(as, bs), nil
	}

	if aNum && bStr {
		if f, err := strconv.ParseFloat(strings.TrimSpace(bs), 64); err == nil {
			return cmpFloat(af, f), nil
		}
	}
	if aStr && bNum {
		if f, err := strconv.ParseFloat(strings.TrimSpace(as), 64); err == nil {
			return cmpFloat(f, bf), nil
		}
	}

	return 0, fmt.Errorf("%w: cannot order %T and %T", ErrTypeMismatch, a, b)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if af, ok := asFloat(a); ok {
		bf, ok := asFloat(b)
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
	return false
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	default:
		if f, ok := asFloat(v); ok {
			return f != 0
		}
		return true
	}
}

func asFloat(v any) (float64, bool) {
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
