package expr

import (
	"fmt"
	"strconv"
)

// Expr is a parsed cross-field expression, safe to evaluate against any
// record any number of times.
type Expr struct {
	root node
	src  string
}

// Parse compiles an expression source into the restricted grammar:
// identifier lookups, number/string/boolean/null literals, the comparison
// operators ==, !=, <, <=, >, >= and the combinators &&, || and !, with
// parentheses for grouping. Anything beyond that is a parse error.
func Parse(src string) (*Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokenEOF {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, p.peek().text, p.peek().pos)
	}
	return &Expr{root: root, src: src}, nil
}

// String returns the original source of the expression.
func (e *Expr) String() string {
	return e.src
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: tokenOr, lhs: left, rhs: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenAnd {
		p.next()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: tokenAnd, lhs: left, rhs: right}
	}
	return left, nil
}

func (p *parser) parseNot() (node, error) {
	if p.peek().kind == tokenNot {
		p.next()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &notNode{operand: operand}, nil
	}
	return p.parseComparison()
}

// parseComparison is deliberately non-associative: "a < b < c" is a parse
// error rather than a silently surprising chain.
func (p *parser) parseComparison() (node, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	switch op := p.peek().kind; op {
	case tokenEq, tokenNeq, tokenLt, tokenLte, tokenGt, tokenGte:
		p.next()
		right, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		return &binaryNode{op: op, lhs: left, rhs: right}, nil
	default:
		return left, nil
	}
}

func (p *parser) parseOperand() (node, error) {
	switch t := p.next(); t.kind {
	case tokenIdent:
		switch t.text {
		case "true":
			return &literalNode{val: true}, nil
		case "false":
			return &literalNode{val: false}, nil
		case "null":
			return &literalNode{val: nil}, nil
		default:
			return &identNode{name: t.text}, nil
		}
	case tokenNumber:
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q at offset %d", ErrParse, t.text, t.pos)
		}
		return &literalNode{val: f}, nil
	case tokenMinus:
		num := p.next()
		if num.kind != tokenNumber {
			return nil, fmt.Errorf("%w: expected number after '-' at offset %d", ErrParse, t.pos)
		}
		f, err := strconv.ParseFloat(num.text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q at offset %d", ErrParse, num.text, num.pos)
		}
		return &literalNode{val: -f}, nil
	case tokenString:
		return &literalNode{val: t.text}, nil
	case tokenLParen:
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokenRParen {
			return nil, fmt.Errorf("%w: expected ')' at offset %d", ErrParse, closing.pos)
		}
		return inner, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, t.text, t.pos)
	}
}
