package expr

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenNumber
	tokenString
	tokenLParen
	tokenRParen
	tokenNot
	tokenAnd
	tokenOr
	tokenEq
	tokenNeq
	tokenLt
	tokenLte
	tokenGt
	tokenGte
	tokenMinus
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex tokenizes the whole source up front; the grammar is small enough that
// a token slice is simpler than a streaming lexer.
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			toks = append(toks, token{tokenLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, token{tokenRParen, ")", i})
			i++
		case c == '-':
			toks = append(toks, token{tokenMinus, "-", i})
			i++
		case c == '&':
			if i+1 >= len(src) || src[i+1] != '&' {
				return nil, fmt.Errorf("%w: single '&' at offset %d", ErrParse, i)
			}
			toks = append(toks, token{tokenAnd, "&&", i})
			i += 2
		case c == '|':
			if i+1 >= len(src) || src[i+1] != '|' {
				return nil, fmt.Errorf("%w: single '|' at offset %d", ErrParse, i)
			}
			toks = append(toks, token{tokenOr, "||", i})
			i += 2
		case c == '=':
			// Accept both == and the strict === spelling.
			if i+1 >= len(src) || src[i+1] != '=' {
				return nil, fmt.Errorf("%w: assignment is not allowed at offset %d", ErrParse, i)
			}
			n := 2
			if i+2 < len(src) && src[i+2] == '=' {
				n = 3
			}
			toks = append(toks, token{tokenEq, src[i : i+n], i})
			i += n
		case c == '!':
			if i+1 < len(src) && src[i+1] == '=' {
				n := 2
				if i+2 < len(src) && src[i+2] == '=' {
					n = 3
				}
				toks = append(toks, token{tokenNeq, src[i : i+n], i})
				i += n
			} else {
				toks = append(toks, token{tokenNot, "!", i})
				i++
			}
		case c == '<':
			if i+1 < len(src) && src[i+1] == '=' {
				toks = append(toks, token{tokenLte, "<=", i})
				i += 2
			} else {
				toks = append(toks, token{tokenLt, "<", i})
				i++
			}
		case c == '>':
			if i+1 < len(src) && src[i+1] == '=' {
				toks = append(toks, token{tokenGte, ">=", i})
				i += 2
			} else {
				toks = append(toks, token{tokenGt, ">", i})
				i++
			}
		case c == '\'' || c == '"':
			text, next, err := lexString(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{tokenString, text, i})
			i = next
		case c >= '0' && c <= '9':
			start := i
			for i < len(src) && (src[i] >= '0' && src[i] <= '9' || src[i] == '.') {
				i++
			}
			toks = append(toks, token{tokenNumber, src[start:i], start})
		case isIdentStart(rune(c)):
			start := i
			for i < len(src) && isIdentPart(rune(src[i])) {
				i++
			}
			toks = append(toks, token{tokenIdent, src[start:i], start})
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrParse, c, i)
		}
	}
	return append(toks, token{tokenEOF, "", len(src)}), nil
}

func lexString(src string, start int) (string, int, error) {
	quote := src[start]
	var sb strings.Builder
	i := start + 1
	for i < len(src) {
		c := src[i]
		switch c {
		case quote:
			return sb.String(), i + 1, nil
		case '\\':
			if i+1 >= len(src) {
				return "", 0, fmt.Errorf("%w: dangling escape at offset %d", ErrParse, i)
			}
			sb.WriteByte(src[i+1])
			i += 2
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated string at offset %d", ErrParse, start)
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
