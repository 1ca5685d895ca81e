package calculator

import (
	"fmt"
	"strconv"

	"github.com/leofalp/aitutor/providers/tool"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow
	tokLParen
	tokRParen
)

type token struct {
	kind  tokenKind
	text  string
	value float64
}

var functions = map[string]bool{
	"sin": true, "cos": true, "tan": true, "sqrt": true, "log": true, "log10": true,
	"abs": true, "ceil": true, "floor": true, "round": true,
}

var constants = map[string]bool{"pi": true, "e": true}

// Allowed reports whether name is a function or constant the evaluator knows.
func Allowed(name string) bool {
	return functions[name] || constants[name]
}

// tokenize splits a normalized expression. Only ASCII digits, '.', the four
// operators, parentheses and allow-listed identifiers are accepted.
func tokenize(s string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isDigit(c) || c == '.':
			start := i
			dots := 0
			for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
				if s[i] == '.' {
					dots++
				}
				i++
			}
			text := s[start:i]
			if dots > 1 || text == "." {
				return nil, tool.NewError(tool.KindUnsafeExpression, fmt.Sprintf("malformed number %q", text))
			}
			// overflow yields ±Inf, rejected when the tree is evaluated
			value, _ := strconv.ParseFloat(text, 64)
			tokens = append(tokens, token{kind: tokNumber, text: text, value: value})

		case isLetter(c):
			start := i
			for i < len(s) && (isLetter(s[i]) || isDigit(s[i])) {
				i++
			}
			name := s[start:i]
			if !Allowed(name) {
				return nil, tool.NewError(tool.KindUnsafeExpression, fmt.Sprintf("identifier %q is not allowed", name))
			}
			tokens = append(tokens, token{kind: tokIdent, text: name})

		case c == '*' && i+1 < len(s) && s[i+1] == '*':
			tokens = append(tokens, token{kind: tokPow, text: "**"})
			i += 2

		default:
			kind, ok := singleCharTokens[c]
			if !ok {
				r := []rune(s[i:])[0]
				return nil, tool.NewError(tool.KindUnsafeExpression, fmt.Sprintf("character %q is not allowed", r))
			}
			tokens = append(tokens, token{kind: kind, text: string(c)})
			i++
		}
	}
	return tokens, nil
}

var singleCharTokens = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'(': tokLParen,
	')': tokRParen,
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
