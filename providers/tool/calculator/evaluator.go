package calculator

import (
	"fmt"
	"math"

	"github.com/leofalp/aitutor/providers/tool"
)

// node is an element of a parsed expression tree.
type node interface {
	eval() (float64, error)
}

type (
	numberNode float64
	unaryNode  struct {
		negate  bool
		operand node
	}
	binaryNode struct {
		op          tokenKind
		left, right node
	}
	callNode struct {
		name string
		arg  node
	}
)

// parser implements:
//
//	expr    := term (('+'|'-') term)*
//	term    := unary (('*'|'/') unary)*
//	unary   := ('-'|'+') unary | power
//	power   := primary ('**' unary)?
//	primary := number | constant | func '(' expr ')' | '(' expr ')'
type parser struct {
	tokens []token
	pos    int
}

func parse(tokens []token) (node, error) {
	p := &parser{tokens: tokens}
	if len(tokens) == 0 {
		return nil, p.fail("empty expression")
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, p.fail(fmt.Sprintf("unexpected %q", p.tokens[p.pos].text))
	}
	return n, nil
}

func (p *parser) fail(msg string) error {
	return tool.NewError(tool.KindUnsafeExpression, "invalid expression: "+msg)
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) accept(kinds ...tokenKind) (token, bool) {
	t, ok := p.peek()
	if !ok {
		return token{}, false
	}
	for _, k := range kinds {
		if t.kind == k {
			p.pos++
			return t, true
		}
	}
	return token{}, false
}

func (p *parser) expr() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.accept(tokPlus, tokMinus)
		if !ok {
			return left, nil
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op.kind, left: left, right: right}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.accept(tokStar, tokSlash)
		if !ok {
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op.kind, left: left, right: right}
	}
}

func (p *parser) unary() (node, error) {
	if op, ok := p.accept(tokPlus, tokMinus); ok {
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return unaryNode{negate: op.kind == tokMinus, operand: operand}, nil
	}
	return p.power()
}

func (p *parser) power() (node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if _, ok := p.accept(tokPow); !ok {
		return base, nil
	}
	// the exponent goes through unary, which makes ** right-associative
	exponent, err := p.unary()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: tokPow, left: base, right: exponent}, nil
}

func (p *parser) primary() (node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, p.fail("unexpected end of expression")
	}
	p.pos++

	switch t.kind {
	case tokNumber:
		return numberNode(t.value), nil
	case tokLParen:
		return p.parenthesized()
	case tokIdent:
		switch t.text {
		case "pi":
			return numberNode(math.Pi), nil
		case "e":
			return numberNode(math.E), nil
		}
		if _, ok := p.accept(tokLParen); !ok {
			return nil, p.fail(fmt.Sprintf("function %s requires parentheses", t.text))
		}
		arg, err := p.parenthesized()
		if err != nil {
			return nil, err
		}
		return callNode{name: t.text, arg: arg}, nil
	default:
		return nil, p.fail(fmt.Sprintf("unexpected %q", t.text))
	}
}

// parenthesized parses the remainder of a group whose '(' was consumed.
func (p *parser) parenthesized() (node, error) {
	inner, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, ok := p.accept(tokRParen); !ok {
		return nil, p.fail("missing closing parenthesis")
	}
	return inner, nil
}

func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, tool.NewError(tool.KindNonFinite, "result is not a finite number")
	}
	return v, nil
}

func (n numberNode) eval() (float64, error) {
	return finite(float64(n))
}

func (n unaryNode) eval() (float64, error) {
	v, err := n.operand.eval()
	if err != nil {
		return 0, err
	}
	if n.negate {
		return -v, nil
	}
	return v, nil
}

func (n binaryNode) eval() (float64, error) {
	l, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval()
	if err != nil {
		return 0, err
	}

	switch n.op {
	case tokPlus:
		return finite(l + r)
	case tokMinus:
		return finite(l - r)
	case tokStar:
		return finite(l * r)
	case tokSlash:
		if r == 0 {
			return 0, tool.NewError(tool.KindDivisionByZero, "division by zero")
		}
		return finite(l / r)
	case tokPow:
		if l == 0 && r < 0 {
			return 0, tool.NewError(tool.KindDivisionByZero, "zero raised to a negative power")
		}
		if l < 0 && r != math.Trunc(r) {
			return 0, tool.NewError(tool.KindMathDomain, "negative base with fractional exponent")
		}
		return finite(math.Pow(l, r))
	}
	return 0, fmt.Errorf("unknown operator %d", n.op)
}

var unaryFunctions = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"sqrt":  math.Sqrt,
	"log":   math.Log,
	"log10": math.Log10,
	"abs":   math.Abs,
	"ceil":  math.Ceil,
	"floor": math.Floor,
	"round": math.RoundToEven,
}

func (n callNode) eval() (float64, error) {
	v, err := n.arg.eval()
	if err != nil {
		return 0, err
	}

	switch {
	case n.name == "sqrt" && v < 0:
		return 0, tool.NewError(tool.KindMathDomain, "square root of a negative number")
	case (n.name == "log" || n.name == "log10") && v <= 0:
		return 0, tool.NewError(tool.KindMathDomain, fmt.Sprintf("%s of a non-positive number", n.name))
	}

	fn, ok := unaryFunctions[n.name]
	if !ok {
		return 0, fmt.Errorf("unknown function %q", n.name)
	}
	return finite(fn(v))
}
