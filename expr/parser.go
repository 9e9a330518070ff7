package expr

import (
	"fmt"
	"math"
	"strconv"
)

// bailout unwinds the parser after a syntax error it cannot recover from.
type bailout struct{}

type parser struct {
	lex      lexer
	tok      token
	declared map[string]bool
	funcs    map[string]Func
	consts   map[string]float64
	used     map[string]bool
	msgs     []string
}

func newParser(src string, declared []string, funcs map[string]Func, consts map[string]float64) *parser {
	p := &parser{
		lex:      lexer{src: src},
		declared: make(map[string]bool, len(declared)),
		funcs:    funcs,
		consts:   consts,
		used:     make(map[string]bool),
	}
	for _, name := range declared {
		p.declared[name] = true
	}
	return p
}

// parse returns the root node, or nil when anything was reported.
func (p *parser) parse() (root node) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
		if len(p.msgs) > 0 {
			root = nil
		}
	}()
	p.next()
	if p.tok.kind == tokEOF {
		p.fail("empty expression")
	}
	root = p.expression()
	if p.tok.kind != tokEOF {
		p.fail("unexpected %s after expression", p.describe())
	}
	return root
}

func (p *parser) next() {
	p.tok = p.lex.next()
}

func (p *parser) is(op rune) bool {
	return p.tok.kind == tokOp && p.tok.op == op
}

func (p *parser) describe() string {
	if p.tok.kind == tokEOF {
		return "end of expression"
	}
	return strconv.Quote(p.tok.text)
}

func (p *parser) errorAt(col int, format string, args ...interface{}) {
	p.msgs = append(p.msgs, fmt.Sprintf("column %d: %s", col, fmt.Sprintf(format, args...)))
}

func (p *parser) fail(format string, args ...interface{}) {
	p.errorAt(p.tok.col, format, args...)
	panic(bailout{})
}

func (p *parser) expect(op rune) {
	if !p.is(op) {
		p.fail("expected %q, found %s", op, p.describe())
	}
	p.next()
}

// expression = term { ("+" | "-") term } .
func (p *parser) expression() node {
	x := p.term()
	for p.is('+') || p.is('-') {
		op := p.tok.op
		p.next()
		x = &binaryOp{op: op, left: x, right: p.term()}
	}
	return x
}

// term = unary { ("*" | "/" | "%") unary | power } .
// The bare power alternative is implicit multiplication.
func (p *parser) term() node {
	x := p.unary()
	for {
		switch {
		case p.is('*') || p.is('/') || p.is('%'):
			op := p.tok.op
			p.next()
			x = &binaryOp{op: op, left: x, right: p.unary()}
		case p.tok.kind == tokNumber || p.tok.kind == tokIdent || p.is('('):
			x = &binaryOp{op: '*', left: x, right: p.power()}
		default:
			return x
		}
	}
}

// unary = ("-" | "+") unary | power .
func (p *parser) unary() node {
	switch {
	case p.is('-'):
		p.next()
		return &negate{x: p.unary()}
	case p.is('+'):
		p.next()
		return p.unary()
	}
	return p.power()
}

// power = primary [ "^" unary ] .
func (p *parser) power() node {
	x := p.primary()
	if p.is('^') {
		p.next()
		return &binaryOp{op: '^', left: x, right: p.unary()}
	}
	return x
}

// primary = number | ident | ident "(" [ args ] ")" | "(" expression ")" .
func (p *parser) primary() node {
	tok := p.tok
	switch {
	case tok.kind == tokNumber:
		p.next()
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			p.errorAt(tok.col, "invalid number %q", tok.text)
			return number(math.NaN())
		}
		return number(v)
	case tok.kind == tokIdent:
		p.next()
		return p.ident(tok)
	case p.is('('):
		p.next()
		x := p.expression()
		p.expect(')')
		return x
	case tok.kind == tokEOF:
		p.fail("unexpected end of expression")
	}
	p.fail("unexpected %s", p.describe())
	return nil
}

func (p *parser) ident(tok token) node {
	name := tok.text
	if fn, ok := p.funcs[name]; ok {
		if !p.is('(') {
			p.errorAt(tok.col, "function %q needs arguments", name)
			return number(math.NaN())
		}
		return p.call(tok, fn)
	}
	if p.declared[name] {
		p.used[name] = true
		return variable(name)
	}
	if v, ok := p.consts[name]; ok {
		return number(v)
	}
	if p.is('(') {
		p.errorAt(tok.col, "unknown function %q", name)
	} else {
		p.errorAt(tok.col, "unknown variable %q", name)
	}
	return number(math.NaN())
}

func (p *parser) call(tok token, fn Func) node {
	p.expect('(')
	var args []node
	if !p.is(')') {
		for {
			args = append(args, p.expression())
			if !p.is(',') {
				break
			}
			p.next()
		}
	}
	p.expect(')')
	switch {
	case fn.Arity == Variadic && len(args) == 0:
		p.errorAt(tok.col, "%s expects at least 1 argument, got 0", tok.text)
	case fn.Arity >= 0 && len(args) != fn.Arity:
		p.errorAt(tok.col, "%s expects %d argument(s), got %d", tok.text, fn.Arity, len(args))
	}
	return &call{fn: fn, args: args}
}
