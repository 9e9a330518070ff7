package expr

import (
	"math"
	"sort"
)

// Expression is a compiled expression. It is immutable and safe to evaluate
// from several goroutines.
type Expression struct {
	src  string
	root node
	vars []string
}

// Source returns the text the expression was compiled from.
func (e *Expression) Source() string {
	return e.src
}

// Vars returns the sorted names of the variables the expression refers to.
func (e *Expression) Vars() []string {
	return append([]string(nil), e.vars...)
}

// Eval evaluates the expression with the given bindings. It fails only when
// a referenced variable has no binding.
func (e *Expression) Eval(vars map[string]float64) (float64, error) {
	en := env{vars: vars}
	v := e.root.eval(&en)
	if en.missing != "" {
		return math.NaN(), &EvalError{Source: e.src, Variable: en.missing}
	}
	return v, nil
}

// Evaluator compiles expressions against a registry of functions and
// constants. The registry is fixed by New.
type Evaluator struct {
	funcs  map[string]Func
	consts map[string]float64
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithFunc registers fn under name, replacing any built-in of that name.
func WithFunc(name string, arity int, fn func(args ...float64) float64) Option {
	return func(ev *Evaluator) {
		ev.funcs[name] = Func{Arity: arity, Fn: fn}
	}
}

// WithConst registers a named constant.
func WithConst(name string, v float64) Option {
	return func(ev *Evaluator) {
		ev.consts[name] = v
	}
}

// New returns an Evaluator with the default functions and constants plus
// whatever opts add.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{
		funcs:  DefaultFuncs(),
		consts: DefaultConsts(),
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Compile parses src. Identifiers must be declared variables, constants or
// function names. A failure is always a *ParseError.
func (ev *Evaluator) Compile(src string, declared []string) (*Expression, error) {
	p := newParser(src, declared, ev.funcs, ev.consts)
	root := p.parse()
	if root == nil {
		return nil, &ParseError{Source: src, Messages: p.msgs}
	}
	vars := make([]string, 0, len(p.used))
	for name := range p.used {
		vars = append(vars, name)
	}
	sort.Strings(vars)
	return &Expression{src: src, root: root, vars: vars}, nil
}

// Evaluate is e.Eval(vars).
func (ev *Evaluator) Evaluate(e *Expression, vars map[string]float64) (float64, error) {
	return e.Eval(vars)
}

// Value compiles and evaluates src with no variables at all.
func (ev *Evaluator) Value(src string) (float64, error) {
	e, err := ev.Compile(src, nil)
	if err != nil {
		return math.NaN(), err
	}
	return e.Eval(nil)
}

// IsValidValue reports whether src is a constant expression: it compiles
// with no free variables.
func (ev *Evaluator) IsValidValue(src string) bool {
	_, err := ev.Value(src)
	return err == nil
}

// IsFunc reports whether name is a registered function.
func (ev *Evaluator) IsFunc(name string) bool {
	_, ok := ev.funcs[name]
	return ok
}

// IsConst reports whether name is a registered constant.
func (ev *Evaluator) IsConst(name string) bool {
	_, ok := ev.consts[name]
	return ok
}

// IsValidName reports whether name can be used as a variable: a letter or
// underscore followed by letters, digits or underscores.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

var std = New()

// Eval evaluates a constant expression with the default registry.
func Eval(src string) (float64, error) {
	return std.Value(src)
}
