package expr

import "math"

// env is the state threaded through one evaluation.
type env struct {
	vars    map[string]float64
	missing string
}

type node interface {
	eval(e *env) float64
}

type number float64

func (n number) eval(*env) float64 {
	return float64(n)
}

type variable string

func (v variable) eval(e *env) float64 {
	x, ok := e.vars[string(v)]
	if !ok {
		if e.missing == "" {
			e.missing = string(v)
		}
		return math.NaN()
	}
	return x
}

type negate struct {
	x node
}

func (n *negate) eval(e *env) float64 {
	return -n.x.eval(e)
}

type binaryOp struct {
	op          rune
	left, right node
}

func (b *binaryOp) eval(e *env) float64 {
	x := b.left.eval(e)
	y := b.right.eval(e)
	switch b.op {
	case '+':
		return x + y
	case '-':
		return x - y
	case '*':
		return x * y
	case '/':
		return x / y
	case '%':
		return math.Mod(x, y)
	case '^':
		return math.Pow(x, y)
	}
	panic("expr: unknown operator " + string(b.op))
}

type call struct {
	fn   Func
	args []node
}

func (c *call) eval(e *env) float64 {
	var buf [4]float64
	vals := buf[:0]
	for _, a := range c.args {
		vals = append(vals, a.eval(e))
	}
	return c.fn.Fn(vals...)
}
