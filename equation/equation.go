package equation

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/scottkirkwood/cartesian/expr"
)

// defaultVars are declared, with value 0, in every new Equation.
var defaultVars = []string{"a", "b", "c", "x", "y", "r", "t"}

const defaultExpression = "1"

// IsDefaultVar reports whether name is one of the variables every new
// Equation declares.
func IsDefaultVar(name string) bool {
	return slices.Contains(defaultVars, name)
}

type slot struct {
	src      string
	compiled *expr.Expression
}

// Equation is owned by a single caller; it is not safe for concurrent use.
type Equation struct {
	name  string
	ev    *expr.Evaluator
	vars  map[string]float64
	x     slot
	y     slot
	t     slot
	r     slot
	rng   Range
	param string
	rad   string
	theta string

	err       error
	listeners map[int]func(Change)
	nextID    int
}

// Option configures a new Equation.
type Option func(*Equation)

// WithEvaluator compiles expressions with ev instead of a default evaluator.
func WithEvaluator(ev *expr.Evaluator) Option {
	return func(e *Equation) {
		e.ev = ev
	}
}

// WithName sets the equation's name.
func WithName(name string) Option {
	return func(e *Equation) {
		e.name = name
	}
}

// New returns an equation with every expression set to "1", the variables
// a, b, c, x, y, r and t declared as 0, and DefaultRange.
func New(opts ...Option) *Equation {
	e := &Equation{
		vars:  make(map[string]float64, len(defaultVars)),
		rng:   DefaultRange(),
		param: "t",
		rad:   "r",
		theta: "t",
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.ev == nil {
		e.ev = expr.New()
	}
	for _, name := range defaultVars {
		e.vars[name] = 0
	}
	one, err := e.ev.Compile(defaultExpression, nil)
	if err != nil {
		panic(fmt.Sprintf("equation: default expression does not compile: %v", err))
	}
	for _, s := range []*slot{&e.x, &e.y, &e.t, &e.r} {
		*s = slot{src: defaultExpression, compiled: one}
	}
	return e
}

// Name returns the equation's name.
func (e *Equation) Name() string {
	return e.name
}

// SetName renames the equation.
func (e *Equation) SetName(name string) {
	e.name = name
	e.notify(Change{Kind: NameChanged, Name: "name"})
}

// Evaluator returns the evaluator expressions are compiled with.
func (e *Equation) Evaluator() *expr.Evaluator {
	return e.ev
}

func (e *Equation) declared() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	return names
}

func (e *Equation) slot(s Slot) *slot {
	switch s {
	case SlotX:
		return &e.x
	case SlotY:
		return &e.y
	case SlotT:
		return &e.t
	case SlotR:
		return &e.r
	}
	return nil
}

// SetExpression compiles src against the declared variables and, only if it
// compiles, stores it in slot s. On failure the slot is left as it was.
func (e *Equation) SetExpression(s Slot, src string) Result {
	dst := e.slot(s)
	if dst == nil {
		return Result{Messages: []string{fmt.Sprintf("unknown expression slot %q", s)}}
	}
	compiled, err := e.ev.Compile(src, e.declared())
	if err != nil {
		var pe *expr.ParseError
		if errors.As(err, &pe) {
			return Result{Messages: append([]string(nil), pe.Messages...)}
		}
		return Result{Messages: []string{err.Error()}}
	}
	*dst = slot{src: src, compiled: compiled}
	e.notify(Change{Kind: ExpressionChanged, Name: string(s)})
	return Result{Success: true}
}

// Expression returns the source of slot s.
func (e *Equation) Expression(s Slot) string {
	if dst := e.slot(s); dst != nil {
		return dst.src
	}
	return ""
}

// SetXExpression sets X(t), used by the xy plot.
func (e *Equation) SetXExpression(src string) Result { return e.SetExpression(SlotX, src) }

// SetYExpression sets Y, a function of x for the y plot and of t for the xy plot.
func (e *Equation) SetYExpression(src string) Result { return e.SetExpression(SlotY, src) }

// SetTExpression sets T(r), the angle used by the t plot.
func (e *Equation) SetTExpression(src string) Result { return e.SetExpression(SlotT, src) }

// SetRExpression sets R(θ), the radius used by the r plot.
func (e *Equation) SetRExpression(src string) Result { return e.SetExpression(SlotR, src) }

func (e *Equation) XExpression() string { return e.x.src }
func (e *Equation) YExpression() string { return e.y.src }
func (e *Equation) TExpression() string { return e.t.src }
func (e *Equation) RExpression() string { return e.r.src }

// SetVar declares name, or changes its value.
func (e *Equation) SetVar(name string, value float64) error {
	if !expr.IsValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	e.vars[name] = value
	e.notify(Change{Kind: VarChanged, Name: name})
	return nil
}

// RemoveVar undeclares name. Expressions already compiled against it keep
// their source; plotting them stops at the first evaluation, see Err.
// Removing a plot's iteration variable only lasts until that plot runs, since
// the sweep declares it again.
func (e *Equation) RemoveVar(name string) {
	if _, ok := e.vars[name]; !ok {
		return
	}
	delete(e.vars, name)
	e.notify(Change{Kind: VarChanged, Name: name})
}

// Var returns the value of name and whether it is declared.
func (e *Equation) Var(name string) (float64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Vars returns the sorted names of the declared variables.
func (e *Equation) Vars() []string {
	names := e.declared()
	sort.Strings(names)
	return names
}

// SetRange replaces the iteration range. It is not validated here; an
// invalid range plots nothing, see Range.Validate.
func (e *Equation) SetRange(start, end, step float64) {
	e.rng = Range{Start: start, End: end, Step: step}
	e.notify(Change{Kind: RangeChanged})
}

func (e *Equation) SetRangeStart(v float64) { e.SetRange(v, e.rng.End, e.rng.Step) }
func (e *Equation) SetRangeEnd(v float64)   { e.SetRange(e.rng.Start, v, e.rng.Step) }
func (e *Equation) SetRangeStep(v float64)  { e.SetRange(e.rng.Start, e.rng.End, v) }

// Range returns the iteration range.
func (e *Equation) Range() Range {
	return e.rng
}

func (e *Equation) setIterName(dst *string, which, name string) error {
	if !expr.IsValidName(name) {
		return fmt.Errorf("%w: %s %q", ErrInvalidName, which, name)
	}
	if _, ok := e.vars[name]; !ok {
		e.vars[name] = 0
	}
	*dst = name
	e.notify(Change{Kind: NameChanged, Name: which})
	return nil
}

// SetParamName sets the variable iterated by the xy plot, declaring it if
// needed.
func (e *Equation) SetParamName(name string) error { return e.setIterName(&e.param, "param", name) }

// SetRadiusName sets the variable iterated by the t plot.
func (e *Equation) SetRadiusName(name string) error { return e.setIterName(&e.rad, "radius", name) }

// SetThetaName sets the variable iterated by the r plot.
func (e *Equation) SetThetaName(name string) error { return e.setIterName(&e.theta, "theta", name) }

func (e *Equation) ParamName() string  { return e.param }
func (e *Equation) RadiusName() string { return e.rad }
func (e *Equation) ThetaName() string  { return e.theta }

// OnChange registers fn to run after every successful mutation. The returned
// func unregisters it.
func (e *Equation) OnChange(fn func(Change)) (cancel func()) {
	if e.listeners == nil {
		e.listeners = make(map[int]func(Change))
	}
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn
	return func() {
		delete(e.listeners, id)
	}
}

func (e *Equation) notify(c Change) {
	ids := make([]int, 0, len(e.listeners))
	for id := range e.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := e.listeners[id]; ok {
			fn(c)
		}
	}
}

// Clone returns a deep copy without the OnChange callbacks.
func (e *Equation) Clone() *Equation {
	c := *e
	c.vars = make(map[string]float64, len(e.vars))
	for k, v := range e.vars {
		c.vars[k] = v
	}
	c.listeners = nil
	c.nextID = 0
	return &c
}
