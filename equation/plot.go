package equation

import (
	"iter"

	"github.com/scottkirkwood/cartesian"
)

// Plot returns the point sequence for mode. An unknown mode yields nothing.
func (e *Equation) Plot(mode Mode) iter.Seq[cartesian.Point] {
	switch mode {
	case ModeY:
		return e.YPlot()
	case ModeXY:
		return e.XYPlot()
	case ModeR:
		return e.RPlot()
	case ModeT:
		return e.TPlot()
	}
	return func(func(cartesian.Point) bool) {}
}

// Err returns the error that cut the last consumed sequence short, or nil if
// it ran to the end of its range. Only a variable removed after its
// expression was compiled can cause one.
func (e *Equation) Err() error {
	return e.err
}

// sweep binds name to each value of the range in turn and hands the value to
// emit. It stops early when emit or the consumer says so.
func (e *Equation) sweep(name string, emit func(v float64) (cartesian.Point, error)) iter.Seq[cartesian.Point] {
	rng := e.rng
	return func(yield func(cartesian.Point) bool) {
		e.err = nil
		n := rng.Count()
		for i := 0; i < n; i++ {
			v := rng.At(i)
			e.vars[name] = v
			p, err := emit(v)
			if err != nil {
				e.err = err
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}

func (e *Equation) eval(s *slot) (float64, error) {
	return s.compiled.Eval(e.vars)
}

// YPlot iterates x over the range and emits (x, Y(x)).
func (e *Equation) YPlot() iter.Seq[cartesian.Point] {
	return e.sweep("x", func(x float64) (cartesian.Point, error) {
		y, err := e.eval(&e.y)
		return cartesian.Pt(x, y), err
	})
}

// XYPlot iterates the param over the range and emits (X(t), Y(t)).
func (e *Equation) XYPlot() iter.Seq[cartesian.Point] {
	return e.sweep(e.param, func(float64) (cartesian.Point, error) {
		x, err := e.eval(&e.x)
		if err != nil {
			return cartesian.Point{}, err
		}
		y, err := e.eval(&e.y)
		return cartesian.Pt(x, y), err
	})
}

// RPlot iterates theta over the range and emits R(θ) converted from polar.
func (e *Equation) RPlot() iter.Seq[cartesian.Point] {
	return e.sweep(e.theta, func(theta float64) (cartesian.Point, error) {
		r, err := e.eval(&e.r)
		return cartesian.Polar(r, theta), err
	})
}

// TPlot iterates the radius over the range and emits (r, T(r)) converted
// from polar.
func (e *Equation) TPlot() iter.Seq[cartesian.Point] {
	return e.sweep(e.rad, func(r float64) (cartesian.Point, error) {
		theta, err := e.eval(&e.t)
		return cartesian.Polar(r, theta), err
	})
}

// Evaluate compiles src against the declared variables and evaluates it with
// their current values.
func (e *Equation) Evaluate(src string) (float64, error) {
	compiled, err := e.ev.Compile(src, e.declared())
	if err != nil {
		return 0, err
	}
	return compiled.Eval(e.vars)
}
