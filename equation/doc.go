// Package equation holds a plottable equation: named variables, four
// expression slots and an iteration range, and turns them into point
// sequences for the four plot modes.
//
//	Mode  iterates       evaluates      emits
//	y     x              Y(x)           (x, Y)
//	xy    param (t)      X(t), Y(t)     (X, Y)
//	r     theta (t)      R(θ)           (R cosθ, R sinθ)
//	t     radius (r)     T(r)           (r cosT, r sinT)
//
// Every plot call returns a fresh single-pass iter.Seq. The sequence reads
// the equation's variables while it runs, so changing them while a sequence
// is being consumed gives undefined results.
package equation
