// Package expr compiles and evaluates infix numeric expressions such as
// "2sin(t) + a*x^2".
//
// An Evaluator owns a registry of functions and constants. The default
// registry has the usual math functions plus csc, sec, cot, toDegrees and
// toRadians, and the constants pi and e. Extra functions are plain Go
// closures registered with WithFunc.
//
// Multiplication may be implicit: "2x", "2pi", "3(x+1)" and "(x)(y)" are
// products. A run of letters is always a single identifier, so "xy" names the
// variable xy, not x*y.
//
// Compile errors are returned as *ParseError, carrying one message per
// problem. Numeric faults at evaluation time (division by zero, domain
// errors) are not errors; they surface as NaN or ±Inf.
package expr
