package expr

import "math"

// Variadic is the Arity of functions taking one or more arguments.
const Variadic = -1

// Func is a pure numeric callback. Arity is the exact number of arguments, or
// Variadic.
type Func struct {
	Arity int
	Fn    func(args ...float64) float64
}

func unary(fn func(float64) float64) Func {
	return Func{Arity: 1, Fn: func(a ...float64) float64 { return fn(a[0]) }}
}

func binary(fn func(float64, float64) float64) Func {
	return Func{Arity: 2, Fn: func(a ...float64) float64 { return fn(a[0], a[1]) }}
}

func reduce(fn func(float64, float64) float64) Func {
	return Func{Arity: Variadic, Fn: func(a ...float64) float64 {
		acc := a[0]
		for _, v := range a[1:] {
			acc = fn(acc, v)
		}
		return acc
	}}
}

func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return x // 0, -0 and NaN
}

// DefaultFuncs returns a fresh copy of the built-in function registry.
func DefaultFuncs() map[string]Func {
	return map[string]Func{
		"sin":   unary(math.Sin),
		"cos":   unary(math.Cos),
		"tan":   unary(math.Tan),
		"asin":  unary(math.Asin),
		"acos":  unary(math.Acos),
		"atan":  unary(math.Atan),
		"atan2": binary(math.Atan2),
		"sinh":  unary(math.Sinh),
		"cosh":  unary(math.Cosh),
		"tanh":  unary(math.Tanh),
		"exp":   unary(math.Exp),
		"log":   unary(math.Log),
		"ln":    unary(math.Log),
		"log10": unary(math.Log10),
		"log2":  unary(math.Log2),
		"sqrt":  unary(math.Sqrt),
		"cbrt":  unary(math.Cbrt),
		"abs":   unary(math.Abs),
		"floor": unary(math.Floor),
		"ceil":  unary(math.Ceil),
		"round": unary(math.Round),
		"pow":   binary(math.Pow),
		"min":   reduce(math.Min),
		"max":   reduce(math.Max),

		"signum": unary(signum),
		"csc":    unary(func(x float64) float64 { return 1 / math.Sin(x) }),
		"sec":    unary(func(x float64) float64 { return 1 / math.Cos(x) }),
		"cot":    unary(func(x float64) float64 { return math.Cos(x) / math.Sin(x) }),

		"toDegrees": unary(func(x float64) float64 { return x * 180 / math.Pi }),
		"toRadians": unary(func(x float64) float64 { return x * math.Pi / 180 }),
	}
}

// DefaultConsts returns a fresh copy of the built-in constants.
func DefaultConsts() map[string]float64 {
	return map[string]float64{
		"pi": math.Pi,
		"e":  math.E,
	}
}
