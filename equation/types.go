package equation

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for equation operations.
var (
	// ErrInvalidName indicates a variable or iteration name that is not an identifier.
	ErrInvalidName = errors.New("equation: invalid variable name")
	// ErrInvalidRange indicates a range that cannot be iterated: step <= 0,
	// start > end, or a non-finite bound.
	ErrInvalidRange = errors.New("equation: invalid range")
	// ErrUnknownMode indicates a plot mode name that is not y, xy, r or t.
	ErrUnknownMode = errors.New("equation: unknown plot mode")
)

// countTolerance absorbs rounding in (end-start)/step so the end point is
// kept when it is a whole number of steps away.
const countTolerance = 1e-9

// Range is the iteration range of a plot.
type Range struct {
	Start, End, Step float64
}

// DefaultRange is the range of a new Equation.
func DefaultRange() Range {
	return Range{Start: -1, End: 1, Step: 0.05}
}

// Validate returns ErrInvalidRange when the range cannot be iterated.
func (r Range) Validate() error {
	for _, v := range []float64{r.Start, r.End, r.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in %v", ErrInvalidRange, r)
		}
	}
	if !(r.Step > 0) {
		return fmt.Errorf("%w: step %g must be positive", ErrInvalidRange, r.Step)
	}
	if r.Start > r.End {
		return fmt.Errorf("%w: start %g is after end %g", ErrInvalidRange, r.Start, r.End)
	}
	// (end-start)/step can overflow to +Inf even with finite bounds.
	if q := (r.End - r.Start) / r.Step; math.IsInf(q, 0) || q >= float64(math.MaxInt) {
		return fmt.Errorf("%w: too many steps in %v", ErrInvalidRange, r)
	}
	return nil
}

// Count is the number of values the range produces: floor((end-start)/step)+1,
// or 0 for an invalid range.
func (r Range) Count() int {
	if r.Validate() != nil {
		return 0
	}
	return int(math.Floor((r.End-r.Start)/r.Step+countTolerance)) + 1
}

// At returns the i'th value of the range. Values are computed from Start
// rather than accumulated, so they do not drift.
func (r Range) At(i int) float64 {
	return r.Start + float64(i)*r.Step
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g] step %g", r.Start, r.End, r.Step)
}

// Mode selects how an equation is plotted.
type Mode int

const (
	// ModeY plots y = Y(x).
	ModeY Mode = iota
	// ModeXY plots the parametric curve (X(t), Y(t)).
	ModeXY
	// ModeR plots the polar curve r = R(θ).
	ModeR
	// ModeT plots the polar curve θ = T(r).
	ModeT
)

var modeNames = [...]string{ModeY: "y", ModeXY: "xy", ModeR: "r", ModeT: "t"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode accepts y, xy, r and t, case insensitive.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Result reports the outcome of setting an expression.
type Result struct {
	Success  bool
	Messages []string
}

// Err returns nil on success, or an error joining the messages.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return errors.New("equation: " + strings.Join(r.Messages, "; "))
}

// Slot names one of the four expression slots.
type Slot string

const (
	SlotX Slot = "x"
	SlotY Slot = "y"
	SlotT Slot = "t"
	SlotR Slot = "r"
)

// ChangeKind says what part of an equation changed.
type ChangeKind int

const (
	// ExpressionChanged: Name is the slot.
	ExpressionChanged ChangeKind = iota
	// VarChanged: Name is the variable, set or removed.
	VarChanged
	// RangeChanged: Name is empty.
	RangeChanged
	// NameChanged: Name is "name", "param", "radius" or "theta".
	NameChanged
)

// Change is passed to OnChange callbacks after a successful mutation.
type Change struct {
	Kind ChangeKind
	Name string
}
