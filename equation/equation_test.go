package equation_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottkirkwood/cartesian"
	"github.com/scottkirkwood/cartesian/equation"
	"github.com/scottkirkwood/cartesian/expr"
)

func TestNew_Defaults(t *testing.T) {
	e := equation.New(equation.WithName("parabola"))
	assert.Equal(t, "parabola", e.Name())
	for _, s := range []equation.Slot{equation.SlotX, equation.SlotY, equation.SlotT, equation.SlotR} {
		assert.Equal(t, "1", e.Expression(s))
	}
	assert.Equal(t, []string{"a", "b", "c", "r", "t", "x", "y"}, e.Vars())
	assert.Equal(t, equation.DefaultRange(), e.Range())
	assert.Equal(t, "t", e.ParamName())
	assert.Equal(t, "r", e.RadiusName())
	assert.Equal(t, "t", e.ThetaName())
	assert.NotNil(t, e.Evaluator())
}

func TestRange_Count(t *testing.T) {
	cases := []struct {
		name string
		rng  equation.Range
		want int
	}{
		{"Quarters", equation.Range{Start: 0, End: 1, Step: 0.25}, 5},
		{"Uneven", equation.Range{Start: 0, End: 1, Step: 0.3}, 4},
		{"Tenths", equation.Range{Start: -2, End: 2, Step: 0.1}, 41},
		{"Default", equation.DefaultRange(), 41},
		{"Single", equation.Range{Start: 1, End: 1, Step: 0.5}, 1},
		{"ZeroStep", equation.Range{Start: 0, End: 1, Step: 0}, 0},
		{"NegativeStep", equation.Range{Start: 0, End: 1, Step: -0.1}, 0},
		{"Backwards", equation.Range{Start: 1, End: 0, Step: 0.1}, 0},
		{"NaN", equation.Range{Start: math.NaN(), End: 0, Step: 0.1}, 0},
		{"Inf", equation.Range{Start: 0, End: math.Inf(1), Step: 0.1}, 0},
		{"TooManySteps", equation.Range{Start: 0, End: 1e10, Step: 1e-9}, 0},
		{"SpanOverflows", equation.Range{Start: -1e308, End: 1e308, Step: 1}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rng.Count())
			if tc.want == 0 {
				assert.ErrorIs(t, tc.rng.Validate(), equation.ErrInvalidRange)
			} else {
				assert.NoError(t, tc.rng.Validate())
			}
		})
	}
}

func TestYPlot_CountAndSpacing(t *testing.T) {
	ranges := []equation.Range{
		{Start: 0, End: 1, Step: 0.25},
		{Start: -1, End: 1, Step: 0.05},
		{Start: -3.5, End: 7, Step: 0.7},
		{Start: 0, End: 10, Step: 3},
	}
	for _, rng := range ranges {
		t.Run(rng.String(), func(t *testing.T) {
			e := equation.New()
			require.True(t, e.SetYExpression("x^2").Success)
			e.SetRange(rng.Start, rng.End, rng.Step)

			pts := slices.Collect(e.YPlot())
			want := int(math.Floor((rng.End-rng.Start)/rng.Step+1e-9)) + 1
			require.Len(t, pts, want)
			assert.Equal(t, rng.Start, pts[0].X)
			for i, p := range pts {
				assert.InDelta(t, p.X*p.X, p.Y, 1e-12)
				if i > 0 {
					assert.Greater(t, p.X, pts[i-1].X)
					assert.InDelta(t, rng.Step, p.X-pts[i-1].X, 1e-12)
				}
			}
			assert.LessOrEqual(t, pts[len(pts)-1].X, rng.End+1e-9)
			assert.NoError(t, e.Err())
		})
	}
}

func TestXYPlot_MatchesReference(t *testing.T) {
	e := equation.New()
	require.True(t, e.SetXExpression("2t").Success)
	require.True(t, e.SetYExpression("3t").Success)
	e.SetRange(-2, 2, 0.1)

	var want []cartesian.Point
	for i := 0; i < 41; i++ {
		tv := -2 + float64(i)*0.1
		want = append(want, cartesian.Pt(2*tv, 3*tv))
	}
	assert.Equal(t, want, slices.Collect(e.XYPlot()))
}

func TestXYPlot_EachPathIndependently(t *testing.T) {
	e := equation.New()
	e.SetRange(-2, 2, 0.1)

	require.True(t, e.SetXExpression("2t").Success)
	for i, p := range slices.Collect(e.XYPlot()) {
		assert.Equal(t, 2*(-2+float64(i)*0.1), p.X)
		assert.Equal(t, 1.0, p.Y)
	}

	require.True(t, e.SetXExpression("1").Success)
	require.True(t, e.SetYExpression("3t").Success)
	for i, p := range slices.Collect(e.XYPlot()) {
		assert.Equal(t, 1.0, p.X)
		assert.Equal(t, 3*(-2+float64(i)*0.1), p.Y)
	}
}

func TestXYPlot_CustomParam(t *testing.T) {
	e := equation.New()
	require.NoError(t, e.SetParamName("s"))
	require.True(t, e.SetXExpression("cos(s)").Success)
	require.True(t, e.SetYExpression("sin(s)").Success)
	e.SetRange(0, 2*math.Pi, math.Pi/8)
	for p := range e.XYPlot() {
		assert.InDelta(t, 1, math.Hypot(p.X, p.Y), 1e-12)
	}
	assert.ErrorIs(t, e.SetParamName("1s"), equation.ErrInvalidName)
	assert.Equal(t, "s", e.ParamName())
}

func TestRPlot_Circle(t *testing.T) {
	e := equation.New()
	require.True(t, e.SetRExpression("2").Success)
	e.SetRange(0, 2*math.Pi, math.Pi/6)
	pts := slices.Collect(e.RPlot())
	require.Len(t, pts, 13)
	for i, p := range pts {
		theta := float64(i) * math.Pi / 6
		assert.InDelta(t, 2*math.Cos(theta), p.X, 1e-12)
		assert.InDelta(t, 2*math.Sin(theta), p.Y, 1e-12)
	}
}

func TestRPlot_Rose(t *testing.T) {
	e := equation.New()
	require.True(t, e.SetRExpression("sin(2t)").Success)
	e.SetRange(0, math.Pi, math.Pi/4)
	pts := slices.Collect(e.RPlot())
	require.Len(t, pts, 5)
	// r = sin(pi/2) = 1 at theta = pi/4.
	assert.InDelta(t, math.Sqrt2/2, pts[1].X, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, pts[1].Y, 1e-12)
}

func TestTPlot_Ray(t *testing.T) {
	e := equation.New()
	require.True(t, e.SetTExpression("pi/4").Success)
	e.SetRange(0, 3, 1)
	pts := slices.Collect(e.TPlot())
	require.Len(t, pts, 4)
	for i, p := range pts {
		assert.InDelta(t, float64(i)*math.Cos(math.Pi/4), p.X, 1e-12)
		assert.InDelta(t, p.X, p.Y, 1e-12)
	}
}

func TestPlot_Dispatch(t *testing.T) {
	e := equation.New()
	require.True(t, e.SetYExpression("x+1").Success)
	e.SetRange(0, 2, 1)
	assert.Equal(t, slices.Collect(e.YPlot()), slices.Collect(e.Plot(equation.ModeY)))
	assert.Equal(t, slices.Collect(e.XYPlot()), slices.Collect(e.Plot(equation.ModeXY)))
	assert.Equal(t, slices.Collect(e.RPlot()), slices.Collect(e.Plot(equation.ModeR)))
	assert.Equal(t, slices.Collect(e.TPlot()), slices.Collect(e.Plot(equation.ModeT)))
	assert.Empty(t, slices.Collect(e.Plot(equation.Mode(42))))
}

func TestPlot_InvalidRangeIsEmpty(t *testing.T) {
	e := equation.New()
	for _, rng := range [][3]float64{{0, 1, 0}, {0, 1, -1}, {1, 0, 0.1}} {
		e.SetRange(rng[0], rng[1], rng[2])
		assert.Empty(t, slices.Collect(e.YPlot()), "%v", rng)
	}
}

func TestPlot_NonFinitePassThrough(t *testing.T) {
	e := equation.New()
	require.True(t, e.SetYExpression("1/x").Success)
	e.SetRange(-1, 1, 0.5)
	pts := slices.Collect(e.YPlot())
	require.Len(t, pts, 5)
	assert.True(t, math.IsInf(pts[2].Y, 1))
	assert.False(t, pts[2].IsFinite())
}

func TestPlot_FreshSequencePerCall(t *testing.T) {
	e := equation.New()
	require.True(t, e.SetYExpression("2x").Success)
	e.SetRange(0, 1, 0.5)
	seq := e.YPlot()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Equal(t, first, slices.Collect(e.YPlot()))
}

func TestPlot_StopsWhenConsumerStops(t *testing.T) {
	e := equation.New()
	e.SetRange(0, 100, 1)
	n := 0
	for range e.YPlot() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestSetExpression_FailureLeavesStateUnchanged(t *testing.T) {
	e := equation.New()
	require.True(t, e.SetYExpression("2x").Success)
	e.SetRange(0, 1, 0.5)
	before := slices.Collect(e.YPlot())

	for _, bad := range []string{"invalid", "2x+", "sin(1,2)", ""} {
		res := e.SetYExpression(bad)
		assert.False(t, res.Success, bad)
		assert.NotEmpty(t, res.Messages, bad)
		assert.Error(t, res.Err())
		assert.Equal(t, "2x", e.YExpression())
		assert.Equal(t, before, slices.Collect(e.YPlot()))
	}
	assert.NoError(t, e.SetYExpression("3x").Err())
}

func TestSetExpression_UnknownSlot(t *testing.T) {
	res := equation.New().SetExpression(equation.Slot("z"), "1")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Messages)
}

func TestVars(t *testing.T) {
	e := equation.New()
	require.NoError(t, e.SetVar("k", 2))
	require.True(t, e.SetYExpression("k x").Success)
	e.SetRange(1, 1, 1)
	assert.Equal(t, []cartesian.Point{{X: 1, Y: 2}}, slices.Collect(e.YPlot()))

	require.NoError(t, e.SetVar("k", 5))
	assert.Equal(t, []cartesian.Point{{X: 1, Y: 5}}, slices.Collect(e.YPlot()))

	v, ok := e.Var("k")
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)

	assert.ErrorIs(t, e.SetVar("0k", 1), equation.ErrInvalidName)
	assert.ErrorIs(t, e.SetVar("", 1), equation.ErrInvalidName)

	got, err := e.Evaluate("k + 1")
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)
}

func TestRemoveVar_TruncatesPlot(t *testing.T) {
	e := equation.New()
	require.NoError(t, e.SetVar("k", 2))
	require.True(t, e.SetYExpression("k x").Success)
	e.RemoveVar("k")
	_, ok := e.Var("k")
	assert.False(t, ok)

	assert.Empty(t, slices.Collect(e.YPlot()))
	var ee *expr.EvalError
	require.True(t, errors.As(e.Err(), &ee))
	assert.Equal(t, "k", ee.Variable)

	// A new expression cannot refer to it any more.
	assert.False(t, e.SetYExpression("k").Success)

	require.True(t, e.SetYExpression("x").Success)
	assert.NotEmpty(t, slices.Collect(e.YPlot()))
	assert.NoError(t, e.Err())
}

func TestRemoveVar_IterationVariable(t *testing.T) {
	e := equation.New()
	require.True(t, e.SetYExpression("2x").Success)
	e.RemoveVar("x")
	assert.NotContains(t, e.Vars(), "x")

	e.SetRange(0, 1, 1)
	assert.Equal(t, []cartesian.Point{{X: 0, Y: 0}, {X: 1, Y: 2}}, slices.Collect(e.YPlot()))
	assert.NoError(t, e.Err())
	x, ok := e.Var("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, x)
}

func TestSetRange_Individually(t *testing.T) {
	e := equation.New()
	e.SetRangeStart(-5)
	e.SetRangeEnd(5)
	e.SetRangeStep(2.5)
	assert.Equal(t, equation.Range{Start: -5, End: 5, Step: 2.5}, e.Range())
}

func TestOnChange(t *testing.T) {
	e := equation.New()
	var got []equation.Change
	cancel := e.OnChange(func(c equation.Change) { got = append(got, c) })

	e.SetYExpression("x")
	e.SetYExpression("bad bad")
	require.NoError(t, e.SetVar("k", 1))
	e.SetRange(0, 1, 0.1)
	e.SetName("line")
	e.RemoveVar("nope")

	assert.Equal(t, []equation.Change{
		{Kind: equation.ExpressionChanged, Name: "y"},
		{Kind: equation.VarChanged, Name: "k"},
		{Kind: equation.RangeChanged},
		{Kind: equation.NameChanged, Name: "name"},
	}, got)

	cancel()
	e.SetRange(0, 2, 0.1)
	assert.Len(t, got, 4)
}

func TestClone(t *testing.T) {
	e := equation.New(equation.WithName("orig"))
	require.True(t, e.SetYExpression("a x").Success)
	calls := 0
	e.OnChange(func(equation.Change) { calls++ })

	c := e.Clone()
	require.NoError(t, c.SetVar("a", 3))
	require.True(t, c.SetYExpression("a").Success)

	v, _ := e.Var("a")
	assert.Equal(t, 0.0, v)
	assert.Equal(t, "a x", e.YExpression())
	assert.Equal(t, "orig", c.Name())
	assert.Equal(t, 0, calls)
}

func TestParseMode(t *testing.T) {
	cases := map[string]equation.Mode{"y": equation.ModeY, "XY": equation.ModeXY, " r ": equation.ModeR, "t": equation.ModeT}
	for in, want := range cases {
		got, err := equation.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.Equal(t, want.String(), got.String())
	}
	_, err := equation.ParseMode("polar")
	assert.ErrorIs(t, err, equation.ErrUnknownMode)
	assert.Equal(t, "Mode(9)", equation.Mode(9).String())
}

func TestWithEvaluator(t *testing.T) {
	ev := expr.New(expr.WithFunc("half", 1, func(a ...float64) float64 { return a[0] / 2 }))
	e := equation.New(equation.WithEvaluator(ev))
	require.True(t, e.SetYExpression("half(x)").Success)
	e.SetRange(4, 4, 1)
	assert.Equal(t, []cartesian.Point{{X: 4, Y: 2}}, slices.Collect(e.YPlot()))
}
