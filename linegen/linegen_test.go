package linegen_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottkirkwood/cartesian"
	"github.com/scottkirkwood/cartesian/linegen"
)

func xs(lines []cartesian.Line) []float64 {
	var out []float64
	for _, l := range lines {
		out = append(out, l.Start.X)
	}
	return out
}

func ys(lines []cartesian.Line) []float64 {
	var out []float64
	for _, l := range lines {
		out = append(out, l.Start.Y)
	}
	return out
}

// assertSymmetric checks the coordinates are evenly spaced, increasing and
// mirror each other about center.
func assertSymmetric(t *testing.T, coords []float64, center, spacing float64) {
	t.Helper()
	require.NotEmpty(t, coords)
	require.Equal(t, 1, len(coords)%2, "odd number of lines")
	mid := len(coords) / 2
	assert.InDelta(t, center, coords[mid], 1e-9)
	for i := 1; i < len(coords); i++ {
		assert.InDelta(t, spacing, coords[i]-coords[i-1], 1e-9)
	}
	for i := 0; i < mid; i++ {
		assert.InDelta(t, center-coords[i], coords[len(coords)-1-i]-center, 1e-9)
	}
}

func TestLines_511x211(t *testing.T) {
	g, err := linegen.New(cartesian.Rect{W: 511, H: 211}, 50, 2)
	require.NoError(t, err)
	assert.Equal(t, 25.0, g.Spacing())
	assert.Equal(t, cartesian.Pt(255.5, 105.5), g.Center())
	assert.Equal(t, 21, g.VerticalCount())
	assert.Equal(t, 9, g.HorizontalCount())

	vert := slices.Collect(g.VerticalLines())
	horz := slices.Collect(g.HorizontalLines())
	require.Len(t, vert, 21)
	require.Len(t, horz, 9)

	assertSymmetric(t, xs(vert), 255.5, 25)
	assertSymmetric(t, ys(horz), 105.5, 25)
	assert.InDelta(t, 5.5, vert[0].Start.X, 1e-9)
	assert.InDelta(t, 505.5, vert[20].Start.X, 1e-9)
	assert.InDelta(t, 5.5, horz[0].Start.Y, 1e-9)
	assert.InDelta(t, 205.5, horz[8].Start.Y, 1e-9)

	for _, l := range vert {
		assert.True(t, l.Vertical())
		assert.Equal(t, 0.0, l.Start.Y)
		assert.Equal(t, 211.0, l.End.Y)
	}
	for _, l := range horz {
		assert.True(t, l.Horizontal())
		assert.Equal(t, 0.0, l.Start.X)
		assert.Equal(t, 511.0, l.End.X)
	}

	all := slices.Collect(g.Lines())
	assert.Equal(t, append(vert, horz...), all)

	// Full length lines form a lattice: every vertical crosses every horizontal.
	for _, v := range vert {
		for _, h := range horz {
			assert.True(t, v.Crosses(h), "%v does not cross %v", v, h)
		}
	}
}

func TestLines_StayInsideRect(t *testing.T) {
	rects := []cartesian.Rect{
		{W: 100, H: 100},
		{X: 10, Y: 20, W: 333, H: 77},
		{W: 50, H: 50},
		{W: 49.9, H: 10},
	}
	for _, r := range rects {
		g, err := linegen.New(r, 25, 1)
		require.NoError(t, err)
		for l := range g.Lines() {
			assert.True(t, r.Contains(l.Start), "%v outside %v", l, r)
			assert.True(t, r.Contains(l.End), "%v outside %v", l, r)
		}
	}
}

func TestLines_EdgeLineKept(t *testing.T) {
	// 100/2/25 is exactly 2, so the edges get a line too.
	g, err := linegen.New(cartesian.Rect{W: 100, H: 100}, 25, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, xs(slices.Collect(g.VerticalLines())))
}

func TestLines_SpacingLargerThanRect(t *testing.T) {
	g, err := linegen.New(cartesian.Rect{W: 10, H: 10}, 100, 1)
	require.NoError(t, err)
	lines := slices.Collect(g.Lines())
	require.Len(t, lines, 2)
	assert.Equal(t, 5.0, lines[0].Start.X)
	assert.Equal(t, 5.0, lines[1].Start.Y)
}

func TestNewOriented_Tics(t *testing.T) {
	r := cartesian.Rect{W: 400, H: 200}

	g, err := linegen.NewOriented(r, 50, 4, 6, linegen.Vertical)
	require.NoError(t, err)
	assert.Equal(t, 0, g.HorizontalCount())
	assert.Equal(t, 33, g.VerticalCount())
	assert.Empty(t, slices.Collect(g.HorizontalLines()))
	for l := range g.Lines() {
		assert.True(t, l.Vertical())
		assert.Equal(t, 97.0, l.Start.Y)
		assert.Equal(t, 103.0, l.End.Y)
	}

	g, err = linegen.NewOriented(r, 50, 4, 6, linegen.Horizontal)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VerticalCount())
	assert.Equal(t, 17, g.HorizontalCount())
	for l := range g.Lines() {
		assert.True(t, l.Horizontal())
		assert.Equal(t, 197.0, l.Start.X)
		assert.Equal(t, 203.0, l.End.X)
	}

	// Tics only cross the axis they sit on.
	xAxis := cartesian.Line{Start: cartesian.Pt(0, 100), End: cartesian.Pt(400, 100)}
	yAxis := cartesian.Line{Start: cartesian.Pt(200, 0), End: cartesian.Pt(200, 200)}
	for l := range g.Lines() {
		assert.True(t, l.Crosses(yAxis))
		if l.Start.Y != 100 {
			assert.False(t, l.Crosses(xAxis))
		}
	}
}

func TestNewOriented_DefaultLength(t *testing.T) {
	r := cartesian.Rect{X: 5, Y: 5, W: 90, H: 40}
	for _, length := range []float64{0, -3, math.NaN()} {
		g, err := linegen.NewOriented(r, 10, 1, length, linegen.Both)
		require.NoError(t, err)
		full, _ := linegen.New(r, 10, 1)
		assert.Equal(t, slices.Collect(full.Lines()), slices.Collect(g.Lines()))
	}
}

func TestNew_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		rect cartesian.Rect
		gu   float64
		lpu  float64
		want error
	}{
		{"ZeroWidth", cartesian.Rect{W: 0, H: 10}, 10, 1, linegen.ErrInvalidRect},
		{"NegativeHeight", cartesian.Rect{W: 10, H: -1}, 10, 1, linegen.ErrInvalidRect},
		{"NaNWidth", cartesian.Rect{W: math.NaN(), H: 10}, 10, 1, linegen.ErrInvalidRect},
		{"InfX", cartesian.Rect{X: math.Inf(1), W: 10, H: 10}, 10, 1, linegen.ErrInvalidRect},
		{"ZeroUnit", cartesian.Rect{W: 10, H: 10}, 0, 1, linegen.ErrInvalidUnit},
		{"NegativeLPU", cartesian.Rect{W: 10, H: 10}, 10, -2, linegen.ErrInvalidUnit},
		{"InfUnit", cartesian.Rect{W: 10, H: 10}, math.Inf(1), 1, linegen.ErrInvalidUnit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := linegen.New(tc.rect, tc.gu, tc.lpu)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := linegen.NewOriented(cartesian.Rect{W: 10, H: 10}, 10, 1, 0, linegen.Orientation(7))
	assert.Error(t, err)
}

func TestLines_Restartable(t *testing.T) {
	g, err := linegen.New(cartesian.Rect{W: 120, H: 80}, 20, 1)
	require.NoError(t, err)
	seq := g.Lines()
	first := slices.Collect(seq)
	assert.Equal(t, first, slices.Collect(seq))

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "both", linegen.Both.String())
	assert.Equal(t, "horizontal", linegen.Horizontal.String())
	assert.Equal(t, "vertical", linegen.Vertical.String())
	assert.Equal(t, "Orientation(5)", linegen.Orientation(5).String())
}
