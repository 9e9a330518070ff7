package linegen

import (
	"fmt"
	"iter"
	"math"

	"github.com/scottkirkwood/cartesian"
)

// Orientation selects which lines a LineGenerator produces.
type Orientation int

const (
	Both Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Both:
		return "both"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// eps keeps a line that sits exactly on the edge from being lost to rounding.
const eps = 1e-9

// LineGenerator is immutable once built and safe to iterate any number of
// times.
type LineGenerator struct {
	rect         cartesian.Rect
	gridUnit     float64
	linesPerUnit float64
	orientation  Orientation

	spacing  float64
	center   cartesian.Point
	vertLen  float64 // length of each vertical line
	horzLen  float64 // length of each horizontal line
	vertHalf int     // vertical lines on either side of the center one
	horzHalf int
}

// New returns a generator for full length grid lines in both orientations.
func New(rect cartesian.Rect, gridUnit, linesPerUnit float64) (*LineGenerator, error) {
	return NewOriented(rect, gridUnit, linesPerUnit, 0, Both)
}

// NewOriented returns a generator for lines of the given length, centered on
// the perpendicular axis. This is how tic marks are made. A length <= 0
// means the full height (vertical lines) or width (horizontal lines) of rect.
func NewOriented(rect cartesian.Rect, gridUnit, linesPerUnit, length float64, o Orientation) (*LineGenerator, error) {
	if !finite(rect.X) || !finite(rect.Y) || !finite(rect.W) || !finite(rect.H) || rect.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRect, rect)
	}
	if !finite(gridUnit) || gridUnit <= 0 {
		return nil, fmt.Errorf("%w: gridUnit %g", ErrInvalidUnit, gridUnit)
	}
	if !finite(linesPerUnit) || linesPerUnit <= 0 {
		return nil, fmt.Errorf("%w: linesPerUnit %g", ErrInvalidUnit, linesPerUnit)
	}
	if o != Both && o != Horizontal && o != Vertical {
		return nil, fmt.Errorf("linegen: unknown orientation %v", o)
	}
	if math.IsNaN(length) || math.IsInf(length, 0) {
		length = 0
	}

	g := &LineGenerator{
		rect:         rect,
		gridUnit:     gridUnit,
		linesPerUnit: linesPerUnit,
		orientation:  o,
		spacing:      gridUnit / linesPerUnit,
		center:       rect.Center(),
		vertLen:      rect.H,
		horzLen:      rect.W,
	}
	if length > 0 {
		g.vertLen = length
		g.horzLen = length
	}
	g.vertHalf = int(math.Floor(rect.W/2/g.spacing + eps))
	g.horzHalf = int(math.Floor(rect.H/2/g.spacing + eps))
	return g, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Rect returns the bounding rectangle.
func (g *LineGenerator) Rect() cartesian.Rect { return g.rect }

// Spacing is the distance in pixels between neighboring lines.
func (g *LineGenerator) Spacing() float64 { return g.spacing }

// Center is where the two center lines cross.
func (g *LineGenerator) Center() cartesian.Point { return g.center }

// Orientation returns which lines are produced.
func (g *LineGenerator) Orientation() Orientation { return g.orientation }

// VerticalCount is the number of vertical lines Lines produces, 0 if the
// generator is Horizontal only.
func (g *LineGenerator) VerticalCount() int {
	if g.orientation == Horizontal {
		return 0
	}
	return 2*g.vertHalf + 1
}

// HorizontalCount is the number of horizontal lines Lines produces, 0 if the
// generator is Vertical only.
func (g *LineGenerator) HorizontalCount() int {
	if g.orientation == Vertical {
		return 0
	}
	return 2*g.horzHalf + 1
}

// Lines yields the vertical lines from left to right, then the horizontal
// lines from top to bottom.
func (g *LineGenerator) Lines() iter.Seq[cartesian.Line] {
	return func(yield func(cartesian.Line) bool) {
		for l := range g.VerticalLines() {
			if !yield(l) {
				return
			}
		}
		for l := range g.HorizontalLines() {
			if !yield(l) {
				return
			}
		}
	}
}

// VerticalLines yields the vertical lines from left to right, each running
// from top to bottom.
func (g *LineGenerator) VerticalLines() iter.Seq[cartesian.Line] {
	return func(yield func(cartesian.Line) bool) {
		c := newCursor(g.VerticalCount())
		top := g.center.Y - g.vertLen/2
		bottom := g.center.Y + g.vertLen/2
		for c.more() {
			x := g.center.X + float64(c.next()-g.vertHalf)*g.spacing
			if !yield(cartesian.Line{Start: cartesian.Pt(x, top), End: cartesian.Pt(x, bottom)}) {
				return
			}
		}
	}
}

// HorizontalLines yields the horizontal lines from top to bottom, each
// running from left to right.
func (g *LineGenerator) HorizontalLines() iter.Seq[cartesian.Line] {
	return func(yield func(cartesian.Line) bool) {
		c := newCursor(g.HorizontalCount())
		left := g.center.X - g.horzLen/2
		right := g.center.X + g.horzLen/2
		for c.more() {
			y := g.center.Y + float64(c.next()-g.horzHalf)*g.spacing
			if !yield(cartesian.Line{Start: cartesian.Pt(left, y), End: cartesian.Pt(right, y)}) {
				return
			}
		}
	}
}

// cursor walks the indexes [0, end).
type cursor struct {
	pos, end int
}

func newCursor(end int) *cursor {
	return &cursor{end: end}
}

func (c *cursor) more() bool {
	return c.pos < c.end
}

// next returns the current index and advances. It panics with
// ErrBoundsExceeded once the end is passed.
func (c *cursor) next() int {
	if c.pos >= c.end {
		panic(fmt.Errorf("%w: line %d of %d", ErrBoundsExceeded, c.pos, c.end))
	}
	i := c.pos
	c.pos++
	return i
}
