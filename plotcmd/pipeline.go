package plotcmd

import (
	"image/color"
	"iter"

	"github.com/scottkirkwood/cartesian"
)

type options struct {
	shape     cartesian.Shape
	color     color.Color
	pos, neg  color.Color
	transform func(cartesian.Point) cartesian.Point
	finite    bool
}

// Option configures FromPoints and FromLines.
type Option func(*options)

// WithShape emits a SetShape before anything else.
func WithShape(s cartesian.Shape) Option {
	return func(o *options) {
		o.shape = s
	}
}

// WithColor emits a SetColor before the first point.
func WithColor(c color.Color) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithSignColors colors points with y >= 0 pos and the others neg. A
// SetColor is emitted before the first point and whenever the sign of y
// changes. The sign is taken before any transform.
func WithSignColors(pos, neg color.Color) Option {
	return func(o *options) {
		o.pos, o.neg = pos, neg
	}
}

// WithTransform maps every point, typically from plane units to pixels.
func WithTransform(fn func(cartesian.Point) cartesian.Point) Option {
	return func(o *options) {
		o.transform = fn
	}
}

// SkipNonFinite drops points with a NaN or infinite coordinate instead of
// plotting them.
func SkipNonFinite() Option {
	return func(o *options) {
		o.finite = true
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) apply(p cartesian.Point) cartesian.Point {
	if o.transform == nil {
		return p
	}
	return o.transform(p)
}

// prelude yields the optional SetShape and SetColor commands.
func (o *options) prelude(yield func(Command) bool) bool {
	if o.shape != nil && !yield(SetShape{o.shape}) {
		return false
	}
	if o.color != nil && !yield(SetColor{o.color}) {
		return false
	}
	return true
}

// FromPoints yields one PlotPoint per point of seq, with the SetColor and
// SetShape commands the options ask for interleaved.
func FromPoints(seq iter.Seq[cartesian.Point], opts ...Option) iter.Seq[Command] {
	o := newOptions(opts)
	signed := o.pos != nil && o.neg != nil
	return func(yield func(Command) bool) {
		if !o.prelude(yield) {
			return
		}
		first := true
		var negative bool
		for p := range seq {
			if o.finite && !p.IsFinite() {
				continue
			}
			if signed {
				neg := p.Y < 0
				if first || neg != negative {
					c := o.pos
					if neg {
						c = o.neg
					}
					if !yield(SetColor{c}) {
						return
					}
				}
				negative = neg
			}
			first = false
			if !yield(PlotPoint{o.apply(p)}) {
				return
			}
		}
	}
}

// FromLines yields a PlotPoint at the start of every line, preceded by a
// SetShape with a Segment whenever the line's vector differs from the
// previous one. Sign colors do not apply.
func FromLines(seq iter.Seq[cartesian.Line], opts ...Option) iter.Seq[Command] {
	o := newOptions(opts)
	return func(yield func(Command) bool) {
		if !o.prelude(yield) {
			return
		}
		first := true
		var last cartesian.Point
		for l := range seq {
			start, end := o.apply(l.Start), o.apply(l.End)
			if o.finite && (!start.IsFinite() || !end.IsFinite()) {
				continue
			}
			v := end.Sub(start)
			if first || v != last {
				if !yield(SetShape{cartesian.Segment{DX: v.X, DY: v.Y}}) {
					return
				}
				last = v
				first = false
			}
			if !yield(PlotPoint{start}) {
				return
			}
		}
	}
}
