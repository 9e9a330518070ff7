// Package plane draws a cartesian plane: background, grid, axes and tic
// marks, with equations plotted over it.
package plane

import (
	"errors"
	"fmt"
	"image/color"
	"iter"
	"slices"

	"github.com/scottkirkwood/cartesian"
	"github.com/scottkirkwood/cartesian/equation"
	"github.com/scottkirkwood/cartesian/linegen"
	"github.com/scottkirkwood/cartesian/plotcmd"
)

// Surface is what a Plane draws on.
type Surface interface {
	plotcmd.Surface
	Clear(color.Color)
	SetLineWidth(float64)
}

// Plot is one equation to draw, in the given mode. A nil Color picks one
// from Palette.
type Plot struct {
	Equation *equation.Equation
	Mode     equation.Mode
	Color    color.Color
}

// Plane maps plane units to pixels, the origin being the center of the
// surface and y growing upwards.
type Plane struct {
	cfg   Config
	rect  cartesian.Rect
	grid  *linegen.LineGenerator
	major *linegen.LineGenerator
	minor *linegen.LineGenerator
}

// New checks cfg and lays out its grid and tics.
func New(cfg Config) (*Plane, error) {
	p := &Plane{
		cfg:  cfg,
		rect: cartesian.Rect{W: cfg.Width, H: cfg.Height},
	}
	var err error
	if cfg.LinesPerUnit > 0 {
		if p.grid, err = linegen.New(p.rect, cfg.GridUnit, cfg.LinesPerUnit); err != nil {
			return nil, fmt.Errorf("plane: grid: %w", err)
		}
	}
	if cfg.MajorTicLPU > 0 {
		if p.major, err = linegen.NewOriented(p.rect, cfg.GridUnit, cfg.MajorTicLPU, cfg.MajorTicLen, linegen.Both); err != nil {
			return nil, fmt.Errorf("plane: major tics: %w", err)
		}
	}
	if cfg.MinorTicLPU > 0 {
		if p.minor, err = linegen.NewOriented(p.rect, cfg.GridUnit, cfg.MinorTicLPU, cfg.MinorTicLen, linegen.Both); err != nil {
			return nil, fmt.Errorf("plane: minor tics: %w", err)
		}
	}
	// The axes are drawn even without grid or tics, so check what they need.
	if _, err := linegen.New(p.rect, cfg.GridUnit, 1); err != nil {
		return nil, fmt.Errorf("plane: %w", err)
	}
	return p, nil
}

// Config returns the configuration the plane was built with.
func (p *Plane) Config() Config {
	return p.cfg
}

// Rect is the plane's extent in pixels.
func (p *Plane) Rect() cartesian.Rect {
	return p.rect
}

// ToPixel converts a point in plane units to pixels.
func (p *Plane) ToPixel(pt cartesian.Point) cartesian.Point {
	c := p.rect.Center()
	return cartesian.Pt(c.X+pt.X*p.cfg.GridUnit, c.Y-pt.Y*p.cfg.GridUnit)
}

// FromPixel converts a pixel position to plane units.
func (p *Plane) FromPixel(px cartesian.Point) cartesian.Point {
	c := p.rect.Center()
	return cartesian.Pt((px.X-c.X)/p.cfg.GridUnit, (c.Y-px.Y)/p.cfg.GridUnit)
}

// Bounds returns the bottom left and top right corners in plane units.
func (p *Plane) Bounds() (lo, hi cartesian.Point) {
	lo = p.FromPixel(cartesian.Pt(p.rect.X, p.rect.Y+p.rect.H))
	hi = p.FromPixel(cartesian.Pt(p.rect.X+p.rect.W, p.rect.Y))
	return lo, hi
}

// Axes returns the x axis then the y axis, in pixels.
func (p *Plane) Axes() []cartesian.Line {
	c := p.rect.Center()
	return []cartesian.Line{
		{Start: cartesian.Pt(p.rect.X, c.Y), End: cartesian.Pt(p.rect.X+p.rect.W, c.Y)},
		{Start: cartesian.Pt(c.X, p.rect.Y), End: cartesian.Pt(c.X, p.rect.Y+p.rect.H)},
	}
}

// Draw clears s and draws the grid, axes, tics and then every plot. Points
// that are not finite or fall off the surface are skipped. The returned error
// joins the Err of every equation whose plot was cut short.
func (p *Plane) Draw(s Surface, plots ...Plot) error {
	cfg := p.cfg
	s.Clear(cfg.Background)

	if p.grid != nil {
		s.SetLineWidth(cfg.GridWidth)
		plotcmd.Run(plotcmd.FromLines(p.grid.Lines(), plotcmd.WithColor(cfg.GridColor)), s)
	}

	s.SetLineWidth(cfg.AxisWidth)
	plotcmd.Run(plotcmd.FromLines(slices.Values(p.Axes()), plotcmd.WithColor(cfg.AxisColor)), s)

	s.SetLineWidth(cfg.TicWidth)
	for _, tics := range []*linegen.LineGenerator{p.minor, p.major} {
		if tics != nil {
			plotcmd.Run(plotcmd.FromLines(tics.Lines(), plotcmd.WithColor(cfg.TicColor)), s)
		}
	}

	palette := Palette(cfg.PlotColor, len(plots))
	var errs []error
	for i, pl := range plots {
		if pl.Equation == nil {
			continue
		}
		opts := []plotcmd.Option{
			plotcmd.WithShape(cartesian.Dot{Radius: cfg.PointRadius}),
			plotcmd.WithTransform(p.ToPixel),
		}
		if cfg.PositiveColor != nil && cfg.NegativeColor != nil {
			opts = append(opts, plotcmd.WithSignColors(cfg.PositiveColor, cfg.NegativeColor))
		} else if pl.Color != nil {
			opts = append(opts, plotcmd.WithColor(pl.Color))
		} else {
			opts = append(opts, plotcmd.WithColor(palette[i]))
		}
		plotcmd.Run(plotcmd.FromPoints(p.visible(pl.Equation.Plot(pl.Mode)), opts...), s)
		if err := pl.Equation.Err(); err != nil {
			errs = append(errs, fmt.Errorf("plane: plotting %q: %w", pl.Equation.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// visible drops points that cannot be drawn: non-finite ones and those more
// than a point radius off the surface.
func (p *Plane) visible(seq iter.Seq[cartesian.Point]) iter.Seq[cartesian.Point] {
	r := p.cfg.PointRadius
	bounds := cartesian.Rect{X: p.rect.X - r, Y: p.rect.Y - r, W: p.rect.W + 2*r, H: p.rect.H + 2*r}
	return func(yield func(cartesian.Point) bool) {
		for pt := range seq {
			if !pt.IsFinite() || !bounds.Contains(p.ToPixel(pt)) {
				continue
			}
			if !yield(pt) {
				return
			}
		}
	}
}
