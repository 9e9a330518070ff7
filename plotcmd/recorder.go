package plotcmd

import (
	"image/color"

	"github.com/scottkirkwood/cartesian"
)

// Recorder is a Surface that remembers what it was asked to do.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) SetColor(c color.Color)     { r.Commands = append(r.Commands, SetColor{c}) }
func (r *Recorder) SetShape(s cartesian.Shape) { r.Commands = append(r.Commands, SetShape{s}) }
func (r *Recorder) PlotPoint(p cartesian.Point) {
	r.Commands = append(r.Commands, PlotPoint{p})
}

// Points returns the plotted points in order.
func (r *Recorder) Points() []cartesian.Point {
	var pts []cartesian.Point
	for _, c := range r.Commands {
		if p, ok := c.(PlotPoint); ok {
			pts = append(pts, p.Point)
		}
	}
	return pts
}

// Replay executes the recorded commands on s.
func (r *Recorder) Replay(s Surface) {
	for _, c := range r.Commands {
		c.Execute(s)
	}
}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}
