// Package plotcmd turns point and line sequences into drawing commands and
// replays them onto a Surface.
package plotcmd

import (
	"fmt"
	"image/color"
	"iter"

	"github.com/scottkirkwood/cartesian"
)

// Surface is what commands draw on. cartesian.Context and
// cartesian.RasterContext both implement it.
type Surface interface {
	SetColor(color.Color)
	SetShape(cartesian.Shape)
	PlotPoint(cartesian.Point)
}

// Command is one of SetColor, SetShape or PlotPoint.
type Command interface {
	Execute(Surface)
	isCommand()
}

// SetColor changes the color of everything plotted after it.
type SetColor struct {
	Color color.Color
}

// SetShape changes the shape drawn at every plotted point after it.
type SetShape struct {
	Shape cartesian.Shape
}

// PlotPoint draws the current shape at Point.
type PlotPoint struct {
	Point cartesian.Point
}

func (c SetColor) Execute(s Surface)  { s.SetColor(c.Color) }
func (c SetShape) Execute(s Surface)  { s.SetShape(c.Shape) }
func (c PlotPoint) Execute(s Surface) { s.PlotPoint(c.Point) }

func (SetColor) isCommand()  {}
func (SetShape) isCommand()  {}
func (PlotPoint) isCommand() {}

func (c SetColor) String() string {
	r, g, b, a := c.Color.RGBA()
	return fmt.Sprintf("color(#%02x%02x%02x%02x)", r>>8, g>>8, b>>8, a>>8)
}

func (c SetShape) String() string  { return fmt.Sprintf("shape(%+v)", c.Shape) }
func (c PlotPoint) String() string { return "plot" + c.Point.String() }

// Run executes every command of seq on s, in order, and returns how many
// were executed.
func Run(seq iter.Seq[Command], s Surface) int {
	n := 0
	for cmd := range seq {
		cmd.Execute(s)
		n++
	}
	return n
}
