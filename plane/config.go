package plane

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Config describes how a Plane looks. It is a plain value: build it once,
// usually DefaultConfig with a few flags applied, and hand it to New.
type Config struct {
	Width, Height float64 // surface size, pixels

	GridUnit     float64 // pixels per plane unit
	LinesPerUnit float64 // grid lines per unit, 0 for no grid

	MajorTicLPU float64 // 0 for no major tics
	MajorTicLen float64
	MinorTicLPU float64 // 0 for no minor tics
	MinorTicLen float64

	GridWidth   float64
	AxisWidth   float64
	TicWidth    float64
	PointRadius float64

	Background color.Color
	GridColor  color.Color
	AxisColor  color.Color
	TicColor   color.Color
	PlotColor  color.Color

	// When both are set, plots are drawn PositiveColor where y >= 0 and
	// NegativeColor below the x axis, overriding the plot colors.
	PositiveColor color.Color
	NegativeColor color.Color
}

// DefaultConfig is an 800x600 plane, 50 pixels to the unit, with a grid line
// every half unit.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		GridUnit:     50,
		LinesPerUnit: 2,
		MajorTicLPU:  1,
		MajorTicLen:  11,
		MinorTicLPU:  4,
		MinorTicLen:  5,
		GridWidth:    1,
		AxisWidth:    2,
		TicWidth:     1,
		PointRadius:  1.5,
		Background:   color.NRGBA{0xf5, 0xf5, 0xf5, 0xff},
		GridColor:    color.NRGBA{0xc8, 0xd2, 0xe6, 0xff},
		AxisColor:    color.Black,
		TicColor:     color.Black,
		PlotColor:    color.NRGBA{0x1f, 0x4e, 0xb4, 0xff},
	}
}

// ParseColor accepts "#rrggbb" with or without the leading '#'.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("plane: bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, 0xff}, nil
}

// Palette returns n well separated colors, for drawing several plots on one
// plane. The first is always base.
func Palette(base color.Color, n int) []color.Color {
	if n <= 0 {
		return nil
	}
	out := []color.Color{base}
	for i := 1; i < n; i++ {
		h := 360 * float64(i) / float64(n)
		r, g, b := colorful.Hsv(h, 0.75, 0.7).Clamped().RGB255()
		out = append(out, color.NRGBA{r, g, b, 0xff})
	}
	return out
}
