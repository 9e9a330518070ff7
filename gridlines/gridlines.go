// Gridlines draws an empty cartesian plane: grid, axes and tic marks.
package main

import (
	"flag"
	"fmt"

	"github.com/scottkirkwood/cartesian"
	"github.com/scottkirkwood/cartesian/plane"
)

var (
	widthFlag  = flag.Float64("width", 1024, "Width in pixels")
	heightFlag = flag.Float64("height", 768, "Height in pixels")
	unitFlag   = flag.Float64("unit", 64, "Pixels per unit")
	lpuFlag    = flag.Float64("lpu", 2, "Grid lines per unit")
	majorFlag  = flag.Float64("major", 1, "Major tics per unit, 0 for none")
	minorFlag  = flag.Float64("minor", 4, "Minor tics per unit, 0 for none")
	outFlag    = flag.String("out", "", "Output file (.png, .tiff or .bmp)")
)

func main() {
	flag.Parse()

	cfg := plane.DefaultConfig()
	cfg.Width, cfg.Height = *widthFlag, *heightFlag
	cfg.GridUnit = *unitFlag
	cfg.LinesPerUnit = *lpuFlag
	cfg.MajorTicLPU = *majorFlag
	cfg.MinorTicLPU = *minorFlag

	p, err := plane.New(cfg)
	if err != nil {
		fmt.Printf("Unable to lay out the plane: %v\n", err)
		return
	}

	ctx := cartesian.NewRasterContext(int(cfg.Width), int(cfg.Height))
	if err := p.Draw(ctx); err != nil {
		fmt.Printf("Unable to draw: %v\n", err)
		return
	}

	fname := *outFlag
	if fname == "" {
		fname = cartesian.Filename("gridlines-", fmt.Sprintf("%gx%g", cfg.Width, cfg.Height), ".png")
	}
	if err := cartesian.SafeWrite(ctx, fname); err != nil {
		fmt.Printf("Unable write image: %v\n", err)
		return
	}
}
