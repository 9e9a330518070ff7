// Plot draws one equation on a cartesian plane and saves it as an image.
//
//	plot -y 'sin(x)' -start -6.28 -end 6.28 -step 0.01
//	plot -mode r -r '2cos(3t)' -out rose.svg
//	plot -eq rose.yaml -out rose.pdf
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/scottkirkwood/cartesian"
	"github.com/scottkirkwood/cartesian/eqfile"
	"github.com/scottkirkwood/cartesian/equation"
	"github.com/scottkirkwood/cartesian/plane"
)

var (
	eqFlag    = flag.String("eq", "", "Equation file (yaml), overrides the equation flags")
	modeFlag  = flag.String("mode", "y", "Plot mode: y, xy, r or t")
	xFlag     = flag.String("x", "", "X(t) for the xy mode")
	yFlag     = flag.String("y", "", "Y(x) for the y mode, Y(t) for the xy mode")
	tFlag     = flag.String("t", "", "T(r) for the t mode")
	rFlag     = flag.String("r", "", "R(t) for the r mode")
	varsFlag  = flag.String("vars", "", "Comma separated name=value pairs, e.g. a=2,b=0.5")
	startFlag = flag.Float64("start", -1, "Start of the range")
	endFlag   = flag.Float64("end", 1, "End of the range")
	stepFlag  = flag.Float64("step", 0.05, "Range step")
	outFlag   = flag.String("out", "", "Output file: .png, .svg, .pdf, .tiff or .bmp")

	widthFlag  = flag.Float64("width", 800, "Width in pixels")
	heightFlag = flag.Float64("height", 600, "Height in pixels")
	unitFlag   = flag.Float64("unit", 50, "Pixels per unit")
	lpuFlag    = flag.Float64("lpu", 2, "Grid lines per unit, 0 for none")
	bgFlag     = flag.String("bg", "", "Background color, #rrggbb")
	fgFlag     = flag.String("fg", "", "Plot color, #rrggbb")
	gridFlag   = flag.String("grid", "", "Grid color, #rrggbb")
	axisFlag   = flag.String("axis", "", "Axis and tic color, #rrggbb")
	posFlag    = flag.String("pos", "", "Color above the x axis, needs -neg")
	negFlag    = flag.String("neg", "", "Color below the x axis, needs -pos")
)

// surface is a plane.Surface that can save itself.
type surface interface {
	plane.Surface
	cartesian.FileWriter
}

func main() {
	flag.Parse()

	cfg, err := config()
	if err != nil {
		fmt.Printf("Bad flags: %v\n", err)
		os.Exit(2)
	}
	e, mode, err := loadEquation()
	if err != nil {
		fmt.Printf("Unable to load the equation: %v\n", err)
		os.Exit(1)
	}
	p, err := plane.New(cfg)
	if err != nil {
		fmt.Printf("Unable to lay out the plane: %v\n", err)
		os.Exit(1)
	}

	fname := *outFlag
	if fname == "" {
		name := e.Name()
		if name == "" {
			name = mode.String()
		}
		fname = cartesian.Filename("plot-", name, ".png")
	}
	s := newSurface(fname, cfg)
	if err := p.Draw(s, plane.Plot{Equation: e, Mode: mode}); err != nil {
		fmt.Printf("Plot incomplete: %v\n", err)
	}
	if err := cartesian.SafeWrite(s, fname); err != nil {
		fmt.Printf("Unable write image: %v\n", err)
		os.Exit(1)
	}
}

// newSurface picks the vector surface for svg and pdf, the raster one for
// everything else.
func newSurface(fname string, cfg plane.Config) surface {
	switch path.Ext(fname) {
	case ".svg", ".pdf":
		return cartesian.NewContext(cfg.Width, cfg.Height)
	}
	return cartesian.NewRasterContext(int(cfg.Width), int(cfg.Height))
}

func config() (plane.Config, error) {
	cfg := plane.DefaultConfig()
	cfg.Width, cfg.Height = *widthFlag, *heightFlag
	cfg.GridUnit = *unitFlag
	cfg.LinesPerUnit = *lpuFlag

	colors := []struct {
		flag string
		dst  []*color.Color
	}{
		{*bgFlag, []*color.Color{&cfg.Background}},
		{*fgFlag, []*color.Color{&cfg.PlotColor}},
		{*gridFlag, []*color.Color{&cfg.GridColor}},
		{*axisFlag, []*color.Color{&cfg.AxisColor, &cfg.TicColor}},
		{*posFlag, []*color.Color{&cfg.PositiveColor}},
		{*negFlag, []*color.Color{&cfg.NegativeColor}},
	}
	for _, c := range colors {
		if c.flag == "" {
			continue
		}
		col, err := plane.ParseColor(c.flag)
		if err != nil {
			return cfg, err
		}
		for _, dst := range c.dst {
			*dst = col
		}
	}
	if (cfg.PositiveColor == nil) != (cfg.NegativeColor == nil) {
		return cfg, fmt.Errorf("-pos and -neg go together")
	}
	return cfg, nil
}

func loadEquation() (*equation.Equation, equation.Mode, error) {
	if *eqFlag != "" {
		return eqfile.LoadFile(*eqFlag)
	}
	doc := &eqfile.Document{
		Mode:  *modeFlag,
		X:     *xFlag,
		Y:     *yFlag,
		T:     *tFlag,
		R:     *rFlag,
		Range: &eqfile.Range{Start: *startFlag, End: *endFlag, Step: *stepFlag},
	}
	vars, err := parseVars(*varsFlag)
	if err != nil {
		return nil, 0, err
	}
	doc.Vars = vars
	return doc.Equation()
}

// parseVars parses "a=1,b=2.5".
func parseVars(s string) (map[string]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	vars := make(map[string]float64)
	for _, kv := range strings.Split(s, ",") {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("variable %q is not name=value", kv)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", kv, err)
		}
		vars[strings.TrimSpace(name)] = v
	}
	return vars, nil
}
