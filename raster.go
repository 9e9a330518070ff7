package cartesian

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// RasterContext is the pixel drawing surface, backed by gg.
type RasterContext struct {
	gc    *gg.Context
	col   color.Color
	shape Shape
}

// NewRasterContext creates a width by height pixel surface.
func NewRasterContext(width, height int) *RasterContext {
	rc := &RasterContext{
		gc:  gg.NewContext(width, height),
		col: color.Black,
	}
	rc.gc.SetColor(rc.col)
	return rc
}

// Size returns the width and height in pixels.
func (rc *RasterContext) Size() (float64, float64) {
	return float64(rc.gc.Width()), float64(rc.gc.Height())
}

// Image returns the image drawn so far.
func (rc *RasterContext) Image() image.Image {
	return rc.gc.Image()
}

// Clear paints the whole surface with col, keeping the current color.
func (rc *RasterContext) Clear(col color.Color) {
	rc.gc.SetColor(col)
	rc.gc.Clear()
	rc.gc.SetColor(rc.col)
}

// SetColor sets the color used for the following shapes.
func (rc *RasterContext) SetColor(col color.Color) {
	rc.col = col
	rc.gc.SetColor(col)
}

// SetLineWidth sets the stroke width used for Segment shapes.
func (rc *RasterContext) SetLineWidth(width float64) {
	rc.gc.SetLineWidth(width)
}

// SetShape selects what PlotPoint draws. A nil shape sets a single pixel.
func (rc *RasterContext) SetShape(s Shape) {
	rc.shape = s
}

// PlotPoint draws the current shape at p.
func (rc *RasterContext) PlotPoint(p Point) {
	switch s := rc.shape.(type) {
	case Dot:
		rc.gc.DrawCircle(p.X, p.Y, s.Radius)
		rc.gc.Fill()
	case Square:
		rc.gc.DrawRectangle(p.X-s.Side/2, p.Y-s.Side/2, s.Side, s.Side)
		rc.gc.Fill()
	case Segment:
		rc.gc.DrawLine(p.X, p.Y, p.X+s.DX, p.Y+s.DY)
		rc.gc.Stroke()
	default:
		rc.gc.SetPixel(int(p.X), int(p.Y))
	}
}

// WriteFile encodes the image by the extension of fname: png, tiff or bmp.
func (rc *RasterContext) WriteFile(fname string) error {
	ext := path.Ext(fname)
	if ext == ".png" {
		return rc.gc.SavePNG(fname)
	}
	if ext != ".tif" && ext != ".tiff" && ext != ".bmp" {
		return fmt.Errorf("unsupported file format %s", ext)
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if ext == ".bmp" {
		err = bmp.Encode(f, rc.gc.Image())
	} else {
		err = tiff.Encode(f, rc.gc.Image(), &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
