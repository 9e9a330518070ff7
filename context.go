package cartesian

import (
	"fmt"
	"image/color"
	"path"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// pngResolution is the dots per canvas unit used when rasterizing to PNG.
const pngResolution = 3.2

// Context is the vector drawing surface, backed by canvas.
// Coordinates passed in are pixels with the origin at the top left, like gg;
// canvas itself has the origin at the bottom left so Y is flipped here.
type Context struct {
	c      *canvas.Canvas
	ctx    *canvas.Context
	width  float64
	height float64
	shape  Shape
}

// NewContext creates a width by height drawing surface.
func NewContext(width, height float64) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		width:  width,
		height: height,
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// Size returns the width and height given to NewContext.
func (ctx *Context) Size() (float64, float64) {
	return ctx.width, ctx.height
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(pngResolution))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

// WriteFile picks the writer from the extension of fname.
func (ctx *Context) WriteFile(fname string) error {
	switch ext := path.Ext(fname); ext {
	case ".png":
		return ctx.WritePNG(fname)
	case ".svg":
		return ctx.WriteSVG(fname)
	case ".pdf":
		return ctx.WritePDF(fname)
	default:
		return fmt.Errorf("unsupported file format %s", ext)
	}
}

// Reset empties the canvas.
func (ctx *Context) Reset() {
	ctx.c.Reset()
}

// Clear resets the canvas and paints it with col.
func (ctx *Context) Clear(col color.Color) {
	ctx.Reset()
	ctx.ctx.SetFillColor(col)
	ctx.ctx.SetStrokeColor(col)
	ctx.FillRect(0, 0, ctx.width, ctx.height)
}

// SetColor sets both the fill and the stroke color.
func (ctx *Context) SetColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
	ctx.ctx.SetStrokeColor(col)
}

// SetLineWidth sets the stroke width used for Segment shapes.
func (ctx *Context) SetLineWidth(width float64) {
	ctx.ctx.SetStrokeWidth(width)
}

// SetShape selects what PlotPoint draws. A nil shape draws a 1 pixel square.
func (ctx *Context) SetShape(s Shape) {
	ctx.shape = s
}

// PlotPoint draws the current shape at p.
func (ctx *Context) PlotPoint(p Point) {
	x, y := p.X, ctx.height-p.Y
	switch s := ctx.shape.(type) {
	case Dot:
		ctx.ctx.DrawPath(x, y, canvas.Circle(s.Radius))
	case Square:
		ctx.FillRect(x-s.Side/2, y-s.Side/2, s.Side, s.Side)
	case Segment:
		ctx.ctx.MoveTo(x, y)
		ctx.ctx.LineTo(x+s.DX, y-s.DY)
		ctx.ctx.Stroke()
	default:
		ctx.FillRect(x, y-1, 1, 1)
	}
}

// FillRect draws a rectangle path with its bottom left corner at x,y in canvas
// coordinates.
func (ctx *Context) FillRect(x, y, w, h float64) {
	ctx.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}
