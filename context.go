package dxfpreview

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/fabworks/dxfpreview/internal/raster"
)

// Context is the drawing surface the renderer paints onto. Coordinates
// passed to its methods are CSS pixels; the backing pixmap is sized in
// device pixels and the context's matrix is pre-scaled by the device
// pixel ratio, so callers never deal with the ratio themselves.
type Context struct {
	cssWidth  float64
	cssHeight float64
	pixmap    *Pixmap
	raster    *raster.Rasterizer

	matrix    Matrix // CSS pixels -> device pixels
	path      *Path
	color     RGBA
	lineWidth float64 // in CSS pixels
}

// NewContext creates a drawing context of the given CSS-pixel size whose
// backing pixmap is scaled by pixelRatio. Ratios at or below zero fall
// back to 1.
func NewContext(cssWidth, cssHeight, pixelRatio float64) *Context {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	w := int(math.Ceil(cssWidth * pixelRatio))
	h := int(math.Ceil(cssHeight * pixelRatio))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return &Context{
		cssWidth:  cssWidth,
		cssHeight: cssHeight,
		pixmap:    NewPixmap(w, h),
		raster:    raster.NewRasterizer(w, h),
		matrix:    Scale(pixelRatio, pixelRatio),
		path:      NewPath(),
		color:     Black,
		lineWidth: 1,
	}
}

// Width returns the context width in CSS pixels.
func (c *Context) Width() float64 { return c.cssWidth }

// Height returns the context height in CSS pixels.
func (c *Context) Height() float64 { return c.cssHeight }

// Pixmap returns the backing pixel surface.
func (c *Context) Pixmap() *Pixmap { return c.pixmap }

// Image returns the context's pixels as an image.
func (c *Context) Image() image.Image { return c.pixmap.ToImage() }

// Clear fills the whole surface with a color and drops any pending path.
func (c *Context) Clear(col RGBA) {
	c.pixmap.Clear(col)
	c.path.Clear()
}

// SetColor sets the current stroke and text color.
func (c *Context) SetColor(col RGBA) { c.color = col }

// SetLineWidth sets the stroke width in CSS pixels.
func (c *Context) SetLineWidth(w float64) { c.lineWidth = w }

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) { c.path.MoveTo(x, y) }

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) { c.path.LineTo(x, y) }

// ClosePath closes the current subpath.
func (c *Context) ClosePath() { c.path.Close() }

// DrawLine adds a single segment subpath.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.path.MoveTo(x1, y1)
	c.path.LineTo(x2, y2)
}

// DrawCircle adds a full circle subpath centered at (cx, cy).
func (c *Context) DrawCircle(cx, cy, r float64) {
	c.path.Circle(cx, cy, r)
}

// DrawArc adds an arc subpath around (cx, cy) from angle1 to angle2
// (radians, sweeping toward increasing angle).
func (c *Context) DrawArc(cx, cy, r, angle1, angle2 float64) {
	c.path.MoveTo(cx+r*math.Cos(angle1), cy+r*math.Sin(angle1))
	c.path.Arc(cx, cy, r, angle1, angle2)
}

// Stroke strokes the current path with the current color and line width,
// then clears the path.
func (c *Context) Stroke() {
	defer c.path.Clear()

	width := c.lineWidth * c.matrix.MaxScaleFactor()
	col := raster.RGBA{R: c.color.R, G: c.color.G, B: c.color.B, A: c.color.A}

	for _, sub := range c.path.Transform(c.matrix).Flatten() {
		pts := make([]raster.Point, len(sub))
		for i, p := range sub {
			pts[i] = raster.Point{X: p.X, Y: p.Y}
		}
		c.raster.StrokePolyline(c.pixmap, pts, width, col)
	}
}

// FillRect fills an axis-aligned rectangle with the current color.
func (c *Context) FillRect(x, y, w, h float64) {
	corners := []Point{
		c.matrix.TransformPoint(Pt(x, y)),
		c.matrix.TransformPoint(Pt(x+w, y)),
		c.matrix.TransformPoint(Pt(x+w, y+h)),
		c.matrix.TransformPoint(Pt(x, y+h)),
	}
	pts := make([]raster.Point, len(corners))
	for i, p := range corners {
		pts[i] = raster.Point{X: p.X, Y: p.Y}
	}
	col := raster.RGBA{R: c.color.R, G: c.color.G, B: c.color.B, A: c.color.A}
	c.raster.FillPolygon(c.pixmap, pts, col)
}

// DrawStringCentered draws s with its center at (x, y) in CSS pixels,
// using the built-in fixed-size face.
func (c *Context) DrawStringCentered(s string, x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	face := basicfont.Face7x13

	d := &font.Drawer{
		Dst:  c.pixmap,
		Src:  image.NewUniform(c.color.Color()),
		Face: face,
	}
	w := d.MeasureString(s)
	d.Dot = fixed.Point26_6{
		X: fixed.I(int(math.Round(p.X))) - w/2,
		Y: fixed.I(int(math.Round(p.Y)) + (face.Ascent-face.Descent)/2),
	}
	d.DrawString(s)
}
