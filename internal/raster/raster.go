// Package raster provides scanline rasterization for stroked and filled
// polygons. Types are local copies of the root package's geometry to
// avoid an import cycle.
package raster

import "math"

// Point is a 2D point in device pixels.
type Point struct {
	X, Y float64
}

// RGBA is a color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Surface is the pixel sink the rasterizer writes to.
type Surface interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGBA)
}

// SpanWriter is an optional Surface fast path for horizontal runs.
type SpanWriter interface {
	FillSpan(x1, x2, y int, c RGBA)
}

// Rasterizer converts polygons to pixels with the non-zero winding rule.
type Rasterizer struct {
	width  int
	height int
	aet    *activeEdgeTable
}

// NewRasterizer creates a rasterizer for the given device dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		aet:    newActiveEdgeTable(),
	}
}

// FillPolygon rasterizes a closed polygon onto the surface. The point
// sequence is treated as implicitly closed: an edge connects the last
// point back to the first.
func (r *Rasterizer) FillPolygon(dst Surface, points []Point, color RGBA) {
	if len(points) < 3 {
		return
	}

	edges := make([]Edge, 0, len(points))
	for i := range points {
		p0 := points[i]
		p1 := points[(i+1)%len(points)]
		if math.Abs(p1.Y-p0.Y) < 1e-9 {
			continue // horizontal edges never cross a scanline
		}
		edges = append(edges, NewEdge(p0, p1))
	}
	if len(edges) == 0 {
		return
	}

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > dst.Height() {
		y1 = dst.Height()
	}

	for y := y0; y < y1; y++ {
		r.scanline(dst, edges, float64(y)+0.5, y, color)
	}
}

// scanline fills the spans where the winding number is non-zero.
func (r *Rasterizer) scanline(dst Surface, edges []Edge, scanY float64, y int, color RGBA) {
	r.aet.clear()
	for i := range edges {
		if edges[i].y0 <= scanY && scanY < edges[i].y1 {
			r.aet.addAt(edges[i], scanY)
		}
	}
	if len(r.aet.edges) == 0 {
		return
	}
	r.aet.sort()

	winding := 0
	var spanStart float64
	for _, ae := range r.aet.edges {
		if winding == 0 {
			spanStart = ae.x
		}
		winding += ae.dir
		if winding == 0 {
			r.fillSpan(dst, spanStart, ae.x, y, color)
		}
	}
}

func (r *Rasterizer) fillSpan(dst Surface, xf1, xf2 float64, y int, color RGBA) {
	if y < 0 || y >= dst.Height() {
		return
	}
	if xf1 > xf2 {
		xf1, xf2 = xf2, xf1
	}

	x1 := int(math.Round(xf1))
	x2 := int(math.Round(xf2))
	if x1 < 0 {
		x1 = 0
	}
	if x2 > dst.Width() {
		x2 = dst.Width()
	}
	if x1 >= x2 {
		return
	}

	if sw, ok := dst.(SpanWriter); ok {
		sw.FillSpan(x1, x2, y, color)
		return
	}
	for x := x1; x < x2; x++ {
		dst.SetPixel(x, y, color)
	}
}

// StrokePolyline rasterizes an open polyline as a sequence of quads, one
// per segment. Width is in device pixels and is clamped to at least 1 so
// hairlines stay visible.
func (r *Rasterizer) StrokePolyline(dst Surface, points []Point, width float64, color RGBA) {
	if len(points) < 2 {
		return
	}
	if width < 1 {
		width = 1
	}
	for i := 0; i < len(points)-1; i++ {
		r.strokeSegment(dst, points[i], points[i+1], width, color)
	}
}

// strokeSegment fills the quad spanning one thick line segment.
func (r *Rasterizer) strokeSegment(dst Surface, p0, p1 Point, width float64, color RGBA) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 1e-9 {
		return
	}

	// Unit normal, scaled to half the stroke width.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	quad := []Point{
		{X: p0.X + nx, Y: p0.Y + ny},
		{X: p0.X - nx, Y: p0.Y - ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p1.X + nx, Y: p1.Y + ny},
	}
	r.FillPolygon(dst, quad, color)
}
