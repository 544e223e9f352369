package dxfpreview

import (
	"math"

	"github.com/fabworks/dxfpreview/dxf"
)

// Bounds is an axis-aligned bounding box in raw model coordinates.
// Rendering padding is never folded into bounds; it belongs to the
// viewport transform.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns the raw model-space width, which may be zero.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the raw model-space height, which may be zero.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// SafeWidth returns the width guarded for use as a divisor: degenerate
// spans (zero, negative, or non-finite) become 1.
func (b Bounds) SafeWidth() float64 {
	w := b.Width()
	if !(w > 0) || math.IsInf(w, 0) {
		return 1
	}
	return w
}

// SafeHeight returns the height guarded for use as a divisor: degenerate
// spans (zero, negative, or non-finite) become 1.
func (b Bounds) SafeHeight() float64 {
	h := b.Height()
	if !(h > 0) || math.IsInf(h, 0) {
		return 1
	}
	return h
}

// ContainsOrigin reports whether the model origin falls inside the box.
// The renderer only draws the origin crosshair when it does.
func (b Bounds) ContainsOrigin() bool {
	return b.MinX <= 0 && 0 <= b.MaxX && b.MinY <= 0 && 0 <= b.MaxY
}

// expand grows the box to include a point.
func (b *Bounds) expand(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MaxX = math.Max(b.MaxX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxY = math.Max(b.MaxY, y)
}

// FromEntities computes the bounding box of an entity sequence.
//
// Lines contribute both endpoints and polylines every vertex. Circles and
// arcs both contribute center ± radius on each axis: using the full
// circle's box even for a partial arc is a deliberate conservative
// overestimate. An empty or non-contributing sequence returns the zero
// Bounds, whose SafeWidth/SafeHeight guard downstream division.
func FromEntities(entities []dxf.Entity) Bounds {
	b := Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	contributed := false

	for _, e := range entities {
		switch e := e.(type) {
		case *dxf.Line:
			b.expand(e.Start.X, e.Start.Y)
			b.expand(e.End.X, e.End.Y)
			contributed = true
		case *dxf.Circle:
			b.expand(e.Center.X-e.Radius, e.Center.Y-e.Radius)
			b.expand(e.Center.X+e.Radius, e.Center.Y+e.Radius)
			contributed = true
		case *dxf.Arc:
			b.expand(e.Center.X-e.Radius, e.Center.Y-e.Radius)
			b.expand(e.Center.X+e.Radius, e.Center.Y+e.Radius)
			contributed = true
		case *dxf.Polyline:
			for _, v := range e.Points {
				b.expand(v.X, v.Y)
				contributed = true
			}
		}
	}

	if !contributed {
		return Bounds{}
	}
	return b
}
