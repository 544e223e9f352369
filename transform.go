package dxfpreview

import "math"

// Viewport maps raw model coordinates to CSS-pixel device coordinates.
// It applies one uniform scale (preserving aspect ratio and letterboxing
// the shorter axis) and the single Y flip between DXF's Y-up model space
// and the surface's Y-down pixel space.
type Viewport struct {
	Scale float64

	padding      float64
	canvasHeight float64
	bounds       Bounds
}

// NewViewport builds the transform for a canvas of the given CSS-pixel
// size with a fixed padding on every side. Degenerate bounds are guarded
// by SafeWidth/SafeHeight, so a single point or an empty drawing still
// produces a finite scale.
func NewViewport(canvasWidth, canvasHeight, padding float64, b Bounds) Viewport {
	scale := math.Min(
		(canvasWidth-2*padding)/b.SafeWidth(),
		(canvasHeight-2*padding)/b.SafeHeight(),
	)
	return Viewport{
		Scale:        scale,
		padding:      padding,
		canvasHeight: canvasHeight,
		bounds:       b,
	}
}

// ToDeviceX maps a model X coordinate to CSS pixels.
func (v Viewport) ToDeviceX(x float64) float64 {
	return v.padding + (x-v.bounds.MinX)*v.Scale
}

// ToDeviceY maps a model Y coordinate to CSS pixels. Y is flipped: DXF
// model space is Y-up while pixel space is Y-down.
func (v Viewport) ToDeviceY(y float64) float64 {
	return v.canvasHeight - v.padding - (y-v.bounds.MinY)*v.Scale
}

// Bounds returns the model-space box the viewport was built from.
func (v Viewport) Bounds() Bounds {
	return v.bounds
}

// GridSpacing returns the model-space grid step for a bounding box: the
// largest power of ten such that roughly five grid lines span the model
// width.
func GridSpacing(b Bounds) float64 {
	return math.Pow(10, math.Floor(math.Log10(b.SafeWidth()/5)))
}

// ArcDeviceAngles converts a DXF arc's start/end angles (degrees,
// counter-clockwise in Y-up model space) to the radian angle pair to
// sweep in Y-down device space. The flip reverses the sweep sense, so
// the angles are negated and swapped: the device sweep starts at the
// model end angle and ends at the model start angle.
func ArcDeviceAngles(startDeg, endDeg float64) (a1, a2 float64) {
	a1 = -endDeg * math.Pi / 180
	a2 = -startDeg * math.Pi / 180
	return a1, a2
}
