package dxfpreview

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/fabworks/dxfpreview/dxf"
	"github.com/fabworks/dxfpreview/internal/logging"
)

// bendLayerMarkers are the substrings that classify a layer as carrying
// bend lines rather than cut lines. Matching is case-insensitive and
// re-evaluated per entity: one drawing legitimately mixes both.
var bendLayerMarkers = []string{"bend", "fold", "brake"}

// IsBendLayer reports whether a layer name classifies as a bend layer.
func IsBendLayer(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range bendLayerMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Stroke widths in CSS pixels.
const (
	entityStrokeWidth = 1.5
	gridStrokeWidth   = 1.0
	originArmLength   = 5.0
)

// maxGridLines bounds the grid pass for pathological aspect ratios,
// where the width-derived spacing would cover the other axis with
// sub-pixel lines.
const maxGridLines = 2048

// Renderer paints one preview pass onto a drawing context: background,
// grid, entities, origin marker, and caption, in that order.
type Renderer struct {
	ctx   *Context
	vp    Viewport
	theme Theme
}

// NewRenderer creates a renderer for one pipeline run.
func NewRenderer(ctx *Context, vp Viewport, theme Theme) *Renderer {
	return &Renderer{ctx: ctx, vp: vp, theme: theme}
}

// Paint runs the full paint pass. Any panic raised while painting (for
// example a malformed entity producing non-finite device coordinates) is
// recovered here and converted into ErrRenderFailed; the surface is
// always cleared first, so no cleanup of partial paint is needed.
func (r *Renderer) Paint(entities []dxf.Entity, analysis *Analysis) (err error) {
	defer func() {
		if p := recover(); p != nil {
			logging.Logger().Warn("preview: paint failed", slog.Any("panic", p))
			err = fmt.Errorf("%w: %v", ErrRenderFailed, p)
		}
	}()

	r.ctx.Clear(r.theme.Background)

	if len(entities) == 0 {
		r.ctx.SetColor(r.theme.Label)
		r.ctx.DrawStringCentered("No geometry found", r.ctx.Width()/2, r.ctx.Height()/2)
		return nil
	}

	r.paintGrid()
	r.paintEntities(entities)
	r.paintOrigin()

	if analysis != nil && analysis.HasFlatSize() {
		r.paintCaption(FormatFlatSize(analysis.FlatLength, analysis.FlatWidth))
	}
	return nil
}

// paintGrid draws vertical and horizontal grid lines across the model's
// bounding box at the width-derived spacing.
func (r *Renderer) paintGrid() {
	b := r.vp.Bounds()
	spacing := GridSpacing(b)
	mustFinite("grid spacing", spacing)

	top := r.vp.ToDeviceY(b.MaxY)
	bottom := r.vp.ToDeviceY(b.MinY)
	left := r.vp.ToDeviceX(b.MinX)
	right := r.vp.ToDeviceX(b.MaxX)

	r.ctx.SetColor(r.theme.Grid)
	r.ctx.SetLineWidth(gridStrokeWidth)

	lines := 0
	for x := math.Ceil(b.MinX/spacing) * spacing; x <= b.MaxX && lines < maxGridLines; x += spacing {
		dx := r.vp.ToDeviceX(x)
		r.ctx.DrawLine(dx, top, dx, bottom)
		lines++
	}
	for y := math.Ceil(b.MinY/spacing) * spacing; y <= b.MaxY && lines < maxGridLines; y += spacing {
		dy := r.vp.ToDeviceY(y)
		r.ctx.DrawLine(left, dy, right, dy)
		lines++
	}
	r.ctx.Stroke()
}

// paintEntities strokes every entity, classifying its color per entity
// from the layer name.
func (r *Renderer) paintEntities(entities []dxf.Entity) {
	r.ctx.SetLineWidth(entityStrokeWidth)

	for _, e := range entities {
		color := r.theme.Cut
		if IsBendLayer(e.Layer()) {
			color = r.theme.Bend
		}
		r.ctx.SetColor(color)

		switch e := e.(type) {
		case *dxf.Line:
			r.strokeLine(e)
		case *dxf.Circle:
			r.strokeCircle(e)
		case *dxf.Arc:
			r.strokeArc(e)
		case *dxf.Polyline:
			r.strokePolyline(e)
		}
	}
}

func (r *Renderer) strokeLine(e *dxf.Line) {
	x1 := r.vp.ToDeviceX(e.Start.X)
	y1 := r.vp.ToDeviceY(e.Start.Y)
	x2 := r.vp.ToDeviceX(e.End.X)
	y2 := r.vp.ToDeviceY(e.End.Y)
	mustFinite("line", x1, y1, x2, y2)

	r.ctx.DrawLine(x1, y1, x2, y2)
	r.ctx.Stroke()
}

func (r *Renderer) strokeCircle(e *dxf.Circle) {
	cx := r.vp.ToDeviceX(e.Center.X)
	cy := r.vp.ToDeviceY(e.Center.Y)
	radius := e.Radius * r.vp.Scale
	mustFinite("circle", cx, cy, radius)

	// Zero-radius circles are valid entities with no visible stroke.
	if radius <= 0 {
		return
	}
	r.ctx.DrawCircle(cx, cy, radius)
	r.ctx.Stroke()
}

func (r *Renderer) strokeArc(e *dxf.Arc) {
	cx := r.vp.ToDeviceX(e.Center.X)
	cy := r.vp.ToDeviceY(e.Center.Y)
	radius := e.Radius * r.vp.Scale
	mustFinite("arc", cx, cy, radius, e.StartAngle, e.EndAngle)

	if radius <= 0 {
		return
	}
	// The Y flip reverses the sweep sense, so the device sweep runs from
	// the negated end angle to the negated start angle.
	a1, a2 := ArcDeviceAngles(e.StartAngle, e.EndAngle)
	r.ctx.DrawArc(cx, cy, radius, a1, a2)
	r.ctx.Stroke()
}

func (r *Renderer) strokePolyline(e *dxf.Polyline) {
	if len(e.Points) < 2 {
		return
	}

	for i, v := range e.Points {
		x := r.vp.ToDeviceX(v.X)
		y := r.vp.ToDeviceY(v.Y)
		mustFinite("polyline", x, y)
		if i == 0 {
			r.ctx.MoveTo(x, y)
		} else {
			r.ctx.LineTo(x, y)
		}
	}
	if e.Closed {
		r.ctx.ClosePath()
	}
	r.ctx.Stroke()
}

// paintOrigin draws a small crosshair at the model origin, but only when
// the origin falls within the current bounds.
func (r *Renderer) paintOrigin() {
	if !r.vp.Bounds().ContainsOrigin() {
		return
	}

	ox := r.vp.ToDeviceX(0)
	oy := r.vp.ToDeviceY(0)
	mustFinite("origin", ox, oy)

	r.ctx.SetColor(r.theme.Origin)
	r.ctx.SetLineWidth(gridStrokeWidth)
	r.ctx.DrawLine(ox-originArmLength, oy, ox+originArmLength, oy)
	r.ctx.DrawLine(ox, oy-originArmLength, ox, oy+originArmLength)
	r.ctx.Stroke()
}

// paintCaption draws the flat-size caption centered near the bottom edge.
func (r *Renderer) paintCaption(text string) {
	r.ctx.SetColor(r.theme.Label)
	r.ctx.DrawStringCentered(text, r.ctx.Width()/2, r.ctx.Height()-12)
}

// mustFinite panics when any value is NaN or infinite. The panic is
// recovered at the Paint boundary and surfaced as ErrRenderFailed.
func mustFinite(kind string, vals ...float64) {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("non-finite %s coordinate", kind))
		}
	}
}
