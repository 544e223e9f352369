package dxf

// Point is a 2D point in model space (DXF drawing units, Y up).
type Point struct {
	X, Y float64
}

// Entity is one parsed DXF entity. Exactly four variants exist:
// Line, Circle, Arc, and Polyline.
type Entity interface {
	// Layer returns the entity's layer name, or "" if none was set.
	// Layers drive render-time color classification only; they are
	// never used for filtering or validation.
	Layer() string

	isEntity()
}

// Line is a straight segment between two points.
type Line struct {
	Start     Point
	End       Point
	LayerName string
}

// Circle is a full circle.
type Circle struct {
	Center    Point
	Radius    float64
	LayerName string
}

// Arc is a circular arc swept counter-clockwise from StartAngle to
// EndAngle, both in degrees in model space.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	LayerName  string
}

// Polyline is an open or closed sequence of vertices.
type Polyline struct {
	Points    []Point
	Closed    bool
	LayerName string
}

func (l *Line) Layer() string     { return l.LayerName }
func (c *Circle) Layer() string   { return c.LayerName }
func (a *Arc) Layer() string      { return a.LayerName }
func (p *Polyline) Layer() string { return p.LayerName }

func (*Line) isEntity()     {}
func (*Circle) isEntity()   {}
func (*Arc) isEntity()      {}
func (*Polyline) isEntity() {}
