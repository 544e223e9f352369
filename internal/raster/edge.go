package raster

// Edge is a non-horizontal line segment prepared for scanline conversion.
type Edge struct {
	x0, y0 float64 // top endpoint (y0 < y1 after normalization)
	x1, y1 float64
	dx     float64 // dx/dy slope
	dir    int     // winding direction before normalization: +1 or -1
}

// NewEdge creates an edge from two points, normalized so y0 < y1 while
// remembering the original direction for the non-zero winding rule.
func NewEdge(p0, p1 Point) Edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	dy := p1.Y - p0.Y
	var dx float64
	if dy != 0 {
		dx = (p1.X - p0.X) / dy
	}

	return Edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dx: dx, dir: dir}
}

// xAt returns the edge's x coordinate at the given y.
func (e *Edge) xAt(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// activeEdge is an edge crossing the current scanline.
type activeEdge struct {
	x   float64
	dir int
}

// activeEdgeTable collects the edges crossing one scanline. It is reused
// across scanlines to avoid per-line allocation.
type activeEdgeTable struct {
	edges []activeEdge
}

func newActiveEdgeTable() *activeEdgeTable {
	return &activeEdgeTable{edges: make([]activeEdge, 0, 32)}
}

func (aet *activeEdgeTable) clear() {
	aet.edges = aet.edges[:0]
}

// addAt inserts an edge with its x position computed for the scanline y.
func (aet *activeEdgeTable) addAt(e Edge, y float64) {
	aet.edges = append(aet.edges, activeEdge{x: e.xAt(y), dir: e.dir})
}

// sort orders the active edges by x. Insertion sort: the table is small
// and nearly sorted between adjacent scanlines.
func (aet *activeEdgeTable) sort() {
	for i := 1; i < len(aet.edges); i++ {
		key := aet.edges[i]
		j := i - 1
		for j >= 0 && aet.edges[j].x > key.x {
			aet.edges[j+1] = aet.edges[j]
			j--
		}
		aet.edges[j+1] = key
	}
}
