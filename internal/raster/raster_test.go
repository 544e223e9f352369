package raster

import "testing"

// testSurface is a minimal Surface without the SpanWriter fast path, so
// tests exercise the per-pixel fallback.
type testSurface struct {
	w, h int
	set  map[[2]int]RGBA
}

func newTestSurface(w, h int) *testSurface {
	return &testSurface{w: w, h: h, set: make(map[[2]int]RGBA)}
}

func (s *testSurface) Width() int  { return s.w }
func (s *testSurface) Height() int { return s.h }

func (s *testSurface) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.set[[2]int{x, y}] = c
}

func (s *testSurface) painted(x, y int) bool {
	_, ok := s.set[[2]int{x, y}]
	return ok
}

var red = RGBA{R: 1, A: 1}

func TestFillPolygonRectangle(t *testing.T) {
	s := newTestSurface(20, 20)
	r := NewRasterizer(20, 20)

	r.FillPolygon(s, []Point{{2, 2}, {12, 2}, {12, 8}, {2, 8}}, red)

	if !s.painted(5, 5) {
		t.Errorf("interior pixel (5,5) not painted")
	}
	if !s.painted(2, 2) {
		t.Errorf("top-left corner pixel not painted")
	}
	if s.painted(15, 5) {
		t.Errorf("pixel right of the rectangle painted")
	}
	if s.painted(5, 12) {
		t.Errorf("pixel below the rectangle painted")
	}
}

func TestFillPolygonTriangle(t *testing.T) {
	s := newTestSurface(20, 20)
	r := NewRasterizer(20, 20)

	r.FillPolygon(s, []Point{{0, 0}, {10, 0}, {0, 10}}, red)

	if !s.painted(2, 2) {
		t.Errorf("pixel inside the triangle not painted")
	}
	if s.painted(9, 9) {
		t.Errorf("pixel outside the hypotenuse painted")
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	s := newTestSurface(20, 20)
	r := NewRasterizer(20, 20)

	r.FillPolygon(s, []Point{{1, 1}, {5, 5}}, red)
	r.FillPolygon(s, nil, red)
	// All edges horizontal: nothing to scan.
	r.FillPolygon(s, []Point{{1, 3}, {5, 3}, {9, 3}}, red)

	if len(s.set) != 0 {
		t.Errorf("degenerate polygons painted %d pixels", len(s.set))
	}
}

func TestFillPolygonNonZeroWinding(t *testing.T) {
	s := newTestSurface(30, 30)
	r := NewRasterizer(30, 30)

	// Two nested same-direction squares as one self-overlapping polygon
	// keep a non-zero winding inside both, so the hole is filled too.
	pts := []Point{
		{2, 2}, {22, 2}, {22, 22}, {2, 22}, {2, 2},
		{8, 8}, {16, 8}, {16, 16}, {8, 16}, {8, 8},
	}
	r.FillPolygon(s, pts, red)

	if !s.painted(12, 12) {
		t.Errorf("inner region not painted under non-zero winding")
	}
	if !s.painted(4, 12) {
		t.Errorf("outer ring not painted")
	}
}

func TestFillPolygonClipped(t *testing.T) {
	s := newTestSurface(10, 10)
	r := NewRasterizer(10, 10)

	r.FillPolygon(s, []Point{{-5, -5}, {15, -5}, {15, 15}, {-5, 15}}, red)

	if !s.painted(0, 0) || !s.painted(9, 9) {
		t.Errorf("polygon spanning the surface did not cover its corners")
	}
	for xy := range s.set {
		if xy[0] < 0 || xy[0] >= 10 || xy[1] < 0 || xy[1] >= 10 {
			t.Fatalf("painted out-of-bounds pixel %v", xy)
		}
	}
}

func TestStrokePolyline(t *testing.T) {
	s := newTestSurface(30, 30)
	r := NewRasterizer(30, 30)

	r.StrokePolyline(s, []Point{{2, 15}, {28, 15}}, 3, red)

	if !s.painted(15, 15) {
		t.Errorf("stroke center line not painted")
	}
	if !s.painted(15, 14) || !s.painted(15, 16) {
		t.Errorf("stroke width 3 did not cover adjacent rows")
	}
	if s.painted(15, 10) {
		t.Errorf("stroke bled far outside its width")
	}
}

func TestStrokePolylineHairlineMinWidth(t *testing.T) {
	s := newTestSurface(30, 30)
	r := NewRasterizer(30, 30)

	// Sub-pixel widths clamp to 1 so hairlines stay visible.
	r.StrokePolyline(s, []Point{{2, 10}, {28, 10}}, 0.1, red)

	if len(s.set) == 0 {
		t.Errorf("hairline stroke painted nothing")
	}
}

func TestStrokePolylineDegenerate(t *testing.T) {
	s := newTestSurface(30, 30)
	r := NewRasterizer(30, 30)

	r.StrokePolyline(s, []Point{{5, 5}}, 2, red)
	r.StrokePolyline(s, nil, 2, red)
	// Coincident points make a zero-length segment.
	r.StrokePolyline(s, []Point{{5, 5}, {5, 5}}, 2, red)

	if len(s.set) != 0 {
		t.Errorf("degenerate polylines painted %d pixels", len(s.set))
	}
}

func TestStrokePolylineMultiSegment(t *testing.T) {
	s := newTestSurface(40, 40)
	r := NewRasterizer(40, 40)

	r.StrokePolyline(s, []Point{{5, 35}, {5, 5}, {35, 5}}, 2, red)

	if !s.painted(5, 20) {
		t.Errorf("vertical segment not painted")
	}
	if !s.painted(20, 5) {
		t.Errorf("horizontal segment not painted")
	}
	if s.painted(20, 20) {
		t.Errorf("painted far from both segments")
	}
}
