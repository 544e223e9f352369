package dxfpreview

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fabworks/dxfpreview/dxf"
)

func TestFromEntities(t *testing.T) {
	tests := []struct {
		name     string
		entities []dxf.Entity
		want     Bounds
	}{
		{
			name: "single line",
			entities: []dxf.Entity{
				&dxf.Line{Start: dxf.Point{X: 0, Y: 0}, End: dxf.Point{X: 10, Y: 5}},
			},
			want: Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 5},
		},
		{
			name: "circle contributes center plus minus radius",
			entities: []dxf.Entity{
				&dxf.Circle{Center: dxf.Point{X: 0, Y: 0}, Radius: 5},
			},
			want: Bounds{MinX: -5, MaxX: 5, MinY: -5, MaxY: 5},
		},
		{
			name: "arc uses full circle box",
			entities: []dxf.Entity{
				&dxf.Arc{Center: dxf.Point{X: 0, Y: 0}, Radius: 5, StartAngle: 0, EndAngle: 90},
			},
			want: Bounds{MinX: -5, MaxX: 5, MinY: -5, MaxY: 5},
		},
		{
			name: "polyline contributes every vertex",
			entities: []dxf.Entity{
				&dxf.Polyline{Points: []dxf.Point{{X: -2, Y: 1}, {X: 3, Y: -4}, {X: 0, Y: 7}}},
			},
			want: Bounds{MinX: -2, MaxX: 3, MinY: -4, MaxY: 7},
		},
		{
			name: "mixed entities accumulate",
			entities: []dxf.Entity{
				&dxf.Line{Start: dxf.Point{X: 0, Y: 0}, End: dxf.Point{X: 100, Y: 0}},
				&dxf.Circle{Center: dxf.Point{X: 50, Y: 25}, Radius: 10},
			},
			want: Bounds{MinX: 0, MaxX: 100, MinY: -10, MaxY: 35},
		},
		{
			name:     "empty sequence",
			entities: nil,
			want:     Bounds{},
		},
		{
			name: "only empty polylines",
			entities: []dxf.Entity{
				&dxf.Polyline{},
			},
			want: Bounds{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromEntities(tt.entities)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromEntities() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBoundsSafeSpans(t *testing.T) {
	tests := []struct {
		name       string
		b          Bounds
		wantWidth  float64
		wantHeight float64
	}{
		{"normal", Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 5}, 10, 5},
		{"zero bounds", Bounds{}, 1, 1},
		{"degenerate height", Bounds{MinX: 0, MaxX: 10, MinY: 3, MaxY: 3}, 10, 1},
		{"inverted", Bounds{MinX: 5, MaxX: -5, MinY: 5, MaxY: -5}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.SafeWidth(); got != tt.wantWidth {
				t.Errorf("SafeWidth() = %v, want %v", got, tt.wantWidth)
			}
			if got := tt.b.SafeHeight(); got != tt.wantHeight {
				t.Errorf("SafeHeight() = %v, want %v", got, tt.wantHeight)
			}
		})
	}
}

func TestBoundsContainsOrigin(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		want bool
	}{
		{"straddles origin", Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}, true},
		{"origin on edge", Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 5}, true},
		{"entirely positive", Bounds{MinX: 1, MaxX: 10, MinY: 1, MaxY: 5}, false},
		{"entirely negative", Bounds{MinX: -10, MaxX: -1, MinY: -5, MaxY: -1}, false},
		{"x only", Bounds{MinX: -1, MaxX: 1, MinY: 2, MaxY: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.ContainsOrigin(); got != tt.want {
				t.Errorf("ContainsOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}
