package dxfpreview

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"six digit", "#ff0000", RGBA{R: 1, A: 1}},
		{"no hash", "00ff00", RGBA{G: 1, A: 1}},
		{"three digit", "#fff", RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"eight digit with alpha", "#0000ff80", RGBA{B: 1, A: 128.0 / 255}},
		{"invalid falls back to black", "#zz", RGBA{A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if math.Abs(got.R-tt.want.R) > 1e-9 ||
				math.Abs(got.G-tt.want.G) > 1e-9 ||
				math.Abs(got.B-tt.want.B) > 1e-9 ||
				math.Abs(got.A-tt.want.A) > 1e-9 {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	orig := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	got := FromColor(orig.Color())

	const eps = 1.0 / 255
	if math.Abs(got.R-orig.R) > eps ||
		math.Abs(got.G-orig.G) > eps ||
		math.Abs(got.B-orig.B) > eps ||
		math.Abs(got.A-orig.A) > eps {
		t.Errorf("round trip = %+v, want ~%+v", got, orig)
	}
}

func TestDefaultThemeColors(t *testing.T) {
	theme := DefaultTheme()
	colors := []RGBA{
		theme.Background, theme.Grid, theme.Cut,
		theme.Bend, theme.Origin, theme.Label,
	}
	for i, c := range colors {
		if c.A != 1 {
			t.Errorf("theme color %d is not opaque: %+v", i, c)
		}
	}
	if theme.Cut == theme.Bend {
		t.Errorf("cut and bend colors must differ")
	}
}
