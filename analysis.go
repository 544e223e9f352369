package dxfpreview

import "fmt"

// Analysis is the optional, trusted result of the upstream
// geometry-analysis service. When supplied, its bounding box overrides
// entity-derived bounds entirely, and its flat dimensions are shown as a
// caption under the preview.
type Analysis struct {
	MinX       float64 `json:"min_x"`
	MaxX       float64 `json:"max_x"`
	MinY       float64 `json:"min_y"`
	MaxY       float64 `json:"max_y"`
	FlatLength float64 `json:"flat_length"`
	FlatWidth  float64 `json:"flat_width"`
}

// Bounds returns the analysis bounding box verbatim.
func (a *Analysis) Bounds() Bounds {
	return Bounds{MinX: a.MinX, MaxX: a.MaxX, MinY: a.MinY, MaxY: a.MaxY}
}

// HasFlatSize reports whether the analysis carries flat dimensions worth
// captioning.
func (a *Analysis) HasFlatSize() bool {
	return a.FlatLength > 0 && a.FlatWidth > 0
}

// FormatFlatSize formats flat-pattern dimensions for the preview caption,
// two decimal places with inch marks, e.g. `12.34" × 5.67"`.
func FormatFlatSize(length, width float64) string {
	return fmt.Sprintf("%.2f\" × %.2f\"", length, width)
}
