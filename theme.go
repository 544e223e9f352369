package dxfpreview

// Theme collects the preview's paint colors. Entity strokes pick between
// Cut and Bend per entity based on layer classification; everything else
// is fixed.
type Theme struct {
	Background RGBA
	Grid       RGBA
	Cut        RGBA
	Bend       RGBA
	Origin     RGBA
	Label      RGBA
}

// DefaultTheme returns the stock dark preview palette.
func DefaultTheme() Theme {
	return Theme{
		Background: Hex("#1e293b"),
		Grid:       Hex("#334155"),
		Cut:        Hex("#38bdf8"),
		Bend:       Hex("#f59e0b"),
		Origin:     Hex("#f87171"),
		Label:      Hex("#94a3b8"),
	}
}
