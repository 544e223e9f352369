package dxfpreview

// Default canvas geometry for the small fixed preview, in CSS pixels.
// The expanded overlay passes its own size via WithCanvasSize.
const (
	DefaultWidth   = 400.0
	DefaultHeight  = 250.0
	DefaultPadding = 20.0
)

// PreviewOption configures one preview render.
//
// Example:
//
//	pm, err := dxfpreview.RenderPreview(text,
//		dxfpreview.WithCanvasSize(1280, 800),
//		dxfpreview.WithPixelRatio(2),
//	)
type PreviewOption func(*previewOptions)

// previewOptions holds the configuration for one pipeline run.
type previewOptions struct {
	width      float64
	height     float64
	padding    float64
	pixelRatio float64
	analysis   *Analysis
	theme      Theme
}

// defaultPreviewOptions returns the fixed small-preview defaults.
func defaultPreviewOptions() previewOptions {
	return previewOptions{
		width:      DefaultWidth,
		height:     DefaultHeight,
		padding:    DefaultPadding,
		pixelRatio: 1,
		theme:      DefaultTheme(),
	}
}

// WithCanvasSize sets the canvas size in CSS pixels, e.g. for the
// expanded full-viewport overlay.
func WithCanvasSize(width, height float64) PreviewOption {
	return func(o *previewOptions) {
		o.width = width
		o.height = height
	}
}

// WithPadding sets the padding between the drawing and the canvas edge,
// in CSS pixels.
func WithPadding(padding float64) PreviewOption {
	return func(o *previewOptions) {
		o.padding = padding
	}
}

// WithPixelRatio sets the device pixel ratio used to size the backing
// pixmap. Painting stays in CSS pixels regardless.
func WithPixelRatio(ratio float64) PreviewOption {
	return func(o *previewOptions) {
		o.pixelRatio = ratio
	}
}

// WithAnalysis supplies the trusted upstream analysis object. Its bounds
// override entity-derived bounds entirely and its flat dimensions are
// drawn as a caption.
func WithAnalysis(a *Analysis) PreviewOption {
	return func(o *previewOptions) {
		o.analysis = a
	}
}

// WithTheme overrides the preview palette.
func WithTheme(t Theme) PreviewOption {
	return func(o *previewOptions) {
		o.theme = t
	}
}
