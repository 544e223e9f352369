package dxfpreview

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fabworks/dxfpreview/dxf"
	"github.com/fabworks/dxfpreview/internal/logging"
)

// RenderPreview parses DXF text and paints the flat-pattern preview,
// returning the finished pixmap. Parsing never fails: malformed input
// degrades to fewer entities, and a file with no usable geometry renders
// as the "No geometry found" placeholder. The only error returned is
// ErrRenderFailed, wrapping a panic recovered during painting.
func RenderPreview(text string, opts ...PreviewOption) (*Pixmap, error) {
	o := defaultPreviewOptions()
	for _, opt := range opts {
		opt(&o)
	}

	entities := dxf.Parse(text)

	var bounds Bounds
	if o.analysis != nil {
		bounds = o.analysis.Bounds()
		if derived := FromEntities(entities); bounds != derived {
			logging.Logger().Debug("preview: analysis bounds differ from entity bounds",
				slog.Any("analysis", bounds),
				slog.Any("derived", derived))
		}
	} else {
		bounds = FromEntities(entities)
	}

	vp := NewViewport(o.width, o.height, o.padding, bounds)
	logging.Logger().Debug("preview: rendering",
		slog.Int("entities", len(entities)),
		slog.Float64("scale", vp.Scale))

	ctx := NewContext(o.width, o.height, o.pixelRatio)
	r := NewRenderer(ctx, vp, o.theme)
	if err := r.Paint(entities, o.analysis); err != nil {
		return nil, err
	}
	return ctx.Pixmap(), nil
}

// RenderFile reads a DXF file from disk, decodes it per its declared
// $DWGCODEPAGE, and renders the preview. Read failures wrap
// ErrReadFailed and abort before the pipeline starts.
func RenderFile(filename string, opts ...PreviewOption) (*Pixmap, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return RenderPreview(dxf.DecodeText(raw), opts...)
}
