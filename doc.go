// Package dxfpreview renders 2D flat-pattern previews of sheet-metal DXF
// files.
//
// # Overview
//
// The package implements one synchronous pipeline: parse the DXF text into
// entities, compute (or accept) a model-space bounding box, build a
// model-to-device viewport transform, and paint the result onto an
// offscreen pixel surface. It exists to let a quoting workflow visually
// validate an uploaded flat pattern before any pricing work happens.
//
// # Quick Start
//
//	raw, err := os.ReadFile("bracket.dxf")
//	if err != nil {
//		// surface dxfpreview.MsgReadFailed to the user
//	}
//	pm, err := dxfpreview.RenderPreview(dxf.DecodeText(raw))
//	if err != nil {
//		// surface dxfpreview.MsgRenderFailed to the user
//	}
//	pm.SavePNG("preview.png")
//
// # Architecture
//
//   - Public API: RenderPreview, Viewport, Bounds, Context, Pixmap, Theme
//   - Subpackage dxf: the lenient ENTITIES-section parser
//   - Internal: raster (scanline rasterization)
//
// # Coordinate Systems
//
// DXF model space is Y-up; the pixel surface is Y-down. The viewport
// transform flips Y exactly once, and every consumer of the transform,
// arc angle conversion included, relies on that single flip. Canvas
// dimensions and
// padding are in CSS pixels; the backing pixmap is scaled by the device
// pixel ratio and the drawing context's matrix is pre-scaled to match, so
// painting code never needs to know the ratio.
package dxfpreview
