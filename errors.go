package dxfpreview

import "errors"

// The pipeline has exactly two user-visible failure modes. Both are
// terminal for the current file until a new file is supplied: there is no
// retry.
var (
	// ErrReadFailed wraps I/O failures while acquiring the file's text.
	// The pipeline never starts when the read fails.
	ErrReadFailed = errors.New("dxfpreview: failed to read file")

	// ErrRenderFailed wraps any panic recovered while painting.
	ErrRenderFailed = errors.New("dxfpreview: could not render preview")
)

// User-facing messages for the two failure modes.
const (
	MsgReadFailed   = "Failed to read file"
	MsgRenderFailed = "Could not render DXF preview"
)

// UserMessage maps a pipeline error to its display string, or "" for
// errors that did not come from this package.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrReadFailed):
		return MsgReadFailed
	case errors.Is(err, ErrRenderFailed):
		return MsgRenderFailed
	default:
		return ""
	}
}
