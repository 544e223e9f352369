package dxfpreview

import (
	"log/slog"

	"github.com/fabworks/dxfpreview/internal/logging"
)

// SetLogger configures the logger for dxfpreview and its sub-packages.
// By default the package produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging again.
//
// Log levels used:
//   - [slog.LevelDebug]: pipeline diagnostics (entity counts, chosen scale)
//   - [slog.LevelWarn]: non-fatal issues (skipped values, recovered paints)
//
// Example:
//
//	dxfpreview.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger. The dxf sub-package calls this
// through internal/logging to share the same configuration.
func Logger() *slog.Logger {
	return logging.Logger()
}
