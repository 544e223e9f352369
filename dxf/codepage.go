package dxf

import (
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/fabworks/dxfpreview/internal/logging"
)

// codePages maps $DWGCODEPAGE values to their character maps. R12-era
// exporters write layer names and text in the drawing's Windows code page
// rather than UTF-8.
var codePages = map[string]*charmap.Charmap{
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
}

// DecodeText converts raw DXF bytes to a UTF-8 string, honoring the
// file's own $DWGCODEPAGE declaration when it names a known Windows code
// page. Unknown or absent declarations leave the bytes untouched, which
// keeps plain ASCII and already-UTF-8 files working.
func DecodeText(raw []byte) string {
	// The header variables are ASCII, so sniffing them from the raw
	// bytes is safe regardless of the code page in effect.
	h := ParseHeader(string(raw))
	cm, ok := codePages[strings.ToUpper(strings.TrimSpace(h.CodePage))]
	if !ok {
		return string(raw)
	}

	decoded, _, err := transform.Bytes(cm.NewDecoder(), raw)
	if err != nil {
		logging.Logger().Warn("dxf: code page decode failed, using raw bytes",
			slog.String("codepage", h.CodePage))
		return string(raw)
	}
	return string(decoded)
}
