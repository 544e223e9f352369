package dxf

import (
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fabworks/dxfpreview/internal/logging"
)

// splitTrimmedLines yields the input line by line with surrounding
// whitespace (including any CR from CRLF endings) removed.
func splitTrimmedLines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.SplitSeq(text, "\n") {
			if !yield(strings.TrimSpace(line)) {
				return
			}
		}
	}
}

// scanState tracks the alternating group-code/value rhythm of DXF ASCII.
type scanState int

const (
	awaitingCode scanState = iota
	awaitingValue
)

// Parse extracts the supported entities from raw DXF text.
//
// The scan is a single linear pass: lines before the ENTITIES section
// marker are skipped, ENDSEC ends the stream, and within the section the
// parser alternates between a group-code line and its value line. A group
// code of 0 finalizes the entity under construction and, if the value
// names a supported kind, starts a new one.
//
// Parse never returns an error. Unrecognized lines, unknown entity kinds,
// and unparseable values are skipped; entities with missing fields keep
// their zero defaults. Both CRLF and LF line endings are accepted.
func Parse(text string) []Entity {
	var out []Entity
	var active entityBuilder

	inSection := false
	state := awaitingCode
	code := 0

	flush := func() {
		if active == nil {
			return
		}
		if e := active.build(); e != nil {
			out = append(out, e)
		}
		active = nil
	}

	for line := range splitTrimmedLines(text) {
		if !inSection {
			if line == "ENTITIES" {
				inSection = true
				state = awaitingCode
			}
			continue
		}
		if line == "ENDSEC" {
			break
		}

		switch state {
		case awaitingCode:
			n, ok := parseGroupCode(line)
			if !ok {
				// Not a group code where one was expected; skip it
				// rather than failing the whole file.
				continue
			}
			code = n
			state = awaitingValue

		case awaitingValue:
			state = awaitingCode
			if code != 0 {
				if active != nil {
					active.apply(code, line)
				}
				continue
			}

			// Group code 0: entity boundary. A classic POLYLINE keeps
			// collecting across its VERTEX sub-entities until SEQEND.
			if pb, ok := active.(*polylineBuilder); ok && pb.classic {
				switch line {
				case "VERTEX":
					pb.beginVertex()
					continue
				case "SEQEND":
					flush()
					continue
				}
			}
			flush()
			active = newBuilder(line)
		}
	}
	flush()

	logging.Logger().Debug("dxf: parse complete",
		slog.Int("entities", len(out)),
		slog.Bool("entities_section", inSection))
	return out
}

// newBuilder commits to one entity variant for the given type name.
// Unsupported kinds return nil, which makes the scan ignore all field
// codes until the next group code 0.
func newBuilder(kind string) entityBuilder {
	switch kind {
	case "LINE":
		return &lineBuilder{}
	case "CIRCLE":
		return &circleBuilder{}
	case "ARC":
		return &arcBuilder{e: Arc{EndAngle: 360}}
	case "LWPOLYLINE":
		return &polylineBuilder{}
	case "POLYLINE":
		return &polylineBuilder{classic: true}
	default:
		return nil
	}
}

// entityBuilder accumulates group-code values for one entity variant.
type entityBuilder interface {
	apply(code int, value string)
	build() Entity
}

type lineBuilder struct {
	e Line
}

func (b *lineBuilder) apply(code int, value string) {
	switch code {
	case 8:
		b.e.LayerName = value
	case 10:
		setFloat(&b.e.Start.X, value)
	case 20:
		setFloat(&b.e.Start.Y, value)
	case 11:
		setFloat(&b.e.End.X, value)
	case 21:
		setFloat(&b.e.End.Y, value)
	}
}

func (b *lineBuilder) build() Entity {
	e := b.e
	return &e
}

type circleBuilder struct {
	e Circle
}

func (b *circleBuilder) apply(code int, value string) {
	switch code {
	case 8:
		b.e.LayerName = value
	case 10:
		setFloat(&b.e.Center.X, value)
	case 20:
		setFloat(&b.e.Center.Y, value)
	case 40:
		setFloat(&b.e.Radius, value)
	}
}

func (b *circleBuilder) build() Entity {
	e := b.e
	return &e
}

type arcBuilder struct {
	e Arc
}

func (b *arcBuilder) apply(code int, value string) {
	switch code {
	case 8:
		b.e.LayerName = value
	case 10:
		setFloat(&b.e.Center.X, value)
	case 20:
		setFloat(&b.e.Center.Y, value)
	case 40:
		setFloat(&b.e.Radius, value)
	case 50:
		setFloat(&b.e.StartAngle, value)
	case 51:
		setFloat(&b.e.EndAngle, value)
	}
}

func (b *arcBuilder) build() Entity {
	e := b.e
	return &e
}

// polylineBuilder handles both LWPOLYLINE (vertices inline as 10/20 pairs)
// and the classic R12 POLYLINE, whose vertices arrive as separate VERTEX
// sub-entities terminated by SEQEND.
type polylineBuilder struct {
	e       Polyline
	classic bool

	// A vertex is complete only once both its X (code 10) and Y (code 20)
	// have been seen. An X with no following Y is dropped.
	pendingX float64
	hasX     bool

	// inVertex is set while a classic VERTEX sub-entity is being read, so
	// that its own layer and flags codes do not leak onto the polyline.
	inVertex bool
}

func (b *polylineBuilder) beginVertex() {
	b.inVertex = true
}

func (b *polylineBuilder) apply(code int, value string) {
	switch code {
	case 8:
		if !b.inVertex {
			b.e.LayerName = value
		}
	case 70:
		if b.inVertex {
			return // vertex flags, not the closed bit
		}
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			b.e.Closed = n&1 != 0
		}
	case 10:
		if b.hasX {
			logging.Logger().Debug("dxf: dropping polyline vertex with no Y coordinate")
		}
		b.hasX = false
		if f, ok := parseFloat(value); ok {
			b.pendingX = f
			b.hasX = true
		}
	case 20:
		if !b.hasX {
			return
		}
		if f, ok := parseFloat(value); ok {
			b.e.Points = append(b.e.Points, Point{X: b.pendingX, Y: f})
		}
		b.hasX = false
	}
}

func (b *polylineBuilder) build() Entity {
	if b.hasX {
		logging.Logger().Debug("dxf: dropping polyline vertex with no Y coordinate")
	}
	e := b.e
	return &e
}

// parseGroupCode reports whether a trimmed line is a DXF group code
// (digits only) and returns its value.
func parseGroupCode(line string) (int, bool) {
	if line == "" {
		return 0, false
	}
	for i := 0; i < len(line); i++ {
		if line[i] < '0' || line[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseFloat(value string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		logging.Logger().Warn("dxf: skipping unparseable numeric value",
			slog.String("value", value))
		return 0, false
	}
	return f, true
}

// setFloat assigns a parsed value to dst, leaving the zero default in
// place when the value does not parse.
func setFloat(dst *float64, value string) {
	if f, ok := parseFloat(value); ok {
		*dst = f
	}
}
