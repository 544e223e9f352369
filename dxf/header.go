package dxf

// Header carries the few HEADER-section variables the preview pipeline
// cares about. All fields keep their zero values when the file has no
// HEADER section.
type Header struct {
	// ExtMin and ExtMax are the drawing extents ($EXTMIN/$EXTMAX), valid
	// only when HasExtents is true. They are the exporter's own claim
	// about the drawing's bounding box and may be trusted by callers the
	// same way an external analysis box is.
	ExtMin     Point
	ExtMax     Point
	HasExtents bool

	// CodePage is the raw $DWGCODEPAGE value, e.g. "ANSI_1252".
	CodePage string
}

// ParseHeader scans the HEADER section for $EXTMIN, $EXTMAX, and
// $DWGCODEPAGE. Like Parse it never fails: a missing section or malformed
// variables simply leave the corresponding fields at their zero values.
func ParseHeader(text string) Header {
	var h Header
	var hasMin, hasMax bool

	inSection := false
	state := awaitingCode
	code := 0
	variable := ""

	for line := range splitTrimmedLines(text) {
		if !inSection {
			if line == "HEADER" {
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
				continue
			}
			code = n
			state = awaitingValue

		case awaitingValue:
			state = awaitingCode
			switch code {
			case 9:
				variable = line
			case 3:
				if variable == "$DWGCODEPAGE" {
					h.CodePage = line
				}
			case 10:
				switch variable {
				case "$EXTMIN":
					setFloat(&h.ExtMin.X, line)
					hasMin = true
				case "$EXTMAX":
					setFloat(&h.ExtMax.X, line)
					hasMax = true
				}
			case 20:
				switch variable {
				case "$EXTMIN":
					setFloat(&h.ExtMin.Y, line)
				case "$EXTMAX":
					setFloat(&h.ExtMax.Y, line)
				}
			}
		}
	}

	h.HasExtents = hasMin && hasMax
	return h
}
