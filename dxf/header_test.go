package dxf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseHeader(t *testing.T) {
	text := doc(
		"0", "SECTION",
		"2", "HEADER",
		"HEADER",
		"9", "$ACADVER",
		"1", "AC1009",
		"9", "$EXTMIN",
		"10", "-5",
		"20", "0",
		"9", "$EXTMAX",
		"10", "105.5",
		"20", "42",
		"9", "$DWGCODEPAGE",
		"3", "ANSI_1252",
		"ENDSEC",
	)

	got := ParseHeader(text)
	want := Header{
		ExtMin:     Point{X: -5, Y: 0},
		ExtMax:     Point{X: 105.5, Y: 42},
		HasExtents: true,
		CodePage:   "ANSI_1252",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseHeader() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHeaderMissing(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"no header section", doc("ENTITIES", "0", "LINE", "ENDSEC")},
		{"extmin only", doc(
			"HEADER",
			"9", "$EXTMIN",
			"10", "0",
			"20", "0",
			"ENDSEC",
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHeader(tt.text)
			if got.HasExtents {
				t.Errorf("ParseHeader().HasExtents = true, want false")
			}
		})
	}
}

func TestParseHeaderStopsAtEndsec(t *testing.T) {
	text := doc(
		"HEADER",
		"ENDSEC",
		"9", "$DWGCODEPAGE",
		"3", "ANSI_1251",
	)

	got := ParseHeader(text)
	if got.CodePage != "" {
		t.Errorf("ParseHeader().CodePage = %q, want empty", got.CodePage)
	}
}
