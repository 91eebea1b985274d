package design_test

import (
	"math"
	"testing"

	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

func TestSnap(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"already on grid", 96, 96},
		{"rounds down", 99, 96},
		{"rounds up", 101, 104},
		{"midpoint rounds up", 100, 104},
		{"zero", 0, 0},
		{"negative rounds toward nearest", -99, -96},
		{"negative on grid", -104, -104},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := design.Snap(tt.in); got != tt.want {
				t.Errorf("Snap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSnapIdempotent(t *testing.T) {
	for _, v := range []float64{0, 13, 97.3, 1919, -42.6, 517} {
		once := design.Snap(v)
		twice := design.Snap(once)
		if once != twice {
			t.Errorf("Snap not idempotent for %v: %v then %v", v, once, twice)
		}
		if math.Mod(once, design.GridSize) != 0 {
			t.Errorf("Snap(%v) = %v is off-grid", v, once)
		}
	}
}

func TestSnapToNonPositiveUnit(t *testing.T) {
	if got := design.SnapTo(37, 0); got != 37 {
		t.Errorf("SnapTo(37, 0) = %v, want 37", got)
	}
	if got := design.SnapTo(37, -8); got != 37 {
		t.Errorf("SnapTo(37, -8) = %v, want 37", got)
	}
}

func TestViewportCenter(t *testing.T) {
	x, y := design.ViewportCenter()
	if x != 960 || y != 540 {
		t.Errorf("ViewportCenter() = (%v, %v), want (960, 540)", x, y)
	}
}

func TestNamedColor(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"canonical", "blue", design.Blue, true},
		{"uppercase", "RED", design.Red, true},
		{"synonym navy", "navy", design.Blue, true},
		{"synonym grey", "grey", design.Gray, true},
		{"synonym magenta", "magenta", design.Pink, true},
		{"unknown", "chartreuse", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := design.NamedColor(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NamedColor(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		r, g, b int
		wantErr bool
	}{
		{"six digit", "#3B82F6", 0x3B, 0x82, 0xF6, false},
		{"three digit", "#F00", 0xFF, 0, 0, false},
		{"lowercase", "#ef4444", 0xEF, 0x44, 0x44, false},
		{"missing hash", "3B82F6", 0x3B, 0x82, 0xF6, false},
		{"garbage", "#xyz", 0, 0, 0, true},
		{"wrong length", "#3B82F", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, err := design.ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && (r != tt.r || g != tt.g || b != tt.b) {
				t.Errorf("ParseHex(%q) = (%d, %d, %d), want (%d, %d, %d)",
					tt.in, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	// Black on white is the maximum possible contrast.
	if got := design.ContrastRatio(design.Black, design.White); math.Abs(got-21) > 0.1 {
		t.Errorf("black on white = %v, want ~21", got)
	}

	// Ratio is symmetric.
	a := design.ContrastRatio(design.Blue, design.White)
	b := design.ContrastRatio(design.White, design.Blue)
	if math.Abs(a-b) > 0.001 {
		t.Errorf("contrast not symmetric: %v vs %v", a, b)
	}
}

func TestReadable(t *testing.T) {
	tests := []struct {
		name string
		fg   string
		bg   string
		want bool
	}{
		{"dark text on white", design.TextDark, design.White, true},
		{"white on dark text", design.White, design.TextDark, true},
		{"muted gray on white fails", design.TextMuted, design.White, false},
		{"white on dark nav", design.White, design.TextDark, true},
		{"yellow on white fails", design.Yellow, design.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := design.Readable(tt.fg, tt.bg); got != tt.want {
				t.Errorf("Readable(%s, %s) = %v, want %v", tt.fg, tt.bg, got, tt.want)
			}
		})
	}
}
