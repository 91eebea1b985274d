package design

import (
	"fmt"
	"math"
	"strings"
)

// Canonical palette entries. Named colors in user text resolve to these
// hexes; recolor fixes fall back to TextDark.
const (
	Red    = "#EF4444"
	Orange = "#F97316"
	Yellow = "#EAB308"
	Green  = "#22C55E"
	Blue   = "#3B82F6"
	Purple = "#A855F7"
	Pink   = "#EC4899"
	Gray   = "#6B7280"
	White  = "#FFFFFF"
	Black  = "#000000"

	// TextDark is the high-contrast default text color.
	TextDark = "#111827"
	// TextMuted fails AA contrast on white; used only as a deliberate
	// low-emphasis tone.
	TextMuted = "#9CA3AF"
)

// Palette maps color names (and common synonyms) to canonical hex values.
var Palette = map[string]string{
	"red":     Red,
	"orange":  Orange,
	"yellow":  Yellow,
	"gold":    Yellow,
	"green":   Green,
	"blue":    Blue,
	"navy":    Blue,
	"purple":  Purple,
	"violet":  Purple,
	"pink":    Pink,
	"magenta": Pink,
	"gray":    Gray,
	"grey":    Gray,
	"white":   White,
	"black":   Black,
}

// NamedColor resolves a color name to its canonical hex value.
func NamedColor(name string) (string, bool) {
	hex, ok := Palette[strings.ToLower(name)]
	return hex, ok
}

// ParseHex decodes a #RGB or #RRGGBB color into 0–255 channels.
func ParseHex(hex string) (r, g, b int, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(s) {
	case 3:
		s = fmt.Sprintf("%c%c%c%c%c%c", s[0], s[0], s[1], s[1], s[2], s[2])
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("invalid hex color: %q", hex)
	}

	var rv, gv, bv int
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color: %q", hex)
	}
	return rv, gv, bv, nil
}

// Luminance computes the sRGB relative luminance of a hex color, with
// channels gamma-expanded per the WCAG definition. Invalid input yields 0.
func Luminance(hex string) float64 {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return 0
	}
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

func linearize(channel int) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two hex colors:
// (L_lighter + 0.05) / (L_darker + 0.05), in [1, 21].
func ContrastRatio(fg, bg string) float64 {
	lf := Luminance(fg)
	lb := Luminance(bg)
	if lf < lb {
		lf, lb = lb, lf
	}
	return (lf + 0.05) / (lb + 0.05)
}

// Readable reports whether fg on bg meets the MinContrast floor.
func Readable(fg, bg string) bool {
	return ContrastRatio(fg, bg) >= MinContrast
}
