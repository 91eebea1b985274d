// Package design holds the canvas design tokens — grid size, spacing scale,
// color palette, contrast threshold — and the geometry math built on them.
// Everything above the canvas store depends on this package; it depends on
// nothing.
package design

// Grid and spacing tokens. All emitted coordinates are multiples of GridSize;
// vertical rhythm inside composites uses Gap, bounded by [GapMin, GapMax].
const (
	GridSize = 8
	Spacing  = 8
	Gap      = 24
	GapMin   = 16
	GapMax   = 32
)

// Default viewport used when a command omits coordinates. "Center" resolves
// against these dimensions.
const (
	ViewportWidth  = 1920
	ViewportHeight = 1080
)

// MinContrast is the WCAG AA contrast floor for normal text.
const MinContrast = 4.5

// Size class area thresholds, in square pixels.
const (
	SmallAreaMax = 5000
	LargeAreaMin = 20000
)

// Snap rounds v to the nearest multiple of GridSize. Snap is idempotent and
// its output is always congruent to 0 mod GridSize.
func Snap(v float64) float64 {
	return SnapTo(v, GridSize)
}

// SnapTo rounds v to the nearest multiple of unit. A non-positive unit
// returns v unchanged.
func SnapTo(v, unit float64) float64 {
	if unit <= 0 {
		return v
	}
	n := int(v/unit + 0.5)
	if v < 0 {
		n = int(v/unit - 0.5)
	}
	return float64(n) * unit
}

// ViewportCenter returns the default target for commands that name "center"
// without coordinates.
func ViewportCenter() (x, y float64) {
	return ViewportWidth / 2, ViewportHeight / 2
}
