// Package canvas defines the canvas object model, the mutation interface the
// command core writes through, and an in-memory store implementing it.
package canvas

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

// Kind identifies the shape class of a canvas object.
type Kind string

// Canvas object kinds.
const (
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindTriangle  Kind = "triangle"
	KindLine      Kind = "line"
	KindText      Kind = "text"
	KindTextInput Kind = "text-input"
)

// Kinds lists every valid kind in declaration order.
var Kinds = []Kind{KindRectangle, KindEllipse, KindTriangle, KindLine, KindText, KindTextInput}

// ValidKind reports whether k names a known object kind.
func ValidKind(k Kind) bool {
	switch k {
	case KindRectangle, KindEllipse, KindTriangle, KindLine, KindText, KindTextInput:
		return true
	}
	return false
}

// SizeClass buckets an object by area.
type SizeClass string

// Size classes derived from object area.
const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

// Object is one canvas object as seen at resolution time. Extent fields are
// always populated with kind-appropriate defaults at creation, so geometry
// code never branches on missing values.
type Object struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	RadiusX   float64   `json:"radius_x,omitempty"`
	RadiusY   float64   `json:"radius_y,omitempty"`
	Fill      string    `json:"fill"`
	Text      string    `json:"text,omitempty"`
	FontSize  float64   `json:"font_size,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Attrs carries optional object attributes for create and resize calls.
// Nil fields are left at their current (or default) values.
type Attrs struct {
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	RadiusX  *float64 `json:"radius_x,omitempty"`
	RadiusY  *float64 `json:"radius_y,omitempty"`
	Fill     *string  `json:"fill,omitempty"`
	Text     *string  `json:"text,omitempty"`
	FontSize *float64 `json:"font_size,omitempty"`
}

// Area returns the object's surface area in square pixels. Ellipses use
// their radii; lines report the bounding box area.
func (o *Object) Area() float64 {
	if o.Kind == KindEllipse {
		return 3.14159265 * o.RadiusX * o.RadiusY
	}
	return o.Width * o.Height
}

// Size classifies the object by area against the design thresholds.
func (o *Object) Size() SizeClass {
	area := o.Area()
	switch {
	case area < design.SmallAreaMax:
		return SizeSmall
	case area > design.LargeAreaMin:
		return SizeLarge
	default:
		return SizeMedium
	}
}

// Bearer reports whether the object kind carries literal text.
func (o *Object) Bearer() bool {
	return o.Kind == KindText || o.Kind == KindTextInput
}

// Contains reports whether the point lies within the object's bounds.
func (o *Object) Contains(x, y float64) bool {
	return x >= o.X && x <= o.X+o.Width && y >= o.Y && y <= o.Y+o.Height
}

// Describe produces a short human description of the object, e.g.
// `large blue rectangle "Submit"`. Resolver scoring and candidate
// suggestions both build on this.
func (o *Object) Describe() string {
	parts := []string{string(o.Size())}

	if name := colorName(o.Fill); name != "" {
		parts = append(parts, name)
	}

	kind := string(o.Kind)
	if o.Kind == KindEllipse && o.RadiusX == o.RadiusY {
		kind = "circle"
	}
	parts = append(parts, kind)

	if o.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", o.Text))
	}

	return strings.Join(parts, " ")
}

// canonicalColors is the preferred name per palette hex; the Palette map
// also carries synonyms, which must not leak into descriptions.
var canonicalColors = []string{
	"red", "orange", "yellow", "green", "blue",
	"purple", "pink", "gray", "white", "black",
}

func colorName(hex string) string {
	hex = strings.ToUpper(strings.TrimSpace(hex))
	for _, name := range canonicalColors {
		if design.Palette[name] == hex {
			return name
		}
	}
	return ""
}

// defaultExtent populates kind-appropriate extent defaults for fields the
// caller left unset.
func defaultExtent(o *Object) {
	switch o.Kind {
	case KindEllipse:
		if o.RadiusX == 0 {
			o.RadiusX = 50
		}
		if o.RadiusY == 0 {
			o.RadiusY = 50
		}
		o.Width = o.RadiusX * 2
		o.Height = o.RadiusY * 2
	case KindLine:
		if o.Width == 0 {
			o.Width = 100
		}
		if o.Height == 0 {
			o.Height = 2
		}
	case KindText:
		if o.Width == 0 {
			o.Width = 160
		}
		if o.Height == 0 {
			o.Height = 24
		}
		if o.FontSize == 0 {
			o.FontSize = 16
		}
	case KindTextInput:
		if o.Width == 0 {
			o.Width = 240
		}
		if o.Height == 0 {
			o.Height = 40
		}
		if o.FontSize == 0 {
			o.FontSize = 14
		}
	default:
		if o.Width == 0 {
			o.Width = 100
		}
		if o.Height == 0 {
			o.Height = 100
		}
	}
}
