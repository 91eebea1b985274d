// Package layout turns composite-layout names into declarative blueprints,
// flows blueprints into concrete grid-snapped coordinates through the canvas
// mutation interface, and sanity-checks the created objects afterwards,
// applying minimal corrective fixes.
package layout

import (
	"fmt"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

// Role tags a blueprint element with its function inside the composite.
type Role string

// Element roles.
const (
	RoleTitle    Role = "title"
	RoleLabel    Role = "label"
	RoleInput    Role = "input"
	RoleButton   Role = "button"
	RoleImage    Role = "image"
	RoleMenuItem Role = "menu-item"
	RoleBody     Role = "body"
)

// Axis is the stacking direction of a composite.
type Axis string

// Stacking axes.
const (
	AxisVertical   Axis = "vertical"
	AxisHorizontal Axis = "horizontal"
)

// Container describes the composite's bounding object.
type Container struct {
	Width  float64
	Height float64
	X      float64
	Y      float64
	Fill   string
}

// Element is one positioned member of a composite, declared relative to the
// container; the flow engine assigns concrete coordinates.
type Element struct {
	Role     Role
	Kind     canvas.Kind
	Text     string
	Width    float64
	Height   float64
	Fill     string
	FontSize float64
}

// Rules carries the spacing and alignment policy for a blueprint.
type Rules struct {
	Axis     Axis
	Gap      float64
	Padding  float64
	CenterX  bool
	CenterOn Role
}

// Blueprint is the declarative description of a composite layout: a
// container, an ordered element list, and spacing/alignment rules. It holds
// no concrete coordinates beyond the container anchor.
type Blueprint struct {
	Name      string
	Container Container
	Elements  []Element
	Rules     Rules
}

// Overrides adjusts a canonical blueprint's container placement or size.
// Nil fields keep the canonical defaults.
type Overrides struct {
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// Plan returns the canonical blueprint for the named composite with
// overrides applied. Unknown names fail with ErrBlueprintUnknown before any
// object is touched.
func Plan(name string, overrides Overrides) (*Blueprint, error) {
	build, ok := composites[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBlueprintUnknown, name)
	}

	bp := build()
	if overrides.X != nil {
		bp.Container.X = *overrides.X
	}
	if overrides.Y != nil {
		bp.Container.Y = *overrides.Y
	}
	if overrides.Width != nil {
		bp.Container.Width = *overrides.Width
	}
	if overrides.Height != nil {
		bp.Container.Height = *overrides.Height
	}

	bp.Container.X = design.Snap(bp.Container.X)
	bp.Container.Y = design.Snap(bp.Container.Y)
	return bp, nil
}

// Known reports whether a composite name is registered.
func Known(name string) bool {
	_, ok := composites[name]
	return ok
}

// Composites lists the registered composite names.
func Composites() []string {
	names := make([]string, 0, len(composites))
	for _, name := range compositeOrder {
		names = append(names, name)
	}
	return names
}
