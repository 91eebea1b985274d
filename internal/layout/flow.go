package layout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

// Mode is an arrangement primitive for explicit element lists.
type Mode string

// Arrangement modes.
const (
	ModeVertical   Mode = "vertical"
	ModeHorizontal Mode = "horizontal"
	ModeGrid       Mode = "grid"
)

// Placement pairs a created object with its blueprint role.
type Placement struct {
	Role   Role           `json:"role"`
	Object *canvas.Object `json:"object"`
}

// Composite is the concrete result of flowing a blueprint: the created
// container and role-tagged elements.
type Composite struct {
	Name      string         `json:"name"`
	Container *canvas.Object `json:"container"`
	Elements  []Placement    `json:"elements"`
}

// Engine flows blueprints and arrangement requests into concrete,
// grid-snapped coordinates, emitted through the mutation interface.
// Mutations are issued strictly sequentially; later placements depend on
// earlier ones.
type Engine struct {
	mutator canvas.Mutator
	logger  *slog.Logger
}

// NewEngine creates a flow Engine over the given mutator.
func NewEngine(mutator canvas.Mutator, logger *slog.Logger) *Engine {
	return &Engine{
		mutator: mutator,
		logger:  logger.With("system", "layout"),
	}
}

// planContext tracks the container and running cursor for one flow call.
// It exists only for the duration of that call.
type planContext struct {
	container *canvas.Object
	placed    []Placement
	cursor    float64
}

// centerAnchor returns the horizontal span centered elements align against:
// the input column when the composite has inputs, otherwise the container.
func (pc *planContext) centerAnchor() (x, width float64) {
	for _, p := range pc.placed {
		if p.Role == RoleInput {
			return p.Object.X, p.Object.Width
		}
	}
	return pc.container.X, pc.container.Width
}

// CreateComposite creates the blueprint's container and flows its elements
// along the stacking axis with the blueprint's gap, grid-snapping every
// coordinate before the mutation call. A mutation failure abandons the
// remaining elements; objects already created are kept.
func (e *Engine) CreateComposite(ctx context.Context, bp *Blueprint) (*Composite, error) {
	container, err := e.createContainer(ctx, bp)
	if err != nil {
		return nil, err
	}

	pc := &planContext{container: container}
	switch bp.Rules.Axis {
	case AxisHorizontal:
		pc.cursor = container.X + bp.Rules.Padding
	default:
		pc.cursor = container.Y + bp.Rules.Padding
	}

	for _, el := range bp.Elements {
		placed, err := e.placeElement(ctx, bp, pc, el)
		if err != nil {
			return e.compositeOf(bp.Name, pc), fmt.Errorf("%w: place %s: %w", ErrMutationFailed, el.Role, err)
		}
		pc.placed = append(pc.placed, Placement{Role: el.Role, Object: placed})
	}

	e.logger.InfoContext(
		ctx, "composite created",
		"name", bp.Name,
		"container", container.ID,
		"elements", len(pc.placed),
	)

	return e.compositeOf(bp.Name, pc), nil
}

func (e *Engine) compositeOf(name string, pc *planContext) *Composite {
	return &Composite{Name: name, Container: pc.container, Elements: pc.placed}
}

func (e *Engine) createContainer(ctx context.Context, bp *Blueprint) (*canvas.Object, error) {
	attrs := canvas.Attrs{
		X:      ptr(design.Snap(bp.Container.X)),
		Y:      ptr(design.Snap(bp.Container.Y)),
		Width:  ptr(bp.Container.Width),
		Height: ptr(bp.Container.Height),
		Fill:   ptr(bp.Container.Fill),
	}

	container, err := e.mutator.Create(ctx, canvas.KindRectangle, attrs)
	if err != nil {
		return nil, fmt.Errorf("%w: create container: %w", ErrMutationFailed, err)
	}
	return container, nil
}

func (e *Engine) placeElement(ctx context.Context, bp *Blueprint, pc *planContext, el Element) (*canvas.Object, error) {
	var x, y float64

	switch bp.Rules.Axis {
	case AxisHorizontal:
		x = pc.cursor
		y = pc.container.Y + (pc.container.Height-el.Height)/2
		pc.cursor = design.Snap(pc.cursor + el.Width + bp.Rules.Gap)
	default:
		x = pc.container.X + bp.Rules.Padding
		if bp.Rules.CenterX || el.Role == bp.Rules.CenterOn {
			anchorX, anchorW := pc.centerAnchor()
			x = anchorX + (anchorW-el.Width)/2
		}
		y = pc.cursor
		pc.cursor = design.Snap(pc.cursor + el.Height + bp.Rules.Gap)
	}

	attrs := canvas.Attrs{
		X:      ptr(design.Snap(x)),
		Y:      ptr(design.Snap(y)),
		Width:  ptr(el.Width),
		Height: ptr(el.Height),
		Fill:   ptr(el.Fill),
	}
	if el.Text != "" {
		attrs.Text = ptr(el.Text)
	}
	if el.FontSize > 0 {
		attrs.FontSize = ptr(el.FontSize)
	}

	return e.mutator.Create(ctx, el.Kind, attrs)
}

// Arrange repositions existing objects using an arrangement primitive.
// Vertical and horizontal stacks advance a running offset of extent plus the
// canonical gap; grid mode places index i at row i/columns, column
// i%columns. All coordinates are grid-snapped before the move.
func (e *Engine) Arrange(ctx context.Context, ids []string, mode Mode, columns int, startX, startY float64) ([]*canvas.Object, error) {
	if len(ids) == 0 {
		return nil, ErrNoObjects
	}

	objects, err := e.lookup(ctx, ids)
	if err != nil {
		return nil, err
	}

	if mode == ModeGrid && columns < 1 {
		columns = defaultColumns(len(objects))
	}

	startX = design.Snap(startX)
	startY = design.Snap(startY)

	var moved []*canvas.Object
	cursorX, cursorY := startX, startY
	var cellW, cellH float64
	if mode == ModeGrid {
		cellW, cellH = maxExtent(objects)
	}

	for i, o := range objects {
		var x, y float64
		switch mode {
		case ModeHorizontal:
			x, y = cursorX, startY
			cursorX = design.Snap(cursorX + o.Width + design.Gap)
		case ModeGrid:
			row := i / columns
			col := i % columns
			x = design.Snap(startX + float64(col)*(cellW+design.Gap))
			y = design.Snap(startY + float64(row)*(cellH+design.Gap))
		default:
			x, y = startX, cursorY
			cursorY = design.Snap(cursorY + o.Height + design.Gap)
		}

		updated, err := e.mutator.Move(ctx, o.ID.String(), design.Snap(x), design.Snap(y))
		if err != nil {
			return moved, fmt.Errorf("%w: move %s: %w", ErrMutationFailed, o.ID, err)
		}
		moved = append(moved, updated)
	}

	e.logger.InfoContext(ctx, "objects arranged", "mode", mode, "count", len(moved))
	return moved, nil
}

// AlignMode is a post-placement alignment pass.
type AlignMode string

// Alignment passes relative to a container anchor.
const (
	AlignLeft    AlignMode = "left"
	AlignRight   AlignMode = "right"
	AlignCenterX AlignMode = "center-x"
)

// Align moves the objects so their horizontal placement agrees with the
// anchor span: flush left, flush right, or centered. Vertical positions are
// untouched.
func (e *Engine) Align(ctx context.Context, ids []string, mode AlignMode, anchorX, anchorWidth float64) ([]*canvas.Object, error) {
	if len(ids) == 0 {
		return nil, ErrNoObjects
	}

	objects, err := e.lookup(ctx, ids)
	if err != nil {
		return nil, err
	}

	var moved []*canvas.Object
	for _, o := range objects {
		var x float64
		switch mode {
		case AlignRight:
			x = anchorX + anchorWidth - o.Width
		case AlignCenterX:
			x = anchorX + (anchorWidth-o.Width)/2
		default:
			x = anchorX
		}

		updated, err := e.mutator.Move(ctx, o.ID.String(), design.Snap(x), o.Y)
		if err != nil {
			return moved, fmt.Errorf("%w: align %s: %w", ErrMutationFailed, o.ID, err)
		}
		moved = append(moved, updated)
	}

	return moved, nil
}

// Lookup returns the current state of one object by id.
func (e *Engine) Lookup(ctx context.Context, id string) (*canvas.Object, error) {
	objects, err := e.lookup(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	return &objects[0], nil
}

func (e *Engine) lookup(ctx context.Context, ids []string) ([]canvas.Object, error) {
	snapshot := e.mutator.Snapshot(ctx)
	byID := make(map[string]canvas.Object, len(snapshot))
	for _, o := range snapshot {
		byID[o.ID.String()] = o
	}

	objects := make([]canvas.Object, 0, len(ids))
	for _, id := range ids {
		o, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", canvas.ErrNotFound, id)
		}
		objects = append(objects, o)
	}
	return objects, nil
}

func maxExtent(objects []canvas.Object) (w, h float64) {
	for _, o := range objects {
		if o.Width > w {
			w = o.Width
		}
		if o.Height > h {
			h = o.Height
		}
	}
	return w, h
}

func defaultColumns(n int) int {
	cols := 1
	for cols*cols < n {
		cols++
	}
	return cols
}

func ptr[T any](v T) *T {
	return &v
}
