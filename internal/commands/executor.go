package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/layout"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/reference"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

type system struct {
	mutator   canvas.Mutator
	validator *Validator
	engine    *layout.Engine
	sanity    *layout.Validator
	logger    *slog.Logger
}

// New creates the command processing system over the given mutator.
func New(mutator canvas.Mutator, weights reference.Weights, logger *slog.Logger) System {
	return &system{
		mutator:   mutator,
		validator: NewValidator(weights, logger),
		engine:    layout.NewEngine(mutator, logger),
		sanity:    layout.NewValidator(mutator, logger),
		logger:    logger.With("system", "commands"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Validate preprocesses the intent against the current snapshot without
// touching the canvas.
func (s *system) Validate(ctx context.Context, intent Intent) *Result {
	return s.validator.Validate(ctx, intent, s.mutator.Snapshot(ctx))
}

// Execute validates the intent and carries it out through the mutation
// interface. Mutations run strictly sequentially; a failure abandons the
// rest of the command but keeps mutations already applied.
func (s *system) Execute(ctx context.Context, intent Intent) (*Outcome, error) {
	snapshot := s.mutator.Snapshot(ctx)
	result := s.validator.Validate(ctx, intent, snapshot)
	outcome := &Outcome{Action: intent.Action, Result: result}

	if !result.Valid {
		return outcome, fmt.Errorf("%w: %s", ErrValidationRejected, firstOf(result.Errors...))
	}

	var err error
	switch intent.Action {
	case ActionCreate:
		err = s.executeCreate(ctx, intent, outcome)
	case ActionCreateMany:
		err = s.executeCreateMany(ctx, intent, outcome)
	case ActionCreateComposite:
		err = s.executeComposite(ctx, intent, outcome)
	case ActionList:
		for i := range snapshot {
			outcome.Objects = append(outcome.Objects, &snapshot[i])
		}
	case ActionArrange, ActionDistribute:
		err = s.executeArrange(ctx, intent, outcome)
	default:
		err = s.executeManipulation(ctx, intent, outcome)
	}

	if err != nil {
		return outcome, err
	}

	s.logger.InfoContext(
		ctx, "command executed",
		"action", intent.Action,
		"objects", len(outcome.Objects),
	)
	return outcome, nil
}

func (s *system) executeCreate(ctx context.Context, intent Intent, outcome *Outcome) error {
	kind, attrs := createSpec(intent, outcome.Result)
	created, err := s.mutator.Create(ctx, kind, attrs)
	if err != nil {
		return fmt.Errorf("%w: %w", layout.ErrMutationFailed, err)
	}
	outcome.Objects = append(outcome.Objects, created)
	return nil
}

func (s *system) executeCreateMany(ctx context.Context, intent Intent, outcome *Outcome) error {
	kind, attrs := createSpec(intent, outcome.Result)
	count, _ := outcome.Result.Enhanced["count"].(int)

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		created, err := s.mutator.Create(ctx, kind, attrs)
		if err != nil {
			return fmt.Errorf("%w: object %d of %d: %w", layout.ErrMutationFailed, i+1, count, err)
		}
		outcome.Objects = append(outcome.Objects, created)
		ids = append(ids, created.ID.String())
	}

	mode, _ := outcome.Result.Enhanced["arrangement"].(string)
	startX, startY := gridOrigin(outcome.Objects[0])
	moved, err := s.engine.Arrange(ctx, ids, layout.Mode(mode), intent.count("columns", 0), startX, startY)
	if err != nil {
		return err
	}
	outcome.Objects = moved
	return nil
}

func (s *system) executeComposite(ctx context.Context, intent Intent, outcome *Outcome) error {
	name, _ := outcome.Result.Enhanced["composite"].(string)

	bp, err := layout.Plan(name, overridesFrom(intent))
	if err != nil {
		return err
	}

	composite, err := s.engine.CreateComposite(ctx, bp)
	if composite != nil {
		if composite.Container != nil {
			outcome.Objects = append(outcome.Objects, composite.Container)
		}
		for _, placed := range composite.Elements {
			outcome.Objects = append(outcome.Objects, placed.Object)
		}
	}
	if err != nil {
		return err
	}

	report, err := s.sanity.Validate(ctx, name)
	outcome.Report = report
	return err
}

func (s *system) executeArrange(ctx context.Context, intent Intent, outcome *Outcome) error {
	ids := outcome.Result.TargetIDs()
	mode, _ := outcome.Result.Enhanced["arrangement"].(string)

	startX, startY := design.Snap(2*design.Gap), design.Snap(2*design.Gap)
	if first, err := s.engine.Lookup(ctx, ids[0]); err == nil {
		startX, startY = first.X, first.Y
	}
	if x, ok := intent.num("x"); ok {
		startX = design.Snap(x)
	}
	if y, ok := intent.num("y"); ok {
		startY = design.Snap(y)
	}

	moved, err := s.engine.Arrange(ctx, ids, layout.Mode(mode), intent.count("columns", 0), startX, startY)
	if err != nil {
		return err
	}
	outcome.Objects = moved
	return nil
}

func (s *system) executeManipulation(ctx context.Context, intent Intent, outcome *Outcome) error {
	result := outcome.Result
	targetID := result.TargetID()

	if result.CreateFirst() {
		kind := canvas.Kind(result.Enhanced["kind"].(string))
		attrs := canvas.Attrs{}
		cx, cy := design.ViewportCenter()
		attrs.X, attrs.Y = ptr(design.Snap(cx)), ptr(design.Snap(cy))
		if fill, ok := result.Enhanced["fill"].(string); ok {
			attrs.Fill = &fill
		}

		created, err := s.mutator.Create(ctx, kind, attrs)
		if err != nil {
			return fmt.Errorf("%w: create-first: %w", layout.ErrMutationFailed, err)
		}
		outcome.Objects = append(outcome.Objects, created)
		targetID = created.ID.String()
		result.Enhanced["target_id"] = targetID
	}

	updated, err := s.applyManipulation(ctx, intent, targetID, result)
	if err != nil {
		return err
	}
	if updated != nil {
		outcome.Objects = append(outcome.Objects, updated)
	}
	return nil
}

func (s *system) applyManipulation(ctx context.Context, intent Intent, id string, result *Result) (*canvas.Object, error) {
	switch intent.Action {
	case ActionMove:
		x, okX := intent.num("x")
		y, okY := intent.num("y")
		if !okX || !okY {
			cx, cy := design.ViewportCenter()
			x, y = cx, cy
			result.reason("no destination given; moved to viewport center")
		}
		return s.mutator.Move(ctx, id, design.Snap(x), design.Snap(y))

	case ActionResize:
		attrs := canvas.Attrs{}
		if w, ok := intent.num("width"); ok {
			attrs.Width = &w
		}
		if h, ok := intent.num("height"); ok {
			attrs.Height = &h
		}
		if r, ok := intent.num("radius"); ok {
			attrs.RadiusX, attrs.RadiusY = &r, &r
		}
		if attrs.Width == nil && attrs.Height == nil && attrs.RadiusX == nil {
			result.warn("resize carried no dimensions; nothing changed")
			return nil, nil
		}
		return s.mutator.Resize(ctx, id, attrs)

	case ActionRotate:
		// The mutation interface carries no rotation; surface that rather
		// than silently dropping the command.
		result.warn("rotation is not supported by the canvas mutation interface")
		return nil, nil

	case ActionRecolor:
		value := firstOf(intent.str("color"), intent.str("fill"))
		hex, ok := namedOrHex(value)
		if !ok {
			result.warn("unrecognized color %q; using high-contrast default", value)
			hex = design.TextDark
		}
		return s.mutator.Recolor(ctx, id, hex)

	case ActionRetext:
		return s.mutator.Retext(ctx, id, intent.str("text"))

	case ActionDelete:
		return s.mutator.Delete(ctx, id)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownAction, intent.Action)
}

// createSpec assembles the kind and attributes for a creation from the
// intent parameters and the validator's enhanced defaults.
func createSpec(intent Intent, result *Result) (canvas.Kind, canvas.Attrs) {
	kindName, _ := result.Enhanced["kind"].(string)
	kind := canvas.Kind(kindName)

	attrs := canvas.Attrs{}
	if x, ok := intent.num("x"); ok {
		attrs.X = ptr(x)
	} else if x, ok := result.Enhanced["x"].(float64); ok {
		attrs.X = ptr(x)
	}
	if y, ok := intent.num("y"); ok {
		attrs.Y = ptr(y)
	} else if y, ok := result.Enhanced["y"].(float64); ok {
		attrs.Y = ptr(y)
	}
	if w, ok := intent.num("width"); ok {
		attrs.Width = ptr(w)
	}
	if h, ok := intent.num("height"); ok {
		attrs.Height = ptr(h)
	}
	if r, ok := intent.num("radius"); ok {
		attrs.RadiusX, attrs.RadiusY = ptr(r), ptr(r)
	}
	if fill, ok := result.Enhanced["fill"].(string); ok {
		attrs.Fill = ptr(fill)
	}
	if text := intent.str("text"); text != "" {
		attrs.Text = ptr(text)
	}
	return kind, attrs
}

func overridesFrom(intent Intent) layout.Overrides {
	var o layout.Overrides
	if x, ok := intent.num("x"); ok {
		o.X = ptr(x)
	}
	if y, ok := intent.num("y"); ok {
		o.Y = ptr(y)
	}
	if w, ok := intent.num("width"); ok {
		o.Width = ptr(w)
	}
	if h, ok := intent.num("height"); ok {
		o.Height = ptr(h)
	}
	return o
}

func gridOrigin(first *canvas.Object) (float64, float64) {
	return design.Snap(first.X), design.Snap(first.Y)
}

func ptr[T any](v T) *T {
	return &v
}
