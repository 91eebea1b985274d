package layout

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

// Validator inspects a freshly created composite against the live snapshot
// and applies minimal corrective fixes through the mutation interface.
// Fixes are best-effort and not atomic: the canvas store is authoritative,
// each fix lands immediately, and a failed mutation abandons the remaining
// fixes while keeping those already applied.
type Validator struct {
	mutator canvas.Mutator
	logger  *slog.Logger
}

// NewValidator creates a sanity Validator over the given mutator.
func NewValidator(mutator canvas.Mutator, logger *slog.Logger) *Validator {
	return &Validator{
		mutator: mutator,
		logger:  logger.With("system", "sanity"),
	}
}

// pass carries the working state of one sanity run. Fix application updates
// the working copies so later checks see corrected geometry; the pass is
// idempotent because every fix moves an element to a state its own check
// accepts.
type pass struct {
	report    *Report
	container *canvas.Object
	working   map[string]*canvas.Object
	roles     map[Role][]string
	rules     compositeRules
}

// Validate re-reads the live snapshot and runs the sanity checks for the
// named composite: container presence, containment, same-role alignment and
// width, stacking-axis spacing, button centering, grid adherence, and text
// contrast. The returned report lists every issue found and every fix
// already applied. A mutation failure is returned alongside the partial
// report.
func (v *Validator) Validate(ctx context.Context, name string) (*Report, error) {
	rules, ok := sanityRules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBlueprintUnknown, name)
	}

	snapshot := v.mutator.Snapshot(ctx)
	report := &Report{Composite: name}

	container := findContainer(rules, snapshot)
	if container == nil {
		report.Issues = append(report.Issues, Issue{
			Kind:     IssueMissingContainer,
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("no container found for %s", name),
		})
		finalize(report)
		return report, nil
	}

	p := &pass{
		report:    report,
		container: container,
		working:   make(map[string]*canvas.Object),
		roles:     make(map[Role][]string),
		rules:     rules,
	}
	for role, objects := range classifyRoles(rules, snapshot, container.ID.String()) {
		for _, o := range objects {
			copied := o
			id := o.ID.String()
			p.working[id] = &copied
			p.roles[role] = append(p.roles[role], id)
		}
	}

	v.checkContainment(p)

	if err := v.applyChecks(ctx, p); err != nil {
		finalize(report)
		return report, err
	}

	finalize(report)
	v.logger.InfoContext(
		ctx, "sanity pass complete",
		"composite", name,
		"issues", len(report.Issues),
		"fixes", len(report.Fixes),
		"score", report.Score,
	)
	return report, nil
}

func (v *Validator) applyChecks(ctx context.Context, p *pass) error {
	if err := v.checkAlignment(ctx, p); err != nil {
		return err
	}
	if err := v.checkWidths(ctx, p); err != nil {
		return err
	}
	if err := v.checkSpacing(ctx, p); err != nil {
		return err
	}
	if err := v.checkCentering(ctx, p); err != nil {
		return err
	}
	if err := v.checkGrid(ctx, p); err != nil {
		return err
	}
	return v.checkContrast(ctx, p)
}

// findContainer locates the composite's container: the largest rectangle
// whose area clears the composite's threshold.
func findContainer(rules compositeRules, snapshot []canvas.Object) *canvas.Object {
	var best *canvas.Object
	for i := range snapshot {
		o := &snapshot[i]
		if o.Kind != canvas.KindRectangle || o.Area() < rules.minContainerArea {
			continue
		}
		if best == nil || o.Area() > best.Area() {
			best = o
		}
	}
	return best
}

// checkContainment flags elements positioned outside the container bounds.
// Reported only: the correct destination is ambiguous, so no auto-move.
func (v *Validator) checkContainment(p *pass) {
	c := p.container
	for _, o := range p.orderedElements() {
		if o.X < c.X || o.Y < c.Y || o.X+o.Width > c.X+c.Width || o.Y+o.Height > c.Y+c.Height {
			p.report.Issues = append(p.report.Issues, Issue{
				Kind:     IssueContainment,
				Severity: SeverityHigh,
				IDs:      []string{o.ID.String()},
				Message:  fmt.Sprintf("%s lies outside the container bounds", o.Describe()),
			})
		}
	}
}

// checkAlignment snaps same-role elements to a shared X (stacked roles) or
// Y (row roles), using the majority value, ties toward the smallest.
func (v *Validator) checkAlignment(ctx context.Context, p *pass) error {
	for _, role := range p.rules.stacked {
		if err := v.alignRole(ctx, p, role, false); err != nil {
			return err
		}
	}
	for _, role := range p.rules.rowed {
		if err := v.alignRole(ctx, p, role, true); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) alignRole(ctx context.Context, p *pass, role Role, rowed bool) error {
	ids := p.roles[role]
	if len(ids) < 2 {
		return nil
	}

	value := func(o *canvas.Object) float64 {
		if rowed {
			return o.Y
		}
		return o.X
	}

	target := majorityValue(ids, p.working, value)
	for _, id := range ids {
		o := p.working[id]
		if value(o) == target {
			continue
		}

		x, y := target, o.Y
		if rowed {
			x, y = o.X, target
		}

		p.report.Issues = append(p.report.Issues, Issue{
			Kind:     IssueMisalignment,
			Severity: SeverityMedium,
			IDs:      []string{id},
			Message:  fmt.Sprintf("%s elements do not share an edge", role),
		})
		if err := v.move(ctx, p, id, x, y, "aligned to role edge"); err != nil {
			return err
		}
	}
	return nil
}

// checkWidths grows same-role elements to the widest member.
func (v *Validator) checkWidths(ctx context.Context, p *pass) error {
	for _, role := range p.rules.sameWidth {
		ids := p.roles[role]
		if len(ids) < 2 {
			continue
		}

		var max float64
		for _, id := range ids {
			if w := p.working[id].Width; w > max {
				max = w
			}
		}

		for _, id := range ids {
			o := p.working[id]
			if o.Width == max {
				continue
			}

			p.report.Issues = append(p.report.Issues, Issue{
				Kind:     IssueInconsistentWidth,
				Severity: SeverityMedium,
				IDs:      []string{id},
				Message:  fmt.Sprintf("%s elements do not share a width", role),
			})

			updated, err := v.mutator.Resize(ctx, id, canvas.Attrs{Width: ptr(max)})
			if err != nil {
				return fmt.Errorf("%w: resize %s: %w", ErrMutationFailed, id, err)
			}
			*o = *updated
			p.report.Fixes = append(p.report.Fixes, Fix{
				Kind:    FixResize,
				ID:      id,
				Message: fmt.Sprintf("widened to %g", max),
			})
		}
	}
	return nil
}

// checkSpacing walks the classified elements sorted along the stacking axis
// and moves any element whose gap to its predecessor falls outside
// [GapMin, GapMax] to predecessor edge plus the canonical gap. Corrections
// cascade through the working copies.
func (v *Validator) checkSpacing(ctx context.Context, p *pass) error {
	ordered := p.orderedElements()
	if len(ordered) < 2 {
		return nil
	}

	horizontal := p.rules.axis == AxisHorizontal
	for i := 1; i < len(ordered); i++ {
		prev, o := ordered[i-1], ordered[i]

		var gap float64
		if horizontal {
			gap = o.X - (prev.X + prev.Width)
		} else {
			gap = o.Y - (prev.Y + prev.Height)
		}
		if gap >= design.GapMin && gap <= design.GapMax {
			continue
		}

		id := o.ID.String()
		p.report.Issues = append(p.report.Issues, Issue{
			Kind:     IssueInconsistentSpacing,
			Severity: SeverityMedium,
			IDs:      []string{id},
			Message:  fmt.Sprintf("gap of %gpx before %s is outside [%d, %d]", gap, o.Describe(), design.GapMin, design.GapMax),
		})

		x, y := o.X, prev.Y+prev.Height+design.Gap
		if horizontal {
			x, y = prev.X+prev.Width+design.Gap, o.Y
		}
		if err := v.move(ctx, p, id, x, y, "respaced along stacking axis"); err != nil {
			return err
		}
	}
	return nil
}

// checkCentering recenters the emphasized element under the input column.
func (v *Validator) checkCentering(ctx context.Context, p *pass) error {
	if p.rules.centered == "" {
		return nil
	}
	buttons := p.roles[p.rules.centered]
	inputs := p.roles[RoleInput]
	if len(buttons) == 0 || len(inputs) == 0 {
		return nil
	}

	anchor := p.working[inputs[0]]
	for _, id := range buttons {
		o := p.working[id]
		offset := (o.X + o.Width/2) - (anchor.X + anchor.Width/2)
		if math.Abs(offset) <= design.GridSize {
			continue
		}

		p.report.Issues = append(p.report.Issues, Issue{
			Kind:     IssueOffCenter,
			Severity: SeverityMedium,
			IDs:      []string{id},
			Message:  fmt.Sprintf("%s is not centered under the inputs", o.Describe()),
		})

		x := design.Snap(anchor.X + (anchor.Width-o.Width)/2)
		if err := v.move(ctx, p, id, x, o.Y, "recentered under inputs"); err != nil {
			return err
		}
	}
	return nil
}

// checkGrid snaps any element sitting off the coordinate grid.
func (v *Validator) checkGrid(ctx context.Context, p *pass) error {
	for _, o := range p.orderedElements() {
		x, y := design.Snap(o.X), design.Snap(o.Y)
		if x == o.X && y == o.Y {
			continue
		}

		id := o.ID.String()
		p.report.Issues = append(p.report.Issues, Issue{
			Kind:     IssueOffGrid,
			Severity: SeverityMedium,
			IDs:      []string{id},
			Message:  fmt.Sprintf("%s sits off the %dpx grid", o.Describe(), design.GridSize),
		})
		if err := v.move(ctx, p, id, x, y, "snapped to grid"); err != nil {
			return err
		}
	}
	return nil
}

// checkContrast recolors text elements whose contrast against the container
// fill falls below the AA floor. The replacement is picked by background
// luminance so the fix itself always passes.
func (v *Validator) checkContrast(ctx context.Context, p *pass) error {
	background := p.container.Fill

	for _, o := range p.orderedElements() {
		id := o.ID.String()
		if o.Kind != canvas.KindText {
			continue
		}
		if design.ContrastRatio(o.Fill, background) >= design.MinContrast {
			continue
		}

		p.report.Issues = append(p.report.Issues, Issue{
			Kind:     IssueLowContrast,
			Severity: SeverityMedium,
			IDs:      []string{id},
			Message:  fmt.Sprintf("%s fails the %.1f:1 contrast floor", o.Describe(), design.MinContrast),
		})

		replacement := design.TextDark
		if design.Luminance(background) <= 0.5 {
			replacement = design.White
		}

		updated, err := v.mutator.Recolor(ctx, id, replacement)
		if err != nil {
			return fmt.Errorf("%w: recolor %s: %w", ErrMutationFailed, id, err)
		}
		*o = *updated
		p.report.Fixes = append(p.report.Fixes, Fix{
			Kind:    FixRecolor,
			ID:      id,
			Message: fmt.Sprintf("recolored to %s for contrast", replacement),
		})
	}
	return nil
}

func (v *Validator) move(ctx context.Context, p *pass, id string, x, y float64, message string) error {
	updated, err := v.mutator.Move(ctx, id, x, y)
	if err != nil {
		return fmt.Errorf("%w: move %s: %w", ErrMutationFailed, id, err)
	}
	*p.working[id] = *updated
	p.report.Fixes = append(p.report.Fixes, Fix{Kind: FixMove, ID: id, Message: message})
	return nil
}

// orderedElements returns the working set sorted along the stacking axis.
func (p *pass) orderedElements() []*canvas.Object {
	out := make([]*canvas.Object, 0, len(p.working))
	for _, o := range p.working {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if p.rules.axis == AxisHorizontal {
			if out[i].X != out[j].X {
				return out[i].X < out[j].X
			}
			return out[i].Y < out[j].Y
		}
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// majorityValue picks the most common coordinate among the role's members,
// breaking ties toward the smallest value.
func majorityValue(ids []string, working map[string]*canvas.Object, value func(*canvas.Object) float64) float64 {
	counts := make(map[float64]int)
	for _, id := range ids {
		counts[value(working[id])]++
	}

	var target float64
	best := -1
	for v, n := range counts {
		if n > best || (n == best && v < target) {
			target = v
			best = n
		}
	}
	return target
}

func finalize(report *Report) {
	score := 100 - 10*len(report.Issues)
	if score < 0 {
		score = 0
	}
	report.Score = score

	report.Valid = true
	for _, issue := range report.Issues {
		if issue.Severity == SeverityHigh {
			report.Valid = false
			break
		}
	}

	switch {
	case len(report.Issues) == 0:
		report.Message = "layout is sound"
	case report.Valid:
		report.Message = fmt.Sprintf("%d issue(s) found, %d fix(es) applied", len(report.Issues), len(report.Fixes))
	default:
		report.Message = fmt.Sprintf("%d issue(s) found, %d fix(es) applied, manual attention required", len(report.Issues), len(report.Fixes))
	}
}
