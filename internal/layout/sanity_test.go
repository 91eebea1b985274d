package layout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/layout"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

func elementByRole(t *testing.T, composite *layout.Composite, role layout.Role, index int) *canvas.Object {
	t.Helper()

	n := 0
	for _, placed := range composite.Elements {
		if placed.Role != role {
			continue
		}
		if n == index {
			return placed.Object
		}
		n++
	}
	t.Fatalf("no %s element at index %d", role, index)
	return nil
}

func TestValidateCleanComposite(t *testing.T) {
	engine, store := newEngine(t)
	validator := layout.NewValidator(store, testLogger())

	createComposite(t, engine, "login-form")

	report, err := validator.Validate(context.Background(), "login-form")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	if !report.Valid || report.Score != 100 {
		t.Errorf("valid=%v score=%d, want a clean pass", report.Valid, report.Score)
	}
	if len(report.Issues) != 0 || len(report.Fixes) != 0 {
		t.Errorf("issues=%v fixes=%v, want none", report.Issues, report.Fixes)
	}
	if report.Message != "layout is sound" {
		t.Errorf("message = %q", report.Message)
	}
}

func TestValidateFixesPerturbedComposite(t *testing.T) {
	engine, store := newEngine(t)
	validator := layout.NewValidator(store, testLogger())
	ctx := context.Background()

	composite := createComposite(t, engine, "login-form")
	input1 := elementByRole(t, composite, layout.RoleInput, 0)
	input2 := elementByRole(t, composite, layout.RoleInput, 1)
	title := elementByRole(t, composite, layout.RoleTitle, 0)
	button := elementByRole(t, composite, layout.RoleButton, 0)

	// Knock the composite out of shape: misalign one input, shrink the
	// other, push the button off-grid, wash out the title color.
	if _, err := store.Move(ctx, input2.ID.String(), input2.X+8, input2.Y); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Resize(ctx, input1.ID.String(), canvas.Attrs{Width: ptr(240.0)}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Move(ctx, button.ID.String(), button.X+1, button.Y+1); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Recolor(ctx, title.ID.String(), design.TextMuted); err != nil {
		t.Fatal(err)
	}

	report, err := validator.Validate(ctx, "login-form")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	if len(report.Issues) != 4 || len(report.Fixes) != 4 {
		t.Fatalf("issues=%d fixes=%d, want 4 of each:\n%+v\n%+v", len(report.Issues), len(report.Fixes), report.Issues, report.Fixes)
	}
	if !report.Valid || report.Score != 60 {
		t.Errorf("valid=%v score=%d, want fixable issues only and 100-10*4", report.Valid, report.Score)
	}

	kinds := map[layout.IssueKind]bool{}
	for _, issue := range report.Issues {
		kinds[issue.Kind] = true
	}
	for _, want := range []layout.IssueKind{
		layout.IssueMisalignment,
		layout.IssueInconsistentWidth,
		layout.IssueOffGrid,
		layout.IssueLowContrast,
	} {
		if !kinds[want] {
			t.Errorf("missing issue kind %s", want)
		}
	}

	// Fixes have already landed in the store.
	fixed, err := store.Find(ctx, input2.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	if fixed.X != input1.X {
		t.Errorf("misaligned input at x=%g, want realigned to %g", fixed.X, input1.X)
	}
	fixed, err = store.Find(ctx, input1.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	if fixed.Width != 280 {
		t.Errorf("shrunk input width=%g, want widened back to 280", fixed.Width)
	}
	fixed, err = store.Find(ctx, title.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	if fixed.Fill != design.TextDark {
		t.Errorf("title fill=%s, want %s on a light container", fixed.Fill, design.TextDark)
	}
}

// A second pass over a corrected composite finds nothing: every fix moves an
// element to a state its own check accepts.
func TestValidateIdempotent(t *testing.T) {
	engine, store := newEngine(t)
	validator := layout.NewValidator(store, testLogger())
	ctx := context.Background()

	composite := createComposite(t, engine, "card")
	title := elementByRole(t, composite, layout.RoleTitle, 0)

	if _, err := store.Move(ctx, title.ID.String(), title.X+3, title.Y); err != nil {
		t.Fatal(err)
	}
	if _, err := validator.Validate(ctx, "card"); err != nil {
		t.Fatal(err)
	}

	report, err := validator.Validate(ctx, "card")
	if err != nil {
		t.Fatalf("second validate failed: %v", err)
	}
	if len(report.Issues) != 0 || len(report.Fixes) != 0 || report.Score != 100 {
		t.Errorf("second pass: issues=%v fixes=%v score=%d, want a clean report", report.Issues, report.Fixes, report.Score)
	}
}

func TestValidateMissingContainer(t *testing.T) {
	_, store := newEngine(t)
	validator := layout.NewValidator(store, testLogger())

	report, err := validator.Validate(context.Background(), "login-form")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	if report.Valid {
		t.Error("a missing container cannot be auto-fixed; the report must be invalid")
	}
	if len(report.Issues) != 1 || report.Issues[0].Kind != layout.IssueMissingContainer {
		t.Errorf("issues = %+v, want a single missing-container finding", report.Issues)
	}
	if report.Score != 90 {
		t.Errorf("score = %d, want 90", report.Score)
	}
}

func TestValidateUnknownComposite(t *testing.T) {
	_, store := newEngine(t)
	validator := layout.NewValidator(store, testLogger())

	if _, err := validator.Validate(context.Background(), "dashboard"); !errors.Is(err, layout.ErrBlueprintUnknown) {
		t.Errorf("err = %v, want ErrBlueprintUnknown", err)
	}
}
