package layout_test

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/layout"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

func TestPlan(t *testing.T) {
	bp, err := layout.Plan("login-form", layout.Overrides{})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	if bp.Name != "login-form" {
		t.Errorf("name = %s", bp.Name)
	}
	if bp.Container.Width != 360 || bp.Container.Height != 420 {
		t.Errorf("container = %gx%g, want canonical 360x420", bp.Container.Width, bp.Container.Height)
	}
	if len(bp.Elements) != 6 {
		t.Errorf("got %d elements, want 6", len(bp.Elements))
	}
	if bp.Rules.Axis != layout.AxisVertical || bp.Rules.CenterOn != layout.RoleButton {
		t.Errorf("rules = %+v", bp.Rules)
	}
}

func TestPlanOverrides(t *testing.T) {
	bp, err := layout.Plan("card", layout.Overrides{X: ptr(101.0), Y: ptr(99.0), Width: ptr(400.0)})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	// Override coordinates land on the grid; extent overrides pass through.
	if bp.Container.X != 104 || bp.Container.Y != 96 {
		t.Errorf("anchor = (%g, %g), want grid-snapped (104, 96)", bp.Container.X, bp.Container.Y)
	}
	if bp.Container.Width != 400 {
		t.Errorf("width = %g, want 400", bp.Container.Width)
	}
	if bp.Container.Height != 400 {
		t.Errorf("height = %g, want canonical 400", bp.Container.Height)
	}
}

func TestPlanReturnsFreshBlueprints(t *testing.T) {
	first, err := layout.Plan("navigation-bar", layout.Overrides{X: ptr(0.0)})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	first.Elements[0].Text = "mutated"

	second, err := layout.Plan("navigation-bar", layout.Overrides{})
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if second.Container.X != 480 || second.Elements[0].Text == "mutated" {
		t.Error("plans must not share state between calls")
	}
}

func TestPlanUnknown(t *testing.T) {
	if _, err := layout.Plan("dashboard", layout.Overrides{}); !errors.Is(err, layout.ErrBlueprintUnknown) {
		t.Errorf("err = %v, want ErrBlueprintUnknown", err)
	}
}

func TestKnownAndComposites(t *testing.T) {
	want := []string{"login-form", "navigation-bar", "card"}
	if got := layout.Composites(); !slices.Equal(got, want) {
		t.Errorf("composites = %v, want %v", got, want)
	}

	for _, name := range want {
		if !layout.Known(name) {
			t.Errorf("Known(%q) = false", name)
		}
	}
	if layout.Known("sidebar") {
		t.Error("Known(\"sidebar\") = true")
	}
}
