package layout

import (
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

// Composite names.
const (
	CompositeLoginForm = "login-form"
	CompositeNavBar    = "navigation-bar"
	CompositeCard      = "card"
)

var compositeOrder = []string{CompositeLoginForm, CompositeNavBar, CompositeCard}

// composites holds one canonical blueprint builder per composite type.
// Builders return fresh values so callers can mutate overrides safely.
var composites = map[string]func() *Blueprint{
	CompositeLoginForm: loginForm,
	CompositeNavBar:    navigationBar,
	CompositeCard:      card,
}

func loginForm() *Blueprint {
	return &Blueprint{
		Name: CompositeLoginForm,
		Container: Container{
			Width: 360, Height: 420,
			X: 800, Y: 320,
			Fill: design.White,
		},
		Elements: []Element{
			{Role: RoleTitle, Kind: canvas.KindText, Text: "Sign In", Width: 280, Height: 32, Fill: design.TextDark, FontSize: 24},
			{Role: RoleLabel, Kind: canvas.KindText, Text: "Email", Width: 280, Height: 24, Fill: design.TextDark, FontSize: 14},
			{Role: RoleInput, Kind: canvas.KindTextInput, Text: "", Width: 280, Height: 40, Fill: design.White},
			{Role: RoleLabel, Kind: canvas.KindText, Text: "Password", Width: 280, Height: 24, Fill: design.TextDark, FontSize: 14},
			{Role: RoleInput, Kind: canvas.KindTextInput, Text: "", Width: 280, Height: 40, Fill: design.White},
			{Role: RoleButton, Kind: canvas.KindRectangle, Text: "", Width: 120, Height: 40, Fill: design.Blue},
		},
		Rules: Rules{
			Axis:     AxisVertical,
			Gap:      design.Gap,
			Padding:  4 * design.Spacing,
			CenterOn: RoleButton,
		},
	}
}

func navigationBar() *Blueprint {
	return &Blueprint{
		Name: CompositeNavBar,
		Container: Container{
			Width: 960, Height: 60,
			X: 480, Y: 40,
			Fill: design.TextDark,
		},
		Elements: []Element{
			{Role: RoleMenuItem, Kind: canvas.KindText, Text: "Home", Width: 120, Height: 24, Fill: design.White, FontSize: 16},
			{Role: RoleMenuItem, Kind: canvas.KindText, Text: "Products", Width: 120, Height: 24, Fill: design.White, FontSize: 16},
			{Role: RoleMenuItem, Kind: canvas.KindText, Text: "About", Width: 120, Height: 24, Fill: design.White, FontSize: 16},
			{Role: RoleMenuItem, Kind: canvas.KindText, Text: "Contact", Width: 120, Height: 24, Fill: design.White, FontSize: 16},
		},
		Rules: Rules{
			Axis:    AxisHorizontal,
			Gap:     design.Gap,
			Padding: 2 * design.Spacing,
		},
	}
}

func card() *Blueprint {
	return &Blueprint{
		Name: CompositeCard,
		Container: Container{
			Width: 320, Height: 400,
			X: 800, Y: 336,
			Fill: design.White,
		},
		Elements: []Element{
			{Role: RoleImage, Kind: canvas.KindRectangle, Text: "", Width: 280, Height: 160, Fill: design.Gray},
			{Role: RoleTitle, Kind: canvas.KindText, Text: "Card Title", Width: 280, Height: 32, Fill: design.TextDark, FontSize: 20},
			{Role: RoleBody, Kind: canvas.KindText, Text: "Card description goes here.", Width: 280, Height: 48, Fill: design.TextDark, FontSize: 14},
			{Role: RoleButton, Kind: canvas.KindRectangle, Text: "", Width: 120, Height: 40, Fill: design.Blue},
		},
		Rules: Rules{
			Axis:     AxisVertical,
			Gap:      design.Gap,
			Padding:  3 * design.Spacing,
			CenterOn: RoleButton,
		},
	}
}
