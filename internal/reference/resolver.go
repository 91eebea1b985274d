package reference

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

// Weights holds the resolver scoring weights. The relative ordering
// color > kind > text > size > modifier is the behavioral contract; the
// magnitudes are tunable.
type Weights struct {
	Color       int `toml:"color"`
	Kind        int `toml:"kind"`
	Size        int `toml:"size"`
	Text        int `toml:"text"`
	Modifier    int `toml:"modifier"`
	Description int `toml:"description"`
}

// WeightsEnv maps scoring weights to environment variable names.
type WeightsEnv struct {
	Color       string
	Kind        string
	Size        string
	Text        string
	Modifier    string
	Description string
}

// Finalize applies defaults, environment overrides, and validation.
func (w *Weights) Finalize(env *WeightsEnv) error {
	w.loadDefaults()
	if env != nil {
		w.loadEnv(env)
	}
	return w.validate()
}

// Merge overwrites non-zero weights from overlay.
func (w *Weights) Merge(overlay *Weights) {
	if overlay.Color != 0 {
		w.Color = overlay.Color
	}
	if overlay.Kind != 0 {
		w.Kind = overlay.Kind
	}
	if overlay.Size != 0 {
		w.Size = overlay.Size
	}
	if overlay.Text != 0 {
		w.Text = overlay.Text
	}
	if overlay.Modifier != 0 {
		w.Modifier = overlay.Modifier
	}
	if overlay.Description != 0 {
		w.Description = overlay.Description
	}
}

func (w *Weights) loadDefaults() {
	if w.Color == 0 {
		w.Color = 50
	}
	if w.Kind == 0 {
		w.Kind = 40
	}
	if w.Size == 0 {
		w.Size = 30
	}
	if w.Text == 0 {
		w.Text = 35
	}
	if w.Modifier == 0 {
		w.Modifier = 20
	}
	if w.Description == 0 {
		w.Description = 25
	}
}

func (w *Weights) loadEnv(env *WeightsEnv) {
	loadIntEnv(env.Color, &w.Color)
	loadIntEnv(env.Kind, &w.Kind)
	loadIntEnv(env.Size, &w.Size)
	loadIntEnv(env.Text, &w.Text)
	loadIntEnv(env.Modifier, &w.Modifier)
	loadIntEnv(env.Description, &w.Description)
}

func (w *Weights) validate() error {
	if w.Color <= w.Kind {
		return fmt.Errorf("color weight (%d) must exceed kind weight (%d)", w.Color, w.Kind)
	}
	if w.Kind <= w.Text {
		return fmt.Errorf("kind weight (%d) must exceed text weight (%d)", w.Kind, w.Text)
	}
	if w.Text <= w.Size {
		return fmt.Errorf("text weight (%d) must exceed size weight (%d)", w.Text, w.Size)
	}
	if w.Size <= w.Modifier {
		return fmt.Errorf("size weight (%d) must exceed modifier weight (%d)", w.Size, w.Modifier)
	}
	if w.Modifier < 1 {
		return fmt.Errorf("modifier weight must be positive")
	}
	return nil
}

func loadIntEnv(key string, target *int) {
	if key == "" {
		return
	}
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

// Resolver scores snapshot candidates against parsed attribute sets.
type Resolver struct {
	weights Weights
}

// NewResolver creates a Resolver with the given weights.
func NewResolver(weights Weights) *Resolver {
	return &Resolver{weights: weights}
}

// Resolve returns the best-matching object for the attribute set, or false
// when no candidate scores above zero. An empty attribute set is a bare
// reference and resolves to the first object in creation order. Equal top
// scores break toward the earlier-created object.
func (r *Resolver) Resolve(set AttributeSet, snapshot []canvas.Object) (*canvas.Object, bool) {
	if len(snapshot) == 0 {
		return nil, false
	}
	if set.Empty() {
		return &snapshot[0], true
	}

	best := -1
	bestScore := 0
	for i := range snapshot {
		if score := r.Score(set, snapshot, i); score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return nil, false
	}
	return &snapshot[best], true
}

// Score computes the match score for snapshot[i] against the attribute set.
// An explicitly named color or kind that the candidate does not satisfy is a
// veto: the score is zero no matter what else matches. The veto runs before
// any additive scoring so a wrong-colored object can never win on secondary
// attributes.
func (r *Resolver) Score(set AttributeSet, snapshot []canvas.Object, i int) int {
	o := &snapshot[i]
	score := 0

	if len(set.Colors) > 0 {
		if !matchesColor(o, set.Colors) {
			return 0
		}
		score += r.weights.Color
	}

	if len(set.Kinds) > 0 {
		if !matchesKind(o, set.Kinds) {
			return 0
		}
		score += r.weights.Kind
	}

	if len(set.Sizes) > 0 && containsSize(set.Sizes, o.Size()) {
		score += r.weights.Size
	}

	if len(set.Text) > 0 && o.Bearer() && matchesText(o, set.Text) {
		score += r.weights.Text
	}

	if len(set.Positions) > 0 && matchesPosition(o, i, len(snapshot), set.Positions) {
		score += r.weights.Modifier
	}

	if description := o.Describe(); set.Raw != "" &&
		(strings.Contains(set.Raw, description) || strings.Contains(description, set.Raw)) {
		score += r.weights.Description
	}

	return score
}

func matchesColor(o *canvas.Object, colors []string) bool {
	fill := strings.ToUpper(strings.TrimSpace(o.Fill))
	for _, name := range colors {
		if design.Palette[name] == fill {
			return true
		}
	}
	return false
}

func matchesKind(o *canvas.Object, kinds []canvas.Kind) bool {
	for _, kind := range kinds {
		if o.Kind == kind {
			return true
		}
	}
	return false
}

func containsSize(sizes []canvas.SizeClass, size canvas.SizeClass) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}

func matchesText(o *canvas.Object, fragments []string) bool {
	text := strings.ToLower(o.Text)
	if text == "" {
		return false
	}
	for _, fragment := range fragments {
		if strings.Contains(text, fragment) {
			return true
		}
	}
	return false
}

// matchesPosition checks positional modifiers against the viewport for
// spatial words and against creation order for first/last.
func matchesPosition(o *canvas.Object, i, total int, positions []Position) bool {
	cx := o.X + o.Width/2
	cy := o.Y + o.Height/2

	for _, pos := range positions {
		switch pos {
		case PosFirst:
			if i == 0 {
				return true
			}
		case PosLast:
			if i == total-1 {
				return true
			}
		case PosLeft:
			if cx < design.ViewportWidth/2 {
				return true
			}
		case PosRight:
			if cx >= design.ViewportWidth/2 {
				return true
			}
		case PosTop:
			if cy < design.ViewportHeight/2 {
				return true
			}
		case PosBottom:
			if cy >= design.ViewportHeight/2 {
				return true
			}
		case PosCenter:
			if cx >= design.ViewportWidth/3 && cx <= 2*design.ViewportWidth/3 &&
				cy >= design.ViewportHeight/3 && cy <= 2*design.ViewportHeight/3 {
				return true
			}
		}
	}
	return false
}
