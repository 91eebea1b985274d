package reference_test

import (
	"slices"
	"testing"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/reference"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		colors    []string
		kinds     []canvas.Kind
		sizes     []canvas.SizeClass
		positions []reference.Position
		text_     []string
	}{
		{
			name:   "color and kind",
			text:   "the blue rectangle",
			colors: []string{"blue"},
			kinds:  []canvas.Kind{canvas.KindRectangle},
		},
		{
			name:   "kind synonym collapses",
			text:   "that circle",
			kinds:  []canvas.Kind{canvas.KindEllipse},
		},
		{
			name:   "color synonym collapses",
			text:   "the navy box",
			colors: []string{"blue"},
			kinds:  []canvas.Kind{canvas.KindRectangle},
		},
		{
			name:  "size synonyms",
			text:  "the tiny label",
			sizes: []canvas.SizeClass{canvas.SizeSmall},
			kinds: []canvas.Kind{canvas.KindText},
		},
		{
			name:      "positional modifier",
			text:      "the leftmost red circle",
			colors:    []string{"red"},
			kinds:     []canvas.Kind{canvas.KindEllipse},
			positions: []reference.Position{reference.PosLeft},
		},
		{
			name:  "quoted span becomes literal text",
			text:  `the input labeled "Email Address"`,
			kinds: []canvas.Kind{canvas.KindTextInput},
			text_: []string{"email address"},
		},
		{
			name:  "residual tokens land in text",
			text:  "the submit button",
			text_: []string{"submit", "button"},
		},
		{
			name:  "stopwords and short tokens dropped",
			text:  "the one that is it",
			text_: nil,
		},
		{
			name:      "everything at once",
			text:      "the large green rectangle at the top called 'Header'",
			colors:    []string{"green"},
			kinds:     []canvas.Kind{canvas.KindRectangle},
			sizes:     []canvas.SizeClass{canvas.SizeLarge},
			positions: []reference.Position{reference.PosTop},
			text_:     []string{"header"},
		},
		{
			name:   "duplicate attributes deduplicated",
			text:   "blue blue rectangle rect",
			colors: []string{"blue"},
			kinds:  []canvas.Kind{canvas.KindRectangle},
		},
		{
			name:   "punctuation trimmed",
			text:   "move the circle, please!",
			kinds:  []canvas.Kind{canvas.KindEllipse},
			text_:  []string{"move", "please"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := reference.Parse(tt.text)

			if !slices.Equal(set.Colors, tt.colors) {
				t.Errorf("colors = %v, want %v", set.Colors, tt.colors)
			}
			if !slices.Equal(set.Kinds, tt.kinds) {
				t.Errorf("kinds = %v, want %v", set.Kinds, tt.kinds)
			}
			if !slices.Equal(set.Sizes, tt.sizes) {
				t.Errorf("sizes = %v, want %v", set.Sizes, tt.sizes)
			}
			if !slices.Equal(set.Positions, tt.positions) {
				t.Errorf("positions = %v, want %v", set.Positions, tt.positions)
			}
			if !slices.Equal(set.Text, tt.text_) {
				t.Errorf("text = %v, want %v", set.Text, tt.text_)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, text := range []string{"it", "that one", "the shape", ""} {
		set := reference.Parse(text)
		if !set.Empty() {
			t.Errorf("Parse(%q).Empty() = false, want true (%+v)", text, set)
		}
	}

	if set := reference.Parse("blue"); set.Empty() {
		t.Error("Parse(\"blue\").Empty() = true, want false")
	}
}

func TestKindWord(t *testing.T) {
	tests := []struct {
		token string
		kind  canvas.Kind
		ok    bool
	}{
		{"circle", canvas.KindEllipse, true},
		{"Square", canvas.KindRectangle, true},
		{" field ", canvas.KindTextInput, true},
		{"heading", canvas.KindText, true},
		{"blob", "", false},
	}

	for _, tt := range tests {
		kind, ok := reference.KindWord(tt.token)
		if ok != tt.ok || kind != tt.kind {
			t.Errorf("KindWord(%q) = (%q, %v), want (%q, %v)", tt.token, kind, ok, tt.kind, tt.ok)
		}
	}
}

func TestFindKindWord(t *testing.T) {
	word, kind, ok := reference.FindKindWord("Add a red circle next to the rectangle")
	if !ok {
		t.Fatal("expected a kind word")
	}
	if word != "circle" || kind != canvas.KindEllipse {
		t.Errorf("got (%q, %q), want (circle, ellipse)", word, kind)
	}

	if _, _, ok := reference.FindKindWord("make it bigger"); ok {
		t.Error("expected no kind word")
	}
}
