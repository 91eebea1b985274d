// Package reference turns free-text object references into typed attribute
// sets and resolves them against a canvas snapshot. Parsing is a pure
// tokenizer over closed vocabularies; resolution is a veto-then-score match
// where explicitly named colors and kinds are hard requirements.
package reference

import (
	"strings"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

// Position is a positional modifier extracted from a reference.
type Position string

// Positional modifiers.
const (
	PosLeft   Position = "left"
	PosRight  Position = "right"
	PosTop    Position = "top"
	PosBottom Position = "bottom"
	PosCenter Position = "center"
	PosFirst  Position = "first"
	PosLast   Position = "last"
)

// AttributeSet is the parsed, order-independent form of an object reference.
// Built fresh per call and never persisted. Raw keeps the normalized input
// for the description-overlap bonus and candidate suggestions.
type AttributeSet struct {
	Raw       string
	Colors    []string
	Kinds     []canvas.Kind
	Sizes     []canvas.SizeClass
	Positions []Position
	Text      []string
}

// Empty reports whether the reference carried no usable attributes — a bare
// reference like "it" or "that one".
func (a *AttributeSet) Empty() bool {
	return len(a.Colors) == 0 && len(a.Kinds) == 0 && len(a.Sizes) == 0 &&
		len(a.Positions) == 0 && len(a.Text) == 0
}

// kindSynonyms maps shape words (and synonyms) to canonical kinds.
var kindSynonyms = map[string]canvas.Kind{
	"rectangle": canvas.KindRectangle,
	"rect":      canvas.KindRectangle,
	"square":    canvas.KindRectangle,
	"box":       canvas.KindRectangle,
	"ellipse":   canvas.KindEllipse,
	"circle":    canvas.KindEllipse,
	"oval":      canvas.KindEllipse,
	"triangle":  canvas.KindTriangle,
	"line":      canvas.KindLine,
	"arrow":     canvas.KindLine,
	"text":      canvas.KindText,
	"label":     canvas.KindText,
	"heading":   canvas.KindText,
	"title":     canvas.KindText,
	"input":     canvas.KindTextInput,
	"textbox":   canvas.KindTextInput,
	"field":     canvas.KindTextInput,
}

var sizeSynonyms = map[string]canvas.SizeClass{
	"small":  canvas.SizeSmall,
	"tiny":   canvas.SizeSmall,
	"little": canvas.SizeSmall,
	"medium": canvas.SizeMedium,
	"large":  canvas.SizeLarge,
	"big":    canvas.SizeLarge,
	"huge":   canvas.SizeLarge,
}

var positionWords = map[string]Position{
	"left":     PosLeft,
	"leftmost": PosLeft,
	"right":    PosRight,
	"top":      PosTop,
	"upper":    PosTop,
	"bottom":   PosBottom,
	"lower":    PosBottom,
	"center":   PosCenter,
	"middle":   PosCenter,
	"first":    PosFirst,
	"last":     PosLast,
}

// stopwords are filler tokens that would otherwise leak into the residual
// literal-text bucket.
var stopwords = map[string]bool{
	"the": true, "and": true, "with": true, "that": true, "this": true,
	"one": true, "shape": true, "object": true, "element": true,
	"named": true, "called": true, "labeled": true, "says": true,
}

// Parse tokenizes a free-text reference into an AttributeSet. Each token is
// classified against the closed vocabularies in fixed priority order: color,
// kind, size, position, then residual literal text (tokens of length >= 3).
// Quoted spans become literal text directly. Parse is pure and
// deterministic.
func Parse(text string) AttributeSet {
	normalized := strings.ToLower(strings.TrimSpace(text))
	set := AttributeSet{Raw: normalized}

	remainder := extractQuoted(normalized, &set)

	for _, token := range strings.Fields(remainder) {
		token = strings.Trim(token, ".,!?;:()")
		if token == "" {
			continue
		}

		if name, ok := canonicalColor(token); ok {
			set.Colors = appendUnique(set.Colors, name)
			continue
		}
		if kind, ok := kindSynonyms[token]; ok {
			set.Kinds = appendUnique(set.Kinds, kind)
			continue
		}
		if size, ok := sizeSynonyms[token]; ok {
			set.Sizes = appendUnique(set.Sizes, size)
			continue
		}
		if pos, ok := positionWords[token]; ok {
			set.Positions = appendUnique(set.Positions, pos)
			continue
		}
		if len(token) >= 3 && !stopwords[token] {
			set.Text = append(set.Text, token)
		}
	}

	return set
}

// KindWord resolves a shape word (including synonyms) to its canonical
// kind.
func KindWord(token string) (canvas.Kind, bool) {
	kind, ok := kindSynonyms[strings.ToLower(strings.TrimSpace(token))]
	return kind, ok
}

// FindKindWord scans text for the first shape word and returns it with its
// canonical kind.
func FindKindWord(text string) (word string, kind canvas.Kind, ok bool) {
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,!?;:()\"'")
		if k, found := kindSynonyms[token]; found {
			return token, k, true
		}
	}
	return "", "", false
}

// canonicalColor resolves a color word through the palette, collapsing
// synonyms (navy -> blue) to their canonical name.
func canonicalColor(token string) (string, bool) {
	hex, ok := design.NamedColor(token)
	if !ok {
		return "", false
	}
	for _, name := range canonicalNames {
		if design.Palette[name] == hex {
			return name, true
		}
	}
	return token, true
}

var canonicalNames = []string{
	"red", "orange", "yellow", "green", "blue",
	"purple", "pink", "gray", "white", "black",
}

// extractQuoted pulls quoted spans out of the text into the literal-text
// bucket and returns the text with those spans removed.
func extractQuoted(text string, set *AttributeSet) string {
	var remainder strings.Builder

	for {
		start := strings.IndexAny(text, `"'`)
		if start < 0 {
			remainder.WriteString(text)
			break
		}
		quote := text[start]
		end := strings.IndexByte(text[start+1:], quote)
		if end < 0 {
			remainder.WriteString(text)
			break
		}

		remainder.WriteString(text[:start])
		remainder.WriteByte(' ')
		if span := strings.TrimSpace(text[start+1 : start+1+end]); span != "" {
			set.Text = append(set.Text, span)
		}
		text = text[start+end+2:]
	}

	return remainder.String()
}

func appendUnique[T comparable](list []T, v T) []T {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
