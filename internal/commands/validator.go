package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/layout"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/reference"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/design"
)

// Validator categorizes intents, resolves object references, and rewrites
// commands that cannot run as stated into runnable plans. It prefers local
// recovery over rejection: missing coordinates default to the viewport
// center, missing fills to the default palette entry, and a manipulation of
// a missing object becomes "create it first" whenever a shape kind can be
// inferred from the request.
type Validator struct {
	resolver *reference.Resolver
	logger   *slog.Logger
}

// NewValidator creates a Validator scoring with the given weights.
func NewValidator(weights reference.Weights, logger *slog.Logger) *Validator {
	return &Validator{
		resolver: reference.NewResolver(weights),
		logger:   logger.With("system", "commands"),
	}
}

// Validate checks one intent against the snapshot and returns the
// preprocessed result. Validate never mutates the canvas.
func (v *Validator) Validate(ctx context.Context, intent Intent, snapshot []canvas.Object) *Result {
	result := newResult()

	category, ok := Categorize(intent.Action)
	if !ok {
		result.fail("unknown action %q", intent.Action)
		return result
	}
	result.reason("action %q categorized as %s", intent.Action, category)

	switch category {
	case CategoryCreation:
		v.validateCreation(intent, result)
	case CategoryManipulation:
		v.validateManipulation(intent, snapshot, result)
	case CategoryLayout:
		v.validateLayout(intent, snapshot, result)
	case CategoryQuery:
		result.reason("query actions need no preprocessing")
	}

	v.logger.DebugContext(
		ctx, "intent validated",
		"action", intent.Action,
		"valid", result.Valid,
		"warnings", len(result.Warnings),
	)
	return result
}

func (v *Validator) validateCreation(intent Intent, result *Result) {
	switch intent.Action {
	case ActionCreateComposite:
		name := firstOf(intent.str("composite"), intent.str("name"))
		if name == "" {
			result.fail("create-composite requires a composite name")
			return
		}
		if !layout.Known(name) {
			result.fail("unknown composite layout %q (known: %s)", name, strings.Join(layout.Composites(), ", "))
			return
		}
		result.Enhanced["composite"] = name
		result.reason("composite %q found in the blueprint registry", name)

	case ActionCreateMany:
		v.resolveKind(intent, result)
		count := intent.count("count", 0)
		if count < 1 {
			result.fail("create-many requires a count of at least 1")
			return
		}
		result.Enhanced["count"] = count
		arrangement := firstOf(intent.str("arrangement"), string(layout.ModeGrid))
		result.Enhanced["arrangement"] = arrangement
		result.reason("creating %d objects arranged as %s", count, arrangement)
		v.defaultPlacement(intent, result)

	default: // ActionCreate
		v.resolveKind(intent, result)
		v.defaultPlacement(intent, result)
	}
}

// resolveKind pins down the shape kind for a creation, from the shape_type
// parameter or the first shape word in the request text.
func (v *Validator) resolveKind(intent Intent, result *Result) {
	word := firstOf(intent.str("shape_type"), intent.str("kind"))
	if word != "" {
		kind, ok := reference.KindWord(word)
		if !ok {
			result.fail("unknown shape type %q", word)
			return
		}
		result.Enhanced["shape_type"] = word
		result.Enhanced["kind"] = string(kind)
		result.reason("shape type %q maps to kind %s", word, kind)
		return
	}

	if word, kind, ok := reference.FindKindWord(intent.Text); ok {
		result.Enhanced["shape_type"] = word
		result.Enhanced["kind"] = string(kind)
		result.reason("inferred shape type %q from the request text", word)
		return
	}

	result.Enhanced["shape_type"] = "rectangle"
	result.Enhanced["kind"] = string(canvas.KindRectangle)
	result.reason("no shape type given; defaulted to rectangle")
}

// defaultPlacement fills in viewport-center coordinates and the default
// palette fill when the intent leaves them out.
func (v *Validator) defaultPlacement(intent Intent, result *Result) {
	if _, ok := intent.num("x"); !ok {
		cx, cy := design.ViewportCenter()
		result.Enhanced["x"] = design.Snap(cx)
		result.Enhanced["y"] = design.Snap(cy)
		result.reason("no coordinates given; assumed viewport center")
	}

	if intent.str("color") == "" && intent.str("fill") == "" {
		result.Enhanced["fill"] = design.Gray
		result.reason("no color given; assumed default palette entry")
	} else if hex, ok := namedOrHex(firstOf(intent.str("color"), intent.str("fill"))); ok {
		result.Enhanced["fill"] = hex
	} else {
		result.warn("unrecognized color %q; assumed default palette entry", firstOf(intent.str("color"), intent.str("fill")))
		result.Enhanced["fill"] = design.Gray
	}
}

func (v *Validator) validateManipulation(intent Intent, snapshot []canvas.Object, result *Result) {
	if id := intent.str("id"); id != "" {
		result.Enhanced["target_id"] = id
		result.reason("explicit object id supplied")
		return
	}

	raw := firstOf(intent.str("target"), intent.Text)
	set := reference.Parse(raw)

	if target, ok := v.resolver.Resolve(set, snapshot); ok {
		result.Enhanced["target_id"] = target.ID.String()
		result.reason("resolved %q to %s (%s)", raw, target.Describe(), target.ID)
		return
	}

	// No match. Deletion of a missing object is a hard failure; everything
	// else becomes a create-first plan when a shape kind is inferable.
	if intent.Action != ActionDelete {
		if word, kind, ok := fallbackKind(raw, set); ok {
			result.Enhanced["create_first"] = true
			result.Enhanced["shape_type"] = word
			result.Enhanced["kind"] = string(kind)
			if len(set.Colors) > 0 {
				result.Enhanced["fill"] = design.Palette[set.Colors[0]]
			}
			result.warn("no matching object; will create %s first, then %s it", word, intent.Action)
			result.reason("reference %q matched nothing; rewrote command as create-then-%s", raw, intent.Action)
			return
		}
	}

	result.fail("no object matches %q", raw)
	result.Suggestions = reference.Suggestions(raw, snapshot)
	if len(result.Suggestions) > 0 {
		result.reason("offering %d nearby candidate(s)", len(result.Suggestions))
	}
}

// fallbackKind infers the kind for a create-first plan: an explicit shape
// word in the reference, or the fixed rectangle default when the reference
// at least named a color or size. A reference carrying neither offers
// nothing to create.
func fallbackKind(raw string, set reference.AttributeSet) (string, canvas.Kind, bool) {
	if word, kind, ok := reference.FindKindWord(raw); ok {
		return word, kind, true
	}
	if len(set.Colors) > 0 || len(set.Sizes) > 0 {
		return "rectangle", canvas.KindRectangle, true
	}
	return "", "", false
}

func (v *Validator) validateLayout(intent Intent, snapshot []canvas.Object, result *Result) {
	targets := intent.strs("targets")

	if len(targets) == 0 {
		if len(snapshot) == 0 {
			result.fail("nothing to arrange: the canvas is empty")
			return
		}
		ids := make([]string, len(snapshot))
		for i := range snapshot {
			ids[i] = snapshot[i].ID.String()
		}
		result.Enhanced["target_ids"] = ids
		result.reason("no targets given; defaulted to all %d objects", len(ids))
	} else {
		ids := v.resolveTargets(targets, snapshot, result)
		if len(ids) == 0 {
			result.fail("none of the layout targets could be resolved")
			return
		}
		result.Enhanced["target_ids"] = ids
	}

	mode := firstOf(intent.str("arrangement"), intent.str("mode"), string(layout.ModeVertical))
	result.Enhanced["arrangement"] = mode
	result.reason("arrangement mode %s", mode)
}

// resolveTargets resolves each explicit layout target — by id when it names
// one, by reference otherwise — dropping unresolved entries with a warning
// rather than aborting the command.
func (v *Validator) resolveTargets(targets []string, snapshot []canvas.Object, result *Result) []string {
	byID := make(map[string]bool, len(snapshot))
	for i := range snapshot {
		byID[snapshot[i].ID.String()] = true
	}

	var ids []string
	for _, target := range targets {
		if byID[target] {
			ids = append(ids, target)
			continue
		}
		if o, ok := v.resolver.Resolve(reference.Parse(target), snapshot); ok {
			ids = append(ids, o.ID.String())
			result.reason("resolved layout target %q to %s", target, o.Describe())
			continue
		}
		result.warn("dropped unresolved layout target %q", target)
	}
	return ids
}

func namedOrHex(value string) (string, bool) {
	if hex, ok := design.NamedColor(value); ok {
		return hex, true
	}
	if strings.HasPrefix(value, "#") {
		if _, _, _, err := design.ParseHex(value); err == nil {
			return strings.ToUpper(value), true
		}
	}
	return "", false
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
