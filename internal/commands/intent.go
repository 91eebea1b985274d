// Package commands validates, preprocesses, and executes structured canvas
// command intents. The language-model front end that produces intents is out
// of scope; this package receives its output, resolves object references
// against the live snapshot, synthesizes create-first fallbacks, and drives
// the mutation interface.
package commands

import (
	"strings"
)

// Action is one of the closed set of command actions.
type Action string

// Command actions.
const (
	ActionCreate          Action = "create"
	ActionMove            Action = "move"
	ActionResize          Action = "resize"
	ActionRotate          Action = "rotate"
	ActionRecolor         Action = "recolor"
	ActionRetext          Action = "retext"
	ActionDelete          Action = "delete"
	ActionList            Action = "list"
	ActionArrange         Action = "arrange"
	ActionCreateMany      Action = "create-many"
	ActionDistribute      Action = "distribute"
	ActionCreateComposite Action = "create-composite"
)

// Category buckets actions for validation dispatch.
type Category string

// Action categories.
const (
	CategoryCreation     Category = "creation"
	CategoryManipulation Category = "manipulation"
	CategoryLayout       Category = "layout"
	CategoryQuery        Category = "query"
)

// actionCategories is the fixed action classification lookup.
var actionCategories = map[Action]Category{
	ActionCreate:          CategoryCreation,
	ActionCreateMany:      CategoryCreation,
	ActionCreateComposite: CategoryCreation,
	ActionMove:            CategoryManipulation,
	ActionResize:          CategoryManipulation,
	ActionRotate:          CategoryManipulation,
	ActionRecolor:         CategoryManipulation,
	ActionRetext:          CategoryManipulation,
	ActionDelete:          CategoryManipulation,
	ActionArrange:         CategoryLayout,
	ActionDistribute:      CategoryLayout,
	ActionList:            CategoryQuery,
}

// Categorize returns the category for an action.
func Categorize(action Action) (Category, bool) {
	category, ok := actionCategories[action]
	return category, ok
}

// Intent is a structured canvas command: an action plus loosely-typed
// parameters, as produced by the natural-language front end. Text carries
// the original request for reference resolution and fallbacks.
type Intent struct {
	Action Action         `json:"action"`
	Params map[string]any `json:"params,omitempty"`
	Text   string         `json:"text,omitempty"`
}

// str returns a string parameter, trimmed; empty if absent or mistyped.
func (in *Intent) str(key string) string {
	v, _ := in.Params[key].(string)
	return strings.TrimSpace(v)
}

// num returns a numeric parameter; JSON numbers arrive as float64, but
// integers from typed callers are accepted too.
func (in *Intent) num(key string) (float64, bool) {
	switch v := in.Params[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// count returns an integer parameter, defaulting when absent or invalid.
func (in *Intent) count(key string, fallback int) int {
	if v, ok := in.num(key); ok && v >= 1 {
		return int(v)
	}
	return fallback
}

// strs returns a string-list parameter, accepting []string or []any.
func (in *Intent) strs(key string) []string {
	switch v := in.Params[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
