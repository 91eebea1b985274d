package commands

import "fmt"

// Result is the outcome of validating and preprocessing one intent. It is
// created per command, consumed immediately, and never stored. Enhanced
// holds rewritten parameters (resolved ids, defaults, create-first plans);
// Reasoning is the human-readable explanation trail for every branch taken.
type Result struct {
	Valid       bool           `json:"valid"`
	Errors      []string       `json:"errors,omitempty"`
	Warnings    []string       `json:"warnings,omitempty"`
	Enhanced    map[string]any `json:"enhanced_params,omitempty"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Reasoning   []string       `json:"reasoning"`
}

func newResult() *Result {
	return &Result{
		Valid:    true,
		Enhanced: map[string]any{},
	}
}

func (r *Result) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) reason(format string, args ...any) {
	r.Reasoning = append(r.Reasoning, fmt.Sprintf(format, args...))
}

// CreateFirst reports whether preprocessing rewrote the command into a
// "create, then manipulate" plan.
func (r *Result) CreateFirst() bool {
	v, _ := r.Enhanced["create_first"].(bool)
	return v
}

// TargetID returns the resolved target object id, if any.
func (r *Result) TargetID() string {
	v, _ := r.Enhanced["target_id"].(string)
	return v
}

// TargetIDs returns the resolved layout target ids, if any.
func (r *Result) TargetIDs() []string {
	v, _ := r.Enhanced["target_ids"].([]string)
	return v
}
