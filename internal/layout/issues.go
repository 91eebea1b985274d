package layout

// IssueKind classifies a sanity finding.
type IssueKind string

// Sanity issue kinds.
const (
	IssueMissingContainer    IssueKind = "missing-container"
	IssueContainment         IssueKind = "containment"
	IssueMisalignment        IssueKind = "misalignment"
	IssueInconsistentSpacing IssueKind = "inconsistent-spacing"
	IssueInconsistentWidth   IssueKind = "inconsistent-width"
	IssueOffCenter           IssueKind = "off-center"
	IssueOffGrid             IssueKind = "off-grid"
	IssueLowContrast         IssueKind = "low-contrast"
)

// Severity ranks a sanity issue.
type Severity string

// Issue severities. High-severity issues cannot be auto-fixed and leave the
// composite invalid.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Issue is one sanity finding against a composite.
type Issue struct {
	Kind     IssueKind `json:"kind"`
	Severity Severity  `json:"severity"`
	IDs      []string  `json:"ids,omitempty"`
	Message  string    `json:"message"`
}

// FixKind describes what a corrective fix changed.
type FixKind string

// Fix kinds.
const (
	FixMove    FixKind = "move"
	FixResize  FixKind = "resize"
	FixRecolor FixKind = "recolor"
)

// Fix records one corrective mutation applied during the sanity pass.
type Fix struct {
	Kind    FixKind `json:"kind"`
	ID      string  `json:"id"`
	Message string  `json:"message"`
}

// Report is the outcome of a sanity pass. Fixes listed here have already
// been applied; there is no staged transaction. Score is
// max(0, 100 - 10*len(Issues)).
type Report struct {
	Composite string  `json:"composite"`
	Valid     bool    `json:"valid"`
	Issues    []Issue `json:"issues"`
	Fixes     []Fix   `json:"fixes"`
	Score     int     `json:"score"`
	Message   string  `json:"message"`
}
