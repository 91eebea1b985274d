package commands

import (
	"context"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/layout"
)

// System defines the public contract for command processing: validation and
// preprocessing alone, or full execution against the canvas.
type System interface {
	Handler() *Handler

	Validate(ctx context.Context, intent Intent) *Result
	Execute(ctx context.Context, intent Intent) (*Outcome, error)
}

// Outcome is the result of executing one intent: the validation result, the
// objects the command created or changed, and — for composites — the sanity
// report.
type Outcome struct {
	Action  Action           `json:"action"`
	Result  *Result          `json:"result"`
	Objects []*canvas.Object `json:"objects,omitempty"`
	Report  *layout.Report   `json:"report,omitempty"`
}
