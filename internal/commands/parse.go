package commands

import (
	"fmt"

	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/formatting"
)

// ParseIntent extracts a command intent from raw model output. Accepts plain
// JSON or JSON wrapped in a markdown code fence, which chat models emit
// routinely.
func ParseIntent(content string) (Intent, error) {
	intent, err := formatting.Parse[Intent](content)
	if err != nil {
		return Intent{}, fmt.Errorf("%w: %v", ErrInvalidIntent, err)
	}
	if intent.Action == "" {
		return Intent{}, fmt.Errorf("%w: missing action", ErrInvalidIntent)
	}
	return intent, nil
}
