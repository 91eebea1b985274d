package reference

import (
	"strings"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
)

// MaxSuggestions caps the candidate list attached to resolution failures.
const MaxSuggestions = 3

// Suggestions returns descriptions of up to MaxSuggestions snapshot objects
// that share at least one token with the request text. Used to soften a hard
// resolution failure with nearby candidates.
func Suggestions(raw string, snapshot []canvas.Object) []string {
	requestTokens := map[string]bool{}
	for _, token := range strings.Fields(strings.ToLower(raw)) {
		requestTokens[strings.Trim(token, `.,!?;:"'`)] = true
	}

	var out []string
	for i := range snapshot {
		description := snapshot[i].Describe()
		for _, token := range strings.Fields(description) {
			if requestTokens[strings.Trim(token, `"`)] {
				out = append(out, description)
				break
			}
		}
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
