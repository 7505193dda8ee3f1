package utils

import (
	"context"
	"strings"
)

// PlannerClientInterface is the language-model boundary for itinerary
// generation and refinement. Implementations return the raw completion
// text; callers strip fences and parse.
type PlannerClientInterface interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// StripCodeFences removes a markdown code-fence wrapper (``` or
// ```json) from model output. Content without a fence passes through
// trimmed.
func StripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if !strings.HasPrefix(out, "```") {
		return out
	}
	out = strings.TrimPrefix(out, "```")
	if idx := strings.Index(out, "\n"); idx >= 0 {
		// drop the language tag on the opening fence line
		out = out[idx+1:]
	} else {
		out = strings.TrimPrefix(out, "json")
	}
	out = strings.TrimSpace(out)
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}
