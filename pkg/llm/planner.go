package llm

import (
	"fmt"
	"strings"

	"ai-coach-agent-be/internal/constant"
)

// ShortPlanFromPrompt is the deterministic local substitute used whenever the
// remote model is unconfigured or unreachable. Same input, byte-identical
// output: no randomness, no timestamps.
func ShortPlanFromPrompt(userText string) string {
	text := strings.ToLower(userText)
	for _, keyword := range constant.CoachingKeywords {
		if strings.Contains(text, keyword) {
			return fmt.Sprintf(
				"Quick 4-week plan for: %s\n\n"+
					"Week 1 — Foundations: core concepts and simple exercises.\n"+
					"Week 2 — Tools & Practice: apply libraries / key tools.\n"+
					"Week 3 — Mini Projects: build a small project for practice.\n"+
					"Week 4 — Polish & Showcase: finish project and document it.\n\n"+
					"Next step: pick a 1-hour exercise to complete today.",
				userText,
			)
		}
	}
	return fmt.Sprintf(
		"I can help with that: %s\n\n"+
			"Next step: tell me the exact outcome you want and your timeline (e.g., 'Become job-ready in 3 months').",
		userText,
	)
}
