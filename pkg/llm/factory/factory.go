package factory

import (
	"ai-coach-agent-be/pkg/llm"
	"ai-coach-agent-be/pkg/llm/gemini"
)

// NewProvider returns the remote completion backend, or nil when no API key
// is configured. A nil provider is a supported mode: the completion service
// answers every prompt with the deterministic local planner.
func NewProvider(geminiAPIKey string) llm.Provider {
	if geminiAPIKey == "" {
		return nil
	}
	return gemini.NewGeminiProvider(geminiAPIKey)
}
