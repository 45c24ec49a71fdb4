package llm

import (
	"strings"
	"testing"
)

func TestShortPlanFromPrompt(t *testing.T) {
	tests := []struct {
		name       string
		prompt     string
		wantPlan   bool
		wantEchoed string
	}{
		{
			name:       "learn keyword triggers plan",
			prompt:     "I want to learn Rust",
			wantPlan:   true,
			wantEchoed: "I want to learn Rust",
		},
		{
			name:       "keyword match is case insensitive",
			prompt:     "PLEASE HELP ME STUDY",
			wantPlan:   true,
			wantEchoed: "PLEASE HELP ME STUDY",
		},
		{
			name:       "keyword inside a word still matches",
			prompt:     "replanning my week",
			wantPlan:   true,
			wantEchoed: "replanning my week",
		},
		{
			name:       "no keyword falls back to generic reply",
			prompt:     "What is the weather like?",
			wantPlan:   false,
			wantEchoed: "What is the weather like?",
		},
		{
			name:       "empty prompt gets a generic reply",
			prompt:     "",
			wantPlan:   false,
			wantEchoed: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortPlanFromPrompt(tt.prompt)

			if tt.wantPlan {
				if !strings.HasPrefix(got, "Quick 4-week plan for: "+tt.wantEchoed) {
					t.Errorf("expected 4-week plan echoing prompt, got: %q", got)
				}
				for _, week := range []string{"Week 1", "Week 2", "Week 3", "Week 4"} {
					if !strings.Contains(got, week) {
						t.Errorf("plan missing %s section", week)
					}
				}
			} else {
				if !strings.HasPrefix(got, "I can help with that: "+tt.wantEchoed) {
					t.Errorf("expected generic reply echoing prompt, got: %q", got)
				}
			}
		})
	}
}

func TestShortPlanFromPromptDeterministic(t *testing.T) {
	prompt := "teach me to cook"
	first := ShortPlanFromPrompt(prompt)
	for i := 0; i < 5; i++ {
		if got := ShortPlanFromPrompt(prompt); got != first {
			t.Fatalf("output changed between calls: %q vs %q", first, got)
		}
	}
}
