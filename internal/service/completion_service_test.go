package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-coach-agent-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	reply string
	err   error
}

func (p stubProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return p.reply, p.err
}

func (p stubProvider) Name() string { return "stub" }

func TestCompleteWithoutProviderUsesPlanner(t *testing.T) {
	svc := NewCompletionService(nil, nopLogger{})

	got := svc.Complete(context.Background(), "help me learn Go")

	assert.Equal(t, llm.ShortPlanFromPrompt("help me learn Go"), got)
	assert.False(t, strings.Contains(got, "LLM unavailable"))
}

func TestCompleteRemoteSuccessIsTrimmed(t *testing.T) {
	svc := NewCompletionService(stubProvider{reply: "  Start with the basics.  \n"}, nopLogger{})

	got := svc.Complete(context.Background(), "how do I start?")

	assert.Equal(t, "Start with the basics.", got)
}

func TestCompleteRemoteFailureDegradesToPlanner(t *testing.T) {
	svc := NewCompletionService(stubProvider{err: errors.New("upstream 503")}, nopLogger{})

	got := svc.Complete(context.Background(), "teach me chess")

	assert.True(t, strings.HasPrefix(got, llm.ShortPlanFromPrompt("teach me chess")))
	assert.True(t, strings.HasSuffix(got, "(LLM unavailable — served fallback)"))
}
