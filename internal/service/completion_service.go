package service

import (
	"context"
	"strings"

	"ai-coach-agent-be/internal/constant"
	"ai-coach-agent-be/internal/pkg/logger"
	"ai-coach-agent-be/pkg/llm"
)

type ICompletionService interface {
	// Complete never fails: remote errors downgrade to the local planner.
	Complete(ctx context.Context, userText string) string
}

type completionService struct {
	provider llm.Provider // nil means no API key: local planner only
	log      logger.ILogger
}

func NewCompletionService(provider llm.Provider, log logger.ILogger) ICompletionService {
	return &completionService{
		provider: provider,
		log:      log,
	}
}

func (s *completionService) Complete(ctx context.Context, userText string) string {
	if s.provider == nil {
		return llm.ShortPlanFromPrompt(userText)
	}

	prompt := constant.CoachSystemPromptV1 + "\nUser: " + userText
	reply, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		s.log.Error("CompletionService", "remote completion failed, serving fallback", map[string]interface{}{
			"provider": s.provider.Name(),
			"error":    err.Error(),
		})
		return llm.ShortPlanFromPrompt(userText) + constant.DegradedReplySuffix
	}

	return strings.TrimSpace(reply)
}
