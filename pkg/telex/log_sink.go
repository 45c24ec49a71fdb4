package telex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ai-coach-agent-be/internal/pkg/logger"
)

// LogSink pushes conversation lines to the per-channel telex log endpoint.
// Every call is fire-and-forget: failures are logged, never returned.
type LogSink struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     logger.ILogger
}

func NewLogSink(baseURL, apiKey string, log logger.ILogger) *LogSink {
	return &LogSink{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 5 * time.Second},
		log:     log,
	}
}

func (s *LogSink) Push(ctx context.Context, channelId, content string) {
	if channelId == "" {
		return
	}

	url := fmt.Sprintf("%s/%s.txt", s.baseURL, channelId)
	payload, err := json.Marshal(map[string]string{"log": content})
	if err != nil {
		s.log.Debug("TelexLogSink", "could not marshal log payload", map[string]interface{}{"error": err.Error()})
		return
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		s.log.Debug("TelexLogSink", "could not build log request", map[string]interface{}{"error": err.Error()})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("X-AGENT-API-KEY", s.apiKey)
	}

	res, err := s.client.Do(req)
	if err != nil {
		s.log.Debug("TelexLogSink", "could not push to telex logs", map[string]interface{}{"error": err.Error()})
		return
	}
	res.Body.Close()
}
