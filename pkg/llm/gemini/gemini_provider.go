package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	generateContentURL = "https://generativelanguage.googleapis.com/v1/models/gemini-1.5-flash:generateContent"
	requestTimeout     = 60 * time.Second
)

type chatParts struct {
	Text string `json:"text"`
}

type chatContent struct {
	Parts []*chatParts `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type chatRequest struct {
	Contents []*chatContent `json:"contents"`
}

type chatCandidate struct {
	Content *chatContent `json:"content"`
}

type chatResponse struct {
	Candidates []*chatCandidate `json:"candidates"`
	// Some proxy deployments flatten the payload to a bare text attribute.
	Text string `json:"text"`
}

type GeminiProvider struct {
	apiKey string
	client *http.Client
}

func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{
		apiKey: apiKey,
		client: &http.Client{Timeout: requestTimeout},
	}
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Contents: []*chatContent{
			{
				Parts: []*chatParts{{Text: prompt}},
				Role:  "user",
			},
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		generateContentURL,
		bytes.NewBuffer(payloadJson),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	return extractText(resBody)
}

// extractText handles the candidates/content shape and the flat text shape;
// anything else is coerced to its string representation.
func extractText(resBody []byte) (string, error) {
	var geminiRes chatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) > 0 && geminiRes.Candidates[0].Content != nil {
		fragments := make([]string, 0, len(geminiRes.Candidates[0].Content.Parts))
		for _, part := range geminiRes.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				fragments = append(fragments, part.Text)
			}
		}
		if len(fragments) > 0 {
			return strings.TrimSpace(strings.Join(fragments, " ")), nil
		}
	}

	if geminiRes.Text != "" {
		return strings.TrimSpace(geminiRes.Text), nil
	}

	return strings.TrimSpace(string(resBody)), nil
}
