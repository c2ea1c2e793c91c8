package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/joestump/replydraft/internal/config"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
	defaultAnthropicModel   = "claude-haiku-4-5-20251001"
)

type anthropicCompleter struct {
	params params
	url    string
	client *http.Client
}

func newAnthropicCompleter(cfg *config.Config) *anthropicCompleter {
	p := paramsFrom(cfg, defaultAnthropicModel)
	base := p.baseURL
	if base == "" {
		base = defaultAnthropicBaseURL
	}
	return &anthropicCompleter{
		params: p,
		url:    strings.TrimRight(base, "/") + "/v1/messages",
		client: &http.Client{},
	}
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float32            `json:"temperature"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (a *anthropicCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := a.params.withTimeout(ctx)
	defer cancel()

	body := anthropicRequest{
		Model:       a.params.model,
		MaxTokens:   a.params.maxTokens,
		Temperature: a.params.temperature,
		System:      system,
		Messages:    []anthropicMessage{{Role: "user", Content: user}},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.params.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return "", &APIError{Provider: "anthropic", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{Provider: "anthropic", StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Provider: "anthropic", StatusCode: resp.StatusCode, Err: errors.New(string(bytes.TrimSpace(respBody)))}
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", &APIError{Provider: "anthropic", StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	var text strings.Builder
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	out := strings.TrimSpace(text.String())
	if out == "" {
		return "", &APIError{Provider: "anthropic", StatusCode: resp.StatusCode, Err: errEmpty}
	}
	return out, nil
}
