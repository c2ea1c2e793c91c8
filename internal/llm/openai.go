package llm

import (
	"context"
	"errors"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/joestump/replydraft/internal/config"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultOpenAIModel = "gpt-4o-mini"
)

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// openaiCompleter talks to any OpenAI-compatible chat completions endpoint,
// Groq included.
type openaiCompleter struct {
	name   string
	params params
	client chatClient
}

func newOpenAICompleter(cfg *config.Config, name, defaultBaseURL, defaultModel string) *openaiCompleter {
	p := paramsFrom(cfg, defaultModel)
	clientCfg := openai.DefaultConfig(p.apiKey)
	switch {
	case p.baseURL != "":
		clientCfg.BaseURL = strings.TrimRight(p.baseURL, "/")
	case defaultBaseURL != "":
		clientCfg.BaseURL = defaultBaseURL
	}
	return &openaiCompleter{
		name:   name,
		params: p,
		client: openai.NewClientWithConfig(clientCfg),
	}
}

func (o *openaiCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := o.params.withTimeout(ctx)
	defer cancel()

	// go-openai omits a zero temperature, which lets the server apply its own
	// default. The smallest non-zero value keeps an explicit 0 on the wire.
	temperature := o.params.temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.params.model,
		Temperature: temperature,
		MaxTokens:   o.params.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", &APIError{Provider: o.name, StatusCode: openaiStatus(err), Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &APIError{Provider: o.name, Err: errEmpty}
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", &APIError{Provider: o.name, Err: errEmpty}
	}
	return text, nil
}

func openaiStatus(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
