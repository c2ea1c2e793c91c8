// Package llm adapts external chat-completion services to a single
// Complete call.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joestump/replydraft/internal/config"
)

// ErrNotConfigured is returned by New when no API key is available.
var ErrNotConfigured = errors.New("llm API key is not set")

// Completer sends one system/user instruction pair and returns the generated
// text. Implementations hold no per-call state.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// CompleterFunc adapts a plain function to Completer.
type CompleterFunc func(ctx context.Context, system, user string) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}

// APIError wraps any failure of the completion call.
type APIError struct {
	Provider   string
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API returned %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request: %v", e.Provider, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// errEmpty is wrapped in an APIError when the service returns no text.
var errEmpty = errors.New("empty completion")

// params are the generation settings shared by every provider.
type params struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

func paramsFrom(cfg *config.Config, defaultModel string) params {
	p := params{
		apiKey:      cfg.LLM.APIKey,
		model:       cfg.LLM.Model,
		baseURL:     cfg.LLM.BaseURL,
		temperature: cfg.LLM.Temperature,
		maxTokens:   cfg.LLM.MaxTokens,
		timeout:     cfg.LLM.Timeout,
	}
	if p.model == "" {
		p.model = defaultModel
	}
	return p
}

// withTimeout bounds a single call. A zero timeout leaves ctx unchanged.
func (p params) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.timeout)
}

// New creates a Completer for the configured provider. An unknown provider is
// reported before the key is checked; a known provider with an empty key
// returns ErrNotConfigured.
func New(ctx context.Context, cfg *config.Config) (Completer, error) {
	switch cfg.LLM.Provider {
	case "", "groq", "openai", "openai-compatible", "anthropic", "gemini":
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLM.Provider)
	}
	if cfg.LLM.APIKey == "" {
		return nil, ErrNotConfigured
	}
	switch cfg.LLM.Provider {
	case "", "groq":
		return newOpenAICompleter(cfg, "groq", defaultGroqBaseURL, defaultGroqModel), nil
	case "openai", "openai-compatible":
		return newOpenAICompleter(cfg, "openai", "", defaultOpenAIModel), nil
	case "anthropic":
		return newAnthropicCompleter(cfg), nil
	default: // gemini
		return newGeminiCompleter(ctx, cfg)
	}
}
