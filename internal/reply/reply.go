// Package reply runs one reply generation end to end: validate, compose,
// complete.
package reply

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/joestump/replydraft/internal/config"
	"github.com/joestump/replydraft/internal/llm"
	"github.com/joestump/replydraft/internal/metrics"
	"github.com/joestump/replydraft/internal/prompt"
	"github.com/joestump/replydraft/internal/scenario"
)

// ErrorKind classifies a failed generation.
type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindValidation    ErrorKind = "validation"
	KindAPI           ErrorKind = "api"
)

// ConfigurationError means generation is disabled until the operator fixes
// the credential or provider settings.
type ConfigurationError struct {
	Hint string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Hint)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Result is the outcome of one Generate call. Exactly one of Text or Kind is
// set.
type Result struct {
	RequestID string
	Text      string
	Kind      ErrorKind
	Message   string
	err       error
}

// OK reports whether the result carries generated text.
func (r Result) OK() bool { return r.Kind == "" }

// Err returns the underlying typed error, or nil on success.
func (r Result) Err() error { return r.err }

func failure(id string, kind ErrorKind, err error) Result {
	return Result{RequestID: id, Kind: kind, Message: err.Error(), err: err}
}

// Generator turns reply requests into generated text.
type Generator struct {
	completer   llm.Completer
	composer    *prompt.Composer
	provider    string
	unavailable error
}

// NewGenerator wires a completer and composer. A nil completer produces a
// Generator that reports a ConfigurationError on every call.
func NewGenerator(completer llm.Completer, composer *prompt.Composer, provider string) *Generator {
	g := &Generator{completer: completer, composer: composer, provider: provider}
	if completer == nil {
		g.unavailable = &ConfigurationError{Err: llm.ErrNotConfigured}
	}
	return g
}

// Unavailable returns a Generator that refuses every request with err. The
// composer is kept so Compose still shows the prompt generation would send.
func Unavailable(composer *prompt.Composer, err *ConfigurationError) *Generator {
	return &Generator{composer: composer, unavailable: err}
}

// FromConfig builds a Generator from loaded config. Credential or provider
// problems yield an unavailable Generator rather than an error, so the UI can
// still render and explain what is missing. Only a broken prompt template is
// fatal.
func FromConfig(ctx context.Context, cfg *config.Config) (*Generator, error) {
	composer, err := prompt.NewComposer(cfg.LLM.PromptTemplate)
	if err != nil {
		return nil, err
	}

	completer, err := llm.New(ctx, cfg)
	if err != nil {
		cerr := &ConfigurationError{Err: err}
		if errors.Is(err, llm.ErrNotConfigured) {
			cerr.Hint = "set " + cfg.APIKeyEnv()
		}
		log.Warn().Err(err).Str("provider", cfg.LLM.Provider).Msg("reply generation disabled")
		metrics.Configured.Set(0)
		return Unavailable(composer, cerr), nil
	}

	metrics.Configured.Set(1)
	return NewGenerator(completer, composer, cfg.LLM.Provider), nil
}

// Ready returns the ConfigurationError that blocks generation, or nil.
func (g *Generator) Ready() error {
	return g.unavailable
}

// Close releases provider resources such as the Gemini gRPC connection.
func (g *Generator) Close() error {
	if c, ok := g.completer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Compose exposes the prompt the Generator would send, without calling the
// completion service.
func (g *Generator) Compose(req scenario.Request) (prompt.Composed, error) {
	if g.composer == nil {
		return prompt.Compose(req)
	}
	return g.composer.Compose(req)
}

// Generate validates req, composes the prompt and calls the completion
// service once. No call is made when configuration or validation fails.
func (g *Generator) Generate(ctx context.Context, req scenario.Request) Result {
	id := uuid.NewString()
	logger := log.With().Str("request_id", id).Str("scenario", req.Kind.Slug()).Logger()

	if g.unavailable != nil {
		metrics.GenerationsTotal.WithLabelValues(req.Kind.Slug(), string(KindConfiguration)).Inc()
		logger.Warn().Err(g.unavailable).Msg("generation blocked")
		return failure(id, KindConfiguration, g.unavailable)
	}

	composed, err := g.Compose(req)
	if err != nil {
		var verr *prompt.ValidationError
		if errors.As(err, &verr) {
			metrics.GenerationsTotal.WithLabelValues(req.Kind.Slug(), string(KindValidation)).Inc()
			logger.Debug().Str("field", verr.Field).Msg("validation failed")
			return failure(id, KindValidation, err)
		}
		// A template that parses but fails to execute is an operator problem.
		metrics.GenerationsTotal.WithLabelValues(req.Kind.Slug(), string(KindConfiguration)).Inc()
		logger.Error().Err(err).Msg("compose failed")
		return failure(id, KindConfiguration, &ConfigurationError{Err: err})
	}

	start := time.Now()
	text, err := g.completer.Complete(ctx, composed.System, composed.User)
	elapsed := time.Since(start)
	metrics.CompletionDuration.WithLabelValues(g.provider).Observe(elapsed.Seconds())

	if err != nil {
		var apiErr *llm.APIError
		if !errors.As(err, &apiErr) {
			apiErr = &llm.APIError{Provider: g.provider, Err: err}
		}
		metrics.GenerationsTotal.WithLabelValues(req.Kind.Slug(), string(KindAPI)).Inc()
		logger.Error().Err(err).Dur("elapsed", elapsed).Msg("completion failed")
		return failure(id, KindAPI, apiErr)
	}

	metrics.GenerationsTotal.WithLabelValues(req.Kind.Slug(), "ok").Inc()
	logger.Info().Dur("elapsed", elapsed).Int("chars", len(text)).Msg("reply generated")
	return Result{RequestID: id, Text: text}
}
