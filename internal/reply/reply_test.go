package reply

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/replydraft/internal/config"
	"github.com/joestump/replydraft/internal/llm"
	"github.com/joestump/replydraft/internal/prompt"
	"github.com/joestump/replydraft/internal/scenario"
)

// recorder is a Completer that remembers what it was asked and answers with
// a fixed reply or error.
type recorder struct {
	calls  int
	system string
	user   string
	reply  string
	err    error
}

func (r *recorder) Complete(_ context.Context, system, user string) (string, error) {
	r.calls++
	r.system, r.user = system, user
	return r.reply, r.err
}

func validRequest() scenario.Request {
	return scenario.Request{
		Kind:         scenario.ExchangeRequest,
		CustomerName: "Jane Doe",
		OrderID:      "ORD-1001",
	}
}

func TestGenerate_Success(t *testing.T) {
	rec := &recorder{reply: "Dear Jane,\n\nWarm Regards,\nTeam Toffle"}
	g := NewGenerator(rec, nil, "groq")

	res := g.Generate(context.Background(), validRequest())
	require.True(t, res.OK(), res.Message)
	assert.Equal(t, rec.reply, res.Text)
	assert.NotEmpty(t, res.RequestID)
	assert.NoError(t, res.Err())

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, prompt.SystemInstruction, rec.system)
	assert.Contains(t, rec.user, "Exchange Request")
}

func TestGenerate_ValidationBlocksCall(t *testing.T) {
	tests := []struct {
		name string
		req  scenario.Request
	}{
		{name: "no name", req: scenario.Request{OrderID: "ORD-1"}},
		{name: "no order", req: scenario.Request{CustomerName: "Jane"}},
		{name: "whitespace", req: scenario.Request{CustomerName: " ", OrderID: "\t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{reply: "unused"}
			res := NewGenerator(rec, nil, "groq").Generate(context.Background(), tt.req)

			assert.Equal(t, KindValidation, res.Kind)
			assert.Zero(t, rec.calls)
			var verr *prompt.ValidationError
			assert.True(t, errors.As(res.Err(), &verr))
		})
	}
}

func TestGenerate_NilCompleterIsConfigurationError(t *testing.T) {
	res := NewGenerator(nil, nil, "groq").Generate(context.Background(), validRequest())
	assert.Equal(t, KindConfiguration, res.Kind)

	var cerr *ConfigurationError
	require.True(t, errors.As(res.Err(), &cerr))
	assert.ErrorIs(t, res.Err(), llm.ErrNotConfigured)
}

func TestGenerate_ConfigurationCheckedBeforeValidation(t *testing.T) {
	res := NewGenerator(nil, nil, "groq").Generate(context.Background(), scenario.Request{})
	assert.Equal(t, KindConfiguration, res.Kind)
}

func TestGenerate_APIError(t *testing.T) {
	rec := &recorder{err: errors.New("connection refused")}
	res := NewGenerator(rec, nil, "groq").Generate(context.Background(), validRequest())

	assert.Equal(t, KindAPI, res.Kind)
	assert.Contains(t, res.Message, "connection refused")
	var apiErr *llm.APIError
	require.True(t, errors.As(res.Err(), &apiErr))
	assert.Equal(t, "groq", apiErr.Provider)
	assert.Equal(t, 1, rec.calls)
}

func TestGenerate_KeepsProviderAPIError(t *testing.T) {
	orig := &llm.APIError{Provider: "anthropic", StatusCode: 529, Err: errors.New("overloaded")}
	rec := &recorder{err: orig}
	res := NewGenerator(rec, nil, "anthropic").Generate(context.Background(), validRequest())

	var apiErr *llm.APIError
	require.True(t, errors.As(res.Err(), &apiErr))
	assert.Same(t, orig, apiErr)
	assert.Contains(t, res.Message, "529")
}

func TestGenerate_TemplateExecFailureIsConfiguration(t *testing.T) {
	composer, err := prompt.NewComposer("{{.Nope}}")
	require.NoError(t, err)
	rec := &recorder{reply: "x"}

	res := NewGenerator(rec, composer, "groq").Generate(context.Background(), validRequest())
	assert.Equal(t, KindConfiguration, res.Kind)
	assert.Zero(t, rec.calls)
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.Provider = "groq"
	cfg.LLM.MaxTokens = 250
	cfg.LLM.Timeout = time.Second

	g, err := FromConfig(context.Background(), cfg)
	require.NoError(t, err)
	require.Error(t, g.Ready())
	assert.Contains(t, g.Ready().Error(), "GROQ_API_KEY")

	cfg.LLM.Provider = "fax"
	cfg.LLM.APIKey = "k"
	g, err = FromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Contains(t, g.Ready().Error(), "unsupported LLM provider")

	cfg.LLM.Provider = "groq"
	g, err = FromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.NoError(t, g.Ready())

	cfg.LLM.PromptTemplate = "{{"
	_, err = FromConfig(context.Background(), cfg)
	assert.Error(t, err)
}

func TestFromConfig_UnavailableKeepsCustomTemplate(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.Provider = "groq"
	cfg.LLM.MaxTokens = 250
	cfg.LLM.Timeout = time.Second
	cfg.LLM.PromptTemplate = "CUSTOM {{.CustomerName}} / {{.OrderID}}"

	g, err := FromConfig(context.Background(), cfg)
	require.NoError(t, err)
	require.ErrorIs(t, g.Ready(), llm.ErrNotConfigured)

	composed, err := g.Compose(scenario.Request{Kind: scenario.Other, CustomerName: "A", OrderID: "1"})
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM A / 1", composed.User)
	assert.Equal(t, prompt.SystemInstruction, composed.System)
}

func TestDraft_FailureKeepsPreviousText(t *testing.T) {
	var d Draft
	assert.False(t, d.HasText())

	d = d.Apply(Result{Text: "first reply"})
	assert.Equal(t, Draft{Text: "first reply"}, d)

	d = d.Apply(failure("id", KindAPI, errors.New("quota exceeded")))
	assert.Equal(t, "first reply", d.Text)
	assert.Equal(t, "quota exceeded", d.Error)

	d = d.Apply(Result{Text: "second reply"})
	assert.Equal(t, Draft{Text: "second reply"}, d)
}

func TestGenerate_WithGeneratorAndDraft(t *testing.T) {
	rec := &recorder{reply: "ok reply"}
	g := NewGenerator(rec, nil, "groq")

	var d Draft
	d = d.Apply(g.Generate(context.Background(), validRequest()))
	require.Equal(t, "ok reply", d.Text)

	rec.err = errors.New("boom")
	d = d.Apply(g.Generate(context.Background(), validRequest()))
	assert.Equal(t, "ok reply", d.Text)
	assert.True(t, strings.Contains(d.Error, "boom"))
}
