package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/joestump/replydraft/internal/config"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiCompleter struct {
	params params
	client *genai.Client
}

func newGeminiCompleter(ctx context.Context, cfg *config.Config) (*geminiCompleter, error) {
	p := paramsFrom(cfg, defaultGeminiModel)
	opts := []option.ClientOption{option.WithAPIKey(p.apiKey)}
	if p.baseURL != "" {
		opts = append(opts, option.WithEndpoint(p.baseURL))
	}
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiCompleter{params: p, client: client}, nil
}

func (g *geminiCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := g.params.withTimeout(ctx)
	defer cancel()

	model := g.client.GenerativeModel(g.params.model)
	model.SetTemperature(g.params.temperature)
	model.SetMaxOutputTokens(int32(g.params.maxTokens))
	if strings.TrimSpace(system) != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", &APIError{Provider: "gemini", Err: err}
	}
	text := geminiText(resp)
	if text == "" {
		return "", &APIError{Provider: "gemini", Err: errEmpty}
	}
	return text, nil
}

// geminiText joins the text parts of the first candidate.
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range c.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String())
}

// Close releases the underlying gRPC connection.
func (g *geminiCompleter) Close() error {
	return g.client.Close()
}
