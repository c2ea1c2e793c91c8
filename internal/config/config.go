package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	LLM struct {
		Provider       string
		APIKey         string
		Model          string
		BaseURL        string
		Temperature    float32
		MaxTokens      int
		Timeout        time.Duration
		PromptTemplate string
	}
	Log struct {
		Level  string
		Format string
	}
}

// providerKeyEnv lists the provider-native variables consulted when
// REPLYDRAFT_LLM_API_KEY is unset.
var providerKeyEnv = map[string]string{
	"groq":              "GROQ_API_KEY",
	"openai":            "OPENAI_API_KEY",
	"openai-compatible": "OPENAI_API_KEY",
	"anthropic":         "ANTHROPIC_API_KEY",
	"gemini":            "GEMINI_API_KEY",
}

// Load reads config from environment (REPLYDRAFT_ prefix), an optional .env
// file, and an optional replydraft.yaml. A missing API key is not an error
// here; callers report it before any generation is attempted.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional .env

	v := viper.New()
	v.SetEnvPrefix("REPLYDRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("replydraft")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("llm.provider", "groq")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 250)
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(v.GetString("llm.provider")))
	cfg.LLM.APIKey = strings.TrimSpace(v.GetString("llm.api_key"))
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.LLM.Temperature = float32(v.GetFloat64("llm.temperature"))
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")
	cfg.LLM.PromptTemplate = v.GetString("llm.prompt_template")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")

	if cfg.LLM.APIKey == "" {
		if name, ok := providerKeyEnv[cfg.LLM.Provider]; ok {
			cfg.LLM.APIKey = strings.TrimSpace(os.Getenv(name))
		}
	}

	timeout, err := time.ParseDuration(v.GetString("llm.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPLYDRAFT_LLM_TIMEOUT: %w", err)
	}
	cfg.LLM.Timeout = timeout

	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return nil, fmt.Errorf("REPLYDRAFT_LLM_TEMPERATURE must be between 0 and 2, got %v", cfg.LLM.Temperature)
	}
	if cfg.LLM.MaxTokens <= 0 {
		return nil, fmt.Errorf("REPLYDRAFT_LLM_MAX_TOKENS must be positive, got %d", cfg.LLM.MaxTokens)
	}

	return cfg, nil
}

// APIKeyEnv names the environment variable an operator should set for the
// configured provider.
func (c *Config) APIKeyEnv() string {
	if name, ok := providerKeyEnv[c.LLM.Provider]; ok {
		return "REPLYDRAFT_LLM_API_KEY or " + name
	}
	return "REPLYDRAFT_LLM_API_KEY"
}
