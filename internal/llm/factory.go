package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Supported providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
)

// Config holds configuration for the LLM strategy.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	MaxRetries  int
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	CacheSize   int
	RateLimit   int
	Temperature float64
	MaxTokens   int
}

// ProviderFactory builds a provider from configuration.
type ProviderFactory func(ctx context.Context, cfg Config) (Provider, error)

// NewProvider creates a Provider from configuration.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var p Provider
	var err error

	switch strings.ToLower(cfg.Provider) {
	case ProviderAnthropic, "":
		p, err = NewAnthropicProvider(cfg)
	case ProviderOpenAI:
		p, err = NewOpenAIProvider(cfg)
	case ProviderGemini:
		p, err = NewGeminiProvider(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return p, nil
}
