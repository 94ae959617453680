package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/micetf/classifieur-numerique/internal/common"
	"github.com/micetf/classifieur-numerique/internal/document"
	"github.com/micetf/classifieur-numerique/internal/model"
)

// Strategy classifies documents with a language model. It is safe for
// concurrent use.
type Strategy struct {
	factory   ProviderFactory
	providers *lru.Cache[string, Provider]
	cache     *resultCache
	limiter   *rateLimiter
	logger    *slog.Logger
	cfg       Config
	retryOpts common.RetryOptions
}

// NewStrategy creates a strategy. A nil factory selects NewProvider.
func NewStrategy(cfg Config, factory ProviderFactory, logger *slog.Logger) (*Strategy, error) {
	if factory == nil {
		factory = NewProvider
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1000
	}

	providers, err := lru.New[string, Provider](4)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider cache: %w", err)
	}

	retryOpts := common.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	return &Strategy{
		factory:   factory,
		providers: providers,
		cache:     newResultCache(cfg.CacheSize, cfg.CacheTTL),
		limiter:   newRateLimiter(cfg.RateLimit),
		logger:    logger,
		cfg:       cfg,
		retryOpts: retryOpts,
	}, nil
}

// Classify asks the model for destination paths among paths. The returned
// result has AIGenerated set on it and on every match. Any failure is
// returned as an error so the caller can fall back.
func (s *Strategy) Classify(ctx context.Context, content string, paths []string, apiKey string) (model.Result, error) {
	if apiKey == "" {
		return model.Result{}, fmt.Errorf("%w: API key", common.ErrMissingConfig)
	}
	if len(paths) == 0 {
		return model.Result{}, &ErrInvalidResponse{Err: fmt.Errorf("no candidate paths")}
	}

	provider, err := s.provider(ctx, apiKey)
	if err != nil {
		return model.Result{}, err
	}

	sanitized := document.Truncate(document.Sanitize(content), MaxContentLength)
	key := cacheKey(provider.ModelID(), sanitized, paths)

	if matches, ok := s.cache.get(key); ok {
		s.logger.Debug("cache hit for document", "model", provider.ModelID())
		return model.NewResult(content, matches, true), nil
	}

	req := Request{
		Messages:    []Message{{Role: RoleUser, Content: buildPrompt(sanitized, paths)}},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	var resp *Response
	err = common.WithRetry(ctx, func() error {
		if err := s.limiter.wait(ctx); err != nil {
			return err
		}

		r, err := provider.Generate(ctx, req)
		if err != nil {
			s.logger.Warn("classification attempt failed",
				"model", provider.ModelID(),
				"error", err)
			return retryable(err)
		}

		resp = r
		return nil
	}, s.retryOpts)
	if err != nil {
		return model.Result{}, fmt.Errorf("classification request failed: %w", err)
	}

	matches, err := parseSuggestions(resp.Text, paths)
	if err != nil {
		return model.Result{}, err
	}

	s.cache.set(key, matches)

	s.logger.Info("document classified by model",
		"model", resp.Model,
		"suggestions", len(matches),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens)

	return model.NewResult(content, matches, true), nil
}

// provider returns the provider for apiKey, building it on first use.
func (s *Strategy) provider(ctx context.Context, apiKey string) (Provider, error) {
	if p, ok := s.providers.Get(apiKey); ok {
		return p, nil
	}

	cfg := s.cfg
	cfg.APIKey = apiKey

	p, err := s.factory(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	s.providers.Add(apiKey, p)
	return p, nil
}
