package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/micetf/classifieur-numerique/internal/common"
	"github.com/micetf/classifieur-numerique/internal/hierarchy"
	"github.com/micetf/classifieur-numerique/internal/llm"
)

// EnvPrefix prefixes every environment variable read by viper.
const EnvPrefix = "CLASSIFIEUR"

// Config is the typed view of the application settings.
type Config struct {
	Logging        LoggingConfig
	Database       DatabaseConfig
	Hierarchy      HierarchyConfig
	Classification ClassificationConfig
	LLM            LLMConfig
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// DatabaseConfig locates the history database.
type DatabaseConfig struct {
	Path string
}

// HierarchyConfig selects and locates the folder hierarchies.
type HierarchyConfig struct {
	Type      hierarchy.Type
	URLs      map[hierarchy.Type]string
	File      string
	Timeout   time.Duration
	CacheSize int
}

// ClassificationConfig toggles the classification strategies.
type ClassificationConfig struct {
	PatternsFile string
	UseAI        bool
}

// LLMConfig configures the AI strategy.
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	RateLimit   int
	MaxRetries  int
	RetryDelay  time.Duration
	CacheTTL    time.Duration
}

// apiKeyEnv names the conventional environment variable of each provider.
var apiKeyEnv = map[string]string{
	llm.ProviderAnthropic: "ANTHROPIC_API_KEY",
	llm.ProviderOpenAI:    "OPENAI_API_KEY",
	llm.ProviderGemini:    "GEMINI_API_KEY",
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("database.path", "$HOME/.local/share/classifieur/history.db")

	v.SetDefault("hierarchy.type", string(hierarchy.TypeCPC))
	v.SetDefault("hierarchy.urls.cpc", hierarchy.DefaultCPCURL)
	v.SetDefault("hierarchy.urls.perso", hierarchy.DefaultPersoURL)
	v.SetDefault("hierarchy.file", "")
	v.SetDefault("hierarchy.timeout", 10*time.Second)
	v.SetDefault("hierarchy.cache_size", 8)

	v.SetDefault("classification.use_ai", false)
	v.SetDefault("classification.patterns_file", "")

	v.SetDefault("llm.provider", llm.ProviderAnthropic)
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_tokens", 1000)
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.rate_limit", 30)
	v.SetDefault("llm.max_retries", 2)
	v.SetDefault("llm.retry_delay", time.Second)
	v.SetDefault("llm.cache_ttl", 15*time.Minute)
}

// BindEnv makes CLASSIFIEUR_LLM_API_KEY style variables override the
// configuration file.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load builds a validated Config from v. Defaults are registered first so
// an empty viper instance yields a usable configuration.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	cfg := Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Database: DatabaseConfig{
			Path: ExpandPath(v.GetString("database.path")),
		},
		Hierarchy: HierarchyConfig{
			URLs: map[hierarchy.Type]string{
				hierarchy.TypeCPC:   v.GetString("hierarchy.urls.cpc"),
				hierarchy.TypePerso: v.GetString("hierarchy.urls.perso"),
			},
			File:      ExpandPath(v.GetString("hierarchy.file")),
			Timeout:   v.GetDuration("hierarchy.timeout"),
			CacheSize: v.GetInt("hierarchy.cache_size"),
		},
		Classification: ClassificationConfig{
			UseAI:        v.GetBool("classification.use_ai"),
			PatternsFile: ExpandPath(v.GetString("classification.patterns_file")),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
			Model:       v.GetString("llm.model"),
			APIKey:      v.GetString("llm.api_key"),
			BaseURL:     v.GetString("llm.base_url"),
			MaxTokens:   v.GetInt("llm.max_tokens"),
			Temperature: v.GetFloat64("llm.temperature"),
			RateLimit:   v.GetInt("llm.rate_limit"),
			MaxRetries:  v.GetInt("llm.max_retries"),
			RetryDelay:  v.GetDuration("llm.retry_delay"),
			CacheTTL:    v.GetDuration("llm.cache_ttl"),
		},
	}

	kind, err := hierarchy.ParseType(v.GetString("hierarchy.type"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: hierarchy.type: %w", common.ErrInvalidConfig, err)
	}
	cfg.Hierarchy.Type = kind

	if cfg.LLM.APIKey == "" {
		if env, ok := apiKeyEnv[cfg.LLM.Provider]; ok {
			cfg.LLM.APIKey = os.Getenv(env)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", common.ErrInvalidConfig, c.Logging.Format)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("%w: database.path", common.ErrMissingConfig)
	}
	if c.Hierarchy.Timeout <= 0 {
		return fmt.Errorf("%w: hierarchy.timeout must be positive", common.ErrInvalidConfig)
	}
	if c.Hierarchy.CacheSize <= 0 {
		return fmt.Errorf("%w: hierarchy.cache_size must be positive", common.ErrInvalidConfig)
	}
	if _, ok := apiKeyEnv[c.LLM.Provider]; !ok {
		return fmt.Errorf("%w: unsupported llm.provider %q", common.ErrInvalidConfig, c.LLM.Provider)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("%w: llm.max_tokens must be positive", common.ErrInvalidConfig)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("%w: llm.temperature must be between 0 and 2", common.ErrInvalidConfig)
	}
	if c.LLM.RateLimit < 0 || c.LLM.MaxRetries < 0 {
		return fmt.Errorf("%w: llm.rate_limit and llm.max_retries cannot be negative", common.ErrInvalidConfig)
	}
	return nil
}

// LoaderConfig returns the hierarchy loader settings. A configured local
// file overrides the remote document of the selected type only.
func (c Config) LoaderConfig() hierarchy.LoaderConfig {
	lc := hierarchy.LoaderConfig{
		URLs:      c.Hierarchy.URLs,
		Timeout:   c.Hierarchy.Timeout,
		CacheSize: c.Hierarchy.CacheSize,
	}
	if c.Hierarchy.File != "" {
		lc.Files = map[hierarchy.Type]string{c.Hierarchy.Type: c.Hierarchy.File}
	}
	return lc
}

// StrategyConfig returns the AI strategy settings.
func (c Config) StrategyConfig() llm.Config {
	return llm.Config{
		Provider:    c.LLM.Provider,
		APIKey:      c.LLM.APIKey,
		Model:       c.LLM.Model,
		BaseURL:     c.LLM.BaseURL,
		MaxRetries:  c.LLM.MaxRetries,
		RetryDelay:  c.LLM.RetryDelay,
		CacheTTL:    c.LLM.CacheTTL,
		RateLimit:   c.LLM.RateLimit,
		Temperature: c.LLM.Temperature,
		MaxTokens:   c.LLM.MaxTokens,
	}
}
