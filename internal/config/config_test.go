package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micetf/classifieur-numerique/internal/common"
	"github.com/micetf/classifieur-numerique/internal/hierarchy"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, hierarchy.TypeCPC, cfg.Hierarchy.Type)
	assert.Equal(t, hierarchy.DefaultCPCURL, cfg.Hierarchy.URLs[hierarchy.TypeCPC])
	assert.Equal(t, hierarchy.DefaultPersoURL, cfg.Hierarchy.URLs[hierarchy.TypePerso])
	assert.Equal(t, 10*time.Second, cfg.Hierarchy.Timeout)
	assert.Equal(t, 8, cfg.Hierarchy.CacheSize)
	assert.False(t, cfg.Classification.UseAI)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 1000, cfg.LLM.MaxTokens)
	assert.Equal(t, 30, cfg.LLM.RateLimit)
	assert.Equal(t, 2, cfg.LLM.MaxRetries)
	assert.Equal(t, time.Second, cfg.LLM.RetryDelay)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.True(t, strings.HasSuffix(cfg.Database.Path, filepath.Join("classifieur", "history.db")))
	assert.NotContains(t, cfg.Database.Path, "$HOME")
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("hierarchy.type", "PERSO")
	v.Set("hierarchy.file", "/tmp/arbo.json")
	v.Set("classification.use_ai", true)
	v.Set("llm.provider", "OpenAI")
	v.Set("llm.api_key", "sk-config")
	v.Set("llm.temperature", 0.4)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, hierarchy.TypePerso, cfg.Hierarchy.Type)
	assert.True(t, cfg.Classification.UseAI)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-config", cfg.LLM.APIKey)

	lc := cfg.LoaderConfig()
	assert.Equal(t, map[hierarchy.Type]string{hierarchy.TypePerso: "/tmp/arbo.json"}, lc.Files)
	assert.Equal(t, cfg.Hierarchy.URLs, lc.URLs)

	sc := cfg.StrategyConfig()
	assert.Equal(t, "openai", sc.Provider)
	assert.Equal(t, "sk-config", sc.APIKey)
	assert.InDelta(t, 0.4, sc.Temperature, 1e-9)
}

func TestLoad_APIKeyFromProviderEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gem-key")

	v := viper.New()
	v.Set("llm.provider", "gemini")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "gem-key", cfg.LLM.APIKey)
}

func TestLoad_PrefixedEnv(t *testing.T) {
	t.Setenv("CLASSIFIEUR_LLM_API_KEY", "env-key")
	t.Setenv("CLASSIFIEUR_HIERARCHY_TYPE", "perso")

	v := viper.New()
	BindEnv(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.LLM.APIKey)
	assert.Equal(t, hierarchy.TypePerso, cfg.Hierarchy.Type)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{name: "unknown hierarchy", key: "hierarchy.type", value: "ecole", wantErr: common.ErrInvalidConfig},
		{name: "bad log level", key: "logging.level", value: "loud", wantErr: common.ErrInvalidConfig},
		{name: "bad log format", key: "logging.format", value: "xml", wantErr: common.ErrInvalidConfig},
		{name: "unknown provider", key: "llm.provider", value: "mistral", wantErr: common.ErrInvalidConfig},
		{name: "zero max tokens", key: "llm.max_tokens", value: 0, wantErr: common.ErrInvalidConfig},
		{name: "temperature too high", key: "llm.temperature", value: 3.5, wantErr: common.ErrInvalidConfig},
		{name: "negative retries", key: "llm.max_retries", value: -1, wantErr: common.ErrInvalidConfig},
		{name: "zero timeout", key: "hierarchy.timeout", value: "0s", wantErr: common.ErrInvalidConfig},
		{name: "empty database path", key: "database.path", value: " ", wantErr: common.ErrMissingConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
hierarchy:
  type: perso
  timeout: 3s
classification:
  use_ai: true
llm:
  provider: openai
  model: gpt-4o
  base_url: http://localhost:11434/v1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, hierarchy.TypePerso, cfg.Hierarchy.Type)
	assert.Equal(t, 3*time.Second, cfg.Hierarchy.Timeout)
	assert.True(t, cfg.Classification.UseAI)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.BaseURL)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("CLASSIFIEUR_TEST_DIR", "/srv/docs")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde alone", in: "~", want: home},
		{name: "tilde prefix", in: "~/docs/a.db", want: filepath.Join(home, "docs/a.db")},
		{name: "env var", in: "$CLASSIFIEUR_TEST_DIR/a.db", want: "/srv/docs/a.db"},
		{name: "absolute", in: "/var/lib/a.db", want: "/var/lib/a.db"},
		{name: "tilde in the middle", in: "/a/~/b", want: "/a/~/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestDir(t *testing.T) {
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "classifieur", filepath.Base(dir))
}
