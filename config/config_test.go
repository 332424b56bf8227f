package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "review_content", cfg.Ingest.Text)
	assert.Equal(t, "product_name", cfg.Ingest.Product)
	assert.Equal(t, "sentiment_result", cfg.Ingest.Label)
	assert.Equal(t, 50, cfg.Report.PreviewRows)
	assert.Equal(t, CacheMemory, cfg.Cache.Backend)
}

func TestConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviewlens.yaml")
	yaml := `
log:
  level: debug
ingest:
  path: data/reviews.csv
  textColumn: body
cache:
  backend: valkey
  ttl: 90s
  valkey:
    addr: cache:6379
scoring:
  engine: vader
report:
  topWords: 10
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := ConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "data/reviews.csv", cfg.Ingest.Path)
	assert.Equal(t, "body", cfg.Ingest.Text)
	assert.Equal(t, "product_name", cfg.Ingest.Product, "unset fields keep defaults")
	assert.Equal(t, CacheValkey, cfg.Cache.Backend)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "cache:6379", cfg.Cache.Valkey.Addr)
	assert.Equal(t, "vader", cfg.Scoring.Engine)
	assert.Equal(t, 10, cfg.Report.TopWords)
	assert.Equal(t, 50, cfg.Report.PreviewRows)
	require.NoError(t, cfg.Validate())
}

func TestConfigFromFile_Errors(t *testing.T) {
	_, err := ConfigFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unterminated"), 0o600))
	_, err = ConfigFromFile(path)
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviewlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  engine: vader\n"), 0o600))

	t.Setenv("REVIEWLENS_SCORING_ENGINE", "lexicon")
	t.Setenv("REVIEWLENS_CACHE_TTL", "2m")
	t.Setenv("REVIEWLENS_STOPWORDS", "true")
	t.Setenv("REVIEWLENS_PREVIEW_ROWS", "not-a-number")
	t.Setenv("VALKEY_INIT_ADDRESS", "valkey:6380")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "lexicon", cfg.Scoring.Engine)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Report.Stopwords)
	assert.Equal(t, 50, cfg.Report.PreviewRows, "invalid env values are ignored")
	assert.Equal(t, "valkey:6380", cfg.Cache.Valkey.Addr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty text column", func(c *Config) { c.Ingest.Text = " " }},
		{"unknown cache backend", func(c *Config) { c.Cache.Backend = "redis" }},
		{"valkey without addr", func(c *Config) { c.Cache.Backend = CacheValkey; c.Cache.Valkey.Addr = "" }},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Second }},
		{"unknown engine", func(c *Config) { c.Scoring.Engine = "bert" }},
		{"unknown label source", func(c *Config) { c.Scoring.LabelSource = "guess" }},
		{"unknown matching", func(c *Config) { c.Scoring.Matching = "fuzzy" }},
		{"zero preview rows", func(c *Config) { c.Report.PreviewRows = 0 }},
		{"zero top words", func(c *Config) { c.Report.TopWords = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
