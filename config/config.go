package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/spacesedan/reviewlens/internal/ingest"
	"github.com/spacesedan/reviewlens/internal/sentiment"
)

type LogConfig struct {
	// Level is one of debug|info|warn|error.
	Level string `yaml:"level"`
}

type IngestConfig struct {
	// Path of the review CSV.
	Path           string `yaml:"path"`
	ingest.Columns `yaml:",inline"`
}

type ValkeyConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	TLS      bool   `yaml:"tls"`
}

type CacheConfig struct {
	// Backend is one of none|memory|valkey.
	Backend string        `yaml:"backend"`
	TTL     time.Duration `yaml:"ttl"`
	Valkey  ValkeyConfig  `yaml:"valkey"`
}

type ScoringConfig struct {
	// Engine is one of lexicon|vader.
	Engine string `yaml:"engine"`

	// LabelSource is one of precomputed|classified|auto. auto uses the
	// ingested label when present and classifies the text otherwise.
	LabelSource string `yaml:"labelSource"`

	// Matching is one of prefix|exact.
	Matching string `yaml:"matching"`
}

type ReportConfig struct {
	PreviewRows int  `yaml:"previewRows"`
	TopWords    int  `yaml:"topWords"`
	Stopwords   bool `yaml:"stopwords"`
}

// Config is the complete reviewlens configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Ingest  IngestConfig  `yaml:"ingest"`
	Cache   CacheConfig   `yaml:"cache"`
	Scoring ScoringConfig `yaml:"scoring"`
	Report  ReportConfig  `yaml:"report"`
}

const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheValkey = "valkey"

	LabelSourcePrecomputed = "precomputed"
	LabelSourceClassified  = "classified"
	LabelSourceAuto        = "auto"
)

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Ingest: IngestConfig{
			Path:    "amazon_cleaned_with_sentiment.csv",
			Columns: ingest.DefaultColumns(),
		},
		Cache: CacheConfig{
			Backend: CacheMemory,
			TTL:     10 * time.Minute,
			Valkey:  ValkeyConfig{Addr: "localhost:6379"},
		},
		Scoring: ScoringConfig{
			Engine:      sentiment.EngineLexicon,
			LabelSource: LabelSourceAuto,
			Matching:    "prefix",
		},
		Report: ReportConfig{
			PreviewRows: 50,
			TopWords:    25,
		},
	}
}

// ConfigFromFile reads a YAML file over the defaults. Absent fields keep their defaults.
func ConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// ConfigFromEnv applies environment overrides to cfg (a default Config when nil).
//
//	REVIEWLENS_LOG_LEVEL        → Log.Level
//	REVIEWLENS_INGEST_PATH      → Ingest.Path
//	REVIEWLENS_TEXT_COLUMN      → Ingest.Text
//	REVIEWLENS_PRODUCT_COLUMN   → Ingest.Product
//	REVIEWLENS_LABEL_COLUMN     → Ingest.Label
//	REVIEWLENS_CACHE_BACKEND    → Cache.Backend
//	REVIEWLENS_CACHE_TTL        → Cache.TTL            (duration string)
//	VALKEY_INIT_ADDRESS         → Cache.Valkey.Addr
//	VALKEY_PASSWORD             → Cache.Valkey.Password
//	VALKEY_TLS                  → Cache.Valkey.TLS     ("true"/"false")
//	REVIEWLENS_SCORING_ENGINE   → Scoring.Engine
//	REVIEWLENS_LABEL_SOURCE     → Scoring.LabelSource
//	REVIEWLENS_LABEL_MATCHING   → Scoring.Matching
//	REVIEWLENS_PREVIEW_ROWS     → Report.PreviewRows
//	REVIEWLENS_TOP_WORDS        → Report.TopWords
//	REVIEWLENS_STOPWORDS        → Report.Stopwords     ("true"/"false")
func ConfigFromEnv(cfg *Config) *Config {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	setEnvStr("REVIEWLENS_LOG_LEVEL", &cfg.Log.Level)

	setEnvStr("REVIEWLENS_INGEST_PATH", &cfg.Ingest.Path)
	setEnvStr("REVIEWLENS_TEXT_COLUMN", &cfg.Ingest.Text)
	setEnvStr("REVIEWLENS_PRODUCT_COLUMN", &cfg.Ingest.Product)
	setEnvStr("REVIEWLENS_LABEL_COLUMN", &cfg.Ingest.Label)

	setEnvStr("REVIEWLENS_CACHE_BACKEND", &cfg.Cache.Backend)
	setEnvDuration("REVIEWLENS_CACHE_TTL", &cfg.Cache.TTL)
	setEnvStr("VALKEY_INIT_ADDRESS", &cfg.Cache.Valkey.Addr)
	setEnvStr("VALKEY_PASSWORD", &cfg.Cache.Valkey.Password)
	setEnvBool("VALKEY_TLS", &cfg.Cache.Valkey.TLS)

	setEnvStr("REVIEWLENS_SCORING_ENGINE", &cfg.Scoring.Engine)
	setEnvStr("REVIEWLENS_LABEL_SOURCE", &cfg.Scoring.LabelSource)
	setEnvStr("REVIEWLENS_LABEL_MATCHING", &cfg.Scoring.Matching)

	setEnvInt("REVIEWLENS_PREVIEW_ROWS", &cfg.Report.PreviewRows)
	setEnvInt("REVIEWLENS_TOP_WORDS", &cfg.Report.TopWords)
	setEnvBool("REVIEWLENS_STOPWORDS", &cfg.Report.Stopwords)

	return cfg
}

// LoadConfig merges defaults, the optional YAML file and the environment.
// Callers apply CLI flag overrides afterwards.
func LoadConfig(configPath string) (*Config, error) {
	var cfg *Config

	if configPath != "" {
		var err error
		cfg, err = ConfigFromFile(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = DefaultConfig()
	}

	return ConfigFromEnv(cfg), nil
}

// Validate returns an error for the first invalid field.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Ingest.Text) == "" {
		return fmt.Errorf("ingest.textColumn must not be empty")
	}

	switch strings.ToLower(c.Cache.Backend) {
	case CacheNone, CacheMemory:
	case CacheValkey:
		if c.Cache.Valkey.Addr == "" {
			return fmt.Errorf("cache.valkey.addr must not be empty when cache.backend is valkey")
		}
	default:
		return fmt.Errorf("cache.backend must be one of none|memory|valkey")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}

	switch strings.ToLower(c.Scoring.Engine) {
	case sentiment.EngineLexicon, sentiment.EngineVader:
	default:
		return fmt.Errorf("scoring.engine must be one of lexicon|vader")
	}

	switch strings.ToLower(c.Scoring.LabelSource) {
	case LabelSourcePrecomputed, LabelSourceClassified, LabelSourceAuto:
	default:
		return fmt.Errorf("scoring.labelSource must be one of precomputed|classified|auto")
	}

	if _, ok := sentiment.MatcherByName(c.Scoring.Matching); !ok {
		return fmt.Errorf("scoring.matching must be one of prefix|exact")
	}

	if c.Report.PreviewRows <= 0 {
		return fmt.Errorf("report.previewRows must be positive")
	}
	if c.Report.TopWords <= 0 {
		return fmt.Errorf("report.topWords must be positive")
	}

	return nil
}

func setEnvStr(key string, target *string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// setEnvBool accepts anything strconv.ParseBool does; invalid values are ignored.
func setEnvBool(key string, target *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*target = b
		}
	}
}

func setEnvInt(key string, target *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

func setEnvDuration(key string, target *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*target = d
		}
	}
}
