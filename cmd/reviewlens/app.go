package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/aggregate"
	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/ingest"
	"github.com/spacesedan/reviewlens/internal/logging"
	"github.com/spacesedan/reviewlens/internal/sentiment"
)

// cliOverrides holds flag values; only explicitly set flags are applied.
type cliOverrides struct {
	ConfigPath  *string
	File        *string
	Engine      *string
	LabelSource *string
	Matching    *string
	Cache       *string
	LogLevel    *string
	Stopwords   *bool
}

type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	scorer  sentiment.Scorer
	matcher sentiment.Matcher
	loader  *ingest.Loader
	valkey  *clients.ValkeyClient
}

func (a *app) init(ctx context.Context, flags *pflag.FlagSet, o *cliOverrides) error {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	configPath := *o.ConfigPath
	if configPath == "" {
		configPath = os.Getenv("REVIEWLENS_CONFIG")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyExplicitFlags(flags, cfg, o)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	logging.InitLogger(cfg.Log.Level)
	a.logger = slog.Default().With(slog.String("run_id", uuid.NewString()))

	a.scorer, err = sentiment.NewScorer(cfg.Scoring.Engine)
	if err != nil {
		return err
	}
	a.matcher, _ = sentiment.MatcherByName(cfg.Scoring.Matching)

	cache, err := a.newCache(ctx)
	if err != nil {
		return err
	}
	a.loader = ingest.NewLoader(cache, cfg.Ingest.Columns, a.logger)

	a.logger.Debug("[App] Initialized",
		slog.String("engine", cfg.Scoring.Engine),
		slog.String("label_source", cfg.Scoring.LabelSource),
		slog.String("matching", cfg.Scoring.Matching),
		slog.String("cache", cfg.Cache.Backend))
	return nil
}

func (a *app) newCache(ctx context.Context) (ingest.Cache, error) {
	switch strings.ToLower(a.cfg.Cache.Backend) {
	case config.CacheValkey:
		vc, err := clients.NewValkeyClient(ctx, clients.ValkeyOptions{
			Addr:     a.cfg.Cache.Valkey.Addr,
			Password: a.cfg.Cache.Valkey.Password,
			TLS:      a.cfg.Cache.Valkey.TLS,
		})
		if err != nil {
			return nil, err
		}
		a.valkey = vc
		return ingest.NewValkeyCache(vc, a.cfg.Cache.TTL), nil
	case config.CacheMemory:
		return ingest.NewMemoryCache(a.cfg.Cache.TTL, nil), nil
	default:
		return ingest.NoCache{}, nil
	}
}

func (a *app) close() {
	if a.valkey != nil {
		a.valkey.Close()
	}
}

// labelOf returns the label source selected by config.
func (a *app) labelOf() aggregate.LabelFunc {
	switch strings.ToLower(a.cfg.Scoring.LabelSource) {
	case config.LabelSourcePrecomputed:
		return aggregate.Precomputed()
	case config.LabelSourceClassified:
		return aggregate.Classified(a.scorer)
	default:
		return aggregate.PrecomputedOr(a.scorer)
	}
}

func (a *app) options() []aggregate.Option {
	opts := []aggregate.Option{aggregate.WithMatcher(a.matcher)}
	if a.cfg.Report.Stopwords {
		opts = append(opts, aggregate.WithStopwords(aggregate.EnglishStopwords))
	}
	return opts
}

func (a *app) corpus(ctx context.Context) (ingest.Corpus, error) {
	return a.loader.Load(ctx, a.cfg.Ingest.Path)
}

// applyExplicitFlags copies only the flags the user actually set.
func applyExplicitFlags(flags *pflag.FlagSet, cfg *config.Config, o *cliOverrides) {
	if flags.Changed("file") {
		cfg.Ingest.Path = *o.File
	}
	if flags.Changed("engine") {
		cfg.Scoring.Engine = *o.Engine
	}
	if flags.Changed("label-source") {
		cfg.Scoring.LabelSource = *o.LabelSource
	}
	if flags.Changed("matching") {
		cfg.Scoring.Matching = *o.Matching
	}
	if flags.Changed("cache") {
		cfg.Cache.Backend = *o.Cache
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = *o.LogLevel
	}
	if flags.Changed("stopwords") {
		cfg.Report.Stopwords = *o.Stopwords
	}
}
