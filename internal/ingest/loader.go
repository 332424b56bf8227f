// Package ingest loads review corpora from CSV files and caches parsed
// snapshots keyed by a content fingerprint. A changed file gets a new
// fingerprint, so stale entries are never served; Invalidate drops an
// entry explicitly.
package ingest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spacesedan/reviewlens/internal/models"
)

// Corpus is an immutable, fully materialized snapshot of review records.
type Corpus struct {
	Fingerprint string
	Records     []models.ReviewRecord
	FromCache   bool
}

// Loader reads corpora through a Cache.
type Loader struct {
	cache   Cache
	columns Columns
	logger  *slog.Logger
}

func NewLoader(cache Cache, columns Columns, logger *slog.Logger) *Loader {
	if cache == nil {
		cache = NoCache{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{cache: cache, columns: columns, logger: logger}
}

// Load reads path, returning the cached snapshot when its fingerprint is
// known and parsing the CSV otherwise. Cache failures are logged and the
// file is parsed as if the cache were empty.
func (l *Loader) Load(ctx context.Context, path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("ingest: reading %s: %w", path, err)
	}
	fp := Fingerprint(data)

	records, ok, err := l.cache.Get(ctx, fp)
	if err != nil {
		l.logger.Warn("[Loader] Cache lookup failed",
			slog.String("fingerprint", fp),
			slog.String("error", err.Error()))
	}
	if ok {
		l.logger.Debug("[Loader] Cache hit",
			slog.String("path", path),
			slog.String("fingerprint", fp),
			slog.Int("records", len(records)))
		return Corpus{Fingerprint: fp, Records: records, FromCache: true}, nil
	}

	records, err = ReadCSV(bytes.NewReader(data), l.columns)
	if err != nil {
		return Corpus{}, fmt.Errorf("ingest: parsing %s: %w", path, err)
	}

	if err := l.cache.Set(ctx, fp, records); err != nil {
		l.logger.Warn("[Loader] Cache store failed",
			slog.String("fingerprint", fp),
			slog.String("error", err.Error()))
	}

	l.logger.Info("[Loader] Loaded corpus",
		slog.String("path", path),
		slog.String("fingerprint", fp),
		slog.Int("records", len(records)))
	return Corpus{Fingerprint: fp, Records: records}, nil
}

// Invalidate drops the cached snapshot for fingerprint.
func (l *Loader) Invalidate(ctx context.Context, fingerprint string) error {
	return l.cache.Invalidate(ctx, fingerprint)
}
