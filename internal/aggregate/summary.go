// Package aggregate folds a review corpus into summary counts and
// per-label word frequencies.
//
// Labels are compared through a sentiment.Matcher rather than string
// equality. Upstream label columns spell the categories in more than one
// way ("Positive", "Positif", "POSITIVE"), and the default PrefixMatcher
// counts all of them in the same bucket.
//
// Every function here reads its input once and returns fresh values; none
// of them mutate the corpus, so concurrent calls over the same snapshot are safe.
package aggregate

import (
	"errors"
	"strings"

	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/sentiment"
	"github.com/spacesedan/reviewlens/internal/utils"
)

var (
	// ErrEmptyCorpus means percentages were requested over zero records.
	ErrEmptyCorpus = errors.New("aggregate: corpus is empty")
	// ErrNoTargetLabel means word frequencies were requested without a valid target label.
	ErrNoTargetLabel = errors.New("aggregate: no target label requested")
)

// LabelFunc yields the raw label string of a record.
type LabelFunc func(models.ReviewRecord) string

// Precomputed reads the label ingested with the record.
func Precomputed() LabelFunc {
	return func(r models.ReviewRecord) string {
		return r.Label
	}
}

// Classified derives the label by scoring the record text.
func Classified(s sentiment.Scorer) LabelFunc {
	return func(r models.ReviewRecord) string {
		return sentiment.Classify(s.Score(r.Text)).String()
	}
}

// PrecomputedOr uses the ingested label when present and classifies the text otherwise.
func PrecomputedOr(s sentiment.Scorer) LabelFunc {
	classified := Classified(s)
	return func(r models.ReviewRecord) string {
		if strings.TrimSpace(r.Label) != "" {
			return r.Label
		}
		return classified(r)
	}
}

type options struct {
	matcher   sentiment.Matcher
	stopwords map[string]struct{}
}

// Option tunes Aggregate and WordFrequencies.
type Option func(*options)

// WithMatcher replaces the default PrefixMatcher.
func WithMatcher(m sentiment.Matcher) Option {
	return func(o *options) {
		if m != nil {
			o.matcher = m
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{matcher: sentiment.PrefixMatcher}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Summary holds corpus-level counts. Unmatched counts records whose label
// matched none of the three categories, so that
// Counts[Positive]+Counts[Negative]+Counts[Neutral]+Unmatched == Total.
type Summary struct {
	Total       int                         `json:"total"`
	Counts      map[sentiment.Label]int     `json:"counts"`
	Percentages map[sentiment.Label]float64 `json:"percentages"`
	Unmatched   int                         `json:"unmatched"`
}

// Aggregate tallies one label per record in a single pass. For an empty
// corpus it returns a zero-count Summary together with ErrEmptyCorpus;
// Percentages is nil in that case. Percentages are unrounded.
func Aggregate(records []models.ReviewRecord, labelOf LabelFunc, opts ...Option) (Summary, error) {
	o := buildOptions(opts)

	s := Summary{
		Total:  len(records),
		Counts: make(map[sentiment.Label]int, len(sentiment.Labels)),
	}
	for _, l := range sentiment.Labels {
		s.Counts[l] = 0
	}

	for _, r := range records {
		label, ok := sentiment.Resolve(labelOf(r), o.matcher)
		if !ok {
			s.Unmatched++
			continue
		}
		s.Counts[label]++
	}

	if s.Total == 0 {
		return s, ErrEmptyCorpus
	}

	s.Percentages = make(map[sentiment.Label]float64, len(s.Counts))
	for l, c := range s.Counts {
		s.Percentages[l] = float64(c) / float64(s.Total) * 100
	}
	return s, nil
}

// Percent returns count/total*100, or ErrEmptyCorpus when total is zero.
func Percent(count, total int) (float64, error) {
	if total <= 0 {
		return 0, ErrEmptyCorpus
	}
	return float64(count) / float64(total) * 100, nil
}

// Percentage returns the unrounded share of label in the corpus.
func (s Summary) Percentage(label sentiment.Label) (float64, error) {
	return Percent(s.Counts[label], s.Total)
}

// Bar is one category/count pair of the distribution chart.
type Bar struct {
	Label sentiment.Label `json:"label"`
	Count int             `json:"count"`
}

// Bars returns the label counts in display order.
func (s Summary) Bars() []Bar {
	bars := make([]Bar, 0, len(sentiment.Labels))
	for _, l := range sentiment.Labels {
		bars = append(bars, Bar{Label: l, Count: s.Counts[l]})
	}
	return bars
}

// ScoreCorpus scores and classifies every record eagerly, in input order.
// Records are scored in parallel batches, so s must be safe for concurrent use.
func ScoreCorpus(records []models.ReviewRecord, s sentiment.Scorer) []models.AnalyzedReview {
	return utils.ParallelMap(records, utils.BatchSize, func(r models.ReviewRecord) models.AnalyzedReview {
		res := sentiment.Evaluate(s, r.Text)
		return utils.RecordToAnalyzedReview(r, res.Score, res.Label.String())
	})
}
