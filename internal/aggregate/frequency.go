package aggregate

import (
	"sort"
	"strings"

	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/sentiment"
)

// FrequencyTable maps a lowercase token to its occurrence count.
type FrequencyTable map[string]int

// WordCount is one row of a ranked FrequencyTable.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func (t FrequencyTable) IsEmpty() bool {
	return len(t) == 0
}

// Total returns the number of counted tokens.
func (t FrequencyTable) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// Top returns the n most frequent words, by count descending then word
// ascending. n <= 0 returns every word.
func (t FrequencyTable) Top(n int) []WordCount {
	out := make([]WordCount, 0, len(t))
	for w, c := range t {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// WithStopwords drops the given lowercase words from frequency tables.
func WithStopwords(words map[string]struct{}) Option {
	return func(o *options) {
		o.stopwords = words
	}
}

// WordFrequencies counts tokens across the text of every record whose label
// resolves to target, the same bucket Aggregate counts it in. No matching record, or only blank texts, yields an empty
// non-nil table and no error. An invalid target returns ErrNoTargetLabel.
func WordFrequencies(records []models.ReviewRecord, labelOf LabelFunc, target sentiment.Label, opts ...Option) (FrequencyTable, error) {
	if !target.Valid() {
		return nil, ErrNoTargetLabel
	}
	o := buildOptions(opts)

	texts := make([]string, 0, len(records))
	for _, r := range records {
		if l, ok := sentiment.Resolve(labelOf(r), o.matcher); ok && l == target {
			texts = append(texts, r.Text)
		}
	}

	table := make(FrequencyTable)
	for _, tok := range sentiment.Tokenize(strings.Join(texts, " ")) {
		if _, skip := o.stopwords[tok]; skip {
			continue
		}
		table[tok]++
	}
	return table, nil
}
