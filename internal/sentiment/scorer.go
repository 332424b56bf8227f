// Package sentiment turns review text into a polarity score and a label.
//
// Scoring is pluggable behind the Scorer interface. Two engines ship with
// the package:
//
//   - LexiconScorer averages the weights of lexicon words, adjusting each
//     for an intensifier or negator directly in front of it.
//   - VaderScorer returns the VADER compound score of the cleaned text.
//
// Classify maps any score to a Label with a strict three-way split at zero.
// Everything here is free of shared mutable state except VaderScorer, which
// serializes access to its analyzer.
package sentiment

import (
	"fmt"
	"strings"
)

// Scorer maps text to a polarity score in [-1, 1]. Implementations must be
// safe for concurrent use.
type Scorer interface {
	Score(text string) float64
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(text string) float64

func (f ScorerFunc) Score(text string) float64 { return f(text) }

const (
	EngineLexicon = "lexicon"
	EngineVader   = "vader"
)

// NewScorer returns the scoring engine registered under name.
func NewScorer(engine string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineLexicon:
		return DefaultLexiconScorer(), nil
	case EngineVader:
		return NewVaderScorer(), nil
	default:
		return nil, fmt.Errorf("sentiment: unknown scoring engine %q", engine)
	}
}

// LexiconResult is the detailed output of LexiconScorer.Analyze.
type LexiconResult struct {
	Score    float64 `json:"score"`
	Positive int     `json:"positive"` // sentiment-bearing tokens with weight > 0
	Negative int     `json:"negative"` // sentiment-bearing tokens with weight < 0
	Scored   int     `json:"scored"`   // sentiment-bearing tokens
	Tokens   int     `json:"tokens"`
}

// LexiconScorer is a deterministic lexicon-based scorer.
// It is read-only after construction and safe for concurrent use.
type LexiconScorer struct {
	lexicon map[string]float64
}

var defaultLexiconScorer = &LexiconScorer{lexicon: parseLexicon(defaultLexicon)}

// DefaultLexiconScorer returns the scorer backed by the embedded lexicon.
func DefaultLexiconScorer() *LexiconScorer {
	return defaultLexiconScorer
}

// NewLexiconScorer builds a scorer from a tab-separated "word\tweight" lexicon.
func NewLexiconScorer(raw string) *LexiconScorer {
	return &LexiconScorer{lexicon: parseLexicon(raw)}
}

// Size returns the number of lexicon entries.
func (s *LexiconScorer) Size() int {
	return len(s.lexicon)
}

func (s *LexiconScorer) Score(text string) float64 {
	return s.Analyze(text).Score
}

// Analyze scores text and reports the token counts behind the score.
// Tokens missing from the lexicon are left out of the average entirely;
// text without any lexicon word scores exactly 0.
func (s *LexiconScorer) Analyze(text string) LexiconResult {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return LexiconResult{}
	}

	var (
		sum    float64
		result = LexiconResult{Tokens: len(tokens)}
	)

	for i, tok := range tokens {
		weight, ok := s.lexicon[tok]
		if !ok {
			continue
		}
		weight = s.modify(tokens, i, weight)

		sum += weight
		result.Scored++
		if weight > 0 {
			result.Positive++
		} else if weight < 0 {
			result.Negative++
		}
	}

	if result.Scored == 0 {
		return result
	}

	result.Score = clamp(sum / float64(result.Scored))
	return result
}

// modify applies the intensifier and negator directly preceding tokens[i].
// A negator may sit in front of the intensifier: "not very good".
func (s *LexiconScorer) modify(tokens []string, i int, weight float64) float64 {
	j := i - 1
	if j < 0 {
		return weight
	}
	if mult, ok := intensifiers[tokens[j]]; ok {
		weight *= mult
		j--
	}
	if j >= 0 && isNegator(tokens[j]) {
		weight *= negationFactor
	}
	return weight
}
