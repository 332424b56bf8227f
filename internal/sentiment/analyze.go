package sentiment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingInput is returned when ad-hoc analysis gets blank text.
// Callers should treat it as a user-correctable warning.
var ErrMissingInput = errors.New("sentiment: no text to analyze")

// Result pairs a polarity score with its label.
type Result struct {
	Score float64 `json:"score"`
	Label Label   `json:"label"`
}

func (r Result) String() string {
	return fmt.Sprintf("%s (score=%.2f)", r.Label, r.Score)
}

// Evaluate runs the scorer and classifier over text. Blank text scores 0
// and is Neutral; it is not an error here.
func Evaluate(s Scorer, text string) Result {
	score := s.Score(text)
	return Result{Score: score, Label: Classify(score)}
}

// AnalyzeText is the single-input entry point. Unlike Evaluate it refuses
// empty or whitespace-only input with ErrMissingInput.
func AnalyzeText(s Scorer, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrMissingInput
	}
	return Evaluate(s, text), nil
}
