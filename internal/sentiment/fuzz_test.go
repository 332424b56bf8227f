package sentiment

import (
	"math"
	"testing"
)

func FuzzLexiconScore(f *testing.F) {
	f.Add("")
	f.Add("This product is absolutely terrible and awful")
	f.Add("not very good but extremely superb")
	f.Add("don’t ’’ ''")

	s := DefaultLexiconScorer()
	f.Fuzz(func(t *testing.T, text string) {
		score := s.Score(text)
		if math.IsNaN(score) || math.IsInf(score, 0) {
			t.Fatalf("Score(%q) = %v, want finite", text, score)
		}
		if score < -1 || score > 1 {
			t.Fatalf("Score(%q) = %v, want within [-1, 1]", text, score)
		}
		if r := s.Analyze(text); r.Scored == 0 && score != 0 {
			t.Fatalf("Score(%q) = %v with no sentiment tokens, want 0", text, score)
		}
		_ = Classify(score)
	})
}
