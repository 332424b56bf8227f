package sentiment

import (
	_ "embed"
	"math"
	"strconv"
	"strings"
)

//go:embed data/lexicon.txt
var defaultLexicon string

// negationFactor is applied to a lexicon weight preceded by a negator:
// "not good" scores -0.35 where "good" scores 0.7.
const negationFactor = -0.5

// intensifiers scale the weight of the lexicon word that directly follows.
var intensifiers = map[string]float64{
	"absolutely":   1.4,
	"completely":   1.4,
	"extremely":    1.5,
	"highly":       1.3,
	"incredibly":   1.5,
	"really":       1.3,
	"so":           1.2,
	"super":        1.3,
	"totally":      1.4,
	"truly":        1.3,
	"very":         1.3,
	"quite":        1.1,
	"fairly":       0.8,
	"somewhat":     0.7,
	"rather":       0.8,
	"slightly":     0.5,
	"barely":       0.4,
	"kinda":        0.7,
	"marginally":   0.5,
	"particularly": 1.2,
}

var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nor": {},
	"nothing": {}, "hardly": {}, "without": {}, "cannot": {},
	"dont": {}, "doesnt": {}, "didnt": {}, "isnt": {}, "wasnt": {}, "arent": {},
	"werent": {}, "wont": {}, "cant": {}, "couldnt": {}, "shouldnt": {}, "wouldnt": {},
}

// parseLexicon parses tab-separated "word\tweight" lines. Blank lines,
// comments and malformed rows are skipped; weights are clamped to [-1, 1].
func parseLexicon(raw string) map[string]float64 {
	m := make(map[string]float64, 128)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(parts[0]))
		weight, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) {
			continue
		}
		m[word] = clamp(weight)
	}
	return m
}

func isNegator(tok string) bool {
	if _, ok := negators[tok]; ok {
		return true
	}
	return strings.HasSuffix(tok, "n't") || strings.HasSuffix(tok, "n’t")
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}
