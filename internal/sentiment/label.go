package sentiment

import (
	"strings"
)

// Label is one of the three sentiment categories.
// The zero value means "no label" and never comes out of Classify.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNeutral  Label = "Neutral"
	LabelNegative Label = "Negative"
)

// Labels lists the categories in display order.
var Labels = []Label{LabelPositive, LabelNegative, LabelNeutral}

func (l Label) String() string {
	return string(l)
}

// Valid reports whether l is one of the three categories.
func (l Label) Valid() bool {
	switch l {
	case LabelPositive, LabelNeutral, LabelNegative:
		return true
	default:
		return false
	}
}

// Classify maps a polarity score to a label. Only an exact 0 is Neutral;
// there is no tolerance band, so 1e-9 is Positive and -1e-9 is Negative.
// NaN is not a valid polarity score and falls through to Neutral.
func Classify(score float64) Label {
	switch {
	case score > 0:
		return LabelPositive
	case score < 0:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Matcher decides whether a raw upstream label string denotes target.
type Matcher func(raw string, target Label) bool

// canonicalPrefixes are the spelling-independent stems of each category.
// "Positif", "POSITIVE" and "posit123" all contain "posit".
var canonicalPrefixes = map[Label]string{
	LabelPositive: "posit",
	LabelNegative: "negat",
	LabelNeutral:  "neutr",
}

// PrefixMatcher matches when the lowercased raw label contains the
// canonical stem of target. It is the default strategy.
func PrefixMatcher(raw string, target Label) bool {
	prefix, ok := canonicalPrefixes[target]
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(raw), prefix)
}

// ExactMatcher matches only the canonical spelling.
func ExactMatcher(raw string, target Label) bool {
	return target.Valid() && raw == string(target)
}

// MatcherByName returns the matcher registered under name ("prefix" or "exact").
func MatcherByName(name string) (Matcher, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "prefix":
		return PrefixMatcher, true
	case "exact":
		return ExactMatcher, true
	default:
		return nil, false
	}
}

// Resolve returns the first label in Labels order that m matches.
func Resolve(raw string, m Matcher) (Label, bool) {
	if m == nil {
		m = PrefixMatcher
	}
	for _, l := range Labels {
		if m(raw, l) {
			return l, true
		}
	}
	return "", false
}
