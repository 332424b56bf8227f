package sentiment

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenize lowercases text and splits it on whitespace and punctuation.
// Apostrophes inside a word are kept so "don't" stays one token.
func Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	// cases.Caser is stateful, so one is built per call.
	lower := cases.Lower(language.Und).String(text)

	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'’")
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'' || r == '’'
}
