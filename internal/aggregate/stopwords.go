package aggregate

// EnglishStopwords holds function words that crowd out content words in a
// word cloud. It is not applied unless passed through WithStopwords.
var EnglishStopwords = map[string]struct{}{
	// Articles and determiners
	"a": {}, "an": {}, "the": {}, "this": {}, "that": {}, "these": {}, "those": {},
	// Pronouns
	"i": {}, "me": {}, "my": {}, "we": {}, "our": {}, "you": {}, "your": {},
	"he": {}, "she": {}, "it": {}, "its": {}, "it's": {}, "they": {}, "them": {}, "their": {},
	// Conjunctions
	"and": {}, "or": {}, "but": {}, "so": {}, "because": {}, "if": {}, "than": {},
	// Prepositions
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "with": {},
	"from": {}, "by": {}, "about": {}, "as": {}, "into": {}, "after": {},
	// Auxiliaries
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "am": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "can": {}, "could": {}, "should": {},
	// Adverbs and particles
	"very": {}, "just": {}, "also": {}, "too": {}, "there": {}, "here": {}, "then": {},
}
