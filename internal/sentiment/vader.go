package sentiment

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// CleanText renders markdown to plain text and strips links, so formatting
// markers and URLs do not reach the scorer.
func CleanText(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	// Plain renderer flags: smartypants would turn "don't" into "don&rsquo;t".
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{})
	output := blackfriday.Run([]byte(RemoveLinks(input)),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(renderer))

	plain := html.UnescapeString(htmlTagPattern.ReplaceAllString(string(output), " "))
	return strings.Join(strings.Fields(plain), " ")
}

// VaderScorer scores text with the VADER compound score.
// The underlying analyzer is not safe for concurrent use, so calls are serialized.
type VaderScorer struct {
	sia *govader.SentimentIntensityAnalyzer
	mu  sync.Mutex
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{
		sia: govader.NewSentimentIntensityAnalyzer(),
	}
}

func (v *VaderScorer) Score(text string) float64 {
	plainText := CleanText(text)
	if plainText == "" {
		return 0
	}

	v.mu.Lock()
	scores := v.sia.PolarityScores(plainText)
	v.mu.Unlock()

	return clamp(scores.Compound)
}
