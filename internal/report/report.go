// Package report renders aggregation results as plain text.
// It formats and lays out values; it never computes them.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spacesedan/reviewlens/internal/aggregate"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/sentiment"
)

const (
	barWidth        = 40
	previewTextCols = 60
	NoDataMessage   = "No data to display."
)

// Analysis renders a single-text result with a two-decimal score.
func Analysis(w io.Writer, r sentiment.Result) error {
	_, err := fmt.Fprintf(w, "Sentiment: %s (score: %.2f)\n", r.Label, r.Score)
	return err
}

// Summary renders the metric tiles followed by the distribution chart.
// Percentages are rounded to one decimal place here and nowhere else.
func Summary(w io.Writer, s aggregate.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total reviews\t%d\t\n", s.Total)
	for _, l := range sentiment.Labels {
		pct, err := s.Percentage(l)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", l, s.Counts[l], pct)
	}
	if s.Unmatched > 0 {
		fmt.Fprintf(tw, "Unrecognized label\t%d\t\n", s.Unmatched)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	return Bars(w, s.Bars())
}

// Bars renders a horizontal bar chart scaled to the largest count.
func Bars(w io.Writer, bars []aggregate.Bar) error {
	peak := 0
	for _, b := range bars {
		peak = max(peak, b.Count)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, b := range bars {
		n := 0
		if peak > 0 {
			n = b.Count * barWidth / peak
		}
		fmt.Fprintf(tw, "%s\t|%s\t%d\n", b.Label, strings.Repeat("#", n), b.Count)
	}
	return tw.Flush()
}

// Frequencies renders the top n words of a table, or NoDataMessage when it is empty.
func Frequencies(w io.Writer, table aggregate.FrequencyTable, n int) error {
	if table.IsEmpty() {
		_, err := fmt.Fprintln(w, NoDataMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, wc := range table.Top(n) {
		fmt.Fprintf(tw, "%s\t%d\n", wc.Word, wc.Count)
	}
	return tw.Flush()
}

// Preview renders product, text and label columns for a slice of reviews.
func Preview(w io.Writer, reviews []models.AnalyzedReview) error {
	if len(reviews) == 0 {
		_, err := fmt.Fprintln(w, NoDataMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tREVIEW\tSENTIMENT")
	for _, r := range reviews {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", oneLine(r.ProductName, 30), oneLine(r.Text, previewTextCols), r.SentimentLabel)
	}
	return tw.Flush()
}

// oneLine collapses whitespace and truncates to limit runes.
func oneLine(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
