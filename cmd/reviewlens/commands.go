package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/reviewlens/internal/aggregate"
	"github.com/spacesedan/reviewlens/internal/ingest"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/report"
	"github.com/spacesedan/reviewlens/internal/sentiment"
	"github.com/spacesedan/reviewlens/internal/utils"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Score a single review text",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := sentiment.AnalyzeText(a.scorer, strings.Join(args, " "))
			if errors.Is(err, sentiment.ErrMissingInput) {
				a.logger.Warn("[Analyze] Please enter some text to analyze")
				return nil
			}
			if err != nil {
				return err
			}
			return report.Analysis(cmd.OutOrStdout(), res)
		},
	}
}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show review counts and the sentiment distribution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := a.corpus(cmd.Context())
			if err != nil {
				return err
			}
			return a.renderSummary(cmd.OutOrStdout(), corpus)
		},
	}
}

func newWordsCmd(a *app) *cobra.Command {
	var (
		label string
		top   int
	)

	cmd := &cobra.Command{
		Use:   "words",
		Short: "List the most frequent words for one sentiment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, ok := sentiment.Resolve(label, sentiment.PrefixMatcher)
			if !ok {
				return fmt.Errorf("%w: %q", aggregate.ErrNoTargetLabel, label)
			}
			if !cmd.Flags().Changed("top") {
				top = a.cfg.Report.TopWords
			}

			corpus, err := a.corpus(cmd.Context())
			if err != nil {
				return err
			}
			return a.renderWords(cmd.OutOrStdout(), corpus, target, top)
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", sentiment.LabelPositive.String(), "Sentiment to list words for")
	cmd.Flags().IntVarP(&top, "top", "n", 0, "Number of words to show")
	return cmd
}

func newPreviewCmd(a *app) *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the first rows of the corpus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("rows") {
				rows = a.cfg.Report.PreviewRows
			}

			corpus, err := a.corpus(cmd.Context())
			if err != nil {
				return err
			}
			return a.renderPreview(cmd.OutOrStdout(), corpus, rows)
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 0, "Number of rows to show")
	return cmd
}

// newDashboardCmd renders every view. Each section reloads the corpus the
// way a dashboard rerun does; the loader serves repeats from the cache.
func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Render summary, word tables and preview together",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			ctx := cmd.Context()

			corpus, err := a.corpus(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "== Summary")
			if err := a.renderSummary(w, corpus); err != nil {
				return err
			}

			for _, target := range []sentiment.Label{sentiment.LabelPositive, sentiment.LabelNegative} {
				corpus, err = a.corpus(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "\n== Top words: %s\n", target)
				if err := a.renderWords(w, corpus, target, a.cfg.Report.TopWords); err != nil {
					return err
				}
			}

			fmt.Fprintf(w, "\n== First %d reviews\n", a.cfg.Report.PreviewRows)
			return a.renderPreview(w, corpus, a.cfg.Report.PreviewRows)
		},
	}
}

// newScoreCmd writes every record with its computed score and label as
// JSON lines.
func newScoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Score every review and print JSON lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := a.corpus(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, r := range aggregate.ScoreCorpus(corpus.Records, a.scorer) {
				if err := enc.Encode(r); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newInvalidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate",
		Short: "Drop the cached snapshot of the review file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := a.corpus(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.loader.Invalidate(cmd.Context(), corpus.Fingerprint); err != nil {
				return err
			}
			a.logger.Info("[Invalidate] Dropped cached corpus",
				slog.String("fingerprint", corpus.Fingerprint))
			return nil
		},
	}
}

func (a *app) renderSummary(w io.Writer, corpus ingest.Corpus) error {
	summary, err := aggregate.Aggregate(corpus.Records, a.labelOf(), a.options()...)
	if err != nil {
		return err
	}
	if summary.Unmatched > 0 {
		a.logger.Warn("[Summary] Some labels matched no sentiment category",
			slog.Int("unmatched", summary.Unmatched))
	}
	return report.Summary(w, summary)
}

func (a *app) renderWords(w io.Writer, corpus ingest.Corpus, target sentiment.Label, top int) error {
	table, err := aggregate.WordFrequencies(corpus.Records, a.labelOf(), target, a.options()...)
	if err != nil {
		return err
	}
	return report.Frequencies(w, table, top)
}

func (a *app) renderPreview(w io.Writer, corpus ingest.Corpus, rows int) error {
	return report.Preview(w, previewReviews(corpus.Records, a.labelOf(), rows))
}

// previewReviews labels the first rows records with the configured label
// source. Nothing is scored beyond what labelOf needs.
func previewReviews(records []models.ReviewRecord, labelOf aggregate.LabelFunc, rows int) []models.AnalyzedReview {
	head := utils.Head(records, rows)
	reviews := make([]models.AnalyzedReview, 0, len(head))
	for _, r := range head {
		reviews = append(reviews, models.AnalyzedReview{ReviewRecord: r, SentimentLabel: labelOf(r)})
	}
	return reviews
}
