package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var overrides cliOverrides
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "reviewlens",
		Short: "Sentiment dashboard for product reviews",
		Long:  "Scores product reviews, summarizes the sentiment distribution and lists the most frequent words per sentiment.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context(), cmd.Flags(), &overrides)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
		SilenceUsage: true,
	}

	// CLI flags - highest priority in the config hierarchy.
	f := rootCmd.PersistentFlags()
	overrides.ConfigPath = f.StringP("config", "f", "", "Path to YAML config file (overrides REVIEWLENS_CONFIG env)")
	overrides.File = f.String("file", "", "Review CSV to analyze")
	overrides.Engine = f.String("engine", "", "Scoring engine: lexicon|vader")
	overrides.LabelSource = f.String("label-source", "", "Label source: precomputed|classified|auto")
	overrides.Matching = f.String("matching", "", "Label matching: prefix|exact")
	overrides.Cache = f.String("cache", "", "Corpus cache backend: none|memory|valkey")
	overrides.LogLevel = f.String("log-level", "", "Log level: debug|info|warn|error")
	overrides.Stopwords = f.Bool("stopwords", false, "Drop common English words from word tables")

	rootCmd.AddCommand(
		newAnalyzeCmd(a),
		newSummaryCmd(a),
		newWordsCmd(a),
		newPreviewCmd(a),
		newDashboardCmd(a),
		newScoreCmd(a),
		newInvalidateCmd(a),
	)

	return rootCmd
}
