package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"news_analytics/internal/domain"
)

func analyzeCmd() *cobra.Command {
	var batchSize, maxBatches int

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score the sentiment of stored articles that have no score yet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			processor, err := a.sentimentProcessor()
			if err != nil {
				return err
			}

			pending, err := a.articles.Count(ctx, domain.ArticleQuery{Scored: domain.ScoreMissing})
			if err != nil {
				return fmt.Errorf("count unscored articles: %w", err)
			}
			a.logger.Info("starting sentiment analysis", "pending", pending)

			total, err := processor.AnalyzeSentiments(ctx, batchSize, maxBatches)
			if total != nil {
				fmt.Fprintf(cmd.OutOrStdout(),
					"selected %d articles: %d scored, %d failed, %d skipped\n",
					total.Selected, total.Succeeded, total.Failed, total.Skipped,
				)
			}
			return err
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "rows per batch (default from config)")
	cmd.Flags().IntVar(&maxBatches, "max-batches", 0, "maximum number of batches (default from config)")

	return cmd
}
