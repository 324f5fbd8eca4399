package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func scrapeCmd() *cobra.Command {
	var limit, pages int

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Collect article URLs from the listing pages and store new articles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Scrape.ArticleLimit
			}
			if !cmd.Flags().Changed("pages") {
				pages = a.cfg.Scrape.PageCount
			}

			scraper, err := a.scrapeService()
			if err != nil {
				return err
			}

			result, err := scraper.Scrape(ctx, limit, pages)
			if result != nil {
				fmt.Fprintf(cmd.OutOrStdout(),
					"processed %d urls: %d added, %d skipped, %d failed in %s\n",
					result.Total, result.Added(), len(result.Skipped), len(result.Failed), result.Duration.Round(time.Millisecond),
				)
				for _, f := range result.Failed {
					fmt.Fprintf(cmd.OutOrStdout(), "  failed %s: %s\n", f.URL, f.Error)
				}
			}
			return err
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "maximum number of articles to collect (1-2000)")
	cmd.Flags().IntVar(&pages, "pages", 5, "maximum number of listing pages to visit (1-80)")

	return cmd
}
