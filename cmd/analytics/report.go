package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"news_analytics/internal/domain"
)

func reportCmd() *cobra.Command {
	var (
		months  int
		asJSON  bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print coverage, comment and sentiment statistics for a trailing window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			svc, err := a.reportService(ctx)
			if err != nil {
				return err
			}

			window := domain.Window(months)
			var report *domain.Report
			if refresh {
				report, err = svc.Rebuild(ctx, window)
			} else {
				report, err = svc.Report(ctx, window)
			}
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return printReport(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().IntVar(&months, "months", 6, "trailing window in months, 0 for all time")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute every part and overwrite the cache")

	return cmd
}

func printReport(out io.Writer, r *domain.Report) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	window := "all time"
	if !r.Window.AllTime() {
		window = fmt.Sprintf("last %d months", r.Window.Months())
	}
	fmt.Fprintf(w, "Report (%s)\n\n", window)

	s := r.Statistics
	fmt.Fprintf(w, "Articles\t%d\n", s.TotalArticles)
	fmt.Fprintf(w, "Comments\t%d\n", s.TotalComments)
	fmt.Fprintf(w, "Avg comments\t%.2f\n", s.AvgComments)
	if s.MaxArticle != nil {
		fmt.Fprintf(w, "Most discussed\t%s (%d)\n", s.MaxArticle.Title, s.MaxComments)
	}
	if r.Correlation != nil {
		fmt.Fprintf(w, "Sentiment/comments r\t%.3f\n", *r.Correlation)
	}

	fmt.Fprintln(w, "\nMonth\tArticles\tAvg comments\t")
	for _, m := range r.Monthly {
		label := m.Label()
		if m.Kind == domain.BucketPlaceholder {
			label += " *"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t\n", label, m.ArticleCount, m.AvgComments)
	}

	if bi := r.BusinessImpact; bi != nil {
		fmt.Fprintln(w, "\nTesla impact\t")
		fmt.Fprintf(w, "Tesla / other articles\t%d / %d\n", bi.TeslaArticles, bi.OtherArticles)
		fmt.Fprintf(w, "Comment multiplier\t%.2fx\n", bi.CommentMultiplier)
		fmt.Fprintf(w, "Negative multiplier\t%.2fx\n", bi.NegativeMultiplier)
		fmt.Fprintf(w, "Negative share Tesla / other\t%.2f%% / %.2f%%\n", bi.TeslaNegativePct, bi.OtherNegativePct)
		fmt.Fprintf(w, "Tesla comment share\t%.2f%%\n", bi.TeslaCommentShare)
	}

	fmt.Fprintln(w, "\nCompany\tArticles\tAvg comments\tAvg sentiment\tNegative %\t")
	for _, c := range r.Companies {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.3f\t%.2f\t\n", c.Company, c.ArticleCount, c.AvgComments, c.AvgSentiment, c.NegativePercentage)
	}

	fmt.Fprintln(w, "\nAuthor\tArticles\tTesla %\tTesla sentiment\tOther sentiment\t")
	for _, b := range r.AuthorBias {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.3f\t%.3f\t\n", b.Author, b.TotalArticles, b.TeslaPercentage, b.AvgTeslaSentiment, b.AvgOtherSentiment)
	}

	fmt.Fprintln(w, "\nTop articles\tComments\tSentiment\t")
	for _, t := range r.TopArticles {
		comments, _ := t.Article.Comments()
		fmt.Fprintf(w, "%s\t%d\t%s\t\n", t.Article.Title, comments, t.Sentiment.Category)
	}

	return w.Flush()
}
