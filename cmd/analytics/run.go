package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"news_analytics/internal/classifier"
	"news_analytics/internal/scheduler"
	"news_analytics/internal/service"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Scrape and score on a fixed interval, serving Prometheus metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			scraper, err := a.scrapeService()
			if err != nil {
				return err
			}

			processor, err := a.sentimentProcessor()
			if errors.Is(err, classifier.ErrMissingAPIKey) {
				a.logger.Warn("classifier api key not set, sentiment scoring disabled")
				processor = nil
			} else if err != nil {
				return err
			}

			pipeline := service.NewPipeline(scraper, processor, a.cfg.Scrape, a.cfg.Sentiment, a.logger)

			srv := &http.Server{
				Addr:              a.cfg.Metrics.Addr,
				Handler:           metricsMux(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			go func() {
				a.logger.Info("serving metrics", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					a.logger.Error("metrics server failed", "error", err)
				}
			}()
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			sched := scheduler.NewScheduler(pipeline, a.cfg.Schedule.Interval, a.cfg.Schedule.RunTimeout, a.logger)

			a.logger.Info("starting news analytics",
				"source", a.cfg.Source.ID,
				"interval", a.cfg.Schedule.Interval,
				"article_limit", a.cfg.Scrape.ArticleLimit,
				"page_count", a.cfg.Scrape.PageCount,
			)

			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
