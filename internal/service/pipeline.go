package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"news_analytics/internal/config"
	"news_analytics/internal/metrics"
)

// Pipeline is one scheduled run: scrape with the configured limits, then
// score whatever is still unscored.
type Pipeline struct {
	scraper   *ScrapeService
	sentiment *SentimentProcessor
	scrapeCfg config.ScrapeConfig
	sentCfg   config.SentimentConfig
	logger    *slog.Logger
}

// NewPipeline accepts a nil sentiment processor when no classifier is configured.
func NewPipeline(
	scraper *ScrapeService,
	sentiment *SentimentProcessor,
	scrapeCfg config.ScrapeConfig,
	sentCfg config.SentimentConfig,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		scraper:   scraper,
		sentiment: sentiment,
		scrapeCfg: scrapeCfg,
		sentCfg:   sentCfg,
		logger:    logger.With("component", "pipeline"),
	}
}

func (p *Pipeline) RunOnce(ctx context.Context) error {
	start := time.Now()
	var errs []error

	result, err := p.scraper.Scrape(ctx, p.scrapeCfg.ArticleLimit, p.scrapeCfg.PageCount)
	if err != nil {
		errs = append(errs, fmt.Errorf("scrape: %w", err))
	}
	if result != nil {
		p.logger.Info("pipeline scrape finished", "added", result.Added(), "failed", len(result.Failed))
	}

	if p.sentiment != nil {
		batch, err := p.sentiment.AnalyzeSentiments(ctx, p.sentCfg.BatchSize, p.sentCfg.MaxBatches)
		if err != nil {
			errs = append(errs, fmt.Errorf("analyze sentiments: %w", err))
		}
		if batch != nil {
			p.logger.Info("pipeline sentiment finished", "succeeded", batch.Succeeded, "failed", batch.Failed)
		}
	}

	err = errors.Join(errs...)
	status := "success"
	if err != nil {
		status = "error"
		p.logger.Error("pipeline run failed", "error", err)
	}
	metrics.RecordPipelineRun(status, time.Since(start).Seconds())

	return err
}
