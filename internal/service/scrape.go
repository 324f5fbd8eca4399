package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news_analytics/internal/config"
	"news_analytics/internal/domain"
)

const (
	MaxArticleLimit = 2000
	MaxPageCount    = 80

	largePageCount    = 10
	largeArticleLimit = 250
)

type ScrapeService struct {
	sourceID string
	crawler  Crawler
	ingestor *Ingestor
	state    ScrapeStateStore
	config   config.ScrapeConfig
	logger   *slog.Logger
}

func NewScrapeService(
	sourceID string,
	crawler Crawler,
	ingestor *Ingestor,
	state ScrapeStateStore,
	cfg config.ScrapeConfig,
	logger *slog.Logger,
) *ScrapeService {
	return &ScrapeService{
		sourceID: sourceID,
		crawler:  crawler,
		ingestor: ingestor,
		state:    state,
		config:   cfg,
		logger:   logger.With("source", sourceID),
	}
}

// Scrape collects up to articleLimit URLs across at most pageCount listing
// pages and ingests them. The result is returned even when the scrape state
// cannot be saved.
func (s *ScrapeService) Scrape(ctx context.Context, articleLimit, pageCount int) (*domain.IngestResult, error) {
	start := time.Now()
	limit := clamp(articleLimit, 1, MaxArticleLimit)
	pages := clamp(pageCount, 1, MaxPageCount)

	if pages > largePageCount || limit > largeArticleLimit {
		s.logger.Warn("large scrape requested, this may take a while",
			"article_limit", limit,
			"page_count", pages,
		)
	}

	s.logger.Info("starting scrape", "article_limit", limit, "page_count", pages)

	urls := s.crawler.CollectURLs(ctx, limit, pages, s.config.PageDelay)
	s.logger.Info("collected article urls", "count", len(urls))

	result := s.ingestor.Ingest(ctx, urls)
	result.Duration = time.Since(start)

	if err := s.updateState(ctx, result); err != nil {
		return result, fmt.Errorf("update scrape state: %w", err)
	}

	s.logger.Info("scrape completed",
		"added", result.Added(),
		"skipped", len(result.Skipped),
		"failed", len(result.Failed),
		"duration", result.Duration,
	)

	return result, nil
}

func (s *ScrapeService) updateState(ctx context.Context, result *domain.IngestResult) error {
	state, err := s.state.Get(ctx, s.sourceID)
	if err != nil {
		return err
	}

	state.SourceID = s.sourceID
	state.LastScrapedAt = time.Now()
	state.LastRunAdded = int64(result.Added())
	state.TotalIngested += int64(result.Added())

	return s.state.Update(ctx, state)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
