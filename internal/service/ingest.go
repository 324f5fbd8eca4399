package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"news_analytics/internal/domain"
	"news_analytics/internal/metrics"
)

// Ingestor is the dedup and persistence gate between the extractor and the
// article store.
type Ingestor struct {
	extractor Extractor
	articles  ArticleStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

// NewIngestor accepts a nil publisher when events are disabled.
func NewIngestor(
	extractor Extractor,
	articles ArticleStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *Ingestor {
	return &Ingestor{
		extractor: extractor,
		articles:  articles,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "ingestor"),
	}
}

// Ingest places every URL in exactly one of Success, Skipped or Failed.
// Per-URL errors never abort the batch.
func (i *Ingestor) Ingest(ctx context.Context, urls []string) *domain.IngestResult {
	start := time.Now()
	result := &domain.IngestResult{
		Total:   len(urls),
		Success: []string{},
		Skipped: []string{},
		Failed:  []domain.FailedURL{},
	}

	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			result.Failed = append(result.Failed, domain.FailedURL{URL: url, Error: err.Error()})
			metrics.RecordIngest("failed")
			continue
		}

		exists, err := i.articles.ExistsByURL(ctx, url)
		if err != nil {
			i.logger.Warn("existence check failed, ingesting anyway", "url", url, "error", err)
		}
		if exists {
			result.Skipped = append(result.Skipped, url)
			metrics.RecordIngest("skipped")
			continue
		}

		article := i.extractor.Parse(ctx, url)

		err = i.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return i.insert(txCtx, &article)
		})
		switch {
		case err == nil:
			result.Success = append(result.Success, url)
			metrics.RecordIngest("success")
			i.publish(ctx, &article)
		case isDuplicate(err):
			i.logger.Debug("duplicate article skipped", "url", url)
			result.Skipped = append(result.Skipped, url)
			metrics.RecordIngest("skipped")
		default:
			i.logger.Error("failed to store article", "url", url, "error", err)
			result.Failed = append(result.Failed, domain.FailedURL{URL: url, Error: err.Error()})
			metrics.RecordIngest("failed")
		}
	}

	result.Duration = time.Since(start)

	i.logger.Info("ingestion completed",
		"total", result.Total,
		"added", len(result.Success),
		"skipped", len(result.Skipped),
		"failed", len(result.Failed),
		"duration", result.Duration,
	)

	return result
}

// insert re-checks existence under a per-URL lock so concurrent runs cannot
// both store the same URL.
func (i *Ingestor) insert(ctx context.Context, article *domain.Article) error {
	if err := i.articles.LockURL(ctx, article.URL); err != nil {
		return err
	}

	exists, err := i.articles.ExistsByURL(ctx, article.URL)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateArticle
	}

	_, err = i.articles.Insert(ctx, article)
	return err
}

func (i *Ingestor) publish(ctx context.Context, article *domain.Article) {
	if i.publisher == nil {
		return
	}
	if err := i.publisher.Publish(ctx, domain.ActionIngested, article); err != nil {
		i.logger.Warn("failed to publish article event", "url", article.URL, "error", err)
	}
}

func isDuplicate(err error) bool {
	if errors.Is(err, domain.ErrDuplicateArticle) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "already exists")
}
