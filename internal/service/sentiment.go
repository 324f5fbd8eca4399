package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"news_analytics/internal/config"
	"news_analytics/internal/domain"
	"news_analytics/internal/metrics"
	"news_analytics/internal/pacing"
)

// SentimentProcessor scores unscored article titles in bounded batches.
type SentimentProcessor struct {
	articles   ArticleStore
	classifier Classifier
	publisher  Publisher
	config     config.SentimentConfig
	logger     *slog.Logger
}

func NewSentimentProcessor(
	articles ArticleStore,
	classifier Classifier,
	publisher Publisher,
	cfg config.SentimentConfig,
	logger *slog.Logger,
) *SentimentProcessor {
	return &SentimentProcessor{
		articles:   articles,
		classifier: classifier,
		publisher:  publisher,
		config:     cfg,
		logger:     logger.With("component", "sentiment"),
	}
}

// ProcessBatch scores at most batchSize rows that have no score yet. Only a
// failed selection is returned as an error; per-row problems are counted.
func (p *SentimentProcessor) ProcessBatch(ctx context.Context, batchSize int) (*domain.BatchResult, error) {
	if batchSize <= 0 {
		batchSize = p.config.BatchSize
	}

	rows, err := p.articles.ListArticles(ctx, domain.ArticleQuery{
		Scored: domain.ScoreMissing,
		Limit:  uint64(batchSize),
	})
	if err != nil {
		return nil, fmt.Errorf("select unscored articles: %w", err)
	}

	result := &domain.BatchResult{Selected: len(rows)}

	for idx := range rows {
		article := &rows[idx]

		if strings.TrimSpace(article.Title) == "" {
			result.Skipped++
			metrics.RecordSentiment("skipped")
			continue
		}

		score, err := p.classifier.Classify(ctx, article.Title)
		if err != nil {
			p.logger.Warn("classifier failed, storing neutral score", "id", article.ID, "error", err)
			score = 0
		}
		score = domain.ClampScore(score)

		if err := p.articles.UpdateSentiment(ctx, article.ID, score); err != nil {
			p.logger.Error("failed to store sentiment", "id", article.ID, "error", err)
			result.Failed++
			metrics.RecordSentiment("failed")
		} else {
			article.SentimentScore = &score
			result.Succeeded++
			metrics.RecordSentiment("succeeded")
			p.publish(ctx, article)
		}

		if idx < len(rows)-1 {
			if err := pacing.Sleep(ctx, pacing.Uniform(p.config.DelayMin, p.config.DelayMax)); err != nil {
				p.logger.Warn("sentiment batch interrupted", "error", err)
				break
			}
		}
	}

	p.logger.Info("sentiment batch completed",
		"selected", result.Selected,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"skipped", result.Skipped,
	)

	return result, nil
}

// AnalyzeSentiments repeats ProcessBatch while batches make progress, up to
// maxBatches, and sums their counters.
func (p *SentimentProcessor) AnalyzeSentiments(ctx context.Context, batchSize, maxBatches int) (*domain.BatchResult, error) {
	if maxBatches <= 0 {
		maxBatches = p.config.MaxBatches
	}

	total := &domain.BatchResult{}
	for i := 0; i < maxBatches; i++ {
		batch, err := p.ProcessBatch(ctx, batchSize)
		if err != nil {
			return total, err
		}
		total.Add(batch)

		if !batch.Progressed() {
			break
		}
	}

	return total, nil
}

func (p *SentimentProcessor) publish(ctx context.Context, article *domain.Article) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(ctx, domain.ActionScored, article); err != nil {
		p.logger.Warn("failed to publish article event", "id", article.ID, "error", err)
	}
}
