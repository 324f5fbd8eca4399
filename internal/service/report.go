package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news_analytics/internal/cache"
	"news_analytics/internal/domain"
	"news_analytics/internal/metrics"
	"news_analytics/internal/stats"
)

const TopArticlesLimit = 25

const (
	kindStatistics     = "statistics"
	kindMonthly        = "monthly_stats"
	kindTopArticles    = "top_articles"
	kindAuthorBias     = "author_bias"
	kindCompanies      = "company_comparison"
	kindBusinessImpact = "business_impact"
	kindSentimentData  = "sentiment_data"
)

// ReportService assembles a Report, caching each part separately.
type ReportService struct {
	analytics Analytics
	cache     ReportCache
	logger    *slog.Logger
	now       func() time.Time
}

func NewReportService(analytics Analytics, reportCache ReportCache, logger *slog.Logger) *ReportService {
	if reportCache == nil {
		reportCache = cache.Noop{}
	}
	return &ReportService{
		analytics: analytics,
		cache:     reportCache,
		logger:    logger.With("component", "report"),
		now:       time.Now,
	}
}

// Report returns cached parts where available and computes the rest.
func (s *ReportService) Report(ctx context.Context, window domain.Window) (*domain.Report, error) {
	return s.build(ctx, window, false)
}

// Rebuild recomputes every part and overwrites the cache.
func (s *ReportService) Rebuild(ctx context.Context, window domain.Window) (*domain.Report, error) {
	return s.build(ctx, window, true)
}

func (s *ReportService) build(ctx context.Context, window domain.Window, refresh bool) (*domain.Report, error) {
	report := &domain.Report{Window: window, GeneratedAt: s.now()}

	statistics, err := cached(ctx, s, kindStatistics, window, refresh, func() (*domain.Statistics, error) {
		return s.analytics.Statistics(ctx, window)
	})
	if err != nil {
		return nil, err
	}
	if statistics != nil {
		report.Statistics = *statistics
	}

	if report.Monthly, err = cached(ctx, s, kindMonthly, window, refresh, func() ([]domain.MonthBucket, error) {
		return s.analytics.MonthlyStats(ctx, window)
	}); err != nil {
		return nil, err
	}

	if report.TopArticles, err = cached(ctx, s, kindTopArticles, window, refresh, func() ([]domain.TopArticle, error) {
		return s.analytics.TopArticles(ctx, TopArticlesLimit, window)
	}); err != nil {
		return nil, err
	}

	if report.AuthorBias, err = cached(ctx, s, kindAuthorBias, window, refresh, func() ([]domain.AuthorBias, error) {
		return s.analytics.AuthorBias(ctx, window)
	}); err != nil {
		return nil, err
	}

	if report.Companies, err = cached(ctx, s, kindCompanies, window, refresh, func() ([]domain.CompanyStats, error) {
		return s.analytics.CompanyComparison(ctx, window)
	}); err != nil {
		return nil, err
	}

	if report.BusinessImpact, err = cached(ctx, s, kindBusinessImpact, window, refresh, func() (*domain.BusinessImpact, error) {
		return s.analytics.BusinessImpact(ctx, window)
	}); err != nil {
		return nil, err
	}

	if report.SentimentData, err = cached(ctx, s, kindSentimentData, window, refresh, func() ([]domain.SentimentPoint, error) {
		return s.analytics.SentimentData(ctx, window)
	}); err != nil {
		return nil, err
	}

	report.Correlation = stats.Correlation(report.SentimentData)

	return report, nil
}

func cached[T any](
	ctx context.Context,
	s *ReportService,
	kind string,
	window domain.Window,
	refresh bool,
	compute func() (T, error),
) (T, error) {
	key := cache.Key(kind, window)

	if !refresh {
		var hit T
		if s.cache.Get(ctx, key, &hit) {
			metrics.RecordCacheLookup(kind, true)
			return hit, nil
		}
		metrics.RecordCacheLookup(kind, false)
	}

	value, err := compute()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("compute %s: %w", kind, err)
	}

	s.cache.Set(ctx, key, value)
	s.logger.Debug("report part computed", "kind", kind, "months", window.Months())

	return value, nil
}
