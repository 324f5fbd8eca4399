package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"news_analytics/internal/domain"
)

type ArticleStore interface {
	ExistsByURL(ctx context.Context, url string) (bool, error)
	LockURL(ctx context.Context, url string) error
	Insert(ctx context.Context, article *domain.Article) (int64, error)
	UpdateSentiment(ctx context.Context, id int64, score float64) error
	ListArticles(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error)
}

type ScrapeStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.ScrapeState, error)
	Update(ctx context.Context, state *domain.ScrapeState) error
}

type Crawler interface {
	CollectURLs(ctx context.Context, target, maxPages int, baseDelay time.Duration) []string
}

type Extractor interface {
	Parse(ctx context.Context, url string) domain.Article
}

type Classifier interface {
	Classify(ctx context.Context, text string) (float64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, action string, article *domain.Article) error
	Close() error
}

type ReportCache interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, value any)
}

type Analytics interface {
	Statistics(ctx context.Context, window domain.Window) (*domain.Statistics, error)
	MonthlyStats(ctx context.Context, window domain.Window) ([]domain.MonthBucket, error)
	TopArticles(ctx context.Context, limit int, window domain.Window) ([]domain.TopArticle, error)
	AuthorBias(ctx context.Context, window domain.Window) ([]domain.AuthorBias, error)
	CompanyComparison(ctx context.Context, window domain.Window) ([]domain.CompanyStats, error)
	BusinessImpact(ctx context.Context, window domain.Window) (*domain.BusinessImpact, error)
	SentimentData(ctx context.Context, window domain.Window) ([]domain.SentimentPoint, error)
}
