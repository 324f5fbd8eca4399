package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"news_analytics/internal/cache"
	"news_analytics/internal/classifier"
	"news_analytics/internal/config"
	"news_analytics/internal/fetcher"
	"news_analytics/internal/publisher"
	"news_analytics/internal/service"
	"news_analytics/internal/source/electrek"
	"news_analytics/internal/stats"
	"news_analytics/internal/storage/postgres"
)

// app holds the shared dependencies every subcommand builds on.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	articles  *postgres.ArticleStore
	publisher service.Publisher
	closers   []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := setupLogger(cfg.LogLevel)

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)

	a := &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		articles: postgres.NewArticleStore(db),
		closers:  []func() error{db.Close},
	}

	if cfg.RabbitMQ.URL != "" {
		pub, err := publisher.NewRabbitMQ(cfg.RabbitMQ, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.publisher = pub
		a.closers = append(a.closers, pub.Close)
	}

	return a, nil
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *app) scrapeService() (*service.ScrapeService, error) {
	f := fetcher.New(a.cfg.Scrape, a.cfg.Proxy, a.logger)
	a.logger.Info("fetcher ready", "routes", f.Routes(), "proxies_enabled", a.cfg.Proxy.Enabled)

	crawler, err := electrek.NewCrawler(f, a.cfg.Source.BaseURL, a.logger)
	if err != nil {
		return nil, err
	}
	extractor := electrek.NewExtractor(f, a.cfg.Scrape, a.cfg.Source.Location(), a.logger)

	ingestor := service.NewIngestor(
		extractor,
		a.articles,
		postgres.NewTransactionManager(a.db),
		a.publisher,
		a.logger,
	)

	return service.NewScrapeService(
		a.cfg.Source.ID,
		crawler,
		ingestor,
		postgres.NewScrapeStateStore(a.db),
		a.cfg.Scrape,
		a.logger,
	), nil
}

func (a *app) sentimentProcessor() (*service.SentimentProcessor, error) {
	c, err := classifier.New(a.cfg.Classifier, a.logger)
	if err != nil {
		return nil, fmt.Errorf("build classifier: %w", err)
	}
	return service.NewSentimentProcessor(a.articles, c, a.publisher, a.cfg.Sentiment, a.logger), nil
}

func (a *app) reportService(ctx context.Context) (*service.ReportService, error) {
	engine := stats.NewEngine(a.articles, a.cfg.Stats.PageSize, a.logger)

	reportCache, err := a.reportCache(ctx)
	if err != nil {
		return nil, err
	}
	return service.NewReportService(engine, reportCache, a.logger), nil
}

func (a *app) reportCache(ctx context.Context) (service.ReportCache, error) {
	switch a.cfg.Cache.Backend {
	case "file":
		fileCache, err := cache.NewFileCache(a.cfg.Cache.Dir, a.cfg.Cache.TTL, a.logger)
		if err != nil {
			return nil, err
		}
		return fileCache, nil
	case "redis":
		client, err := cache.NewRedisClient(ctx, a.cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		return cache.NewRedisCache(client, a.cfg.Cache.TTL, a.logger), nil
	case "none":
		return cache.Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", a.cfg.Cache.Backend)
	}
}
