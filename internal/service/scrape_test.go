package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_analytics/internal/config"
	"news_analytics/internal/domain"
	"news_analytics/internal/service/mocks"
)

type ScrapeServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	crawler   *mocks.MockCrawler
	extractor *mocks.MockExtractor
	articles  *mocks.MockArticleStore
	state     *mocks.MockScrapeStateStore
	txManager *mocks.MockTransactionManager

	service *ScrapeService
	cfg     config.ScrapeConfig
}

func (s *ScrapeServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.crawler = mocks.NewMockCrawler(s.ctrl)
	s.extractor = mocks.NewMockExtractor(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.state = mocks.NewMockScrapeStateStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	s.cfg = config.ScrapeConfig{PageDelay: 2 * time.Second}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	ingestor := NewIngestor(s.extractor, s.articles, s.txManager, nil, logger)
	s.service = NewScrapeService("electrek", s.crawler, ingestor, s.state, s.cfg, logger)
}

func (s *ScrapeServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestScrapeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScrapeServiceTestSuite))
}

func (s *ScrapeServiceTestSuite) TestScrape_IngestsAndUpdatesState() {
	ctx := context.Background()
	urls := []string{"https://electrek.co/old/", "https://electrek.co/new/"}

	s.crawler.EXPECT().CollectURLs(ctx, 2, 1, s.cfg.PageDelay).Return(urls)
	s.articles.EXPECT().ExistsByURL(ctx, urls[0]).Return(true, nil)
	s.articles.EXPECT().ExistsByURL(ctx, urls[1]).Return(false, nil).Times(2)
	s.extractor.EXPECT().Parse(ctx, urls[1]).Return(domain.Article{Title: "New", URL: urls[1]})
	s.articles.EXPECT().LockURL(ctx, urls[1]).Return(nil)
	s.articles.EXPECT().Insert(ctx, gomock.Any()).Return(int64(10), nil)

	s.state.EXPECT().Get(ctx, "electrek").Return(&domain.ScrapeState{SourceID: "electrek", TotalIngested: 40}, nil)
	s.state.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, st *domain.ScrapeState) error {
			s.Equal("electrek", st.SourceID)
			s.Equal(int64(1), st.LastRunAdded)
			s.Equal(int64(41), st.TotalIngested)
			s.False(st.LastScrapedAt.IsZero())
			return nil
		},
	)

	result, err := s.service.Scrape(ctx, 2, 1)

	s.Require().NoError(err)
	s.Equal(2, result.Total)
	s.Equal(1, result.Added())
	s.Len(result.Skipped, 1)
}

func (s *ScrapeServiceTestSuite) TestScrape_ClampsLimits() {
	ctx := context.Background()

	s.crawler.EXPECT().CollectURLs(ctx, MaxArticleLimit, 1, s.cfg.PageDelay).Return(nil)
	s.state.EXPECT().Get(ctx, "electrek").Return(&domain.ScrapeState{}, nil)
	s.state.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	result, err := s.service.Scrape(ctx, 5000, 0)

	s.Require().NoError(err)
	s.Equal(0, result.Total)
}

func (s *ScrapeServiceTestSuite) TestScrape_ClampsLowLimitAndHighPages() {
	ctx := context.Background()

	s.crawler.EXPECT().CollectURLs(ctx, 1, MaxPageCount, s.cfg.PageDelay).Return(nil)
	s.state.EXPECT().Get(ctx, "electrek").Return(&domain.ScrapeState{}, nil)
	s.state.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	_, err := s.service.Scrape(ctx, -3, 500)

	s.NoError(err)
}

func (s *ScrapeServiceTestSuite) TestScrape_StateErrorStillReturnsResult() {
	ctx := context.Background()

	s.crawler.EXPECT().CollectURLs(ctx, 10, 2, s.cfg.PageDelay).Return([]string{"https://electrek.co/seen/"})
	s.articles.EXPECT().ExistsByURL(ctx, "https://electrek.co/seen/").Return(true, nil)
	s.state.EXPECT().Get(ctx, "electrek").Return(nil, errors.New("db down"))

	result, err := s.service.Scrape(ctx, 10, 2)

	s.Error(err)
	s.Require().NotNil(result)
	s.Len(result.Skipped, 1)
}
