package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_analytics/internal/domain"
	"news_analytics/internal/service/mocks"
)

type IngestorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	extractor *mocks.MockExtractor
	articles  *mocks.MockArticleStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	ingestor *Ingestor
	logger   *slog.Logger
}

func (s *IngestorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.extractor = mocks.NewMockExtractor(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	s.ingestor = NewIngestor(s.extractor, s.articles, s.txManager, s.publisher, s.logger)
}

func (s *IngestorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIngestorTestSuite(t *testing.T) {
	suite.Run(t, new(IngestorTestSuite))
}

func (s *IngestorTestSuite) article(url string) domain.Article {
	comments := 12
	return domain.Article{
		Title:        "Tesla cuts Model Y prices",
		URL:          url,
		Author:       "Fred Lambert",
		CommentCount: &comments,
	}
}

func (s *IngestorTestSuite) TestIngest_NewArticle() {
	ctx := context.Background()
	url := "https://electrek.co/2025/03/01/model-y/"
	article := s.article(url)

	s.articles.EXPECT().ExistsByURL(ctx, url).Return(false, nil).Times(2)
	s.extractor.EXPECT().Parse(ctx, url).Return(article)
	s.articles.EXPECT().LockURL(ctx, url).Return(nil)
	s.articles.EXPECT().Insert(ctx, &article).Return(int64(1), nil)
	s.publisher.EXPECT().Publish(ctx, domain.ActionIngested, &article).Return(nil)

	result := s.ingestor.Ingest(ctx, []string{url})

	s.Equal(1, result.Total)
	s.Equal([]string{url}, result.Success)
	s.Empty(result.Skipped)
	s.Empty(result.Failed)
	s.Equal(1, result.Added())
}

func (s *IngestorTestSuite) TestIngest_SkipsExisting() {
	ctx := context.Background()
	url := "https://electrek.co/known/"

	s.articles.EXPECT().ExistsByURL(ctx, url).Return(true, nil)

	result := s.ingestor.Ingest(ctx, []string{url})

	s.Equal([]string{url}, result.Skipped)
	s.Empty(result.Success)
	s.Empty(result.Failed)
}

func (s *IngestorTestSuite) TestIngest_DuplicateUnderLock() {
	ctx := context.Background()
	url := "https://electrek.co/race/"

	gomock.InOrder(
		s.articles.EXPECT().ExistsByURL(ctx, url).Return(false, nil),
		s.extractor.EXPECT().Parse(ctx, url).Return(s.article(url)),
		s.articles.EXPECT().LockURL(ctx, url).Return(nil),
		s.articles.EXPECT().ExistsByURL(ctx, url).Return(true, nil),
	)

	result := s.ingestor.Ingest(ctx, []string{url})

	s.Equal([]string{url}, result.Skipped)
	s.Empty(result.Success)
}

func (s *IngestorTestSuite) TestIngest_UniqueViolationIsSkipped() {
	ctx := context.Background()
	url := "https://electrek.co/dup/"

	s.articles.EXPECT().ExistsByURL(ctx, url).Return(false, nil).Times(2)
	s.extractor.EXPECT().Parse(ctx, url).Return(s.article(url))
	s.articles.EXPECT().LockURL(ctx, url).Return(nil)
	s.articles.EXPECT().Insert(ctx, gomock.Any()).Return(int64(0), errors.New("pq: duplicate key value violates unique constraint"))

	result := s.ingestor.Ingest(ctx, []string{url})

	s.Equal([]string{url}, result.Skipped)
	s.Empty(result.Failed)
}

func (s *IngestorTestSuite) TestIngest_InsertFailure() {
	ctx := context.Background()
	url := "https://electrek.co/broken/"

	s.articles.EXPECT().ExistsByURL(ctx, url).Return(false, nil).Times(2)
	s.extractor.EXPECT().Parse(ctx, url).Return(s.article(url))
	s.articles.EXPECT().LockURL(ctx, url).Return(nil)
	s.articles.EXPECT().Insert(ctx, gomock.Any()).Return(int64(0), errors.New("connection reset"))

	result := s.ingestor.Ingest(ctx, []string{url})

	s.Empty(result.Success)
	s.Require().Len(result.Failed, 1)
	s.Equal(url, result.Failed[0].URL)
	s.Contains(result.Failed[0].Error, "connection reset")
}

func (s *IngestorTestSuite) TestIngest_ExistsErrorStillIngests() {
	ctx := context.Background()
	url := "https://electrek.co/flaky/"
	article := s.article(url)

	gomock.InOrder(
		s.articles.EXPECT().ExistsByURL(ctx, url).Return(false, errors.New("timeout")),
		s.extractor.EXPECT().Parse(ctx, url).Return(article),
		s.articles.EXPECT().LockURL(ctx, url).Return(nil),
		s.articles.EXPECT().ExistsByURL(ctx, url).Return(false, nil),
		s.articles.EXPECT().Insert(ctx, &article).Return(int64(5), nil),
	)
	s.publisher.EXPECT().Publish(ctx, domain.ActionIngested, gomock.Any()).Return(nil)

	result := s.ingestor.Ingest(ctx, []string{url})

	s.Equal([]string{url}, result.Success)
}

func (s *IngestorTestSuite) TestIngest_PublishFailureIgnored() {
	ctx := context.Background()
	url := "https://electrek.co/publish/"

	s.articles.EXPECT().ExistsByURL(ctx, url).Return(false, nil).Times(2)
	s.extractor.EXPECT().Parse(ctx, url).Return(s.article(url))
	s.articles.EXPECT().LockURL(ctx, url).Return(nil)
	s.articles.EXPECT().Insert(ctx, gomock.Any()).Return(int64(2), nil)
	s.publisher.EXPECT().Publish(ctx, domain.ActionIngested, gomock.Any()).Return(errors.New("broker down"))

	result := s.ingestor.Ingest(ctx, []string{url})

	s.Equal([]string{url}, result.Success)
	s.Empty(result.Failed)
}

func (s *IngestorTestSuite) TestIngest_MixedBatch() {
	ctx := context.Background()
	urls := []string{"https://electrek.co/a/", "https://electrek.co/b/", "https://electrek.co/c/"}

	s.articles.EXPECT().ExistsByURL(ctx, urls[0]).Return(true, nil)
	s.articles.EXPECT().ExistsByURL(ctx, urls[1]).Return(false, nil).Times(2)
	s.articles.EXPECT().ExistsByURL(ctx, urls[2]).Return(false, nil).Times(2)
	s.extractor.EXPECT().Parse(ctx, urls[1]).Return(s.article(urls[1]))
	s.extractor.EXPECT().Parse(ctx, urls[2]).Return(s.article(urls[2]))
	s.articles.EXPECT().LockURL(ctx, gomock.Any()).Return(nil).Times(2)
	s.articles.EXPECT().Insert(ctx, gomock.Any()).Return(int64(1), nil)
	s.articles.EXPECT().Insert(ctx, gomock.Any()).Return(int64(0), errors.New("disk full"))
	s.publisher.EXPECT().Publish(ctx, domain.ActionIngested, gomock.Any()).Return(nil)

	result := s.ingestor.Ingest(ctx, urls)

	s.Equal(3, result.Total)
	s.Equal(result.Total, len(result.Success)+len(result.Skipped)+len(result.Failed))
	s.Equal([]string{urls[0]}, result.Skipped)
	s.Equal([]string{urls[1]}, result.Success)
	s.Require().Len(result.Failed, 1)
	s.Equal(urls[2], result.Failed[0].URL)
}

func (s *IngestorTestSuite) TestIngest_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := s.ingestor.Ingest(ctx, []string{"https://electrek.co/x/", "https://electrek.co/y/"})

	s.Len(result.Failed, 2)
	s.Empty(result.Success)
}

func (s *IngestorTestSuite) TestIngest_NoPublisher() {
	ctx := context.Background()
	url := "https://electrek.co/quiet/"
	ingestor := NewIngestor(s.extractor, s.articles, s.txManager, nil, s.logger)

	s.articles.EXPECT().ExistsByURL(ctx, url).Return(false, nil).Times(2)
	s.extractor.EXPECT().Parse(ctx, url).Return(s.article(url))
	s.articles.EXPECT().LockURL(ctx, url).Return(nil)
	s.articles.EXPECT().Insert(ctx, gomock.Any()).Return(int64(3), nil)

	result := ingestor.Ingest(ctx, []string{url})

	s.Equal([]string{url}, result.Success)
}
