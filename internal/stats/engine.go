// Package stats computes report aggregates by streaming articles from the
// store page by page.
package stats

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"news_analytics/internal/domain"
)

const (
	DefaultPageSize = 1000

	// MinAuthorArticles is the smallest article count reported in author bias.
	MinAuthorArticles = 5

	// MinCorrelationPoints is the smallest sample a correlation is computed for.
	MinCorrelationPoints = 5

	allTimePlaceholderMonths = 6
)

type ArticleReader interface {
	ListArticles(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error)
}

type Engine struct {
	reader   ArticleReader
	pageSize int
	logger   *slog.Logger
	now      func() time.Time
}

func NewEngine(reader ArticleReader, pageSize int, logger *slog.Logger) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Engine{
		reader:   reader,
		pageSize: pageSize,
		logger:   logger.With("component", "stats"),
		now:      time.Now,
	}
}

// scan feeds every article in the window to fn, reading pages ordered by id
// until a short page is returned.
func (e *Engine) scan(ctx context.Context, window domain.Window, scored domain.ScoreFilter, fn func(domain.Article)) error {
	q := domain.ArticleQuery{
		Since:   window.Since(e.now()),
		Scored:  scored,
		OrderBy: "id",
		Limit:   uint64(e.pageSize),
	}

	pages := 0
	for {
		page, err := e.reader.ListArticles(ctx, q)
		if err != nil {
			return fmt.Errorf("read articles at offset %d: %w", q.Offset, err)
		}
		pages++
		for _, a := range page {
			fn(a)
		}
		if len(page) < e.pageSize {
			e.logger.Debug("article scan complete",
				"months", window.Months(),
				"rows", q.Offset+uint64(len(page)),
				"pages", pages,
			)
			return nil
		}
		q.Offset += uint64(len(page))
	}
}

func (e *Engine) Statistics(ctx context.Context, window domain.Window) (*domain.Statistics, error) {
	var (
		st        domain.Statistics
		withCount int
		maxFound  bool
	)

	err := e.scan(ctx, window, domain.ScoreAny, func(a domain.Article) {
		st.TotalArticles++
		n, ok := a.Comments()
		if !ok {
			return
		}
		withCount++
		st.TotalComments += n
		if !maxFound || n > st.MaxComments {
			article := a
			st.MaxComments = n
			st.MaxArticle = &article
			maxFound = true
		}
	})
	if err != nil {
		return nil, err
	}

	if withCount > 0 {
		st.AvgComments = round(float64(st.TotalComments)/float64(withCount), 2)
	}
	return &st, nil
}

type monthAcc struct {
	articles int
	comments int
	counted  int
}

// MonthlyStats returns chronological month buckets. An empty window yields
// placeholder buckets so charts always have a shape.
func (e *Engine) MonthlyStats(ctx context.Context, window domain.Window) ([]domain.MonthBucket, error) {
	months := map[time.Time]*monthAcc{}

	err := e.scan(ctx, window, domain.ScoreAny, func(a domain.Article) {
		key := monthStart(a.PublishedAt)
		acc, ok := months[key]
		if !ok {
			acc = &monthAcc{}
			months[key] = acc
		}
		acc.articles++
		if n, ok := a.Comments(); ok {
			acc.comments += n
			acc.counted++
		}
	})
	if err != nil {
		return nil, err
	}

	if len(months) == 0 {
		return e.placeholderMonths(window), nil
	}

	buckets := make([]domain.MonthBucket, 0, len(months))
	for month, acc := range months {
		avg := 0
		if acc.counted > 0 {
			avg = int(math.Round(float64(acc.comments) / float64(acc.counted)))
		}
		buckets = append(buckets, domain.MonthBucket{
			Month:        month,
			ArticleCount: acc.articles,
			AvgComments:  avg,
			Kind:         domain.BucketMeasured,
		})
	}
	slices.SortFunc(buckets, func(a, b domain.MonthBucket) int {
		return a.Month.Compare(b.Month)
	})
	return buckets, nil
}

func (e *Engine) placeholderMonths(window domain.Window) []domain.MonthBucket {
	n := window.Months()
	if window.AllTime() {
		n = allTimePlaceholderMonths
	}

	current := monthStart(e.now())
	buckets := make([]domain.MonthBucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		buckets = append(buckets, domain.MonthBucket{
			Month:        current.AddDate(0, -i, 0),
			ArticleCount: 20 + rand.IntN(41),
			AvgComments:  10 + rand.IntN(71),
			Kind:         domain.BucketPlaceholder,
		})
	}
	return buckets
}

// TopArticles returns the most commented scored articles. Rows without a
// comment count sort last.
func (e *Engine) TopArticles(ctx context.Context, limit int, window domain.Window) ([]domain.TopArticle, error) {
	var rows []domain.Article
	if err := e.scan(ctx, window, domain.ScoreOnly, func(a domain.Article) {
		rows = append(rows, a)
	}); err != nil {
		return nil, err
	}

	slices.SortStableFunc(rows, func(a, b domain.Article) int {
		an, aok := a.Comments()
		bn, bok := b.Comments()
		switch {
		case aok && !bok:
			return -1
		case !aok && bok:
			return 1
		default:
			return cmp.Compare(bn, an)
		}
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	top := make([]domain.TopArticle, 0, len(rows))
	for _, a := range rows {
		top = append(top, domain.TopArticle{
			Article:       a,
			MentionsTesla: MentionsTesla(a.Title),
			MentionsMusk:  MentionsMusk(a.Title),
			Sentiment:     domain.SentimentBandFor(a.SentimentScore),
		})
	}
	return top, nil
}

type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.n++
}

func (m mean) value() float64 {
	if m.n == 0 {
		return 0
	}
	return m.sum / float64(m.n)
}

type authorAcc struct {
	total          int
	tesla          int
	teslaSentiment mean
	otherSentiment mean
	teslaComments  mean
	otherComments  mean
}

// AuthorBias reports authors with at least MinAuthorArticles articles,
// ordered by Tesla article count, then total articles, then name.
func (e *Engine) AuthorBias(ctx context.Context, window domain.Window) ([]domain.AuthorBias, error) {
	authors := map[string]*authorAcc{}

	err := e.scan(ctx, window, domain.ScoreAny, func(a domain.Article) {
		if a.Author == "" || a.Author == domain.UnknownAuthor || a.Author == "Unknown" {
			return
		}
		acc, ok := authors[a.Author]
		if !ok {
			acc = &authorAcc{}
			authors[a.Author] = acc
		}
		acc.total++

		sentiment, comments := &acc.otherSentiment, &acc.otherComments
		if MentionsTesla(a.Title) {
			acc.tesla++
			sentiment, comments = &acc.teslaSentiment, &acc.teslaComments
		}
		if a.SentimentScore != nil {
			sentiment.add(*a.SentimentScore)
		}
		if n, ok := a.Comments(); ok {
			comments.add(float64(n))
		}
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.AuthorBias, 0, len(authors))
	for name, acc := range authors {
		if acc.total < MinAuthorArticles {
			continue
		}
		result = append(result, domain.AuthorBias{
			Author:            name,
			TotalArticles:     acc.total,
			TeslaArticles:     acc.tesla,
			TeslaPercentage:   round(percent(acc.tesla, acc.total), 2),
			AvgTeslaSentiment: round(acc.teslaSentiment.value(), 3),
			AvgOtherSentiment: round(acc.otherSentiment.value(), 3),
			AvgTeslaComments:  round(acc.teslaComments.value(), 2),
			AvgOtherComments:  round(acc.otherComments.value(), 2),
		})
	}

	slices.SortFunc(result, func(a, b domain.AuthorBias) int {
		return cmp.Or(
			cmp.Compare(b.TeslaArticles, a.TeslaArticles),
			cmp.Compare(b.TotalArticles, a.TotalArticles),
			cmp.Compare(a.Author, b.Author),
		)
	})
	return result, nil
}

type companyAcc struct {
	articles  int
	comments  int
	counted   int
	sentiment mean
	negative  int
}

// CompanyComparison aggregates scored articles per company. Matching is not
// exclusive and companies without matches are omitted.
func (e *Engine) CompanyComparison(ctx context.Context, window domain.Window) ([]domain.CompanyStats, error) {
	accs := make([]companyAcc, len(Companies))

	err := e.scan(ctx, window, domain.ScoreOnly, func(a domain.Article) {
		for i, company := range Companies {
			if !company.Matches(a.Title) {
				continue
			}
			acc := &accs[i]
			acc.articles++
			if n, ok := a.Comments(); ok {
				acc.comments += n
				acc.counted++
			}
			if a.SentimentScore != nil {
				acc.sentiment.add(*a.SentimentScore)
				if *a.SentimentScore < domain.NegativeThreshold {
					acc.negative++
				}
			}
		}
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.CompanyStats, 0, len(Companies))
	for i, company := range Companies {
		acc := accs[i]
		if acc.articles == 0 {
			continue
		}
		avg := 0.0
		if acc.counted > 0 {
			avg = float64(acc.comments) / float64(acc.counted)
		}
		result = append(result, domain.CompanyStats{
			Company:            company.Name,
			ArticleCount:       acc.articles,
			TotalComments:      acc.comments,
			AvgComments:        round(avg, 2),
			AvgSentiment:       round(acc.sentiment.value(), 3),
			NegativeCount:      acc.negative,
			NegativePercentage: round(percent(acc.negative, acc.articles), 2),
		})
	}

	slices.SortStableFunc(result, func(a, b domain.CompanyStats) int {
		return cmp.Compare(b.AvgComments, a.AvgComments)
	})
	return result, nil
}

type cohort struct {
	articles         int
	comments         int
	counted          int
	negative         int
	negativeComments mean
}

func (c *cohort) add(a domain.Article) {
	c.articles++
	n, ok := a.Comments()
	if ok {
		c.comments += n
		c.counted++
	}
	if a.SentimentScore != nil && *a.SentimentScore < domain.NegativeThreshold {
		c.negative++
		if ok {
			c.negativeComments.add(float64(n))
		}
	}
}

func (c *cohort) avgComments() float64 {
	return float64(c.comments) / nonZero(float64(c.counted))
}

// BusinessImpact compares Tesla-related scored articles with the rest. It
// returns nil when the window holds no scored articles.
func (e *Engine) BusinessImpact(ctx context.Context, window domain.Window) (*domain.BusinessImpact, error) {
	var tesla, other cohort

	err := e.scan(ctx, window, domain.ScoreOnly, func(a domain.Article) {
		if MentionsTesla(a.Title) {
			tesla.add(a)
		} else {
			other.add(a)
		}
	})
	if err != nil {
		return nil, err
	}

	if tesla.articles+other.articles == 0 {
		return nil, nil
	}

	teslaAvg := tesla.avgComments()
	otherAvg := other.avgComments()
	negativeAvg := tesla.negativeComments.value()
	teslaNegPct := float64(tesla.negative) / nonZero(float64(tesla.articles)) * 100
	otherNegPct := float64(other.negative) / nonZero(float64(other.articles)) * 100
	total := tesla.comments + other.comments

	return &domain.BusinessImpact{
		TeslaArticles:       tesla.articles,
		OtherArticles:       other.articles,
		TeslaAvgComments:    round(teslaAvg, 2),
		OtherAvgComments:    round(otherAvg, 2),
		CommentMultiplier:   round(teslaAvg/nonZero(otherAvg), 2),
		NegativeTeslaAvg:    round(negativeAvg, 2),
		NegativeMultiplier:  round(negativeAvg/nonZero(otherAvg), 2),
		TeslaNegativePct:    round(teslaNegPct, 2),
		OtherNegativePct:    round(otherNegPct, 2),
		SentimentBiasPoints: round(teslaNegPct-otherNegPct, 2),
		TeslaCommentShare:   round(float64(tesla.comments)/nonZero(float64(total))*100, 2),
		TotalComments:       total,
	}, nil
}

// SentimentData returns scatter points for scored articles with a known
// comment count.
func (e *Engine) SentimentData(ctx context.Context, window domain.Window) ([]domain.SentimentPoint, error) {
	points := []domain.SentimentPoint{}

	err := e.scan(ctx, window, domain.ScoreOnly, func(a domain.Article) {
		n, ok := a.Comments()
		if !ok || a.SentimentScore == nil {
			return
		}
		points = append(points, domain.SentimentPoint{
			ID:             a.ID,
			Title:          a.Title,
			SentimentScore: *a.SentimentScore,
			CommentCount:   n,
			PublishedAt:    a.PublishedAt,
			Category:       domain.SentimentBandFor(a.SentimentScore).Category,
		})
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

// Correlation is the Pearson coefficient between sentiment and comment
// count. It is nil for fewer than MinCorrelationPoints points or when either
// series is constant.
func Correlation(points []domain.SentimentPoint) *float64 {
	n := len(points)
	if n < MinCorrelationPoints {
		return nil
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.SentimentScore
		sumY += float64(p.CommentCount)
	}
	meanX, meanY := sumX/float64(n), sumY/float64(n)

	var cov, varX, varY float64
	for _, p := range points {
		dx := p.SentimentScore - meanX
		dy := float64(p.CommentCount) - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return nil
	}

	r := cov / math.Sqrt(varX*varY)
	return &r
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
