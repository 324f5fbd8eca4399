package electrek

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"news_analytics/internal/config"
	"news_analytics/internal/domain"
	"news_analytics/internal/pacing"
)

var (
	dateExpr   = regexp.MustCompile(`(?i)([a-z]+)\s+(\d{1,2})\s+(\d{4})\s+-\s+(\d{1,2}):(\d{2})\s+([ap]m)`)
	digitsExpr = regexp.MustCompile(`\d+`)

	dateLayouts = []string{
		"Jan 2 2006 - 3:04 pm",
		"January 2 2006 - 3:04 pm",
	}
)

const errorTitleChars = 30

// Extractor pulls title, author, publish date and comment count from an
// article page. Parse never fails; unreachable pages become sentinel records.
type Extractor struct {
	fetcher  Fetcher
	location *time.Location
	delayMin time.Duration
	delayMax time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func NewExtractor(f Fetcher, cfg config.ScrapeConfig, location *time.Location, logger *slog.Logger) *Extractor {
	if location == nil {
		location = time.UTC
	}
	return &Extractor{
		fetcher:  f,
		location: location,
		delayMin: cfg.ArticleDelayMin,
		delayMax: cfg.ArticleDelayMax,
		logger:   logger.With("component", "extractor"),
		now:      time.Now,
	}
}

func (e *Extractor) Parse(ctx context.Context, articleURL string) domain.Article {
	// A cancelled sleep surfaces through the fetch below.
	_ = pacing.Sleep(ctx, pacing.Uniform(e.delayMin, e.delayMax))

	doc, err := fetchDocument(ctx, e.fetcher, articleURL)
	if err != nil {
		e.logger.Warn("failed to retrieve article", "url", articleURL, "error", err)
		return e.sentinel(articleURL, err)
	}

	article := e.extract(doc, articleURL)

	e.logger.Debug("extracted article metadata",
		"url", articleURL,
		"title", article.Title,
		"author", article.Author,
		"published_at", article.PublishedAt,
		"approximate_date", article.DateIsApproximate,
	)

	return article
}

func (e *Extractor) extract(doc *goquery.Document, articleURL string) domain.Article {
	comments := commentCount(doc)
	article := domain.Article{
		Title:        firstText(doc, domain.NoTitle, "h1.h1", "h1"),
		URL:          articleURL,
		Author:       firstText(doc, domain.UnknownAuthor, "span.author-name", ".author-name"),
		CommentCount: &comments,
	}

	if published, ok := e.publishedAt(doc); ok {
		article.PublishedAt = published
	} else {
		article.PublishedAt = e.now()
		article.DateIsApproximate = true
	}

	return article
}

func (e *Extractor) sentinel(articleURL string, cause error) domain.Article {
	msg := []rune(cause.Error())
	if len(msg) > errorTitleChars {
		msg = msg[:errorTitleChars]
	}
	zero := 0
	return domain.Article{
		Title:             "Error: " + string(msg) + "...",
		URL:               articleURL,
		Author:            "Unknown",
		PublishedAt:       e.now(),
		DateIsApproximate: true,
		CommentCount:      &zero,
	}
}

// firstText returns the trimmed text of the first selector that matches.
func firstText(doc *goquery.Document, fallback string, selectors ...string) string {
	for _, sel := range selectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return strings.TrimSpace(s.Text())
		}
	}
	return fallback
}

func commentCount(doc *goquery.Document) int {
	link := doc.Find("a#single-comments-link").First()
	if link.Length() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digitsExpr.FindString(link.Text()))
	if err != nil {
		return 0
	}
	return n
}

// publishedAt scans text nodes for the first "<Mon> <D> <YYYY> - <H>:<MM> <am|pm>"
// date. Any trailing timezone marker is ignored.
func (e *Extractor) publishedAt(doc *goquery.Document) (time.Time, bool) {
	var match []string
	doc.Find("body *").Contents().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if goquery.NodeName(s) != "#text" {
			return true
		}
		match = dateExpr.FindStringSubmatch(s.Text())
		return match == nil
	})
	if match == nil {
		return time.Time{}, false
	}

	t, err := parseDate(match, e.location)
	if err != nil {
		e.logger.Debug("unparseable article date", "value", match[0], "error", err)
		return time.Time{}, false
	}
	return t, true
}

func parseDate(match []string, loc *time.Location) (time.Time, error) {
	normalized := match[1] + " " + match[2] + " " + match[3] + " - " +
		match[4] + ":" + match[5] + " " + strings.ToLower(match[6])

	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, normalized, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
