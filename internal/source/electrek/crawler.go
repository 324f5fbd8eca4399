package electrek

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"news_analytics/internal/pacing"
)

const listingLinkSelector = "article h2 a"

// Crawler walks listing pages and collects article URLs in document order.
type Crawler struct {
	fetcher Fetcher
	baseURL *url.URL
	logger  *slog.Logger
}

func NewCrawler(f Fetcher, baseURL string, logger *slog.Logger) (*Crawler, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	return &Crawler{
		fetcher: f,
		baseURL: u,
		logger:  logger.With("component", "crawler"),
	}, nil
}

// PageURL returns the listing URL for a 1-based page number.
func (c *Crawler) PageURL(page int) string {
	if page <= 1 {
		return c.baseURL.String()
	}
	return fmt.Sprintf("%s/page/%d/", c.baseURL.String(), page)
}

// CollectURLs visits up to maxPages listing pages and returns at most
// target URLs. Failed pages are skipped; a cancelled context ends the crawl
// with whatever was collected so far.
func (c *Crawler) CollectURLs(ctx context.Context, target, maxPages int, baseDelay time.Duration) []string {
	urls := make([]string, 0, target)
	start := time.Now()
	visited := 0

	for page := 1; page <= maxPages; page++ {
		if page > 1 {
			if err := pacing.Sleep(ctx, pacing.PageDelay(baseDelay, page)); err != nil {
				c.logger.Warn("crawl interrupted", "page", page, "error", err)
				break
			}
		}

		pageURL := c.PageURL(page)
		visited++

		doc, err := fetchDocument(ctx, c.fetcher, pageURL)
		if err != nil {
			c.logger.Warn("failed to fetch listing page", "page", page, "url", pageURL, "error", err)
			if err := pacing.Sleep(ctx, 2*baseDelay); err != nil {
				break
			}
			continue
		}

		found := c.extractLinks(doc)
		urls = append(urls, found...)

		c.logger.Info("listing page processed",
			"page", page,
			"found", len(found),
			"total", len(urls),
			"target", target,
		)

		if len(urls) >= target {
			break
		}
	}

	if len(urls) > target {
		urls = urls[:target]
	}

	c.logger.Info("url collection complete",
		"collected", len(urls),
		"pages_visited", visited,
		"duration", time.Since(start),
	)

	return urls
}

func (c *Crawler) extractLinks(doc *goquery.Document) []string {
	var links []string
	doc.Find(listingLinkSelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		links = append(links, c.absolute(href))
	})
	return links
}

func (c *Crawler) absolute(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return c.baseURL.String() + "/" + strings.TrimLeft(href, "/")
	}
	return c.baseURL.ResolveReference(ref).String()
}
