package electrek

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_analytics/internal/config"
	"news_analytics/internal/domain"
	"news_analytics/internal/fetcher"
)

const testBase = "https://electrek.test"

type fakeFetcher struct {
	pages     map[string]string
	requested []string
}

func (f *fakeFetcher) Get(ctx context.Context, rawURL string) (*fetcher.Response, error) {
	f.requested = append(f.requested, rawURL)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, ok := f.pages[rawURL]
	if !ok {
		return nil, &fetcher.FetchError{URL: rawURL, Attempts: 1, Err: &fetcher.StatusError{StatusCode: 404}}
	}
	return &fetcher.Response{URL: rawURL, StatusCode: 200, Body: []byte(body), Route: "direct"}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func listingPage(hrefs ...string) string {
	var b strings.Builder
	b.WriteString("<html><body><main>")
	for _, h := range hrefs {
		fmt.Fprintf(&b, `<article><h2><a href="%s">headline</a></h2></article>`, h)
	}
	b.WriteString(`<aside><h2><a href="/not-an-article">sidebar</a></h2></aside>`)
	b.WriteString("</main></body></html>")
	return b.String()
}

func newTestCrawler(t *testing.T, f *fakeFetcher) *Crawler {
	t.Helper()
	c, err := NewCrawler(f, testBase+"/", testLogger())
	require.NoError(t, err)
	return c
}

func TestCrawler_PageURL(t *testing.T) {
	c := newTestCrawler(t, &fakeFetcher{})

	assert.Equal(t, testBase, c.PageURL(1))
	assert.Equal(t, testBase+"/page/2/", c.PageURL(2))
	assert.Equal(t, testBase+"/page/80/", c.PageURL(80))
}

func TestCrawler_CollectURLs_StopsAtTarget(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		testBase:             listingPage("/2025/01/01/a/", "/2025/01/01/b/", "https://electrek.test/2025/01/01/c/"),
		testBase + "/page/2/": listingPage("/2025/01/02/d/", "/2025/01/02/e/", "/2025/01/02/f/"),
		testBase + "/page/3/": listingPage("/2025/01/03/g/"),
	}}
	c := newTestCrawler(t, f)

	urls := c.CollectURLs(context.Background(), 5, 10, 0)

	assert.Equal(t, []string{
		testBase + "/2025/01/01/a/",
		testBase + "/2025/01/01/b/",
		testBase + "/2025/01/01/c/",
		testBase + "/2025/01/02/d/",
		testBase + "/2025/01/02/e/",
	}, urls)
	assert.Equal(t, []string{testBase, testBase + "/page/2/"}, f.requested)
}

func TestCrawler_CollectURLs_BoundedByPages(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		testBase:             listingPage("/a/", "/b/"),
		testBase + "/page/2/": listingPage("/c/"),
		testBase + "/page/3/": listingPage("/d/"),
	}}
	c := newTestCrawler(t, f)

	urls := c.CollectURLs(context.Background(), 100, 2, 0)

	assert.Len(t, urls, 3)
	assert.Len(t, f.requested, 2)
}

func TestCrawler_CollectURLs_SkipsFailedPages(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		testBase:             listingPage("/a/"),
		testBase + "/page/3/": listingPage("/c/", "/a/"),
	}}
	c := newTestCrawler(t, f)

	urls := c.CollectURLs(context.Background(), 10, 3, 0)

	// No cross-page dedup.
	assert.Equal(t, []string{testBase + "/a/", testBase + "/c/", testBase + "/a/"}, urls)
	assert.Len(t, f.requested, 3)
}

func TestCrawler_CollectURLs_EmptyListing(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{testBase: "<html><body>nothing</body></html>"}}
	c := newTestCrawler(t, f)

	urls := c.CollectURLs(context.Background(), 10, 1, 0)

	assert.Empty(t, urls)
}

func TestCrawler_CollectURLs_CancelledContext(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		testBase:             listingPage("/a/"),
		testBase + "/page/2/": listingPage("/b/"),
	}}
	c := newTestCrawler(t, f)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	urls := c.CollectURLs(ctx, 10, 5, time.Hour)

	assert.Empty(t, urls)
	assert.Len(t, f.requested, 1)
}

func newTestExtractor(f *fakeFetcher, now time.Time) *Extractor {
	e := NewExtractor(f, config.ScrapeConfig{}, time.UTC, testLogger())
	e.now = func() time.Time { return now }
	return e
}

const articlePage = `<html><body>
<header><h1 class="site">Electrek</h1></header>
<h1 class="h1">Tesla launches a new Model Y trim</h1>
<div class="byline"><span class="author-name">Fred Lambert</span></div>
<div class="meta"><span>Oct 14 2025 - 10:34 am PT</span></div>
<a id="single-comments-link" href="#comments">127 Comments</a>
</body></html>`

func TestExtractor_Parse(t *testing.T) {
	url := testBase + "/2025/10/14/model-y/"
	f := &fakeFetcher{pages: map[string]string{url: articlePage}}
	e := newTestExtractor(f, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	a := e.Parse(context.Background(), url)

	assert.Equal(t, "Tesla launches a new Model Y trim", a.Title)
	assert.Equal(t, url, a.URL)
	assert.Equal(t, "Fred Lambert", a.Author)
	assert.Equal(t, time.Date(2025, 10, 14, 10, 34, 0, 0, time.UTC), a.PublishedAt)
	assert.False(t, a.DateIsApproximate)
	require.NotNil(t, a.CommentCount)
	assert.Equal(t, 127, *a.CommentCount)
	assert.Nil(t, a.SentimentScore)
}

func TestExtractor_Parse_Fallbacks(t *testing.T) {
	url := testBase + "/bare/"
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := &fakeFetcher{pages: map[string]string{url: `<html><body>
<h1>Plain heading</h1>
<p class="author-name"> Jo Borrás </p>
<p>Posted sometime recently</p>
<a id="single-comments-link">Comments</a>
</body></html>`}}
	e := newTestExtractor(f, now)

	a := e.Parse(context.Background(), url)

	assert.Equal(t, "Plain heading", a.Title)
	assert.Equal(t, "Jo Borrás", a.Author)
	assert.Equal(t, now, a.PublishedAt)
	assert.True(t, a.DateIsApproximate)
	require.NotNil(t, a.CommentCount)
	assert.Equal(t, 0, *a.CommentCount)
}

func TestExtractor_Parse_MissingElements(t *testing.T) {
	url := testBase + "/empty/"
	f := &fakeFetcher{pages: map[string]string{url: "<html><body><p>nothing here</p></body></html>"}}
	e := newTestExtractor(f, time.Now())

	a := e.Parse(context.Background(), url)

	assert.Equal(t, domain.NoTitle, a.Title)
	assert.Equal(t, domain.UnknownAuthor, a.Author)
	assert.True(t, a.DateIsApproximate)
	assert.Equal(t, 0, *a.CommentCount)
}

func TestExtractor_Parse_LongMonthAndUppercaseMeridiem(t *testing.T) {
	url := testBase + "/long/"
	f := &fakeFetcher{pages: map[string]string{url: `<html><body><h1>T</h1><time>September 3 2024 - 9:05 PM</time></body></html>`}}
	e := newTestExtractor(f, time.Now())

	a := e.Parse(context.Background(), url)

	assert.Equal(t, time.Date(2024, 9, 3, 21, 5, 0, 0, time.UTC), a.PublishedAt)
	assert.False(t, a.DateIsApproximate)
}

func TestExtractor_Parse_FetchFailureSentinel(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := newTestExtractor(&fakeFetcher{}, now)

	a := e.Parse(context.Background(), testBase+"/gone/")

	assert.True(t, strings.HasPrefix(a.Title, "Error: "))
	assert.True(t, strings.HasSuffix(a.Title, "..."))
	assert.LessOrEqual(t, len([]rune(a.Title)), len("Error: ")+errorTitleChars+len("..."))
	assert.Equal(t, "Unknown", a.Author)
	assert.Equal(t, now, a.PublishedAt)
	assert.True(t, a.DateIsApproximate)
	assert.Equal(t, 0, *a.CommentCount)
}

func TestExtractor_SentinelShortMessage(t *testing.T) {
	e := newTestExtractor(&fakeFetcher{}, time.Now())

	a := e.sentinel("u", errors.New("boom"))

	assert.Equal(t, "Error: boom...", a.Title)
}
