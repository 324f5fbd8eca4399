// Package electrek crawls the electrek.co listing pages and extracts article
// metadata from individual article pages.
package electrek

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"news_analytics/internal/fetcher"
)

// Fetcher retrieves a page body. *fetcher.HTTPFetcher satisfies it.
type Fetcher interface {
	Get(ctx context.Context, rawURL string) (*fetcher.Response, error)
}

func fetchDocument(ctx context.Context, f Fetcher, pageURL string) (*goquery.Document, error) {
	resp, err := f.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}
