package domain

import (
	"errors"
	"time"
)

const (
	UnknownAuthor = "Unknown author"
	NoTitle       = "No title found"
)

// Article is the persisted metadata of a single scraped article.
type Article struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Author string `json:"author"`
	// PublishedAt falls back to the capture time when the page carries no
	// parseable date; DateIsApproximate records that case.
	PublishedAt       time.Time `json:"published_at"`
	DateIsApproximate bool      `json:"date_is_approximate"`
	CommentCount      *int      `json:"comment_count"`
	SentimentScore    *float64  `json:"sentiment_score"`
	CreatedAt         time.Time `json:"created_at"`
}

// Comments returns the comment count and whether it is known.
func (a Article) Comments() (int, bool) {
	if a.CommentCount == nil {
		return 0, false
	}
	return *a.CommentCount, true
}

// Scored reports whether a sentiment score has been written.
func (a Article) Scored() bool {
	return a.SentimentScore != nil
}

type ScrapeState struct {
	ID            int64     `db:"id"`
	SourceID      string    `db:"source_id"`
	LastScrapedAt time.Time `db:"last_scraped_at"`
	LastRunAdded  int64     `db:"last_run_added"`
	TotalIngested int64     `db:"total_ingested"`
}

// Event actions published for downstream consumers.
const (
	ActionIngested = "article.ingested"
	ActionScored   = "article.scored"
)

type ArticleEvent struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Article   Article   `json:"article"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrDuplicateArticle is returned by stores when an article with the same URL
// already exists.
var ErrDuplicateArticle = errors.New("article already exists")
