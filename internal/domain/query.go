package domain

import "time"

// ScoreFilter narrows a query by the presence of a sentiment score.
type ScoreFilter int

const (
	ScoreAny ScoreFilter = iota
	ScoreOnly
	ScoreMissing
)

// ArticleQuery describes a single page read from the article store.
type ArticleQuery struct {
	Since      *time.Time
	URL        string
	Scored     ScoreFilter
	OrderBy    string
	Descending bool
	Offset     uint64
	Limit      uint64
}

// Window is a trailing range in months; zero means all time.
type Window int

const daysPerMonth = 30

// Since returns the inclusive lower bound on published_at, or nil for all time.
func (w Window) Since(now time.Time) *time.Time {
	if w <= 0 {
		return nil
	}
	since := now.AddDate(0, 0, -daysPerMonth*int(w))
	return &since
}

// Months returns the window size, zero for all time.
func (w Window) Months() int {
	if w < 0 {
		return 0
	}
	return int(w)
}

func (w Window) AllTime() bool {
	return w <= 0
}
