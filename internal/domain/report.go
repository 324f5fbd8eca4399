package domain

import "time"

// Statistics are dataset-wide totals for a window.
type Statistics struct {
	TotalArticles int      `json:"total_articles"`
	TotalComments int      `json:"total_comments"`
	AvgComments   float64  `json:"avg_comments"`
	MaxComments   int      `json:"max_comments"`
	MaxArticle    *Article `json:"max_article,omitempty"`
}

// BucketKind separates measured month buckets from synthesized ones.
type BucketKind string

const (
	BucketMeasured    BucketKind = "measured"
	BucketPlaceholder BucketKind = "placeholder"
)

type MonthBucket struct {
	Month        time.Time  `json:"month"`
	ArticleCount int        `json:"article_count"`
	AvgComments  int        `json:"avg_comments"`
	Kind         BucketKind `json:"kind"`
}

// Label formats the bucket month for charts, e.g. "Mar 2025".
func (b MonthBucket) Label() string {
	return b.Month.Format("Jan 2006")
}

type TopArticle struct {
	Article       Article       `json:"article"`
	MentionsTesla bool          `json:"mentions_tesla"`
	MentionsMusk  bool          `json:"mentions_musk"`
	Sentiment     SentimentBand `json:"sentiment"`
}

type AuthorBias struct {
	Author            string  `json:"author"`
	TotalArticles     int     `json:"total_articles"`
	TeslaArticles     int     `json:"tesla_articles"`
	TeslaPercentage   float64 `json:"tesla_percentage"`
	AvgTeslaSentiment float64 `json:"avg_tesla_sentiment"`
	AvgOtherSentiment float64 `json:"avg_other_sentiment"`
	AvgTeslaComments  float64 `json:"avg_tesla_comments"`
	AvgOtherComments  float64 `json:"avg_other_comments"`
}

type CompanyStats struct {
	Company            string  `json:"company"`
	ArticleCount       int     `json:"article_count"`
	TotalComments      int     `json:"total_comments"`
	AvgComments        float64 `json:"avg_comments"`
	AvgSentiment       float64 `json:"avg_sentiment"`
	NegativeCount      int     `json:"negative_count"`
	NegativePercentage float64 `json:"negative_percentage"`
}

// BusinessImpact compares the Tesla cohort against every other scored article.
type BusinessImpact struct {
	TeslaArticles       int     `json:"tesla_articles"`
	OtherArticles       int     `json:"other_articles"`
	TeslaAvgComments    float64 `json:"tesla_avg_comments"`
	OtherAvgComments    float64 `json:"other_avg_comments"`
	CommentMultiplier   float64 `json:"comment_multiplier"`
	NegativeTeslaAvg    float64 `json:"negative_tesla_avg_comments"`
	NegativeMultiplier  float64 `json:"negative_multiplier"`
	TeslaNegativePct    float64 `json:"tesla_negative_pct"`
	OtherNegativePct    float64 `json:"other_negative_pct"`
	SentimentBiasPoints float64 `json:"sentiment_bias_points"`
	TeslaCommentShare   float64 `json:"tesla_comment_share"`
	TotalComments       int     `json:"total_comments"`
}

type SentimentPoint struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	SentimentScore float64   `json:"sentiment_score"`
	CommentCount   int       `json:"comment_count"`
	PublishedAt    time.Time `json:"published_at"`
	Category       string    `json:"sentiment_category"`
}

// Report bundles every aggregate shown for one window.
type Report struct {
	Window         Window           `json:"months"`
	GeneratedAt    time.Time        `json:"generated_at"`
	Statistics     Statistics       `json:"statistics"`
	Monthly        []MonthBucket    `json:"monthly"`
	TopArticles    []TopArticle     `json:"top_articles"`
	AuthorBias     []AuthorBias     `json:"author_bias"`
	Companies      []CompanyStats   `json:"companies"`
	BusinessImpact *BusinessImpact  `json:"business_impact,omitempty"`
	SentimentData  []SentimentPoint `json:"sentiment_data"`
	Correlation    *float64         `json:"correlation,omitempty"`
}
