package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"news_analytics/internal/domain"
)

var ErrUnsupportedOrder = errors.New("unsupported order column")

var ErrArticleNotFound = errors.New("article not found")

var articleColumns = []string{
	"id", "title", "url", "author", "published_at", "date_is_approximate",
	"comment_count", "sentiment_score", "created_at",
}

var orderColumns = map[string]bool{
	"id":              true,
	"published_at":    true,
	"comment_count":   true,
	"sentiment_score": true,
	"created_at":      true,
}

type articleRow struct {
	ID                int64           `db:"id"`
	Title             string          `db:"title"`
	URL               string          `db:"url"`
	Author            string          `db:"author"`
	PublishedAt       time.Time       `db:"published_at"`
	DateIsApproximate bool            `db:"date_is_approximate"`
	CommentCount      sql.NullInt64   `db:"comment_count"`
	SentimentScore    sql.NullFloat64 `db:"sentiment_score"`
	CreatedAt         time.Time       `db:"created_at"`
}

func (r articleRow) toDomain() domain.Article {
	a := domain.Article{
		ID:                r.ID,
		Title:             r.Title,
		URL:               r.URL,
		Author:            r.Author,
		PublishedAt:       r.PublishedAt,
		DateIsApproximate: r.DateIsApproximate,
		CreatedAt:         r.CreatedAt,
	}
	if r.CommentCount.Valid {
		n := int(r.CommentCount.Int64)
		a.CommentCount = &n
	}
	if r.SentimentScore.Valid {
		s := r.SentimentScore.Float64
		a.SentimentScore = &s
	}
	return a
}

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func (s *ArticleStore) ExistsByURL(ctx context.Context, url string) (bool, error) {
	query, args, err := psql.Select("1").
		Prefix("SELECT EXISTS(").
		From("articles").
		Where(sq.Eq{"url": url}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var exists bool
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists, query, args...); err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return exists, nil
}

// LockURL serializes inserts of the same URL for the rest of the current
// transaction. Outside a transaction the lock is released immediately.
func (s *ArticleStore) LockURL(ctx context.Context, url string) error {
	query, args, err := psql.Select().
		Column(sq.Expr("pg_advisory_xact_lock(hashtext(?))", url)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build lock query: %w", err)
	}

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("lock url: %w", err)
	}
	return nil
}

// Insert stores a new article and fills in its ID and CreatedAt.
func (s *ArticleStore) Insert(ctx context.Context, article *domain.Article) (int64, error) {
	var commentCount any
	if article.CommentCount != nil {
		commentCount = *article.CommentCount
	}
	var sentiment any
	if article.SentimentScore != nil {
		sentiment = *article.SentimentScore
	}

	query, args, err := psql.Insert("articles").
		Columns("title", "url", "author", "published_at", "date_is_approximate", "comment_count", "sentiment_score").
		Values(article.Title, article.URL, article.Author, article.PublishedAt, article.DateIsApproximate, commentCount, sentiment).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	row := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&article.ID, &article.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert %s: %w", article.URL, domain.ErrDuplicateArticle)
		}
		return 0, fmt.Errorf("insert article: %w", err)
	}

	return article.ID, nil
}

func (s *ArticleStore) UpdateSentiment(ctx context.Context, id int64, score float64) error {
	query, args, err := psql.Update("articles").
		Set("sentiment_score", score).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update sentiment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update sentiment %d: %w", id, ErrArticleNotFound)
	}
	return nil
}

// ListArticles returns one page of articles matching q.
func (s *ArticleStore) ListArticles(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error) {
	builder := applyFilters(psql.Select(articleColumns...).From("articles"), q)

	order, err := orderClause(q)
	if err != nil {
		return nil, err
	}
	builder = builder.OrderBy(order)
	if q.Limit > 0 {
		builder = builder.Limit(q.Limit)
	}
	if q.Offset > 0 {
		builder = builder.Offset(q.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []articleRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make([]domain.Article, 0, len(rows))
	for _, r := range rows {
		articles = append(articles, r.toDomain())
	}
	return articles, nil
}

// Count ignores ordering and paging fields of q.
func (s *ArticleStore) Count(ctx context.Context, q domain.ArticleQuery) (int, error) {
	query, args, err := applyFilters(psql.Select("COUNT(*)").From("articles"), q).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &n, query, args...); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

func applyFilters(b sq.SelectBuilder, q domain.ArticleQuery) sq.SelectBuilder {
	if q.Since != nil {
		b = b.Where(sq.GtOrEq{"published_at": *q.Since})
	}
	if q.URL != "" {
		b = b.Where(sq.Eq{"url": q.URL})
	}
	switch q.Scored {
	case domain.ScoreOnly:
		b = b.Where(sq.NotEq{"sentiment_score": nil})
	case domain.ScoreMissing:
		b = b.Where(sq.Eq{"sentiment_score": nil})
	}
	return b
}

func orderClause(q domain.ArticleQuery) (string, error) {
	column := q.OrderBy
	if column == "" {
		column = "id"
	}
	if !orderColumns[column] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOrder, column)
	}

	switch {
	case column == "id" && q.Descending:
		return "id DESC", nil
	case column == "id":
		return "id ASC", nil
	case q.Descending:
		return column + " DESC NULLS LAST, id ASC", nil
	default:
		return column + " ASC, id ASC", nil
	}
}
