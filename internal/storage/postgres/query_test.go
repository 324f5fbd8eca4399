package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_analytics/internal/domain"
)

func TestApplyFilters(t *testing.T) {
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		query    domain.ArticleQuery
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no filters",
			query:   domain.ArticleQuery{},
			wantSQL: "SELECT COUNT(*) FROM articles",
		},
		{
			name:     "window and scored",
			query:    domain.ArticleQuery{Since: &since, Scored: domain.ScoreOnly},
			wantSQL:  "SELECT COUNT(*) FROM articles WHERE published_at >= $1 AND sentiment_score IS NOT NULL",
			wantArgs: []any{since},
		},
		{
			name:     "url and missing score",
			query:    domain.ArticleQuery{URL: "https://electrek.co/a/", Scored: domain.ScoreMissing},
			wantSQL:  "SELECT COUNT(*) FROM articles WHERE url = $1 AND sentiment_score IS NULL",
			wantArgs: []any{"https://electrek.co/a/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := applyFilters(psql.Select("COUNT(*)").From("articles"), tt.query).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestOrderClause(t *testing.T) {
	order, err := orderClause(domain.ArticleQuery{})
	require.NoError(t, err)
	assert.Equal(t, "id ASC", order)

	order, err = orderClause(domain.ArticleQuery{OrderBy: "comment_count", Descending: true})
	require.NoError(t, err)
	assert.Equal(t, "comment_count DESC NULLS LAST, id ASC", order)

	order, err = orderClause(domain.ArticleQuery{OrderBy: "published_at"})
	require.NoError(t, err)
	assert.Equal(t, "published_at ASC, id ASC", order)

	_, err = orderClause(domain.ArticleQuery{OrderBy: "title; DROP TABLE articles"})
	assert.ErrorIs(t, err, ErrUnsupportedOrder)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: uniqueViolation}))
	assert.True(t, isUniqueViolation(errors.New("ERROR: duplicate key value violates unique constraint")))
	assert.True(t, isUniqueViolation(errors.New("row already exists")))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503", Message: "foreign key"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}
