package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"news_analytics/internal/domain"
)

type ScrapeStateStore struct {
	db *sqlx.DB
}

func NewScrapeStateStore(db *sqlx.DB) *ScrapeStateStore {
	return &ScrapeStateStore{db: db}
}

// Get returns the stored state, or an empty state for a source never scraped.
func (s *ScrapeStateStore) Get(ctx context.Context, sourceID string) (*domain.ScrapeState, error) {
	query, args, err := psql.
		Select("id", "source_id", "last_scraped_at", "last_run_added", "total_ingested").
		From("scrape_state").
		Where(sq.Eq{"source_id": sourceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scrape state query: %w", err)
	}

	var state domain.ScrapeState
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.ScrapeState{SourceID: sourceID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get scrape state: %w", err)
	}
	return &state, nil
}

func (s *ScrapeStateStore) Update(ctx context.Context, state *domain.ScrapeState) error {
	query, args, err := psql.Insert("scrape_state").
		Columns("source_id", "last_scraped_at", "last_run_added", "total_ingested").
		Values(state.SourceID, state.LastScrapedAt, state.LastRunAdded, state.TotalIngested).
		Suffix(`ON CONFLICT (source_id) DO UPDATE SET
			last_scraped_at = EXCLUDED.last_scraped_at,
			last_run_added = EXCLUDED.last_run_added,
			total_ingested = EXCLUDED.total_ingested`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build scrape state upsert: %w", err)
	}

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update scrape state: %w", err)
	}
	return nil
}
