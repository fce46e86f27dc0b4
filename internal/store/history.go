package store

import (
	"context"
	"fmt"

	"basegraph.app/blueprint/core/db"
	"basegraph.app/blueprint/internal/model"
)

const (
	insertHistory = `
		INSERT INTO requirement_history (id, context_id, requirement, processing_result, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	selectRecentHistory = `
		SELECT id, COALESCE(context_id, ''), requirement, processing_result, COALESCE(error, ''), created_at
		FROM (
		    SELECT * FROM requirement_history ORDER BY created_at DESC, id DESC LIMIT $1
		) recent
		ORDER BY created_at ASC, id ASC`
)

type historyStore struct {
	q db.Querier
}

func newHistoryStore(q db.Querier) HistoryStore {
	return &historyStore{q: q}
}

func (s *historyStore) Append(ctx context.Context, e model.HistoryEntry) error {
	_, err := s.q.Exec(ctx, insertHistory,
		e.ID, nullIfEmpty(e.ContextID), e.Requirement, string(e.ProcessingResult), nullIfEmpty(e.Error), e.Timestamp)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

func (s *historyStore) ListRecent(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	rows, err := s.q.Query(ctx, selectRecentHistory, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("selecting history: %w", err)
	}
	defer rows.Close()

	entries := make([]model.HistoryEntry, 0)
	for rows.Next() {
		var (
			e      model.HistoryEntry
			result string
		)
		if err := rows.Scan(&e.ID, &e.ContextID, &e.Requirement, &result, &e.Error, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.ProcessingResult = model.ProcessingStatus(result)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// clampLimit maps "no limit" onto a large finite bound for LIMIT clauses.
func clampLimit(limit int) int {
	if limit <= 0 {
		return 1 << 30
	}
	return limit
}
