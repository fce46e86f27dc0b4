package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"basegraph.app/blueprint/core/db"
	"basegraph.app/blueprint/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	insertContext = `
		INSERT INTO requirement_contexts (id, requirement, industry, complexity, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (id) DO NOTHING`

	selectContext = `SELECT document FROM requirement_contexts WHERE id = $1`

	// Non-object user_context values are replaced rather than concatenated.
	mergeUserContext = `
		UPDATE requirement_contexts
		SET document = jsonb_set(
		        document,
		        '{user_context}',
		        (CASE jsonb_typeof(document->'user_context')
		            WHEN 'object' THEN document->'user_context'
		            ELSE '{}'::jsonb END) || $2::jsonb),
		    updated_at = now()
		WHERE id = $1`
)

type contextStore struct {
	q db.Querier
}

func newContextStore(q db.Querier) ContextStore {
	return &contextStore{q: q}
}

func (s *contextStore) Create(ctx context.Context, c *model.Context) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding context: %w", err)
	}

	tag, err := s.q.Exec(ctx, insertContext,
		c.ID, c.OriginalRequirement, c.Industry.Industry, string(c.Complexity.Level), doc, c.Timestamp)
	if err != nil {
		return fmt.Errorf("inserting context: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (s *contextStore) GetByID(ctx context.Context, id string) (*model.Context, error) {
	var doc []byte
	if err := s.q.QueryRow(ctx, selectContext, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("selecting context: %w", err)
	}
	return decodeContext(doc)
}

func (s *contextStore) MergeUserContext(ctx context.Context, id string, updates map[string]any) error {
	patch, err := json.Marshal(updates)
	if err != nil {
		return fmt.Errorf("encoding user context: %w", err)
	}

	tag, err := s.q.Exec(ctx, mergeUserContext, id, patch)
	if err != nil {
		return fmt.Errorf("updating user context: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func decodeContext(doc []byte) (*model.Context, error) {
	var c model.Context
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, fmt.Errorf("decoding context: %w", err)
	}
	if c.UserContext == nil {
		c.UserContext = map[string]any{}
	}
	return &c, nil
}
