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
	insertPRD = `
		INSERT INTO prd_documents (id, context_id, project_name, status, document, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	selectPRD = `SELECT document FROM prd_documents WHERE id = $1`

	listPRDs = `
		SELECT id, COALESCE(context_id, ''), project_name, status, created_at
		FROM prd_documents
		ORDER BY created_at DESC, id DESC`
)

type prdStore struct {
	q db.Querier
}

func newPRDStore(q db.Querier) PRDStore {
	return &prdStore{q: q}
}

func (s *prdStore) Save(ctx context.Context, prd *model.PRD) error {
	doc, err := json.Marshal(prd)
	if err != nil {
		return fmt.Errorf("encoding prd: %w", err)
	}

	tag, err := s.q.Exec(ctx, insertPRD,
		prd.ID, nullIfEmpty(prd.ContextID), prd.Metadata.ProjectName, string(prd.Status), doc, prd.GeneratedAt)
	if err != nil {
		return fmt.Errorf("inserting prd: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (s *prdStore) GetByID(ctx context.Context, id string) (*model.PRD, error) {
	var doc []byte
	if err := s.q.QueryRow(ctx, selectPRD, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("selecting prd: %w", err)
	}

	var prd model.PRD
	if err := json.Unmarshal(doc, &prd); err != nil {
		return nil, fmt.Errorf("decoding prd: %w", err)
	}
	return &prd, nil
}

func (s *prdStore) List(ctx context.Context) ([]model.PRDListing, error) {
	rows, err := s.q.Query(ctx, listPRDs)
	if err != nil {
		return nil, fmt.Errorf("listing prds: %w", err)
	}
	defer rows.Close()

	listings := make([]model.PRDListing, 0)
	for rows.Next() {
		var (
			l      model.PRDListing
			status string
		)
		if err := rows.Scan(&l.PRDID, &l.ContextID, &l.ProjectName, &status, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning prd listing: %w", err)
		}
		l.Status = model.PRDStatus(status)
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
