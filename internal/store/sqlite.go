package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"

	"basegraph.app/blueprint/internal/model"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS requirement_contexts (
		id          TEXT PRIMARY KEY,
		requirement TEXT NOT NULL,
		industry    TEXT NOT NULL,
		complexity  TEXT NOT NULL,
		document    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS requirement_history (
		id                INTEGER PRIMARY KEY,
		context_id        TEXT,
		requirement       TEXT NOT NULL,
		processing_result TEXT NOT NULL,
		error             TEXT,
		created_at        TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS prd_documents (
		id           TEXT PRIMARY KEY,
		context_id   TEXT,
		project_name TEXT NOT NULL,
		status       TEXT NOT NULL,
		document     TEXT NOT NULL,
		created_at   TEXT NOT NULL
	);
`

// OpenSQLite opens (creating if needed) the database at path and applies
// the schema. ":memory:" is accepted for tests.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	sqlDB.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := sqlDB.ExecContext(ctx, p); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("pragma %q: %w", p, err)
		}
	}

	if _, err := sqlDB.ExecContext(ctx, sqliteSchema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("applying sqlite schema: %w", err)
	}
	return sqlDB, nil
}

// Fixed-width UTC timestamps so TEXT ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, s)
}

type sqliteContextStore struct {
	db *sql.DB
}

func (s *sqliteContextStore) Create(ctx context.Context, c *model.Context) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding context: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO requirement_contexts (id, requirement, industry, complexity, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		c.ID, c.OriginalRequirement, c.Industry.Industry, string(c.Complexity.Level), string(doc),
		formatTime(c.Timestamp), formatTime(c.Timestamp))
	if err != nil {
		return fmt.Errorf("inserting context: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (s *sqliteContextStore) GetByID(ctx context.Context, id string) (*model.Context, error) {
	return s.get(ctx, s.db, id)
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *sqliteContextStore) get(ctx context.Context, q rowQuerier, id string) (*model.Context, error) {
	var doc string
	err := q.QueryRowContext(ctx, `SELECT document FROM requirement_contexts WHERE id = ?`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("selecting context: %w", err)
	}
	return decodeContext([]byte(doc))
}

func (s *sqliteContextStore) MergeUserContext(ctx context.Context, id string, updates map[string]any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	c, err := s.get(ctx, tx, id)
	if err != nil {
		return err
	}
	maps.Copy(c.UserContext, updates)

	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding context: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE requirement_contexts SET document = ?, updated_at = ? WHERE id = ?`,
		string(doc), formatTime(time.Now()), id); err != nil {
		return fmt.Errorf("updating user context: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

type sqliteHistoryStore struct {
	db *sql.DB
}

func (s *sqliteHistoryStore) Append(ctx context.Context, e model.HistoryEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO requirement_history (id, context_id, requirement, processing_result, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, nullIfEmpty(e.ContextID), e.Requirement, string(e.ProcessingResult), nullIfEmpty(e.Error), formatTime(e.Timestamp))
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

func (s *sqliteHistoryStore) ListRecent(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, COALESCE(context_id, ''), requirement, processing_result, COALESCE(error, ''), created_at
		FROM (
		    SELECT * FROM requirement_history ORDER BY created_at DESC, id DESC LIMIT ?
		)
		ORDER BY created_at ASC, id ASC`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("selecting history: %w", err)
	}
	defer rows.Close()

	entries := make([]model.HistoryEntry, 0)
	for rows.Next() {
		var (
			e             model.HistoryEntry
			result, stamp string
		)
		if err := rows.Scan(&e.ID, &e.ContextID, &e.Requirement, &result, &e.Error, &stamp); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		if e.Timestamp, err = parseTime(stamp); err != nil {
			return nil, fmt.Errorf("parsing history timestamp: %w", err)
		}
		e.ProcessingResult = model.ProcessingStatus(result)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type sqlitePRDStore struct {
	db *sql.DB
}

func (s *sqlitePRDStore) Save(ctx context.Context, prd *model.PRD) error {
	doc, err := json.Marshal(prd)
	if err != nil {
		return fmt.Errorf("encoding prd: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO prd_documents (id, context_id, project_name, status, document, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		prd.ID, nullIfEmpty(prd.ContextID), prd.Metadata.ProjectName, string(prd.Status), string(doc), formatTime(prd.GeneratedAt))
	if err != nil {
		return fmt.Errorf("inserting prd: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (s *sqlitePRDStore) GetByID(ctx context.Context, id string) (*model.PRD, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM prd_documents WHERE id = ?`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("selecting prd: %w", err)
	}

	var prd model.PRD
	if err := json.Unmarshal([]byte(doc), &prd); err != nil {
		return nil, fmt.Errorf("decoding prd: %w", err)
	}
	return &prd, nil
}

func (s *sqlitePRDStore) List(ctx context.Context) ([]model.PRDListing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, COALESCE(context_id, ''), project_name, status, created_at
		FROM prd_documents
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing prds: %w", err)
	}
	defer rows.Close()

	listings := make([]model.PRDListing, 0)
	for rows.Next() {
		var (
			l             model.PRDListing
			status, stamp string
		)
		if err := rows.Scan(&l.PRDID, &l.ContextID, &l.ProjectName, &status, &stamp); err != nil {
			return nil, fmt.Errorf("scanning prd listing: %w", err)
		}
		if l.CreatedAt, err = parseTime(stamp); err != nil {
			return nil, fmt.Errorf("parsing prd timestamp: %w", err)
		}
		l.Status = model.PRDStatus(status)
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
