package store

import (
	"context"
	"fmt"
	"log/slog"

	"basegraph.app/blueprint/core/config"
	"basegraph.app/blueprint/core/db"
)

// Open builds the stores for the configured backend. The returned close
// function releases the underlying connection and is never nil.
func Open(ctx context.Context, cfg config.Config) (*Stores, func(), error) {
	switch cfg.Store.Backend {
	case config.StorePostgres:
		database, err := db.New(ctx, cfg.DB)
		if err != nil {
			return nil, func() {}, fmt.Errorf("connecting to postgres: %w", err)
		}
		slog.InfoContext(ctx, "store backend ready", "backend", cfg.Store.Backend)
		return NewPostgresStores(database.Querier()), database.Close, nil

	case config.StoreSQLite:
		sqlDB, err := OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, func() {}, err
		}
		slog.InfoContext(ctx, "store backend ready", "backend", cfg.Store.Backend, "path", cfg.SQLite.Path)
		return NewSQLiteStores(sqlDB), func() { _ = sqlDB.Close() }, nil

	case config.StoreMemory:
		slog.InfoContext(ctx, "store backend ready", "backend", cfg.Store.Backend)
		return NewMemoryStores(cfg.Store.HistoryLimit, cfg.Store.PRDLimit), func() {}, nil
	}

	return nil, func() {}, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
