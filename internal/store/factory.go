package store

import (
	"database/sql"
	"time"

	"basegraph.app/blueprint/core/db"
	"github.com/redis/go-redis/v9"
)

// Stores bundles the repositories for one backend.
type Stores struct {
	contexts ContextStore
	history  HistoryStore
	prds     PRDStore
}

// NewMemoryStores keeps everything in process. History and documents are
// bounded by the given limits; zero means unbounded.
func NewMemoryStores(historyLimit, prdLimit int) *Stores {
	return &Stores{
		contexts: newMemoryContextStore(),
		history:  newMemoryHistoryStore(historyLimit),
		prds:     newMemoryPRDStore(prdLimit),
	}
}

func NewPostgresStores(q db.Querier) *Stores {
	return &Stores{
		contexts: newContextStore(q),
		history:  newHistoryStore(q),
		prds:     newPRDStore(q),
	}
}

// NewSQLiteStores expects a database opened with OpenSQLite.
func NewSQLiteStores(sqlDB *sql.DB) *Stores {
	return &Stores{
		contexts: &sqliteContextStore{db: sqlDB},
		history:  &sqliteHistoryStore{db: sqlDB},
		prds:     &sqlitePRDStore{db: sqlDB},
	}
}

// WithPRDCache fronts the document store with a Redis read-through cache.
func (s *Stores) WithPRDCache(client *redis.Client, ttl time.Duration) *Stores {
	s.prds = newCachedPRDStore(s.prds, client, ttl)
	return s
}

func (s *Stores) Contexts() ContextStore {
	return s.contexts
}

func (s *Stores) History() HistoryStore {
	return s.history
}

func (s *Stores) PRDs() PRDStore {
	return s.prds
}
