package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"basegraph.app/blueprint/internal/model"
	"github.com/redis/go-redis/v9"
)

const prdCachePrefix = "blueprint:prd:"

// cachedPRDStore reads through Redis. The cache is best effort: Redis
// failures are logged and served from the backing store.
type cachedPRDStore struct {
	next   PRDStore
	client *redis.Client
	ttl    time.Duration
}

func newCachedPRDStore(next PRDStore, client *redis.Client, ttl time.Duration) PRDStore {
	return &cachedPRDStore{next: next, client: client, ttl: ttl}
}

func (s *cachedPRDStore) Save(ctx context.Context, prd *model.PRD) error {
	if err := s.next.Save(ctx, prd); err != nil {
		return err
	}
	s.put(ctx, prd)
	return nil
}

func (s *cachedPRDStore) GetByID(ctx context.Context, id string) (*model.PRD, error) {
	raw, err := s.client.Get(ctx, prdCachePrefix+id).Bytes()
	switch {
	case err == nil:
		var prd model.PRD
		if jsonErr := json.Unmarshal(raw, &prd); jsonErr == nil {
			return &prd, nil
		}
		slog.WarnContext(ctx, "discarding undecodable cached prd", "prd_id", id)
	case !errors.Is(err, redis.Nil):
		slog.WarnContext(ctx, "prd cache read failed", "error", err, "prd_id", id)
	}

	prd, err := s.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.put(ctx, prd)
	return prd, nil
}

func (s *cachedPRDStore) List(ctx context.Context) ([]model.PRDListing, error) {
	return s.next.List(ctx)
}

func (s *cachedPRDStore) put(ctx context.Context, prd *model.PRD) {
	raw, err := json.Marshal(prd)
	if err != nil {
		slog.WarnContext(ctx, "failed to encode prd for cache", "error", err, "prd_id", prd.ID)
		return
	}
	if err := s.client.Set(ctx, prdCachePrefix+prd.ID, raw, s.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "prd cache write failed", "error", err, "prd_id", prd.ID)
	}
}
