package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"basegraph.app/blueprint/internal/model"
)

type memoryContextStore struct {
	mu       sync.RWMutex
	contexts map[string]*model.Context
}

func newMemoryContextStore() ContextStore {
	return &memoryContextStore{contexts: make(map[string]*model.Context)}
}

func (s *memoryContextStore) Create(_ context.Context, c *model.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contexts[c.ID]; ok {
		return ErrAlreadyExists
	}
	s.contexts[c.ID] = cloneContext(c)
	return nil
}

func (s *memoryContextStore) GetByID(_ context.Context, id string) (*model.Context, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contexts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneContext(c), nil
}

func (s *memoryContextStore) MergeUserContext(_ context.Context, id string, updates map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contexts[id]
	if !ok {
		return ErrNotFound
	}
	if c.UserContext == nil {
		c.UserContext = make(map[string]any, len(updates))
	}
	maps.Copy(c.UserContext, updates)
	return nil
}

// cloneContext copies the mutable annotation map. Analysis slices are
// never written after creation and stay shared.
func cloneContext(c *model.Context) *model.Context {
	out := *c
	out.UserContext = maps.Clone(c.UserContext)
	if out.UserContext == nil {
		out.UserContext = map[string]any{}
	}
	return &out
}

// memoryHistoryStore keeps the newest limit entries.
type memoryHistoryStore struct {
	mu      sync.Mutex
	limit   int
	entries []model.HistoryEntry
}

func newMemoryHistoryStore(limit int) HistoryStore {
	return &memoryHistoryStore{limit: limit}
}

func (s *memoryHistoryStore) Append(_ context.Context, entry model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if s.limit > 0 && len(s.entries) > s.limit {
		s.entries = slices.Clone(s.entries[len(s.entries)-s.limit:])
	}
	return nil
}

func (s *memoryHistoryStore) ListRecent(_ context.Context, limit int) ([]model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := 0
	if limit > 0 && len(s.entries) > limit {
		start = len(s.entries) - limit
	}
	out := make([]model.HistoryEntry, len(s.entries)-start)
	copy(out, s.entries[start:])
	return out, nil
}

// memoryPRDStore evicts the oldest document once limit is exceeded.
type memoryPRDStore struct {
	mu    sync.RWMutex
	limit int
	order []string
	prds  map[string]*model.PRD
}

func newMemoryPRDStore(limit int) PRDStore {
	return &memoryPRDStore{limit: limit, prds: make(map[string]*model.PRD)}
}

func (s *memoryPRDStore) Save(_ context.Context, prd *model.PRD) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prds[prd.ID]; ok {
		return ErrAlreadyExists
	}
	s.prds[prd.ID] = prd
	s.order = append(s.order, prd.ID)

	for s.limit > 0 && len(s.order) > s.limit {
		delete(s.prds, s.order[0])
		s.order = s.order[1:]
	}
	return nil
}

func (s *memoryPRDStore) GetByID(_ context.Context, id string) (*model.PRD, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prd, ok := s.prds[id]
	if !ok {
		return nil, ErrNotFound
	}
	return prd, nil
}

func (s *memoryPRDStore) List(_ context.Context) ([]model.PRDListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := make([]model.PRDListing, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		listings = append(listings, listingOf(s.prds[s.order[i]]))
	}
	return listings, nil
}
