package store

import (
	"context"
	"errors"

	"basegraph.app/blueprint/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when an insert collides with an existing id
var ErrAlreadyExists = errors.New("already exists")

// ContextStore defines the contract for requirement context access.
// Contexts are never deleted.
type ContextStore interface {
	Create(ctx context.Context, c *model.Context) error
	GetByID(ctx context.Context, id string) (*model.Context, error)
	// MergeUserContext merges updates into the context's caller annotations.
	// Analysis fields are never touched.
	MergeUserContext(ctx context.Context, id string, updates map[string]any) error
}

// HistoryStore defines the contract for the processing history log
type HistoryStore interface {
	Append(ctx context.Context, entry model.HistoryEntry) error
	// ListRecent returns up to limit of the newest entries, oldest first.
	ListRecent(ctx context.Context, limit int) ([]model.HistoryEntry, error)
}

// PRDStore defines the contract for generated document access
type PRDStore interface {
	Save(ctx context.Context, prd *model.PRD) error
	GetByID(ctx context.Context, id string) (*model.PRD, error)
	// List returns listings newest first.
	List(ctx context.Context) ([]model.PRDListing, error)
}

func listingOf(p *model.PRD) model.PRDListing {
	return model.PRDListing{
		PRDID:       p.ID,
		ContextID:   p.ContextID,
		ProjectName: p.Metadata.ProjectName,
		CreatedAt:   p.GeneratedAt,
		Status:      p.Status,
	}
}
