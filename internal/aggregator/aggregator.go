// Package aggregator turns a requirement into a stored Context and keeps the
// processing history.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"basegraph.app/blueprint/common/id"
	"basegraph.app/blueprint/common/logger"
	"basegraph.app/blueprint/internal/analysis"
	"basegraph.app/blueprint/internal/lexicon"
	"basegraph.app/blueprint/internal/model"
	"basegraph.app/blueprint/internal/store"
)

// maxIDAttempts bounds how often a colliding context id is regenerated.
const maxIDAttempts = 3

type Aggregator struct {
	parser    *analysis.Parser
	contexts  store.ContextStore
	history   store.HistoryStore
	now       func() time.Time
	newID     func() string
	historyID func() int64
}

type Option func(*Aggregator)

func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// WithIDSource replaces the context id generator.
func WithIDSource(next func() string) Option {
	return func(a *Aggregator) { a.newID = next }
}

// WithHistoryIDSource replaces the history entry id generator.
func WithHistoryIDSource(next func() int64) Option {
	return func(a *Aggregator) { a.historyID = next }
}

func New(contexts store.ContextStore, history store.HistoryStore, opts ...Option) *Aggregator {
	a := &Aggregator{
		contexts:  contexts,
		history:   history,
		now:       time.Now,
		newID:     id.Short,
		historyID: id.New,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.parser = analysis.NewParser().WithClock(a.now)
	return a
}

// Process analyzes a requirement and stores the resulting Context. It never
// returns an error: failures come back as an unsuccessful result carrying a
// fallback summary, and are recorded in history as failed.
func (a *Aggregator) Process(ctx context.Context, requirement string, userContext map[string]any) model.ProcessResult {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "blueprint.aggregator"})

	c, err := a.build(requirement, userContext)
	if err == nil {
		err = a.store(ctx, c)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to process requirement",
			"error", err,
			"requirement", logger.Truncate(requirement, 120))
		a.record(ctx, model.HistoryEntry{
			Requirement:      requirement,
			ProcessingResult: model.ProcessingFailed,
			Error:            err.Error(),
		})
		return model.ProcessResult{
			Success:        false,
			Error:          err.Error(),
			PartialContext: Fallback(requirement),
		}
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{ContextID: &c.ID})
	a.record(ctx, model.HistoryEntry{
		ContextID:        c.ID,
		Requirement:      requirement,
		ProcessingResult: model.ProcessingSuccess,
	})

	slog.InfoContext(ctx, "requirement processed",
		"entities", len(c.Entities),
		"industry", c.Industry.Industry,
		"complexity", c.Complexity.Level)

	return model.ProcessResult{Success: true, ContextID: c.ID, Context: c}
}

func (a *Aggregator) build(requirement string, userContext map[string]any) (c *model.Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("analyzing requirement: %v", r)
		}
	}()

	ex, err := a.parser.Extract(requirement)
	if err != nil {
		return nil, fmt.Errorf("analyzing requirement: %w", err)
	}

	types := make([]string, 0, len(ex.Entities))
	for _, e := range ex.Entities {
		types = append(types, e.Type)
	}
	processes := analysis.IdentifyProcesses(requirement)

	annotations := maps.Clone(userContext)
	if annotations == nil {
		annotations = map[string]any{}
	}

	return &model.Context{
		Timestamp:             a.now(),
		OriginalRequirement:   requirement,
		Summary:               analysis.Summarize(requirement),
		Processes:             processes,
		Relationships:         analysis.InferRelationships(types),
		TechnicalRequirements: analysis.DetectTechnicalRequirements(requirement),
		Industry:              analysis.ClassifyIndustry(requirement),
		Complexity:            analysis.AssessComplexity(requirement, len(ex.Entities), len(processes)),
		UserContext:           annotations,
		Extraction:            ex,
	}, nil
}

// store assigns a fresh id and retries on collision.
func (a *Aggregator) store(ctx context.Context, c *model.Context) error {
	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		c.ID = a.newID()
		err := a.contexts.Create(ctx, c)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Errorf("storing context: %w", err)
		}
		slog.WarnContext(ctx, "context id collision, regenerating", "context_id", c.ID, "attempt", attempt)
	}
	return fmt.Errorf("storing context: no free id after %d attempts", maxIDAttempts)
}

// record appends to history. A history failure, panics included, never
// fails the request.
func (a *Aggregator) record(ctx context.Context, entry model.HistoryEntry) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered while appending requirement history", "panic", r)
		}
	}()

	entry.ID = a.historyID()
	entry.Timestamp = a.now()
	if err := a.history.Append(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to append requirement history", "error", err)
	}
}

// Get returns a stored context, or store.ErrNotFound.
func (a *Aggregator) Get(ctx context.Context, contextID string) (*model.Context, error) {
	c, err := a.contexts.GetByID(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("getting context %s: %w", contextID, err)
	}
	return c, nil
}

// Update merges caller annotations into a stored context and reports
// whether the context existed.
func (a *Aggregator) Update(ctx context.Context, contextID string, updates map[string]any) (bool, error) {
	err := a.contexts.MergeUserContext(ctx, contextID, updates)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("updating context %s: %w", contextID, err)
	}
	return true, nil
}

// History returns up to limit of the most recent entries, oldest first.
// A non-positive limit returns everything retained.
func (a *Aggregator) History(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	entries, err := a.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return entries, nil
}

// Fallback is the degraded record returned when analysis fails.
func Fallback(requirement string) *model.FallbackContext {
	return &model.FallbackContext{
		OriginalRequirement: requirement,
		ProcessingStatus:    model.ProcessingPartial,
		BasicAnalysis: model.BasicAnalysis{
			WordCount:             analysis.WordCount(requirement),
			ContainsBusinessTerms: analysis.ContainsAny(strings.ToLower(requirement), lexicon.FallbackBusinessTerms),
		},
	}
}
