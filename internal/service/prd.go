package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"basegraph.app/blueprint/common/id"
	"basegraph.app/blueprint/common/logger"
	"basegraph.app/blueprint/internal/aggregator"
	"basegraph.app/blueprint/internal/export"
	"basegraph.app/blueprint/internal/guidance"
	"basegraph.app/blueprint/internal/model"
	"basegraph.app/blueprint/internal/prd"
	"basegraph.app/blueprint/internal/queue"
	"basegraph.app/blueprint/internal/store"
)

var (
	ErrPRDNotFound      = errors.New("prd not found")
	ErrJobNotFound      = errors.New("job not found")
	ErrQueueUnavailable = errors.New("async generation not configured")
)

type PRDService interface {
	// Generate assembles and stores a document for a stored context.
	// An unsuccessful assembly is returned as a result, not an error.
	Generate(ctx context.Context, contextID string, includeGuidance bool) (model.GenerateResult, error)
	Enqueue(ctx context.Context, contextID string, includeGuidance bool) (*model.GenerationJob, error)
	Job(ctx context.Context, jobID int64) (*model.GenerationJob, error)
	Get(ctx context.Context, prdID string) (*model.PRD, error)
	Summary(ctx context.Context, prdID string) (*model.PRDSummary, error)
	List(ctx context.Context) ([]model.PRDListing, error)
	Export(ctx context.Context, prdID string, w io.Writer) error
}

type prdService struct {
	aggregator *aggregator.Aggregator
	assembler  *prd.Assembler
	prds       store.PRDStore
	producer   queue.Producer
	statuses   queue.JobStatusStore
	now        func() time.Time
}

// NewPRDService builds the document service. producer and statuses may be nil,
// in which case only synchronous generation is available.
func NewPRDService(agg *aggregator.Aggregator, assembler *prd.Assembler, prds store.PRDStore, producer queue.Producer, statuses queue.JobStatusStore) PRDService {
	return &prdService{
		aggregator: agg,
		assembler:  assembler,
		prds:       prds,
		producer:   producer,
		statuses:   statuses,
		now:        time.Now,
	}
}

func (s *prdService) Generate(ctx context.Context, contextID string, includeGuidance bool) (model.GenerateResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ContextID: &contextID,
		Component: "blueprint.prd",
	})

	sc := logger.StartSpan(ctx, "prd.generate")
	defer sc.End()
	ctx = sc.Context()

	c, err := s.context(ctx, contextID)
	if err != nil {
		sc.RecordError(err)
		return model.GenerateResult{}, err
	}

	var g *model.IndustryGuidance
	if includeGuidance {
		bundle := guidance.IndustryGuidance(c.Industry.Industry, c.OriginalRequirement)
		g = &bundle
	}

	result := s.assembler.Generate(c, g, c.Parsed())
	if !result.Success {
		slog.ErrorContext(ctx, "failed to assemble prd", "error", result.Error)
		return result, nil
	}

	if err := s.prds.Save(ctx, result.PRD); err != nil {
		sc.RecordError(err)
		return model.GenerateResult{}, fmt.Errorf("saving prd: %w", err)
	}

	slog.InfoContext(ctx, "prd generated",
		"prd_id", result.PRDID,
		"user_stories", len(result.PRD.UserStories),
		"total_weeks", result.PRD.TimelineEstimate.TotalWeeks)

	return result, nil
}

func (s *prdService) Enqueue(ctx context.Context, contextID string, includeGuidance bool) (*model.GenerationJob, error) {
	if s.producer == nil {
		return nil, ErrQueueUnavailable
	}
	if _, err := s.context(ctx, contextID); err != nil {
		return nil, err
	}

	job := model.GenerationJob{
		ID:              id.New(),
		ContextID:       contextID,
		IncludeGuidance: includeGuidance,
		Status:          model.JobStatusQueued,
		Attempt:         1,
		RequestedAt:     s.now().UTC(),
	}
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		job.TraceID = sc.TraceID().String()
	}

	if s.statuses != nil {
		if err := s.statuses.Put(ctx, job); err != nil {
			return nil, fmt.Errorf("recording job: %w", err)
		}
	}
	if err := s.producer.Enqueue(ctx, job); err != nil {
		return nil, fmt.Errorf("enqueueing job: %w", err)
	}

	return &job, nil
}

func (s *prdService) Job(ctx context.Context, jobID int64) (*model.GenerationJob, error) {
	if s.statuses == nil {
		return nil, ErrQueueUnavailable
	}

	job, err := s.statuses.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, queue.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *prdService) Get(ctx context.Context, prdID string) (*model.PRD, error) {
	doc, err := s.prds.GetByID(ctx, prdID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPRDNotFound
		}
		return nil, fmt.Errorf("fetching prd: %w", err)
	}
	return doc, nil
}

func (s *prdService) Summary(ctx context.Context, prdID string) (*model.PRDSummary, error) {
	doc, err := s.Get(ctx, prdID)
	if err != nil {
		return nil, err
	}
	summary := prd.Summary(doc)
	return &summary, nil
}

func (s *prdService) List(ctx context.Context) ([]model.PRDListing, error) {
	listings, err := s.prds.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing prds: %w", err)
	}
	return listings, nil
}

func (s *prdService) Export(ctx context.Context, prdID string, w io.Writer) error {
	doc, err := s.Get(ctx, prdID)
	if err != nil {
		return err
	}
	return export.Write(w, doc)
}

func (s *prdService) context(ctx context.Context, contextID string) (*model.Context, error) {
	c, err := s.aggregator.Get(ctx, contextID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrContextNotFound
		}
		return nil, err
	}
	return c, nil
}
