package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"basegraph.app/blueprint/common/logger"
	"basegraph.app/blueprint/internal/aggregator"
	"basegraph.app/blueprint/internal/analysis"
	"basegraph.app/blueprint/internal/intake"
	"basegraph.app/blueprint/internal/model"
	"basegraph.app/blueprint/internal/store"
)

var (
	ErrContextNotFound     = errors.New("context not found")
	ErrIssueSourceDisabled = errors.New("issue source not configured")
)

type RequirementService interface {
	Parse(ctx context.Context, text string) model.ParseResult
	Process(ctx context.Context, requirement string, userContext map[string]any) model.ProcessResult
	// ProcessDocument extracts the requirement text from an uploaded file
	// before processing it. Intake failures are returned as errors.
	ProcessDocument(ctx context.Context, filename string, data []byte, userContext map[string]any) (model.ProcessResult, error)
	ProcessIssue(ctx context.Context, project string, issueIID int64, userContext map[string]any) (model.ProcessResult, error)
	// ProcessIssueText processes an issue already in hand, e.g. from a webhook.
	ProcessIssueText(ctx context.Context, project string, issueIID int64, title, description string, userContext map[string]any) (model.ProcessResult, error)
	Context(ctx context.Context, contextID string) (*model.Context, error)
	UpdateContext(ctx context.Context, contextID string, updates map[string]any) error
	History(ctx context.Context, limit int) ([]model.HistoryEntry, error)
}

type requirementService struct {
	parser     *analysis.Parser
	aggregator *aggregator.Aggregator
	graph      GraphSink
	issues     intake.IssueSource
}

// NewRequirementService wires the analysis core. graph and issues may be nil.
func NewRequirementService(agg *aggregator.Aggregator, graph GraphSink, issues intake.IssueSource) RequirementService {
	return &requirementService{
		parser:     analysis.NewParser(),
		aggregator: agg,
		graph:      graph,
		issues:     issues,
	}
}

func (s *requirementService) Parse(ctx context.Context, text string) model.ParseResult {
	result := s.parser.Parse(text)
	if !result.Success {
		slog.WarnContext(ctx, "requirement parse failed", "error", result.Error)
	}
	return result
}

func (s *requirementService) Process(ctx context.Context, requirement string, userContext map[string]any) model.ProcessResult {
	result := s.aggregator.Process(ctx, requirement, userContext)
	if result.Success && s.graph != nil {
		s.graph.Record(ctx, result.Context)
	}
	return result
}

func (s *requirementService) ProcessDocument(ctx context.Context, filename string, data []byte, userContext map[string]any) (model.ProcessResult, error) {
	source := string(intakeSource(filename))
	ctx = logger.WithLogFields(ctx, logger.LogFields{Source: &source})

	text, err := intake.Extract(filename, data)
	if err != nil {
		return model.ProcessResult{}, fmt.Errorf("reading %s: %w", filename, err)
	}

	slog.InfoContext(ctx, "document text extracted", "filename", filename, "chars", len(text))
	return s.Process(ctx, text, withSource(userContext, source, filename)), nil
}

func (s *requirementService) ProcessIssue(ctx context.Context, project string, issueIID int64, userContext map[string]any) (model.ProcessResult, error) {
	if s.issues == nil {
		return model.ProcessResult{}, ErrIssueSourceDisabled
	}

	source := "gitlab"
	ctx = logger.WithLogFields(ctx, logger.LogFields{Source: &source})

	text, err := s.issues.Requirement(ctx, project, issueIID)
	if err != nil {
		return model.ProcessResult{}, err
	}

	ref := fmt.Sprintf("%s#%d", project, issueIID)
	return s.Process(ctx, text, withSource(userContext, source, ref)), nil
}

func (s *requirementService) ProcessIssueText(ctx context.Context, project string, issueIID int64, title, description string, userContext map[string]any) (model.ProcessResult, error) {
	source := "gitlab"
	ctx = logger.WithLogFields(ctx, logger.LogFields{Source: &source})

	text, err := intake.IssueText(title, description)
	if err != nil {
		return model.ProcessResult{}, err
	}

	ref := fmt.Sprintf("%s#%d", project, issueIID)
	return s.Process(ctx, text, withSource(userContext, source, ref)), nil
}

func (s *requirementService) Context(ctx context.Context, contextID string) (*model.Context, error) {
	c, err := s.aggregator.Get(ctx, contextID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrContextNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *requirementService) UpdateContext(ctx context.Context, contextID string, updates map[string]any) error {
	ok, err := s.aggregator.Update(ctx, contextID, updates)
	if err != nil {
		return err
	}
	if !ok {
		return ErrContextNotFound
	}
	return nil
}

func (s *requirementService) History(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	return s.aggregator.History(ctx, limit)
}

func intakeSource(filename string) intake.Format {
	format, err := intake.FormatOf(filename)
	if err != nil {
		return "unknown"
	}
	return format
}

// withSource notes where the requirement came from without overwriting a
// caller-provided value.
func withSource(userContext map[string]any, source, ref string) map[string]any {
	out := make(map[string]any, len(userContext)+2)
	out["source"] = source
	out["source_ref"] = ref
	for k, v := range userContext {
		out[k] = v
	}
	return out
}
