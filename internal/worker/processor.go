package worker

import (
	"context"
	"errors"
	"fmt"

	"basegraph.app/blueprint/internal/model"
	"basegraph.app/blueprint/internal/service"
)

// ErrPermanent marks failures that a retry cannot fix.
var ErrPermanent = errors.New("permanent job failure")

// Generator mirrors the document generation part of service.PRDService.
type Generator interface {
	Generate(ctx context.Context, contextID string, includeGuidance bool) (model.GenerateResult, error)
}

type generationProcessor struct {
	generator Generator
}

func NewGenerationProcessor(generator Generator) JobProcessor {
	return &generationProcessor{generator: generator}
}

func (p *generationProcessor) Process(ctx context.Context, job model.GenerationJob) (string, error) {
	result, err := p.generator.Generate(ctx, job.ContextID, job.IncludeGuidance)
	if err != nil {
		if errors.Is(err, service.ErrContextNotFound) {
			return "", fmt.Errorf("%w: %w", ErrPermanent, err)
		}
		return "", fmt.Errorf("generating prd for context %s: %w", job.ContextID, err)
	}

	// Assembly is deterministic, so a failed result would fail again.
	if !result.Success {
		return "", fmt.Errorf("%w: assembling prd for context %s: %s", ErrPermanent, job.ContextID, result.Error)
	}

	return result.PRDID, nil
}
