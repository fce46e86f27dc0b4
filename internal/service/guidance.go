package service

import (
	"context"
	"fmt"

	"basegraph.app/blueprint/internal/analysis"
	"basegraph.app/blueprint/internal/guidance"
	"basegraph.app/blueprint/internal/model"
)

type GuidanceService interface {
	Industries() []string
	Industry(industry, requirement string) model.IndustryGuidance
	DocType(entity, industry string, attributes []string) model.DocTypeSuggestion
	Process(processType, industry string) model.ProcessRecommendation
	BestPractices(topic string) model.BestPractices
	Feasibility(ctx context.Context, requirement string) (model.Feasibility, error)
}

type guidanceService struct {
	parser *analysis.Parser
}

func NewGuidanceService() GuidanceService {
	return &guidanceService{parser: analysis.NewParser()}
}

func (s *guidanceService) Industries() []string {
	return guidance.Industries()
}

func (s *guidanceService) Industry(industry, requirement string) model.IndustryGuidance {
	return guidance.IndustryGuidance(industry, requirement)
}

func (s *guidanceService) DocType(entity, industry string, attributes []string) model.DocTypeSuggestion {
	return guidance.SuggestDocType(entity, industry, attributes)
}

func (s *guidanceService) Process(processType, industry string) model.ProcessRecommendation {
	return guidance.RecommendProcess(processType, industry)
}

func (s *guidanceService) BestPractices(topic string) model.BestPractices {
	return guidance.BestPractices(topic)
}

// Feasibility parses the requirement and rates how well it fits the platform.
func (s *guidanceService) Feasibility(_ context.Context, requirement string) (model.Feasibility, error) {
	ex, err := s.parser.Extract(requirement)
	if err != nil {
		return model.Feasibility{}, fmt.Errorf("parsing requirement: %w", err)
	}
	return guidance.ValidateFeasibility(ex), nil
}
