package analysis

import (
	"fmt"
	"slices"
	"strings"

	"basegraph.app/blueprint/common"
	"basegraph.app/blueprint/internal/lexicon"
	"basegraph.app/blueprint/internal/model"
)

// IdentifyProcesses lists business processes with a confidence that grows
// by 0.2 per keyword hit from a 0.5 base, capped at 1.0.
func IdentifyProcesses(text string) []model.Process {
	lower := strings.ToLower(text)

	processes := make([]model.Process, 0)
	for _, p := range processPatterns {
		hits := len(p.re.FindAll(lower))
		if hits == 0 {
			continue
		}
		processes = append(processes, model.Process{
			Type:               p.key,
			Name:               common.Humanize(p.key),
			Confidence:         min(lexicon.ProcessBaseConfidence+lexicon.ProcessMatchConfidence*float64(hits), lexicon.ProcessMaxConfidence),
			SuggestedWorkflows: SuggestedWorkflows(p.key),
		})
	}
	return processes
}

func SuggestedWorkflows(processType string) []string {
	return slices.Clone(lexicon.Lookup(lexicon.ProcessWorkflows, processType, lexicon.DefaultProcessWorkflows))
}

// InferRelationships walks the rule table in order and emits a relationship
// for each rule whose two types are both present. Rules are directional and
// the reverse pair is never inferred.
func InferRelationships(entityTypes []string) []model.Relationship {
	relationships := make([]model.Relationship, 0)
	for _, rule := range lexicon.Relationships {
		if !slices.Contains(entityTypes, rule.From) || !slices.Contains(entityTypes, rule.To) {
			continue
		}
		card := model.Cardinality(rule.Cardinality)
		link := rule.From
		if !strings.HasPrefix(rule.Cardinality, "OneTo") {
			link = rule.From + "_id"
		}
		relationships = append(relationships, model.Relationship{
			FromEntity:         rule.From,
			ToEntity:           rule.To,
			Cardinality:        card,
			SuggestedLinkField: link,
			Description:        fmt.Sprintf("%s %s relationship with %s", common.Title(rule.From), card.Label(), common.Title(rule.To)),
		})
	}
	return relationships
}

// DetectTechnicalRequirements lists the capability classes the text asks for.
func DetectTechnicalRequirements(text string) []model.TechnicalRequirement {
	lower := strings.ToLower(text)

	reqs := make([]model.TechnicalRequirement, 0)
	for _, p := range technicalPatterns {
		if !p.re.Match(lower) {
			continue
		}
		priority := model.PriorityMedium
		if lexicon.HighPriorityCapabilities[p.key] {
			priority = model.PriorityHigh
		}
		reqs = append(reqs, model.TechnicalRequirement{
			Type:        p.key,
			Required:    true,
			Priority:    priority,
			Description: common.Title(p.key) + " capabilities needed",
		})
	}
	return reqs
}

// ClassifyIndustry picks the FIRST industry in table order with any keyword
// substring in the text, not the one with the most hits. Text without any
// keyword is "general".
func ClassifyIndustry(text string) model.IndustryClassification {
	lower := strings.ToLower(text)

	industry := lexicon.DefaultIndustry
	matched := make([]string, 0)
	for _, ind := range lexicon.Industries {
		if hits := keywordsIn([]string{lower}, ind.Variants); len(hits) > 0 {
			industry = ind.Key
			matched = hits
			break
		}
	}

	return model.IndustryClassification{
		Industry:           industry,
		MatchedKeywords:    matched,
		Patterns:           slices.Clone(lexicon.Lookup(lexicon.IndustryPatterns, industry, lexicon.DefaultIndustryPatterns)),
		RecommendedModules: RecommendModules(lower, industry),
		BestPractices:      slices.Clone(lexicon.Lookup(lexicon.IndustryBestPractices, industry, lexicon.DefaultBestPractices)),
	}
}

// RecommendModules combines the base modules, the industry's modules and
// keyword-driven extras, first occurrence wins.
func RecommendModules(text, industry string) []string {
	lower := strings.ToLower(text)
	modules := appendUnique(nil, lexicon.BaseModules...)
	modules = appendUnique(modules, lexicon.IndustryModules[industry]...)
	for _, km := range lexicon.KeywordModules {
		if ContainsAny(lower, km.Variants) {
			modules = appendUnique(modules, km.Key)
		}
	}
	return modules
}

// AssessComplexity scores a requirement from its entity and process counts,
// its length and the strongest complexity indicator it mentions.
func AssessComplexity(text string, entityCount, processCount int) model.ComplexityAssessment {
	lower := strings.ToLower(text)
	words := WordCount(text)

	indicators := make([]model.ComplexityLevel, 0)
	for _, ind := range lexicon.ComplexityIndicators {
		if strings.Contains(lower, ind.Keyword) {
			indicators = append(indicators, model.ComplexityLevel(ind.Level))
		}
	}

	score := min(entityCount*lexicon.EntityScoreWeight, lexicon.EntityScoreCap) +
		min(processCount*lexicon.ProcessScoreWeight, lexicon.ProcessScoreCap) +
		min(words, lexicon.WordScoreCap)
	switch {
	case slices.Contains(indicators, model.ComplexityHigh):
		score += lexicon.HighIndicatorBonus
	case slices.Contains(indicators, model.ComplexityMedium):
		score += lexicon.MediumIndicatorBonus
	}

	level := ComplexityLevelFor(score)
	return model.ComplexityAssessment{
		Score: score,
		Level: level,
		Factors: model.ComplexityFactors{
			EntityCount:       entityCount,
			ProcessCount:      processCount,
			DescriptionLength: words,
			Indicators:        indicators,
		},
		EstimatedEffort:     lexicon.Lookup(lexicon.EstimatedEffort, string(level), lexicon.DefaultEstimatedEffort),
		RecommendedApproach: lexicon.Lookup(lexicon.RecommendedApproach, string(level), lexicon.DefaultRecommendedApproach),
	}
}

func ComplexityLevelFor(score int) model.ComplexityLevel {
	switch {
	case score >= lexicon.HighComplexityAt:
		return model.ComplexityHigh
	case score >= lexicon.MediumComplexityAt:
		return model.ComplexityMedium
	default:
		return model.ComplexityLow
	}
}
