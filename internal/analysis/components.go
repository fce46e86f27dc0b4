package analysis

import (
	"strings"

	"basegraph.app/blueprint/internal/lexicon"
	"basegraph.app/blueprint/internal/model"
)

// ExtractComponents buckets sentences. A sentence with a functional marker is
// listed as functional, and every sentence that is not a technical constraint
// is listed there as well, so a non-technical sentence with a marker appears
// twice.
func ExtractComponents(sentences []string) model.Components {
	c := model.Components{
		FunctionalRequirements:    make([]string, 0),
		NonFunctionalRequirements: make([]string, 0),
		UserStories:               make([]string, 0),
		BusinessObjectives:        make([]string, 0),
		TechnicalConstraints:      make([]string, 0),
	}

	for _, s := range sentences {
		lower := strings.ToLower(s)

		if ContainsAny(lower, lexicon.FunctionalMarkers) {
			c.FunctionalRequirements = append(c.FunctionalRequirements, s)
		}
		if strings.Contains(lower, lexicon.StoryPrefix) && ContainsAny(lower, lexicon.StoryWants) {
			c.UserStories = append(c.UserStories, s)
		}
		if ContainsAny(lower, lexicon.ObjectiveMarkers) {
			c.BusinessObjectives = append(c.BusinessObjectives, s)
		}
		if ContainsAny(lower, lexicon.TechnicalMarkers) {
			c.TechnicalConstraints = append(c.TechnicalConstraints, s)
		} else {
			c.FunctionalRequirements = append(c.FunctionalRequirements, s)
		}
	}
	return c
}

// Suggest maps the text and its entities onto platform building blocks.
func Suggest(text string, entities []model.EntityMatch) model.Suggestions {
	lower := strings.ToLower(text)
	s := model.Suggestions{
		Modules:        make([]string, 0),
		DocTypes:       make([]string, 0),
		Workflows:      make([]string, 0),
		Reports:        make([]string, 0),
		Customizations: make([]string, 0),
	}

	for _, m := range lexicon.ModuleKeywords {
		if ContainsAny(lower, m.Variants) {
			s.Modules = append(s.Modules, m.Key)
		}
	}
	for _, e := range entities {
		s.DocTypes = appendUnique(s.DocTypes, e.SuggestedDocType)
	}

	features := lexicon.FeatureSuggestions
	if ContainsAny(lower, features[0].Variants) {
		s.Workflows = append(s.Workflows, features[0].Key)
	}
	if ContainsAny(lower, features[1].Variants) {
		s.Reports = append(s.Reports, features[1].Key)
	}
	if ContainsAny(lower, features[2].Variants) {
		s.Customizations = append(s.Customizations, features[2].Key)
	}
	return s
}

func ScoreConfidence(entities, actions int) model.Confidence {
	return model.Confidence{
		Entities: min(entities*lexicon.EntityConfidenceStep, lexicon.ConfidenceCap),
		Actions:  min(actions*lexicon.ActionConfidenceStep, lexicon.ConfidenceCap),
		Overall:  min((entities+actions)*lexicon.OverallConfidenceStep, lexicon.ConfidenceCap),
	}
}

// ScoreImplementation weighs the extraction counts into a complexity tier.
func ScoreImplementation(f model.ImplementationFactors) model.ImplementationComplexity {
	score := f.Entities*lexicon.EntityComplexityWeight +
		f.Actions*lexicon.ActionComplexityWeight +
		f.Constraints*lexicon.ConstraintComplexityWeight +
		f.Integrations*lexicon.IntegrationComplexityWeight

	level := model.ComplexityLow
	switch {
	case score >= lexicon.HighComplexityScore:
		level = model.ComplexityHigh
	case score >= lexicon.MediumComplexityScore:
		level = model.ComplexityMedium
	}
	return model.ImplementationComplexity{Level: level, Score: score, Factors: f}
}
