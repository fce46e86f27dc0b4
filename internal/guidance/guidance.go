// Package guidance holds ERPNext domain knowledge: per-industry patterns,
// DocType templates, business process templates and feasibility checks.
// Everything here is a pure lookup over static tables.
package guidance

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"basegraph.app/blueprint/common"
	"basegraph.app/blueprint/internal/lexicon"
	"basegraph.app/blueprint/internal/model"
)

// Industries lists the industries with dedicated guidance.
func Industries() []string {
	return slices.Sorted(maps.Keys(industryPatterns))
}

// IndustryGuidance returns the knowledge bundle for an industry. Unknown
// industries fall back to general. A non-empty requirement adds the key
// entities and processes of the industry it mentions.
func IndustryGuidance(industry, requirement string) model.IndustryGuidance {
	if _, ok := industryPatterns[industry]; !ok {
		industry = DefaultIndustry
	}
	patterns := industryPatterns[industry]

	g := model.IndustryGuidance{
		Industry:                 industry,
		Patterns:                 patterns,
		RecommendedModules:       recommendedModules[industry],
		CommonDocTypes:           commonDocTypes[industry],
		TypicalWorkflows:         typicalWorkflows[industry],
		BestPractices:            lexicon.Lookup(industryPractices, industry, defaultIndustryPractices),
		ComplianceConsiderations: lexicon.Lookup(compliance, industry, defaultCompliance),
		IntegrationPoints:        lexicon.Lookup(integrations, industry, defaultIntegrations),
	}

	if requirement != "" {
		lower := strings.ToLower(requirement)
		g.ContextualizedSuggestions = &model.ContextualizedSuggestions{
			RelevantEntities:  mentioned(lower, patterns.KeyEntities),
			RelevantProcesses: mentioned(lower, patterns.Processes),
		}
	}
	return g
}

func mentioned(lower string, keys []string) []string {
	out := []string{}
	for _, k := range keys {
		if strings.Contains(lower, k) {
			out = append(out, k)
		}
	}
	return out
}

// SuggestDocType proposes a DocType for an entity, adding a typed custom
// field for every known attribute.
func SuggestDocType(entity, industry string, attributes []string) model.DocTypeSuggestion {
	if industry == "" {
		industry = DefaultIndustry
	}

	base, ok := docTypeTemplates[entity]
	if !ok {
		base = defaultDocTypeTemplate()
	}

	return model.DocTypeSuggestion{
		DocTypeName:   DocTypeName(entity),
		BaseStructure: base,
		IndustryModifications: model.IndustryModifications{
			AdditionalFields:    orEmpty(industryFields[industry][entity]),
			ModifiedPermissions: []string{},
			IndustryWorkflows:   []string{},
		},
		CustomFields:  customFields(attributes),
		Relationships: orEmpty(entityLinks[entity]),
		Permissions:   lexicon.Lookup(entityPermissions, entity, defaultPermissions),
		Workflows:     orEmpty(entityWorkflows[entity]),
		ImplementationNotes: []string{
			fmt.Sprintf("Consider %s-specific requirements", industry),
			"Test thoroughly before deployment",
			"Plan for data migration if needed",
			"Train users on new processes",
		},
	}
}

func customFields(attributes []string) []model.CustomField {
	fields := []model.CustomField{}
	for _, attr := range attributes {
		fieldType, ok := fieldTypes[attr]
		if !ok {
			continue
		}
		fields = append(fields, model.CustomField{
			FieldName: attr,
			FieldType: fieldType,
			Label:     common.Humanize(attr),
			Required:  requiredFields[attr],
		})
	}
	return fields
}

// DocTypeName title-cases an entity key and drops one trailing "s".
func DocTypeName(entity string) string {
	name := common.Humanize(entity)
	if len(name) > 1 && strings.HasSuffix(name, "s") {
		name = name[:len(name)-1]
	}
	return name
}

// RecommendProcess returns the implementation template for a business
// process. Unknown process types come back as generic with empty lists.
func RecommendProcess(processType, industry string) model.ProcessRecommendation {
	if industry == "" {
		industry = DefaultIndustry
	}

	tmpl, ok := processes[processType]
	if !ok {
		processType = GenericProcess
	}

	rec := model.ProcessRecommendation{
		ProcessType:             processType,
		Industry:                industry,
		ProcessFlow:             orEmpty(tmpl.flow),
		RequiredDocTypes:        orEmpty(tmpl.docTypes),
		WorkflowStates:          orEmpty(tmpl.workflowStates),
		AutomationOpportunities: orEmpty(tmpl.automation),
		KeyMetrics:              orEmpty(tmpl.metrics),
		ComplianceCheckpoints:   []string{},
		AdditionalSteps:         []string{},
		IntegrationPoints:       []string{},
	}

	if custom, ok := processCustomizations[processType][industry]; ok {
		rec.ComplianceCheckpoints = custom.compliance
		rec.AdditionalSteps = custom.additionalSteps
	}
	return rec
}

// BestPractices returns the practices for a topic ("general" or
// "performance"). Unknown topics get the general set.
func BestPractices(topic string) model.BestPractices {
	return lexicon.Lookup(bestPractices, topic, bestPractices[DefaultIndustry])
}

// ValidateFeasibility sorts what a parsed requirement asks for into
// features the platform supports out of the box and ones that need custom
// work, then grades the result by the number of challenges.
func ValidateFeasibility(ex model.Extraction) model.Feasibility {
	f := model.Feasibility{
		OverallFeasibility:    model.ComplexityHigh,
		ConfidenceScore:       highFeasibilityConfidence,
		SupportedFeatures:     []string{},
		ChallengingFeatures:   []string{},
		AlternativeApproaches: []string{},
		EstimatedEffort:       string(model.ComplexityMedium),
		RiskFactors:           []string{},
	}

	classify := func(ok bool, supported, challenging string) {
		if ok {
			f.SupportedFeatures = append(f.SupportedFeatures, supported)
		} else {
			f.ChallengingFeatures = append(f.ChallengingFeatures, challenging)
		}
	}

	for _, e := range ex.Entities {
		classify(slices.Contains(standardEntities, e.Type),
			fmt.Sprintf("Standard %s management", e.Type),
			fmt.Sprintf("Custom %s entity", e.Type))
	}
	for _, a := range ex.Actions {
		classify(slices.Contains(standardActions, a.Type),
			common.Title(a.Type)+" operations",
			fmt.Sprintf("Complex %s operation", a.Type))
	}
	for _, c := range ex.Constraints {
		classify(slices.Contains(standardConstraints, c.Type),
			common.Title(c.Type)+" implementation",
			fmt.Sprintf("Complex %s constraint", c.Type))
	}
	for _, i := range ex.IntegrationPoints {
		classify(slices.Contains(standardIntegrations, i.Type),
			common.Title(i.Type)+" integration",
			fmt.Sprintf("Complex %s integration", i.Type))
	}

	switch n := len(f.ChallengingFeatures); {
	case n > lowChallengeThreshold:
		f.OverallFeasibility = model.ComplexityLow
		f.ConfidenceScore = lowFeasibilityConfidence
	case n > mediumChallengeThreshold:
		f.OverallFeasibility = model.ComplexityMedium
		f.ConfidenceScore = mediumFeasibilityConfidence
	}
	return f
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
