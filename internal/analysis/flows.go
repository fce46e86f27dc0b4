package analysis

import (
	"fmt"
	"strings"

	"basegraph.app/blueprint/internal/lexicon"
	"basegraph.app/blueprint/internal/model"
)

const (
	dataTransfer = "data_transfer"
	businessRule = "business_rule"
)

// ExtractDataFlows matches the flow phrasings against the original text.
func ExtractDataFlows(text string) []model.DataFlow {
	flows := make([]model.DataFlow, 0)
	for _, re := range dataFlowPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			flows = append(flows, model.DataFlow{
				Source:  m[1],
				Target:  m[2],
				Type:    dataTransfer,
				Context: m[0],
			})
		}
	}
	return flows
}

// ExtractBusinessRules captures condition/action pairs. Patterns with a
// single group leave the action empty.
func ExtractBusinessRules(text string) []model.BusinessRule {
	rules := make([]model.BusinessRule, 0)
	for _, re := range rulePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			condition := strings.TrimSpace(m[1])
			action := ""
			if len(m) > 2 {
				action = strings.TrimSpace(m[2])
			}
			rules = append(rules, model.BusinessRule{
				Condition:      condition,
				Action:         action,
				Type:           businessRule,
				Implementation: ruleImplementation(action),
			})
		}
	}
	return rules
}

func ruleImplementation(action string) string {
	lower := strings.ToLower(action)
	for _, impl := range lexicon.RuleImplementations {
		if ContainsAny(lower, impl.Variants) {
			return impl.Key
		}
	}
	return lexicon.DefaultRuleImplementation
}

func ExtractIntegrationPoints(text string) []model.IntegrationPoint {
	lower := strings.ToLower(text)

	points := make([]model.IntegrationPoint, 0)
	for _, p := range integrationPatterns {
		if !p.re.Match(lower) {
			continue
		}
		points = append(points, model.IntegrationPoint{
			Type:        p.def.Type,
			Description: fmt.Sprintf("Integration with %s systems", p.def.Type),
			Complexity:  model.ComplexityLevel(p.def.Complexity),
			Approach:    p.def.Approach,
		})
	}
	return points
}
