package analysis

import (
	"strings"

	"basegraph.app/blueprint/common"
	"basegraph.app/blueprint/internal/lexicon"
	"basegraph.app/blueprint/internal/model"
)

// ExtractConstraints checks each sentence against every constraint type. One
// sentence may produce several constraints.
func ExtractConstraints(sentences []string) []model.ConstraintMatch {
	constraints := make([]model.ConstraintMatch, 0)
	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, p := range constraintPatterns {
			if !p.re.Match(lower) {
				continue
			}
			constraints = append(constraints, model.ConstraintMatch{
				Type:               p.key,
				Description:        s,
				Severity:           ConstraintSeverity(s),
				ImplementationHint: lexicon.Lookup(lexicon.ConstraintHints, p.key, lexicon.DefaultConstraintHint),
			})
		}
	}
	return constraints
}

// ConstraintSeverity grades a sentence by its marker words alone.
func ConstraintSeverity(sentence string) model.Severity {
	lower := strings.ToLower(sentence)
	switch {
	case ContainsAny(lower, lexicon.HighSeverityWords):
		return model.SeverityHigh
	case ContainsAny(lower, lexicon.MediumSeverityWords):
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

// ExtractRoles emits each role type once if any of its variants appears.
// Permissions and responsibilities come only from sentences that contain the
// role key itself.
func ExtractRoles(text string, sentences []string) []model.RoleMatch {
	lower := strings.ToLower(text)

	roles := make([]model.RoleMatch, 0)
	for _, p := range rolePatterns {
		if !p.re.Match(lower) {
			continue
		}

		var scoped []string
		for _, s := range sentences {
			if sl := strings.ToLower(s); strings.Contains(sl, p.key) {
				scoped = append(scoped, sl)
			}
		}

		verbs := keywordsIn(scoped, lexicon.ResponsibilityVerbs)
		responsibilities := make([]string, 0, len(verbs))
		for _, v := range verbs {
			responsibilities = append(responsibilities, common.Title(v)+" related tasks")
		}

		roles = append(roles, model.RoleMatch{
			Key:              p.key,
			Name:             common.Title(p.key),
			Permissions:      keywordsIn(scoped, lexicon.PermissionKeywords),
			MappedRole:       lexicon.Lookup(lexicon.RoleMapping, p.key, lexicon.DefaultMappedRole),
			Responsibilities: responsibilities,
		})
	}
	return roles
}
