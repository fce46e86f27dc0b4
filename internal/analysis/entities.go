package analysis

import (
	"cmp"
	"slices"
	"strings"

	"basegraph.app/blueprint/common"
	"basegraph.app/blueprint/internal/lexicon"
	"basegraph.app/blueprint/internal/model"
)

// ExtractEntities finds every entity type with at least one match in text and
// returns them by descending priority. Equal priorities keep table order.
//
// Context attributes are scanned over the whole text and granted to every
// entity, so a single mention of "email" marks them all.
func ExtractEntities(text string) []model.EntityMatch {
	lower := strings.ToLower(text)
	attrs := contextAttributes(lower)

	entities := make([]model.EntityMatch, 0)
	for _, p := range entityPatterns {
		matches := p.re.FindAll(lower)
		if len(matches) == 0 {
			continue
		}

		var variants []string
		for _, m := range matches {
			variants = appendUnique(variants, lower[m[2]:m[3]])
		}

		entities = append(entities, model.EntityMatch{
			Type:               p.def.Type,
			DisplayName:        common.Title(p.def.Type),
			Occurrences:        len(matches),
			MatchedVariants:    variants,
			ContextAttributes:  slices.Clone(attrs),
			StandardAttributes: slices.Clone(p.def.StandardAttributes),
			SuggestedDocType:   p.def.DocType,
			Priority:           EntityPriority(p.def.Type, len(matches), len(attrs)),
		})
	}

	slices.SortStableFunc(entities, func(a, b model.EntityMatch) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	return entities
}

// EntityPriority is base(type) + 5*occurrences + 3*attributes. Unknown types
// get the default base.
func EntityPriority(entityType string, occurrences, attributes int) int {
	base := lexicon.Lookup(lexicon.EntityBasePriority, entityType, lexicon.DefaultEntityPriority)
	return base + lexicon.OccurrenceWeight*occurrences + lexicon.AttributeWeight*attributes
}

func contextAttributes(lower string) []string {
	attrs := make([]string, 0)
	for _, a := range lexicon.AttributeKeywords {
		if ContainsAny(lower, a.Variants) {
			attrs = append(attrs, a.Key)
		}
	}
	return attrs
}
