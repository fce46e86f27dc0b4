package analysis

import (
	"fmt"
	"slices"
	"strings"

	"basegraph.app/blueprint/internal/lexicon"
	"basegraph.app/blueprint/internal/model"
)

// ExtractActions reports every match of every action type. A verb listed
// under two types, or repeated in the text, yields one record per match.
func ExtractActions(text string) []model.ActionMatch {
	lower := strings.ToLower(text)

	actions := make([]model.ActionMatch, 0)
	for _, p := range actionPatterns {
		for _, loc := range p.re.FindAll(lower) {
			start, end := loc[0], loc[1]
			object := actionObject(text, end)
			actions = append(actions, model.ActionMatch{
				Type:            p.key,
				Verb:            lower[start:end],
				Object:          object,
				Position:        start,
				Context:         window(text, start, end, lexicon.ActionContextRadius),
				MappedOperation: MapOperation(p.key, object),
			})
		}
	}
	return actions
}

// MapOperation names the platform operation for an action on object.
func MapOperation(actionType, object string) string {
	tmpl := lexicon.Lookup(lexicon.OperationTemplates, actionType, actionType+" %s")
	return fmt.Sprintf(tmpl, object)
}

// actionObject looks at the next few words after end for a known business
// object.
func actionObject(text string, end int) string {
	if end >= len(text) {
		return lexicon.DefaultActionObject
	}
	words := strings.Fields(text[end:])
	if len(words) > lexicon.ActionObjectWindow {
		words = words[:lexicon.ActionObjectWindow]
	}
	for _, w := range words {
		clean := nonWord.ReplaceAllString(strings.ToLower(w), "")
		if slices.Contains(lexicon.BusinessObjects, clean) {
			return clean
		}
	}
	return lexicon.DefaultActionObject
}
