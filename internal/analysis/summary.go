package analysis

import (
	"slices"
	"strings"

	"basegraph.app/blueprint/internal/lexicon"
	"basegraph.app/blueprint/internal/model"
)

// Summarize builds the lexical overview of a requirement. Verbs and terms
// must match whole whitespace-separated words, so "customers." is not
// "customer".
func Summarize(text string) model.TextSummary {
	sentences := Segment(text)
	words := strings.Fields(strings.ToLower(text))

	phrases := make([]string, 0)
	for i, w := range words {
		if i > 0 && slices.Contains(lexicon.KeyPhraseTerms, w) {
			phrases = append(phrases, words[i-1]+" "+w)
		}
	}

	return model.TextSummary{
		Sentences:     sentences,
		KeyPhrases:    phrases,
		ActionVerbs:   wordsIn(words, lexicon.ActionVerbs),
		BusinessTerms: wordsIn(words, lexicon.BusinessTerms),
		WordCount:     len(words),
		SentenceCount: len(sentences),
	}
}

func wordsIn(words, vocabulary []string) []string {
	found := make([]string, 0)
	for _, v := range vocabulary {
		if slices.Contains(words, v) {
			found = append(found, v)
		}
	}
	return found
}
