// Package analysis turns requirement text into structured findings by fixed
// vocabulary and regex matching. Every function here is pure and safe for
// concurrent use.
package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// Segment splits text into trimmed, non-empty sentences on runs of '.', '!'
// and '?'. Abbreviations and decimals split like any other boundary.
func Segment(text string) []string {
	parts := sentenceBreak.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ContainsAny reports whether any keyword occurs as a substring of s.
func ContainsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// keywordsIn returns the keywords that occur as substrings of any of texts,
// in keyword order.
func keywordsIn(texts []string, keywords []string) []string {
	found := make([]string, 0)
	for _, k := range keywords {
		for _, t := range texts {
			if strings.Contains(t, k) {
				found = append(found, k)
				break
			}
		}
	}
	return found
}

func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		seen := false
		for _, existing := range list {
			if existing == item {
				seen = true
				break
			}
		}
		if !seen {
			list = append(list, item)
		}
	}
	return list
}

// window returns text[start-radius:end+radius], clamped to the text and
// widened to rune boundaries.
func window(text string, start, end, radius int) string {
	from := max(0, min(start-radius, len(text)))
	to := min(len(text), max(end+radius, 0))
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}
	if from >= to {
		return ""
	}
	return strings.TrimSpace(text[from:to])
}
