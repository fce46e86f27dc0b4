package analysis

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"basegraph.app/blueprint/internal/lexicon"
)

type keywordPattern struct {
	key string
	re  wordRegexp
}

type entityPattern struct {
	def lexicon.EntityDef
	re  wordRegexp
}

type integrationPattern struct {
	def lexicon.IntegrationDef
	re  wordRegexp
}

// wordRegexp matches whole words. RE2's \b only knows ASCII word characters,
// so a match touching a non-ASCII letter or digit ("écustomer") is dropped
// after matching.
type wordRegexp struct {
	re *regexp.Regexp
}

func wordPattern(alternatives string) wordRegexp {
	return wordRegexp{re: regexp.MustCompile(`(?i)\b` + alternatives + `\b`)}
}

// FindAll returns submatch indexes of every whole-word match.
func (w wordRegexp) FindAll(s string) [][]int {
	all := w.re.FindAllStringSubmatchIndex(s, -1)
	kept := make([][]int, 0, len(all))
	for _, loc := range all {
		before, _ := utf8.DecodeLastRuneInString(s[:loc[0]])
		after, _ := utf8.DecodeRuneInString(s[loc[1]:])
		if isWordRune(before) || isWordRune(after) {
			continue
		}
		kept = append(kept, loc)
	}
	return kept
}

func (w wordRegexp) Match(s string) bool {
	return len(w.FindAll(s)) > 0
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

var (
	entityPatterns      = compileEntities(lexicon.Entities)
	actionPatterns      = compileKeywords(lexicon.Actions)
	constraintPatterns  = compileKeywords(lexicon.Constraints)
	rolePatterns        = compileKeywords(lexicon.Roles)
	processPatterns     = compileKeywords(lexicon.Processes)
	technicalPatterns   = compileKeywords(lexicon.TechnicalCapabilities)
	integrationPatterns = compileIntegrations(lexicon.Integrations)
	dataFlowPatterns    = compileAll(`(?i)`, lexicon.DataFlowPatterns)
	rulePatterns        = compileAll(`(?is)`, lexicon.BusinessRulePatterns)
	nonWord             = regexp.MustCompile(`[^\p{L}\p{N}_]`)
)

// alternation builds "(a|b|c)" from literal variants.
func alternation(variants []string) string {
	quoted := make([]string, len(variants))
	for i, v := range variants {
		quoted[i] = regexp.QuoteMeta(v)
	}
	return "(" + strings.Join(quoted, "|") + ")"
}

func compileKeywords(table []lexicon.Keywords) []keywordPattern {
	patterns := make([]keywordPattern, 0, len(table))
	for _, k := range table {
		patterns = append(patterns, keywordPattern{
			key: k.Key,
			re:  wordPattern(alternation(k.Variants)),
		})
	}
	return patterns
}

// Entity patterns fold a trailing plural "s" into the same match.
func compileEntities(defs []lexicon.EntityDef) []entityPattern {
	patterns := make([]entityPattern, 0, len(defs))
	for _, d := range defs {
		patterns = append(patterns, entityPattern{
			def: d,
			re:  wordPattern(alternation(d.Variants) + `s?`),
		})
	}
	return patterns
}

func compileIntegrations(defs []lexicon.IntegrationDef) []integrationPattern {
	patterns := make([]integrationPattern, 0, len(defs))
	for _, d := range defs {
		patterns = append(patterns, integrationPattern{
			def: d,
			re:  wordPattern(`(` + d.Pattern + `)`),
		})
	}
	return patterns
}

func compileAll(flags string, sources []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(sources))
	for _, s := range sources {
		res = append(res, regexp.MustCompile(flags+s))
	}
	return res
}
