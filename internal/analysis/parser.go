package analysis

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"basegraph.app/blueprint/internal/lexicon"
	"basegraph.app/blueprint/internal/model"
)

// ErrMalformedInput is returned for text that is not valid UTF-8.
var ErrMalformedInput = errors.New("malformed requirement text")

// Parser runs every extractor over a requirement.
type Parser struct {
	now func() time.Time
}

func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// WithClock replaces the parse timestamp source.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	p.now = now
	return p
}

// Extract runs every extractor. It fails only on malformed input, or when an
// extractor panics.
func (p *Parser) Extract(text string) (ex model.Extraction, err error) {
	if !utf8.ValidString(text) {
		return model.Extraction{}, ErrMalformedInput
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extracting requirement: %v", r)
		}
	}()

	sentences := Segment(text)
	ex.Components = ExtractComponents(sentences)
	ex.Entities = ExtractEntities(text)
	ex.Actions = ExtractActions(text)
	ex.Constraints = ExtractConstraints(sentences)
	ex.Roles = ExtractRoles(text, sentences)
	ex.DataFlows = ExtractDataFlows(text)
	ex.BusinessRules = ExtractBusinessRules(text)
	ex.IntegrationPoints = ExtractIntegrationPoints(text)
	ex.Suggestions = Suggest(text, ex.Entities)
	ex.Confidence = ScoreConfidence(len(ex.Entities), len(ex.Actions))
	ex.ImplementationComplexity = ScoreImplementation(model.ImplementationFactors{
		Entities:     len(ex.Entities),
		Actions:      len(ex.Actions),
		Constraints:  len(ex.Constraints),
		Integrations: len(ex.IntegrationPoints),
	})
	return ex, nil
}

// Parse never fails outright: on error the result carries the message and a
// minimal word/sentence summary instead of the extraction.
func (p *Parser) Parse(text string) model.ParseResult {
	result := model.ParseResult{
		OriginalText: text,
		ParsedAt:     p.now(),
	}

	ex, err := p.Extract(text)
	if err != nil {
		result.Error = err.Error()
		result.PartialResult = MinimalParse(text)
		return result
	}

	result.Success = true
	result.Parsed = &model.ParsedRequirement{
		OriginalText: text,
		ParsedAt:     result.ParsedAt,
		Extraction:   ex,
	}
	return result
}

// MinimalParse is the fallback summary for text the extractors rejected.
func MinimalParse(text string) *model.MinimalParse {
	return &model.MinimalParse{
		BasicInfo: model.BasicInfo{
			WordCount:        WordCount(text),
			SentenceCount:    len(Segment(text)),
			HasBusinessTerms: ContainsAny(strings.ToLower(text), lexicon.MinimalBusinessTerms),
		},
	}
}
