package model

import "time"

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ComplexityLevel is the coarse implementation-effort tier.
type ComplexityLevel string

const (
	ComplexityLow    ComplexityLevel = "low"
	ComplexityMedium ComplexityLevel = "medium"
	ComplexityHigh   ComplexityLevel = "high"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// EntityMatch is a business entity detected in a requirement.
type EntityMatch struct {
	Type               string   `json:"type"`
	DisplayName        string   `json:"name"`
	Occurrences        int      `json:"occurrences"`
	MatchedVariants    []string `json:"matches"`
	ContextAttributes  []string `json:"context_attributes"`
	StandardAttributes []string `json:"standard_attributes"`
	SuggestedDocType   string   `json:"suggested_doctype"`
	Priority           int      `json:"priority"`
}

// ActionMatch is one occurrence of an action verb. Repeated verbs produce
// repeated matches.
type ActionMatch struct {
	Type            string `json:"type"`
	Verb            string `json:"verb"`
	Object          string `json:"object"`
	Position        int    `json:"position"`
	Context         string `json:"context"`
	MappedOperation string `json:"mapped_operation"`
}

type ConstraintMatch struct {
	Type               string   `json:"type"`
	Description        string   `json:"description"`
	Severity           Severity `json:"severity"`
	ImplementationHint string   `json:"implementation_suggestion"`
}

type RoleMatch struct {
	Key              string   `json:"key"`
	Name             string   `json:"name"`
	Permissions      []string `json:"permissions"`
	MappedRole       string   `json:"suggested_role"`
	Responsibilities []string `json:"responsibilities"`
}

type DataFlow struct {
	Source  string `json:"source"`
	Target  string `json:"target"`
	Type    string `json:"type"`
	Context string `json:"context"`
}

type BusinessRule struct {
	Condition      string `json:"condition"`
	Action         string `json:"action"`
	Type           string `json:"type"`
	Implementation string `json:"implementation"`
}

type IntegrationPoint struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Complexity  ComplexityLevel `json:"complexity"`
	Approach    string          `json:"implementation_approach"`
}

// Components buckets whole sentences by what they express.
type Components struct {
	FunctionalRequirements    []string `json:"functional_requirements"`
	NonFunctionalRequirements []string `json:"non_functional_requirements"`
	UserStories               []string `json:"user_stories"`
	BusinessObjectives        []string `json:"business_objectives"`
	TechnicalConstraints      []string `json:"technical_constraints"`
}

// Suggestions are platform building blocks implied by the text.
type Suggestions struct {
	Modules        []string `json:"modules"`
	DocTypes       []string `json:"doctypes"`
	Workflows      []string `json:"workflows"`
	Reports        []string `json:"reports"`
	Customizations []string `json:"customizations"`
}

type Confidence struct {
	Entities int `json:"entities"`
	Actions  int `json:"actions"`
	Overall  int `json:"overall"`
}

type ImplementationFactors struct {
	Entities     int `json:"entities"`
	Actions      int `json:"actions"`
	Constraints  int `json:"constraints"`
	Integrations int `json:"integrations"`
}

type ImplementationComplexity struct {
	Level   ComplexityLevel       `json:"level"`
	Score   int                   `json:"score"`
	Factors ImplementationFactors `json:"factors"`
}

// Extraction holds everything the extractors pull out of one requirement.
type Extraction struct {
	Components               Components               `json:"components"`
	Entities                 []EntityMatch            `json:"entities"`
	Actions                  []ActionMatch            `json:"actions"`
	Constraints              []ConstraintMatch        `json:"constraints"`
	Roles                    []RoleMatch              `json:"user_roles"`
	DataFlows                []DataFlow               `json:"data_flows"`
	BusinessRules            []BusinessRule           `json:"business_rules"`
	IntegrationPoints        []IntegrationPoint       `json:"integration_points"`
	Suggestions              Suggestions              `json:"suggestions"`
	Confidence               Confidence               `json:"confidence"`
	ImplementationComplexity ImplementationComplexity `json:"implementation_complexity"`
}

// ParsedRequirement is a successful parse of one requirement.
type ParsedRequirement struct {
	OriginalText string    `json:"original_text"`
	ParsedAt     time.Time `json:"parsed_at"`
	Extraction
}

type BasicInfo struct {
	WordCount        int  `json:"word_count"`
	SentenceCount    int  `json:"sentence_count"`
	HasBusinessTerms bool `json:"has_business_terms"`
}

// MinimalParse is returned in place of a full parse when extraction fails.
type MinimalParse struct {
	BasicInfo BasicInfo `json:"basic_info"`
}

// ParseResult is the outcome of a parse. Check Success before reading Parsed.
type ParseResult struct {
	Success       bool               `json:"success"`
	OriginalText  string             `json:"original_text"`
	ParsedAt      time.Time          `json:"parsed_at"`
	Parsed        *ParsedRequirement `json:"parsed,omitempty"`
	Error         string             `json:"error,omitempty"`
	PartialResult *MinimalParse      `json:"partial_result,omitempty"`
}
