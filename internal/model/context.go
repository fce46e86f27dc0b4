package model

import "time"

// Cardinality describes how two entity types associate.
type Cardinality string

const (
	OneToOne   Cardinality = "OneToOne"
	OneToMany  Cardinality = "OneToMany"
	ManyToMany Cardinality = "ManyToMany"
)

// Label renders the cardinality the way descriptions use it: "one-to-many".
func (c Cardinality) Label() string {
	switch c {
	case OneToOne:
		return "one-to-one"
	case OneToMany:
		return "one-to-many"
	case ManyToMany:
		return "many-to-many"
	default:
		return string(c)
	}
}

type ProcessingStatus string

const (
	ProcessingSuccess ProcessingStatus = "success"
	ProcessingFailed  ProcessingStatus = "failed"
	ProcessingPartial ProcessingStatus = "partial"
)

// TextSummary is the lightweight lexical view of a requirement.
type TextSummary struct {
	Sentences     []string `json:"sentences"`
	KeyPhrases    []string `json:"key_phrases"`
	ActionVerbs   []string `json:"action_verbs"`
	BusinessTerms []string `json:"business_terms"`
	WordCount     int      `json:"word_count"`
	SentenceCount int      `json:"sentence_count"`
}

type Process struct {
	Type               string   `json:"type"`
	Name               string   `json:"name"`
	Confidence         float64  `json:"confidence"`
	SuggestedWorkflows []string `json:"suggested_workflows"`
}

type Relationship struct {
	FromEntity         string      `json:"from_entity"`
	ToEntity           string      `json:"to_entity"`
	Cardinality        Cardinality `json:"relationship_type"`
	SuggestedLinkField string      `json:"suggested_link_field"`
	Description        string      `json:"description"`
}

type TechnicalRequirement struct {
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Priority    Priority `json:"priority"`
	Description string   `json:"description"`
}

type IndustryClassification struct {
	Industry           string   `json:"industry"`
	MatchedKeywords    []string `json:"matched_keywords"`
	Patterns           []string `json:"industry_patterns"`
	RecommendedModules []string `json:"recommended_modules"`
	BestPractices      []string `json:"best_practices"`
}

type ComplexityFactors struct {
	EntityCount       int               `json:"entity_count"`
	ProcessCount      int               `json:"process_count"`
	DescriptionLength int               `json:"description_length"`
	Indicators        []ComplexityLevel `json:"complexity_indicators"`
}

type ComplexityAssessment struct {
	Score               int               `json:"score"`
	Level               ComplexityLevel   `json:"level"`
	Factors             ComplexityFactors `json:"factors"`
	EstimatedEffort     string            `json:"estimated_effort"`
	RecommendedApproach string            `json:"recommended_approach"`
}

// Context is the aggregated analysis of one requirement. The analysis fields
// never change after creation; only UserContext accepts later annotations.
type Context struct {
	ID                    string                 `json:"context_id"`
	Timestamp             time.Time              `json:"timestamp"`
	OriginalRequirement   string                 `json:"original_requirement"`
	Summary               TextSummary            `json:"parsed_requirement"`
	Processes             []Process              `json:"business_processes"`
	Relationships         []Relationship         `json:"data_relationships"`
	TechnicalRequirements []TechnicalRequirement `json:"technical_requirements"`
	Industry              IndustryClassification `json:"domain_insights"`
	Complexity            ComplexityAssessment   `json:"complexity_assessment"`
	UserContext           map[string]any         `json:"user_context"`
	Extraction
}

// Parsed exposes the extraction part of the context as a parse result.
func (c *Context) Parsed() *ParsedRequirement {
	return &ParsedRequirement{
		OriginalText: c.OriginalRequirement,
		ParsedAt:     c.Timestamp,
		Extraction:   c.Extraction,
	}
}

// EntityTypes returns the detected entity types in priority order.
func (c *Context) EntityTypes() []string {
	types := make([]string, 0, len(c.Entities))
	for _, e := range c.Entities {
		types = append(types, e.Type)
	}
	return types
}

type BasicAnalysis struct {
	WordCount             int  `json:"word_count"`
	ContainsBusinessTerms bool `json:"contains_business_terms"`
}

// FallbackContext is the degraded record returned when analysis fails.
type FallbackContext struct {
	OriginalRequirement string           `json:"original_requirement"`
	ProcessingStatus    ProcessingStatus `json:"processing_status"`
	BasicAnalysis       BasicAnalysis    `json:"basic_analysis"`
}

// ProcessResult is the outcome of processing a requirement. Check Success
// before reading Context.
type ProcessResult struct {
	Success        bool             `json:"success"`
	ContextID      string           `json:"context_id,omitempty"`
	Context        *Context         `json:"context,omitempty"`
	Error          string           `json:"error,omitempty"`
	PartialContext *FallbackContext `json:"partial_context,omitempty"`
}

// HistoryEntry records one processed requirement, successful or not.
type HistoryEntry struct {
	ID               int64            `json:"id"`
	ContextID        string           `json:"context_id,omitempty"`
	Timestamp        time.Time        `json:"timestamp"`
	Requirement      string           `json:"requirement"`
	ProcessingResult ProcessingStatus `json:"processing_result"`
	Error            string           `json:"error,omitempty"`
}
