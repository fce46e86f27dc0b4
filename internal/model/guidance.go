package model

type IndustryPatterns struct {
	KeyEntities []string `json:"key_entities"`
	Processes   []string `json:"processes"`
	Compliance  []string `json:"compliance"`
	Metrics     []string `json:"metrics"`
}

type ContextualizedSuggestions struct {
	RelevantEntities  []string `json:"relevant_entities"`
	RelevantProcesses []string `json:"relevant_processes"`
}

// IndustryGuidance is the domain knowledge bundle for one industry.
type IndustryGuidance struct {
	Industry                  string                     `json:"industry"`
	Patterns                  IndustryPatterns           `json:"patterns"`
	RecommendedModules        []string                   `json:"recommended_modules"`
	CommonDocTypes            []string                   `json:"common_doctypes"`
	TypicalWorkflows          []string                   `json:"typical_workflows"`
	BestPractices             []string                   `json:"best_practices"`
	ComplianceConsiderations  []string                   `json:"compliance_considerations"`
	IntegrationPoints         []string                   `json:"integration_points"`
	ContextualizedSuggestions *ContextualizedSuggestions `json:"contextualized_suggestions,omitempty"`
}

type DocTypeTemplate struct {
	StandardFields     []string `json:"standard_fields"`
	CommonCustomFields []string `json:"common_custom_fields"`
	Relationships      []string `json:"relationships"`
	Permissions        []string `json:"permissions"`
}

type IndustryModifications struct {
	AdditionalFields    []string `json:"additional_fields"`
	ModifiedPermissions []string `json:"modified_permissions"`
	IndustryWorkflows   []string `json:"industry_workflows"`
}

type CustomField struct {
	FieldName string `json:"fieldname"`
	FieldType string `json:"fieldtype"`
	Label     string `json:"label"`
	Required  bool   `json:"reqd"`
}

type DocTypeLink struct {
	With string `json:"with"`
	Type string `json:"type"`
}

type RolePermission struct {
	Role   string `json:"role"`
	Read   bool   `json:"read"`
	Write  bool   `json:"write,omitempty"`
	Create bool   `json:"create,omitempty"`
	Delete bool   `json:"delete,omitempty"`
}

// DocTypeSuggestion is a proposed record schema for one entity.
type DocTypeSuggestion struct {
	DocTypeName           string                `json:"doctype_name"`
	BaseStructure         DocTypeTemplate       `json:"base_structure"`
	IndustryModifications IndustryModifications `json:"industry_modifications"`
	CustomFields          []CustomField         `json:"custom_fields"`
	Relationships         []DocTypeLink         `json:"relationships"`
	Permissions           []RolePermission      `json:"permissions"`
	Workflows             []string              `json:"workflows"`
	ImplementationNotes   []string              `json:"implementation_notes"`
}

type ProcessRecommendation struct {
	ProcessType             string   `json:"process_type"`
	Industry                string   `json:"industry"`
	ProcessFlow             []string `json:"process_flow"`
	RequiredDocTypes        []string `json:"required_doctypes"`
	WorkflowStates          []string `json:"workflow_states"`
	AutomationOpportunities []string `json:"automation_opportunities"`
	KeyMetrics              []string `json:"key_metrics"`
	ComplianceCheckpoints   []string `json:"compliance_checkpoints"`
	AdditionalSteps         []string `json:"additional_steps"`
	IntegrationPoints       []string `json:"integration_points"`
}

type Feasibility struct {
	OverallFeasibility    ComplexityLevel `json:"overall_feasibility"`
	ConfidenceScore       int             `json:"confidence_score"`
	SupportedFeatures     []string        `json:"supported_features"`
	ChallengingFeatures   []string        `json:"challenging_features"`
	AlternativeApproaches []string        `json:"alternative_approaches"`
	EstimatedEffort       string          `json:"estimated_effort"`
	RiskFactors           []string        `json:"risk_factors"`
}

// BestPractices groups recommendations by topic, e.g. "permissions".
type BestPractices map[string][]string
