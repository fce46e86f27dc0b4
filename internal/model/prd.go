package model

import "time"

type PRDStatus string

const (
	PRDStatusDraft PRDStatus = "draft"
)

// Table is a group of fixed key/value statements inside a document section.
type Table map[string]string

// PRD is a generated product requirements document.
type PRD struct {
	ID                      string                  `json:"prd_id"`
	ContextID               string                  `json:"context_id,omitempty"`
	GeneratedAt             time.Time               `json:"generated_at"`
	Version                 string                  `json:"version"`
	Status                  PRDStatus               `json:"status"`
	Metadata                Metadata                `json:"metadata"`
	ExecutiveSummary        ExecutiveSummary        `json:"executive_summary"`
	ProjectOverview         ProjectOverview         `json:"project_overview"`
	FunctionalRequirements  FunctionalRequirements  `json:"functional_requirements"`
	TechnicalRequirements   TechnicalRequirements   `json:"technical_requirements"`
	DataModel               DataModel               `json:"data_model"`
	UserStories             []UserStory             `json:"user_stories"`
	SystemArchitecture      SystemArchitecture      `json:"system_architecture"`
	IntegrationRequirements IntegrationRequirements `json:"integration_requirements"`
	SecurityRequirements    SecurityRequirements    `json:"security_requirements"`
	PerformanceRequirements PerformanceRequirements `json:"performance_requirements"`
	UIUXRequirements        UIUXRequirements        `json:"ui_ux_requirements"`
	WorkflowSpecifications  []WorkflowSpecification `json:"workflow_specifications"`
	ReportingRequirements   ReportingRequirements   `json:"reporting_requirements"`
	DeploymentPlan          DeploymentPlan          `json:"deployment_plan"`
	TestingStrategy         TestingStrategy         `json:"testing_strategy"`
	MaintenancePlan         MaintenancePlan         `json:"maintenance_plan"`
	RiskAssessment          RiskAssessment          `json:"risk_assessment"`
	TimelineEstimate        TimelineEstimate        `json:"timeline_estimate"`
	ResourceRequirements    ResourceRequirements    `json:"resource_requirements"`
	SuccessCriteria         SuccessCriteria         `json:"success_criteria"`
	Appendices              Appendices              `json:"appendices"`
}

type VersionEntry struct {
	Version string    `json:"version"`
	Date    time.Time `json:"date"`
	Changes string    `json:"changes"`
	Author  string    `json:"author"`
}

type Metadata struct {
	ProjectName    string         `json:"project_name"`
	Client         string         `json:"client"`
	CreatedBy      string         `json:"created_by"`
	CreationDate   time.Time      `json:"creation_date"`
	LastModified   time.Time      `json:"last_modified"`
	VersionHistory []VersionEntry `json:"version_history"`
	Stakeholders   []string       `json:"stakeholders"`
	ApprovalStatus string         `json:"approval_status"`
}

type InvestmentSummary struct {
	EstimatedEffort string          `json:"estimated_effort"`
	ComplexityLevel ComplexityLevel `json:"complexity_level"`
	ROIExpectations string          `json:"roi_expectations"`
}

type ExecutiveSummary struct {
	ProblemStatement  string            `json:"problem_statement"`
	SolutionOverview  string            `json:"solution_overview"`
	BusinessValue     string            `json:"business_value"`
	KeyFeatures       []string          `json:"key_features"`
	SuccessMetrics    []string          `json:"success_metrics"`
	InvestmentSummary InvestmentSummary `json:"investment_summary"`
}

type Scope struct {
	InScope    []string `json:"in_scope"`
	OutOfScope []string `json:"out_of_scope"`
}

type TargetUser struct {
	Role        string `json:"role"`
	Description string `json:"description"`
}

type ProjectOverview struct {
	Scope           Scope        `json:"project_scope"`
	Objectives      []string     `json:"objectives"`
	TargetUsers     []TargetUser `json:"target_users"`
	BusinessContext string       `json:"business_context"`
	Assumptions     []string     `json:"assumptions"`
	Constraints     []string     `json:"constraints"`
	Dependencies    []string     `json:"dependencies"`
}

type FunctionalRequirements struct {
	CoreFunctionality   []string `json:"core_functionality"`
	DataManagement      []string `json:"data_management"`
	ProcessAutomation   []string `json:"process_automation"`
	ReportingAnalytics  []string `json:"reporting_analytics"`
	IntegrationFeatures []string `json:"integration_features"`
}

type IntegrationNeed struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

type TechnicalRequirements struct {
	Platform     Table             `json:"platform_requirements"`
	Performance  Table             `json:"performance_requirements"`
	Security     Table             `json:"security_requirements"`
	Integrations []IntegrationNeed `json:"integration_requirements"`
	Backup       Table             `json:"backup_requirements"`
}

type AttributeSpec struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

type EntitySpec struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Attributes  []AttributeSpec `json:"attributes"`
	Indexes     []string        `json:"indexes"`
	Permissions []string        `json:"permissions"`
}

type DataModel struct {
	Entities       []EntitySpec      `json:"entities"`
	Relationships  []Relationship    `json:"relationships"`
	DataDictionary map[string]string `json:"data_dictionary"`
	BusinessRules  []BusinessRule    `json:"business_rules"`
}

type UserStory struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	AsA                string   `json:"as_a"`
	IWant              string   `json:"i_want"`
	SoThat             string   `json:"so_that"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	Priority           Priority `json:"priority"`
	EffortEstimate     string   `json:"effort_estimate"`
}

type SystemArchitecture struct {
	Overall     Table    `json:"overall_architecture"`
	Components  Table    `json:"component_architecture"`
	Deployment  Table    `json:"deployment_architecture"`
	Scalability []string `json:"scalability_considerations"`
}

type ExternalIntegration struct {
	System     string `json:"system"`
	Method     string `json:"method"`
	Frequency  string `json:"frequency"`
	DataFormat string `json:"data_format"`
	Security   string `json:"security"`
}

type IntegrationRequirements struct {
	Internal []string              `json:"internal_integrations"`
	External []ExternalIntegration `json:"external_integrations"`
	API      Table                 `json:"api_requirements"`
	DataSync []string              `json:"data_sync_requirements"`
}

type SecurityRequirements struct {
	Authentication Table `json:"authentication"`
	Authorization  Table `json:"authorization"`
	DataProtection Table `json:"data_protection"`
	Compliance     Table `json:"compliance"`
}

type PerformanceRequirements struct {
	ResponseTime Table `json:"response_time"`
	Throughput   Table `json:"throughput"`
	Scalability  Table `json:"scalability"`
	Availability Table `json:"availability"`
}

type UIUXRequirements struct {
	DesignPrinciples []string `json:"design_principles"`
	UserInterface    Table    `json:"user_interface"`
	UserExperience   Table    `json:"user_experience"`
	Accessibility    Table    `json:"accessibility"`
}

type Transition struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Action string `json:"action"`
}

type WorkflowSpecification struct {
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	States        []string     `json:"states"`
	Transitions   []Transition `json:"transitions"`
	Roles         []string     `json:"roles"`
	Notifications []string     `json:"notifications"`
}

type ReportingRequirements struct {
	StandardReports []string `json:"standard_reports"`
	Dashboards      Table    `json:"dashboard_requirements"`
	Analytics       Table    `json:"analytics_requirements"`
	RealTime        Table    `json:"real_time_monitoring"`
}

type DeploymentStrategy struct {
	Approach     string   `json:"approach"`
	Environments []string `json:"environments"`
	RollbackPlan string   `json:"rollback_plan"`
	BlueGreen    string   `json:"blue_green_deployment"`
}

type DeploymentPhase struct {
	Phase        string   `json:"phase"`
	Duration     string   `json:"duration"`
	Deliverables []string `json:"deliverables"`
}

type DeploymentPlan struct {
	Strategy       DeploymentStrategy `json:"deployment_strategy"`
	Infrastructure Table              `json:"infrastructure_requirements"`
	Phases         []DeploymentPhase  `json:"deployment_phases"`
}

type TestingStrategy struct {
	Levels     Table `json:"testing_levels"`
	Types      Table `json:"testing_types"`
	Automation Table `json:"test_automation"`
	TestData   Table `json:"test_data_management"`
}

type MaintenancePlan struct {
	Types         Table `json:"maintenance_types"`
	Schedule      Table `json:"maintenance_schedule"`
	SupportModel  Table `json:"support_model"`
	Documentation Table `json:"documentation_maintenance"`
}

type Risk struct {
	Risk        string `json:"risk"`
	Probability string `json:"probability"`
	Impact      string `json:"impact"`
	Mitigation  string `json:"mitigation"`
	Contingency string `json:"contingency"`
}

type RiskAssessment struct {
	Risks   []Risk `json:"identified_risks"`
	Process Table  `json:"risk_management_process"`
}

type Milestone struct {
	Milestone    string   `json:"milestone"`
	Date         string   `json:"date"`
	Deliverables []string `json:"deliverables"`
}

type TimelineEstimate struct {
	TotalWeeks          int         `json:"total_weeks"`
	TotalDuration       string      `json:"total_duration"`
	StartDate           string      `json:"start_date"`
	EstimatedCompletion string      `json:"estimated_completion"`
	Milestones          []Milestone `json:"milestones"`
	CriticalPath        []string    `json:"critical_path"`
}

type ResourceRequirements struct {
	Human          Table `json:"human_resources"`
	Technical      Table `json:"technical_resources"`
	Infrastructure Table `json:"infrastructure_requirements"`
	Budget         Table `json:"budget_considerations"`
}

type SuccessCriteria struct {
	Functional  []string `json:"functional_success_criteria"`
	Performance []string `json:"performance_success_criteria"`
	Business    []string `json:"business_success_criteria"`
	Technical   []string `json:"technical_success_criteria"`
}

type TechnicalSpecifications struct {
	FrameworkVersion  string   `json:"framework_version"`
	PythonVersion     string   `json:"python_version"`
	DatabaseVersion   string   `json:"database_version"`
	SupportedBrowsers []string `json:"supported_browsers"`
	MobileSupport     string   `json:"mobile_support"`
	APIVersion        string   `json:"api_version"`
}

type Appendices struct {
	Glossary                map[string]string       `json:"glossary"`
	TechnicalSpecifications TechnicalSpecifications `json:"technical_specifications"`
	Wireframes              string                  `json:"wireframes"`
	APIDocumentation        string                  `json:"api_documentation"`
	DatabaseSchema          string                  `json:"database_schema"`
	IndustryCompliance      []string                `json:"industry_compliance"`
	References              []string                `json:"references"`
}

// PRDSummary is the short view returned next to a generated document.
type PRDSummary struct {
	ProjectName          string          `json:"project_name"`
	Complexity           ComplexityLevel `json:"complexity"`
	Duration             string          `json:"duration"`
	KeyFeatures          []string        `json:"key_features"`
	EstimatedCompletion  string          `json:"estimated_completion"`
	SuccessCriteriaCount int             `json:"success_criteria_count"`
}

// PRDListing is one row of the document index.
type PRDListing struct {
	PRDID       string    `json:"prd_id"`
	ContextID   string    `json:"context_id,omitempty"`
	ProjectName string    `json:"project_name"`
	CreatedAt   time.Time `json:"created_at"`
	Status      PRDStatus `json:"status"`
}

type MinimalPRDInfo struct {
	ProjectName        string `json:"project_name"`
	RequirementsSource string `json:"requirements_source"`
	Complexity         string `json:"complexity"`
	EstimatedEffort    string `json:"estimated_effort"`
}

// MinimalPRD stands in for a document that could not be assembled.
type MinimalPRD struct {
	BasicInfo MinimalPRDInfo `json:"basic_info"`
}

// GenerateResult is the outcome of document generation. Check Success before
// reading PRD.
type GenerateResult struct {
	Success    bool        `json:"success"`
	PRDID      string      `json:"prd_id,omitempty"`
	PRD        *PRD        `json:"prd,omitempty"`
	Summary    *PRDSummary `json:"summary,omitempty"`
	Error      string      `json:"error,omitempty"`
	PartialPRD *MinimalPRD `json:"partial_prd,omitempty"`
}
