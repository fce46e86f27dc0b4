// Package prd assembles a requirements document from an analyzed Context.
// Every section is derived from the Context alone, so sections can be built
// in any order.
package prd

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"basegraph.app/blueprint/common"
	"basegraph.app/blueprint/common/id"
	"basegraph.app/blueprint/internal/guidance"
	"basegraph.app/blueprint/internal/model"
)

var ErrNoContext = errors.New("context is required")

const (
	keyFeatureEntities  = 5
	keyFeatureProcesses = 3
	problemEntities     = 3
	summaryFeatures     = 5
)

// baseWeeks is the timeline length for one entity at each complexity level.
var baseWeeks = map[model.ComplexityLevel]int{
	model.ComplexityLow:    2,
	model.ComplexityMedium: 4,
	model.ComplexityHigh:   8,
}

type Assembler struct {
	now   func() time.Time
	newID func() string
}

type Option func(*Assembler)

func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

func WithIDSource(next func() string) Option {
	return func(a *Assembler) { a.newID = next }
}

func New(opts ...Option) *Assembler {
	a := &Assembler{now: time.Now, newID: id.PRD}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Generate builds a document. Guidance and parsed are optional. A failure
// returns an unsuccessful result carrying a minimal document instead.
func (a *Assembler) Generate(c *model.Context, g *model.IndustryGuidance, parsed *model.ParsedRequirement) (res model.GenerateResult) {
	defer func() {
		if r := recover(); r != nil {
			res = failed(c, fmt.Errorf("assembling document: %v", r))
		}
	}()

	if c == nil {
		return failed(nil, ErrNoContext)
	}

	doc := a.assemble(c, g, parsed)
	summary := Summary(doc)
	return model.GenerateResult{
		Success: true,
		PRDID:   doc.ID,
		PRD:     doc,
		Summary: &summary,
	}
}

func (a *Assembler) assemble(c *model.Context, g *model.IndustryGuidance, parsed *model.ParsedRequirement) *model.PRD {
	now := a.now()
	return &model.PRD{
		ID:                      a.newID(),
		ContextID:               c.ID,
		GeneratedAt:             now,
		Version:                 documentVersion,
		Status:                  model.PRDStatusDraft,
		Metadata:                metadata(c, now),
		ExecutiveSummary:        executiveSummary(c),
		ProjectOverview:         projectOverview(c, g),
		FunctionalRequirements:  functionalRequirements(c, parsed),
		TechnicalRequirements:   technicalSection(c),
		DataModel:               dataModel(c),
		UserStories:             userStories(c, parsed),
		SystemArchitecture:      systemArchitecture(),
		IntegrationRequirements: integrationRequirements(c),
		SecurityRequirements:    securityRequirements(),
		PerformanceRequirements: performanceRequirements(),
		UIUXRequirements:        uiuxRequirements(),
		WorkflowSpecifications:  workflowSpecifications(c),
		ReportingRequirements:   reportingRequirements(c),
		DeploymentPlan:          deploymentPlan(),
		TestingStrategy:         testingStrategy(),
		MaintenancePlan:         maintenancePlan(),
		RiskAssessment:          riskAssessment(c),
		TimelineEstimate:        Timeline(c.Complexity.Level, len(c.Entities), now),
		ResourceRequirements:    resourceRequirements(),
		SuccessCriteria:         successCriteria(c),
		Appendices:              appendices(c, g),
	}
}

func failed(c *model.Context, err error) model.GenerateResult {
	source := "Not specified"
	if c != nil && c.OriginalRequirement != "" {
		source = c.OriginalRequirement
	}
	return model.GenerateResult{
		Success: false,
		Error:   err.Error(),
		PartialPRD: &model.MinimalPRD{BasicInfo: model.MinimalPRDInfo{
			ProjectName:        defaultProjectName,
			RequirementsSource: source,
			Complexity:         "To be determined",
			EstimatedEffort:    "To be estimated",
		}},
	}
}

// ProjectName is "<Top entity> Management System", or a generic name when no
// entity was found.
func ProjectName(c *model.Context) string {
	if len(c.Entities) == 0 {
		return defaultProjectName
	}
	return common.Title(c.Entities[0].DisplayName) + " Management System"
}

func metadata(c *model.Context, now time.Time) model.Metadata {
	return model.Metadata{
		ProjectName:  ProjectName(c),
		Client:       "Internal Development",
		CreatedBy:    "ERPNext App Builder",
		CreationDate: now,
		LastModified: now,
		VersionHistory: []model.VersionEntry{{
			Version: documentVersion,
			Date:    now,
			Changes: "Initial PRD generation",
			Author:  "App Builder System",
		}},
		Stakeholders:   stakeholders(),
		ApprovalStatus: "pending_review",
	}
}

func executiveSummary(c *model.Context) model.ExecutiveSummary {
	problem := "The organization requires a custom ERPNext application to address specific business requirements and improve operational processes."
	if len(c.Entities) > 0 {
		names := entityNames(c.Entities[:min(problemEntities, len(c.Entities))])
		problem = fmt.Sprintf("The organization needs a systematic way to manage %s data and processes to improve operational efficiency and data accuracy.", strings.Join(names, ", "))
	}

	effort := c.Complexity.EstimatedEffort
	if effort == "" {
		effort = "Medium"
	}
	level := c.Complexity.Level
	if level == "" {
		level = model.ComplexityMedium
	}

	return model.ExecutiveSummary{
		ProblemStatement: problem,
		SolutionOverview: fmt.Sprintf("Develop a custom ERPNext application with %d main entities and %d business processes to provide comprehensive data management and workflow automation capabilities.",
			len(c.Entities), len(c.Processes)),
		BusinessValue:  "Improved data management, streamlined business processes, better reporting and analytics, increased operational efficiency, and enhanced data accuracy and consistency.",
		KeyFeatures:    keyFeatures(c),
		SuccessMetrics: successMetrics(),
		InvestmentSummary: model.InvestmentSummary{
			EstimatedEffort: effort,
			ComplexityLevel: level,
			ROIExpectations: "Improved efficiency and data management",
		},
	}
}

func keyFeatures(c *model.Context) []string {
	var features []string
	for _, e := range c.Entities[:min(keyFeatureEntities, len(c.Entities))] {
		features = append(features, common.Title(e.DisplayName)+" management")
	}
	for _, p := range c.Processes[:min(keyFeatureProcesses, len(c.Processes))] {
		features = append(features, common.Humanize(p.Name))
	}
	return append(features, baseKeyFeatures()...)
}

func projectOverview(c *model.Context, g *model.IndustryGuidance) model.ProjectOverview {
	var inScope []string
	for _, e := range c.Entities {
		inScope = append(inScope, common.Title(e.DisplayName)+" management functionality")
	}

	businessContext := "The organization operates in a competitive business environment requiring efficient data management and process automation to maintain operational excellence."
	if g != nil && g.Industry != "" {
		businessContext = fmt.Sprintf("Operating in the %[1]s industry, the organization requires specialized functionality to manage %[1]s-specific processes and compliance requirements.", g.Industry)
	}

	var constraints []string
	for _, cm := range c.Constraints {
		constraints = append(constraints, cm.Description)
	}

	return model.ProjectOverview{
		Scope: model.Scope{
			InScope:    append(inScope, baseInScope()...),
			OutOfScope: outOfScope(),
		},
		Objectives:      objectives(),
		TargetUsers:     targetUsers(),
		BusinessContext: businessContext,
		Assumptions:     assumptions(),
		Constraints:     append(constraints, baseConstraints()...),
		Dependencies:    dependencies(),
	}
}

// functionalRequirements emits four statements per entity. Parsed
// integration points add integration features.
func functionalRequirements(c *model.Context, parsed *model.ParsedRequirement) model.FunctionalRequirements {
	fr := model.FunctionalRequirements{
		CoreFunctionality:   []string{},
		DataManagement:      dataManagement(),
		ProcessAutomation:   []string{},
		ReportingAnalytics:  reportingAnalytics(),
		IntegrationFeatures: []string{},
	}
	for _, e := range c.Entities {
		name := e.DisplayName
		fr.CoreFunctionality = append(fr.CoreFunctionality,
			fmt.Sprintf("Create and manage %s records", name),
			fmt.Sprintf("Search and filter %s data", name),
			fmt.Sprintf("Update %s information", name),
			fmt.Sprintf("Archive/deactivate %s records", name),
		)
	}
	for _, p := range c.Processes {
		fr.ProcessAutomation = append(fr.ProcessAutomation, fmt.Sprintf("Automate %s workflow", p.Name))
	}
	if parsed != nil {
		for _, ip := range parsed.IntegrationPoints {
			fr.IntegrationFeatures = append(fr.IntegrationFeatures,
				fmt.Sprintf("%s integration: %s", common.Title(ip.Type), ip.Approach))
		}
	}
	return fr
}

func technicalSection(c *model.Context) model.TechnicalRequirements {
	tr := technicalRequirements()
	tr.Integrations = []model.IntegrationNeed{}
	for _, t := range c.TechnicalRequirements {
		if !t.Required {
			continue
		}
		desc := t.Description
		if desc == "" {
			desc = t.Type + " integration"
		}
		priority := t.Priority
		if priority == "" {
			priority = model.PriorityMedium
		}
		tr.Integrations = append(tr.Integrations, model.IntegrationNeed{
			Type:        t.Type,
			Description: desc,
			Priority:    priority,
		})
	}
	return tr
}

func dataModel(c *model.Context) model.DataModel {
	dm := model.DataModel{
		Entities:       []model.EntitySpec{},
		Relationships:  c.Relationships,
		DataDictionary: map[string]string{},
		BusinessRules:  c.BusinessRules,
	}
	for _, e := range c.Entities {
		name := e.DisplayName
		dm.Entities = append(dm.Entities, model.EntitySpec{
			Name:        name,
			Description: fmt.Sprintf("Entity for managing %s information", name),
			Attributes: []model.AttributeSpec{
				{Name: "name", Type: "string", Required: true, Description: common.Title(name) + " name"},
				{Name: "creation", Type: "datetime", Required: true, Description: "Record creation timestamp"},
				{Name: "modified", Type: "datetime", Required: true, Description: "Last modification timestamp"},
				{Name: "owner", Type: "string", Required: true, Description: "Record owner"},
				{Name: "docstatus", Type: "integer", Required: true, Description: "Document status"},
			},
			Indexes:     []string{"name", "creation", "modified"},
			Permissions: permissionRoles(e, c.Industry.Industry),
		})
	}
	if dm.Relationships == nil {
		dm.Relationships = []model.Relationship{}
	}
	if dm.BusinessRules == nil {
		dm.BusinessRules = []model.BusinessRule{}
	}
	return dm
}

func permissionRoles(e model.EntityMatch, industry string) []string {
	suggestion := guidance.SuggestDocType(e.Type, industry, e.ContextAttributes)
	roles := make([]string, 0, len(suggestion.Permissions))
	for _, p := range suggestion.Permissions {
		roles = append(roles, p.Role)
	}
	return roles
}

// userStories emits three stories per entity, then one per user story
// sentence found by the parser.
func userStories(c *model.Context, parsed *model.ParsedRequirement) []model.UserStory {
	stories := []model.UserStory{}
	for _, e := range c.Entities {
		n := e.DisplayName
		stories = append(stories,
			model.UserStory{
				ID:     fmt.Sprintf("US-%s-001", n),
				Title:  "Create " + n,
				AsA:    "User",
				IWant:  fmt.Sprintf("to create new %s records", n),
				SoThat: fmt.Sprintf("I can manage %s information effectively", n),
				AcceptanceCriteria: []string{
					fmt.Sprintf("I can access the %s creation form", n),
					fmt.Sprintf("I can enter required %s information", n),
					fmt.Sprintf("The system validates the %s data", n),
					fmt.Sprintf("I receive confirmation when %s is created", n),
				},
				Priority:       model.PriorityHigh,
				EffortEstimate: "3 story points",
			},
			model.UserStory{
				ID:     fmt.Sprintf("US-%s-002", n),
				Title:  fmt.Sprintf("View %s List", n),
				AsA:    "User",
				IWant:  fmt.Sprintf("to view a list of all %s records", n),
				SoThat: fmt.Sprintf("I can browse and find specific %s information", n),
				AcceptanceCriteria: []string{
					fmt.Sprintf("I can see a paginated list of %s records", n),
					fmt.Sprintf("I can search and filter %s records", n),
					fmt.Sprintf("I can sort %s records by different fields", n),
					"I can click on a record to view details",
				},
				Priority:       model.PriorityHigh,
				EffortEstimate: "2 story points",
			},
			model.UserStory{
				ID:     fmt.Sprintf("US-%s-003", n),
				Title:  "Update " + n,
				AsA:    "User",
				IWant:  fmt.Sprintf("to update existing %s records", n),
				SoThat: fmt.Sprintf("I can keep %s information current", n),
				AcceptanceCriteria: []string{
					fmt.Sprintf("I can access the %s edit form", n),
					fmt.Sprintf("I can modify %s information", n),
					"The system validates updated data",
					fmt.Sprintf("I receive confirmation when %s is updated", n),
				},
				Priority:       model.PriorityMedium,
				EffortEstimate: "2 story points",
			},
		)
	}

	if parsed == nil {
		return stories
	}
	for i, sentence := range parsed.Components.UserStories {
		stories = append(stories, model.UserStory{
			ID:                 fmt.Sprintf("US-CUSTOM-%03d", i+1),
			Title:              sentence,
			AsA:                "User",
			IWant:              sentence,
			SoThat:             "the stated requirement is met",
			AcceptanceCriteria: []string{"The described behaviour is available to the user"},
			Priority:           model.PriorityMedium,
			EffortEstimate:     "3 story points",
		})
	}
	return stories
}

func integrationRequirements(c *model.Context) model.IntegrationRequirements {
	ir := model.IntegrationRequirements{
		Internal: internalIntegrations(),
		External: []model.ExternalIntegration{},
		API:      apiRequirements(),
		DataSync: []string{},
	}
	for _, ip := range c.IntegrationPoints {
		method := ip.Approach
		if method == "" {
			method = "API integration"
		}
		ir.External = append(ir.External, model.ExternalIntegration{
			System:     ip.Type,
			Method:     method,
			Frequency:  "Real-time or scheduled",
			DataFormat: "JSON/XML",
			Security:   "Encrypted communication",
		})
	}
	return ir
}

// workflowSpecifications describes an approval workflow for every process
// that has dedicated workflows.
func workflowSpecifications(c *model.Context) []model.WorkflowSpecification {
	specs := []model.WorkflowSpecification{}
	for _, p := range c.Processes {
		if !hasDedicatedWorkflows(p) {
			continue
		}
		specs = append(specs, model.WorkflowSpecification{
			Name:          common.Humanize(p.Name) + " Workflow",
			Description:   fmt.Sprintf("Workflow for %s process", p.Name),
			States:        workflowStates(),
			Transitions:   workflowTransitions(),
			Roles:         workflowRoles(),
			Notifications: workflowNotifications(),
		})
	}
	return specs
}

func hasDedicatedWorkflows(p model.Process) bool {
	for _, w := range p.SuggestedWorkflows {
		if w != "Custom Workflow" {
			return true
		}
	}
	return false
}

func reportingRequirements(c *model.Context) model.ReportingRequirements {
	reports := []string{}
	for _, e := range c.Entities {
		reports = append(reports, common.Title(e.DisplayName)+" List Report")
	}
	return model.ReportingRequirements{
		StandardReports: reports,
		Dashboards:      dashboards(),
		Analytics:       analytics(),
		RealTime:        realTimeMonitoring(),
	}
}

func riskAssessment(c *model.Context) model.RiskAssessment {
	technical := "Low"
	if c.Complexity.Level == model.ComplexityHigh {
		technical = "Medium"
	}
	return model.RiskAssessment{
		Risks: []model.Risk{
			{
				Risk:        "Technical Complexity",
				Probability: technical,
				Impact:      "High",
				Mitigation:  "Phased implementation and thorough testing",
				Contingency: "Simplified implementation approach",
			},
			{
				Risk:        "User Adoption",
				Probability: "Medium",
				Impact:      "Medium",
				Mitigation:  "User training and change management",
				Contingency: "Extended training and support period",
			},
			{
				Risk:        "Data Migration",
				Probability: "Low",
				Impact:      "High",
				Mitigation:  "Thorough data analysis and migration testing",
				Contingency: "Manual data entry procedures",
			},
			{
				Risk:        "Integration Challenges",
				Probability: "Medium",
				Impact:      "Medium",
				Mitigation:  "Early integration testing and API validation",
				Contingency: "Alternative integration methods",
			},
		},
		Process: riskProcess(),
	}
}

// Timeline scales the base weeks for the level by half a factor per entity,
// never below one, and truncates to whole weeks.
func Timeline(level model.ComplexityLevel, entityCount int, start time.Time) model.TimelineEstimate {
	base, ok := baseWeeks[level]
	if !ok {
		base = baseWeeks[model.ComplexityMedium]
	}
	weeks := int(float64(base) * max(1, float64(entityCount)*0.5))

	week := 7 * 24 * time.Hour
	end := start.Add(time.Duration(weeks) * week)

	return model.TimelineEstimate{
		TotalWeeks:          weeks,
		TotalDuration:       fmt.Sprintf("%d weeks", weeks),
		StartDate:           start.Format(dateLayout),
		EstimatedCompletion: end.Format(dateLayout),
		Milestones: []model.Milestone{
			{
				Milestone:    "Requirements Finalization",
				Date:         start.Add(week).Format(dateLayout),
				Deliverables: []string{"Approved PRD", "Technical specifications"},
			},
			{
				Milestone:    "Development Phase 1",
				Date:         start.Add(time.Duration(weeks/2) * week).Format(dateLayout),
				Deliverables: []string{"Core DocTypes", "Basic workflows"},
			},
			{
				Milestone:    "Testing & Deployment",
				Date:         end.Format(dateLayout),
				Deliverables: []string{"Tested application", "Production deployment"},
			},
		},
		CriticalPath: criticalPath(),
	}
}

func successCriteria(c *model.Context) model.SuccessCriteria {
	var functional []string
	for _, e := range c.Entities {
		functional = append(functional, fmt.Sprintf("All %s management features working correctly", e.DisplayName))
	}
	return model.SuccessCriteria{
		Functional:  append(functional, baseFunctionalCriteria()...),
		Performance: performanceCriteria(),
		Business:    businessCriteria(),
		Technical:   technicalCriteria(),
	}
}

func appendices(c *model.Context, g *model.IndustryGuidance) model.Appendices {
	glossary := make(map[string]string, len(c.Entities)+len(glossaryTerms))
	for _, e := range c.Entities {
		glossary[common.Title(e.DisplayName)] = fmt.Sprintf("Business entity representing %s information and related processes", e.DisplayName)
	}
	maps.Copy(glossary, glossaryTerms)

	compliance := []string{}
	if g != nil && g.ComplianceConsiderations != nil {
		compliance = g.ComplianceConsiderations
	}

	return model.Appendices{
		Glossary:                glossary,
		TechnicalSpecifications: technicalSpecifications(),
		Wireframes:              "To be created during design phase",
		APIDocumentation:        "ERPNext standard API documentation",
		DatabaseSchema:          "Generated from DocType definitions",
		IndustryCompliance:      compliance,
		References:              references(),
	}
}

// Summary is the short view of a document.
func Summary(doc *model.PRD) model.PRDSummary {
	features := doc.ExecutiveSummary.KeyFeatures
	return model.PRDSummary{
		ProjectName:          doc.Metadata.ProjectName,
		Complexity:           doc.ExecutiveSummary.InvestmentSummary.ComplexityLevel,
		Duration:             doc.TimelineEstimate.TotalDuration,
		KeyFeatures:          features[:min(summaryFeatures, len(features))],
		EstimatedCompletion:  doc.TimelineEstimate.EstimatedCompletion,
		SuccessCriteriaCount: len(doc.SuccessCriteria.Functional),
	}
}

func entityNames(entities []model.EntityMatch) []string {
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		names = append(names, e.DisplayName)
	}
	return names
}
