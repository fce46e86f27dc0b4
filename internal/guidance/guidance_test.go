package guidance_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/blueprint/internal/guidance"
	"basegraph.app/blueprint/internal/model"
)

var _ = Describe("IndustryGuidance", func() {
	It("returns the healthcare bundle", func() {
		g := guidance.IndustryGuidance("healthcare", "")

		Expect(g.Industry).To(Equal("healthcare"))
		Expect(g.RecommendedModules).To(Equal([]string{"Healthcare", "CRM", "Accounts"}))
		Expect(g.ComplianceConsiderations).To(ContainElement("HIPAA"))
		Expect(g.BestPractices).To(ContainElement("Ensure patient data privacy"))
		Expect(g.ContextualizedSuggestions).To(BeNil())
	})

	It("falls back to general for unknown industries", func() {
		g := guidance.IndustryGuidance("aerospace", "")

		Expect(g.Industry).To(Equal("general"))
		Expect(g.CommonDocTypes).To(Equal([]string{"Customer", "Supplier", "Item", "Sales Order"}))
		Expect(g.BestPractices).To(ContainElement("Regular system backups"))
		Expect(g.IntegrationPoints).To(Equal([]string{"Email systems", "Payment gateways", "Reporting tools"}))
	})

	It("uses default practices for industries without dedicated ones", func() {
		g := guidance.IndustryGuidance("education", "")
		Expect(g.BestPractices).To(ContainElement("Follow ERPNext standard practices"))
		Expect(g.ComplianceConsiderations).To(ContainElement("Accreditation requirements"))
	})

	It("contextualizes for a requirement", func() {
		g := guidance.IndustryGuidance("healthcare", "Track each Patient appointment and billing")

		Expect(g.ContextualizedSuggestions).NotTo(BeNil())
		Expect(g.ContextualizedSuggestions.RelevantEntities).To(Equal([]string{"patient", "appointment"}))
		Expect(g.ContextualizedSuggestions.RelevantProcesses).To(Equal([]string{"billing"}))
	})

	It("lists the known industries", func() {
		Expect(guidance.Industries()).To(Equal([]string{
			"education", "general", "healthcare", "manufacturing", "retail", "services",
		}))
	})
})

var _ = Describe("SuggestDocType", func() {
	It("builds a customer doctype with industry fields", func() {
		s := guidance.SuggestDocType("customer", "healthcare", []string{"email", "credit_score", "date"})

		Expect(s.DocTypeName).To(Equal("Customer"))
		Expect(s.BaseStructure.StandardFields).To(ContainElement("customer_name"))
		Expect(s.IndustryModifications.AdditionalFields).To(Equal([]string{"medical_record_number", "insurance_provider"}))
		Expect(s.CustomFields).To(Equal([]model.CustomField{
			{FieldName: "email", FieldType: "Data", Label: "Email", Required: true},
			{FieldName: "date", FieldType: "Date", Label: "Date"},
		}))
		Expect(s.Relationships).To(HaveLen(3))
		Expect(s.Permissions[1]).To(Equal(model.RolePermission{Role: "Sales Manager", Read: true, Write: true, Create: true, Delete: true}))
		Expect(s.Workflows).To(BeEmpty())
		Expect(s.ImplementationNotes[0]).To(Equal("Consider healthcare-specific requirements"))
	})

	It("falls back to a minimal template for unknown entities", func() {
		s := guidance.SuggestDocType("widgets", "", nil)

		Expect(s.DocTypeName).To(Equal("Widget"))
		Expect(s.BaseStructure.StandardFields).To(Equal([]string{"name"}))
		Expect(s.BaseStructure.Permissions).To(Equal([]string{"All"}))
		Expect(s.Permissions[0]).To(Equal(model.RolePermission{Role: "All", Read: true}))
		Expect(s.Relationships).NotTo(BeNil())
		Expect(s.CustomFields).To(BeEmpty())
		Expect(s.ImplementationNotes[0]).To(Equal("Consider general-specific requirements"))
	})

	It("adds approval workflows for documents", func() {
		Expect(guidance.SuggestDocType("invoice", "general", nil).Workflows).To(Equal([]string{"Document Approval Workflow"}))
		Expect(guidance.SuggestDocType("project", "general", nil).Workflows).To(Equal([]string{"Project Approval Workflow"}))
	})

	DescribeTable("DocTypeName",
		func(entity, want string) {
			Expect(guidance.DocTypeName(entity)).To(Equal(want))
		},
		Entry("snake case", "work_order", "Work Order"),
		Entry("plural", "customers", "Customer"),
		Entry("single letter", "s", "S"),
	)
})

var _ = Describe("RecommendProcess", func() {
	It("returns the sales template", func() {
		r := guidance.RecommendProcess("sales_process", "general")

		Expect(r.ProcessFlow[0]).To(Equal("Lead"))
		Expect(r.RequiredDocTypes).To(ContainElement("Sales Invoice"))
		Expect(r.WorkflowStates).To(Equal([]string{"Draft", "Submitted", "Approved", "Completed"}))
		Expect(r.ComplianceCheckpoints).To(BeEmpty())
	})

	It("applies healthcare customizations", func() {
		r := guidance.RecommendProcess("sales_process", "healthcare")

		Expect(r.ComplianceCheckpoints).To(Equal([]string{"Patient consent", "Insurance verification"}))
		Expect(r.AdditionalSteps).To(Equal([]string{"Insurance pre-authorization"}))
	})

	It("reports unknown processes as generic", func() {
		r := guidance.RecommendProcess("space_launch", "retail")

		Expect(r.ProcessType).To(Equal(guidance.GenericProcess))
		Expect(r.Industry).To(Equal("retail"))
		Expect(r.ProcessFlow).NotTo(BeNil())
		Expect(r.ProcessFlow).To(BeEmpty())
	})
})

var _ = Describe("BestPractices", func() {
	It("returns topic groups", func() {
		Expect(guidance.BestPractices("performance")).To(HaveKey("database"))
		Expect(guidance.BestPractices("general")).To(HaveKey("permissions"))
		Expect(guidance.BestPractices("unknown")).To(HaveKey("data_modeling"))
	})
})

var _ = Describe("ValidateFeasibility", func() {
	entities := func(types ...string) []model.EntityMatch {
		out := make([]model.EntityMatch, 0, len(types))
		for _, t := range types {
			out = append(out, model.EntityMatch{Type: t})
		}
		return out
	}

	It("rates standard requirements highly", func() {
		f := guidance.ValidateFeasibility(model.Extraction{
			Entities:          entities("customer", "order"),
			Actions:           []model.ActionMatch{{Type: "create"}, {Type: "approve"}},
			Constraints:       []model.ConstraintMatch{{Type: "validation"}},
			IntegrationPoints: []model.IntegrationPoint{{Type: "email"}},
		})

		Expect(f.OverallFeasibility).To(Equal(model.ComplexityHigh))
		Expect(f.ConfidenceScore).To(Equal(85))
		Expect(f.SupportedFeatures).To(Equal([]string{
			"Standard customer management",
			"Standard order management",
			"Create operations",
			"Approve operations",
			"Validation implementation",
			"Email integration",
		}))
		Expect(f.ChallengingFeatures).To(BeEmpty())
	})

	It("drops to medium above two challenges", func() {
		f := guidance.ValidateFeasibility(model.Extraction{
			Entities: entities("patient", "project", "contract"),
		})
		Expect(f.OverallFeasibility).To(Equal(model.ComplexityMedium))
		Expect(f.ConfidenceScore).To(Equal(65))
		Expect(f.ChallengingFeatures).To(ContainElement("Custom patient entity"))
	})

	It("drops to low above five challenges", func() {
		f := guidance.ValidateFeasibility(model.Extraction{
			Entities:          entities("patient", "project", "contract"),
			Actions:           []model.ActionMatch{{Type: "calculate"}, {Type: "generate"}},
			IntegrationPoints: []model.IntegrationPoint{{Type: "payment"}},
		})
		Expect(f.OverallFeasibility).To(Equal(model.ComplexityLow))
		Expect(f.ConfidenceScore).To(Equal(40))
		Expect(f.ChallengingFeatures).To(ContainElement("Complex payment integration"))
	})
})
