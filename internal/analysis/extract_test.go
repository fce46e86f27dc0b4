package analysis_test

import (
	"basegraph.app/blueprint/internal/analysis"
	"basegraph.app/blueprint/internal/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func entityTypes(entities []model.EntityMatch) []string {
	types := make([]string, 0, len(entities))
	for _, e := range entities {
		types = append(types, e.Type)
	}
	return types
}

func actionTypes(actions []model.ActionMatch) []string {
	types := make([]string, 0, len(actions))
	for _, a := range actions {
		types = append(types, a.Type)
	}
	return types
}

var _ = Describe("Segment", func() {
	It("splits on runs of terminal punctuation and trims", func() {
		Expect(analysis.Segment("Create orders. Track invoices!! Why? ")).
			To(Equal([]string{"Create orders", "Track invoices", "Why"}))
	})

	It("splits decimals like any other boundary", func() {
		Expect(analysis.Segment("Limit is 2.5 units")).To(Equal([]string{"Limit is 2", "5 units"}))
	})

	It("returns an empty list for blank input", func() {
		Expect(analysis.Segment("")).To(BeEmpty())
		Expect(analysis.Segment(" ... ")).To(BeEmpty())
	})
})

var _ = Describe("ExtractEntities", func() {
	It("orders customer, order, invoice by base priority", func() {
		entities := analysis.ExtractEntities("I need to manage customers and track orders and generate invoices")

		Expect(entityTypes(entities)).To(Equal([]string{"customer", "order", "invoice"}))
		Expect(entities[0].Priority).To(Equal(95))
		Expect(entities[1].Priority).To(Equal(85))
		Expect(entities[2].Priority).To(Equal(80))
		Expect(entities[0].MatchedVariants).To(Equal([]string{"customer"}))
		Expect(entities[0].SuggestedDocType).To(Equal("Customer"))
		Expect(entities[0].DisplayName).To(Equal("Customer"))
	})

	It("counts plural and variant forms under one type", func() {
		entities := analysis.ExtractEntities("Clients and buyers. A customer.")

		Expect(entities).To(HaveLen(1))
		Expect(entities[0].Occurrences).To(Equal(3))
		Expect(entities[0].MatchedVariants).To(Equal([]string{"client", "buyer", "customer"}))
	})

	It("grants whole-text attributes to every entity", func() {
		entities := analysis.ExtractEntities("Customers have an email. Orders ship.")

		Expect(entities).To(HaveLen(2))
		for _, e := range entities {
			Expect(e.ContextAttributes).To(Equal([]string{"email"}))
		}
		Expect(entities[0].Priority).To(Equal(90 + 5 + 3))
	})

	It("keeps table order for equal priorities", func() {
		entities := analysis.ExtractEntities("a summary")

		Expect(entityTypes(entities)).To(Equal([]string{"report", "dashboard"}))
		Expect(entities[0].Priority).To(Equal(entities[1].Priority))
	})

	It("always returns non-increasing priorities", func() {
		entities := analysis.ExtractEntities(
			"Projects have tasks. Suppliers send products. Employees raise invoices for each order and payment.")

		Expect(len(entities)).To(BeNumerically(">", 3))
		for i := 1; i < len(entities); i++ {
			Expect(entities[i-1].Priority).To(BeNumerically(">=", entities[i].Priority))
		}
	})

	It("returns nothing for empty text", func() {
		Expect(analysis.ExtractEntities("")).To(BeEmpty())
	})

	It("treats accented letters as part of a word", func() {
		Expect(analysis.ExtractEntities("Le écustomer et l'orderé")).To(BeEmpty())

		entities := analysis.ExtractEntities("Über customer, naïve order")
		Expect(entities).To(HaveLen(2))
	})
})

var _ = Describe("EntityPriority", func() {
	It("strictly increases with occurrences", func() {
		for n := 1; n < 10; n++ {
			Expect(analysis.EntityPriority("order", n+1, 2)).To(BeNumerically(">", analysis.EntityPriority("order", n, 2)))
		}
	})

	It("defaults the base for unlisted types", func() {
		Expect(analysis.EntityPriority("contract", 1, 0)).To(Equal(55))
		Expect(analysis.EntityPriority("unknown", 0, 0)).To(Equal(50))
	})
})

var _ = Describe("ExtractActions", func() {
	It("detects manage, track and generate", func() {
		actions := analysis.ExtractActions("I need to manage customers and track orders and generate invoices")

		Expect(actionTypes(actions)).To(Equal([]string{"process", "track", "generate"}))
		Expect(actions[0].Verb).To(Equal("manage"))
		Expect(actions[1].Object).To(Equal("object"))
		Expect(actions[1].MappedOperation).To(Equal("Track object status"))
	})

	It("keeps every occurrence and finds the object", func() {
		actions := analysis.ExtractActions("create a customer and create an order")

		var creates []model.ActionMatch
		for _, a := range actions {
			if a.Type == "create" {
				creates = append(creates, a)
			}
		}
		Expect(creates).To(HaveLen(2))
		Expect(creates[0].Position).To(Equal(0))
		Expect(creates[0].Object).To(Equal("customer"))
		Expect(creates[0].MappedOperation).To(Equal("Create new customer"))
		Expect(creates[1].Position).To(Equal(22))
		Expect(creates[1].Object).To(Equal("order"))

		Expect(actionTypes(actions)).To(Equal([]string{"create", "create", "generate", "generate"}))
	})

	It("captures a bounded context window", func() {
		long := "Lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod " +
			"approve the invoice " +
			"tempor incididunt ut labore et dolore magna aliqua ut enim ad minim veniam"
		actions := analysis.ExtractActions(long)

		Expect(actions).NotTo(BeEmpty())
		Expect(len(actions[0].Context)).To(BeNumerically("<=", 50+len("approve")+50))
		Expect(actions[0].Object).To(Equal("invoice"))
	})
})

var _ = Describe("MapOperation", func() {
	It("falls back to type and object", func() {
		Expect(analysis.MapOperation("integrate", "data")).To(Equal("integrate data"))
		Expect(analysis.MapOperation("approve", "order")).To(Equal("Workflow approval for order"))
	})
})

var _ = Describe("ExtractConstraints", func() {
	It("grades a required approval as high severity", func() {
		constraints := analysis.ExtractConstraints(analysis.Segment("Approval required when order exceeds $1000"))

		types := make([]string, 0, len(constraints))
		for _, c := range constraints {
			types = append(types, c.Type)
			Expect(c.Severity).To(Equal(model.SeverityHigh))
			Expect(c.Description).To(Equal("Approval required when order exceeds $1000"))
		}
		Expect(types).To(Equal([]string{"validation", "workflow", "business_rule"}))
		Expect(constraints[0].ImplementationHint).To(Equal("Use client/server scripts for validation"))
	})

	It("scopes matching to single sentences", func() {
		constraints := analysis.ExtractConstraints(analysis.Segment("Only managers. Ship before noon"))

		Expect(constraints).To(HaveLen(2))
		Expect(constraints[0].Type).To(Equal("permission"))
		Expect(constraints[0].Description).To(Equal("Only managers"))
		Expect(constraints[1].Type).To(Equal("timing"))
	})

	DescribeTable("ConstraintSeverity",
		func(sentence string, want model.Severity) {
			Expect(analysis.ConstraintSeverity(sentence)).To(Equal(want))
		},
		Entry("must", "It must ship", model.SeverityHigh),
		Entry("critical", "A critical limit", model.SeverityHigh),
		Entry("should", "It should ship", model.SeverityMedium),
		Entry("preferred", "Email is preferred", model.SeverityMedium),
		Entry("no marker", "It ships", model.SeverityLow),
	)
})

var _ = Describe("ExtractRoles", func() {
	It("derives permissions only from sentences naming the role", func() {
		text := "The manager must approve every order. Staff can view reports."
		roles := analysis.ExtractRoles(text, analysis.Segment(text))

		Expect(roles).To(HaveLen(2))

		manager := roles[0]
		Expect(manager.Name).To(Equal("Manager"))
		Expect(manager.MappedRole).To(Equal("Sales Manager"))
		Expect(manager.Permissions).To(Equal([]string{"approve"}))
		Expect(manager.Responsibilities).To(ConsistOf("Manage related tasks", "Approve related tasks"))

		user := roles[1]
		Expect(user.Key).To(Equal("user"))
		Expect(user.MappedRole).To(Equal("Employee"))
		Expect(user.Permissions).To(BeEmpty())
	})
})

var _ = Describe("ExtractDataFlows", func() {
	It("matches the flow phrasings in pattern order", func() {
		flows := analysis.ExtractDataFlows("Orders flow from warehouse to store. The ERP sends invoices.")

		Expect(flows).To(HaveLen(2))
		Expect(flows[0]).To(Equal(model.DataFlow{
			Source: "warehouse", Target: "store", Type: "data_transfer", Context: "from warehouse to store",
		}))
		Expect(flows[1].Source).To(Equal("ERP"))
		Expect(flows[1].Target).To(Equal("invoices"))
	})

	It("captures names with accented letters", func() {
		flows := analysis.ExtractDataFlows("Ship from Zürich to Köln")

		Expect(flows).To(HaveLen(1))
		Expect(flows[0].Source).To(Equal("Zürich"))
		Expect(flows[0].Target).To(Equal("Köln"))
	})
})

var _ = Describe("ExtractBusinessRules", func() {
	It("captures conditions and actions", func() {
		rules := analysis.ExtractBusinessRules("If stock is low then reorder items. Condition: manager must approve.")

		Expect(rules).To(HaveLen(2))
		Expect(rules[0].Condition).To(Equal("stock is low"))
		Expect(rules[0].Action).To(Equal("reorder items"))
		Expect(rules[0].Implementation).To(Equal("Implement as custom script or workflow"))
		Expect(rules[1].Condition).To(Equal("manager must approve"))
		Expect(rules[1].Action).To(BeEmpty())
	})

	It("suggests a workflow transition for approvals", func() {
		rules := analysis.ExtractBusinessRules("When the total exceeds budget, finance must approve.")

		Expect(rules).To(HaveLen(1))
		Expect(rules[0].Action).To(Equal("finance must approve"))
		Expect(rules[0].Implementation).To(Equal("Implement as workflow transition"))
	})
})

var _ = Describe("ExtractIntegrationPoints", func() {
	It("lists each matching integration class once", func() {
		points := analysis.ExtractIntegrationPoints("Sync with QuickBooks and send email notifications via the API")

		types := make([]string, 0, len(points))
		for _, p := range points {
			types = append(types, p.Type)
		}
		Expect(types).To(Equal([]string{"api", "email", "accounting"}))
		Expect(points[0].Complexity).To(Equal(model.ComplexityMedium))
		Expect(points[0].Description).To(Equal("Integration with api systems"))
	})
})

var _ = Describe("ExtractComponents", func() {
	It("buckets sentences", func() {
		c := analysis.ExtractComponents(analysis.Segment(
			"As a manager, I want to approve orders. The system must integrate with the API. Improve sales."))

		Expect(c.UserStories).To(Equal([]string{"As a manager, I want to approve orders"}))
		Expect(c.TechnicalConstraints).To(Equal([]string{"The system must integrate with the API"}))
		Expect(c.BusinessObjectives).To(Equal([]string{"Improve sales"}))
		Expect(c.FunctionalRequirements).To(HaveLen(3))
		Expect(c.NonFunctionalRequirements).To(BeEmpty())
	})

	It("lists a non-technical sentence with a marker twice", func() {
		c := analysis.ExtractComponents([]string{"Users must log in"})
		Expect(c.FunctionalRequirements).To(Equal([]string{"Users must log in", "Users must log in"}))
	})

	It("lists a technical sentence with a marker once", func() {
		c := analysis.ExtractComponents([]string{"Checkout must be fast"})
		Expect(c.FunctionalRequirements).To(Equal([]string{"Checkout must be fast"}))
		Expect(c.TechnicalConstraints).To(Equal([]string{"Checkout must be fast"}))
	})
})

var _ = Describe("Suggest", func() {
	It("maps keywords to modules and features", func() {
		text := "Track sales orders and approval workflow with a custom dashboard"
		s := analysis.Suggest(text, analysis.ExtractEntities(text))

		Expect(s.Modules).To(Equal([]string{"Selling"}))
		Expect(s.Workflows).To(Equal([]string{"Document Approval Workflow"}))
		Expect(s.Reports).To(Equal([]string{"Custom Reports"}))
		Expect(s.Customizations).To(Equal([]string{"Custom Fields and Scripts"}))
	})

	It("lists each doctype once", func() {
		text := "product and service"
		s := analysis.Suggest(text, analysis.ExtractEntities(text))
		Expect(s.DocTypes).To(Equal([]string{"Item"}))
	})
})

var _ = Describe("scoring", func() {
	It("caps confidence at 100", func() {
		Expect(analysis.ScoreConfidence(6, 2)).To(Equal(model.Confidence{Entities: 100, Actions: 30, Overall: 80}))
	})

	It("weighs implementation factors", func() {
		c := analysis.ScoreImplementation(model.ImplementationFactors{Entities: 2, Actions: 3, Constraints: 1, Integrations: 1})
		Expect(c.Score).To(Equal(70))
		Expect(c.Level).To(Equal(model.ComplexityMedium))

		Expect(analysis.ScoreImplementation(model.ImplementationFactors{Integrations: 5}).Level).To(Equal(model.ComplexityHigh))
		Expect(analysis.ScoreImplementation(model.ImplementationFactors{}).Level).To(Equal(model.ComplexityLow))
	})
})
