package assistant

import (
	"strings"

	"basegraph.app/blueprint/internal/model"
)

// mockReply answers by keyword: requirement analysis, DocType design, or
// general guidance.
func mockReply(userPrompt string) model.AssistantReply {
	lower := strings.ToLower(userPrompt)

	switch {
	case strings.Contains(lower, "requirement") || strings.Contains(lower, "analyze"):
		return model.AssistantReply{
			Success: true,
			Response: map[string]any{
				"analysis": map[string]any{
					"business_entities": []string{"Customer", "Product", "Order"},
					"suggested_doctypes": []map[string]any{{
						"name":          "Custom Customer",
						"fields":        []string{"customer_name", "email", "phone", "address"},
						"relationships": []string{"linked to Orders"},
					}},
					"workflows":        []string{"Order Approval", "Customer Onboarding"},
					"complexity":       "medium",
					"estimated_effort": "2-3 weeks",
				},
			},
			Reasoning: "Based on the requirement analysis, I've identified key business entities and suggested a structure for your ERPNext application.",
		}

	case strings.Contains(lower, "doctype"):
		return model.AssistantReply{
			Success: true,
			Response: map[string]any{
				"doctype_design": map[string]any{
					"name": "Custom DocType",
					"fields": []model.CustomField{
						{FieldName: "title", FieldType: "Data", Label: "Title", Required: true},
						{FieldName: "description", FieldType: "Text Editor", Label: "Description"},
						{FieldName: "status", FieldType: "Select", Label: "Status"},
					},
					"permissions": []model.RolePermission{
						{Role: "System Manager", Read: true, Write: true, Create: true, Delete: true},
						{Role: "User", Read: true, Write: true, Create: true},
					},
				},
			},
			Reasoning: "This DocType design follows ERPNext best practices with appropriate field types and permissions.",
		}

	default:
		return model.AssistantReply{
			Success: true,
			Response: map[string]any{
				"general_guidance": "I can help you build ERPNext applications. Please provide more specific requirements about what you'd like to build.",
			},
			Reasoning: "Ready to assist with your ERPNext application development needs.",
		}
	}
}
