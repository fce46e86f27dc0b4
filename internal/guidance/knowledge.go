package guidance

import "basegraph.app/blueprint/internal/model"

const DefaultIndustry = "general"

var industryPatterns = map[string]model.IndustryPatterns{
	"manufacturing": {
		KeyEntities: []string{"bom", "work_order", "production_plan", "quality_inspection"},
		Processes:   []string{"production", "quality_control", "inventory_planning"},
		Compliance:  []string{"iso_9001", "quality_standards"},
		Metrics:     []string{"oee", "yield", "cycle_time", "defect_rate"},
	},
	"retail": {
		KeyEntities: []string{"pos_profile", "price_list", "promotion", "loyalty_program"},
		Processes:   []string{"point_of_sale", "inventory_management", "customer_loyalty"},
		Compliance:  []string{"tax_compliance", "retail_regulations"},
		Metrics:     []string{"sales_per_sqft", "inventory_turnover", "customer_lifetime_value"},
	},
	"healthcare": {
		KeyEntities: []string{"patient", "appointment", "medical_record", "prescription"},
		Processes:   []string{"patient_management", "appointment_scheduling", "billing"},
		Compliance:  []string{"hipaa", "medical_regulations"},
		Metrics:     []string{"patient_satisfaction", "appointment_utilization", "revenue_per_patient"},
	},
	"services": {
		KeyEntities: []string{"service_contract", "timesheet", "expense_claim", "project_billing"},
		Processes:   []string{"project_management", "time_tracking", "billing"},
		Compliance:  []string{"service_agreements", "professional_standards"},
		Metrics:     []string{"utilization_rate", "project_profitability", "client_satisfaction"},
	},
	"education": {
		KeyEntities: []string{"student", "course", "instructor", "fee_structure"},
		Processes:   []string{"admission", "course_management", "fee_collection"},
		Compliance:  []string{"education_regulations", "accreditation"},
		Metrics:     []string{"enrollment_rate", "completion_rate", "revenue_per_student"},
	},
	DefaultIndustry: {
		KeyEntities: []string{"customer", "supplier", "item", "sales_order"},
		Processes:   []string{"sales", "purchase", "inventory"},
		Compliance:  []string{"tax_regulations", "financial_reporting"},
		Metrics:     []string{"revenue", "profit_margin", "customer_satisfaction"},
	},
}

var recommendedModules = map[string][]string{
	"manufacturing": {"Manufacturing", "Stock", "Quality Management", "Projects"},
	"retail":        {"Stock", "POS", "CRM", "Website"},
	"healthcare":    {"Healthcare", "CRM", "Accounts"},
	"services":      {"Projects", "CRM", "Timesheet", "Accounts"},
	"education":     {"Education", "HR", "Accounts", "Website"},
	DefaultIndustry: {"CRM", "Sales", "Purchase", "Stock", "Accounts"},
}

var commonDocTypes = map[string][]string{
	"manufacturing": {"BOM", "Work Order", "Production Plan", "Quality Inspection"},
	"retail":        {"POS Profile", "Price List", "Loyalty Program", "Coupon Code"},
	"healthcare":    {"Patient", "Healthcare Practitioner", "Patient Appointment"},
	"services":      {"Project", "Timesheet", "Expense Claim", "Activity Type"},
	"education":     {"Student", "Course", "Program", "Instructor"},
	DefaultIndustry: {"Customer", "Supplier", "Item", "Sales Order"},
}

var typicalWorkflows = map[string][]string{
	"manufacturing": {"Production Order Approval", "Quality Inspection Approval"},
	"retail":        {"Price Change Approval", "Promotion Approval"},
	"healthcare":    {"Patient Admission Approval", "Treatment Plan Approval"},
	"services":      {"Project Approval", "Expense Approval"},
	"education":     {"Student Admission Approval", "Course Approval"},
	DefaultIndustry: {"Sales Order Approval", "Purchase Order Approval"},
}

var industryPractices = map[string][]string{
	"manufacturing": {
		"Implement proper BOM management",
		"Use batch/serial number tracking",
		"Set up quality control processes",
		"Track production costs accurately",
	},
	"retail": {
		"Implement barcode scanning",
		"Set up loyalty programs",
		"Use real-time inventory tracking",
		"Integrate with POS systems",
	},
	"healthcare": {
		"Ensure patient data privacy",
		"Implement appointment scheduling",
		"Track medical history properly",
		"Comply with healthcare regulations",
	},
}

var defaultIndustryPractices = []string{
	"Follow ERPNext standard practices",
	"Implement proper user training",
	"Regular system backups",
	"Monitor system performance",
}

var compliance = map[string][]string{
	"manufacturing": {"ISO 9001", "Safety regulations", "Environmental standards"},
	"retail":        {"Tax compliance", "Consumer protection laws", "Labor regulations"},
	"healthcare":    {"HIPAA", "Medical device regulations", "Patient safety standards"},
	"services":      {"Professional licensing", "Service agreements", "Data protection"},
	"education":     {"Education regulations", "Student privacy laws", "Accreditation requirements"},
}

var defaultCompliance = []string{"Tax regulations", "Financial reporting", "Data protection"}

var integrations = map[string][]string{
	"manufacturing": {"MES systems", "Quality management systems", "CAD systems"},
	"retail":        {"POS systems", "E-commerce platforms", "Payment gateways"},
	"healthcare":    {"EMR systems", "Medical devices", "Insurance systems"},
	"services":      {"Time tracking tools", "Project management tools", "Communication platforms"},
	"education":     {"LMS systems", "Student portals", "Payment gateways"},
}

var defaultIntegrations = []string{"Email systems", "Payment gateways", "Reporting tools"}

type processTemplate struct {
	flow           []string
	docTypes       []string
	workflowStates []string
	automation     []string
	metrics        []string
}

var processes = map[string]processTemplate{
	"sales_process": {
		flow:           []string{"Lead", "Opportunity", "Quotation", "Sales Order", "Delivery", "Invoice", "Payment"},
		docTypes:       []string{"Lead", "Opportunity", "Quotation", "Sales Order", "Delivery Note", "Sales Invoice"},
		workflowStates: []string{"Draft", "Submitted", "Approved", "Completed"},
		automation:     []string{"Auto-create delivery from order", "Auto-invoice on delivery"},
		metrics:        []string{"Conversion rate", "Sales cycle time", "Average deal size"},
	},
	"purchase_process": {
		flow:           []string{"Purchase Request", "Supplier Quotation", "Purchase Order", "Receipt", "Invoice", "Payment"},
		docTypes:       []string{"Request for Quotation", "Supplier Quotation", "Purchase Order", "Purchase Receipt", "Purchase Invoice"},
		workflowStates: []string{"Draft", "Pending Approval", "Approved", "Completed"},
		automation:     []string{"Auto-create receipt from order", "Three-way matching"},
		metrics:        []string{"Purchase cycle time", "Cost savings", "Supplier performance"},
	},
	"inventory_process": {
		flow:           []string{"Item Creation", "Stock Entry", "Stock Movement", "Stock Reconciliation"},
		docTypes:       []string{"Item", "Stock Entry", "Stock Ledger Entry", "Bin"},
		workflowStates: []string{"Active", "Disabled"},
		automation:     []string{"Auto reorder", "Batch tracking", "Serial number tracking"},
		metrics:        []string{"Stock turnover", "Carrying cost", "Stockout frequency"},
	},
	"hr_process": {
		flow:           []string{"Recruitment", "Onboarding", "Performance", "Payroll", "Exit"},
		docTypes:       []string{"Employee", "Attendance", "Salary Slip", "Leave Application"},
		workflowStates: []string{"Active", "On Leave", "Inactive"},
		automation:     []string{"Auto attendance", "Salary processing", "Leave allocation"},
		metrics:        []string{"Employee turnover", "Satisfaction score", "Productivity"},
	},
}

// GenericProcess is reported for process types without a template.
const GenericProcess = "generic"

type processCustomization struct {
	compliance      []string
	additionalSteps []string
}

// processCustomizations is keyed by process type, then industry.
var processCustomizations = map[string]map[string]processCustomization{
	"sales_process": {
		"healthcare": {
			compliance:      []string{"Patient consent", "Insurance verification"},
			additionalSteps: []string{"Insurance pre-authorization"},
		},
	},
}

var bestPractices = map[string]model.BestPractices{
	DefaultIndustry: {
		"data_modeling": {
			"Use standard DocTypes when possible",
			"Create custom fields before custom DocTypes",
			"Maintain proper naming conventions",
			"Plan for data relationships early",
		},
		"permissions": {
			"Follow principle of least privilege",
			"Use role-based access control",
			"Test permissions thoroughly",
			"Document permission structure",
		},
		"workflows": {
			"Keep workflows simple and intuitive",
			"Define clear states and transitions",
			"Include proper approval hierarchies",
			"Test all workflow paths",
		},
		"customization": {
			"Minimize core modifications",
			"Use hooks and events properly",
			"Document all customizations",
			"Plan for future upgrades",
		},
	},
	"performance": {
		"database": {
			"Index frequently queried fields",
			"Optimize report queries",
			"Use proper field types",
			"Regular database maintenance",
		},
		"ui": {
			"Minimize custom scripts",
			"Optimize page load times",
			"Use appropriate field types",
			"Implement proper caching",
		},
	},
}

var docTypeTemplates = map[string]model.DocTypeTemplate{
	"customer": {
		StandardFields:     []string{"customer_name", "customer_type", "territory", "customer_group"},
		CommonCustomFields: []string{"credit_limit", "payment_terms", "tax_id"},
		Relationships:      []string{"Address", "Contact", "Sales Order"},
		Permissions:        []string{"Sales User", "Sales Manager", "Accounts User"},
	},
	"product": {
		StandardFields:     []string{"item_name", "item_group", "stock_uom", "is_stock_item"},
		CommonCustomFields: []string{"brand", "manufacturer", "warranty_period"},
		Relationships:      []string{"Item Price", "Stock Ledger Entry", "BOM"},
		Permissions:        []string{"Stock User", "Stock Manager", "Item Manager"},
	},
	"order": {
		StandardFields:     []string{"customer", "delivery_date", "total", "status"},
		CommonCustomFields: []string{"priority", "special_instructions", "source"},
		Relationships:      []string{"Sales Order Item", "Delivery Note", "Sales Invoice"},
		Permissions:        []string{"Sales User", "Sales Manager"},
	},
}

func defaultDocTypeTemplate() model.DocTypeTemplate {
	return model.DocTypeTemplate{
		StandardFields:     []string{"name"},
		CommonCustomFields: []string{},
		Relationships:      []string{},
		Permissions:        []string{"All"},
	}
}

// industryFields is keyed by industry, then entity.
var industryFields = map[string]map[string][]string{
	"healthcare":    {"customer": {"medical_record_number", "insurance_provider"}},
	"manufacturing": {"product": {"specifications", "quality_parameters"}},
}

var fieldTypes = map[string]string{
	"email":       "Data",
	"phone":       "Data",
	"date":        "Date",
	"amount":      "Currency",
	"status":      "Select",
	"description": "Text Editor",
	"type":        "Select",
	"address":     "Small Text",
}

var requiredFields = map[string]bool{"name": true, "email": true}

var entityLinks = map[string][]model.DocTypeLink{
	"customer": {
		{With: "Address", Type: "Table"},
		{With: "Contact", Type: "Table"},
		{With: "Sales Order", Type: "Link"},
	},
	"product": {
		{With: "Item Price", Type: "Table"},
		{With: "Stock Ledger Entry", Type: "Link"},
	},
	"order": {
		{With: "Sales Order Item", Type: "Table"},
		{With: "Customer", Type: "Link"},
	},
}

var entityPermissions = map[string][]model.RolePermission{
	"customer": {
		{Role: "Sales User", Read: true, Write: true, Create: true},
		{Role: "Sales Manager", Read: true, Write: true, Create: true, Delete: true},
	},
	"product": {
		{Role: "Stock User", Read: true, Write: true, Create: true},
		{Role: "Item Manager", Read: true, Write: true, Create: true, Delete: true},
	},
}

var defaultPermissions = []model.RolePermission{
	{Role: "All", Read: true},
	{Role: "System Manager", Read: true, Write: true, Create: true, Delete: true},
}

var entityWorkflows = map[string][]string{
	"order":     {"Document Approval Workflow"},
	"invoice":   {"Document Approval Workflow"},
	"quotation": {"Document Approval Workflow"},
	"project":   {"Project Approval Workflow"},
}

// Feasibility vocabularies. Anything outside them counts as a challenge.
var (
	standardEntities     = []string{"customer", "supplier", "item", "order", "invoice"}
	standardActions      = []string{"create", "read", "update", "delete", "approve", "track"}
	standardConstraints  = []string{"validation", "permission", "workflow"}
	standardIntegrations = []string{"email", "file", "api"}
)

const (
	highFeasibilityConfidence   = 85
	mediumFeasibilityConfidence = 65
	lowFeasibilityConfidence    = 40

	// More challenges than these thresholds lower feasibility.
	mediumChallengeThreshold = 2
	lowChallengeThreshold    = 5
)
