package lexicon

// Summary vocabularies for the context builder.
var (
	KeyPhraseTerms = []string{"management", "system", "process", "tracking", "monitoring", "analysis"}
	ActionVerbs    = []string{
		"manage", "track", "monitor", "create", "generate", "process", "handle", "maintain", "update",
		"calculate", "analyze", "report", "approve", "review", "schedule", "assign", "allocate", "integrate",
	}
	BusinessTerms = []string{
		"workflow", "approval", "inventory", "sales", "purchase", "customer", "supplier", "project",
		"task", "invoice", "payment", "quotation", "delivery", "shipment", "quality",
	}
	FallbackBusinessTerms = []string{"customer", "order", "product", "service"}
)

// Processes is ordered.
var Processes = []Keywords{
	{Key: "sales_process", Variants: []string{"sell", "sales", "selling", "revenue"}},
	{Key: "purchase_process", Variants: []string{"buy", "purchase", "procurement", "sourcing"}},
	{Key: "inventory_management", Variants: []string{"inventory", "stock", "warehouse", "storage"}},
	{Key: "customer_management", Variants: []string{"customer service", "crm", "customer relation"}},
	{Key: "project_management", Variants: []string{"project", "task", "milestone", "timeline"}},
	{Key: "hr_process", Variants: []string{"employee", "hr", "human resource", "payroll"}},
	{Key: "financial_process", Variants: []string{"accounting", "finance", "budget", "expense"}},
	{Key: "manufacturing", Variants: []string{"manufacture", "production", "assembly", "fabrication"}},
	{Key: "quality_control", Variants: []string{"quality", "inspection", "testing", "compliance"}},
	{Key: "reporting", Variants: []string{"report", "analytics", "dashboard", "metrics"}},
}

const (
	ProcessBaseConfidence  = 0.5
	ProcessMatchConfidence = 0.2
	ProcessMaxConfidence   = 1.0
)

var ProcessWorkflows = map[string][]string{
	"sales_process":      {"Lead to Quotation", "Quotation to Order", "Order to Invoice"},
	"purchase_process":   {"Request to Quotation", "Quotation to Order", "Order to Receipt"},
	"project_management": {"Project Approval", "Task Assignment", "Project Completion"},
	"hr_process":         {"Employee Onboarding", "Leave Approval", "Performance Review"},
	"financial_process":  {"Expense Approval", "Payment Authorization", "Budget Review"},
}

var DefaultProcessWorkflows = []string{"Custom Workflow"}

// TechnicalCapabilities is ordered.
var TechnicalCapabilities = []Keywords{
	{Key: "integration", Variants: []string{"integrate", "api", "connect", "sync", "import", "export"}},
	{Key: "automation", Variants: []string{"automate", "automatic", "trigger", "workflow"}},
	{Key: "reporting", Variants: []string{"report", "dashboard", "analytics", "chart", "graph"}},
	{Key: "mobile", Variants: []string{"mobile", "app", "smartphone", "tablet"}},
	{Key: "email", Variants: []string{"email", "notification", "alert", "remind"}},
	{Key: "permissions", Variants: []string{"permission", "role", "access", "security", "approval"}},
	{Key: "customization", Variants: []string{"custom", "customize", "specific", "unique"}},
	{Key: "performance", Variants: []string{"fast", "quick", "performance", "speed", "efficient"}},
}

var HighPriorityCapabilities = map[string]bool{"integration": true, "automation": true}

// Industries is checked in order; the first with any keyword wins.
var Industries = []Keywords{
	{Key: "manufacturing", Variants: []string{"manufacture", "production", "factory", "assembly"}},
	{Key: "retail", Variants: []string{"retail", "store", "shop", "customer"}},
	{Key: "services", Variants: []string{"service", "consulting", "support"}},
	{Key: "healthcare", Variants: []string{"patient", "medical", "hospital", "clinic"}},
	{Key: "education", Variants: []string{"student", "course", "school", "university"}},
	{Key: "technology", Variants: []string{"software", "development", "tech", "digital"}},
}

const DefaultIndustry = "general"

var IndustryPatterns = map[string][]string{
	"manufacturing": {"Bill of Materials", "Work Orders", "Quality Control"},
	"retail":        {"Point of Sale", "Inventory Management", "Customer Loyalty"},
	"services":      {"Time Tracking", "Project Billing", "Service Contracts"},
	"healthcare":    {"Patient Records", "Appointment Scheduling", "Medical Billing"},
	"education":     {"Student Information", "Course Management", "Fee Management"},
}

var DefaultIndustryPatterns = []string{"Standard Business Processes"}

var (
	BaseModules     = []string{"Custom DocTypes", "Workflows", "Reports"}
	IndustryModules = map[string][]string{
		"manufacturing": {"Manufacturing", "Stock", "Quality Management"},
		"retail":        {"Stock", "POS", "CRM"},
		"services":      {"Projects", "Timesheet", "CRM"},
		"healthcare":    {"Healthcare", "CRM", "HR"},
		"education":     {"Education", "HR", "CRM"},
	}
	KeywordModules = []Keywords{
		{Key: "Accounting", Variants: []string{"accounting", "finance"}},
		{Key: "HR", Variants: []string{"hr", "employee"}},
		{Key: "Buying", Variants: []string{"purchase"}},
		{Key: "Selling", Variants: []string{"sales"}},
	}
)

var IndustryBestPractices = map[string][]string{
	"manufacturing": {"Implement proper BOM management", "Set up quality control workflows", "Track production costs accurately"},
	"retail":        {"Maintain accurate inventory levels", "Implement customer loyalty programs", "Use barcode scanning for efficiency"},
	"services":      {"Track time and expenses per project", "Implement service level agreements", "Automate billing processes"},
}

var DefaultBestPractices = []string{"Follow ERPNext best practices", "Implement proper user permissions", "Set up regular data backups"}

// ComplexityIndicator marks a keyword as raising assessed complexity.
type ComplexityIndicator struct {
	Keyword string
	Level   string
}

var ComplexityIndicators = []ComplexityIndicator{
	{Keyword: "integration", Level: "high"},
	{Keyword: "workflow", Level: "medium"},
	{Keyword: "custom", Level: "high"},
	{Keyword: "report", Level: "low"},
	{Keyword: "dashboard", Level: "medium"},
	{Keyword: "automation", Level: "high"},
	{Keyword: "approval", Level: "medium"},
}

const (
	EntityScoreWeight    = 10
	EntityScoreCap       = 50
	ProcessScoreWeight   = 15
	ProcessScoreCap      = 45
	WordScoreCap         = 30
	HighIndicatorBonus   = 25
	MediumIndicatorBonus = 15
	HighComplexityAt     = 80
	MediumComplexityAt   = 40
)

var EstimatedEffort = map[string]string{
	"low":    "1-2 weeks",
	"medium": "3-6 weeks",
	"high":   "2-4 months",
}

const DefaultEstimatedEffort = "2-4 weeks"

var RecommendedApproach = map[string]string{
	"low":    "Start with basic DocTypes and simple workflows",
	"medium": "Implement in phases, starting with core functionality",
	"high":   "Detailed planning required, consider modular implementation",
}

const DefaultRecommendedApproach = "Standard implementation approach"
