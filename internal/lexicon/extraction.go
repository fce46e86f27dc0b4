package lexicon

// DataFlowPatterns are matched case-insensitively against the original text.
// Group 1 and 2 become source and target.
var DataFlowPatterns = []string{
	`from\s+([\p{L}\p{N}_]+)\s+to\s+([\p{L}\p{N}_]+)`,
	`([\p{L}\p{N}_]+)\s+sends?\s+([\p{L}\p{N}_]+)`,
	`([\p{L}\p{N}_]+)\s+receives?\s+([\p{L}\p{N}_]+)`,
	`transfer\s+([\p{L}\p{N}_]+)\s+to\s+([\p{L}\p{N}_]+)`,
	`import\s+([\p{L}\p{N}_]+)\s+from\s+([\p{L}\p{N}_]+)`,
}

// BusinessRulePatterns capture a condition and, where present, an action.
var BusinessRulePatterns = []string{
	`if\s+(.+?)\s+then\s+(.+?)(?:\.|$)`,
	`when\s+(.+?),\s*(.+?)(?:\.|$)`,
	`unless\s+(.+?),\s*(.+?)(?:\.|$)`,
	`condition:\s*(.+?)(?:\.|$)`,
	`rule:\s*(.+?)(?:\.|$)`,
}

// RuleImplementations is checked in order against the rule's action text.
var RuleImplementations = []Keywords{
	{Key: "Implement as workflow transition", Variants: []string{"approve"}},
	{Key: "Use custom script for calculation", Variants: []string{"calculate"}},
	{Key: "Add validation in DocType script", Variants: []string{"validate"}},
}

const DefaultRuleImplementation = "Implement as custom script or workflow"

// IntegrationDef describes one class of external system.
type IntegrationDef struct {
	Type       string
	Pattern    string
	Complexity string
	Approach   string
}

var Integrations = []IntegrationDef{
	{Type: "api", Pattern: `api|rest|soap|web service`, Complexity: "medium", Approach: "Use REST API or webhooks"},
	{Type: "database", Pattern: `database|db|sql|mysql|postgres`, Complexity: "high", Approach: "Direct database connection or ETL"},
	{Type: "email", Pattern: `email|smtp|mail|notification`, Complexity: "low", Approach: "SMTP configuration or email API"},
	{Type: "payment", Pattern: `payment|gateway|stripe|paypal`, Complexity: "high", Approach: "Payment gateway integration"},
	{Type: "accounting", Pattern: `accounting|quickbooks|tally`, Complexity: "high", Approach: "Data sync or API integration"},
	{Type: "erp", Pattern: `sap|oracle|erp|system`, Complexity: "high", Approach: "Custom connector or middleware"},
	{Type: "file", Pattern: `import|export|csv|excel|pdf`, Complexity: "low", Approach: "File import/export utilities"},
}

// ModuleKeywords map platform modules to the words that suggest them.
var ModuleKeywords = []Keywords{
	{Key: "Selling", Variants: []string{"sales", "customer", "quotation", "order"}},
	{Key: "Buying", Variants: []string{"purchase", "supplier", "procurement"}},
	{Key: "Stock", Variants: []string{"inventory", "warehouse", "item", "stock"}},
	{Key: "Accounts", Variants: []string{"accounting", "invoice", "payment", "financial"}},
	{Key: "CRM", Variants: []string{"lead", "opportunity", "customer relationship"}},
	{Key: "Projects", Variants: []string{"project", "task", "timesheet"}},
	{Key: "HR", Variants: []string{"employee", "payroll", "leave", "attendance"}},
	{Key: "Manufacturing", Variants: []string{"production", "bom", "work order"}},
	{Key: "Quality Management", Variants: []string{"quality", "inspection", "testing"}},
}

// Suggested features, each keyed by the words that trigger it.
var FeatureSuggestions = []Keywords{
	{Key: "Document Approval Workflow", Variants: []string{"approval", "review", "workflow", "process"}},
	{Key: "Custom Reports", Variants: []string{"report", "analytics", "dashboard", "summary"}},
	{Key: "Custom Fields and Scripts", Variants: []string{"custom", "specific", "unique", "special"}},
}

// Sentence classifiers for requirement components.
var (
	FunctionalMarkers    = []string{"should", "must", "will", "need to", "able to"}
	StoryPrefix          = "as a"
	StoryWants           = []string{"i want", "i need"}
	ObjectiveMarkers     = []string{"goal", "objective", "achieve", "improve", "increase"}
	TechnicalMarkers     = []string{"integrate", "performance", "secure", "fast", "api"}
	MinimalBusinessTerms = []string{"customer", "order", "product", "invoice"}
)

// Confidence and complexity weights for a parse.
const (
	EntityConfidenceStep  = 20
	ActionConfidenceStep  = 15
	OverallConfidenceStep = 10
	ConfidenceCap         = 100

	EntityComplexityWeight      = 10
	ActionComplexityWeight      = 5
	ConstraintComplexityWeight  = 15
	IntegrationComplexityWeight = 20
	HighComplexityScore         = 100
	MediumComplexityScore       = 50
)
