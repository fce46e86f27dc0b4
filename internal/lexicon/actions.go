package lexicon

// Actions is ordered. "create" appears under both create and generate.
var Actions = []Keywords{
	{Key: "create", Variants: []string{"create", "add", "new", "register", "setup", "establish"}},
	{Key: "read", Variants: []string{"view", "display", "show", "list", "browse", "search", "find"}},
	{Key: "update", Variants: []string{"update", "modify", "change", "edit", "revise", "adjust"}},
	{Key: "delete", Variants: []string{"delete", "remove", "cancel", "terminate", "deactivate"}},
	{Key: "process", Variants: []string{"process", "handle", "manage", "execute", "perform"}},
	{Key: "approve", Variants: []string{"approve", "authorize", "validate", "confirm", "accept"}},
	{Key: "track", Variants: []string{"track", "monitor", "follow", "observe", "record"}},
	{Key: "generate", Variants: []string{"generate", "produce", "create", "make", "build"}},
	{Key: "integrate", Variants: []string{"integrate", "connect", "link", "sync", "interface"}},
	{Key: "report", Variants: []string{"report", "analyze", "summarize", "dashboard", "metrics"}},
}

// BusinessObjects are the nouns an action can target.
var BusinessObjects = []string{"customer", "order", "product", "invoice", "report", "data"}

const (
	DefaultActionObject = "object"
	ActionObjectWindow  = 5
	ActionContextRadius = 50
)

// OperationTemplates map an action type to a platform operation; %s is the object.
var OperationTemplates = map[string]string{
	"create":   "Create new %s",
	"read":     "View %s list/form",
	"update":   "Edit %s fields",
	"delete":   "Cancel/delete %s",
	"approve":  "Workflow approval for %s",
	"track":    "Track %s status",
	"generate": "Generate %s document",
	"report":   "Create %s report",
}

// Constraints is ordered.
var Constraints = []Keywords{
	{Key: "validation", Variants: []string{"must be", "should be", "required", "mandatory", "validate"}},
	{Key: "permission", Variants: []string{"only", "access", "permission", "role", "authorized"}},
	{Key: "workflow", Variants: []string{"approval", "review", "workflow", "process", "step"}},
	{Key: "business_rule", Variants: []string{"if", "when", "unless", "condition", "rule"}},
	{Key: "limit", Variants: []string{"maximum", "minimum", "limit", "exceed", "below", "above"}},
	{Key: "timing", Variants: []string{"before", "after", "within", "deadline", "schedule"}},
}

var ConstraintHints = map[string]string{
	"validation":    "Use client/server scripts for validation",
	"permission":    "Configure role-based permissions",
	"workflow":      "Implement document workflow",
	"business_rule": "Use custom scripts or workflows",
	"limit":         "Add validation in custom scripts",
	"timing":        "Use scheduled jobs or notifications",
}

const DefaultConstraintHint = "Custom implementation required"

var (
	HighSeverityWords   = []string{"must", "required", "mandatory", "critical"}
	MediumSeverityWords = []string{"should", "recommended", "preferred"}
)

// Roles is ordered. The key doubles as the sentence filter for permissions.
var Roles = []Keywords{
	{Key: "manager", Variants: []string{"manager", "supervisor", "lead", "head", "director"}},
	{Key: "admin", Variants: []string{"admin", "administrator", "system admin"}},
	{Key: "user", Variants: []string{"user", "employee", "staff", "worker"}},
	{Key: "customer", Variants: []string{"customer", "client", "buyer"}},
	{Key: "sales", Variants: []string{"sales", "salesperson", "sales rep"}},
	{Key: "accountant", Variants: []string{"accountant", "finance", "accounting"}},
	{Key: "operator", Variants: []string{"operator", "technician", "specialist"}},
}

var RoleMapping = map[string]string{
	"manager":    "Sales Manager",
	"admin":      "System Manager",
	"user":       "Employee",
	"customer":   "Customer",
	"sales":      "Sales User",
	"accountant": "Accounts User",
	"operator":   "Stock User",
}

const DefaultMappedRole = "Employee"

var (
	PermissionKeywords  = []string{"read", "write", "create", "delete", "approve", "access", "view"}
	ResponsibilityVerbs = []string{"manage", "handle", "process", "approve", "review", "create", "update"}
)
