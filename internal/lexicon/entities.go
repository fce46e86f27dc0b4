package lexicon

// EntityDef describes one business entity type.
type EntityDef struct {
	Type               string
	Variants           []string
	StandardAttributes []string
	DocType            string
}

// DefaultEntityPriority applies to entity types without a base weight.
const DefaultEntityPriority = 50

const (
	OccurrenceWeight = 5
	AttributeWeight  = 3
)

// Entities is ordered; ties in priority keep this order.
var Entities = []EntityDef{
	{Type: "customer", Variants: []string{"customer", "client", "buyer", "purchaser"}, StandardAttributes: []string{"name", "email", "phone", "address", "type"}, DocType: "Customer"},
	{Type: "supplier", Variants: []string{"supplier", "vendor", "provider"}, StandardAttributes: []string{"name", "email", "phone", "address", "payment_terms"}, DocType: "Supplier"},
	{Type: "product", Variants: []string{"product", "item", "good", "merchandise", "inventory"}, StandardAttributes: []string{"name", "description", "price", "category", "stock"}, DocType: "Item"},
	{Type: "service", Variants: []string{"service", "offering"}, StandardAttributes: []string{"name", "description", "rate", "category"}, DocType: "Item"},
	{Type: "order", Variants: []string{"order", "purchase", "sale"}, StandardAttributes: []string{"date", "amount", "status", "customer", "items"}, DocType: "Sales Order"},
	{Type: "invoice", Variants: []string{"invoice", "bill", "receipt"}, StandardAttributes: []string{"number", "date", "amount", "due_date", "status"}, DocType: "Sales Invoice"},
	{Type: "payment", Variants: []string{"payment", "transaction", "billing"}, StandardAttributes: []string{"amount", "date", "mode", "reference", "status"}, DocType: "Payment Entry"},
	{Type: "employee", Variants: []string{"employee", "staff", "worker", "personnel"}, StandardAttributes: []string{"name", "position", "department", "email", "phone"}, DocType: "Employee"},
	{Type: "project", Variants: []string{"project", "initiative", "program"}, StandardAttributes: []string{"name", "description", "start_date", "end_date", "status"}, DocType: "Project"},
	{Type: "task", Variants: []string{"task", "activity", "assignment", "job"}, StandardAttributes: []string{"title", "description", "assigned_to", "due_date", "status"}, DocType: "Task"},
	{Type: "lead", Variants: []string{"lead", "prospect", "opportunity"}, StandardAttributes: []string{"name", "email", "phone", "source", "status"}, DocType: "Lead"},
	{Type: "quotation", Variants: []string{"quotation", "quote", "proposal", "estimate"}, StandardAttributes: []string{"number", "date", "amount", "valid_till", "status"}, DocType: "Quotation"},
	{Type: "contract", Variants: []string{"contract", "agreement", "deal"}, StandardAttributes: []string{"party", "start_date", "end_date", "terms", "status"}, DocType: "Contract"},
	{Type: "report", Variants: []string{"report", "analysis", "summary"}, StandardAttributes: []string{"title", "filters", "columns"}, DocType: "Report"},
	{Type: "dashboard", Variants: []string{"dashboard", "overview", "summary"}, StandardAttributes: []string{"title", "charts", "filters"}, DocType: "Dashboard"},
}

var EntityBasePriority = map[string]int{
	"customer": 90,
	"product":  85,
	"order":    80,
	"invoice":  75,
	"supplier": 70,
	"employee": 65,
	"project":  60,
	"task":     55,
}

// AttributeKeywords grant an attribute to every entity when any keyword
// appears anywhere in the text.
var AttributeKeywords = []Keywords{
	{Key: "name", Variants: []string{"name", "title", "called"}},
	{Key: "email", Variants: []string{"email", "mail", "contact"}},
	{Key: "phone", Variants: []string{"phone", "mobile", "telephone"}},
	{Key: "address", Variants: []string{"address", "location"}},
	{Key: "date", Variants: []string{"date", "time", "when"}},
	{Key: "amount", Variants: []string{"amount", "value", "price", "cost"}},
	{Key: "status", Variants: []string{"status", "state", "condition"}},
	{Key: "type", Variants: []string{"type", "category", "kind"}},
	{Key: "description", Variants: []string{"description", "details", "info"}},
}

// RelationshipRule is keyed by an ordered pair; the reverse pair is a
// different rule.
type RelationshipRule struct {
	From        string
	To          string
	Cardinality string
}

// Relationships is evaluated in order. ("supplier", "purchase") never fires
// because "purchase" folds into the order entity.
var Relationships = []RelationshipRule{
	{From: "customer", To: "order", Cardinality: "OneToMany"},
	{From: "supplier", To: "purchase", Cardinality: "OneToMany"},
	{From: "product", To: "order", Cardinality: "ManyToMany"},
	{From: "employee", To: "project", Cardinality: "ManyToMany"},
	{From: "project", To: "task", Cardinality: "OneToMany"},
	{From: "customer", To: "quotation", Cardinality: "OneToMany"},
	{From: "quotation", To: "order", Cardinality: "OneToOne"},
	{From: "order", To: "invoice", Cardinality: "OneToOne"},
	{From: "invoice", To: "payment", Cardinality: "OneToMany"},
}
