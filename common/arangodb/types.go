package arangodb

const (
	GraphName              = "requirements"
	EntityCollection       = "requirement_entities"
	RelationshipCollection = "entity_relationships"
)

// Node is an entity vertex. Key identifies it across writes.
type Node struct {
	Key        string
	Kind       string
	Name       string
	ContextID  string
	Properties map[string]any
}

// Edge links two node keys.
type Edge struct {
	From       string
	To         string
	Type       string
	ContextID  string
	Properties map[string]any
}
