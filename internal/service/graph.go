package service

import (
	"context"
	"log/slog"

	"basegraph.app/blueprint/common/arangodb"
	"basegraph.app/blueprint/internal/model"
)

// GraphSink mirrors processed contexts into an external graph. Failures are
// logged, never returned.
type GraphSink interface {
	Record(ctx context.Context, c *model.Context)
}

type arangoGraphSink struct {
	client arangodb.Client
}

func NewGraphSink(client arangodb.Client) GraphSink {
	return &arangoGraphSink{client: client}
}

func (s *arangoGraphSink) Record(ctx context.Context, c *model.Context) {
	nodes, edges := EntityGraph(c)

	if err := s.client.UpsertNodes(ctx, nodes); err != nil {
		slog.WarnContext(ctx, "failed to record entity graph nodes", "error", err, "context_id", c.ID)
		return
	}
	if err := s.client.UpsertEdges(ctx, edges); err != nil {
		slog.WarnContext(ctx, "failed to record entity graph edges", "error", err, "context_id", c.ID)
	}
}

// EntityGraph turns a context into one vertex per detected entity and one
// edge per inferred relationship. Keys are scoped to the context.
func EntityGraph(c *model.Context) ([]arangodb.Node, []arangodb.Edge) {
	nodes := make([]arangodb.Node, 0, len(c.Entities))
	for _, e := range c.Entities {
		nodes = append(nodes, arangodb.Node{
			Key:       entityKey(c.ID, e.Type),
			Kind:      e.Type,
			Name:      e.DisplayName,
			ContextID: c.ID,
			Properties: map[string]any{
				"occurrences":       e.Occurrences,
				"priority":          e.Priority,
				"suggested_doctype": e.SuggestedDocType,
				"industry":          c.Industry.Industry,
			},
		})
	}

	edges := make([]arangodb.Edge, 0, len(c.Relationships))
	for _, r := range c.Relationships {
		edges = append(edges, arangodb.Edge{
			From:      entityKey(c.ID, r.FromEntity),
			To:        entityKey(c.ID, r.ToEntity),
			Type:      string(r.Cardinality),
			ContextID: c.ID,
			Properties: map[string]any{
				"link_field":  r.SuggestedLinkField,
				"description": r.Description,
			},
		})
	}

	return nodes, edges
}

func entityKey(contextID, entityType string) string {
	return contextID + "/" + entityType
}
