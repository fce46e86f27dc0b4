package arangodb

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/arangodb/go-driver/v2/connection"
)

type Client interface {
	// Setup operations
	EnsureDatabase(ctx context.Context) error
	EnsureCollections(ctx context.Context) error
	EnsureGraph(ctx context.Context) error

	// Write operations. Documents with an existing key are replaced.
	UpsertNodes(ctx context.Context, nodes []Node) error
	UpsertEdges(ctx context.Context, edges []Edge) error

	Close() error
}

type Config struct {
	URL      string
	Username string
	Password string
	Database string
}

func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("arangodb URL is required")
	}
	if c.Username == "" {
		return fmt.Errorf("arangodb username is required")
	}
	if c.Database == "" {
		return fmt.Errorf("arangodb database name is required")
	}
	return nil
}

type client struct {
	conn         connection.Connection
	arangoClient arangodb.Client
	db           arangodb.Database
	cfg          Config
}

func New(ctx context.Context, cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arangodb config: %w", err)
	}

	endpoint := connection.NewRoundRobinEndpoints([]string{cfg.URL})
	conn := connection.NewHttp2Connection(connection.DefaultHTTP2ConfigurationWrapper(endpoint, true))

	auth := connection.NewBasicAuth(cfg.Username, cfg.Password)
	if err := conn.SetAuthentication(auth); err != nil {
		return nil, fmt.Errorf("arangodb auth: %w", err)
	}

	return &client{
		conn:         conn,
		arangoClient: arangodb.NewClient(conn),
		cfg:          cfg,
	}, nil
}

// Setup prepares the database, collections and graph in order.
func Setup(ctx context.Context, c Client) error {
	if err := c.EnsureDatabase(ctx); err != nil {
		return err
	}
	if err := c.EnsureCollections(ctx); err != nil {
		return err
	}
	return c.EnsureGraph(ctx)
}

func (c *client) Close() error {
	return nil
}

func (c *client) EnsureDatabase(ctx context.Context) error {
	start := time.Now()

	exists, err := c.arangoClient.DatabaseExists(ctx, c.cfg.Database)
	if err != nil {
		return fmt.Errorf("check database exists: %w", err)
	}

	if !exists {
		_, err = c.arangoClient.CreateDatabase(ctx, c.cfg.Database, nil)
		if err != nil {
			return fmt.Errorf("create database: %w", err)
		}
		slog.InfoContext(ctx, "arangodb database created",
			"database", c.cfg.Database,
			"duration_ms", time.Since(start).Milliseconds())
	}

	db, err := c.arangoClient.GetDatabase(ctx, c.cfg.Database, nil)
	if err != nil {
		return fmt.Errorf("get database: %w", err)
	}
	c.db = db

	return nil
}

func (c *client) EnsureCollections(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("database not initialized, call EnsureDatabase first")
	}

	if err := c.ensureCollection(ctx, EntityCollection, false); err != nil {
		return err
	}
	return c.ensureCollection(ctx, RelationshipCollection, true)
}

func (c *client) ensureCollection(ctx context.Context, name string, isEdge bool) error {
	exists, err := c.db.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check collection %s exists: %w", name, err)
	}
	if exists {
		return nil
	}

	colType := arangodb.CollectionTypeDocument
	if isEdge {
		colType = arangodb.CollectionTypeEdge
	}

	_, err = c.db.CreateCollectionV2(ctx, name, &arangodb.CreateCollectionPropertiesV2{Type: &colType})
	if err != nil {
		return fmt.Errorf("create collection %s: %w", name, err)
	}
	slog.InfoContext(ctx, "arangodb collection created",
		"collection", name,
		"is_edge", isEdge)

	return nil
}

func (c *client) EnsureGraph(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("database not initialized, call EnsureDatabase first")
	}

	exists, err := c.db.GraphExists(ctx, GraphName)
	if err != nil {
		return fmt.Errorf("check graph exists: %w", err)
	}
	if exists {
		return nil
	}

	graphDef := &arangodb.GraphDefinition{
		Name: GraphName,
		EdgeDefinitions: []arangodb.EdgeDefinition{
			{Collection: RelationshipCollection, From: []string{EntityCollection}, To: []string{EntityCollection}},
		},
	}

	if _, err = c.db.CreateGraph(ctx, GraphName, graphDef, nil); err != nil {
		return fmt.Errorf("create graph: %w", err)
	}

	slog.InfoContext(ctx, "arangodb graph created", "graph", GraphName)
	return nil
}

func (c *client) UpsertNodes(ctx context.Context, nodes []Node) error {
	if len(nodes) == 0 {
		return nil
	}

	docs := make([]map[string]any, len(nodes))
	for i, node := range nodes {
		doc := maps.Clone(node.Properties)
		if doc == nil {
			doc = make(map[string]any, 4)
		}
		doc["_key"] = MakeKey(node.Key)
		doc["key"] = node.Key
		doc["kind"] = node.Kind
		doc["name"] = node.Name
		doc["context_id"] = node.ContextID
		docs[i] = doc
	}

	return c.upsert(ctx, EntityCollection, docs)
}

func (c *client) UpsertEdges(ctx context.Context, edges []Edge) error {
	if len(edges) == 0 {
		return nil
	}

	docs := make([]map[string]any, len(edges))
	for i, edge := range edges {
		doc := maps.Clone(edge.Properties)
		if doc == nil {
			doc = make(map[string]any, 5)
		}
		doc["_key"] = makeEdgeKey(edge.From, edge.To)
		doc["_from"] = fmt.Sprintf("%s/%s", EntityCollection, MakeKey(edge.From))
		doc["_to"] = fmt.Sprintf("%s/%s", EntityCollection, MakeKey(edge.To))
		doc["type"] = edge.Type
		doc["context_id"] = edge.ContextID
		docs[i] = doc
	}

	return c.upsert(ctx, RelationshipCollection, docs)
}

func (c *client) upsert(ctx context.Context, collection string, docs []map[string]any) error {
	if c.db == nil {
		return fmt.Errorf("database not initialized")
	}

	start := time.Now()

	query := `
		FOR d IN @docs
			UPSERT { _key: d._key }
			INSERT d
			REPLACE d
			IN @@collection
	`

	cursor, err := c.db.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]any{
			"docs":        docs,
			"@collection": collection,
		},
	})
	if err != nil {
		return fmt.Errorf("upsert into %s: %w", collection, err)
	}
	defer cursor.Close()

	slog.DebugContext(ctx, "arangodb documents upserted",
		"collection", collection,
		"count", len(docs),
		"duration_ms", time.Since(start).Milliseconds())

	return nil
}

// MakeKey derives a document key that is valid for any input string.
func MakeKey(key string) string {
	hash := md5.Sum([]byte(key))
	return hex.EncodeToString(hash[:])[:16]
}

func makeEdgeKey(from, to string) string {
	return MakeKey(from + "->" + to)
}
