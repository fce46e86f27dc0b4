package id

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// DefaultNodeID is used when New runs before Init.
const DefaultNodeID = 1

var (
	mu   sync.Mutex
	node *snowflake.Node
)

// Init initializes the Snowflake node with the given node ID.
// Each binary uses its own node ID so history and job ids never collide.
// The first successful Init wins; later calls are no-ops.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("creating snowflake node %d: %w", nodeID, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if node == nil {
		node = n
	}
	return nil
}

// New generates a time-ordered int64 ID. Without a prior Init it falls back
// to DefaultNodeID.
func New() int64 {
	return current().Generate().Int64()
}

func current() *snowflake.Node {
	mu.Lock()
	defer mu.Unlock()
	if node == nil {
		// DefaultNodeID is within the node range, so this cannot fail.
		node, _ = snowflake.NewNode(DefaultNodeID)
	}
	return node
}

// Short returns an 8 character random identifier used to key contexts.
// Short ids are not guaranteed unique; stores reject duplicates.
func Short() string {
	return uuid.NewString()[:8]
}

// PRD returns a document identifier of the form PRD-XXXXXXXX.
func PRD() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "PRD-" + strings.ToUpper(raw[:8])
}
