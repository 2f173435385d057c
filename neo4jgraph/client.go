// Package neo4jgraph fills a core.Graph from a Neo4j (or any Bolt-compatible)
// database so the finder adapters can serve it.
package neo4jgraph

import (
	"context"
	"errors"
)

// Client is the read-side contract Load needs from a graph database.
type Client interface {
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result is a simplified representation of a query response.
type Result struct {
	Records []Record
}

// Record groups key-value pairs returned from the graph engine.
type Record map[string]any

// Options configures a Client implementation.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

var (
	// ErrMissingURI indicates the graph URI is not provided.
	ErrMissingURI = errors.New("neo4jgraph: graph URI is required")

	// ErrMissingID indicates a node or relationship endpoint without a usable identifier.
	ErrMissingID = errors.New("neo4jgraph: missing node identifier")

	// ErrBadWeight indicates a relationship weight that is not a finite number.
	ErrBadWeight = errors.New("neo4jgraph: relationship weight is not a finite number")
)
