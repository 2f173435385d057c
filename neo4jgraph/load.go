package neo4jgraph

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphfinder/core"
)

const (
	// DefaultIDProperty is the node property used as the vertex ID.
	DefaultIDProperty = "id"

	// DefaultWeightProperty is the relationship property used as the edge weight.
	DefaultWeightProperty = "weight"

	nodeQuery = `MATCH (n) RETURN n[$idKey] AS id, properties(n) AS props`

	relationshipQuery = `MATCH (a)-[r]->(b)
RETURN a[$idKey] AS from, b[$idKey] AS to, r[$weightKey] AS weight
ORDER BY id(r)`
)

// LoadOptions controls how database records become vertices and edges.
type LoadOptions struct {
	// IDProperty names the node property holding the vertex ID. Default "id".
	IDProperty string

	// WeightProperty names the relationship property holding the cost. Default "weight".
	WeightProperty string

	// DefaultWeight is used for relationships without a weight property.
	DefaultWeight float64

	// Logger receives load progress. Nil means no logging.
	Logger *zap.Logger
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.IDProperty == "" {
		o.IDProperty = DefaultIDProperty
	}
	if o.WeightProperty == "" {
		o.WeightProperty = DefaultWeightProperty
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o
}

// Load reads every node and relationship through client and returns them as a
// directed, weighted multigraph with self-loops allowed.
//
// Numeric node properties become vertex attributes; other properties are skipped.
// Relationships are added in ascending internal relationship id, which fixes the
// neighbour order the finder adapters report. Integer IDs are rendered base-10.
func Load(ctx context.Context, client Client, opts LoadOptions) (*core.Graph, error) {
	opts = opts.withDefaults()
	params := map[string]any{"idKey": opts.IDProperty, "weightKey": opts.WeightProperty}

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())

	nodes, err := client.ExecuteRead(ctx, nodeQuery, params)
	if err != nil {
		return nil, fmt.Errorf("neo4jgraph: read nodes: %w", err)
	}
	skipped := 0
	for i, rec := range nodes.Records {
		id, err := label(rec["id"])
		if err != nil {
			return nil, fmt.Errorf("%w: node record %d", err, i)
		}
		if err = g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("neo4jgraph: add vertex %q: %w", id, err)
		}
		props, _ := rec["props"].(map[string]any)
		for key, value := range props {
			if key == opts.IDProperty {
				continue
			}
			if !isNumber(value) {
				skipped++
				continue
			}
			if err = g.SetAttribute(id, key, value); err != nil {
				return nil, fmt.Errorf("neo4jgraph: set %q on %q: %w", key, id, err)
			}
		}
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	rels, err := client.ExecuteRead(ctx, relationshipQuery, params)
	if err != nil {
		return nil, fmt.Errorf("neo4jgraph: read relationships: %w", err)
	}
	for i, rec := range rels.Records {
		from, err := label(rec["from"])
		if err != nil {
			return nil, fmt.Errorf("%w: relationship record %d (from)", err, i)
		}
		to, err := label(rec["to"])
		if err != nil {
			return nil, fmt.Errorf("%w: relationship record %d (to)", err, i)
		}
		w, err := weight(rec["weight"], opts.DefaultWeight)
		if err != nil {
			return nil, fmt.Errorf("%w: relationship record %d %q → %q", err, i, from, to)
		}
		if _, err = g.AddEdge(from, to, w); err != nil {
			return nil, fmt.Errorf("neo4jgraph: add edge %q → %q: %w", from, to, err)
		}
	}

	opts.Logger.Info("graph loaded",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("skipped_properties", skipped),
	)

	return g, nil
}

func label(v any) (string, error) {
	switch id := v.(type) {
	case string:
		if id == "" {
			return "", ErrMissingID
		}
		return id, nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	case int:
		return strconv.Itoa(id), nil
	case nil:
		return "", ErrMissingID
	default:
		return "", fmt.Errorf("%w: unsupported id type %T", ErrMissingID, v)
	}
}

func weight(v any, def float64) (float64, error) {
	var w float64
	switch x := v.(type) {
	case nil:
		return def, nil
	case float64:
		w = x
	case int64:
		w = float64(x)
	case int:
		w = float64(x)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrBadWeight, v)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, ErrBadWeight
	}

	return w, nil
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int64, int32, int, int16, int8:
		return true
	}

	return false
}
