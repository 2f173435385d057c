package finder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphfinder/core"
)

// Store is the read surface of a graph store required by the adapters.
// *core.Graph satisfies it.
//
// Contract:
//   - Vertices enumerates every label in a stable order.
//   - Neighbors returns the edges leaving id in the store's native order and
//     fails with core.ErrVertexNotFound (or core.ErrEmptyVertexID) when id is absent.
//   - Edges enumerates every edge of the graph.
//   - NumericAttribute returns def when the attribute is unset on an existing vertex.
type Store interface {
	Vertices() []string
	HasVertex(id string) bool
	Neighbors(id string) ([]*core.Edge, error)
	Edges() []*core.Edge
	NumericAttribute(id, key string, def float64) (float64, error)
}

var _ Store = (*core.Graph)(nil)

// adjacency answers the topology and cost queries shared by both adapters.
// It queries the store on every call and keeps no state of its own.
type adjacency struct {
	store  Store
	logger *zap.Logger
}

// outgoing resolves the edges leaving node, translating store failures.
func (a *adjacency) outgoing(node string) ([]*core.Edge, error) {
	edges, err := a.store.Neighbors(node)
	if err != nil {
		terr := translate(err, node)
		if !isUnknown(terr) {
			a.logger.Warn("store rejected neighbourhood query", zap.String("node", node), zap.Error(err))
		}

		return nil, terr
	}

	return edges, nil
}

// All returns every node label in the store.
func (a *adjacency) All() []string {
	return a.store.Vertices()
}

// Has reports whether the store contains node.
func (a *adjacency) Has(node string) bool {
	return a.store.HasVertex(node)
}

// NeighboursOf lists the target of every outgoing edge of node in store order.
// Parallel edges repeat their target. An absent node has no neighbours.
func (a *adjacency) NeighboursOf(node string) []string {
	edges, err := a.outgoing(node)
	if err != nil {
		return []string{}
	}

	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Other(node))
	}

	return out
}

// AreNeighbours reports whether at least one outgoing edge of source targets
// neighbour. An absent source is never anyone's neighbour.
func (a *adjacency) AreNeighbours(source, neighbour string) bool {
	edges, err := a.outgoing(source)
	if err != nil {
		return false
	}
	for _, e := range edges {
		if e.Other(source) == neighbour {
			return true
		}
	}

	return false
}

// MovementCostBetween returns the weight of the first outgoing edge of source
// that targets neighbour. Parallel edges are not reduced: the first one in
// store order wins, even when a later one is cheaper.
//
// Errors:
//   - ErrUnknownNode: source is absent.
//   - ErrNoSuchEdge: source exists but has no edge to neighbour.
func (a *adjacency) MovementCostBetween(source, neighbour string) (float64, error) {
	edges, err := a.outgoing(source)
	if err != nil {
		return 0, err
	}
	for _, e := range edges {
		if e.Other(source) == neighbour {
			return e.Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %q → %q", ErrNoSuchEdge, source, neighbour)
}

// HasNegativeEdgeCosts scans every edge in the store at call time.
func (a *adjacency) HasNegativeEdgeCosts() bool {
	for _, e := range a.store.Edges() {
		if e.Weight < 0 {
			return true
		}
	}

	return false
}
