package finder

// Network is the topology and cost contract consumed by weight-based
// shortest-path algorithms.
type Network interface {
	// All returns every node label.
	All() []string
	// Has reports whether node exists.
	Has(node string) bool
	// NeighboursOf lists the targets of node's outgoing edges; empty when node is absent.
	NeighboursOf(node string) []string
	// AreNeighbours reports whether source has an outgoing edge to neighbour; false when source is absent.
	AreNeighbours(source, neighbour string) bool
	// MovementCostBetween returns the weight of the first edge source→neighbour.
	MovementCostBetween(source, neighbour string) (float64, error)
	// HasNegativeEdgeCosts reports whether any edge in the graph weighs less than zero.
	HasNegativeEdgeCosts() bool
}

// Environment is a Network whose nodes have positions, as required by
// heuristic-guided search.
type Environment interface {
	Network
	// PositionOf returns the coordinates of node; fails with ErrUnknownNode when absent.
	PositionOf(node string) (Position, error)
}

// AdaptedNetwork projects a Store onto the Network contract.
type AdaptedNetwork struct {
	adjacency
}

var _ Network = (*AdaptedNetwork)(nil)

// NewNetwork wraps s. The store is queried on every call and never mutated.
func NewNetwork(s Store, opts ...Option) (*AdaptedNetwork, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	o := buildOptions(nil, opts)

	return &AdaptedNetwork{adjacency: adjacency{store: s, logger: o.logger}}, nil
}
