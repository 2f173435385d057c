// Package finder adapts a graph store to the Network and Environment contracts
// consumed by shortest-path engines.
//
// The adapters are read-only facades. Every topology or cost query is answered
// by asking the wrapped Store again; the only state an adapter keeps is the
// position cache of an AdaptedEnvironment.
//
// Policies:
//
//	NeighboursOf(absent)          → empty slice, no error
//	AreNeighbours(absent, *)      → false
//	MovementCostBetween(absent,*) → ErrUnknownNode
//	MovementCostBetween(s, t)     → ErrNoSuchEdge when s has no edge to t
//	parallel edges                → NeighboursOf repeats the target;
//	                                MovementCostBetween returns the first edge's weight
//	HasNegativeEdgeCosts()        → full edge scan at call time
//	PositionOf(absent)            → ErrUnknownNode, cache untouched
//
// Store failures are translated at the boundary: core.ErrVertexNotFound and
// core.ErrEmptyVertexID become ErrUnknownNode, any other store error is wrapped.
//
// Example:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
//	g.AddEdge("A", "C", 8)
//	net, _ := finder.NewNetwork(g)
//	cost, _ := net.MovementCostBetween("A", "C") // 8
package finder
