// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface. It is the graph store wrapped by package finder.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64 and may be negative
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Named per-vertex attributes (SetAttribute, Attribute, NumericAttribute)
//   - Constant-time edge membership via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Ordering:
//
//	Vertices()    – lexicographic ascending.
//	Edges()       – insertion order.
//	Neighbors(id) – insertion order of the incident edges; parallel edges repeated.
//	NeighborIDs() – unique, lexicographic ascending.
//
// Core Methods:
//
//	AddVertex(id string) error
//	HasVertex(id string) bool
//	RemoveVertex(id string) error
//	SetAttribute(id, key string, value interface{}) error
//	NumericAttribute(id, key string, def float64) (float64, error)
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (edgeID string, err error)
//	RemoveEdge(edgeID string) error
//	HasEdge(from, to string) bool
//	Neighbors(id string) ([]*Edge, error)
//	Edges() []*Edge
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
//	ErrAttributeNotNumeric  – attribute is set but not a number
package core
