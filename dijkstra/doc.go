// Package dijkstra is a shortest-path engine that consumes the finder
// contracts instead of a concrete graph type.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) network queries.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction, distance caps, “impassable” edge
//     thresholds, early exit at a target, and A* ordering via a Heuristic.
//
// Network semantics:
//
//   - Neighbours come from finder.Network.NeighboursOf; repeated targets
//     (parallel edges) are relaxed once.
//   - The cost of u→v is finder.Network.MovementCostBetween(u, v), i.e. the
//     first parallel edge in store order. Reduce the graph beforehand if the
//     cheapest parallel edge should count instead.
//   - Networks reporting HasNegativeEdgeCosts() are rejected with ErrNegativeWeight.
//
// Heuristic search:
//
//	env, _ := finder.NewEnvironment(g)
//	path, cost, err := dijkstra.ShortestPath(env, "A", "D",
//	    dijkstra.WithHeuristic(dijkstra.Euclidean(env, "D")))
//
// API reference:
//
//	func Dijkstra(n finder.Network, opts ...Option) (dist map[string]float64, prev map[string]string, err error)
//	func ShortestPath(n finder.Network, from, to string, opts ...Option) ([]string, float64, error)
//	func PathTo(prev map[string]string, src, dst string) []string
//	func Euclidean(env finder.Environment, target string) Heuristic
//
// Thread safety:
//
//   - A run holds no locks of its own; it is as safe as the network it reads.
package dijkstra
