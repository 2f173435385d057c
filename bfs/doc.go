// Package bfs provides breadth-first search over a finder.Network,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing Order, Depth, and Parent.
//   - Hooks: OnEnqueue (before a node is enqueued) and OnVisit (may abort with an error).
//   - Filtering of individual hops via WithFilterNeighbor.
//   - MaxDepth limit (d>0) or no limit (d==0).
//
// Costs are ignored: a hop over a 1000-cost edge counts the same as a 1-cost one.
// Any finder.Network works, so the search sees exactly the neighbourhood
// policy the adapters implement (outgoing directed edges, both directions of
// undirected ones).
//
// Determinism
//
//	Neighbours are expanded in NeighboursOf order, which is the store's edge
//	insertion order. Parallel edges repeat a neighbour; the repeat is skipped.
//
// Complexity (V = nodes reached, E = edges scanned)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	net, _ := finder.NewNetwork(g)
//	result, err := bfs.BFS(net, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//	path, err := result.PathTo("goal")
//
// Errors
//
//   - ErrNilNetwork           if the network is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached           from PathTo for nodes the search never saw.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
