// Package graphfinder exposes a directed, weighted multigraph to path-finding
// code through two small read-only contracts.
//
// 🚀 What is graphfinder?
//
//	A thread-safe graph store plus a thin adjacency facade:
//		• Core primitives: vertices, parallel edges, self-loops, numeric attributes
//		• Network: node listing, neighbour queries, movement costs
//		• Environment: Network + memoized spatial positions (2D or 3D)
//		• Shortest paths: Dijkstra and A* over any Network, BFS hop counts
//		• Loading: Neo4j / Bolt databases into the in-memory store
//		• Configuration: YAML coordinates and zap logging
//
// Packages:
//
//	core/       — Graph, Vertex, Edge types & thread-safe primitives
//	finder/     — Network and Environment adapters over a core.Graph
//	dijkstra/   — shortest-path engine consuming finder.Network
//	bfs/        — hop-count traversal over finder.Network
//	config/     — YAML settings, zap logger construction
//	neo4jgraph/ — Neo4j client and graph loader
//
// Quick ASCII example:
//
//	    A──2──▶B
//	    │      │1
//	    5      ▼
//	    └─────▶C
//
//	A→C costs 5 directly but 3 through B; the adapters report both edges and
//	leave the choice to the engine.
//
//	go get github.com/katalvlaran/graphfinder
package graphfinder
