// Package dijkstra implements Dijkstra's shortest-path algorithm (and its A*
// variant) over any finder.Network.
//
// Complexity:
//
//   - Time:  O((V + E) log V) plus the cost of the network queries.
//   - Space: O(V + E) for distances, predecessors and the lazy heap.
//
// Notes on implementation choices:
//
//   - HasNegativeEdgeCosts() is consulted up front and the run fails fast.
//   - Each vertex is relaxed once per distinct neighbour; the cost of u→v is
//     whatever the network's MovementCostBetween reports for that pair.
//   - Any edge cost ≥ InfEdgeThreshold is an impassable “wall”.
//   - “Lazy” decrease-key: duplicates are pushed and stale entries ignored.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/graphfinder/finder"
)

// Dijkstra computes shortest distances from Options.Source to all vertices of n.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; "" if none.
//   - err:  invalid input, negative costs, or a failing heuristic.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. n must be non-nil (ErrNilNetwork).
//  3. n must contain Source (ErrVertexNotFound).
//  4. n must not report negative edge costs (ErrNegativeWeight).
func Dijkstra(n finder.Network, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if n == nil {
		return nil, nil, ErrNilNetwork
	}
	if !n.Has(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	if n.HasNegativeEdgeCosts() {
		return nil, nil, ErrNegativeWeight
	}

	vertices := n.All()
	r := &runner{
		n:       n,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}

	if err := r.init(vertices); err != nil {
		return nil, nil, err
	}
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	n       finder.Network
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

func (r *runner) init(vertices []string) error {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	h, err := r.estimate(r.options.Source)
	if err != nil {
		return err
	}
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0, priority: h})

	return nil
}

// process repeatedly settles the cheapest frontier vertex until the heap is
// empty, MaxDistance is exceeded, or Target is settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if r.options.Target != "" && u == r.options.Target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every distinct neighbour of the settled vertex u.
func (r *runner) relax(u string) error {
	seen := make(map[string]struct{})
	for _, v := range r.n.NeighboursOf(u) {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if r.visited[v] {
			continue
		}

		w, err := r.n.MovementCostBetween(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: cost %s→%s: %w", u, v, err)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if current, ok := r.dist[v]; ok && newDist >= current {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		h, err := r.estimate(v)
		if err != nil {
			return err
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist, priority: newDist + h})
	}

	return nil
}

func (r *runner) estimate(v string) (float64, error) {
	if r.options.Heuristic == nil {
		return 0, nil
	}
	h, err := r.options.Heuristic(v)
	if err != nil {
		return 0, fmt.Errorf("dijkstra: heuristic at %q: %w", v, err)
	}

	return h, nil
}

// nodeItem is a heap entry: the tentative distance of a vertex and its queue priority.
type nodeItem struct {
	id       string
	dist     float64
	priority float64
}

// nodePQ is a min-heap of *nodeItem ordered by priority (distance plus heuristic).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
