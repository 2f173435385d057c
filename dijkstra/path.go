package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphfinder/finder"
)

// ShortestPath returns the cheapest vertex sequence from → to and its total cost.
// The search stops as soon as to is settled. Extra options (for example
// WithHeuristic) are applied after Source, WithTarget and WithReturnPath.
func ShortestPath(n finder.Network, from, to string, opts ...Option) ([]string, float64, error) {
	if n != nil && to != "" && !n.Has(to) {
		return nil, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	all := append([]Option{Source(from), WithTarget(to), WithReturnPath()}, opts...)
	dist, prev, err := Dijkstra(n, all...)
	if err != nil {
		return nil, 0, err
	}
	if math.IsInf(dist[to], 1) {
		return nil, 0, fmt.Errorf("%w: %q → %q", ErrNoPath, from, to)
	}

	return PathTo(prev, from, to), dist[to], nil
}

// PathTo walks prev back from dst to src. It returns nil when dst is not
// connected to src in prev.
func PathTo(prev map[string]string, src, dst string) []string {
	path := []string{dst}
	for cur := dst; cur != src; {
		p, ok := prev[cur]
		if !ok || p == "" || len(path) > len(prev) {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Euclidean returns an A* heuristic estimating the straight-line distance
// from a vertex to target, using env's positions. It is admissible whenever no
// edge costs less than the distance between its endpoints.
func Euclidean(env finder.Environment, target string) Heuristic {
	return func(node string) (float64, error) {
		goal, err := env.PositionOf(target)
		if err != nil {
			return 0, err
		}
		here, err := env.PositionOf(node)
		if err != nil {
			return 0, err
		}

		return here.DistanceTo(goal), nil
	}
}
