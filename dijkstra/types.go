// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm over a finder.Network.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a network with non-negative edge costs.
// The algorithm maintains a priority queue of vertices to explore and
// relaxes edges in increasing order of distance from the source vertex.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the network).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//	– Target:           stop as soon as this vertex is settled.
//	– Heuristic:        A* estimate of the remaining cost to Target (see Euclidean).
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilNetwork      if the provided network is nil.
//	– ErrVertexNotFound  if the source (or ShortestPath target) does not exist.
//	– ErrNegativeWeight  if the network reports negative edge costs.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrNoPath          if ShortestPath finds the target unreachable.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilNetwork indicates that a nil network was passed to Dijkstra.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrVertexNotFound indicates that the specified vertex does not exist in the network.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in network")

	// ErrNegativeWeight indicates that the network contains negative edge costs.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-cost edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the target cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: no path available")
)

// Heuristic estimates the remaining cost from node to the search target.
// It must never overestimate, and should be consistent, for results to stay optimal.
type Heuristic func(node string) (float64, error)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID.
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – cap on distances to explore. Default +Inf (no cap).
// InfEdgeThreshold – edges with cost ≥ threshold are skipped. Default +Inf.
// Target           – optional vertex at which the search stops once settled.
// Heuristic        – optional A* estimate; nil means plain Dijkstra.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Target           string
	Heuristic        Heuristic
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be called.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is reported at option construction time.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold when threshold <= 0.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithTarget stops the search once target is settled. Distances of vertices
// not yet settled at that moment are upper bounds only.
func WithTarget(target string) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithHeuristic turns the search into A*: the queue is ordered by
// distance + h(vertex).
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
