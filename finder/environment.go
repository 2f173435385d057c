package finder

import (
	"fmt"

	"go.uber.org/zap"
)

// AdaptedEnvironment projects a Store onto the Environment contract. Topology
// and cost queries behave exactly like AdaptedNetwork; positions are read from
// vertex attributes once per node and memoized.
type AdaptedEnvironment struct {
	adjacency
	coordinates []string
	cache       *positionCache
}

var _ Environment = (*AdaptedEnvironment)(nil)

// NewEnvironment wraps s with planar positions read from the "x" and "y"
// attributes, unless WithCoordinates says otherwise.
func NewEnvironment(s Store, opts ...Option) (*AdaptedEnvironment, error) {
	return newEnvironment(s, planar, opts)
}

// NewEnvironment3D wraps s with positions read from "x", "y" and "z".
func NewEnvironment3D(s Store, opts ...Option) (*AdaptedEnvironment, error) {
	return newEnvironment(s, spatial, opts)
}

func newEnvironment(s Store, defaults []string, opts []Option) (*AdaptedEnvironment, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	o := buildOptions(defaults, opts)
	if err := o.validateCoordinates(); err != nil {
		return nil, err
	}

	return &AdaptedEnvironment{
		adjacency:   adjacency{store: s, logger: o.logger},
		coordinates: o.coordinates,
		cache:       newPositionCache(),
	}, nil
}

// Coordinates returns a copy of the attribute names read by PositionOf, in order.
func (e *AdaptedEnvironment) Coordinates() []string {
	return append([]string(nil), e.coordinates...)
}

// PositionOf returns the coordinates of node. Unset attributes read as 0.
//
// Node membership is checked on every call, before the cache is consulted, so
// an absent node fails with ErrUnknownNode and never produces a cache entry.
// The first successful call per node reads the attributes from the store; later
// calls are served from the cache. The returned slice is a copy.
func (e *AdaptedEnvironment) PositionOf(node string) (Position, error) {
	if !e.store.HasVertex(node) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, node)
	}
	if p, ok := e.cache.load(node); ok {
		return p.clone(), nil
	}

	p := make(Position, len(e.coordinates))
	for i, key := range e.coordinates {
		v, err := e.store.NumericAttribute(node, key, 0)
		if err != nil {
			return nil, translate(err, node)
		}
		p[i] = v
	}
	p = e.cache.store(node, p)
	e.logger.Debug("position cached", zap.String("node", node), zap.Float64s("position", p))

	return p.clone(), nil
}
