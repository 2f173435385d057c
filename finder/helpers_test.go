package finder_test

import (
	"sync/atomic"

	"github.com/katalvlaran/graphfinder/core"
	"github.com/katalvlaran/graphfinder/finder"
)

// newMultigraph returns an empty directed weighted multigraph with loops.
func newMultigraph() *core.Graph {
	return core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
}

// diamond builds A→B(5), A→C(8), B→D(9), C→D(4).
func diamond() *core.Graph {
	g := newMultigraph()
	mustEdge(g, "A", "B", 5)
	mustEdge(g, "A", "C", 8)
	mustEdge(g, "B", "D", 9)
	mustEdge(g, "C", "D", 4)

	return g
}

func mustEdge(g *core.Graph, from, to string, w float64) {
	if _, err := g.AddEdge(from, to, w); err != nil {
		panic(err)
	}
}

func mustAttr(g *core.Graph, id, key string, v interface{}) {
	if err := g.SetAttribute(id, key, v); err != nil {
		panic(err)
	}
}

// adapters wraps g in every adapter flavour so shared policies are checked on each.
func adapters(g finder.Store) map[string]finder.Network {
	net, err := finder.NewNetwork(g)
	if err != nil {
		panic(err)
	}
	env, err := finder.NewEnvironment(g)
	if err != nil {
		panic(err)
	}
	env3, err := finder.NewEnvironment3D(g)
	if err != nil {
		panic(err)
	}

	return map[string]finder.Network{"network": net, "environment": env, "environment3d": env3}
}

// countingStore records how often attributes and neighbourhoods are read.
type countingStore struct {
	*core.Graph
	attributeReads int64
	neighborReads  int64
}

func (c *countingStore) NumericAttribute(id, key string, def float64) (float64, error) {
	atomic.AddInt64(&c.attributeReads, 1)

	return c.Graph.NumericAttribute(id, key, def)
}

func (c *countingStore) Neighbors(id string) ([]*core.Edge, error) {
	atomic.AddInt64(&c.neighborReads, 1)

	return c.Graph.Neighbors(id)
}

func (c *countingStore) reads() int64 { return atomic.LoadInt64(&c.attributeReads) }

// brokenStore fails every neighbourhood query with err.
type brokenStore struct {
	*core.Graph
	err error
}

func (b brokenStore) Neighbors(string) ([]*core.Edge, error) { return nil, b.err }
