package finder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/graphfinder/core"
	"github.com/katalvlaran/graphfinder/finder"
)

func TestNewNetwork_NilStore(t *testing.T) {
	_, err := finder.NewNetwork(nil)
	require.ErrorIs(t, err, finder.ErrNilStore)
	_, err = finder.NewEnvironment(nil)
	require.ErrorIs(t, err, finder.ErrNilStore)
}

func TestNetwork_AbsentNodes(t *testing.T) {
	for name, n := range adapters(diamond()) {
		t.Run(name, func(t *testing.T) {
			for _, node := range []string{"X", ""} {
				got := n.NeighboursOf(node)
				require.NotNil(t, got)
				require.Empty(t, got)
				require.False(t, n.AreNeighbours(node, "A"))
				require.False(t, n.Has(node))

				_, err := n.MovementCostBetween(node, "A")
				require.ErrorIs(t, err, finder.ErrUnknownNode)
				require.NotErrorIs(t, err, core.ErrVertexNotFound, "store sentinel must not leak")
			}
		})
	}
}

func TestNetwork_NoSuchEdge(t *testing.T) {
	for name, n := range adapters(diamond()) {
		t.Run(name, func(t *testing.T) {
			_, err := n.MovementCostBetween("A", "D")
			require.ErrorIs(t, err, finder.ErrNoSuchEdge)

			// Target absent from the store is still a missing edge, not an unknown node.
			_, err = n.MovementCostBetween("A", "Z")
			require.ErrorIs(t, err, finder.ErrNoSuchEdge)
			require.False(t, n.AreNeighbours("A", "Z"))

			// Edges are directed: D has no way back to C.
			_, err = n.MovementCostBetween("D", "C")
			require.ErrorIs(t, err, finder.ErrNoSuchEdge)
		})
	}
}

func TestNetwork_Topology(t *testing.T) {
	for name, n := range adapters(diamond()) {
		t.Run(name, func(t *testing.T) {
			require.ElementsMatch(t, []string{"A", "B", "C", "D"}, n.All())
			require.True(t, n.Has("A"))
			require.Equal(t, []string{"B", "C"}, n.NeighboursOf("A"))
			require.Equal(t, []string{}, n.NeighboursOf("D"))
			require.True(t, n.AreNeighbours("A", "C"))
			require.False(t, n.AreNeighbours("C", "A"))

			cost, err := n.MovementCostBetween("A", "C")
			require.NoError(t, err)
			require.Equal(t, 8.0, cost)
		})
	}
}

func TestNetwork_ParallelEdgesFirstMatch(t *testing.T) {
	g := newMultigraph()
	mustEdge(g, "A", "B", 5)
	mustEdge(g, "A", "C", 8)
	mustEdge(g, "A", "C", 15)

	for name, n := range adapters(g) {
		t.Run(name, func(t *testing.T) {
			cost, err := n.MovementCostBetween("A", "C")
			require.NoError(t, err)
			require.Equal(t, 8.0, cost, "first edge wins, not the minimum")
			require.Equal(t, []string{"B", "C", "C"}, n.NeighboursOf("A"), "duplicates are preserved")
		})
	}

	// Reversed insertion order flips the answer: the adapter never takes a minimum.
	r := newMultigraph()
	mustEdge(r, "A", "C", 15)
	mustEdge(r, "A", "C", 8)
	net, err := finder.NewNetwork(r)
	require.NoError(t, err)
	cost, err := net.MovementCostBetween("A", "C")
	require.NoError(t, err)
	require.Equal(t, 15.0, cost)
}

func TestNetwork_NegativeEdgeCosts(t *testing.T) {
	cases := []struct {
		name  string
		build func() *core.Graph
		want  bool
	}{
		{"empty", newMultigraph, false},
		{"positive self-loop", func() *core.Graph {
			g := newMultigraph()
			mustEdge(g, "A", "A", 1)
			return g
		}, false},
		{"negative self-loop", func() *core.Graph {
			g := newMultigraph()
			mustEdge(g, "A", "A", -1)
			return g
		}, true},
		{"zero weights only", func() *core.Graph {
			g := newMultigraph()
			mustEdge(g, "A", "B", 0)
			return g
		}, false},
		{"negative edge away from the rest", func() *core.Graph {
			g := diamond()
			mustEdge(g, "X", "Y", -0.5)
			return g
		}, true},
	}
	for _, tc := range cases {
		for name, n := range adapters(tc.build()) {
			t.Run(tc.name+"/"+name, func(t *testing.T) {
				require.Equal(t, tc.want, n.HasNegativeEdgeCosts())
			})
		}
	}
}

func TestNetwork_ReflectsStoreAtCallTime(t *testing.T) {
	g := diamond()
	net, err := finder.NewNetwork(g)
	require.NoError(t, err)
	require.False(t, net.HasNegativeEdgeCosts())

	mustEdge(g, "C", "C", -1)
	require.True(t, net.HasNegativeEdgeCosts())
	require.Equal(t, []string{"D", "C"}, net.NeighboursOf("C"))
}

func TestNetwork_UndirectedEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 3)
	require.NoError(t, err)

	net, err := finder.NewNetwork(g)
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, net.NeighboursOf("A"))
	require.Equal(t, []string{"A"}, net.NeighboursOf("B"))

	cost, err := net.MovementCostBetween("B", "A")
	require.NoError(t, err)
	require.Equal(t, 3.0, cost)
}

func TestNetwork_StoreFailureIsWrapped(t *testing.T) {
	boom := errors.New("disk on fire")
	obs, logs := observer.New(zapcore.WarnLevel)
	net, err := finder.NewNetwork(brokenStore{Graph: diamond(), err: boom}, finder.WithLogger(zap.New(obs)))
	require.NoError(t, err)

	_, err = net.MovementCostBetween("A", "B")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, finder.ErrUnknownNode)
	require.NotErrorIs(t, err, finder.ErrNoSuchEdge)

	require.Empty(t, net.NeighboursOf("A"))
	require.False(t, net.AreNeighbours("A", "B"))
	require.Equal(t, 3, logs.FilterMessage("store rejected neighbourhood query").Len())

	require.Empty(t, net.NeighboursOf("missing"))
	require.Equal(t, 4, logs.Len(), "brokenStore fails absent nodes too")
}

func TestNetwork_QueriesStoreEveryCall(t *testing.T) {
	s := &countingStore{Graph: diamond()}
	net, err := finder.NewNetwork(s)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		net.NeighboursOf("A")
	}
	require.EqualValues(t, 3, s.neighborReads)
}
