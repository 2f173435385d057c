package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphfinder/bfs"
	"github.com/katalvlaran/graphfinder/core"
	"github.com/katalvlaran/graphfinder/finder"
)

func network(t *testing.T, g *core.Graph) *finder.AdaptedNetwork {
	t.Helper()
	n, err := finder.NewNetwork(g)
	require.NoError(t, err)

	return n
}

// chain builds the undirected path A–B–C.
func chain(t *testing.T) *finder.AdaptedNetwork {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)

	return network(t, g)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrNilNetwork)

	n := network(t, core.NewGraph())
	_, err = bfs.BFS(n, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(chain(t), "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_CycleAndDepths(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("C", "D", 0)
	g.AddEdge("D", "A", 0)

	res, err := bfs.BFS(network(t, g), "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
}

func TestBFS_DirectedFollowsOutgoingOnly(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("A", "B", 5)
	g.AddEdge("C", "A", 1)

	res, err := bfs.BFS(network(t, g), "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)

	res, err = bfs.BFS(network(t, g), "B")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, res.Order)
}

func TestBFS_IgnoresCosts(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("A", "D", 1000)
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "D", 1)

	res, err := bfs.BFS(network(t, g), "A")
	require.NoError(t, err)
	path, err := res.PathTo("D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "D"}, path)
}

func TestBFS_MaxDepth(t *testing.T) {
	cases := []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		t.Run(strconv.Itoa(tc.depth), func(t *testing.T) {
			res, err := bfs.BFS(chain(t), "A", bfs.WithMaxDepth(tc.depth))
			require.NoError(t, err)
			require.Equal(t, tc.want, res.Order)
		})
	}
}

func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS(chain(t), "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	g.AddEdge("A", "A", 1)
	g.AddEdge("A", "B", 8)
	g.AddEdge("A", "B", 15)

	var enqueued []string
	res, err := bfs.BFS(network(t, g), "A",
		bfs.WithOnEnqueue(func(id string, _ int) { enqueued = append(enqueued, id) }))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
	require.Equal(t, []string{"A", "B"}, enqueued)
}

func TestBFS_Hooks(t *testing.T) {
	var enq, vis []string
	entry := func(id string, d int) string { return id + "@" + strconv.Itoa(d) }

	_, err := bfs.BFS(chain(t), "A",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, entry(id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, entry(id, d)); return nil }),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A@0", "B@1", "C@2"}, enq)
	require.Equal(t, enq, vis)

	stop := errors.New("enough")
	res, err := bfs.BFS(chain(t), "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("X")
	g.AddEdge("P", "Q", 0)

	res, err := bfs.BFS(network(t, g), "X")
	require.NoError(t, err)

	path, err := res.PathTo("X")
	require.NoError(t, err)
	require.Equal(t, []string{"X"}, path)

	_, err = res.PathTo("Q")
	require.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(network(t, g), "v0", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFS_ConcurrentRuns(t *testing.T) {
	n := chain(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := bfs.BFS(n, "A")
			if assert.NoError(t, err) {
				assert.Len(t, res.Order, 3)
			}
		}()
	}
	wg.Wait()
}
