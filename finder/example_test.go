package finder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphfinder/core"
	"github.com/katalvlaran/graphfinder/finder"
)

// ExampleNewNetwork shows first-match cost lookup on a multigraph.
func ExampleNewNetwork() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 5)
	_, _ = g.AddEdge("A", "C", 8)
	_, _ = g.AddEdge("A", "C", 15)

	net, err := finder.NewNetwork(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	cost, _ := net.MovementCostBetween("A", "C")
	fmt.Println(net.NeighboursOf("A"), cost)

	_, err = net.MovementCostBetween("B", "A")
	fmt.Println(errors.Is(err, finder.ErrNoSuchEdge))
	// Output:
	// [B C C] 8
	// true
}

// ExampleNewEnvironment3D reads positions from x/y/z vertex attributes.
func ExampleNewEnvironment3D() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddVertex("D")
	_ = g.SetAttribute("D", "x", 5)
	_ = g.SetAttribute("D", "y", 10)

	env, err := finder.NewEnvironment3D(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, _ := env.PositionOf("D")
	fmt.Println(p)

	_, err = env.PositionOf("nowhere")
	fmt.Println(errors.Is(err, finder.ErrUnknownNode))
	// Output:
	// [5 10 0]
	// true
}
