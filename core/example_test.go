// Package core_test provides runnable examples for graph construction
// and the attribute accessors.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/astar/core"
)

// ExampleNewGraph builds a small weighted square and inspects it.
func ExampleNewGraph() {
	//	A───B
	//	│   │
	//	C───D
	g := core.NewGraph()
	g.AddEdge("A", "B", core.WithWeight(2))
	g.AddEdge("A", "C", core.WithWeight(1))
	g.AddEdge("B", "D", core.WithWeight(2))
	g.AddEdge("C", "D", core.WithWeight(1))

	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.EdgeCount())

	edges, _ := g.Neighbors("A")
	for _, e := range edges {
		w, _ := e.Number(core.AttrWeight)
		to, _ := e.Opposite("A")
		fmt.Printf("A—%s costs %g\n", to, w)
	}
	// Output:
	// vertices: [A B C D]
	// edges: 4
	// A—B costs 2
	// A—C costs 1
}

// ExampleVertex_Position shows coordinate attributes feeding the
// euclidean cost model.
func ExampleVertex_Position() {
	g := core.NewGraph()
	g.AddVertex("depot", core.WithPosition(0, 0))
	g.AddVertex("drone", core.WithPosition3D(1, 2, 3))

	depot, _ := g.Vertex("depot")
	if pos, dim, ok := depot.Position(); ok {
		fmt.Printf("depot at (%g, %g), %dD\n", pos[0], pos[1], dim)
	}

	drone, _ := g.Vertex("drone")
	if pos, dim, ok := drone.Position(); ok {
		fmt.Printf("drone at (%g, %g, %g), %dD\n", pos[0], pos[1], pos[2], dim)
	}
	// Output:
	// depot at (0, 0), 2D
	// drone at (1, 2, 3), 3D
}
