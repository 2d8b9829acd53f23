// Package dijkstra_test contains unit tests for the Dijkstra
// implementation: input validation, basic shortest paths, directed
// graphs, attribute defaulting, and degenerate inputs.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/astar/core"
	"github.com/katalvlaran/astar/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g)
	if !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("A", "B", core.WithWeight(-5)); err != nil {
		t.Fatal(err)
	}
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic functionality.
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle(t *testing.T) {
	// Graph: A—B(1), B—C(2), A—C(5), undirected by default.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithWeight(1))
	_, _ = g.AddEdge("B", "C", core.WithWeight(2))
	_, _ = g.AddEdge("A", "C", core.WithWeight(5))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}

	// Distance from A to C should be 3 via A→B→C.
	if got, want := dist["C"], 3.0; got != want {
		t.Errorf("dist[C] = %g; want %g", got, want)
	}
	// prev should be nil when ReturnPath=false.
	if prev != nil {
		t.Errorf("expected nil predecessor map, got %v", prev)
	}
}

func TestDijkstra_ChainWithPath(t *testing.T) {
	// Graph:
	// A—B—C—D—E
	//      |
	//      F—G
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}, {"D", "F"}, {"F", "G"},
	} {
		_, _ = g.AddEdge(e[0], e[1], core.WithWeight(1))
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	expected := map[string]float64{
		"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 4, "G": 5,
	}
	for v, want := range expected {
		if got := dist[v]; got != want {
			t.Errorf("dist[%s] = %g; want %g", v, got, want)
		}
	}

	if prev["B"] != "A" || prev["C"] != "B" || prev["D"] != "C" {
		t.Errorf("Unexpected predecessors: %v", prev)
	}
}

func TestDijkstra_MissingWeightDefaultsToOne(t *testing.T) {
	// Bare edges cost 1 each under the shared attribute model.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 2 {
		t.Errorf("dist[C] = %g; want 2", dist["C"])
	}
}

func TestDijkstra_CustomWeightAttribute(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithEdgeNumber("len", 4), core.WithWeight(100))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithWeightAttribute("len"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["B"] != 4 {
		t.Errorf("dist[B] = %g; want 4 (from the len attribute)", dist["B"])
	}
}

// ------------------------------------------------------------------------
// 3. Directed graphs.
// ------------------------------------------------------------------------

func TestDijkstra_MediumDirectedGraph(t *testing.T) {
	// Directed: A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", core.WithWeight(2))
	_, _ = g.AddEdge("A", "C", core.WithWeight(1))
	_, _ = g.AddEdge("C", "B", core.WithWeight(1))
	_, _ = g.AddEdge("B", "D", core.WithWeight(3))
	_, _ = g.AddEdge("C", "D", core.WithWeight(5))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}

	// dist[C]=1, dist[B]=2 (via A→C→B), dist[D]=5 (via A→C→B→D).
	if dist["C"] != 1 {
		t.Errorf("dist[C] = %g; want 1", dist["C"])
	}
	if dist["B"] != 2 {
		t.Errorf("dist[B] = %g; want 2", dist["B"])
	}
	if dist["D"] != 5 {
		t.Errorf("dist[D] = %g; want 5", dist["D"])
	}
}

// ------------------------------------------------------------------------
// 4. Edge cases.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("Solo")

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Solo"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if d := dist["Solo"]; d != 0 {
		t.Errorf("dist[Solo] = %g; want 0", d)
	}
	if p := prev["Solo"]; p != "" {
		t.Errorf("prev[Solo] = %q; want empty string", p)
	}
}

func TestDijkstra_UnreachableReportsInfinity(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithWeight(1))
	_ = g.AddVertex("island")

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["island"] != dijkstra.Unreachable {
		t.Errorf("dist[island] = %g; want +Inf", dist["island"])
	}
}
