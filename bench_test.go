// Package astar_test: benchmarks comparing the zero-heuristic and
// euclidean configurations on positioned grid graphs.
package astar_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/astar"
	"github.com/katalvlaran/astar/core"
)

// buildGrid constructs an n×n 4-connected grid with unit edge weights
// and "x"/"y" positions, suitable for both cost strategies.
func buildGrid(n int) *core.Graph {
	g := core.NewGraph()
	id := func(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			_ = g.AddVertex(id(x, y), core.WithPosition(float64(x), float64(y)))
		}
	}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if x+1 < n {
				_, _ = g.AddEdge(id(x, y), id(x+1, y), core.WithWeight(1))
			}
			if y+1 < n {
				_, _ = g.AddEdge(id(x, y), id(x, y+1), core.WithWeight(1))
			}
		}
	}

	return g
}

// BenchmarkAStar measures corner-to-corner searches on grids of
// increasing size, with and without an informative heuristic.
func BenchmarkAStar(b *testing.B) {
	for _, size := range []int{10, 25, 50} {
		g := buildGrid(size)
		source := "0,0"
		target := fmt.Sprintf("%d,%d", size-1, size-1)

		b.Run(fmt.Sprintf("Dijkstra/%dx%d", size, size), func(b *testing.B) {
			a := astar.New(g)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := a.ComputeBetween(source, target); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(fmt.Sprintf("Euclidean/%dx%d", size, size), func(b *testing.B) {
			a := astar.New(g, astar.WithCosts(astar.EuclideanCosts{}))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := a.ComputeBetween(source, target); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
