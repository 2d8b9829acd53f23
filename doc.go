// Package astar provides a precise implementation of the A* best-first
// search for single-pair shortest paths on weighted graphs, reusable as
// plain Dijkstra through its default zero heuristic.
//
// Overview:
//
//   - A* computes the minimum-cost path between two vertices, guided by a
//     pluggable Costs strategy: Heuristic (the h value, estimated cost to
//     the target) and Cost (the g increment, actual cost of crossing an
//     edge). Their sum is the rank (often called f) used to pick the next
//     vertex to expand.
//   - With an admissible heuristic (never overestimating the true
//     remaining cost) and non-negative edge costs, the returned path is
//     optimal. The engine does not verify admissibility.
//   - The default WeightCosts strategy uses a zero heuristic and reads a
//     named "weight" attribute from edges (1 when absent), which makes
//     the search an exact equivalent of Dijkstra's algorithm.
//   - EuclideanCosts uses the straight-line distance between vertex
//     positions (2D or 3D, from "x"/"y"/"z" attributes) as the heuristic
//     and the geometric edge length as the cost.
//
// Usage:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", core.WithWeight(2))
//	g.AddEdge("B", "D", core.WithWeight(2))
//	g.AddEdge("A", "C", core.WithWeight(1))
//	g.AddEdge("C", "D", core.WithWeight(1))
//
//	a := astar.New(g)
//	if err := a.ComputeBetween("A", "D"); err != nil { … }
//	path := a.ShortestPath() // A → C → D
//
// Session contract:
//
//   - SetSource / SetTarget update one endpoint, preserve the other and
//     the Costs strategy, and clear any previously computed result.
//   - SetCosts swaps the strategy without clearing results; call Compute
//     again to refresh.
//   - Compute silently does nothing (and returns nil) while either
//     endpoint is unset — by contract, not by accident; callers that
//     prefer a hard failure should check endpoints themselves.
//   - One session runs one search at a time; serialize concurrent use
//     externally, or use one session per query. The graph is treated as
//     immutable for the duration of a run.
//
// Determinism:
//
//   - Equal-rank candidates are expanded in order of lexicographically
//     smaller vertex ID, so repeated runs on the same graph return the
//     same path, not just the same cost.
//
// Performance and complexity:
//
//   - Time: O((V + E) log V) with a zero heuristic; an informative
//     heuristic visits fewer vertices. Re-opening a closed vertex happens
//     only on strict rank improvement, which bounds re-expansions.
//   - Space: O(V + E) — per-run record arena, open/closed index maps, and
//     a lazy min-heap over the open set.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        Compute was invoked before a graph was bound.
//   - ErrSourceNotFound:  the configured source ID does not resolve.
//   - ErrTargetNotFound:  the configured target ID does not resolve.
//   - ErrMissingPosition: EuclideanCosts met a vertex without position
//     attributes — a precondition violation surfaced as a panic, since
//     no sensible default heuristic exists.
//
// "No path found" is a normal terminal outcome, not an error: after a
// completed run NoPathFound() reports true and ShortestPath() is nil.
//
// See also:
//
//   - core.Graph: graph construction, attributes, mixed-edge support.
//   - dijkstra: single-source distances over the same cost model.
package astar
