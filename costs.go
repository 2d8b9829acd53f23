// Package astar: the two standard Costs strategies.
//
// WeightCosts reads a named numeric attribute from edges with a zero
// heuristic (plain Dijkstra). EuclideanCosts derives both values from
// vertex positions. Both are free-standing values, injected into the
// engine rather than baked into it, so callers can substitute their
// own strategy without touching the search loop.

package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/astar/core"
)

// DefaultEdgeCost is the cost substituted by WeightCosts when an edge
// carries no weight attribute.
const DefaultEdgeCost = 1.0

// WeightCosts is the default cost strategy: a zero heuristic (which
// degenerates A* into Dijkstra's algorithm) and an edge cost read from
// a named numeric attribute, DefaultEdgeCost when absent.
type WeightCosts struct {
	// Attribute is the edge attribute holding the traversal cost.
	Attribute string
}

// NewWeightCosts returns a WeightCosts reading the named edge
// attribute; the conventional "weight" is used when name is empty.
func NewWeightCosts(name string) WeightCosts {
	if name == "" {
		name = core.AttrWeight
	}

	return WeightCosts{Attribute: name}
}

// Heuristic always estimates zero remaining cost. Trivially admissible.
func (WeightCosts) Heuristic(_, _ *core.Vertex) float64 { return 0 }

// Cost returns the edge's named attribute, or DefaultEdgeCost when the
// attribute is absent. Missing attributes are not an error.
func (wc WeightCosts) Cost(_ *core.Vertex, via *core.Edge, _ *core.Vertex) float64 {
	if w, ok := via.Number(wc.Attribute); ok {
		return w
	}

	return DefaultEdgeCost
}

// EuclideanCosts assumes vertices carry positions ("x"/"y", optionally
// "z") and that edge costs are geometric lengths. The heuristic is the
// straight-line distance to the target — admissible whenever edge
// costs are at least the distance between their endpoints.
//
// A vertex without a position is a precondition violation: both
// methods panic with ErrMissingPosition.
type EuclideanCosts struct{}

// Heuristic returns the straight-line 2D/3D distance from node to target.
func (EuclideanCosts) Heuristic(node, target *core.Vertex) float64 {
	return positionDistance(node, target)
}

// Cost returns the geometric length of via, i.e. the straight-line
// distance between parent and next. The edge's own attributes are not
// consulted.
func (EuclideanCosts) Cost(parent *core.Vertex, _ *core.Edge, next *core.Vertex) float64 {
	return positionDistance(parent, next)
}

// positionDistance computes the euclidean distance between two
// positioned vertices. The z component participates only when both
// vertices are 3D. Panics with ErrMissingPosition when either vertex
// has no position.
func positionDistance(u, v *core.Vertex) float64 {
	pu, dimU, ok := u.Position()
	if !ok {
		panic(fmt.Errorf("%w: vertex %q", ErrMissingPosition, u.ID))
	}
	pv, dimV, ok := v.Position()
	if !ok {
		panic(fmt.Errorf("%w: vertex %q", ErrMissingPosition, v.ID))
	}

	dx := pv[0] - pu[0]
	dy := pv[1] - pu[1]
	var dz float64
	if dimU > 2 && dimV > 2 {
		dz = pv[2] - pu[2]
	}

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
