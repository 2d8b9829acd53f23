// Package astar: core contracts and configuration for the A* engine.
//
// This file declares the sentinel errors, the read-only Graph surface
// the engine consumes, the pluggable Costs strategy, and the session
// Options.

package astar

import (
	"errors"

	"github.com/katalvlaran/astar/core"
)

// Sentinel errors returned (or panicked, where noted) by the engine.
var (
	// ErrNilGraph indicates Compute was invoked before a graph was bound.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrSourceNotFound indicates the configured source vertex does not
	// exist in the bound graph at compute time.
	ErrSourceNotFound = errors.New("astar: source vertex not found in graph")

	// ErrTargetNotFound indicates the configured target vertex does not
	// exist in the bound graph at compute time.
	ErrTargetNotFound = errors.New("astar: target vertex not found in graph")

	// ErrMissingPosition indicates EuclideanCosts met a vertex without
	// "x"/"y" position attributes. Raised via panic: there is no sensible
	// default heuristic, so this is a precondition violation rather than
	// a recoverable condition.
	ErrMissingPosition = errors.New("astar: vertex has no position attributes")
)

// Graph is the minimal read-only surface the engine consumes from the
// graph collaborator. *core.Graph satisfies it; any store that can
// resolve vertices by ID and enumerate incident edges may stand in.
//
// Neighbors must be finite and exhaustive; iteration order does not
// affect correctness (the engine orders candidates itself).
type Graph interface {
	// Vertex returns the vertex with the given ID and whether it exists.
	Vertex(id string) (*core.Vertex, bool)

	// Neighbors returns every edge incident to the given vertex.
	Neighbors(id string) ([]*core.Edge, error)
}

// Costs is the pluggable cost strategy consumed by the engine.
//
// Heuristic estimates the remaining cost from node to target (the h
// value). Optimality of the search requires admissibility — the
// estimate must never exceed the true remaining cost — but the engine
// does not verify this.
//
// Cost returns the actual, non-negative cost of traversing via from
// parent to next (the g increment). via is never nil.
type Costs interface {
	Heuristic(node, target *core.Vertex) float64
	Cost(parent *core.Vertex, via *core.Edge, next *core.Vertex) float64
}

// Option configures an AStar session at construction time.
type Option func(*AStar)

// WithCosts sets the cost strategy for the session.
// A nil strategy is ignored and the default WeightCosts stays in effect.
func WithCosts(c Costs) Option {
	return func(a *AStar) {
		if c != nil {
			a.costs = c
		}
	}
}

// WithWeightAttribute configures the default WeightCosts strategy to
// read edge costs from the named attribute instead of "weight".
func WithWeightAttribute(name string) Option {
	return func(a *AStar) { a.costs = NewWeightCosts(name) }
}

// WithEndpoints sets both endpoints at construction time, mirroring
// New followed by SetSource and SetTarget.
func WithEndpoints(source, target string) Option {
	return func(a *AStar) {
		a.source = source
		a.target = target
	}
}
