// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// All Graph APIs share one sync.RWMutex internally, so you can safely
// build and read your graphs across goroutines.
//
// Vertices and edges carry named float64 attributes ("weight", "x",
// "y", …) queried through typed accessors with an explicit presence
// check; algorithms decide their own defaults when an attribute is
// absent.
//
// This file declares Vertex, Edge, Graph, their option types,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled.
//	ErrMixedEdgesNotAllowed - per-edge direction override without mixed mode.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override without mixed-mode.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Named numeric attributes (coordinates, demands, …) are read and
// written through Number and SetNumber.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// attrs holds named numeric attributes. Lazily allocated.
	attrs map[string]float64
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, named numeric
// attributes (typically "weight"), and a Directed flag that overrides
// the Graph's default directedness when mixed edges are enabled.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	// attrs holds named numeric attributes. Lazily allocated.
	attrs map[string]float64

	// dirOverride records that an EdgeOption explicitly set Directed,
	// so AddEdge can enforce the mixed-mode policy.
	dirOverride bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// VertexOption configures properties of a vertex when added.
type VertexOption func(*Vertex)

// WithVertexNumber sets the named numeric attribute on the new vertex.
func WithVertexNumber(name string, value float64) VertexOption {
	return func(v *Vertex) { v.SetNumber(name, value) }
}

// WithPosition sets the "x" and "y" coordinate attributes on the new vertex.
func WithPosition(x, y float64) VertexOption {
	return func(v *Vertex) {
		v.SetNumber(AttrX, x)
		v.SetNumber(AttrY, y)
	}
}

// WithPosition3D sets the "x", "y" and "z" coordinate attributes on the new vertex.
func WithPosition3D(x, y, z float64) VertexOption {
	return func(v *Vertex) {
		v.SetNumber(AttrX, x)
		v.SetNumber(AttrY, y)
		v.SetNumber(AttrZ, z)
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) {
		e.Directed = directed
		e.dirOverride = true
	}
}

// WithEdgeNumber sets the named numeric attribute on the new edge.
func WithEdgeNumber(name string, value float64) EdgeOption {
	return func(e *Edge) { e.SetNumber(name, value) }
}

// WithWeight sets the conventional "weight" attribute on the new edge.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.SetNumber(AttrWeight, w) }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected defaults, per-edge orientation
// overrides (mixed mode), parallel edges (multi-edges) and self-loops.
// One RWMutex guards vertices, edges and adjacency; nextEdgeID is an
// atomic counter for unique Edge.ID generation.
type Graph struct {
	mu sync.RWMutex // guards vertices, edges, adjacency

	// Configuration flags
	directed   bool // default directedness
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow per-edge direction overrides

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
