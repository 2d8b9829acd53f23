// Package core: thread-safe Graph method implementations.
//
// This file provides vertex and edge management plus the read-only
// query surface consumed by the search packages. Adjacency is stored
// as a nested map adjacency[from][to][edgeID] = struct{}{}, allowing
// constant-time existence, insertion, and deletion of edges.
// Iteration methods (Vertices, Edges, Neighbors) return sorted
// results for deterministic behavior.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID and options.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, the options are applied to it
// (attributes merge; the call stays idempotent for the topology).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	// Validate input: empty IDs are not allowed.
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	v, exists := g.vertices[id]
	if !exists {
		v = &Vertex{ID: id}
		g.vertices[id] = v
		g.ensureAdj(id)
	}
	for _, opt := range opts {
		opt(v)
	}

	return nil
}

// Vertex returns the vertex with the given ID and whether it exists.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]

	return v, ok
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddEdge creates a new edge from 'from' to 'to' with the given
// options and returns its unique Edge.ID. Missing endpoints are
// auto-added. For undirected edges the adjacency is mirrored both
// ways; the edge itself is stored once.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed,
// ErrMixedEdgesNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	// 1) Input validation.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Loop constraint.
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 3) Stage the edge and apply per-edge options before locking.
	e := &Edge{From: from, To: to, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	// 4) Per-edge direction overrides require mixed mode, unless the
	//    override merely restates the graph default.
	if e.dirOverride && e.Directed != g.directed && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 5) Multi-edge constraint: any existing edge between the endpoints.
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// 6) Ensure both endpoints exist.
	if _, ok := g.vertices[from]; !ok {
		g.vertices[from] = &Vertex{ID: from}
	}
	if _, ok := g.vertices[to]; !ok {
		g.vertices[to] = &Vertex{ID: to}
	}
	g.ensureAdj(from)
	g.ensureAdj(to)

	// 7) Assign a collision-free ID and catalog the edge.
	e.ID = fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	g.edges[e.ID] = e

	// 8) Record adjacency; mirror for undirected edges.
	g.linkAdj(from, to, e.ID)
	if !e.Directed && from != to {
		g.linkAdj(to, from, e.ID)
	}

	return e.ID, nil
}

// Neighbors returns every edge incident to the given vertex, sorted
// by edge ID for deterministic iteration. Directed edges appear in
// the neighbor list of their origin only; undirected edges appear on
// both sides. Self-loops appear once.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	// Collect unique edge IDs from all outgoing buckets.
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			if _, dup := seen[eid]; dup {
				continue
			}
			seen[eid] = struct{}{}
			ids = append(ids, eid)
		}
	}
	sort.Strings(ids)

	out := make([]*Edge, len(ids))
	for i, eid := range ids {
		out[i] = g.edges[eid]
	}

	return out, nil
}

// Vertices returns the IDs of all vertices, sorted.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns all edges, sorted by edge ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.edges))
	for eid := range g.edges {
		ids = append(ids, eid)
	}
	sort.Strings(ids)

	out := make([]*Edge, len(ids))
	for i, eid := range ids {
		out[i] = g.edges[eid]
	}

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of stored edges (mirrored adjacency of
// undirected edges counts once). Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Directed reports the graph-wide default directedness applied to new edges.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Clear removes all vertices and edges, preserving configuration flags.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
}

// Opposite returns the endpoint of e opposite to the given vertex ID,
// and whether id is an endpoint of e at all.
// For self-loops both endpoints coincide and the same ID is returned.
func (e *Edge) Opposite(id string) (string, bool) {
	switch id {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	default:
		return "", false
	}
}

// ensureAdj lazily initializes the outer adjacency bucket for id.
// Caller must hold the write lock.
func (g *Graph) ensureAdj(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// linkAdj records edge eid in adjacency[from][to].
// Caller must hold the write lock.
func (g *Graph) linkAdj(from, to, eid string) {
	if _, ok := g.adjacency[from][to]; !ok {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
}
