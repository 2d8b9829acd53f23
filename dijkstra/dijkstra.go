// Package dijkstra implements Dijkstra's shortest-path algorithm on
// attribute-weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex
// to all other reachable vertices in a graph with non-negative edge
// costs. It processes vertices in order of increasing distance using a
// min-heap priority queue under the "lazy decrease-key" strategy:
// improvements push duplicates, stale entries are skipped when popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/astar/core"
)

// Unreachable is the distance reported for vertices the source cannot
// reach: positive infinity.
var Unreachable = math.Inf(1)

// defaultEdgeCost is substituted when an edge has no weight attribute,
// matching the astar package's WeightCosts model.
const defaultEdgeCost = 1.0

// Dijkstra computes shortest distances from the source vertex
// (Options.Source) to all other vertices in g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Unreachable if none).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable vertices, prev[v] == "".
//   - err:  error if inputs are invalid or a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have a negative weight attribute (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph.
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 5) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if w, ok := e.Number(cfg.WeightAttribute); ok && w < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, w)
		}
	}

	// 6) Prepare per-run state sized to the vertex count.
	vertices := g.Vertices()
	n := len(vertices)

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, n)
	}

	// 7) Initialize state and run the main loop.
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // the input graph; read-only during the run
	options Options            // configuration (source, weight attribute, …)
	dist    map[string]float64 // vertex ID → current best distance from source
	prev    map[string]string  // vertex ID → predecessor on the shortest path
	visited map[string]bool    // whether a vertex's distance is finalized
	pq      nodePQ             // min-heap for the lazy priority queue
}

// init sets distances to Unreachable, the source to zero, and seeds the heap.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = "" // no predecessor yet
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the vertex with the minimum distance and
// relaxes its outgoing edges, until the heap empties.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale entries for already-finalized vertices.
		if r.visited[item.id] {
			continue
		}

		// 3) Mark finalized; its shortest distance is now final.
		r.visited[item.id] = true

		// 4) Relax all outgoing edges.
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving vertex u and attempts to improve
// the distances of its neighbors. Assumes dist[u] is finalized.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		// Directed edges leave only from their origin.
		if e.Directed && e.From != u {
			continue
		}
		v, ok := e.Opposite(u)
		if !ok {
			continue
		}

		w, ok := e.Number(r.options.WeightAttribute)
		if !ok {
			w = defaultEdgeCost
		}
		// Pre-scan catches catalogued negatives; keep the guard anyway.
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, v, w)
		}

		// Strict improvement only, to avoid duplicate pushes on ties.
		newDist := r.dist[u] + w
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem, ordered by dist ascending, used
// under the lazy-decrease-key strategy: outdated entries remain in the
// heap and are ignored when popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
