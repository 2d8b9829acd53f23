// Package astar: session API and the best-first search loop.
//
// The AStar session holds configuration (graph, endpoints, costs) and
// the latest result. All per-run search state — the record arena, the
// open and closed index maps, and the priority queue — lives in a
// runner created fresh inside Compute, so sequential reuse of one
// session can never leak state between queries.

package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/astar/core"
)

// AStar computes minimum-cost paths between two vertices of a graph.
// Zero value is not usable; construct with New.
//
// A session is not safe for concurrent use; serialize externally or
// use one session per query.
type AStar struct {
	graph  Graph
	source string
	target string
	costs  Costs

	// result of the last completed run; nil if none or no path.
	result *Path

	// noPathFound is true exactly when the last run exhausted the open
	// set without reaching the target.
	noPathFound bool
}

// New creates a session bound to g with the default WeightCosts
// strategy, then applies the options.
func New(g Graph, opts ...Option) *AStar {
	a := &AStar{costs: NewWeightCosts("")}
	a.Init(g)
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init binds (or rebinds) the graph and clears any computed result.
// Endpoints and the cost strategy are preserved.
func (a *AStar) Init(g Graph) {
	a.clearAll()
	a.graph = g
}

// SetSource changes the source vertex ID. This clears the computed
// result but preserves the target and the cost strategy.
func (a *AStar) SetSource(id string) {
	a.clearAll()
	a.source = id
}

// SetTarget changes the target vertex ID. This clears the computed
// result but preserves the source and the cost strategy.
func (a *AStar) SetTarget(id string) {
	a.clearAll()
	a.target = id
}

// SetCosts replaces the cost strategy. Calling this does NOT clear a
// previously computed result; run Compute again to refresh it.
// A nil strategy is ignored.
func (a *AStar) SetCosts(c Costs) {
	if c != nil {
		a.costs = c
	}
}

// ShortestPath returns the path computed by the last run, or nil when
// no run happened or no path exists.
func (a *AStar) ShortestPath() *Path { return a.result }

// NoPathFound reports whether the last run completed by exhausting the
// open set without reaching the target.
func (a *AStar) NoPathFound() bool { return a.noPathFound }

// Compute runs the search between the configured endpoints.
//
// While either endpoint is unset, Compute is a silent no-op returning
// nil; callers that want a hard failure should validate endpoints
// themselves.
//
// Returns ErrNilGraph before a graph is bound, and ErrSourceNotFound /
// ErrTargetNotFound when an endpoint does not resolve; state is
// cleared before these checks, so no partial result survives.
func (a *AStar) Compute() error {
	// 1) Silent no-op while the session is only partially configured.
	if a.source == "" || a.target == "" {
		return nil
	}

	// 2) Fresh run: drop any previous result before validation.
	a.clearAll()

	// 3) Fail fast on an unbound graph or unresolved endpoints.
	if a.graph == nil {
		return ErrNilGraph
	}
	src, ok := a.graph.Vertex(a.source)
	if !ok {
		return fmt.Errorf("%w: %q", ErrSourceNotFound, a.source)
	}
	dst, ok := a.graph.Vertex(a.target)
	if !ok {
		return fmt.Errorf("%w: %q", ErrTargetNotFound, a.target)
	}

	// 4) Run the loop to completion (found or exhausted).
	return a.search(src, dst)
}

// ComputeBetween sets both endpoints, then computes.
func (a *AStar) ComputeBetween(source, target string) error {
	a.SetSource(source)
	a.SetTarget(target)

	return a.Compute()
}

// FindPath is a one-shot convenience: build a session over g, compute
// source→target, and return the path (nil when none exists — check
// errors, not nilness, for configuration problems).
func FindPath(g Graph, source, target string, opts ...Option) (*Path, error) {
	a := New(g, opts...)
	if err := a.ComputeBetween(source, target); err != nil {
		return nil, err
	}

	return a.ShortestPath(), nil
}

// clearAll resets the per-session result state. Per-run state (arena,
// open/closed, queue) is scoped to the runner and needs no reset here.
func (a *AStar) clearAll() {
	a.result = nil
	a.noPathFound = false
}

// record is one vertex's best-known search state: immutable once
// created; an improvement appends a fresh record and repoints the open
// map rather than mutating in place. rank == g + h always.
type record struct {
	node   *core.Vertex
	parent int        // arena index of the predecessor record, -1 for the source
	via    *core.Edge // edge crossed from parent, nil for the source
	g      float64    // accumulated cost from the source
	h      float64    // heuristic estimate of remaining cost
	rank   float64    // g + h, the selection priority
}

// runner holds the mutable state for a single search execution.
//
// Parent links are arena indices rather than pointers: a record's
// parent always predates it in the arena, so the chain is acyclic by
// construction and replacement can never dangle.
type runner struct {
	graph  Graph
	costs  Costs
	target *core.Vertex

	arena  []record       // per-run record store; grows append-only
	open   map[string]int // vertex ID → arena index, discovered not finalized
	closed map[string]int // vertex ID → arena index, finalized (re-openable)
	pq     openPQ         // lazy min-heap over open entries
}

// search runs the A* loop from src to dst, storing the outcome on the
// session: a built path on success, the no-path flag on exhaustion.
func (a *AStar) search(src, dst *core.Vertex) error {
	r := &runner{
		graph:  a.graph,
		costs:  a.costs,
		target: dst,
		open:   make(map[string]int),
		closed: make(map[string]int),
	}
	heap.Init(&r.pq)

	// Seed the open set with the source record: g=0, rank=h.
	r.insert(record{
		node:   src,
		parent: -1,
		g:      0,
		h:      r.costs.Heuristic(src, dst),
	})

	for {
		// 1) Select the live open record with minimal rank (ties by ID).
		idx, ok := r.next()
		if !ok {
			break // open set exhausted
		}
		cur := r.arena[idx]

		// 2) Target reached: reconstruct and stop.
		if cur.node.ID == dst.ID {
			a.result = r.buildPath(idx)

			return nil
		}

		// 3) Finalize the record and expand its leaving edges.
		delete(r.open, cur.node.ID)
		r.closed[cur.node.ID] = idx
		if err := r.expand(idx, cur); err != nil {
			return err
		}
	}

	a.noPathFound = true

	return nil
}

// expand relaxes every leaving edge of the record at index idx,
// inserting or replacing open records on strict rank improvement and
// re-opening closed vertices when beaten.
func (r *runner) expand(idx int, cur record) error {
	edges, err := r.graph.Neighbors(cur.node.ID)
	if err != nil {
		return fmt.Errorf("astar: failed to get neighbors of %q: %w", cur.node.ID, err)
	}

	for _, e := range edges {
		// Directed edges leave only from their origin; skip the rest so
		// we never walk backwards along a one-way edge.
		if e.Directed && e.From != cur.node.ID {
			continue
		}
		nextID, ok := e.Opposite(cur.node.ID)
		if !ok {
			continue // not incident to cur
		}
		next, ok := r.graph.Vertex(nextID)
		if !ok {
			continue
		}

		// Candidate record values for next via this edge.
		h := r.costs.Heuristic(next, r.target)
		g := cur.g + r.costs.Cost(cur.node, e, next)
		rank := g + h

		// Already open with an equal or better rank: no improvement.
		if oi, isOpen := r.open[nextID]; isOpen && r.arena[oi].rank <= rank {
			continue
		}
		// Already closed with an equal or better rank: no improvement.
		if ci, isClosed := r.closed[nextID]; isClosed && r.arena[ci].rank <= rank {
			continue
		}

		// Strict improvement: re-open if closed, replace any open record.
		delete(r.closed, nextID)
		r.insert(record{node: next, parent: idx, via: e, g: g, h: h})
	}

	return nil
}

// insert appends rec to the arena, points the open map at it, and
// pushes a queue entry. rec.rank is derived here so the rank == g + h
// invariant holds for every stored record.
func (r *runner) insert(rec record) {
	rec.rank = rec.g + rec.h
	idx := len(r.arena)
	r.arena = append(r.arena, rec)
	r.open[rec.node.ID] = idx
	heap.Push(&r.pq, openEntry{id: rec.node.ID, rank: rec.rank})
}

// next pops queue entries until one matches the live open record for
// its vertex, returning that record's arena index. Stale entries —
// left behind by replacement or closing — are discarded.
// Returns ok=false when the open set is exhausted.
func (r *runner) next() (int, bool) {
	for r.pq.Len() > 0 {
		entry := heap.Pop(&r.pq).(openEntry)
		idx, ok := r.open[entry.id]
		if !ok {
			continue // closed or replaced since it was pushed
		}
		if r.arena[idx].rank != entry.rank {
			continue // superseded by a better record
		}

		return idx, true
	}

	return 0, false
}

// buildPath walks parent links from the terminal record back to the
// source, then reverses into a source-first Path. A terminal record
// with no parent yields the degenerate single-vertex path.
func (r *runner) buildPath(idx int) *Path {
	// Count hops to size the slices exactly.
	n := 0
	for i := idx; i != -1; i = r.arena[i].parent {
		n++
	}

	p := &Path{
		Vertices: make([]*core.Vertex, n),
		Edges:    make([]*core.Edge, n-1),
	}
	// Fill back-to-front while walking the chain.
	for i, pos := idx, n-1; i != -1; i, pos = r.arena[i].parent, pos-1 {
		p.Vertices[pos] = r.arena[i].node
		if r.arena[i].parent != -1 {
			p.Edges[pos-1] = r.arena[i].via
		}
	}

	return p
}

// openEntry is one queue element: a vertex ID and the rank its record
// had when pushed. Entries are never updated; stale ones are skipped
// on pop (lazy-decrease-key, validated against the open map).
type openEntry struct {
	id   string
	rank float64
}

// openPQ is a min-heap of openEntry ordered by rank ascending, with
// ties broken by lexicographically smaller vertex ID so selection —
// and therefore the returned path — is deterministic.
type openPQ []openEntry

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller rank → higher priority, then smaller ID.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].rank != pq[j].rank {
		return pq[i].rank < pq[j].rank
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(openEntry)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
