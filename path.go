// Package astar: the Path result type.

package astar

import "github.com/katalvlaran/astar/core"

// Path is an ordered walk from source to target: the visited vertices
// and the edges connecting consecutive ones. A degenerate path (source
// equals target) holds a single vertex and no edges, so
// len(Vertices) == len(Edges) + 1 always holds for a non-nil Path.
type Path struct {
	// Vertices lists the vertices in walk order, source first.
	Vertices []*core.Vertex

	// Edges lists the edge crossed between each consecutive vertex pair.
	Edges []*core.Edge
}

// Len returns the number of edges in the path.
func (p *Path) Len() int { return len(p.Edges) }

// IDs returns the vertex IDs in walk order.
func (p *Path) IDs() []string {
	out := make([]string, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.ID
	}

	return out
}

// Cost recomputes the total traversal cost of the path under the given
// strategy by summing Cost over each hop. Zero for degenerate paths.
func (p *Path) Cost(c Costs) float64 {
	var total float64
	for i, e := range p.Edges {
		total += c.Cost(p.Vertices[i], e, p.Vertices[i+1])
	}

	return total
}
