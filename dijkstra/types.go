// Package dijkstra defines configuration options and sentinel errors
// for Dijkstra's shortest-path algorithm over attribute-weighted graphs.
//
// Dijkstra computes the minimum cost from a single source vertex to
// all other reachable vertices. Edge costs are read from a named
// numeric attribute ("weight" by default) and default to 1 when the
// attribute is absent — the same cost model as astar.WeightCosts, so
// the two packages agree exactly on every graph.
//
// Errors (sentinel):
//
//	– ErrEmptySource    if the provided source ID is empty.
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if the source vertex does not exist in the graph.
//	– ErrNegativeWeight if a negative edge weight is detected in the graph.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/astar/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source          – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath      – if true, return the predecessor map; otherwise prev map is nil.
// WeightAttribute – edge attribute holding the traversal cost; edges
// without it cost astar's DefaultEdgeCost (1).
type Options struct {
	Source          string
	ReturnPath      bool
	WeightAttribute string
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithWeightAttribute sets the edge attribute read for traversal costs.
// The conventional "weight" is used when name is empty.
func WithWeightAttribute(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.WeightAttribute = name
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults for the given source vertex ID.
//
// Defaults:
//   - Source:          <as passed> (no validation here; validated in Dijkstra).
//   - ReturnPath:      false (predecessor map not returned).
//   - WeightAttribute: "weight".
func DefaultOptions(source string) Options {
	return Options{
		Source:          source,
		ReturnPath:      false,
		WeightAttribute: core.AttrWeight,
	}
}
