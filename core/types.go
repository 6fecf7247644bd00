// Package core defines the integer-indexed undirected multigraph that the
// traversal engine operates on.
//
// Vertices are positional: a graph constructed with N vertices owns exactly
// the identifiers 0..N-1 and never grows or shrinks. Edges are undirected,
// append-only, and never deduplicated — parallel edges and self-loops are
// first-class citizens.
//
// All query methods return snapshots, so callers can never corrupt internal
// adjacency state through a returned slice.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph received a negative vertex count.
//	ErrVertexOutOfRange    - a vertex identifier is outside [0, VertexCount).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex identifier outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

// Graph is an undirected multigraph over the fixed vertex set 0..N-1.
//
// adjacency[v] holds v's neighbors in the order edges were added; adding the
// edge (v,u) appends u to adjacency[v] and v to adjacency[u]. A self-loop
// appends the vertex to its own list twice. edgeCount advances once per
// AddEdge call regardless of the two adjacency insertions.
//
// mu guards adjacency and edgeCount: mutations take the write lock, queries
// the read lock, so a Graph may be built and queried across goroutines.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency [][]int // adjacency[v] = neighbors of v in insertion order
	edgeCount int     // one per AddEdge call
}

// NewGraph creates a graph with the given number of vertices and no edges.
// Returns ErrNegativeVertexCount if vertices < 0.
//
// Complexity: O(V)
func NewGraph(vertices int) (*Graph, error) {
	if vertices < 0 {
		return nil, ErrNegativeVertexCount
	}

	return &Graph{adjacency: make([][]int, vertices)}, nil
}
