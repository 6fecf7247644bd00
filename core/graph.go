// Mutation and query methods for Graph.
//
// Mutations acquire the write lock; queries acquire the read lock and
// return snapshots of internal state.

package core

// AddEdge records the undirected edge (v,u): u is appended to v's adjacency
// list and v to u's. A self-loop (v == u) appends v to its own list twice.
// Parallel edges accumulate; nothing is deduplicated. The edge count grows
// by one per call.
// Returns ErrVertexOutOfRange if either endpoint is outside [0, VertexCount).
// Thread-safe: acquires the write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v, u int) error {
	if v < 0 || v >= len(g.adjacency) {
		return ErrVertexOutOfRange
	}
	if u < 0 || u >= len(g.adjacency) {
		return ErrVertexOutOfRange
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[v] = append(g.adjacency[v], u)
	g.adjacency[u] = append(g.adjacency[u], v)

	// One logical edge regardless of the two adjacency insertions.
	g.edgeCount++

	return nil
}

// NeighborsOf returns a snapshot of v's neighbors in edge-insertion order.
// Repeated and self edges appear with their multiplicity. Mutating the
// returned slice never affects the graph.
// Returns ErrVertexOutOfRange if v is outside [0, VertexCount).
// Thread-safe: acquires the read lock.
//
// Complexity: O(d) where d is the degree of v.
func (g *Graph) NeighborsOf(v int) ([]int, error) {
	if v < 0 || v >= len(g.adjacency) {
		return nil, ErrVertexOutOfRange
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// IsAdjacent reports whether u appears in v's adjacency list.
// Returns ErrVertexOutOfRange if either vertex is outside [0, VertexCount).
// Thread-safe: acquires the read lock.
//
// Complexity: O(d) where d is the degree of v.
func (g *Graph) IsAdjacent(u, v int) (bool, error) {
	if u < 0 || u >= len(g.adjacency) {
		return false, ErrVertexOutOfRange
	}
	if v < 0 || v >= len(g.adjacency) {
		return false, ErrVertexOutOfRange
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, x := range g.adjacency[v] {
		if x == u {
			return true, nil
		}
	}

	return false, nil
}

// VertexCount returns the number of vertices, fixed at construction.
//
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	// len(adjacency) is immutable after NewGraph; no lock needed.
	return len(g.adjacency)
}

// EdgeCount returns the number of AddEdge calls applied so far.
// Thread-safe: acquires the read lock.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
