// Cloning of graph instances.
//
// Clone is how the traversal engine isolates itself from later mutation of
// the caller's graph: the copy shares no mutable state with the source.

package core

// Clone returns a deep copy of the graph: adjacency lists and edge count.
// The clone shares no mutable state with the source; edges added to either
// afterwards are invisible to the other.
// Thread-safe: snapshots the source under the read lock.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency: make([][]int, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for v, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			continue
		}
		clone.adjacency[v] = make([]int, len(nbrs))
		copy(clone.adjacency[v], nbrs)
	}

	return clone
}
