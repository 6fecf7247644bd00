// Component extraction: replaying the recorded tree/back-edge structure.

package bicomp

// Components derives the biconnected components of the traversed graph from
// the structure the last pass recorded. Each component is an ordered slice
// of undirected edges; together the components partition the edge set of
// the traversed connected component, every edge appearing exactly once.
//
// A child x whose subtree cannot climb strictly above its parent v
// (low[x] >= num[v]) seeds a new component with the tree edge (v,x); the
// component body is the back edges and non-separating tree edges reachable
// below x. Components are emitted in order of their seeding tree edge
// (vertex index order, children in discovery order); edges within a
// component follow the replay order. The order is deterministic for a
// fixed edge-insertion order but not canonical across isomorphic graphs,
// so compare edge sets per component when order was not pinned.
//
// Requires that Traverse ran at least once (a root has been recorded);
// returns ErrTraversalNotRun otherwise. Completeness of the pass is not
// required: a partial pass yields the components of the part walked so far.
//
// Complexity: O(V+E) per call; the result shares no memory with the engine.
func (d *Decomposition) Components() ([][]Edge, error) {
	if d.root == NoParent {
		return nil, ErrTraversalNotRun
	}

	var comps [][]Edge
	for v := 0; v < d.graph.VertexCount(); v++ {
		for _, x := range d.children[v] {
			if d.low[x] >= d.num[v] {
				comp := append([]Edge{{V: v, U: x}}, d.collect(nil, x)...)
				comps = append(comps, comp)
			}
		}
	}

	return comps, nil
}

// collect appends the body of the component rooted at the tree edge into
// start: first start's back edges, then, for each child kept in the same
// component (low[x] < num[v]), the tree edge followed by the child's own
// body. Runs on an explicit stack for the same reason Traverse does, while
// emitting edges in the exact order of the recursive formulation.
func (d *Decomposition) collect(comp []Edge, start int) []Edge {
	type pos struct {
		v    int
		next int
	}

	stack := []pos{{v: start}}
	for _, w := range d.backEdges[start] {
		comp = append(comp, Edge{V: start, U: w})
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next == len(d.children[top.v]) {
			stack = stack[:len(stack)-1]
			continue
		}

		x := d.children[top.v][top.next]
		top.next++

		// A child that starts its own component is skipped here; the outer
		// scan in Components picks it up.
		if d.low[x] < d.num[top.v] {
			comp = append(comp, Edge{V: top.v, U: x})
			for _, w := range d.backEdges[x] {
				comp = append(comp, Edge{V: x, U: w})
			}
			stack = append(stack, pos{v: x})
		}
	}

	return comp
}
