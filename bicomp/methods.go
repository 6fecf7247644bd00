// Range-checked snapshot accessors over the recorded traversal state.

package bicomp

import "sort"

// rangeCheck validates a vertex identifier against the engine's graph.
func (d *Decomposition) rangeCheck(v int) error {
	if v < 0 || v >= d.graph.VertexCount() {
		return ErrVertexOutOfRange
	}

	return nil
}

// VertexCount returns the number of vertices of the bound graph.
func (d *Decomposition) VertexCount() int {
	return d.graph.VertexCount()
}

// Root returns the start vertex of the current pass, or NoParent when no
// pass has numbered a vertex yet.
func (d *Decomposition) Root() int {
	return d.root
}

// Done reports whether the engine holds a completed pass rooted at v:
// v was the recorded root and every vertex received a discovery number.
// Returns ErrVertexOutOfRange on a bad v.
func (d *Decomposition) Done(v int) (bool, error) {
	if err := d.rangeCheck(v); err != nil {
		return false, err
	}

	return d.root == v && d.visited == d.graph.VertexCount(), nil
}

// LowOf returns the low value of v: the smallest discovery number reachable
// from v's subtree using at most one back edge. Meaningful once v has been
// visited; before that it is the zero value.
// Returns ErrVertexOutOfRange on a bad v.
func (d *Decomposition) LowOf(v int) (int, error) {
	if err := d.rangeCheck(v); err != nil {
		return 0, err
	}

	return d.low[v], nil
}

// ChildrenOf returns a snapshot of v's tree children in discovery order.
// Returns ErrVertexOutOfRange on a bad v.
func (d *Decomposition) ChildrenOf(v int) ([]int, error) {
	if err := d.rangeCheck(v); err != nil {
		return nil, err
	}

	out := make([]int, len(d.children[v]))
	copy(out, d.children[v])

	return out, nil
}

// BackEdgesOf returns a snapshot of the back-edge targets recorded on v,
// i.e. the strict ancestors v reaches by a non-tree edge, in recorded order.
// Returns ErrVertexOutOfRange on a bad v.
func (d *Decomposition) BackEdgesOf(v int) ([]int, error) {
	if err := d.rangeCheck(v); err != nil {
		return nil, err
	}

	out := make([]int, len(d.backEdges[v]))
	copy(out, d.backEdges[v])

	return out, nil
}

// IsArticulationPoint reports whether the last pass marked v as a cut
// vertex. Returns ErrVertexOutOfRange on a bad v.
func (d *Decomposition) IsArticulationPoint(v int) (bool, error) {
	if err := d.rangeCheck(v); err != nil {
		return false, err
	}

	_, ok := d.artic[v]

	return ok, nil
}

// ArticulationPoints returns the cut vertices of the last pass in ascending
// order. The slice is a fresh copy on every call.
func (d *Decomposition) ArticulationPoints() []int {
	out := make([]int, 0, len(d.artic))
	for v := range d.artic {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
