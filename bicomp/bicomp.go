// Decomposition state and the explicit-stack DFS traversal.

package bicomp

import (
	"github.com/katalvlaran/biconn/core"
)

// unvisited is the zero discovery number; real numbers start at 1.
const unvisited = 0

// Decomposition is the traversal engine. It owns a private clone of the
// graph plus everything one DFS pass records: discovery numbers, low
// values, tree children, back edges, and articulation points.
//
// The engine is reusable: a pass that visited all N vertices is considered
// complete, and the next Traverse with a different root resets the state
// automatically (or call Reset yourself). On a disconnected graph a pass
// stays incomplete after the first Traverse; calling Traverse again on an
// unvisited vertex continues the same pass, numbering where it left off.
//
// Not safe for concurrent use; construct one engine per goroutine.
type Decomposition struct {
	graph *core.Graph // private clone, isolated from caller mutation

	num       []int         // discovery numbers 1..N; unvisited = 0
	low       []int         // minimum number reachable via subtree + one back edge
	children  [][]int       // tree children in discovery order
	backEdges [][]int       // back edges v→ancestor, recorded on the descendant
	artic     map[int]struct{}
	root      int // start vertex of the current pass; NoParent before any pass
	visited   int // vertices numbered in the current pass
}

// New binds a fresh engine to a private clone of g, so edges added to g
// afterwards never affect an in-flight traversal.
// Returns ErrGraphNil if g is nil.
//
// Complexity: O(V+E) for the clone.
func New(g *core.Graph) (*Decomposition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	d := &Decomposition{graph: g.Clone()}
	d.Reset()

	return d, nil
}

// Reset discards everything recorded by previous passes: all arrays are
// cleared, the root is unset, and the visit counter returns to zero.
// Traverse calls it automatically when a completed pass is followed by a
// pass from a different root.
//
// Complexity: O(V)
func (d *Decomposition) Reset() {
	n := d.graph.VertexCount()
	d.num = make([]int, n)
	d.low = make([]int, n)
	d.children = make([][]int, n)
	d.backEdges = make([][]int, n)
	d.artic = make(map[int]struct{})
	d.root = NoParent
	d.visited = 0
}

// frame is one explicit-stack entry: a vertex being explored, the parent it
// was discovered from, and a cursor into its neighbor snapshot.
type frame struct {
	v      int
	parent int
	nbrs   []int
	next   int
}

// Traverse runs a depth-first search from v, recording discovery numbers,
// low values, tree children, back edges, and articulation points.
//
// parent must be NoParent when v starts a pass, or the vertex v was
// discovered from when the caller drives the walk manually. Both arguments
// are validated before anything else. If the current pass already completed
// with root v, the call is an idempotent no-op; if a previous pass
// completed with a different root, state is reset before the new pass
// begins. On a disconnected graph, repeat Traverse on unvisited vertices to
// extend the same pass component by component.
//
// The walk uses an explicit work stack, so its depth is bounded by heap,
// not by the host call stack, while visiting neighbors in exactly the
// adjacency order the recursive formulation would.
//
// Complexity: O(V+E) time, O(V+E) memory.
func (d *Decomposition) Traverse(v, parent int) error {
	n := d.graph.VertexCount()
	if v < 0 || v >= n {
		return ErrVertexOutOfRange
	}
	if parent < NoParent || parent >= n {
		return ErrParentOutOfRange
	}

	// Completed pass from this exact root: nothing to do.
	if d.root == v && d.visited == n {
		return nil
	}

	// Previous pass completed and this call targets a different root.
	if d.visited == n {
		d.Reset()
	}

	stack := make([]frame, 0, 16)
	stack = append(stack, frame{v: v, parent: parent, nbrs: d.neighbors(v)})
	d.discover(v)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next < len(top.nbrs) {
			x := top.nbrs[top.next]
			top.next++

			if d.num[x] == unvisited {
				// Tree edge: x becomes a child of top.v and is explored next.
				d.children[top.v] = append(d.children[top.v], x)
				child := frame{v: x, parent: top.v, nbrs: d.neighbors(x)}
				d.discover(x)
				stack = append(stack, child)
				continue
			}

			if x == top.parent {
				continue // the tree edge we arrived by
			}

			// Back edge only toward a strict ancestor, so each undirected
			// back edge is recorded once, on the descendant endpoint.
			if d.num[x] < d.num[top.v] {
				d.backEdges[top.v] = append(d.backEdges[top.v], x)
			}
			if d.num[x] < d.low[top.v] {
				d.low[top.v] = d.num[x]
			}

			continue
		}

		// top.v is fully explored; fold its low value into the parent and
		// apply the articulation rule, exactly as the recursive form does
		// right after each child call returns.
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			continue
		}
		p := &stack[len(stack)-1]

		if d.low[top.v] < d.low[p.v] {
			d.low[p.v] = d.low[top.v]
		}

		if d.num[p.v] == 1 {
			// The pass root cuts the graph iff a second subtree hangs off it.
			if len(d.children[p.v]) > 1 {
				d.artic[p.v] = struct{}{}
			}
		} else if d.low[top.v] >= d.num[p.v] {
			// top.v's subtree cannot climb above p.v without p.v itself.
			d.artic[p.v] = struct{}{}
		}
	}

	return nil
}

// discover assigns v the next discovery number, seeds low[v], and records
// the pass root when v is the first vertex numbered.
func (d *Decomposition) discover(v int) {
	d.visited++
	if d.visited == 1 {
		d.root = v
	}
	d.num[v] = d.visited
	d.low[v] = d.visited
}

// neighbors snapshots v's adjacency from the private clone. v has already
// been range-checked, so the lookup cannot fail.
func (d *Decomposition) neighbors(v int) []int {
	nbrs, _ := d.graph.NeighborsOf(v)

	return nbrs
}
