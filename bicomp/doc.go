// Package bicomp implements biconnected-component decomposition of the
// undirected multigraphs in core: articulation points (cut vertices) and
// the partition of the edge set into maximal biconnected subgraphs.
//
// What:
//
//   - Decomposition: a reusable traversal engine bound to a private copy of
//     a core.Graph. One Traverse pass assigns discovery numbers 1..N and
//     low values, classifies edges as tree or back edges, and collects
//     articulation points as it goes.
//   - Components: replays the recorded tree/back-edge structure and returns
//     each biconnected component as an ordered sequence of undirected edges.
//   - Accessors: LowOf, ChildrenOf, BackEdgesOf, IsArticulationPoint,
//     ArticulationPoints, Root, Done — all range-checked, all snapshots.
//
// Why:
//
//   - Articulation points are the single points of failure of a network:
//     removing one disconnects the component it anchors.
//   - The biconnected components partition the edges into blocks that
//     tolerate any single vertex removal.
//
// Algorithm: the classic low-value DFS (Hopcroft–Tarjan). A vertex v with
// DFS number 1 (the root) cuts the graph iff it has two or more tree
// children; any other v cuts iff some child x satisfies low[x] >= num[v].
// The traversal runs on an explicit work stack of (vertex, parent,
// neighbor-cursor) frames, so graph depth never exhausts the call stack,
// while reproducing the exact visitation order of the recursive form.
//
// Complexity:
//
//   - Traverse:   Time O(V+E), Memory O(V+E) for the recorded structure.
//   - Components: Time O(V+E) per call, building fresh edge slices.
//
// Errors:
//
//   - ErrGraphNil          nil graph passed to New
//   - ErrVertexOutOfRange  vertex outside [0, VertexCount)
//   - ErrParentOutOfRange  parent outside [-1, VertexCount)
//   - ErrTraversalNotRun   Components called before any Traverse
//
// A Decomposition is not safe for concurrent use; build one engine per
// goroutine. Engines clone the graph at construction, so sharing one
// core.Graph across many engines is safe.
package bicomp
