// Package biconn decomposes undirected multigraphs into their biconnected
// components: it finds the articulation points (cut vertices) and partitions
// the edge set into maximal biconnected subgraphs.
//
// What's inside:
//
//	core/       — integer-indexed undirected multigraph (adjacency lists,
//	              append-only edges, deep clones, snapshot queries)
//	bicomp/     — the DFS traversal engine: discovery numbers, low values,
//	              tree children & back edges, articulation points, and
//	              component extraction by replaying the recorded structure
//	builder/    — edge-list text loader producing a core.Graph
//	cmd/biconn/ — CLI driver: load a graph file, decompose, report, time
//
// Why:
//
//   - Articulation points mark single points of failure in networks.
//   - Biconnected components group the edges that survive any single
//     vertex removal, a building block for planarity testing, reliability
//     analysis, and SPQR trees.
//
// The engine runs a single O(V+E) depth-first search with an explicit work
// stack, so stack depth never depends on the host call-stack limit. One
// engine instance serves one caller at a time; engines take a private copy
// of the graph at construction, so a shared Graph may back any number of
// independent engines.
//
//	go get github.com/katalvlaran/biconn
package biconn
