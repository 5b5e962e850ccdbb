// Package core provides the thread-safe in-memory Graph that feeds the
// planarity engine.
//
// The Graph G = (V,E) can hold whatever an input file describes:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// The planarity test itself only understands simple undirected graphs. The
// bridge is SimpleUndirectedView, which symmetrizes directed edges, drops
// loops and merges parallel edges while preserving vertex and edge order.
//
// Core methods:
//
//	AddVertex(id string) error                              // O(1)
//	HasVertex(id string) bool                               // O(1)
//	AddEdge(from, to string, weight int64) (string, error)  // O(1)
//	RemoveEdge(edgeID string) error                         // O(1)
//	HasEdge(from, to string) bool                           // O(1)
//	Neighbors(id string) ([]*Edge, error)                   // O(d log d)
//	NeighborIDs(id string) ([]string, error)                // O(d log d)
//	Vertices() []string                                     // insertion order
//	Edges() []*Edge                                         // creation order
//	Degree(id string) (int, error)
//	Stats() *GraphStats
//
// Views:
//
//	SimpleUndirectedView(g) *Graph
//	InducedSubgraph(g, keep) *Graph
//
// Quick ASCII example:
//
//	A───B
//	│ ╲ │
//	C───D
//
// is a planar graph on four vertices and five edges.
package core
