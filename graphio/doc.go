// Package graphio reads and writes graphs and embeddings.
//
// Text formats share one shape: the first line holds the vertex count n and
// vertices are the 1-based integers 1..n.
//
//   - edges: one arc "u v" or "u v w" per line.
//   - adjacency_list: line i lists the out-neighbours of vertex i as "v" or
//     "v:w"; a blank line is a vertex without neighbours.
//   - adjacency_matrix: n rows of n integers; 0 means no arc.
//
// Omitted weights default to 1. An undirected graph lists every edge in both
// directions with equal weights; any asymmetric arc makes the table directed
// (see Table.IsDirected). Repeated arcs keep the last weight, as a matrix would.
//
// Besides the text formats the package handles YAML graph documents, which keep
// vertex names, YAML embedding documents (rotation system, faces, or a
// counterexample), and inline expressions such as "a-b-c-a, c-d" parsed with a
// small participle grammar.
package graphio
