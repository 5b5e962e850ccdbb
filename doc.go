// Package planarity decides whether a graph can be drawn in the plane without
// crossing edges and, when it can, produces such a drawing as a rotation
// system: the clockwise order of neighbours around every vertex.
//
// What is inside:
//
//	planar/   Left-Right planarity test, half-edge Embedding, faces, counterexamples
//	core/     string-keyed Graph used by loaders and generators, simple undirected views
//	builder/  deterministic graph families (complete, bipartite, wheels, grids,
//	          Platonic solids, stacked triangulations, random trees)
//	graphio/  edge list, adjacency list, adjacency matrix and YAML documents,
//	          inline expressions such as "a-b-c-a, c-d"
//	render/   DOT output and Graphviz rendering to SVG or PNG
//	store/    Badger-backed result cache keyed by an input digest
//	config/   TOML configuration of the command line tool
//
// The test runs in O(V + E) on graphs of any depth; both depth-first passes
// use explicit stacks.
//
// Quick ASCII example:
//
//	A───B
//	│ ╲ │
//	C───D
//
// The square with one diagonal above is planar. Adding the other diagonal
// gives K4, still planar with one diagonal routed around the outside; a
// fifth vertex joined to all four gives K5, which is not.
//
//	emb, err := planar.TestAndEmbed(vertices, edges)
//	if errors.Is(err, planar.ErrNotPlanar) { ... }
//	faces, _ := emb.Faces()
//
// The planarity command wraps all of this:
//
//	planarity check k5.txt
//	planarity embed --faces cube.yaml
//	planarity render --expr "a-b-c-d-a, a-c" -o k4.svg
package planarity
