// Package render turns graphs and planar embeddings into Graphviz DOT and
// renders DOT to SVG or PNG with the embedded Graphviz (go-graphviz).
//
// Graphviz layouts do not honour a rotation system, so pictures of an
// embedding show the graph, its statistics and optionally its faces as DOT
// comments; the rotation itself is available from the YAML output.
package render
