package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/planar"
)

// Options configures DOT generation.
type Options struct {
	// Title is shown as the graph label; empty means no label.
	Title string
	// Faces appends each face of an embedding as a DOT comment and adds the
	// V/E/F counts to the label.
	Faces bool
	// Highlight lists edges drawn bold red, e.g. a Kuratowski witness.
	Highlight []planar.Edge
}

const header = `  bgcolor="transparent";
  node [shape=circle, style=filled, fillcolor=white, fontsize=12, width=0.3];
  edge [penwidth=1.2];
`

// ToDOT describes emb as an undirected DOT graph. Vertices and edges follow
// the embedding's deterministic order.
func ToDOT(emb *planar.Embedding, opts Options) (string, error) {
	label := opts.Title
	var faces [][]string
	if opts.Faces {
		var err error
		if faces, err = emb.Faces(); err != nil {
			return "", fmt.Errorf("ToDOT: %w", err)
		}
		stats := fmt.Sprintf("V=%d E=%d F=%d", emb.VertexCount(), emb.EdgeCount(), len(faces))
		label = strings.TrimSpace(label + " " + stats)
	}

	var buf bytes.Buffer
	writeHead(&buf, label)
	for _, v := range emb.Vertices() {
		fmt.Fprintf(&buf, "  %q;\n", v)
	}
	buf.WriteString("\n")
	hl := highlightSet(opts.Highlight)
	for _, e := range emb.Edges() {
		writeEdge(&buf, e.U, e.V, hl)
	}
	for i, f := range faces {
		fmt.Fprintf(&buf, "  // face %d: %s\n", i, strings.Join(f, " "))
	}
	buf.WriteString("}\n")

	return buf.String(), nil
}

// GraphToDOT describes g as an undirected DOT graph; loops and parallel
// edges are drawn as stored.
func GraphToDOT(g *core.Graph, opts Options) string {
	var buf bytes.Buffer
	writeHead(&buf, opts.Title)
	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q;\n", v)
	}
	buf.WriteString("\n")
	hl := highlightSet(opts.Highlight)
	for _, e := range g.Edges() {
		writeEdge(&buf, e.From, e.To, hl)
	}
	buf.WriteString("}\n")

	return buf.String()
}

func writeHead(buf *bytes.Buffer, label string) {
	buf.WriteString("graph G {\n")
	buf.WriteString(header)
	if label != "" {
		fmt.Fprintf(buf, "  label=%q;\n  labelloc=t;\n", label)
	}
	buf.WriteString("\n")
}

func writeEdge(buf *bytes.Buffer, u, v string, hl map[planar.Edge]bool) {
	if hl[planar.Edge{U: u, V: v}] || hl[planar.Edge{U: v, V: u}] {
		fmt.Fprintf(buf, "  %q -- %q [color=red, penwidth=2.5];\n", u, v)
		return
	}
	fmt.Fprintf(buf, "  %q -- %q;\n", u, v)
}

func highlightSet(edges []planar.Edge) map[planar.Edge]bool {
	set := make(map[planar.Edge]bool, len(edges))
	for _, e := range edges {
		set[e] = true
	}

	return set
}
