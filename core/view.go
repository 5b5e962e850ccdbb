// File: view.go
// Role: Non-mutating graph views (fresh graphs derived from a source graph).
// Determinism:
//   - Vertex insertion order and edge creation order of the source are preserved.
// Concurrency:
//   - Read locks on the source only; the result is a fresh graph instance.

package core

// SimpleUndirectedView returns the simple undirected graph underlying g.
//
// The view is what the planarity engine consumes:
//   - every vertex of g is kept (isolated vertices included), in insertion order;
//   - self-loops are dropped;
//   - parallel edges and opposite directed edges u→v / v→u collapse into one
//     undirected edge, the first one in creation order wins (keeping its weight);
//   - the result is undirected, without loops and multi-edges, and weighted iff g is.
//
// Complexity: O(V + E log E). The input graph is not mutated.
func SimpleUndirectedView(g *Graph) *Graph {
	opts := []GraphOption{WithDirected(false)}
	if g.Weighted() {
		opts = append(opts, WithWeighted())
	}
	out := NewGraph(opts...)

	for _, id := range g.Vertices() {
		_ = out.AddVertex(id) // IDs in g are non-empty by construction
		if src, err := g.GetVertex(id); err == nil {
			dst, _ := out.GetVertex(id)
			dst.Metadata = src.Metadata
		}
	}

	for _, e := range g.Edges() {
		if e.From == e.To || out.HasEdge(e.From, e.To) {
			continue
		}
		// Cannot fail: endpoints exist, no loop, no duplicate, weight policy copied.
		_, _ = out.AddEdge(e.From, e.To, e.Weight)
	}

	return out
}

// InducedSubgraph returns a new Graph induced by the vertex IDs for which
// keep is true: kept vertices (in source order) and every edge with both
// endpoints kept. Configuration flags are copied from g.
//
// Complexity: O(V + E log E). The input graph is not mutated.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	opts := []GraphOption{WithDirected(g.Directed())}
	if g.Weighted() {
		opts = append(opts, WithWeighted())
	}
	if g.Multigraph() {
		opts = append(opts, WithMultiEdges())
	}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	for _, id := range g.Vertices() {
		if keep[id] {
			_ = out.AddVertex(id)
		}
	}
	for _, e := range g.Edges() {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		_, _ = out.AddEdge(e.From, e.To, e.Weight)
	}

	return out
}
