// File: api.go
// Role: Read-only getters for the construction-time policy flags and Stats().
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph, so getters only need muVert read locks.

package core

// Directed reports whether new edges are directed.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot flags and vertex count.
//   - Stage 2: Under muEdgeAdj.RLock, snapshot edge count and count self-loops.
//
// The two locks are never held together, which keeps lock order trivial.
//
// Complexity: Time O(E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
