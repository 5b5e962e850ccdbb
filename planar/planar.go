// File: planar.go
// Role: Entry points of the planarity engine.

package planar

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/planarity/core"
)

// TestAndEmbed tests the undirected graph (vertices, edges) for planarity
// and, when it is planar, returns a combinatorial embedding of it.
//
// Input contract: vertex IDs are unique and non-empty; every edge joins two
// distinct listed vertices; no undirected edge is listed twice. Violations
// are reported as ErrEmptyVertexID, ErrDuplicateVertex, ErrVertexNotFound,
// ErrSelfLoop or ErrDuplicateEdge. Use CheckGraph to feed an arbitrary
// core.Graph.
//
// Steps:
//  1. Validate and index the input.
//  2. Reject when V > 2 and E > 3V − 6.
//  3. Orientation DFS from every unvisited vertex, in input order.
//  4. Constraint testing DFS; any contradiction yields ErrNotPlanar.
//  5. Side resolution and embedding DFS.
//  6. CheckStructure on the result.
//
// Determinism: the same vertex and edge sequences always produce the same
// rotation system.
// Complexity: O(V + E) time and memory; explicit stacks only.
func TestAndEmbed(vertices []string, edges []Edge, opts ...Option) (*Embedding, error) {
	o := resolveOptions(opts)
	logger := o.Logger

	st, err := newLRState(vertices, edges)
	if err != nil {
		return nil, fmt.Errorf("TestAndEmbed: %w", err)
	}
	n, m := len(st.ids), st.m
	if n > 2 && m > 3*n-6 {
		logger.Debug("edge bound exceeded", "vertices", n, "edges", m)
		return nil, ErrNotPlanar
	}

	start := time.Now()
	st.orient()
	logger.Debug("orientation done", "vertices", n, "edges", m, "roots", len(st.roots), "elapsed", time.Since(start))

	start = time.Now()
	if err = st.test(); err != nil {
		logger.Debug("testing failed", "elapsed", time.Since(start))
		return nil, err
	}
	logger.Debug("testing done", "elapsed", time.Since(start))

	start = time.Now()
	st.resolveSides()
	emb, err := st.embed()
	if err != nil {
		return nil, fmt.Errorf("TestAndEmbed: embed: %w: %w", ErrBadEmbedding, err)
	}
	if err = emb.CheckStructure(); err != nil {
		return nil, fmt.Errorf("TestAndEmbed: %w", err)
	}
	logger.Debug("embedding done", "half_edges", emb.halfEdges, "elapsed", time.Since(start))

	return emb, nil
}

// IsPlanar reports whether the graph is planar, discarding the embedding.
// Contract violations are returned as errors.
func IsPlanar(vertices []string, edges []Edge, opts ...Option) (bool, error) {
	_, err := TestAndEmbed(vertices, edges, opts...)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotPlanar):
		return false, nil
	default:
		return false, err
	}
}

// Input converts g into the vertex and edge sequences TestAndEmbed expects:
// the simple undirected view of g (loops dropped, parallel and opposite
// edges merged), vertices in insertion order, edges in creation order.
func Input(g *core.Graph) ([]string, []Edge) {
	view := core.SimpleUndirectedView(g)
	vertices := view.Vertices()
	coreEdges := view.Edges()
	edges := make([]Edge, len(coreEdges))
	for i, e := range coreEdges {
		edges[i] = Edge{U: e.From, V: e.To}
	}

	return vertices, edges
}

// CheckGraph runs TestAndEmbed on the simple undirected view of g.
// It returns ErrNotPlanar for non-planar graphs.
func CheckGraph(g *core.Graph, opts ...Option) (*Embedding, error) {
	if g == nil {
		return nil, fmt.Errorf("CheckGraph: %w", ErrVertexNotFound)
	}
	vertices, edges := Input(g)

	return TestAndEmbed(vertices, edges, opts...)
}
