// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() returns edges in creation order.
//   - NeighborIDs() returns unique IDs in order of the first connecting edge.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns all edges incident to id.
//
// Policy:
//   - Directed edges: only edges with e.From == id (outgoing).
//   - Undirected edges: every incident edge once; self-loops appear once.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil || (e.Directed && e.From != id) {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out, nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id, ordered by the
// creation of the first edge that connects them.
//
// Errors: propagated from Neighbors.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		nb := e.To
		if e.To == id {
			nb = e.From
		}
		if _, dup := seen[nb]; dup {
			continue
		}
		seen[nb] = struct{}{}
		out = append(out, nb)
	}

	return out, nil
}

// ensureAdjID guarantees the outer adjacency bucket for id.
func ensureAdjID(g *Graph, id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjacency guarantees adjacencyList[from][to] exists.
func ensureAdjacency(g *Graph, from, to string) {
	ensureAdjID(g, from)
	if _, ok := g.adjacencyList[from][to]; !ok {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e (and its mirror) and drops empty inner buckets.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(from, to string) {
		inner := g.adjacencyList[from][to]
		delete(inner, e.ID)
		if len(inner) == 0 {
			delete(g.adjacencyList[from], to)
		}
	}
	unlink(e.From, e.To)
	if !e.Directed && e.From != e.To {
		unlink(e.To, e.From)
	}
}
