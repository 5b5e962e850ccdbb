// File: embedding_edit.go
// Role: Structural edits and (de)serialization of an Embedding.

package planar

import (
	"fmt"
	"sort"
)

// RemoveEdge removes both half-edges u→v and v→u, closing the gaps in the
// two rotations. If a removed neighbor was the starting point of a rotation,
// its clockwise successor takes over.
//
// Errors: ErrEdgeNotFound.
func (emb *Embedding) RemoveEdge(u, v string) error {
	if !emb.HasHalfEdge(u, v) || !emb.HasHalfEdge(v, u) {
		return fmt.Errorf("RemoveEdge: %s-%s: %w", u, v, ErrEdgeNotFound)
	}
	emb.unlink(u, v)
	emb.unlink(v, u)

	return nil
}

// RemoveVertex removes v together with every half-edge incident to it,
// including incoming half-edges u→v that have no partner v→u.
// Errors: ErrVertexNotFound.
func (emb *Embedding) RemoveVertex(v string) error {
	ring, ok := emb.rings[v]
	if !ok {
		return fmt.Errorf("RemoveVertex: %q: %w", v, ErrVertexNotFound)
	}
	for _, u := range emb.order {
		if u != v && emb.HasHalfEdge(u, v) {
			emb.unlink(u, v)
		}
	}
	emb.halfEdges -= len(ring)
	delete(emb.rings, v)
	delete(emb.first, v)
	for i, id := range emb.order {
		if id == v {
			emb.order = append(emb.order[:i], emb.order[i+1:]...)
			break
		}
	}

	return nil
}

// unlink drops the half-edge u→v from u's ring; the caller checked existence.
func (emb *Embedding) unlink(u, v string) {
	ring := emb.rings[u]
	at := ring[v]
	delete(ring, v)
	emb.halfEdges--

	if at.cw == v {
		delete(emb.first, u)
		return
	}
	ring[at.cw].ccw = at.ccw
	ring[at.ccw].cw = at.cw
	if emb.first[u] == v {
		emb.first[u] = at.cw
	}
}

// ConnectComponents joins two vertices from different faces (typically
// different components) by inserting v→w and w→v at the front of both
// rotations.
func (emb *Embedding) ConnectComponents(v, w string) error {
	if err := emb.AddHalfEdgeFirst(v, w); err != nil {
		return fmt.Errorf("ConnectComponents: %w", err)
	}
	if err := emb.AddHalfEdgeFirst(w, v); err != nil {
		_ = emb.RemoveHalfEdge(v, w)
		return fmt.Errorf("ConnectComponents: %w", err)
	}

	return nil
}

// RemoveHalfEdge drops a single half-edge u→v, leaving v→u in place.
// It exists to roll back partial insertions; a lone half-edge fails
// CheckStructure.
func (emb *Embedding) RemoveHalfEdge(u, v string) error {
	if !emb.HasHalfEdge(u, v) {
		return fmt.Errorf("RemoveHalfEdge: %s→%s: %w", u, v, ErrEdgeNotFound)
	}
	emb.unlink(u, v)

	return nil
}

// Data returns the rotation system as vertex → clockwise neighbor list,
// each list starting at the rotation's starting neighbor.
func (emb *Embedding) Data() map[string][]string {
	out := make(map[string][]string, len(emb.order))
	for _, v := range emb.order {
		nbs, _ := emb.NeighborsCWOrder(v)
		out[v] = nbs
	}

	return out
}

// EmbeddingFromData rebuilds an Embedding from a rotation system in the
// format produced by Data. Vertices are inserted in sorted ID order; each
// list is read as a clockwise order starting at its first element.
//
// The result is not validated; call CheckStructure.
// Errors: anything AddHalfEdge reports (empty IDs, self-loops, repeated
// neighbors).
func EmbeddingFromData(data map[string][]string) (*Embedding, error) {
	ids := make([]string, 0, len(data))
	for v := range data {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	emb := NewEmbedding()
	for _, v := range ids {
		if err := emb.AddVertex(v); err != nil {
			return nil, fmt.Errorf("EmbeddingFromData: %w", err)
		}
	}
	for _, v := range ids {
		nbs := data[v]
		ref := ""
		for i := len(nbs) - 1; i >= 0; i-- {
			var err error
			if ref == "" {
				err = emb.AddHalfEdge(v, nbs[i])
			} else {
				err = emb.AddHalfEdge(v, nbs[i], CW(ref))
			}
			if err != nil {
				return nil, fmt.Errorf("EmbeddingFromData: %s: %w", v, err)
			}
			ref = nbs[i]
		}
	}

	return emb, nil
}
