// File: embedding.go
// Role: Half-edge rotation system: vertex catalog, ring links, insertion API.
//
// Representation:
//   - rings[u][v] holds the clockwise and counter-clockwise neighbors of the
//     half-edge u→v inside u's cyclic rotation.
//   - first[u] is the fixed starting point of Rotation(u).
//
// Concurrency:
//   - Embedding is not safe for concurrent mutation; guard it externally.

package planar

import (
	"fmt"
	"iter"
)

// links is the position of one half-edge inside its owner's rotation.
type links struct {
	cw  string
	ccw string
}

// Embedding is a combinatorial planar embedding: for every vertex a cyclic,
// duplicate-free clockwise order of its neighbors.
//
// An edge only enters the embedding with an explicit rotational position,
// through the AddHalfEdge family or ConnectComponents.
type Embedding struct {
	order     []string                     // vertex IDs in insertion order
	rings     map[string]map[string]*links // u → v → ring position of u→v
	first     map[string]string            // u → starting neighbor of Rotation(u)
	halfEdges int
}

// HalfEdgeOption positions a new half-edge relative to an existing neighbor.
type HalfEdgeOption func(*halfEdgeRef)

type halfEdgeRef struct {
	cw, ccw       string
	hasCW, hasCCW bool
}

// CW makes ref the clockwise neighbor of the new half-edge, i.e. the new
// half-edge is placed directly counter-clockwise of ref.
func CW(ref string) HalfEdgeOption {
	return func(r *halfEdgeRef) {
		r.cw, r.hasCW = ref, true
	}
}

// CCW makes ref the counter-clockwise neighbor of the new half-edge, i.e.
// the new half-edge is placed directly clockwise of ref.
func CCW(ref string) HalfEdgeOption {
	return func(r *halfEdgeRef) {
		r.ccw, r.hasCCW = ref, true
	}
}

// NewEmbedding returns an empty embedding.
func NewEmbedding() *Embedding {
	return &Embedding{
		rings: make(map[string]map[string]*links),
		first: make(map[string]string),
	}
}

// AddVertex registers id without half-edges (idempotent).
func (emb *Embedding) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := emb.rings[id]; ok {
		return nil
	}
	emb.rings[id] = make(map[string]*links)
	emb.order = append(emb.order, id)

	return nil
}

// HasVertex reports whether id is part of the embedding.
func (emb *Embedding) HasVertex(id string) bool {
	_, ok := emb.rings[id]

	return ok
}

// HasHalfEdge reports whether the half-edge u→v exists.
func (emb *Embedding) HasHalfEdge(u, v string) bool {
	_, ok := emb.rings[u][v]

	return ok
}

// AddHalfEdge inserts the half-edge u→v into u's rotation.
//
// If u has no half-edges yet, no reference may be given and u→v becomes a
// singleton ring (its own cw and ccw neighbor). Otherwise exactly one of
// CW(ref) or CCW(ref) is required and ref must be a current neighbor of u.
// Missing vertices are created.
//
// The starting point of Rotation(u) changes only when the new half-edge is
// placed directly counter-clockwise of it (CW(first)) or when u was empty.
//
// Errors: ErrEmptyVertexID, ErrSelfLoop, ErrHalfEdgeExists,
// ErrAmbiguousReference, ErrInvalidReference, ErrReferenceRequired.
// Complexity: O(1).
func (emb *Embedding) AddHalfEdge(u, v string, opts ...HalfEdgeOption) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return fmt.Errorf("AddHalfEdge: %s→%s: %w", u, v, ErrSelfLoop)
	}
	var ref halfEdgeRef
	for _, opt := range opts {
		opt(&ref)
	}
	if ref.hasCW && ref.hasCCW {
		return ErrAmbiguousReference
	}
	if emb.HasHalfEdge(u, v) {
		return fmt.Errorf("AddHalfEdge: %s→%s: %w", u, v, ErrHalfEdgeExists)
	}

	ring := emb.rings[u]
	if len(ring) == 0 {
		if ref.hasCW || ref.hasCCW {
			return fmt.Errorf("AddHalfEdge: %s has no half-edges: %w", u, ErrInvalidReference)
		}
		_ = emb.AddVertex(u)
		_ = emb.AddVertex(v)
		emb.rings[u][v] = &links{cw: v, ccw: v}
		emb.first[u] = v
		emb.halfEdges++

		return nil
	}

	switch {
	case ref.hasCW:
		at, ok := ring[ref.cw]
		if !ok {
			return fmt.Errorf("AddHalfEdge: cw reference %s of %s: %w", ref.cw, u, ErrInvalidReference)
		}
		prev := at.ccw
		ring[v] = &links{cw: ref.cw, ccw: prev}
		ring[prev].cw = v
		at.ccw = v
		if emb.first[u] == ref.cw {
			emb.first[u] = v
		}
	case ref.hasCCW:
		at, ok := ring[ref.ccw]
		if !ok {
			return fmt.Errorf("AddHalfEdge: ccw reference %s of %s: %w", ref.ccw, u, ErrInvalidReference)
		}
		next := at.cw
		ring[v] = &links{cw: next, ccw: ref.ccw}
		ring[next].ccw = v
		at.cw = v
	default:
		return fmt.Errorf("AddHalfEdge: %s→%s: %w", u, v, ErrReferenceRequired)
	}
	_ = emb.AddVertex(v)
	emb.halfEdges++

	return nil
}

// AddHalfEdgeCW inserts u→v directly clockwise of ref.
func (emb *Embedding) AddHalfEdgeCW(u, v, ref string) error {
	return emb.AddHalfEdge(u, v, CCW(ref))
}

// AddHalfEdgeCCW inserts u→v directly counter-clockwise of ref.
func (emb *Embedding) AddHalfEdgeCCW(u, v, ref string) error {
	return emb.AddHalfEdge(u, v, CW(ref))
}

// AddHalfEdgeFirst inserts u→v counter-clockwise of the current starting
// neighbor of u, making it the new starting neighbor.
func (emb *Embedding) AddHalfEdgeFirst(u, v string) error {
	if f, ok := emb.first[u]; ok && len(emb.rings[u]) > 0 {
		return emb.AddHalfEdge(u, v, CW(f))
	}

	return emb.AddHalfEdge(u, v)
}

// Rotation yields the neighbors of u in clockwise order, starting from the
// current starting neighbor. The sequence is lazy and restartable; an
// unknown or isolated vertex yields nothing.
func (emb *Embedding) Rotation(u string) iter.Seq[string] {
	return func(yield func(string) bool) {
		ring := emb.rings[u]
		if len(ring) == 0 {
			return
		}
		start := emb.first[u]
		cur := start
		for i := 0; i < len(ring); i++ {
			if !yield(cur) {
				return
			}
			cur = ring[cur].cw
			if cur == start {
				return
			}
		}
	}
}

// NeighborsCWOrder returns the materialized Rotation(u).
// Errors: ErrVertexNotFound.
func (emb *Embedding) NeighborsCWOrder(u string) ([]string, error) {
	ring, ok := emb.rings[u]
	if !ok {
		return nil, fmt.Errorf("NeighborsCWOrder: %q: %w", u, ErrVertexNotFound)
	}
	out := make([]string, 0, len(ring))
	for w := range emb.Rotation(u) {
		out = append(out, w)
	}

	return out, nil
}

// Vertices returns the vertex IDs in insertion order.
func (emb *Embedding) Vertices() []string {
	out := make([]string, len(emb.order))
	copy(out, emb.order)

	return out
}

// Edges returns every undirected edge once, ordered by the first endpoint's
// insertion order and then by its rotation.
func (emb *Embedding) Edges() []Edge {
	out := make([]Edge, 0, emb.halfEdges/2)
	seen := make(map[Edge]struct{}, emb.halfEdges/2)
	for _, u := range emb.order {
		for v := range emb.Rotation(u) {
			if _, dup := seen[Edge{U: v, V: u}]; dup {
				continue
			}
			seen[Edge{U: u, V: v}] = struct{}{}
			out = append(out, Edge{U: u, V: v})
		}
	}

	return out
}

// Degree returns the number of half-edges leaving u (0 for unknown vertices).
func (emb *Embedding) Degree(u string) int {
	return len(emb.rings[u])
}

// VertexCount returns the number of vertices.
func (emb *Embedding) VertexCount() int {
	return len(emb.order)
}

// EdgeCount returns the number of undirected edges (half-edges / 2).
func (emb *Embedding) EdgeCount() int {
	return emb.halfEdges / 2
}
