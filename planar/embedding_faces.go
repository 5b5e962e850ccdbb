// File: embedding_faces.go
// Role: Face traversal and the structural self-check of an Embedding.
//
// Face convention:
//   - The successor of the half-edge v→w on its face is w→x, where x is the
//     counter-clockwise neighbor of v in w's rotation.
//   - Every half-edge lies on exactly one face; Faces() partitions them.

package planar

import "fmt"

// halfEdge identifies a directed half-edge u→v.
type halfEdge struct {
	from, to string
}

// ComponentStat is the Euler bookkeeping of one connected component.
type ComponentStat struct {
	Vertices int
	Edges    int
	Faces    int
}

// Euler returns V − E + F; 2 for every correctly embedded component.
func (c ComponentStat) Euler() int {
	return c.Vertices - c.Edges + c.Faces
}

// NextFaceHalfEdge returns the half-edge that follows v→w on its face.
// Errors: ErrEdgeNotFound when w→v is missing.
func (emb *Embedding) NextFaceHalfEdge(v, w string) (string, string, error) {
	at, ok := emb.rings[w][v]
	if !ok {
		return "", "", fmt.Errorf("NextFaceHalfEdge: %s→%s: %w", w, v, ErrEdgeNotFound)
	}

	return w, at.ccw, nil
}

// TraverseFace walks the face to the right of v→w and returns its vertices
// in traversal order, starting with v.
//
// Errors: ErrEdgeNotFound for a missing half-edge, ErrBadEmbedding when a
// half-edge repeats before the face closes.
// Complexity: O(face length).
func (emb *Embedding) TraverseFace(v, w string) ([]string, error) {
	return emb.traverseFace(v, w, make(map[halfEdge]struct{}))
}

func (emb *Embedding) traverseFace(v, w string, marked map[halfEdge]struct{}) ([]string, error) {
	start, ok := emb.rings[v][w]
	if !ok {
		return nil, fmt.Errorf("TraverseFace: %s→%s: %w", v, w, ErrEdgeNotFound)
	}
	face := []string{v}
	marked[halfEdge{v, w}] = struct{}{}
	incoming := start.cw
	prev, cur := v, w
	for cur != v || prev != incoming {
		face = append(face, cur)
		next, nextTo, err := emb.NextFaceHalfEdge(prev, cur)
		if err != nil {
			return nil, fmt.Errorf("TraverseFace: %w: %w", ErrBadEmbedding, err)
		}
		prev, cur = next, nextTo
		if _, seen := marked[halfEdge{prev, cur}]; seen {
			return nil, fmt.Errorf("TraverseFace: half-edge %s→%s revisited: %w", prev, cur, ErrBadEmbedding)
		}
		marked[halfEdge{prev, cur}] = struct{}{}
	}

	return face, nil
}

// Faces returns every face of the embedding, each half-edge traversed
// exactly once. Faces are discovered in vertex insertion order, then
// rotation order, so the result is deterministic.
//
// Errors: ErrBadEmbedding on an impossible face.
// Complexity: O(V + E).
func (emb *Embedding) Faces() ([][]string, error) {
	marked := make(map[halfEdge]struct{}, emb.halfEdges)
	var faces [][]string
	for _, v := range emb.order {
		for w := range emb.Rotation(v) {
			if _, seen := marked[halfEdge{v, w}]; seen {
				continue
			}
			face, err := emb.traverseFace(v, w, marked)
			if err != nil {
				return nil, err
			}
			faces = append(faces, face)
		}
	}

	return faces, nil
}

// CheckStructure validates the rotation system:
//   - every rotation visits exactly the neighbor set of its vertex;
//   - every half-edge u→v has its reciprocal v→u;
//   - V − E + F = 2 holds for every connected component with at least one edge.
//
// Errors: ErrBadEmbedding (wrapped with the failing vertex or component).
// Complexity: O(V + E).
func (emb *Embedding) CheckStructure() error {
	for _, v := range emb.order {
		if err := emb.checkRing(v); err != nil {
			return err
		}
	}
	stats, err := emb.ComponentStats()
	if err != nil {
		return err
	}
	for i, c := range stats {
		if c.Euler() != 2 {
			return fmt.Errorf("CheckStructure: component %d: V=%d E=%d F=%d violates Euler's formula: %w",
				i, c.Vertices, c.Edges, c.Faces, ErrBadEmbedding)
		}
	}

	return nil
}

func (emb *Embedding) checkRing(v string) error {
	ring := emb.rings[v]
	visited := 0
	for w := range emb.Rotation(v) {
		at, ok := ring[w]
		if !ok || emb.rings[v][at.cw] == nil || ring[at.cw].ccw != w {
			return fmt.Errorf("CheckStructure: %s: broken orientation at neighbor %s: %w", v, w, ErrBadEmbedding)
		}
		if !emb.HasHalfEdge(w, v) {
			return fmt.Errorf("CheckStructure: %s→%s: opposite half-edge missing: %w", v, w, ErrBadEmbedding)
		}
		visited++
	}
	if visited != len(ring) {
		return fmt.Errorf("CheckStructure: %s: rotation covers %d of %d neighbors: %w", v, visited, len(ring), ErrBadEmbedding)
	}

	return nil
}

// ComponentStats counts vertices, edges and faces of every connected
// component that has at least one edge, in vertex insertion order of the
// component's first vertex. Isolated vertices are skipped.
//
// Errors: ErrBadEmbedding on an impossible face.
func (emb *Embedding) ComponentStats() ([]ComponentStat, error) {
	comp := make(map[string]int, len(emb.order))
	var stats []ComponentStat
	marked := make(map[halfEdge]struct{}, emb.halfEdges)

	for _, root := range emb.order {
		if _, done := comp[root]; done || len(emb.rings[root]) == 0 {
			continue
		}
		id := len(stats)
		comp[root] = id
		queue := []string{root}
		members := []string{}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			members = append(members, v)
			for w := range emb.Rotation(v) {
				if _, done := comp[w]; !done {
					comp[w] = id
					queue = append(queue, w)
				}
			}
		}

		st := ComponentStat{Vertices: len(members)}
		halfEdges := 0
		for _, v := range members {
			for w := range emb.Rotation(v) {
				halfEdges++
				if _, seen := marked[halfEdge{v, w}]; seen {
					continue
				}
				if _, err := emb.traverseFace(v, w, marked); err != nil {
					return nil, err
				}
				st.Faces++
			}
		}
		st.Edges = halfEdges / 2
		stats = append(stats, st)
	}

	return stats, nil
}
