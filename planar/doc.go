// Package planar implements linear-time planarity testing with the
// left-right criterion (de Fraysseix–Rosenstiehl, in Brandes' formulation)
// and stores the result as a half-edge rotation system.
//
// What:
//
//   - TestAndEmbed: answers "is this undirected graph planar?" and, if so,
//     returns an *Embedding: for every vertex the clockwise cyclic order of
//     its neighbors in some crossing-free drawing.
//   - Embedding: the rotation system itself. Half-edges enter only with an
//     explicit rotational position (AddHalfEdge with CW/CCW, AddHalfEdgeFirst).
//     Faces are walked with TraverseFace/Faces; CheckStructure verifies
//     reciprocity and Euler's formula per connected component.
//   - ExtractCounterexample: a heuristic, non-linear edge-deletion scan that
//     returns a non-planar subgraph.
//
// How:
//
//  1. Orientation DFS: every edge becomes a tree edge or a back edge; each
//     oriented edge gets lowpt, lowpt2 and a nesting depth 2·lowpt (+1 if
//     chordal).
//  2. Testing DFS: children are visited in nesting order while a stack of
//     conflict pairs tracks which back edges must lie left and right of the
//     current tree path. A pair that cannot be split aborts with ErrNotPlanar.
//  3. Side resolution: ref chains are collapsed into a ±1 side per edge.
//  4. Embedding DFS: half-edges are inserted in signed nesting order.
//
// All DFS passes use explicit frame stacks (gods arraystack), so deep
// graphs such as long paths do not exhaust the goroutine stack.
//
// Errors:
//
//   - ErrNotPlanar: the normal "no" answer.
//   - ErrEmptyVertexID, ErrDuplicateVertex, ErrVertexNotFound, ErrSelfLoop,
//     ErrDuplicateEdge: the caller broke the input contract.
//   - ErrBadEmbedding: a rotation system is structurally broken.
//
// Complexity:
//
//   - TestAndEmbed: O(V + E) time and memory.
//   - ExtractCounterexample: O(E·(V + E)).
//
// Concurrency: every call builds fresh state; concurrent TestAndEmbed calls
// are safe. An *Embedding must not be mutated concurrently.
package planar
