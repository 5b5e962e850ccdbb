// File: state.go
// Role: Per-call working state of the left-right planarity test.
//
// All per-vertex and per-edge bookkeeping lives in one lrState built by
// newLRState and dropped when TestAndEmbed returns. Oriented edges are arena
// records addressed by index; noEdge marks an absent reference.

package planar

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
)

const noEdge = -1

// adjEntry is one endpoint view of an undirected input edge.
type adjEntry struct {
	to  int // neighbor vertex index
	uid int // undirected edge index, used to orient every edge once
}

// orientedEdge is the arena record of an edge after the orientation pass.
type orientedEdge struct {
	from, to    int
	lowpt       int
	lowpt2      int
	nesting     int
	side        int
	ref         int
	lowptEdge   int
	stackBottom *conflictPair // top of S when the edge was first tested
}

// interval bounds a run of back edges: low and high are edge indices.
type interval struct {
	low, high int
}

var emptyInterval = interval{low: noEdge, high: noEdge}

func (iv interval) empty() bool {
	return iv.low == noEdge && iv.high == noEdge
}

// conflictPair holds the back edges that must go left and right of the
// current tree path. Pairs are compared by identity, so they live on S as
// pointers.
type conflictPair struct {
	left, right interval
}

func (p *conflictPair) swap() {
	p.left, p.right = p.right, p.left
}

// lrState is the working memory of one TestAndEmbed call.
type lrState struct {
	ids   []string       // vertex index → external ID
	index map[string]int // external ID → vertex index
	adj   [][]adjEntry   // input adjacency in edge input order
	m     int            // undirected edge count

	height     []int   // DFS depth, -1 until visited
	parentEdge []int   // tree edge that discovered the vertex, noEdge for roots
	out        [][]int // oriented edges leaving each vertex, orientation order
	ordered    [][]int // out sorted by nesting depth
	roots      []int

	edges   []orientedEdge
	claimed []bool // per undirected edge

	s *arraystack.Stack // conflict pairs (*conflictPair)

	leftRef  []int
	rightRef []int
}

// newLRState indexes the input and validates the caller's contract: unique
// non-empty vertex IDs, edges between known distinct vertices, no edge
// listed twice.
func newLRState(vertices []string, edges []Edge) (*lrState, error) {
	n := len(vertices)
	st := &lrState{
		ids:   make([]string, n),
		index: make(map[string]int, n),
		adj:   make([][]adjEntry, n),
		m:     len(edges),
	}
	for i, id := range vertices {
		if id == "" {
			return nil, fmt.Errorf("vertex #%d: %w", i, ErrEmptyVertexID)
		}
		if _, dup := st.index[id]; dup {
			return nil, fmt.Errorf("vertex %q: %w", id, ErrDuplicateVertex)
		}
		st.index[id] = i
		st.ids[i] = id
	}

	type pair struct{ a, b int }
	seen := make(map[pair]struct{}, len(edges))
	for uid, e := range edges {
		u, okU := st.index[e.U]
		v, okV := st.index[e.V]
		switch {
		case e.U == "" || e.V == "":
			return nil, fmt.Errorf("edge %s-%s: %w", e.U, e.V, ErrEmptyVertexID)
		case !okU:
			return nil, fmt.Errorf("edge %s-%s: endpoint %q: %w", e.U, e.V, e.U, ErrVertexNotFound)
		case !okV:
			return nil, fmt.Errorf("edge %s-%s: endpoint %q: %w", e.U, e.V, e.V, ErrVertexNotFound)
		case u == v:
			return nil, fmt.Errorf("edge %s-%s: %w", e.U, e.V, ErrSelfLoop)
		}
		key := pair{min(u, v), max(u, v)}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("edge %s-%s: %w", e.U, e.V, ErrDuplicateEdge)
		}
		seen[key] = struct{}{}
		st.adj[u] = append(st.adj[u], adjEntry{to: v, uid: uid})
		st.adj[v] = append(st.adj[v], adjEntry{to: u, uid: uid})
	}

	st.height = make([]int, n)
	st.parentEdge = make([]int, n)
	for i := range st.height {
		st.height[i] = -1
		st.parentEdge[i] = noEdge
	}
	st.out = make([][]int, n)
	st.edges = make([]orientedEdge, 0, st.m)
	st.claimed = make([]bool, st.m)
	st.s = arraystack.New()

	return st, nil
}

// newEdge appends an oriented edge v→w with lowpt = lowpt2 = height(v).
func (st *lrState) newEdge(v, w int) int {
	h := st.height[v]
	st.edges = append(st.edges, orientedEdge{
		from:      v,
		to:        w,
		lowpt:     h,
		lowpt2:    h,
		side:      1,
		ref:       noEdge,
		lowptEdge: noEdge,
	})
	ei := len(st.edges) - 1
	st.out[v] = append(st.out[v], ei)

	return ei
}

// isTreeEdge reports whether ei discovered its target.
func (st *lrState) isTreeEdge(ei int) bool {
	return st.parentEdge[st.edges[ei].to] == ei
}

// lowptOf returns lowpt of ei, or MaxInt for noEdge so comparisons fail safe.
func (st *lrState) lowptOf(ei int) int {
	if ei == noEdge {
		return math.MaxInt
	}

	return st.edges[ei].lowpt
}

// conflicting reports whether iv holds a back edge that returns above
// lowpt(b).
func (st *lrState) conflicting(iv interval, b int) bool {
	return !iv.empty() && iv.high != noEdge && st.lowptOf(iv.high) > st.lowptOf(b)
}

// lowest is the smallest return point of any back edge in p.
func (st *lrState) lowest(p *conflictPair) int {
	if p.left.empty() {
		return st.lowptOf(p.right.low)
	}
	if p.right.empty() {
		return st.lowptOf(p.left.low)
	}

	return min(st.lowptOf(p.left.low), st.lowptOf(p.right.low))
}

// top returns the top of S, or nil when S is empty.
func (st *lrState) top() *conflictPair {
	v, ok := st.s.Peek()
	if !ok {
		return nil
	}

	return v.(*conflictPair)
}

func (st *lrState) pop() *conflictPair {
	v, ok := st.s.Pop()
	if !ok {
		return nil
	}

	return v.(*conflictPair)
}
