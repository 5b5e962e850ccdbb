// File: orientation.go
// Role: First DFS pass: orients every edge as a tree or back edge and
// computes lowpt, lowpt2 and the nesting depth used to order siblings.
//
// The DFS runs on an explicit frame stack, so a path of any length is safe.

package planar

import (
	"sort"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// orientFrame is one suspended call of the orientation DFS.
type orientFrame struct {
	v       int
	e       int // parent edge of v, noEdge for a root
	next    int // position in adj[v]
	pending int // tree edge whose subtree just finished, noEdge otherwise
}

// orient runs the orientation DFS from every unvisited vertex, in input
// order, and then sorts each vertex's outgoing edges by nesting depth.
func (st *lrState) orient() {
	frames := arraystack.New()
	for root := range st.ids {
		if st.height[root] != -1 {
			continue
		}
		st.height[root] = 0
		st.roots = append(st.roots, root)
		frames.Push(&orientFrame{v: root, e: noEdge, pending: noEdge})

		for !frames.Empty() {
			top, _ := frames.Peek()
			f := top.(*orientFrame)

			if f.pending != noEdge {
				st.finishEdge(f.pending, f.e)
				f.pending = noEdge
			}
			if f.next == len(st.adj[f.v]) {
				frames.Pop()
				continue
			}

			a := st.adj[f.v][f.next]
			f.next++
			if st.claimed[a.uid] {
				continue
			}
			st.claimed[a.uid] = true
			vw := st.newEdge(f.v, a.to)

			if st.height[a.to] == -1 {
				st.parentEdge[a.to] = vw
				st.height[a.to] = st.height[f.v] + 1
				f.pending = vw
				frames.Push(&orientFrame{v: a.to, e: vw, pending: noEdge})
				continue
			}
			st.edges[vw].lowpt = st.height[a.to]
			st.finishEdge(vw, f.e)
		}
	}

	st.ordered = st.sortedOut()
}

// finishEdge fixes the nesting depth of vw and folds its low points into
// the parent edge e.
func (st *lrState) finishEdge(vw, e int) {
	ed := &st.edges[vw]
	ed.nesting = 2 * ed.lowpt
	if ed.lowpt2 < st.height[ed.from] {
		ed.nesting++ // chordal
	}
	if e == noEdge {
		return
	}

	pe := &st.edges[e]
	switch {
	case ed.lowpt < pe.lowpt:
		pe.lowpt2 = min(pe.lowpt, ed.lowpt2)
		pe.lowpt = ed.lowpt
	case ed.lowpt > pe.lowpt:
		pe.lowpt2 = min(pe.lowpt2, ed.lowpt)
	default:
		pe.lowpt2 = min(pe.lowpt2, ed.lowpt2)
	}
}

// sortedOut returns a copy of out with every list stably sorted by the
// current nesting depth.
func (st *lrState) sortedOut() [][]int {
	res := make([][]int, len(st.out))
	for v, list := range st.out {
		cp := make([]int, len(list))
		copy(cp, list)
		sort.SliceStable(cp, func(i, j int) bool {
			return st.edges[cp[i]].nesting < st.edges[cp[j]].nesting
		})
		res[v] = cp
	}

	return res
}
