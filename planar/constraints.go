// File: constraints.go
// Role: Second DFS pass: left-right constraint testing on the conflict-pair
// stack S.
//
// Outgoing edges are visited in ascending nesting depth. A contradiction
// anywhere aborts the whole pass with ErrNotPlanar.

package planar

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// testFrame is one suspended call of the testing DFS.
type testFrame struct {
	v       int
	e       int // parent edge of v, noEdge for a root
	next    int // position in ordered[v]
	pending int // tree edge whose subtree just finished, noEdge otherwise
}

// test runs the constraint DFS from every root.
func (st *lrState) test() error {
	frames := arraystack.New()
	for _, root := range st.roots {
		frames.Push(&testFrame{v: root, e: noEdge, pending: noEdge})

		for !frames.Empty() {
			top, _ := frames.Peek()
			f := top.(*testFrame)

			if f.pending != noEdge {
				ei := f.pending
				f.pending = noEdge
				if err := st.integrate(f.v, f.e, ei); err != nil {
					return err
				}
			}
			if f.next == len(st.ordered[f.v]) {
				frames.Pop()
				if f.e != noEdge {
					st.removeBackEdges(f.e)
				}
				continue
			}

			ei := st.ordered[f.v][f.next]
			f.next++
			st.edges[ei].stackBottom = st.top()

			if st.isTreeEdge(ei) {
				f.pending = ei
				frames.Push(&testFrame{v: st.edges[ei].to, e: ei, pending: noEdge})
				continue
			}
			st.edges[ei].lowptEdge = ei
			st.s.Push(&conflictPair{left: emptyInterval, right: interval{low: ei, high: ei}})
			if err := st.integrate(f.v, f.e, ei); err != nil {
				return err
			}
		}
	}

	return nil
}

// integrate merges the back edges of child edge ei into the constraints of
// the parent edge e once ei has been fully processed.
func (st *lrState) integrate(v, e, ei int) error {
	if st.edges[ei].lowpt >= st.height[v] {
		return nil
	}
	if ei == st.ordered[v][0] {
		st.edges[e].lowptEdge = st.edges[ei].lowptEdge
		return nil
	}

	return st.addConstraints(ei, e)
}

// addConstraints folds the intervals pushed while processing ei into one
// conflict pair: first everything above ei's stack bottom goes right, then
// every pair conflicting with ei goes left.
func (st *lrState) addConstraints(ei, e int) error {
	p := &conflictPair{left: emptyInterval, right: emptyInterval}
	bottom := st.edges[ei].stackBottom
	lowE := st.edges[e].lowpt

	for {
		q := st.pop()
		if q == nil {
			break
		}
		if !q.left.empty() {
			q.swap()
		}
		if !q.left.empty() {
			return ErrNotPlanar
		}
		if st.lowptOf(q.right.low) > lowE {
			if p.right.empty() {
				p.right = q.right
			} else {
				st.setRef(p.right.low, q.right.high)
			}
			p.right.low = q.right.low
		} else {
			st.setRef(q.right.low, st.edges[e].lowptEdge)
		}
		if st.top() == bottom {
			break
		}
	}

	for {
		q := st.top()
		if q == nil || !(st.conflicting(q.left, ei) || st.conflicting(q.right, ei)) {
			break
		}
		st.pop()
		if st.conflicting(q.right, ei) {
			q.swap()
		}
		if st.conflicting(q.right, ei) {
			return ErrNotPlanar
		}
		st.setRef(p.right.low, q.right.high)
		if q.right.low != noEdge {
			p.right.low = q.right.low
		}
		if p.left.empty() {
			p.left = q.left
		} else {
			st.setRef(p.left.low, q.left.high)
		}
		p.left.low = q.left.low
	}

	if !p.left.empty() || !p.right.empty() {
		st.s.Push(p)
	}

	return nil
}

// removeBackEdges drops the back edges ending at the tail of the tree edge
// e once its subtree is finished, trims the remaining top pair and links e
// into the ref chain.
func (st *lrState) removeBackEdges(e int) {
	u := st.edges[e].from
	hu := st.height[u]

	for !st.s.Empty() && st.lowest(st.top()) == hu {
		p := st.pop()
		if p.left.low != noEdge {
			st.edges[p.left.low].side = -1
		}
	}

	if p := st.pop(); p != nil {
		for p.left.high != noEdge && st.edges[p.left.high].to == u {
			p.left.high = st.edges[p.left.high].ref
		}
		if p.left.high == noEdge && p.left.low != noEdge {
			st.edges[p.left.low].ref = p.right.low
			st.edges[p.left.low].side = -1
			p.left.low = noEdge
		}

		for p.right.high != noEdge && st.edges[p.right.high].to == u {
			p.right.high = st.edges[p.right.high].ref
		}
		if p.right.high == noEdge && p.right.low != noEdge {
			st.edges[p.right.low].ref = p.left.low
			st.edges[p.right.low].side = -1
			p.right.low = noEdge
		}
		st.s.Push(p)
	}

	if st.edges[e].lowpt < hu {
		if top := st.top(); top != nil {
			hl, hr := top.left.high, top.right.high
			if hl != noEdge && (hr == noEdge || st.lowptOf(hl) > st.lowptOf(hr)) {
				st.edges[e].ref = hl
			} else {
				st.edges[e].ref = hr
			}
		}
	}
}

// setRef records ref(from) = to; a missing source edge is ignored.
func (st *lrState) setRef(from, to int) {
	if from != noEdge {
		st.edges[from].ref = to
	}
}
