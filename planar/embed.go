// File: embed.go
// Role: Side resolution and the embedding pass that materializes the
// rotation system after a successful test.

package planar

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// resolveSides fixes the final side of every oriented edge by chasing its
// ref chain, multiplying signs along the way and cutting the chain behind
// it, then signs the nesting depths.
func (st *lrState) resolveSides() {
	var chain []int
	for ei := range st.edges {
		chain = chain[:0]
		for x := ei; st.edges[x].ref != noEdge; x = st.edges[x].ref {
			chain = append(chain, x)
		}
		for i := len(chain) - 1; i >= 0; i-- {
			x := chain[i]
			st.edges[x].side *= st.edges[st.edges[x].ref].side
			st.edges[x].ref = noEdge
		}
		st.edges[ei].nesting *= st.edges[ei].side
	}
}

// embed builds the Embedding from the signed nesting order.
func (st *lrState) embed() (*Embedding, error) {
	st.ordered = st.sortedOut()
	emb := NewEmbedding()
	for _, id := range st.ids {
		_ = emb.AddVertex(id) // validated in newLRState
	}

	for v, list := range st.ordered {
		prev := ""
		for _, ei := range list {
			w := st.ids[st.edges[ei].to]
			var err error
			if prev == "" {
				err = emb.AddHalfEdge(st.ids[v], w)
			} else {
				err = emb.AddHalfEdge(st.ids[v], w, CCW(prev))
			}
			if err != nil {
				return nil, err
			}
			prev = w
		}
	}

	st.leftRef = make([]int, len(st.ids))
	st.rightRef = make([]int, len(st.ids))
	type frame struct{ v, next int }
	frames := arraystack.New()
	for _, root := range st.roots {
		frames.Push(&frame{v: root})
		for !frames.Empty() {
			top, _ := frames.Peek()
			f := top.(*frame)
			if f.next == len(st.ordered[f.v]) {
				frames.Pop()
				continue
			}
			ei := st.ordered[f.v][f.next]
			f.next++

			v, w := f.v, st.edges[ei].to
			if st.isTreeEdge(ei) {
				if err := emb.AddHalfEdgeFirst(st.ids[w], st.ids[v]); err != nil {
					return nil, err
				}
				st.leftRef[v], st.rightRef[v] = w, w
				frames.Push(&frame{v: w})
				continue
			}
			if err := st.embedBackEdge(emb, ei); err != nil {
				return nil, err
			}
		}
	}

	return emb, nil
}

// embedBackEdge inserts w→v for the back edge v→w next to the remembered
// left or right reference at w, depending on the resolved side.
func (st *lrState) embedBackEdge(emb *Embedding, ei int) error {
	v, w := st.edges[ei].from, st.edges[ei].to
	if st.edges[ei].side == 1 {
		if err := emb.AddHalfEdge(st.ids[w], st.ids[v], CCW(st.ids[st.rightRef[w]])); err != nil {
			return fmt.Errorf("back edge %s→%s: %w", st.ids[v], st.ids[w], err)
		}
		return nil
	}
	if err := emb.AddHalfEdge(st.ids[w], st.ids[v], CW(st.ids[st.leftRef[w]])); err != nil {
		return fmt.Errorf("back edge %s→%s: %w", st.ids[v], st.ids[w], err)
	}
	st.leftRef[w] = v

	return nil
}
