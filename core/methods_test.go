package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "AddVertex must be idempotent")
	require.NoError(t, g.AddVertex("B"))

	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("Z"))
	assert.Equal(t, 2, g.VertexCount())
}

func TestGraph_VerticesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"10", "2", "C", "1"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge("9", "2", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"10", "2", "C", "1", "9"}, g.Vertices())
}

func TestGraph_AddEdgePolicies(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected mirror counts as parallel edge")

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
}

func TestGraph_DirectedEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 0)
	require.NoError(t, err, "opposite arc is not a parallel edge in a directed graph")

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))

	nbs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nbs)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
	assert.Equal(t, 0, g.EdgeCount())

	_, err = g.GetEdge(eid)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_EdgesCreationOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, fmt.Sprintf("e%d", i+1), e.ID)
	}
}

func TestGraph_NeighborsAndDegree(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "A", 0)

	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, edges, 4)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, ids)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 5, deg)

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("B", "B", 1)
	require.NoError(t, g.AddVertex("C"))

	st := g.Stats()
	assert.True(t, st.Weighted)
	assert.True(t, st.AllowsLoops)
	assert.False(t, st.Directed)
	assert.Equal(t, 3, st.VertexCount)
	assert.Equal(t, 2, st.EdgeCount)
	assert.Equal(t, 1, st.LoopCount)
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	errs := make(chan error, num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			if _, err := g.AddEdge("X", fmt.Sprintf("V%d", id), 0); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	assert.Len(t, nbs, num)
}
