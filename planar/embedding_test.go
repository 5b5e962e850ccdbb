package planar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/planar"
)

func rotation(t *testing.T, emb *planar.Embedding, v string) []string {
	t.Helper()
	nbs, err := emb.NeighborsCWOrder(v)
	require.NoError(t, err)

	return nbs
}

func TestEmbedding_AddHalfEdgeReferences(t *testing.T) {
	emb := planar.NewEmbedding()

	require.NoError(t, emb.AddHalfEdge("c", "a"))
	assert.Equal(t, []string{"a"}, rotation(t, emb, "c"))
	assert.True(t, emb.HasVertex("a"), "target vertex is created")

	// b clockwise of a.
	require.NoError(t, emb.AddHalfEdge("c", "b", planar.CCW("a")))
	assert.Equal(t, []string{"a", "b"}, rotation(t, emb, "c"))

	// d counter-clockwise of a, i.e. between b and a; a stays the start.
	require.NoError(t, emb.AddHalfEdgeCCW("c", "d", "b"))
	assert.Equal(t, []string{"a", "d", "b"}, rotation(t, emb, "c"))

	// Counter-clockwise of the start becomes the new start.
	require.NoError(t, emb.AddHalfEdge("c", "e", planar.CW("a")))
	assert.Equal(t, []string{"e", "a", "d", "b"}, rotation(t, emb, "c"))

	require.NoError(t, emb.AddHalfEdgeCW("c", "f", "b"))
	assert.Equal(t, []string{"e", "a", "d", "b", "f"}, rotation(t, emb, "c"))

	require.NoError(t, emb.AddHalfEdgeFirst("c", "g"))
	assert.Equal(t, []string{"g", "e", "a", "d", "b", "f"}, rotation(t, emb, "c"))
	assert.Equal(t, 6, emb.Degree("c"))
}

func TestEmbedding_AddHalfEdgeErrors(t *testing.T) {
	emb := planar.NewEmbedding()

	assert.ErrorIs(t, emb.AddHalfEdge("", "b"), planar.ErrEmptyVertexID)
	assert.ErrorIs(t, emb.AddHalfEdge("a", "a"), planar.ErrSelfLoop)
	assert.ErrorIs(t, emb.AddHalfEdge("a", "b", planar.CW("x")), planar.ErrInvalidReference,
		"no reference allowed for the first half-edge")

	require.NoError(t, emb.AddHalfEdge("a", "b"))
	assert.ErrorIs(t, emb.AddHalfEdge("a", "c"), planar.ErrReferenceRequired)
	assert.ErrorIs(t, emb.AddHalfEdge("a", "c", planar.CW("zz")), planar.ErrInvalidReference)
	assert.ErrorIs(t, emb.AddHalfEdge("a", "c", planar.CW("b"), planar.CCW("b")), planar.ErrAmbiguousReference)
	assert.ErrorIs(t, emb.AddHalfEdge("a", "b", planar.CW("b")), planar.ErrHalfEdgeExists)

	assert.Equal(t, []string{"b"}, rotation(t, emb, "a"), "failed inserts leave the ring untouched")
	_, err := emb.NeighborsCWOrder("missing")
	assert.ErrorIs(t, err, planar.ErrVertexNotFound)
}

func TestEmbedding_RotationIsLazyAndRestartable(t *testing.T) {
	emb, err := planar.EmbeddingFromData(map[string][]string{
		"hub": {"1", "2", "3", "4"},
		"1":   {"hub"}, "2": {"hub"}, "3": {"hub"}, "4": {"hub"},
	})
	require.NoError(t, err)

	var got []string
	for w := range emb.Rotation("hub") {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"1", "2"}, got)

	got = got[:0]
	for w := range emb.Rotation("hub") {
		got = append(got, w)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, got)

	for range emb.Rotation("nobody") {
		t.Fatal("unknown vertex must yield nothing")
	}
}

func TestEmbedding_DataRoundTrip(t *testing.T) {
	vertices, edges := octahedron()
	emb, err := planar.TestAndEmbed(vertices, edges)
	require.NoError(t, err)

	back, err := planar.EmbeddingFromData(emb.Data())
	require.NoError(t, err)
	require.NoError(t, back.CheckStructure())
	assert.Equal(t, emb.Data(), back.Data())
	assert.Equal(t, emb.EdgeCount(), back.EdgeCount())
}

func TestEmbedding_TraverseFace(t *testing.T) {
	emb, err := planar.EmbeddingFromData(map[string][]string{
		"c": {"x", "y", "z"},
		"x": {"c"}, "y": {"c"}, "z": {"c"},
	})
	require.NoError(t, err)

	face, err := emb.TraverseFace("c", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "x", "c", "z", "c", "y"}, face)

	w, x, err := emb.NextFaceHalfEdge("c", "x")
	require.NoError(t, err)
	assert.Equal(t, "x", w)
	assert.Equal(t, "c", x)

	_, err = emb.TraverseFace("x", "y")
	assert.ErrorIs(t, err, planar.ErrEdgeNotFound)
}

func TestEmbedding_TraverseFace_MissingPartner(t *testing.T) {
	emb := planar.NewEmbedding()
	require.NoError(t, emb.AddHalfEdge("a", "b"))
	require.NoError(t, emb.AddHalfEdge("b", "a"))
	require.NoError(t, emb.RemoveHalfEdge("b", "a"))

	_, err := emb.TraverseFace("a", "b")
	assert.ErrorIs(t, err, planar.ErrBadEmbedding)

	_, err = emb.Faces()
	assert.ErrorIs(t, err, planar.ErrBadEmbedding)

	_, err = emb.ComponentStats()
	assert.ErrorIs(t, err, planar.ErrBadEmbedding)
}

func TestEmbedding_CheckStructure(t *testing.T) {
	t.Run("missing opposite half-edge", func(t *testing.T) {
		emb := planar.NewEmbedding()
		require.NoError(t, emb.AddHalfEdge("a", "b"))
		assert.ErrorIs(t, emb.CheckStructure(), planar.ErrBadEmbedding)
	})

	t.Run("toroidal K4 rotation", func(t *testing.T) {
		// Each vertex lists its neighbors in ascending order: only 2 faces.
		emb, err := planar.EmbeddingFromData(map[string][]string{
			"0": {"1", "2", "3"},
			"1": {"0", "2", "3"},
			"2": {"0", "1", "3"},
			"3": {"0", "1", "2"},
		})
		require.NoError(t, err)

		stats, err := emb.ComponentStats()
		require.NoError(t, err)
		assert.Equal(t, []planar.ComponentStat{{Vertices: 4, Edges: 6, Faces: 2}}, stats)
		assert.ErrorIs(t, emb.CheckStructure(), planar.ErrBadEmbedding)
	})

	t.Run("planar K4 rotation", func(t *testing.T) {
		emb, err := planar.EmbeddingFromData(map[string][]string{
			"a": {"b", "d", "c"},
			"b": {"a", "c", "d"},
			"c": {"b", "a", "d"},
			"d": {"c", "a", "b"},
		})
		require.NoError(t, err)
		assert.NoError(t, emb.CheckStructure())
	})
}

func TestEmbedding_RemoveEdge(t *testing.T) {
	vertices, edges := complete(4)
	emb, err := planar.TestAndEmbed(vertices, edges)
	require.NoError(t, err)

	require.NoError(t, emb.RemoveEdge("0", "1"))
	assert.False(t, emb.HasHalfEdge("0", "1"))
	assert.False(t, emb.HasHalfEdge("1", "0"))
	assert.Equal(t, 5, emb.EdgeCount())
	assert.Len(t, rotation(t, emb, "0"), 2)
	require.NoError(t, emb.CheckStructure())

	assert.ErrorIs(t, emb.RemoveEdge("0", "1"), planar.ErrEdgeNotFound)

	// Removing every edge of a vertex empties its ring but keeps the vertex.
	require.NoError(t, emb.RemoveEdge("0", "2"))
	require.NoError(t, emb.RemoveEdge("0", "3"))
	assert.Empty(t, rotation(t, emb, "0"))
	assert.True(t, emb.HasVertex("0"))
	require.NoError(t, emb.AddHalfEdge("0", "1"), "an emptied vertex accepts a fresh singleton")
}

func TestEmbedding_RemoveVertex(t *testing.T) {
	vertices, edges := octahedron()
	emb, err := planar.TestAndEmbed(vertices, edges)
	require.NoError(t, err)

	require.NoError(t, emb.RemoveVertex("0"))
	assert.False(t, emb.HasVertex("0"))
	assert.Equal(t, 5, emb.VertexCount())
	assert.Equal(t, 8, emb.EdgeCount())
	require.NoError(t, emb.CheckStructure(), "deleting a vertex keeps the embedding planar")

	assert.ErrorIs(t, emb.RemoveVertex("0"), planar.ErrVertexNotFound)
}

func TestEmbedding_RemoveVertex_IncomingOnly(t *testing.T) {
	emb := planar.NewEmbedding()
	require.NoError(t, emb.AddHalfEdge("a", "b"))

	require.NoError(t, emb.RemoveVertex("b"))
	assert.False(t, emb.HasVertex("b"))
	assert.False(t, emb.HasHalfEdge("a", "b"))
	assert.Equal(t, 0, emb.Degree("a"))
	assert.Equal(t, 0, emb.EdgeCount())
	assert.NoError(t, emb.CheckStructure())
}

func TestEmbedding_ConnectComponents(t *testing.T) {
	vertices := ids(6)
	edges := []planar.Edge{e(0, 1), e(1, 2), e(2, 0), e(3, 4), e(4, 5), e(5, 3)}
	emb, err := planar.TestAndEmbed(vertices, edges)
	require.NoError(t, err)

	require.NoError(t, emb.ConnectComponents("0", "3"))
	stats, err := emb.ComponentStats()
	require.NoError(t, err)
	assert.Equal(t, []planar.ComponentStat{{Vertices: 6, Edges: 7, Faces: 3}}, stats)
	assert.NoError(t, emb.CheckStructure())

	assert.ErrorIs(t, emb.ConnectComponents("0", "3"), planar.ErrHalfEdgeExists)
}

func TestEmbedding_Edges(t *testing.T) {
	emb, err := planar.TestAndEmbed([]string{"a", "b", "c"}, []planar.Edge{{U: "b", V: "c"}, {U: "a", V: "b"}})
	require.NoError(t, err)

	assert.Equal(t, []planar.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}}, emb.Edges())
	assert.Equal(t, []string{"a", "b", "c"}, emb.Vertices())
}
