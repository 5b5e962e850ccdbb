package planar_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/planar"
)

func TestTestAndEmbed_EdgeBoundShortcut(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	vertices, edges := complete(5) // 10 > 3·5 − 6
	_, err := planar.TestAndEmbed(vertices, edges, planar.WithLogger(logger))
	require.ErrorIs(t, err, planar.ErrNotPlanar)
	assert.Contains(t, buf.String(), "edge bound exceeded")
	assert.NotContains(t, buf.String(), "orientation done", "DFS must not run")

	vertices, edges = complete(8)
	_, err = planar.TestAndEmbed(vertices, edges)
	assert.ErrorIs(t, err, planar.ErrNotPlanar)
}

func TestTestAndEmbed_SmallGraphsBelowBound(t *testing.T) {
	// With two vertices 3V−6 is 0, the bound does not apply.
	emb, err := planar.TestAndEmbed([]string{"a", "b"}, []planar.Edge{{U: "a", V: "b"}})
	require.NoError(t, err)
	assert.Equal(t, 1, emb.EdgeCount())

	emb, err = planar.TestAndEmbed(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, emb.VertexCount())

	emb, err = planar.TestAndEmbed([]string{"solo"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, emb.Vertices())
	assert.NoError(t, emb.CheckStructure())
}

func TestTestAndEmbed_Kuratowski(t *testing.T) {
	k5v, k5e := complete(5)
	k33v, k33e := completeBipartite(3, 3)
	pv, pe := petersen()
	k34v, k34e := completeBipartite(3, 4)

	tests := []struct {
		name     string
		vertices []string
		edges    []planar.Edge
	}{
		{"K5", k5v, k5e},
		{"K3,3", k33v, k33e},
		{"Petersen", pv, pe},
		{"K3,4", k34v, k34e},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := planar.IsPlanar(tc.vertices, tc.edges)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestTestAndEmbed_KuratowskiMinusEdge(t *testing.T) {
	k5v, k5e := complete(5)
	k33v, k33e := completeBipartite(3, 3)

	for i := range k5e {
		rest := append(append([]planar.Edge{}, k5e[:i]...), k5e[i+1:]...)
		emb, err := planar.TestAndEmbed(k5v, rest)
		require.NoError(t, err, "K5 minus edge %d", i)
		assert.Equal(t, 9, emb.EdgeCount())
	}
	for i := range k33e {
		rest := append(append([]planar.Edge{}, k33e[:i]...), k33e[i+1:]...)
		_, err := planar.TestAndEmbed(k33v, rest)
		require.NoError(t, err, "K3,3 minus edge %d", i)
	}
}

func TestTestAndEmbed_Octahedron(t *testing.T) {
	vertices, edges := octahedron()
	emb, err := planar.TestAndEmbed(vertices, edges)
	require.NoError(t, err)

	for _, v := range vertices {
		assert.Equal(t, 4, emb.Degree(v))
	}
	stats, err := emb.ComponentStats()
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, planar.ComponentStat{Vertices: 6, Edges: 12, Faces: 8}, stats[0])
	assert.Equal(t, 2, stats[0].Euler())

	faces, err := emb.Faces()
	require.NoError(t, err)
	for _, f := range faces {
		assert.Len(t, f, 3, "every face of a triangulation is a triangle")
	}
}

func TestTestAndEmbed_StackedTriangulations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{3, 4, 5, 10, 50, 400} {
		vertices, edges := stacked(n, rng)
		require.Len(t, edges, 3*n-6)

		emb, err := planar.TestAndEmbed(vertices, shuffled(edges, rng))
		require.NoError(t, err, "n=%d", n)
		require.NoError(t, emb.CheckStructure())

		faces, err := emb.Faces()
		require.NoError(t, err)
		assert.Len(t, faces, 2*n-4, "n=%d", n)
	}
}

func TestTestAndEmbed_PlanarSubgraphsAnyOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 300; trial++ {
		n := 3 + rng.Intn(40)
		vertices, edges := stacked(n, rng)
		kept := edges[:0:0]
		for _, ed := range edges {
			if rng.Float64() < 0.8 {
				kept = append(kept, ed)
			}
		}
		order := append([]string{}, vertices...)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		_, err := planar.TestAndEmbed(order, shuffled(kept, rng))
		require.NoError(t, err, "trial %d", trial)
	}
}

func TestTestAndEmbed_PlantedK5Rejected(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		n := 6 + rng.Intn(30)
		vertices, edges := stacked(n, rng)
		have := make(map[[2]string]bool, len(edges))
		for _, ed := range edges {
			have[[2]string{ed.U, ed.V}], have[[2]string{ed.V, ed.U}] = true, true
		}
		pick := rng.Perm(n)[:5]
		for i := 0; i < 5; i++ {
			for j := i + 1; j < 5; j++ {
				ed := e(pick[i], pick[j])
				if !have[[2]string{ed.U, ed.V}] {
					have[[2]string{ed.U, ed.V}], have[[2]string{ed.V, ed.U}] = true, true
					edges = append(edges, ed)
				}
			}
		}

		ok, err := planar.IsPlanar(vertices, shuffled(edges, rng))
		require.NoError(t, err)
		assert.False(t, ok, "trial %d", trial)
	}
}

func TestTestAndEmbed_Forests(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{2, 3, 7, 64, 500} {
		edges := randomTree(n, rng)
		emb, err := planar.TestAndEmbed(ids(n), shuffled(edges, rng))
		require.NoError(t, err)

		faces, err := emb.Faces()
		require.NoError(t, err)
		require.Len(t, faces, 1, "a tree has a single face")
		assert.Len(t, faces[0], 2*(n-1))
	}

	// Two trees plus an isolated vertex: one face per non-trivial component.
	vertices := []string{"a", "b", "c", "x", "y", "iso"}
	edges := []planar.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}, {U: "x", V: "y"}}
	emb, err := planar.TestAndEmbed(vertices, edges)
	require.NoError(t, err)
	stats, err := emb.ComponentStats()
	require.NoError(t, err)
	assert.Equal(t, []planar.ComponentStat{
		{Vertices: 3, Edges: 2, Faces: 1},
		{Vertices: 2, Edges: 1, Faces: 1},
	}, stats)
}

func TestTestAndEmbed_TwoTrianglesEulerPerComponent(t *testing.T) {
	vertices := ids(6)
	edges := []planar.Edge{e(0, 1), e(1, 2), e(2, 0), e(3, 4), e(4, 5), e(5, 3)}

	emb, err := planar.TestAndEmbed(vertices, edges)
	require.NoError(t, err)

	stats, err := emb.ComponentStats()
	require.NoError(t, err)
	require.Len(t, stats, 2)
	for _, c := range stats {
		assert.Equal(t, planar.ComponentStat{Vertices: 3, Edges: 3, Faces: 2}, c)
		assert.Equal(t, 2, c.Euler())
	}
	// Summed naively the two triangles give 6 − 6 + 4 = 4.
	assert.NoError(t, emb.CheckStructure())
}

func TestTestAndEmbed_Deterministic(t *testing.T) {
	vertices, edges := grid(6, 7)
	first, err := planar.TestAndEmbed(vertices, edges)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := planar.TestAndEmbed(vertices, edges)
		require.NoError(t, err)
		assert.Equal(t, first.Data(), again.Data())
	}
}

func TestTestAndEmbed_FacePartition(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	vertices, edges := stacked(60, rng)
	emb, err := planar.TestAndEmbed(vertices, edges[:len(edges)-20])
	require.NoError(t, err)

	faces, err := emb.Faces()
	require.NoError(t, err)

	seen := make(map[[2]string]int)
	for _, f := range faces {
		for i := range f {
			seen[[2]string{f[i], f[(i+1)%len(f)]}]++
		}
	}
	assert.Len(t, seen, 2*emb.EdgeCount(), "every half-edge is on some face")
	for he, c := range seen {
		assert.Equal(t, 1, c, "half-edge %v traversed more than once", he)
	}
}

func TestTestAndEmbed_DeepPath(t *testing.T) {
	if testing.Short() {
		t.Skip("long path skipped in -short mode")
	}
	vertices, edges := path(100_000)
	emb, err := planar.TestAndEmbed(vertices, edges)
	require.NoError(t, err)
	assert.Equal(t, 99_999, emb.EdgeCount())
}

func TestTestAndEmbed_Grid(t *testing.T) {
	vertices, edges := grid(30, 30)
	emb, err := planar.TestAndEmbed(vertices, edges)
	require.NoError(t, err)

	faces, err := emb.Faces()
	require.NoError(t, err)
	assert.Len(t, faces, 29*29+1)
}

func TestTestAndEmbed_InputContract(t *testing.T) {
	tests := []struct {
		name     string
		vertices []string
		edges    []planar.Edge
		want     error
	}{
		{"empty vertex", []string{"a", ""}, nil, planar.ErrEmptyVertexID},
		{"duplicate vertex", []string{"a", "a"}, nil, planar.ErrDuplicateVertex},
		{"unknown endpoint", []string{"a"}, []planar.Edge{{U: "a", V: "b"}}, planar.ErrVertexNotFound},
		{"empty endpoint", []string{"a"}, []planar.Edge{{U: "a", V: ""}}, planar.ErrEmptyVertexID},
		{"self-loop", []string{"a"}, []planar.Edge{{U: "a", V: "a"}}, planar.ErrSelfLoop},
		{"duplicate edge", []string{"a", "b"}, []planar.Edge{{U: "a", V: "b"}, {U: "a", V: "b"}}, planar.ErrDuplicateEdge},
		{"reversed duplicate", []string{"a", "b"}, []planar.Edge{{U: "a", V: "b"}, {U: "b", V: "a"}}, planar.ErrDuplicateEdge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planar.TestAndEmbed(tc.vertices, tc.edges)
			assert.ErrorIs(t, err, tc.want)

			_, err = planar.IsPlanar(tc.vertices, tc.edges)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCheckGraph_SymmetrizesInput(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	for _, pair := range [][2]string{
		{"a", "b"}, {"b", "a"}, {"b", "c"}, {"c", "a"}, {"a", "a"}, {"c", "a"},
	} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("lonely"))

	vertices, edges := planar.Input(g)
	assert.Equal(t, []string{"a", "b", "c", "lonely"}, vertices)
	assert.Equal(t, []planar.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}, {U: "c", V: "a"}}, edges)

	emb, err := planar.CheckGraph(g)
	require.NoError(t, err)
	assert.Equal(t, 3, emb.EdgeCount())
	assert.Equal(t, 4, emb.VertexCount())

	k := core.NewGraph()
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			_, _ = k.AddEdge(e(i, j).U, e(i, j).V, 0)
		}
	}
	_, err = planar.CheckGraph(k)
	assert.ErrorIs(t, err, planar.ErrNotPlanar)
}
