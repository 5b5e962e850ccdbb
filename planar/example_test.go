package planar_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planarity/planar"
)

// ExampleTestAndEmbed embeds K4 and prints its rotation system and faces.
func ExampleTestAndEmbed() {
	vertices := []string{"a", "b", "c", "d"}
	edges := []planar.Edge{
		{U: "a", V: "b"}, {U: "a", V: "c"}, {U: "a", V: "d"},
		{U: "b", V: "c"}, {U: "b", V: "d"}, {U: "c", V: "d"},
	}

	emb, err := planar.TestAndEmbed(vertices, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range emb.Vertices() {
		nbs, _ := emb.NeighborsCWOrder(v)
		fmt.Println(v, nbs)
	}
	faces, _ := emb.Faces()
	fmt.Println("faces:", faces)
	// Output:
	// a [b d c]
	// b [a c d]
	// c [b a d]
	// d [c a b]
	// faces: [[a b d] [a d c] [a c b] [b c d]]
}

// ExampleIsPlanar shows the single "no" answer for K3,3.
func ExampleIsPlanar() {
	var edges []planar.Edge
	for _, u := range []string{"u1", "u2", "u3"} {
		for _, v := range []string{"v1", "v2", "v3"} {
			edges = append(edges, planar.Edge{U: u, V: v})
		}
	}
	ok, err := planar.IsPlanar([]string{"u1", "u2", "u3", "v1", "v2", "v3"}, edges)
	fmt.Println(ok, err)

	_, err = planar.TestAndEmbed([]string{"u1", "u2", "u3", "v1", "v2", "v3"}, edges)
	fmt.Println(errors.Is(err, planar.ErrNotPlanar))
	// Output:
	// false <nil>
	// true
}

// ExampleEmbedding_AddHalfEdge builds a star by hand.
func ExampleEmbedding_AddHalfEdge() {
	emb := planar.NewEmbedding()
	_ = emb.AddHalfEdge("hub", "n")
	_ = emb.AddHalfEdge("hub", "e", planar.CCW("n")) // clockwise after n
	_ = emb.AddHalfEdge("hub", "w", planar.CW("n"))  // counter-clockwise before n
	_ = emb.AddHalfEdgeCW("hub", "s", "e")
	for _, leaf := range []string{"n", "e", "s", "w"} {
		_ = emb.AddHalfEdge(leaf, "hub")
	}

	nbs, _ := emb.NeighborsCWOrder("hub")
	fmt.Println(nbs, emb.CheckStructure())
	// Output:
	// [w n e s] <nil>
}
