package planar_test

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/planarity/planar"
)

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}

	return out
}

func e(u, v int) planar.Edge {
	return planar.Edge{U: strconv.Itoa(u), V: strconv.Itoa(v)}
}

func complete(n int) ([]string, []planar.Edge) {
	var edges []planar.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, e(i, j))
		}
	}

	return ids(n), edges
}

func completeBipartite(a, b int) ([]string, []planar.Edge) {
	var edges []planar.Edge
	for i := 0; i < a; i++ {
		for j := a; j < a+b; j++ {
			edges = append(edges, e(i, j))
		}
	}

	return ids(a + b), edges
}

func octahedron() ([]string, []planar.Edge) {
	return ids(6), []planar.Edge{
		e(0, 2), e(0, 3), e(0, 4), e(0, 5),
		e(1, 2), e(1, 3), e(1, 4), e(1, 5),
		e(2, 4), e(2, 5), e(3, 4), e(3, 5),
	}
}

func petersen() ([]string, []planar.Edge) {
	var edges []planar.Edge
	for i := 0; i < 5; i++ {
		edges = append(edges, e(i, (i+1)%5), e(i, i+5), e(5+i, 5+(i+2)%5))
	}

	return ids(10), edges
}

func path(n int) ([]string, []planar.Edge) {
	edges := make([]planar.Edge, 0, n)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, e(i, i+1))
	}

	return ids(n), edges
}

func grid(rows, cols int) ([]string, []planar.Edge) {
	var edges []planar.Edge
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*cols + c
			if c+1 < cols {
				edges = append(edges, e(v, v+1))
			}
			if r+1 < rows {
				edges = append(edges, e(v, v+cols))
			}
		}
	}

	return ids(rows * cols), edges
}

// stacked returns a random stacked triangulation on n ≥ 3 vertices: every
// new vertex is placed inside a random face and joined to its corners.
func stacked(n int, rng *rand.Rand) ([]string, []planar.Edge) {
	edges := []planar.Edge{e(0, 1), e(1, 2), e(0, 2)}
	faces := [][3]int{{0, 1, 2}, {0, 2, 1}}
	for v := 3; v < n; v++ {
		i := rng.Intn(len(faces))
		f := faces[i]
		faces = append(faces[:i], faces[i+1:]...)
		edges = append(edges, e(v, f[0]), e(v, f[1]), e(v, f[2]))
		faces = append(faces, [3]int{f[0], f[1], v}, [3]int{f[1], f[2], v}, [3]int{f[2], f[0], v})
	}

	return ids(n), edges
}

// randomTree attaches every vertex i > 0 to a random earlier vertex.
func randomTree(n int, rng *rand.Rand) []planar.Edge {
	edges := make([]planar.Edge, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, e(rng.Intn(i), i))
	}

	return edges
}

func shuffled(edges []planar.Edge, rng *rand.Rand) []planar.Edge {
	out := make([]planar.Edge, len(edges))
	copy(out, edges)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	for i := range out {
		if rng.Intn(2) == 0 {
			out[i].U, out[i].V = out[i].V, out[i].U
		}
	}

	return out
}
