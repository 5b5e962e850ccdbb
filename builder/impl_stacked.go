// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_stacked.go: random stacked triangulations (Apollonian networks).

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodStackedTriangulation = "StackedTriangulation"
	minStackedNodes            = 3
)

// StackedTriangulation starts from the triangle 0-1-2 and inserts vertex i
// (i = 3..n-1) into a uniformly chosen inner face, joining it to the three
// corners. The result is maximal planar: 3n-6 edges and 2n-4 faces.
//
// Errors: ErrTooFewVertices if n < 3, ErrNeedRandSource without an RNG.
// Complexity: O(n).
func StackedTriangulation(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStackedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodStackedTriangulation, n, minStackedNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodStackedTriangulation, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodStackedTriangulation, n)
		if err != nil {
			return err
		}
		for _, p := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
			if err = connect(g, cfg, methodStackedTriangulation, ids[p[0]], ids[p[1]]); err != nil {
				return err
			}
		}

		// Bounded triangular faces; the outer face 0-1-2 is never split.
		faces := [][3]int{{0, 1, 2}}
		for i := minStackedNodes; i < n; i++ {
			k := cfg.rng.Intn(len(faces))
			f := faces[k]
			for _, corner := range f {
				if err = connect(g, cfg, methodStackedTriangulation, ids[corner], ids[i]); err != nil {
					return err
				}
			}
			faces[k] = [3]int{f[0], f[1], i}
			faces = append(faces, [3]int{f[1], f[2], i}, [3]int{f[0], f[2], i})
		}

		return nil
	}
}
