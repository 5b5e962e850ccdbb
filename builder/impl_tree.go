// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_tree.go: random recursive trees.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodRandomTree = "RandomTree"
	minTreeNodes     = 1
)

// RandomTree attaches vertex i (i ≥ 1) to a uniformly chosen earlier vertex.
// The embedding of a tree has exactly one face of length 2(n-1).
//
// Errors: ErrTooFewVertices if n < 1, ErrNeedRandSource without an RNG.
// Complexity: O(n).
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minTreeNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomTree, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomTree, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(g, cfg, methodRandomTree, ids[cfg.rng.Intn(i)], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
