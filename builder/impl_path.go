// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_path.go: the path P_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds 0-1-…-(n-1). Long paths are the deepest DFS inputs the planar
// package has to handle, so benchmarks and stress tests lean on this family.
//
// Errors: ErrTooFewVertices if n < 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
