// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_complete.go: the complete graph K_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n, connecting pairs (i,j) with i<j in lexicographic
// index order. K_n is planar exactly for n ≤ 4.
//
// Errors: ErrTooFewVertices if n < 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
