// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_cycle.go: the cycle C_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds the ring 0-1-…-(n-1)-0.
//
// Errors: ErrTooFewVertices if n < 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
