// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_wheel.go: the wheel W_n (rim cycle plus hub).

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim needs at least 3 vertices
)

// Wheel builds Cycle(n-1) on idFn(0..n-2) and joins every rim vertex to
// CenterVertexID. Total: n vertices, 2(n-1) edges.
//
// Errors: ErrTooFewVertices if n < 4.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, CenterVertexID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := connect(g, cfg, methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
