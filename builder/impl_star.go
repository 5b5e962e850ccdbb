// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_star.go: the star K_{1,n-1}.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// CenterVertexID is the hub of Star, Wheel and centred Platonic solids.
const CenterVertexID = "Center"

// Star builds a hub CenterVertexID joined to leaves idFn(1..n-1).
//
// Errors: ErrTooFewVertices if n < 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if err := connect(g, cfg, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
