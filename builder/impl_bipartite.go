// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_bipartite.go: the complete bipartite graph K_{n1,n2}.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite builds K_{n1,n2} with sides named leftPrefix+i and
// rightPrefix+j ("L0…", "R0…" by default). K_{n1,n2} is planar exactly when
// min(n1,n2) ≤ 2.
//
// Errors: ErrTooFewVertices if either side is empty.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := make([]string, n1)
		for i := range left {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
			if err := g.AddVertex(left[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, left[i], err)
			}
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
			if err := g.AddVertex(right[j]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, right[j], err)
			}
		}

		for _, u := range left {
			for _, v := range right {
				if err := connect(g, cfg, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
